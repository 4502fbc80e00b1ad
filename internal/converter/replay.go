package converter

import (
	"fmt"

	"SmartSwap/internal/event"

	"github.com/holiman/uint256"
)

// ReplayEnvelope applies one logged event to engine state during warm
// restart. Only configuration and price-data events mutate state here;
// conversion and liquidity events already have their effects folded into
// the PriceDataUpdate events that follow them in the log. Returns the
// supply reported by the event, or nil.
//
// Replay advances the sequence and the hash-chain tip to the logged
// values instead of recomputing them; the log is trusted ground truth.
func (e *Engine) ReplayEnvelope(env *event.Envelope) (*uint256.Int, error) {
	payload, err := event.DecodePayload(env.Type, env.Payload)
	if err != nil {
		return nil, err
	}

	var supply *uint256.Int
	switch p := payload.(type) {
	case *event.ReserveAdded:
		if !e.registry.Has(p.Reserve) {
			if _, err := e.registry.Add(p.Reserve, p.Weight); err != nil {
				return nil, fmt.Errorf("replay reserve %s: %w", p.Reserve, err)
			}
		}

	case *event.PriceDataUpdate:
		res, err := e.registry.Get(p.Reserve)
		if err != nil {
			return nil, fmt.Errorf("replay price data: %w", err)
		}
		res.Balance = p.ReserveBalance.Clone()
		supply = p.Supply.Clone()

	case *event.ConversionFeeUpdate:
		e.fee = p.NewFee

	case *event.OwnershipAccepted:
		e.active = true

	case *event.Conversion, *event.LiquidityAdded, *event.LiquidityRemoved:
		// State carried by the accompanying PriceDataUpdate events

	default:
		return nil, fmt.Errorf("replay: unknown payload %T", payload)
	}

	e.sequence = env.Sequence + 1
	e.hasher.SetPrevHash(env.StateHash)
	return supply, nil
}
