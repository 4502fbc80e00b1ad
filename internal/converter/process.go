package converter

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"time"

	"SmartSwap/internal/event"
)

// ProcessRequest is the main processing pipeline. Exactly one goroutine
// calls it; every mutation of engine state funnels through here.
func (e *Engine) ProcessRequest(req Request) error {
	start := time.Now()
	requestType := req.RequestType()
	requestID := req.RequestID().String()

	// Step 1: Idempotency check (two-tier)
	isDuplicate := e.idempotency.IsDuplicate(requestType, requestID)

	// Step 2: Sequence validation per origin
	if err := e.seqValidator.ValidateSequence(req.Source(), req.SourceSequence(), isDuplicate); err != nil {
		return fmt.Errorf("sequence validation failed: %w", err)
	}

	// If duplicate, skip processing
	if isDuplicate {
		if e.metrics != nil {
			e.metrics.EngineRequestsRejected.WithLabelValues(requestType, "duplicate").Inc()
		}
		return nil
	}

	// Step 3: Dispatch. Each handler commits or rolls back as one unit;
	// an error here means state is untouched.
	if err := e.dispatch(req); err != nil {
		if e.metrics != nil {
			e.metrics.EngineRequestsRejected.WithLabelValues(requestType, "rejected").Inc()
		}
		return fmt.Errorf("dispatch %s: %w", requestType, err)
	}

	// Steps 4-6: Seal each buffered event into the hash chain.
	outputs := make([]Output, 0, len(e.pending))
	for _, pe := range e.pending {
		payload, err := json.Marshal(pe.payload)
		if err != nil {
			panic(fmt.Sprintf("FATAL: cannot marshal %s payload: %v", pe.typ, err))
		}

		stateDigest := e.computeStateDigest()
		prevHash := e.hasher.GetPrevHash()
		stateHash := e.hasher.ComputeHash(e.sequence, stateDigest)

		envelope := &event.Envelope{
			Sequence:       e.sequence,
			RequestID:      requestID,
			RequestType:    requestType,
			Type:           pe.typ,
			Timestamp:      req.At(),
			SourceSequence: req.SourceSequence(),
			Payload:        payload,
			StateHash:      stateHash,
			PrevHash:       prevHash,
		}

		outputs = append(outputs, Output{Envelope: envelope, Payload: pe.payload})
		e.sequence++
	}
	e.pending = e.pending[:0]

	// Step 7: Emit outputs. Persistence uses a BLOCKING send so the loop
	// stalls until the writer drains — no committed event is ever lost.
	// Projections use a NON-BLOCKING send with silent drop; they rebuild
	// from the event log when behind.
	for _, output := range outputs {
		e.persistChan <- output

		select {
		case e.projectionChan <- output:
		default:
			// Dropped — projection catches up via rebuild
		}
	}

	// Step 8: Mark as processed (add to LRU)
	e.idempotency.MarkProcessed(requestType, requestID)

	if e.metrics != nil {
		e.metrics.EngineRequestsApplied.WithLabelValues(requestType).Inc()
		e.metrics.EngineRequestDuration.WithLabelValues(requestType).Observe(time.Since(start).Seconds())
		e.metrics.EngineSequence.Set(float64(e.sequence))
	}

	return nil
}

func (e *Engine) dispatch(req Request) error {
	switch r := req.(type) {
	case ConvertRequest:
		_, err := e.Convert(r)
		return err
	case FundRequest:
		return e.Fund(r)
	case LiquidateRequest:
		return e.Liquidate(r)
	case AddLiquidityRequest:
		_, err := e.AddLiquidity(r)
		return err
	case RemoveLiquidityRequest:
		return e.RemoveLiquidity(r)
	case AddReserveRequest:
		return e.AddReserve(r)
	case SetFeeRequest:
		return e.SetConversionFee(r)
	case AcceptOwnershipRequest:
		return e.AcceptTokenOwnership(r)
	default:
		return fmt.Errorf("unknown request type %T", req)
	}
}

// computeStateDigest builds the canonical byte encoding of engine state:
// supply, fee, activation flag, then every reserve in registration order.
func (e *Engine) computeStateDigest() []byte {
	reserves := e.registry.All()
	digest := make([]byte, 0, 40+len(reserves)*72)

	supply := e.totalSupply().Bytes32()
	digest = append(digest, supply[:]...)

	var feeBuf [4]byte
	binary.LittleEndian.PutUint32(feeBuf[:], e.fee)
	digest = append(digest, feeBuf[:]...)

	if e.active {
		digest = append(digest, 1)
	} else {
		digest = append(digest, 0)
	}

	for _, res := range reserves {
		tok := []byte(res.Token)
		digest = append(digest, byte(len(tok)))
		digest = append(digest, tok...)

		var weightBuf [4]byte
		binary.LittleEndian.PutUint32(weightBuf[:], res.Weight)
		digest = append(digest, weightBuf[:]...)

		bal := res.Balance.Bytes32()
		digest = append(digest, bal[:]...)
	}

	return digest
}

// Sequence returns the next sequence the engine will assign.
func (e *Engine) Sequence() int64 { return e.sequence }

// RestoreState reinstates engine state from a snapshot: hash-chain tip,
// sequence, fee, activation and per-origin expected sequences. Reserves
// are re-added by the caller before replaying the tail of the event log.
func (e *Engine) RestoreState(sequence int64, prevHash [32]byte, fee uint32, active bool, origins map[string]int64) {
	e.sequence = sequence
	e.hasher.SetPrevHash(prevHash)
	e.fee = fee
	e.active = active
	for origin, seq := range origins {
		e.seqValidator.SetExpectedSequence(origin, seq)
	}
}

// WarmIdempotencyCache preloads recently processed request keys.
func (e *Engine) WarmIdempotencyCache(keys []string) {
	e.idempotency.lru.WarmFromKeys(keys)
}
