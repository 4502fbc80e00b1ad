package event

import (
	"time"
)

// Type discriminates event payloads in the log.
type Type int32

const (
	TypeUnknown Type = iota
	TypeConversion
	TypePriceDataUpdate
	TypeLiquidityAdded
	TypeLiquidityRemoved
	TypeConversionFeeUpdate
	TypeReserveAdded
	TypeOwnershipAccepted
)

// Envelope wraps every event the engine commits to the log.
type Envelope struct {
	// Global monotonic sequence assigned by the engine
	Sequence int64

	// Idempotency key of the request that produced this event
	RequestID string

	// Name of the request type that produced this event, for dedup keys
	RequestType string

	// Event type discriminator
	Type Type

	// Versioned input timestamp from the request (NOT wall-clock)
	Timestamp time.Time

	// Upstream sequence for ordering validation
	SourceSequence int64

	// JSON-encoded event-specific payload
	Payload []byte

	// SHA-256 of engine state AFTER applying this event
	StateHash [32]byte

	// Previous event's state hash (chain integrity)
	PrevHash [32]byte
}

func (t Type) String() string {
	switch t {
	case TypeConversion:
		return "Conversion"
	case TypePriceDataUpdate:
		return "PriceDataUpdate"
	case TypeLiquidityAdded:
		return "LiquidityAdded"
	case TypeLiquidityRemoved:
		return "LiquidityRemoved"
	case TypeConversionFeeUpdate:
		return "ConversionFeeUpdate"
	case TypeReserveAdded:
		return "ReserveAdded"
	case TypeOwnershipAccepted:
		return "OwnershipAccepted"
	default:
		return "Unknown"
	}
}
