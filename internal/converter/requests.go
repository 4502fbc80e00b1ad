package converter

import (
	"time"

	"SmartSwap/internal/token"

	"github.com/google/uuid"
	"github.com/holiman/uint256"
)

// Request is implemented by every operation the engine processes. Each
// request carries a stable idempotency key and an upstream ordering key,
// mirroring the envelope the ingestion shell validates before dispatch.
type Request interface {
	// RequestID returns the stable dedup key.
	RequestID() uuid.UUID

	// RequestType returns a name for dispatch, metrics and logging.
	RequestType() string

	// Source returns the ordering partition (one per upstream producer).
	Source() string

	// SourceSequence returns the upstream ordering key.
	SourceSequence() int64

	// At returns the versioned input timestamp (NOT wall-clock).
	At() time.Time
}

// Base carries the fields shared by every request.
type Base struct {
	ID        uuid.UUID
	Origin    string
	Sequence  int64
	Timestamp time.Time
}

func (r Base) RequestID() uuid.UUID  { return r.ID }
func (r Base) Source() string        { return r.Origin }
func (r Base) SourceSequence() int64 { return r.Sequence }
func (r Base) At() time.Time         { return r.Timestamp }

// ConvertRequest is the sole mutating conversion entry point, restricted
// to the network caller identity. Value is the attached native payment and
// is only meaningful when the source is the native-currency reserve.
type ConvertRequest struct {
	Base
	Caller      token.Address
	Trader      token.Address
	Beneficiary token.Address
	SourceToken token.Address
	TargetToken token.Address
	Amount      *uint256.Int
	MinReturn   *uint256.Int
	Value       *uint256.Int
}

func (ConvertRequest) RequestType() string { return "Convert" }

// FundRequest asks for a proportional multi-reserve deposit minting Amount
// smart tokens to the provider.
type FundRequest struct {
	Base
	Provider token.Address
	Amount   *uint256.Int
	Value    *uint256.Int
}

func (FundRequest) RequestType() string { return "Fund" }

// LiquidateRequest burns Amount smart tokens from the provider and pays
// out every reserve's proportional share.
type LiquidateRequest struct {
	Base
	Provider token.Address
	Amount   *uint256.Int
}

func (LiquidateRequest) RequestType() string { return "Liquidate" }

// AddLiquidityRequest generalizes Fund to caller-specified per-reserve
// amounts. Tokens must be a permutation of the full reserve set.
type AddLiquidityRequest struct {
	Base
	Provider  token.Address
	Tokens    []token.Address
	Amounts   []*uint256.Int
	MinReturn *uint256.Int
	Value     *uint256.Int
}

func (AddLiquidityRequest) RequestType() string { return "AddLiquidity" }

// RemoveLiquidityRequest generalizes Liquidate with independent per-reserve
// slippage floors.
type RemoveLiquidityRequest struct {
	Base
	Provider   token.Address
	Amount     *uint256.Int
	Tokens     []token.Address
	MinReturns []*uint256.Int
}

func (RemoveLiquidityRequest) RequestType() string { return "RemoveLiquidity" }

// AddReserveRequest configures a reserve while the engine is inactive.
type AddReserveRequest struct {
	Base
	Caller token.Address
	Token  token.Address
	Weight uint32
}

func (AddReserveRequest) RequestType() string { return "AddReserve" }

// SetFeeRequest updates the conversion fee within the immutable maximum.
type SetFeeRequest struct {
	Base
	Caller token.Address
	Fee    uint32
}

func (SetFeeRequest) RequestType() string { return "SetFee" }

// AcceptOwnershipRequest completes the governed-token ownership handshake
// and flips the engine from inactive to active.
type AcceptOwnershipRequest struct {
	Base
	Caller token.Address
}

func (AcceptOwnershipRequest) RequestType() string { return "AcceptOwnership" }
