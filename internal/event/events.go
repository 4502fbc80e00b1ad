package event

import (
	"math/big"

	"SmartSwap/internal/token"

	"github.com/holiman/uint256"
)

// Conversion is emitted once per executed conversion. Fee is a
// sign-carrying field reported against the target-side amount; the engine
// only ever emits non-negative values today (a negative value would mean
// "charged from the source side", a documented but unexercised encoding).
type Conversion struct {
	SourceToken token.Address `json:"source_token"`
	TargetToken token.Address `json:"target_token"`
	Trader      token.Address `json:"trader"`
	Beneficiary token.Address `json:"beneficiary"`
	AmountIn    *uint256.Int  `json:"amount_in"`
	AmountOut   *uint256.Int  `json:"amount_out"`
	Fee         *big.Int      `json:"fee"`
}

// PriceDataUpdate is emitted once per reserve affected by an operation,
// carrying the state a price feed needs to recompute the spot rate.
type PriceDataUpdate struct {
	Reserve        token.Address `json:"reserve"`
	Supply         *uint256.Int  `json:"supply"`
	ReserveBalance *uint256.Int  `json:"reserve_balance"`
	Weight         uint32        `json:"weight"`
}

// LiquidityAdded is emitted once per reserve funded by a liquidity provider.
type LiquidityAdded struct {
	Provider   token.Address `json:"provider"`
	Reserve    token.Address `json:"reserve"`
	Amount     *uint256.Int  `json:"amount"`
	NewBalance *uint256.Int  `json:"new_balance"`
	NewSupply  *uint256.Int  `json:"new_supply"`
}

// LiquidityRemoved is emitted once per reserve paid out to a provider.
type LiquidityRemoved struct {
	Provider   token.Address `json:"provider"`
	Reserve    token.Address `json:"reserve"`
	Amount     *uint256.Int  `json:"amount"`
	NewBalance *uint256.Int  `json:"new_balance"`
	NewSupply  *uint256.Int  `json:"new_supply"`
}

// ConversionFeeUpdate records a fee change.
type ConversionFeeUpdate struct {
	OldFee uint32 `json:"old_fee"`
	NewFee uint32 `json:"new_fee"`
}

// ReserveAdded records a reserve configured while the engine was inactive.
type ReserveAdded struct {
	Reserve     token.Address `json:"reserve"`
	Weight      uint32        `json:"weight"`
	TotalWeight uint32        `json:"total_weight"`
}

// OwnershipAccepted records the inactive → active transition.
type OwnershipAccepted struct {
	Token token.Address `json:"token"`
	By    token.Address `json:"by"`
}
