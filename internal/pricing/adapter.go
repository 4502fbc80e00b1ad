// Package pricing is the stateless adapter between ledger state and the
// bonding-curve formula, plus the ppm conversion-fee arithmetic. Nothing in
// this package has side effects; callers pass live supply and cached
// reserve balances, never speculative post-transfer values.
package pricing

import (
	"SmartSwap/internal/formula"
	"SmartSwap/internal/reserve"

	"github.com/holiman/uint256"
)

// FeeResolution is 100% in ppm, the scale of all conversion fees.
const FeeResolution uint32 = 1_000_000

// Magnitude of the fee for an operation: single-hop conversions pay the
// fee once, cross-reserve conversions model two sequential hops.
const (
	MagnitudeSingle = 1
	MagnitudeCross  = 2
)

// Adapter translates reserve/supply state into formula calls.
type Adapter struct{}

func NewAdapter() *Adapter { return &Adapter{} }

// PurchaseReturn prices a reserve → smart token conversion.
func (a *Adapter) PurchaseReturn(supply *uint256.Int, res *reserve.Reserve, deposit *uint256.Int) (*uint256.Int, error) {
	return formula.CalculatePurchaseReturn(supply, res.Balance, res.Weight, deposit)
}

// SaleReturn prices a smart token → reserve conversion.
func (a *Adapter) SaleReturn(supply *uint256.Int, res *reserve.Reserve, sellAmount *uint256.Int) (*uint256.Int, error) {
	return formula.CalculateSaleReturn(supply, res.Balance, res.Weight, sellAmount)
}

// CrossReserveReturn prices a direct reserve → reserve conversion.
func (a *Adapter) CrossReserveReturn(from, to *reserve.Reserve, amount *uint256.Int) (*uint256.Int, error) {
	return formula.CalculateCrossReserveReturn(from.Balance, from.Weight, to.Balance, to.Weight, amount)
}

// FundCost prices one reserve's deposit for minting amount smart tokens.
func (a *Adapter) FundCost(supply *uint256.Int, res *reserve.Reserve, totalWeight uint32, amount *uint256.Int) (*uint256.Int, error) {
	return formula.CalculateFundCost(supply, res.Balance, totalWeight, amount)
}

// LiquidateReturn prices one reserve's share for burning amount smart tokens.
func (a *Adapter) LiquidateReturn(supply *uint256.Int, res *reserve.Reserve, totalWeight uint32, amount *uint256.Int) (*uint256.Int, error) {
	return formula.CalculateLiquidateReturn(supply, res.Balance, totalWeight, amount)
}

// FinalAmount applies the conversion fee to a raw formula return:
//
//	final = raw * (FeeResolution - fee)^magnitude / FeeResolution^magnitude
//
// The ratio is raised to the magnitude before dividing, so truncation
// happens exactly once. Integer division truncates toward zero, so the
// rounding loss always accrues to the protocol, never to the trader. The
// fee charged is the difference raw - final.
func FinalAmount(raw *uint256.Int, fee uint32, magnitude int) (final, feeCharged *uint256.Int, err error) {
	keep := uint256.NewInt(uint64(FeeResolution - fee))
	div := uint256.NewInt(uint64(FeeResolution))
	num := keep.Clone()
	den := div.Clone()
	for i := 1; i < magnitude; i++ {
		num.Mul(num, keep)
		den.Mul(den, div)
	}
	final = new(uint256.Int)
	if _, overflow := final.MulDivOverflow(raw, num, den); overflow {
		return nil, nil, formula.ErrOverflow
	}
	feeCharged = new(uint256.Int).Sub(raw, final)
	return final, feeCharged, nil
}
