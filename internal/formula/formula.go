// Package formula implements the constant-weight bonding-curve pricing
// functions consumed by the conversion engine. All five entry points are
// pure integer functions of (supply, balance(s), weight(s), amount); the
// exponentiation core approximates base^exp as e^(ln(base)*exp) in 128-bit
// fixed point, with every intermediate bounded to 256 bits.
package formula

import (
	"errors"

	"github.com/holiman/uint256"
)

// MaxWeight is the weight resolution: 1,000,000 ppm represents 100%.
const MaxWeight uint32 = 1_000_000

const (
	minPrecision = 32
	maxPrecision = 127
)

var (
	// fixed1 is the 1.0 of the fixed-point representation (2^maxPrecision).
	fixed1 = new(uint256.Int).Lsh(uint256.NewInt(1), maxPrecision)
	// fixed2 is 2.0 (2^(maxPrecision+1)).
	fixed2 = new(uint256.Int).Lsh(uint256.NewInt(1), maxPrecision+1)

	ln2Exponent = uint(122)
)

var (
	ErrInvalidSupply  = errors.New("formula: supply must be positive")
	ErrInvalidBalance = errors.New("formula: reserve balance must be positive")
	ErrInvalidWeight  = errors.New("formula: weight out of range")
	ErrInvalidAmount  = errors.New("formula: amount out of range")
	ErrOverflow       = errors.New("formula: arithmetic overflow")
)

// CalculatePurchaseReturn computes the smart-token return for depositing
// depositAmount of a reserve:
//
//	supply * ((1 + depositAmount / reserveBalance) ^ (reserveWeight / 1e6) - 1)
func CalculatePurchaseReturn(supply, reserveBalance *uint256.Int, reserveWeight uint32, depositAmount *uint256.Int) (*uint256.Int, error) {
	if supply.IsZero() {
		return nil, ErrInvalidSupply
	}
	if reserveBalance.IsZero() {
		return nil, ErrInvalidBalance
	}
	if reserveWeight == 0 || reserveWeight > MaxWeight {
		return nil, ErrInvalidWeight
	}

	if depositAmount.IsZero() {
		return uint256.NewInt(0), nil
	}

	// 100% weight degrades to the linear curve.
	if reserveWeight == MaxWeight {
		return mulDiv(supply, depositAmount, reserveBalance)
	}

	baseN := new(uint256.Int)
	if _, overflow := baseN.AddOverflow(depositAmount, reserveBalance); overflow {
		return nil, ErrOverflow
	}

	result, precision, err := power(baseN, reserveBalance, reserveWeight, MaxWeight)
	if err != nil {
		return nil, err
	}

	temp := new(uint256.Int)
	if _, overflow := temp.MulOverflow(supply, result); overflow {
		return nil, ErrOverflow
	}
	temp.Rsh(temp, precision)
	return temp.Sub(temp, supply), nil
}

// CalculateSaleReturn computes the reserve-token return for selling
// sellAmount of the smart token:
//
//	reserveBalance * (1 - (1 - sellAmount / supply) ^ (1e6 / reserveWeight))
func CalculateSaleReturn(supply, reserveBalance *uint256.Int, reserveWeight uint32, sellAmount *uint256.Int) (*uint256.Int, error) {
	if supply.IsZero() {
		return nil, ErrInvalidSupply
	}
	if reserveBalance.IsZero() {
		return nil, ErrInvalidBalance
	}
	if reserveWeight == 0 || reserveWeight > MaxWeight {
		return nil, ErrInvalidWeight
	}
	if sellAmount.Gt(supply) {
		return nil, ErrInvalidAmount
	}

	if sellAmount.IsZero() {
		return uint256.NewInt(0), nil
	}

	// Selling the entire supply empties the reserve exactly.
	if sellAmount.Eq(supply) {
		return reserveBalance.Clone(), nil
	}

	if reserveWeight == MaxWeight {
		return mulDiv(reserveBalance, sellAmount, supply)
	}

	baseD := new(uint256.Int).Sub(supply, sellAmount)
	result, precision, err := power(supply, baseD, MaxWeight, reserveWeight)
	if err != nil {
		return nil, err
	}

	temp1 := new(uint256.Int)
	if _, overflow := temp1.MulOverflow(reserveBalance, result); overflow {
		return nil, ErrOverflow
	}
	temp2 := new(uint256.Int).Lsh(reserveBalance, precision)
	temp1.Sub(temp1, temp2)
	return temp1.Div(temp1, result), nil
}

// CalculateCrossReserveReturn computes the target-reserve return for
// converting amount of a source reserve directly into a target reserve:
//
//	toBalance * (1 - (fromBalance / (fromBalance + amount)) ^ (fromWeight / toWeight))
func CalculateCrossReserveReturn(fromBalance *uint256.Int, fromWeight uint32, toBalance *uint256.Int, toWeight uint32, amount *uint256.Int) (*uint256.Int, error) {
	if fromBalance.IsZero() || toBalance.IsZero() {
		return nil, ErrInvalidBalance
	}
	if fromWeight == 0 || fromWeight > MaxWeight || toWeight == 0 || toWeight > MaxWeight {
		return nil, ErrInvalidWeight
	}

	baseN := new(uint256.Int)
	if _, overflow := baseN.AddOverflow(fromBalance, amount); overflow {
		return nil, ErrOverflow
	}

	// Equal weights degrade to the constant-product curve.
	if fromWeight == toWeight {
		return mulDiv(toBalance, amount, baseN)
	}

	result, precision, err := power(baseN, fromBalance, fromWeight, toWeight)
	if err != nil {
		return nil, err
	}

	temp1 := new(uint256.Int)
	if _, overflow := temp1.MulOverflow(toBalance, result); overflow {
		return nil, ErrOverflow
	}
	temp2 := new(uint256.Int).Lsh(toBalance, precision)
	temp1.Sub(temp1, temp2)
	return temp1.Div(temp1, result), nil
}

// CalculateFundCost computes the reserve deposit required to mint amount
// smart tokens against one reserve of a pool whose aggregate weight is
// totalWeight. Rounds up: the cost never undercharges the pool.
func CalculateFundCost(supply, reserveBalance *uint256.Int, totalWeight uint32, amount *uint256.Int) (*uint256.Int, error) {
	if supply.IsZero() {
		return nil, ErrInvalidSupply
	}
	if reserveBalance.IsZero() {
		return nil, ErrInvalidBalance
	}
	if totalWeight == 0 || totalWeight > MaxWeight {
		return nil, ErrInvalidWeight
	}

	if amount.IsZero() {
		return uint256.NewInt(0), nil
	}

	if totalWeight == MaxWeight {
		// ceil(amount * reserveBalance / supply)
		num := new(uint256.Int)
		if _, overflow := num.MulOverflow(amount, reserveBalance); overflow {
			return nil, ErrOverflow
		}
		num.SubUint64(num, 1)
		num.Div(num, supply)
		return num.AddUint64(num, 1), nil
	}

	baseN := new(uint256.Int)
	if _, overflow := baseN.AddOverflow(supply, amount); overflow {
		return nil, ErrOverflow
	}

	result, precision, err := power(baseN, supply, MaxWeight, totalWeight)
	if err != nil {
		return nil, err
	}

	temp := new(uint256.Int)
	if _, overflow := temp.MulOverflow(reserveBalance, result); overflow {
		return nil, ErrOverflow
	}
	temp.SubUint64(temp, 1)
	temp.Rsh(temp, precision)
	temp.AddUint64(temp, 1)
	return temp.Sub(temp, reserveBalance), nil
}

// CalculateLiquidateReturn computes one reserve's share for burning amount
// smart tokens out of a pool whose aggregate weight is totalWeight.
func CalculateLiquidateReturn(supply, reserveBalance *uint256.Int, totalWeight uint32, amount *uint256.Int) (*uint256.Int, error) {
	if supply.IsZero() {
		return nil, ErrInvalidSupply
	}
	if reserveBalance.IsZero() {
		return nil, ErrInvalidBalance
	}
	if totalWeight == 0 || totalWeight > MaxWeight {
		return nil, ErrInvalidWeight
	}
	if amount.Gt(supply) {
		return nil, ErrInvalidAmount
	}

	if amount.IsZero() {
		return uint256.NewInt(0), nil
	}

	// Burning the entire supply drains the reserve exactly.
	if amount.Eq(supply) {
		return reserveBalance.Clone(), nil
	}

	if totalWeight == MaxWeight {
		return mulDiv(amount, reserveBalance, supply)
	}

	baseD := new(uint256.Int).Sub(supply, amount)
	result, precision, err := power(supply, baseD, MaxWeight, totalWeight)
	if err != nil {
		return nil, err
	}

	temp1 := new(uint256.Int)
	if _, overflow := temp1.MulOverflow(reserveBalance, result); overflow {
		return nil, ErrOverflow
	}
	temp2 := new(uint256.Int).Lsh(reserveBalance, precision)
	temp1.Sub(temp1, temp2)
	return temp1.Div(temp1, result), nil
}

// mulDiv returns a*b/c, reporting overflow of the product.
func mulDiv(a, b, c *uint256.Int) (*uint256.Int, error) {
	res, overflow := new(uint256.Int).MulDivOverflow(a, b, c)
	if overflow {
		return nil, ErrOverflow
	}
	return res, nil
}
