package formula

import "github.com/holiman/uint256"

// power approximates (baseN / baseD) ^ (expN / expD) * 2^precision and
// returns the result together with the precision used. Instead of computing
// base^exp directly it computes e^(ln(base) * exp); the highest precision
// that keeps every intermediate within 256 bits is chosen from maxExpArray.
func power(baseN, baseD *uint256.Int, expN, expD uint32) (*uint256.Int, uint, error) {
	logVal, err := generalLog(baseN, baseD)
	if err != nil {
		return nil, 0, err
	}

	// ln(base) * expN / expD; ln output is below 2^135 so the product
	// of a ppm-scale exponent cannot overflow.
	logVal.Mul(logVal, uint256.NewInt(uint64(expN)))
	logVal.Div(logVal, uint256.NewInt(uint64(expD)))

	precision, err := findPositionInMaxExpArray(logVal)
	if err != nil {
		return nil, 0, err
	}

	logVal.Rsh(logVal, maxPrecision-precision)
	return generalExp(logVal, precision), precision, nil
}

// generalLog returns floor(ln(numerator / denominator) * 2^maxPrecision).
// The numerator must be at least the denominator; the result would be
// negative otherwise, which no caller can produce after input validation.
func generalLog(numerator, denominator *uint256.Int) (*uint256.Int, error) {
	if numerator.Gt(maxLnInput) {
		return nil, ErrOverflow
	}

	x := new(uint256.Int).Mul(numerator, fixed1)
	x.Div(x, denominator)

	res := new(uint256.Int)

	// Integer part of log2(x).
	if !x.Lt(fixed2) {
		count := floorLog2(new(uint256.Int).Div(x, fixed1))
		x.Rsh(x, count)
		res.Lsh(uint256.NewInt(uint64(count)), maxPrecision)
	}

	// Fraction part of log2(x), extracted one bit per squaring.
	if x.Gt(fixed1) {
		sq := new(uint256.Int)
		for i := maxPrecision; i > 0; i-- {
			sq.Mul(x, x)
			x.Div(sq, fixed1) // 1 < x < 4
			if !x.Lt(fixed2) {
				x.Rsh(x, 1) // 1 < x < 2
				res.Add(res, new(uint256.Int).Lsh(uint256.NewInt(1), uint(i-1)))
			}
		}
	}

	// Convert from log2 to ln.
	res.Mul(res, ln2Mantissa)
	return res.Rsh(res, ln2Exponent), nil
}

// floorLog2 returns the largest integer not exceeding log2(n) for n >= 1.
func floorLog2(n *uint256.Int) uint {
	return uint(n.BitLen() - 1)
}

// findPositionInMaxExpArray locates the highest precision whose maximum
// exponent is at least x. maxExpArray is sorted in descending order, so a
// binary search over [minPrecision, maxPrecision] suffices.
func findPositionInMaxExpArray(x *uint256.Int) (uint, error) {
	lo, hi := minPrecision, maxPrecision

	for lo+1 < hi {
		mid := (lo + hi) / 2
		if !maxExpArray[mid].Lt(x) {
			lo = mid
		} else {
			hi = mid
		}
	}

	if !maxExpArray[hi].Lt(x) {
		return uint(hi), nil
	}
	if !maxExpArray[lo].Lt(x) {
		return uint(lo), nil
	}
	return 0, ErrOverflow
}

// generalExp approximates e^x via Maclaurin summation:
// (x^0)/0! + (x^1)/1! + ... + (x^n)/n!. It returns
// e^(x >> precision) << precision, i.e. the result is upshifted for
// accuracy. maxExpArray guarantees every intermediate stays in range, so
// the accumulation deliberately uses unchecked arithmetic.
func generalExp(x *uint256.Int, precision uint) *uint256.Int {
	xi := x.Clone()
	res := new(uint256.Int)
	term := new(uint256.Int)

	for _, coeff := range expCoefficients {
		xi.Mul(xi, x)
		xi.Rsh(xi, precision)
		res.Add(res, term.Mul(xi, coeff))
	}

	res.Div(res, expDivisor)
	res.Add(res, x)
	one := new(uint256.Int).Lsh(uint256.NewInt(1), precision)
	return res.Add(res, one)
}
