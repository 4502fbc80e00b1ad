package formula_test

import (
	"testing"

	"SmartSwap/internal/formula"

	"github.com/holiman/uint256"
)

func u(v uint64) *uint256.Int { return uint256.NewInt(v) }

// ============================================================================
// Test: CalculatePurchaseReturn
// ============================================================================

func TestPurchaseReturn_FullWeightIsLinear(t *testing.T) {
	// At 100% weight the curve degrades to supply * deposit / balance.
	got, err := formula.CalculatePurchaseReturn(u(1000), u(500), formula.MaxWeight, u(50))
	if err != nil {
		t.Fatalf("purchase return: %v", err)
	}
	if !got.Eq(u(100)) {
		t.Errorf("got %s, want 100", got)
	}
}

func TestPurchaseReturn_HalfWeight(t *testing.T) {
	// weight 50%: supply * ((1 + 300/100)^0.5 - 1) = supply * (2 - 1) = supply.
	// The fixed-point approximation rounds down by a small margin.
	supply := u(1_000_000)
	got, err := formula.CalculatePurchaseReturn(supply, u(100), 500_000, u(300))
	if err != nil {
		t.Fatalf("purchase return: %v", err)
	}
	low, high := u(999_000), u(1_000_000)
	if got.Lt(low) || got.Gt(high) {
		t.Errorf("got %s, want within [%s, %s]", got, low, high)
	}
}

func TestPurchaseReturn_ZeroDeposit(t *testing.T) {
	got, err := formula.CalculatePurchaseReturn(u(1000), u(500), 500_000, u(0))
	if err != nil {
		t.Fatalf("purchase return: %v", err)
	}
	if !got.IsZero() {
		t.Errorf("got %s, want 0", got)
	}
}

func TestPurchaseReturn_InvalidInputs(t *testing.T) {
	if _, err := formula.CalculatePurchaseReturn(u(0), u(500), 500_000, u(50)); err != formula.ErrInvalidSupply {
		t.Errorf("zero supply: got %v, want ErrInvalidSupply", err)
	}
	if _, err := formula.CalculatePurchaseReturn(u(1000), u(0), 500_000, u(50)); err != formula.ErrInvalidBalance {
		t.Errorf("zero balance: got %v, want ErrInvalidBalance", err)
	}
	if _, err := formula.CalculatePurchaseReturn(u(1000), u(500), 0, u(50)); err != formula.ErrInvalidWeight {
		t.Errorf("zero weight: got %v, want ErrInvalidWeight", err)
	}
	if _, err := formula.CalculatePurchaseReturn(u(1000), u(500), formula.MaxWeight+1, u(50)); err != formula.ErrInvalidWeight {
		t.Errorf("weight above resolution: got %v, want ErrInvalidWeight", err)
	}
}

// ============================================================================
// Test: CalculateSaleReturn
// ============================================================================

func TestSaleReturn_FullWeightIsLinear(t *testing.T) {
	got, err := formula.CalculateSaleReturn(u(1100), u(550), formula.MaxWeight, u(100))
	if err != nil {
		t.Fatalf("sale return: %v", err)
	}
	if !got.Eq(u(50)) {
		t.Errorf("got %s, want 50", got)
	}
}

func TestSaleReturn_FullSupplyEmptiesReserve(t *testing.T) {
	// Selling the whole supply returns the exact reserve balance, at any
	// weight, with no approximation loss.
	for _, weight := range []uint32{100_000, 500_000, formula.MaxWeight} {
		got, err := formula.CalculateSaleReturn(u(1234), u(98_765), weight, u(1234))
		if err != nil {
			t.Fatalf("weight %d: %v", weight, err)
		}
		if !got.Eq(u(98_765)) {
			t.Errorf("weight %d: got %s, want 98765", weight, got)
		}
	}
}

func TestSaleReturn_AmountAboveSupply(t *testing.T) {
	if _, err := formula.CalculateSaleReturn(u(1000), u(500), 500_000, u(1001)); err != formula.ErrInvalidAmount {
		t.Errorf("got %v, want ErrInvalidAmount", err)
	}
}

func TestPurchaseThenSale_NeverProfits(t *testing.T) {
	// Round-tripping through the curve must not mint value: selling what
	// a purchase returned yields at most the original deposit.
	supply, balance := u(1_000_000), u(1_000_000)
	deposit := u(10_000)

	for _, weight := range []uint32{100_000, 300_000, 500_000, 900_000} {
		minted, err := formula.CalculatePurchaseReturn(supply, balance, weight, deposit)
		if err != nil {
			t.Fatalf("weight %d purchase: %v", weight, err)
		}

		newSupply := new(uint256.Int).Add(supply, minted)
		newBalance := new(uint256.Int).Add(balance, deposit)
		back, err := formula.CalculateSaleReturn(newSupply, newBalance, weight, minted)
		if err != nil {
			t.Fatalf("weight %d sale: %v", weight, err)
		}

		if back.Gt(deposit) {
			t.Errorf("weight %d: round trip returned %s for deposit %s", weight, back, deposit)
		}
	}
}

// ============================================================================
// Test: CalculateCrossReserveReturn
// ============================================================================

func TestCrossReserveReturn_EqualWeightsIsConstantProduct(t *testing.T) {
	// Equal weights degrade to toBalance * amount / (fromBalance + amount).
	got, err := formula.CalculateCrossReserveReturn(u(1000), 500_000, u(1000), 500_000, u(1000))
	if err != nil {
		t.Fatalf("cross return: %v", err)
	}
	if !got.Eq(u(500)) {
		t.Errorf("got %s, want 500", got)
	}
}

func TestCrossReserveReturn_NeverDrainsTarget(t *testing.T) {
	// Even an enormous input asymptotically approaches the target balance.
	huge := new(uint256.Int).Lsh(u(1), 100)
	got, err := formula.CalculateCrossReserveReturn(u(1000), 500_000, u(1000), 500_000, huge)
	if err != nil {
		t.Fatalf("cross return: %v", err)
	}
	if got.Gt(u(1000)) {
		t.Errorf("got %s, exceeds target balance 1000", got)
	}
}

func TestCrossReserveReturn_UnequalWeights(t *testing.T) {
	// from weight twice the to weight: exponent 2, so
	// to * (1 - (from/(from+amt))^2). from=1000, amt=1000 -> 1 - 1/4 = 3/4.
	got, err := formula.CalculateCrossReserveReturn(u(1000), 500_000, u(1000), 250_000, u(1000))
	if err != nil {
		t.Fatalf("cross return: %v", err)
	}
	low, high := u(748), u(750)
	if got.Lt(low) || got.Gt(high) {
		t.Errorf("got %s, want within [%s, %s]", got, low, high)
	}
}

// ============================================================================
// Test: CalculateFundCost / CalculateLiquidateReturn
// ============================================================================

func TestFundCost_FullWeightRoundsUp(t *testing.T) {
	// ceil(1 * 10 / 3) = 4: the pool never undercharges.
	got, err := formula.CalculateFundCost(u(3), u(10), formula.MaxWeight, u(1))
	if err != nil {
		t.Fatalf("fund cost: %v", err)
	}
	if !got.Eq(u(4)) {
		t.Errorf("got %s, want 4", got)
	}
}

func TestFundCost_ExactProportion(t *testing.T) {
	// 100 new tokens on supply 1000 costs exactly 10% of the reserve.
	got, err := formula.CalculateFundCost(u(1000), u(500), formula.MaxWeight, u(100))
	if err != nil {
		t.Fatalf("fund cost: %v", err)
	}
	if !got.Eq(u(50)) {
		t.Errorf("got %s, want 50", got)
	}
}

func TestLiquidateReturn_FullWeightIsLinear(t *testing.T) {
	got, err := formula.CalculateLiquidateReturn(u(1100), u(550), formula.MaxWeight, u(100))
	if err != nil {
		t.Fatalf("liquidate return: %v", err)
	}
	if !got.Eq(u(50)) {
		t.Errorf("got %s, want 50", got)
	}
}

func TestLiquidateReturn_FullSupplyDrainsReserve(t *testing.T) {
	got, err := formula.CalculateLiquidateReturn(u(777), u(31_337), 650_000, u(777))
	if err != nil {
		t.Fatalf("liquidate return: %v", err)
	}
	if !got.Eq(u(31_337)) {
		t.Errorf("got %s, want 31337", got)
	}
}

func TestFundThenLiquidate_NeverProfits(t *testing.T) {
	supply, balance := u(10_000), u(40_000)
	amount := u(500)

	for _, totalWeight := range []uint32{200_000, 500_000, formula.MaxWeight} {
		cost, err := formula.CalculateFundCost(supply, balance, totalWeight, amount)
		if err != nil {
			t.Fatalf("weight %d fund: %v", totalWeight, err)
		}

		newSupply := new(uint256.Int).Add(supply, amount)
		newBalance := new(uint256.Int).Add(balance, cost)
		back, err := formula.CalculateLiquidateReturn(newSupply, newBalance, totalWeight, amount)
		if err != nil {
			t.Fatalf("weight %d liquidate: %v", totalWeight, err)
		}

		if back.Gt(cost) {
			t.Errorf("weight %d: round trip returned %s for cost %s", totalWeight, back, cost)
		}
	}
}
