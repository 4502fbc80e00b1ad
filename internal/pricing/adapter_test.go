package pricing_test

import (
	"testing"

	"SmartSwap/internal/pricing"
	"SmartSwap/internal/reserve"

	"github.com/holiman/uint256"
)

func u(v uint64) *uint256.Int { return uint256.NewInt(v) }

// ============================================================================
// Test: FinalAmount
// ============================================================================

func TestFinalAmount_ZeroFeeIsIdentity(t *testing.T) {
	raw := u(123_456)
	final, fee, err := pricing.FinalAmount(raw, 0, pricing.MagnitudeSingle)
	if err != nil {
		t.Fatalf("final amount: %v", err)
	}
	if !final.Eq(raw) {
		t.Errorf("final: got %s, want %s", final, raw)
	}
	if !fee.IsZero() {
		t.Errorf("fee: got %s, want 0", fee)
	}
}

func TestFinalAmount_SingleMagnitude(t *testing.T) {
	// 10% fee on 1000: trader keeps 900, protocol takes 100.
	final, fee, err := pricing.FinalAmount(u(1000), 100_000, pricing.MagnitudeSingle)
	if err != nil {
		t.Fatalf("final amount: %v", err)
	}
	if !final.Eq(u(900)) {
		t.Errorf("final: got %s, want 900", final)
	}
	if !fee.Eq(u(100)) {
		t.Errorf("fee: got %s, want 100", fee)
	}
}

func TestFinalAmount_CrossMagnitudeCompounds(t *testing.T) {
	// Cross conversions pay the fee twice: 1000 * 0.9 * 0.9 = 810.
	final, fee, err := pricing.FinalAmount(u(1000), 100_000, pricing.MagnitudeCross)
	if err != nil {
		t.Fatalf("final amount: %v", err)
	}
	if !final.Eq(u(810)) {
		t.Errorf("final: got %s, want 810", final)
	}
	if !fee.Eq(u(190)) {
		t.Errorf("fee: got %s, want 190", fee)
	}
}

func TestFinalAmount_CrossTruncatesOnce(t *testing.T) {
	// 7 * 700000^2 / 1000000^2 = 3.43 → 3. Truncating after each hop
	// instead (7→4→2) would lose a unit the trader is owed.
	final, fee, err := pricing.FinalAmount(u(7), 300_000, pricing.MagnitudeCross)
	if err != nil {
		t.Fatalf("final amount: %v", err)
	}
	if !final.Eq(u(3)) {
		t.Errorf("final: got %s, want 3", final)
	}
	if !fee.Eq(u(4)) {
		t.Errorf("fee: got %s, want 4", fee)
	}
}

func TestFinalAmount_RoundingFavorsProtocol(t *testing.T) {
	// 999 * 999999 / 1e6 truncates to 998: the dust lands in the fee.
	final, fee, err := pricing.FinalAmount(u(999), 1, pricing.MagnitudeSingle)
	if err != nil {
		t.Fatalf("final amount: %v", err)
	}
	if !final.Eq(u(998)) {
		t.Errorf("final: got %s, want 998", final)
	}
	if !fee.Eq(u(1)) {
		t.Errorf("fee: got %s, want 1", fee)
	}
}

func TestFinalAmount_DoesNotMutateRaw(t *testing.T) {
	raw := u(1000)
	if _, _, err := pricing.FinalAmount(raw, 100_000, pricing.MagnitudeCross); err != nil {
		t.Fatalf("final amount: %v", err)
	}
	if !raw.Eq(u(1000)) {
		t.Errorf("raw mutated: got %s, want 1000", raw)
	}
}

// ============================================================================
// Test: Adapter pricing
// ============================================================================

func TestAdapter_PurchaseReturn(t *testing.T) {
	a := pricing.NewAdapter()
	res := &reserve.Reserve{Token: "usd", Weight: reserve.WeightResolution, Balance: u(500)}

	got, err := a.PurchaseReturn(u(1000), res, u(50))
	if err != nil {
		t.Fatalf("purchase return: %v", err)
	}
	if !got.Eq(u(100)) {
		t.Errorf("got %s, want 100", got)
	}
}

func TestAdapter_SaleReturn(t *testing.T) {
	a := pricing.NewAdapter()
	res := &reserve.Reserve{Token: "usd", Weight: reserve.WeightResolution, Balance: u(550)}

	got, err := a.SaleReturn(u(1100), res, u(100))
	if err != nil {
		t.Fatalf("sale return: %v", err)
	}
	if !got.Eq(u(50)) {
		t.Errorf("got %s, want 50", got)
	}
}

func TestAdapter_CrossReserveReturn(t *testing.T) {
	a := pricing.NewAdapter()
	from := &reserve.Reserve{Token: "usd", Weight: 500_000, Balance: u(1000)}
	to := &reserve.Reserve{Token: "eur", Weight: 500_000, Balance: u(1000)}

	got, err := a.CrossReserveReturn(from, to, u(1000))
	if err != nil {
		t.Fatalf("cross return: %v", err)
	}
	if !got.Eq(u(500)) {
		t.Errorf("got %s, want 500", got)
	}
}
