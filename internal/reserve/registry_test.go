package reserve_test

import (
	"errors"
	"testing"

	"SmartSwap/internal/reserve"
	"SmartSwap/internal/token"

	"github.com/holiman/uint256"
)

func u(v uint64) *uint256.Int { return uint256.NewInt(v) }

// ============================================================================
// Test: registration
// ============================================================================

func TestAdd_AssignsRegistrationOrder(t *testing.T) {
	r := reserve.NewRegistry()

	for i, tok := range []token.Address{"usd", "eur", "gold"} {
		res, err := r.Add(tok, 100_000)
		if err != nil {
			t.Fatalf("add %s: %v", tok, err)
		}
		if res.Token != tok {
			t.Errorf("token: got %s, want %s", res.Token, tok)
		}
		if !res.Balance.IsZero() {
			t.Errorf("%s: fresh reserve balance %s, want 0", tok, res.Balance)
		}
		if got := r.IndexOf(tok); got != i {
			t.Errorf("IndexOf(%s): got %d, want %d", tok, got, i)
		}
	}

	if r.Count() != 3 {
		t.Errorf("count: got %d, want 3", r.Count())
	}
	if r.TotalWeight() != 300_000 {
		t.Errorf("total weight: got %d, want 300000", r.TotalWeight())
	}
}

func TestAdd_RejectsDuplicate(t *testing.T) {
	r := reserve.NewRegistry()
	if _, err := r.Add("usd", 100_000); err != nil {
		t.Fatalf("first add: %v", err)
	}
	if _, err := r.Add("usd", 200_000); !errors.Is(err, reserve.ErrDuplicateReserve) {
		t.Errorf("got %v, want ErrDuplicateReserve", err)
	}
	// The failed add must not count toward the aggregate.
	if r.TotalWeight() != 100_000 {
		t.Errorf("total weight: got %d, want 100000", r.TotalWeight())
	}
}

func TestAdd_RejectsWeightOutOfRange(t *testing.T) {
	r := reserve.NewRegistry()
	if _, err := r.Add("usd", 0); !errors.Is(err, reserve.ErrInvalidWeight) {
		t.Errorf("zero weight: got %v, want ErrInvalidWeight", err)
	}
	if _, err := r.Add("usd", reserve.WeightResolution+1); !errors.Is(err, reserve.ErrInvalidWeight) {
		t.Errorf("weight above resolution: got %v, want ErrInvalidWeight", err)
	}
}

func TestAdd_RejectsAggregateOverflow(t *testing.T) {
	r := reserve.NewRegistry()
	if _, err := r.Add("usd", 600_000); err != nil {
		t.Fatalf("add usd: %v", err)
	}
	if _, err := r.Add("eur", 500_000); !errors.Is(err, reserve.ErrWeightExceeded) {
		t.Errorf("got %v, want ErrWeightExceeded", err)
	}
	if _, err := r.Add("eur", 400_000); err != nil {
		t.Errorf("add at exactly 100%%: %v", err)
	}
	if r.TotalWeight() != reserve.WeightResolution {
		t.Errorf("total weight: got %d, want %d", r.TotalWeight(), reserve.WeightResolution)
	}
}

// ============================================================================
// Test: lookups
// ============================================================================

func TestGet_UnknownReserve(t *testing.T) {
	r := reserve.NewRegistry()
	if _, err := r.Get("usd"); !errors.Is(err, reserve.ErrUnknownReserve) {
		t.Errorf("Get: got %v, want ErrUnknownReserve", err)
	}
	if _, err := r.BalanceOf("usd"); !errors.Is(err, reserve.ErrUnknownReserve) {
		t.Errorf("BalanceOf: got %v, want ErrUnknownReserve", err)
	}
	if r.Has("usd") {
		t.Error("Has: got true, want false")
	}
	if got := r.IndexOf("usd"); got != -1 {
		t.Errorf("IndexOf: got %d, want -1", got)
	}
}

func TestBalanceOf_ReturnsCopy(t *testing.T) {
	r := reserve.NewRegistry()
	res, err := r.Add("usd", 100_000)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	res.Balance = u(500)

	bal, err := r.BalanceOf("usd")
	if err != nil {
		t.Fatalf("balance of: %v", err)
	}
	bal.SetUint64(999)

	if !res.Balance.Eq(u(500)) {
		t.Errorf("caller mutated the cached balance: %s", res.Balance)
	}
}

// ============================================================================
// Test: custody sync
// ============================================================================

func TestSyncBalance_OverwritesCache(t *testing.T) {
	const engine = token.Address("engine")

	bank := token.NewBank()
	bank.CreateAsset("usd")
	if err := bank.Mint("usd", engine, u(750)); err != nil {
		t.Fatalf("mint: %v", err)
	}

	r := reserve.NewRegistry()
	res, err := r.Add("usd", 100_000)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	res.Balance = u(1) // stale cache

	if err := r.SyncBalance("usd", bank, engine); err != nil {
		t.Fatalf("sync: %v", err)
	}
	if !res.Balance.Eq(u(750)) {
		t.Errorf("balance: got %s, want 750", res.Balance)
	}
}

func TestSyncAll_RebasesEveryReserve(t *testing.T) {
	const engine = token.Address("engine")

	bank := token.NewBank()
	bank.CreateAsset("usd")
	bank.CreateAsset("eur")
	if err := bank.Mint("usd", engine, u(100)); err != nil {
		t.Fatalf("mint usd: %v", err)
	}
	if err := bank.Mint("eur", engine, u(200)); err != nil {
		t.Fatalf("mint eur: %v", err)
	}

	r := reserve.NewRegistry()
	if _, err := r.Add("usd", 100_000); err != nil {
		t.Fatalf("add usd: %v", err)
	}
	if _, err := r.Add("eur", 100_000); err != nil {
		t.Fatalf("add eur: %v", err)
	}

	if err := r.SyncAll(bank, engine); err != nil {
		t.Fatalf("sync all: %v", err)
	}
	for _, want := range []struct {
		tok token.Address
		bal uint64
	}{{"usd", 100}, {"eur", 200}} {
		bal, err := r.BalanceOf(want.tok)
		if err != nil {
			t.Fatalf("balance of %s: %v", want.tok, err)
		}
		if !bal.Eq(u(want.bal)) {
			t.Errorf("%s: got %s, want %d", want.tok, bal, want.bal)
		}
	}
}

// ============================================================================
// Test: snapshot / restore
// ============================================================================

func TestSnapshotAndRestoreBalances(t *testing.T) {
	r := reserve.NewRegistry()
	a, _ := r.Add("usd", 100_000)
	b, _ := r.Add("eur", 100_000)
	a.Balance = u(100)
	b.Balance = u(200)

	snap := r.SnapshotBalances()

	a.Balance = u(5)
	b.Balance = u(6)
	r.RestoreBalances(snap)

	if gotA, _ := r.BalanceOf("usd"); !gotA.Eq(u(100)) {
		t.Errorf("usd: got %s, want 100", gotA)
	}
	if gotB, _ := r.BalanceOf("eur"); !gotB.Eq(u(200)) {
		t.Errorf("eur: got %s, want 200", gotB)
	}
}
