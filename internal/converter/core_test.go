package converter_test

import (
	"errors"
	"fmt"
	"testing"

	"SmartSwap/internal/converter"
)

// ============================================================================
// Test: StateHasher
// ============================================================================

func TestStateHasher_Deterministic(t *testing.T) {
	h1 := converter.NewStateHasher()
	h2 := converter.NewStateHasher()

	if h1.GetPrevHash() != h2.GetPrevHash() {
		t.Fatal("fresh hashers must share the genesis tip")
	}

	a := h1.ComputeHash(1, []byte("digest-1"))
	b := h2.ComputeHash(1, []byte("digest-1"))
	if a != b {
		t.Error("identical inputs must hash identically")
	}
}

func TestStateHasher_ChainsOnTip(t *testing.T) {
	h := converter.NewStateHasher()

	first := h.ComputeHash(1, []byte("digest"))
	if h.GetPrevHash() != first {
		t.Error("tip must advance to the new hash")
	}

	// Same inputs, different tip: the chain binds each hash to its parent.
	second := h.ComputeHash(1, []byte("digest"))
	if second == first {
		t.Error("hash must differ once the tip has moved")
	}
}

func TestStateHasher_SequenceChangesHash(t *testing.T) {
	h1 := converter.NewStateHasher()
	h2 := converter.NewStateHasher()

	if h1.ComputeHash(1, []byte("digest")) == h2.ComputeHash(2, []byte("digest")) {
		t.Error("sequence must feed into the hash")
	}
}

func TestStateHasher_SetPrevHashRestoresChain(t *testing.T) {
	h := converter.NewStateHasher()
	h.ComputeHash(1, []byte("a"))
	tip := h.GetPrevHash()
	want := h.ComputeHash(2, []byte("b"))

	// A recovered hasher seeded with the snapshot tip continues the chain.
	recovered := converter.NewStateHasher()
	recovered.SetPrevHash(tip)
	if got := recovered.ComputeHash(2, []byte("b")); got != want {
		t.Error("restored hasher must reproduce the chain")
	}
}

// ============================================================================
// Test: IdempotencyLRU
// ============================================================================

func TestIdempotencyLRU_EvictsOldest(t *testing.T) {
	lru := converter.NewIdempotencyLRU(3)
	for i := 0; i < 4; i++ {
		lru.Add(fmt.Sprintf("key-%d", i))
	}

	if lru.Size() != 3 {
		t.Errorf("size: got %d, want 3", lru.Size())
	}
	if lru.Contains("key-0") {
		t.Error("key-0 should have been evicted")
	}
	if !lru.Contains("key-3") {
		t.Error("key-3 should be cached")
	}
	if lru.Evictions() != 1 {
		t.Errorf("evictions: got %d, want 1", lru.Evictions())
	}
}

func TestIdempotencyLRU_ContainsPromotes(t *testing.T) {
	lru := converter.NewIdempotencyLRU(2)
	lru.Add("a")
	lru.Add("b")

	// Touch "a" so "b" becomes the eviction candidate.
	if !lru.Contains("a") {
		t.Fatal("a should be cached")
	}
	lru.Add("c")

	if !lru.Contains("a") {
		t.Error("promoted key evicted")
	}
	if lru.Contains("b") {
		t.Error("b should have been evicted")
	}
}

func TestIdempotencyLRU_KeysOldestFirst(t *testing.T) {
	lru := converter.NewIdempotencyLRU(10)
	lru.Add("a")
	lru.Add("b")
	lru.Add("c")

	got := lru.Keys()
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("keys: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("keys: got %v, want %v", got, want)
		}
	}
}

func TestIdempotencyLRU_WarmFromKeys(t *testing.T) {
	lru := converter.NewIdempotencyLRU(10)
	lru.WarmFromKeys([]string{"a", "b", "a"})

	if lru.Size() != 2 {
		t.Errorf("size: got %d, want 2", lru.Size())
	}
	if !lru.Contains("a") || !lru.Contains("b") {
		t.Error("warmed keys missing")
	}
}

// ============================================================================
// Test: IdempotencyChecker
// ============================================================================

type fakeDBChecker struct {
	dups  map[string]bool
	err   error
	calls int
}

func (f *fakeDBChecker) IsDuplicate(requestType, requestID string) (bool, error) {
	f.calls++
	if f.err != nil {
		return false, f.err
	}
	return f.dups[requestType+":"+requestID], nil
}

func TestIdempotencyChecker_TwoTierLookup(t *testing.T) {
	db := &fakeDBChecker{dups: map[string]bool{"Convert:req-1": true}}
	ic := converter.NewIdempotencyChecker(10, db)

	// Cold hit goes to tier 2 and populates the LRU.
	if !ic.IsDuplicate("Convert", "req-1") {
		t.Fatal("tier-2 duplicate not detected")
	}
	if db.calls != 1 {
		t.Fatalf("db calls: got %d, want 1", db.calls)
	}

	// Second lookup is served from the LRU.
	if !ic.IsDuplicate("Convert", "req-1") {
		t.Fatal("tier-1 duplicate not detected")
	}
	if db.calls != 1 {
		t.Errorf("db calls after LRU hit: got %d, want 1", db.calls)
	}
}

func TestIdempotencyChecker_MarkProcessed(t *testing.T) {
	ic := converter.NewIdempotencyChecker(10, nil)

	if ic.IsDuplicate("Convert", "req-1") {
		t.Fatal("unseen request flagged as duplicate")
	}
	ic.MarkProcessed("Convert", "req-1")
	if !ic.IsDuplicate("Convert", "req-1") {
		t.Error("processed request not flagged as duplicate")
	}
	// The composite key separates request types.
	if ic.IsDuplicate("Fund", "req-1") {
		t.Error("same id under a different type flagged as duplicate")
	}
}

func TestIdempotencyChecker_DBErrorIsConservative(t *testing.T) {
	db := &fakeDBChecker{err: errors.New("connection refused")}
	ic := converter.NewIdempotencyChecker(10, db)

	// A broken tier 2 must not stall processing: treat as not duplicate.
	if ic.IsDuplicate("Convert", "req-1") {
		t.Error("db error treated as duplicate")
	}
	if got := ic.GetMetrics().GetTier2Errors(); got != 1 {
		t.Errorf("tier-2 errors: got %d, want 1", got)
	}
}

// ============================================================================
// Test: SequenceValidator
// ============================================================================

func TestSequenceValidator_AdvancesPerOrigin(t *testing.T) {
	sv := converter.NewSequenceValidator()

	for seq := int64(0); seq < 3; seq++ {
		if err := sv.ValidateSequence("feed-a", seq, false); err != nil {
			t.Fatalf("seq %d: %v", seq, err)
		}
	}
	// Origins are independent partitions.
	if err := sv.ValidateSequence("feed-b", 0, false); err != nil {
		t.Fatalf("feed-b seq 0: %v", err)
	}
	if got := sv.GetExpectedSequence("feed-a"); got != 3 {
		t.Errorf("feed-a expected: got %d, want 3", got)
	}
	if got := sv.GetExpectedSequence("feed-b"); got != 1 {
		t.Errorf("feed-b expected: got %d, want 1", got)
	}
}

func TestSequenceValidator_GapDetected(t *testing.T) {
	sv := converter.NewSequenceValidator()
	if err := sv.ValidateSequence("feed-a", 0, false); err != nil {
		t.Fatalf("seq 0: %v", err)
	}
	if err := sv.ValidateSequence("feed-a", 5, false); err == nil {
		t.Fatal("gap not detected")
	}
	// The gap does not advance the expectation.
	if got := sv.GetExpectedSequence("feed-a"); got != 1 {
		t.Errorf("expected after gap: got %d, want 1", got)
	}
}

func TestSequenceValidator_StaleRedelivery(t *testing.T) {
	sv := converter.NewSequenceValidator()
	for seq := int64(0); seq < 3; seq++ {
		if err := sv.ValidateSequence("feed-a", seq, false); err != nil {
			t.Fatalf("seq %d: %v", seq, err)
		}
	}

	// A stale sequence carrying a known-duplicate request is a redelivery.
	if err := sv.ValidateSequence("feed-a", 1, true); err != nil {
		t.Errorf("stale duplicate: %v", err)
	}
	// A stale sequence with a NEW request id is genuine disorder.
	if err := sv.ValidateSequence("feed-a", 1, false); err == nil {
		t.Error("out-of-order new request not rejected")
	}
}

func TestSequenceValidator_RecoverySeed(t *testing.T) {
	sv := converter.NewSequenceValidator()
	sv.SetExpectedSequence("feed-a", 42)

	if err := sv.ValidateSequence("feed-a", 41, false); err == nil {
		t.Error("pre-seed sequence accepted as new")
	}
	if err := sv.ValidateSequence("feed-a", 42, false); err != nil {
		t.Errorf("seeded sequence: %v", err)
	}
}
