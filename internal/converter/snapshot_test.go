package converter_test

import (
	"errors"
	"testing"

	"SmartSwap/internal/converter"
	"SmartSwap/internal/token"
)

// ============================================================================
// Test: quote serving
// ============================================================================

func TestServeQuote_RepliesWithReturn(t *testing.T) {
	eng, _ := newEngine(t, fixtureOpts{
		supply:   1000,
		reserves: []reserveSpec{{"usd", 1_000_000, 500}},
	})

	reply := make(chan converter.Quote, 1)
	eng.ServeQuote(converter.QuoteRequest{
		Source: "usd",
		Target: smartToken,
		Amount: u(50),
		Reply:  reply,
	})

	q := <-reply
	if q.Err != nil {
		t.Fatalf("quote: %v", q.Err)
	}
	if !q.Amount.Eq(u(100)) {
		t.Errorf("amount: got %s, want 100", q.Amount)
	}
	if !q.Fee.IsZero() {
		t.Errorf("fee: got %s, want 0", q.Fee)
	}
}

func TestServeQuote_PropagatesPricingError(t *testing.T) {
	eng, _ := newEngine(t, fixtureOpts{
		supply:   1000,
		reserves: []reserveSpec{{"usd", 1_000_000, 500}},
	})

	reply := make(chan converter.Quote, 1)
	eng.ServeQuote(converter.QuoteRequest{
		Source: "usd",
		Target: "usd",
		Amount: u(50),
		Reply:  reply,
	})

	q := <-reply
	if !errors.Is(q.Err, converter.ErrSameToken) {
		t.Errorf("got %v, want ErrSameToken", q.Err)
	}
}

func TestServeQuote_AbandonedCallerDoesNotBlock(t *testing.T) {
	eng, _ := newEngine(t, fixtureOpts{
		supply:   1000,
		reserves: []reserveSpec{{"usd", 1_000_000, 500}},
	})

	// Unbuffered channel with no reader: the reply must be dropped, not
	// stall the engine goroutine.
	done := make(chan struct{})
	go func() {
		eng.ServeQuote(converter.QuoteRequest{
			Source: "usd",
			Target: smartToken,
			Amount: u(50),
			Reply:  make(chan converter.Quote),
		})
		close(done)
	}()
	<-done
}

// ============================================================================
// Test: state snapshot
// ============================================================================

func TestSnapshotState_CapturesEngineState(t *testing.T) {
	f := newProcessFixture(t)
	f.drain()

	snap := f.eng.SnapshotState()

	if snap.Sequence != f.eng.Sequence() {
		t.Errorf("sequence: got %d, want %d", snap.Sequence, f.eng.Sequence())
	}
	if !snap.Active {
		t.Error("snapshot should report active")
	}
	if snap.Fee != 0 {
		t.Errorf("fee: got %d, want 0", snap.Fee)
	}
	if !snap.SmartSupply.Eq(u(1000)) {
		t.Errorf("supply: got %s, want 1000", snap.SmartSupply)
	}
	if len(snap.Reserves) != 1 {
		t.Fatalf("reserves: got %d, want 1", len(snap.Reserves))
	}
	rs := snap.Reserves[0]
	if rs.Token != "usd" || rs.Weight != 1_000_000 || !rs.Balance.Eq(u(500)) {
		t.Errorf("reserve: got %s/%d/%s", rs.Token, rs.Weight, rs.Balance)
	}
	// Setup processed two requests from the "test" origin.
	if got := snap.SequenceState["test"]; got != 2 {
		t.Errorf("origin expectation: got %d, want 2", got)
	}
	if len(snap.IdempotencyKeys) != 2 {
		t.Errorf("idempotency keys: got %d, want 2", len(snap.IdempotencyKeys))
	}
}

func TestSnapshotState_RestoreRoundTrip(t *testing.T) {
	f := newProcessFixture(t)
	f.drain()
	snap := f.eng.SnapshotState()

	cfg := converter.Config{EngineAddr: engineAddr, SmartToken: smartToken, Owner: ownerAddr, MaxFee: maxFee}
	restored := converter.New(cfg, f.bank, nil, nil, 0, nil, nil, nil, nil)
	restored.RestoreState(snap.Sequence, snap.StateHash, snap.Fee, snap.Active, snap.SequenceState)
	for _, rs := range snap.Reserves {
		if err := restored.RestoreReserve(token.Address(rs.Token), rs.Weight, rs.Balance); err != nil {
			t.Fatalf("restore reserve %s: %v", rs.Token, err)
		}
	}
	restored.WarmIdempotencyCache(snap.IdempotencyKeys)

	if restored.Sequence() != snap.Sequence {
		t.Errorf("sequence: got %d, want %d", restored.Sequence(), snap.Sequence)
	}
	if restored.Active() != snap.Active {
		t.Errorf("active: got %v, want %v", restored.Active(), snap.Active)
	}
	if got, _ := restored.Registry().BalanceOf("usd"); !got.Eq(u(500)) {
		t.Errorf("usd cache: got %s, want 500", got)
	}

	// The restored snapshot must produce the identical next hash.
	next := restored.SnapshotState()
	if next.StateHash != snap.StateHash {
		t.Errorf("hash tip: restored %x != captured %x", next.StateHash, snap.StateHash)
	}
}
