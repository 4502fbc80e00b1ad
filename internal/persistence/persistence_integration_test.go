package persistence_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"SmartSwap/internal/persistence"
	"SmartSwap/internal/testutil"

	"github.com/google/uuid"
)

func setup(t *testing.T) (*sql.DB, context.Context) {
	t.Helper()
	testutil.RequireIntegration(t)

	db, cleanup := testutil.SetupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	if err := persistence.NewMigrator(db, "../../migrations").Up(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db, ctx
}

func eventRow(seq int64, requestID string) persistence.EventRow {
	return persistence.EventRow{
		Sequence:       seq,
		EventType:      "Conversion",
		RequestType:    "Convert",
		RequestID:      requestID,
		Payload:        []byte(`{"amount_in":"100"}`),
		StateHash:      []byte{0x01, byte(seq)},
		PrevHash:       []byte{0x01, byte(seq - 1)},
		Timestamp:      time.UnixMicro(1000000 + seq*1000).UTC(),
		SourceSequence: seq,
	}
}

// ============================================================================
// Test: event log writes and replay reads
// ============================================================================

func TestEventLogRoundTrip(t *testing.T) {
	db, ctx := setup(t)
	writer := persistence.NewEventLogWriter(db, 50, 10*time.Millisecond)

	rows := []persistence.EventRow{
		eventRow(1, uuid.NewString()),
		eventRow(2, uuid.NewString()),
		eventRow(3, uuid.NewString()),
	}
	if err := writer.WriteEventBatch(ctx, nil, rows); err != nil {
		t.Fatalf("write batch: %v", err)
	}

	// Redelivered batches are idempotent on sequence.
	if err := writer.WriteEventBatch(ctx, nil, rows[:2]); err != nil {
		t.Fatalf("rewrite batch: %v", err)
	}

	sm := persistence.NewSnapshotManager(db)
	got, err := sm.LoadEventsFrom(ctx, 2, 100)
	if err != nil {
		t.Fatalf("load events: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("events from 2: got %d, want 2", len(got))
	}
	if got[0].Sequence != 2 || got[1].Sequence != 3 {
		t.Errorf("sequences: got %d, %d", got[0].Sequence, got[1].Sequence)
	}
	if got[0].RequestID != rows[1].RequestID {
		t.Errorf("request id: got %s, want %s", got[0].RequestID, rows[1].RequestID)
	}

	latest, err := sm.GetLatestSequence(ctx)
	if err != nil {
		t.Fatalf("latest sequence: %v", err)
	}
	if latest != 3 {
		t.Errorf("latest: got %d, want 3", latest)
	}
}

// ============================================================================
// Test: snapshot persistence
// ============================================================================

func TestSnapshotSaveAndLoad(t *testing.T) {
	db, ctx := setup(t)
	sm := persistence.NewSnapshotManager(db)

	// No verified snapshot on a cold start.
	if snap, err := sm.LoadLatestSnapshot(ctx); err != nil || snap != nil {
		t.Fatalf("cold start: got %v, %v", snap, err)
	}

	snap := &persistence.SnapshotData{
		Sequence:  41,
		StateHash: []byte{0xaa},
		PrevHash:  []byte{0xaa},
		Fee:       3000,
		Active:    true,
		Reserves: []persistence.ReserveSnapshot{
			{Token: "usd", Weight: 500_000, Balance: "12345"},
		},
		SmartSupply:     "99999",
		SequenceState:   map[string]int64{"feed-a": 42},
		IdempotencyKeys: []string{"Convert:abc"},
		CreatedAt:       time.Now().UTC(),
	}
	if err := sm.SaveSnapshot(ctx, snap); err != nil {
		t.Fatalf("save: %v", err)
	}

	// Unverified snapshots never load.
	if got, err := sm.LoadLatestSnapshot(ctx); err != nil || got != nil {
		t.Fatalf("unverified load: got %v, %v", got, err)
	}
	if err := sm.MarkVerified(ctx, 41); err != nil {
		t.Fatalf("mark verified: %v", err)
	}

	got, err := sm.LoadLatestSnapshot(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got == nil {
		t.Fatal("verified snapshot not loaded")
	}
	if got.Sequence != 41 || got.Fee != 3000 || !got.Active {
		t.Errorf("header: got %+v", got)
	}
	if len(got.Reserves) != 1 || got.Reserves[0].Balance != "12345" {
		t.Errorf("reserves: got %+v", got.Reserves)
	}
	if got.SequenceState["feed-a"] != 42 {
		t.Errorf("sequence state: got %+v", got.SequenceState)
	}
	if got.SmartSupply != "99999" {
		t.Errorf("supply: got %s", got.SmartSupply)
	}
}

// ============================================================================
// Test: cold-tier idempotency lookup
// ============================================================================

func TestPostgresIdempotencyChecker(t *testing.T) {
	db, ctx := setup(t)
	writer := persistence.NewEventLogWriter(db, 50, 10*time.Millisecond)

	knownID := uuid.NewString()
	if err := writer.WriteEventBatch(ctx, nil, []persistence.EventRow{eventRow(1, knownID)}); err != nil {
		t.Fatalf("write: %v", err)
	}

	checker := persistence.NewPostgresIdempotencyChecker(db)
	if dup, err := checker.IsDuplicate("Convert", knownID); err != nil || !dup {
		t.Errorf("known request: got %v, %v", dup, err)
	}
	if dup, err := checker.IsDuplicate("Convert", uuid.NewString()); err != nil || dup {
		t.Errorf("unknown request: got %v, %v", dup, err)
	}

	keys, err := checker.LoadRecentKeys(ctx, 100)
	if err != nil {
		t.Fatalf("load recent keys: %v", err)
	}
	if len(keys) != 1 || keys[0] != "Convert:"+knownID {
		t.Errorf("keys: got %v", keys)
	}
}

// ============================================================================
// Test: migrator
// ============================================================================

func TestMigrator_UpIsIdempotent(t *testing.T) {
	db, ctx := setup(t)
	// setup already ran Up once; a second run must be a no-op.
	if err := persistence.NewMigrator(db, "../../migrations").Up(ctx); err != nil {
		t.Fatalf("second up: %v", err)
	}
}
