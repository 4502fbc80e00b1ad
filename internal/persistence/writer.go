package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// EventLogWriter writes committed engine events to Postgres using
// multi-row INSERT batches. Switch to pgx CopyFrom if write throughput
// ever becomes the bottleneck.
type EventLogWriter struct {
	db           *sql.DB
	batchSize    int
	flushTimeout time.Duration
}

// EventRow represents a row in event_log.events. RequestType names the
// request that produced the event; dedup keys are request_type:request_id.
type EventRow struct {
	Sequence       int64
	EventType      string
	RequestType    string
	RequestID      string
	Payload        []byte // JSON-encoded event payload
	StateHash      []byte
	PrevHash       []byte
	Timestamp      time.Time
	SourceSequence int64
}

func NewEventLogWriter(db *sql.DB, batchSize int, flushTimeout time.Duration) *EventLogWriter {
	return &EventLogWriter{
		db:           db,
		batchSize:    batchSize,
		flushTimeout: flushTimeout,
	}
}

// execer lets batch writes run either on the pool or inside a transaction.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// WriteEventBatch writes a batch of events to event_log.events using a
// multi-row INSERT. Conflicting sequences are skipped so replayed writes
// stay idempotent.
func (w *EventLogWriter) WriteEventBatch(ctx context.Context, exec execer, events []EventRow) error {
	if len(events) == 0 {
		return nil
	}
	if exec == nil {
		exec = w.db
	}

	query := `INSERT INTO event_log.events
		(sequence, event_type, request_type, request_id, payload, state_hash, prev_hash, timestamp, source_sequence)
		VALUES `

	values := make([]string, 0, len(events))
	args := make([]interface{}, 0, len(events)*9)

	for i, e := range events {
		base := i * 9
		values = append(values, fmt.Sprintf(
			"($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8, base+9,
		))
		args = append(args,
			e.Sequence, e.EventType, e.RequestType, e.RequestID, e.Payload,
			e.StateHash, e.PrevHash, e.Timestamp, e.SourceSequence,
		)
	}

	query += strings.Join(values, ", ")
	query += " ON CONFLICT (sequence) DO NOTHING"

	_, err := exec.ExecContext(ctx, query, args...)
	return err
}
