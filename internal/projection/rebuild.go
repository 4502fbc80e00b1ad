package projection

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"SmartSwap/internal/event"
	"SmartSwap/internal/observability"
)

// Rebuild truncates every projection table and replays the whole event
// log through the same apply path the live worker uses.
func Rebuild(ctx context.Context, db *sql.DB, metrics *observability.Metrics) error {
	log := observability.NewLogger("projection-rebuild")

	truncateStatements := []string{
		`TRUNCATE projections.conversions`,
		`TRUNCATE projections.liquidity_events`,
		`TRUNCATE projections.reserves`,
		`UPDATE projections.engine_status SET fee_ppm = 0, active = FALSE, last_sequence = 0, updated_at = NOW() WHERE id = 1`,
	}
	for _, stmt := range truncateStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("truncate failed: %w", err)
		}
	}

	rows, err := db.QueryContext(ctx, `
		SELECT sequence, event_type, payload, timestamp
		FROM event_log.events
		ORDER BY sequence ASC
	`)
	if err != nil {
		return fmt.Errorf("read event log: %w", err)
	}
	defer rows.Close()

	w := &Worker{db: db, metrics: metrics, log: log}
	count := 0
	for rows.Next() {
		var (
			seq       int64
			eventType string
			payload   []byte
			ts        time.Time
		)
		if err := rows.Scan(&seq, &eventType, &payload, &ts); err != nil {
			return err
		}

		typ, err := event.TypeFromString(eventType)
		if err != nil {
			return fmt.Errorf("sequence %d: %w", seq, err)
		}
		decoded, err := event.DecodePayload(typ, payload)
		if err != nil {
			return fmt.Errorf("sequence %d: %w", seq, err)
		}

		if err := w.apply(ctx, db, Output{
			Sequence:  seq,
			Type:      typ,
			Timestamp: ts,
			Payload:   decoded,
		}); err != nil {
			return fmt.Errorf("apply sequence %d: %w", seq, err)
		}
		count++
	}
	if err := rows.Err(); err != nil {
		return err
	}

	log.Info().Int("events", count).Msg("projection rebuild complete")
	return nil
}
