// Package projection maintains the read-optimized Postgres tables fed by
// the engine's non-blocking projection channel. Projections are eventually
// consistent and rebuildable from the event log.
package projection

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"SmartSwap/internal/event"
	"SmartSwap/internal/observability"

	"github.com/rs/zerolog"
)

// Output is what the orchestrator bridges from the engine's committed
// events: the envelope metadata plus the still-typed payload, so the
// worker never re-decodes JSON on the live path.
type Output struct {
	Sequence  int64
	Type      event.Type
	Timestamp time.Time
	Payload   interface{}
}

// Worker updates projection tables from committed events. The channel
// feeding it drops on overflow; a dropped event just means the projection
// lags until the next rebuild.
type Worker struct {
	db        *sql.DB
	inputChan <-chan Output
	metrics   *observability.Metrics
	log       zerolog.Logger
}

func NewWorker(db *sql.DB, inputChan <-chan Output, metrics *observability.Metrics) *Worker {
	return &Worker{
		db:        db,
		inputChan: inputChan,
		metrics:   metrics,
		log:       observability.NewLogger("projection"),
	}
}

// Run starts the projection worker loop.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case output, ok := <-w.inputChan:
			if !ok {
				return nil
			}

			start := time.Now()
			if err := w.apply(ctx, w.db, output); err != nil {
				// Continue — projections are eventually consistent and
				// rebuildable from the event log
				w.log.Warn().Err(err).Int64("sequence", output.Sequence).Msg("projection update failed")
				continue
			}
			if w.metrics != nil {
				w.metrics.ProjectionUpdateDur.WithLabelValues(output.Type.String()).
					Observe(time.Since(start).Seconds())
			}
		}
	}
}

// execer abstracts *sql.DB and *sql.Tx so rebuild can reuse apply.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

func (w *Worker) apply(ctx context.Context, exec execer, output Output) error {
	switch p := output.Payload.(type) {
	case *event.Conversion:
		if _, err := exec.ExecContext(ctx, `
			INSERT INTO projections.conversions
				(sequence, source_token, target_token, trader, beneficiary, amount_in, amount_out, fee, executed_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (sequence) DO NOTHING
		`, output.Sequence, string(p.SourceToken), string(p.TargetToken),
			string(p.Trader), string(p.Beneficiary),
			p.AmountIn.Dec(), p.AmountOut.Dec(), p.Fee.String(), output.Timestamp,
		); err != nil {
			return fmt.Errorf("conversions projection: %w", err)
		}

	case *event.PriceDataUpdate:
		if _, err := exec.ExecContext(ctx, `
			INSERT INTO projections.reserves (token, weight, balance, supply, last_sequence, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			ON CONFLICT (token) DO UPDATE SET
				weight = $2, balance = $3, supply = $4, last_sequence = $5, updated_at = $6
		`, string(p.Reserve), p.Weight, p.ReserveBalance.Dec(), p.Supply.Dec(),
			output.Sequence, output.Timestamp,
		); err != nil {
			return fmt.Errorf("reserves projection: %w", err)
		}

	case *event.LiquidityAdded:
		if err := w.insertLiquidityEvent(ctx, exec, output, "added",
			string(p.Provider), string(p.Reserve), p.Amount.Dec(), p.NewBalance.Dec(), p.NewSupply.Dec()); err != nil {
			return err
		}

	case *event.LiquidityRemoved:
		if err := w.insertLiquidityEvent(ctx, exec, output, "removed",
			string(p.Provider), string(p.Reserve), p.Amount.Dec(), p.NewBalance.Dec(), p.NewSupply.Dec()); err != nil {
			return err
		}

	case *event.ConversionFeeUpdate:
		if _, err := exec.ExecContext(ctx, `
			UPDATE projections.engine_status SET fee_ppm = $1, last_sequence = $2, updated_at = $3 WHERE id = 1
		`, p.NewFee, output.Sequence, output.Timestamp); err != nil {
			return fmt.Errorf("engine status projection: %w", err)
		}
		return nil

	case *event.ReserveAdded:
		if _, err := exec.ExecContext(ctx, `
			INSERT INTO projections.reserves (token, weight, balance, supply, last_sequence, updated_at)
			VALUES ($1, $2, 0, 0, $3, $4)
			ON CONFLICT (token) DO UPDATE SET weight = $2, last_sequence = $3, updated_at = $4
		`, string(p.Reserve), p.Weight, output.Sequence, output.Timestamp); err != nil {
			return fmt.Errorf("reserves projection: %w", err)
		}

	case *event.OwnershipAccepted:
		if _, err := exec.ExecContext(ctx, `
			UPDATE projections.engine_status SET active = TRUE, last_sequence = $1, updated_at = $2 WHERE id = 1
		`, output.Sequence, output.Timestamp); err != nil {
			return fmt.Errorf("engine status projection: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("unknown payload type %T", output.Payload)
	}

	// Advance the freshness watermark for every reserve/trade projection
	_, err := exec.ExecContext(ctx, `
		UPDATE projections.engine_status SET last_sequence = $1, updated_at = $2 WHERE id = 1 AND last_sequence < $1
	`, output.Sequence, output.Timestamp)
	return err
}

func (w *Worker) insertLiquidityEvent(ctx context.Context, exec execer, output Output, kind, provider, reserve, amount, newBalance, newSupply string) error {
	if _, err := exec.ExecContext(ctx, `
		INSERT INTO projections.liquidity_events
			(sequence, kind, provider, reserve, amount, new_balance, new_supply, executed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (sequence) DO NOTHING
	`, output.Sequence, kind, provider, reserve, amount, newBalance, newSupply, output.Timestamp); err != nil {
		return fmt.Errorf("liquidity projection: %w", err)
	}
	return nil
}
