// Package query provides read-only access to the projection tables.
// Queries are served via gRPC and HTTP/JSON (gRPC-Gateway); every
// response includes as_of_sequence for freshness semantics.
package query

import (
	"context"
	"database/sql"
	"fmt"
)

// Service reads projections only; it never touches engine state.
type Service struct {
	db *sql.DB
}

func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

// GetReserves returns every configured reserve's projected state.
func (s *Service) GetReserves(ctx context.Context) ([]ReserveResponse, error) {
	asOfSeq, err := s.getWatermark(ctx)
	if err != nil {
		return nil, fmt.Errorf("watermark: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT token, weight, balance::TEXT, supply::TEXT
		FROM projections.reserves
		ORDER BY token
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reserves []ReserveResponse
	for rows.Next() {
		var r ReserveResponse
		r.AsOfSequence = asOfSeq
		if err := rows.Scan(&r.Token, &r.Weight, &r.Balance, &r.Supply); err != nil {
			return nil, err
		}
		reserves = append(reserves, r)
	}

	return reserves, rows.Err()
}

// GetReserve returns one reserve's projected state, or nil when the token
// is not a reserve.
func (s *Service) GetReserve(ctx context.Context, token string) (*ReserveResponse, error) {
	asOfSeq, err := s.getWatermark(ctx)
	if err != nil {
		return nil, fmt.Errorf("watermark: %w", err)
	}

	var r ReserveResponse
	r.AsOfSequence = asOfSeq
	err = s.db.QueryRowContext(ctx, `
		SELECT token, weight, balance::TEXT, supply::TEXT
		FROM projections.reserves
		WHERE token = $1
	`, token).Scan(&r.Token, &r.Weight, &r.Balance, &r.Supply)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// GetEngineStatus returns the projected fee and activation state.
func (s *Service) GetEngineStatus(ctx context.Context) (*EngineStatusResponse, error) {
	var status EngineStatusResponse
	err := s.db.QueryRowContext(ctx, `
		SELECT fee_ppm, active, last_sequence, updated_at
		FROM projections.engine_status WHERE id = 1
	`).Scan(&status.FeePPM, &status.Active, &status.AsOfSequence, &status.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &status, nil
}

// GetConversionHistory returns executed conversions, newest first, with
// optional trader filter and cursor-based pagination.
func (s *Service) GetConversionHistory(
	ctx context.Context,
	trader *string,
	limit int,
	afterSequence *int64,
) ([]ConversionResponse, error) {
	asOfSeq, err := s.getWatermark(ctx)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT sequence, source_token, target_token, trader, beneficiary,
		       amount_in::TEXT, amount_out::TEXT, fee::TEXT, executed_at
		FROM projections.conversions
		WHERE TRUE
	`
	args := []interface{}{}
	argIdx := 1

	if trader != nil {
		query += fmt.Sprintf(" AND trader = $%d", argIdx)
		args = append(args, *trader)
		argIdx++
	}

	if afterSequence != nil {
		query += fmt.Sprintf(" AND sequence < $%d", argIdx)
		args = append(args, *afterSequence)
		argIdx++
	}

	query += " ORDER BY sequence DESC"
	query += fmt.Sprintf(" LIMIT $%d", argIdx)
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []ConversionResponse
	for rows.Next() {
		var c ConversionResponse
		c.AsOfSequence = asOfSeq
		if err := rows.Scan(
			&c.Sequence, &c.SourceToken, &c.TargetToken, &c.Trader, &c.Beneficiary,
			&c.AmountIn, &c.AmountOut, &c.Fee, &c.ExecutedAt,
		); err != nil {
			return nil, err
		}
		history = append(history, c)
	}

	return history, rows.Err()
}

// GetLiquidityHistory returns liquidity operations, newest first, with
// optional provider filter and cursor-based pagination.
func (s *Service) GetLiquidityHistory(
	ctx context.Context,
	provider *string,
	limit int,
	afterSequence *int64,
) ([]LiquidityEventResponse, error) {
	asOfSeq, err := s.getWatermark(ctx)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT sequence, kind, provider, reserve,
		       amount::TEXT, new_balance::TEXT, new_supply::TEXT, executed_at
		FROM projections.liquidity_events
		WHERE TRUE
	`
	args := []interface{}{}
	argIdx := 1

	if provider != nil {
		query += fmt.Sprintf(" AND provider = $%d", argIdx)
		args = append(args, *provider)
		argIdx++
	}

	if afterSequence != nil {
		query += fmt.Sprintf(" AND sequence < $%d", argIdx)
		args = append(args, *afterSequence)
		argIdx++
	}

	query += " ORDER BY sequence DESC"
	query += fmt.Sprintf(" LIMIT $%d", argIdx)
	args = append(args, limit)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []LiquidityEventResponse
	for rows.Next() {
		var e LiquidityEventResponse
		e.AsOfSequence = asOfSeq
		if err := rows.Scan(
			&e.Sequence, &e.Kind, &e.Provider, &e.Reserve,
			&e.Amount, &e.NewBalance, &e.NewSupply, &e.ExecutedAt,
		); err != nil {
			return nil, err
		}
		history = append(history, e)
	}

	return history, rows.Err()
}

// --- Admin APIs ---

// VerifyIntegrity checks hash-chain continuity in the event log and the
// aggregate-weight invariant in the reserve projection.
func (s *Service) VerifyIntegrity(ctx context.Context) (*IntegrityReport, error) {
	report := &IntegrityReport{}

	rows, err := s.db.QueryContext(ctx, `
		SELECT e1.sequence
		FROM event_log.events e1
		LEFT JOIN event_log.events e2 ON e2.sequence = e1.sequence - 1
		WHERE e1.sequence > 0 AND e1.prev_hash != COALESCE(e2.state_hash, e1.prev_hash)
		LIMIT 10
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var seq int64
		if err := rows.Scan(&seq); err != nil {
			return nil, err
		}
		report.HashChainBreaks = append(report.HashChainBreaks, seq)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	err = s.db.QueryRowContext(ctx, `
		SELECT COALESCE(SUM(weight), 0) FROM projections.reserves
	`).Scan(&report.TotalWeight)
	if err != nil {
		return nil, err
	}
	report.WeightOverflow = report.TotalWeight > 1_000_000

	report.IsHealthy = len(report.HashChainBreaks) == 0 && !report.WeightOverflow
	return report, nil
}

// --- helpers ---

func (s *Service) getWatermark(ctx context.Context) (int64, error) {
	var seq int64
	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(last_sequence, 0) FROM projections.engine_status WHERE id = 1
	`).Scan(&seq)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return seq, err
}
