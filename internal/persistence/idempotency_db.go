package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// PostgresIdempotencyChecker implements the cold tier of request
// deduplication against the event log.
type PostgresIdempotencyChecker struct {
	db *sql.DB
}

func NewPostgresIdempotencyChecker(db *sql.DB) *PostgresIdempotencyChecker {
	return &PostgresIdempotencyChecker{
		db: db,
	}
}

// IsDuplicate checks whether a request already produced events.
func (pic *PostgresIdempotencyChecker) IsDuplicate(requestType string, requestID string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	query := `
        SELECT 1
        FROM event_log.events
        WHERE request_id = $1
        LIMIT 1
    `

	var exists int
	err := pic.db.QueryRowContext(ctx, query, requestID).Scan(&exists)

	if err == sql.ErrNoRows {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return true, nil
}

// LoadRecentKeys returns composite keys of the most recently processed
// requests, newest first, for warming the in-memory LRU on restart.
func (pic *PostgresIdempotencyChecker) LoadRecentKeys(ctx context.Context, limit int) ([]string, error) {
	rows, err := pic.db.QueryContext(ctx, `
		SELECT DISTINCT ON (request_id) request_type, request_id
		FROM event_log.events
		ORDER BY request_id, sequence DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var requestType, requestID string
		if err := rows.Scan(&requestType, &requestID); err != nil {
			return nil, err
		}
		keys = append(keys, fmt.Sprintf("%s:%s", requestType, requestID))
	}
	return keys, rows.Err()
}
