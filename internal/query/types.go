package query

import "time"

// ReserveResponse represents one reserve's projected state for API
// queries. Balances ride as decimal strings; the projection columns are
// NUMERIC(78,0).
type ReserveResponse struct {
	Token        string `json:"token"`
	Weight       uint32 `json:"weight"`
	Balance      string `json:"balance"`
	Supply       string `json:"supply"`
	AsOfSequence int64  `json:"as_of_sequence"`
}

// EngineStatusResponse represents the engine's projected configuration.
type EngineStatusResponse struct {
	FeePPM       uint32    `json:"fee_ppm"`
	Active       bool      `json:"active"`
	AsOfSequence int64     `json:"as_of_sequence"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ConversionResponse represents one executed conversion.
type ConversionResponse struct {
	Sequence     int64     `json:"sequence"`
	SourceToken  string    `json:"source_token"`
	TargetToken  string    `json:"target_token"`
	Trader       string    `json:"trader"`
	Beneficiary  string    `json:"beneficiary"`
	AmountIn     string    `json:"amount_in"`
	AmountOut    string    `json:"amount_out"`
	Fee          string    `json:"fee"`
	ExecutedAt   time.Time `json:"executed_at"`
	AsOfSequence int64     `json:"as_of_sequence"`
}

// LiquidityEventResponse represents one reserve leg of a liquidity
// operation.
type LiquidityEventResponse struct {
	Sequence     int64     `json:"sequence"`
	Kind         string    `json:"kind"`
	Provider     string    `json:"provider"`
	Reserve      string    `json:"reserve"`
	Amount       string    `json:"amount"`
	NewBalance   string    `json:"new_balance"`
	NewSupply    string    `json:"new_supply"`
	ExecutedAt   time.Time `json:"executed_at"`
	AsOfSequence int64     `json:"as_of_sequence"`
}

// IntegrityReport is the result of an integrity verification check.
type IntegrityReport struct {
	IsHealthy       bool    `json:"is_healthy"`
	HashChainBreaks []int64 `json:"hash_chain_breaks,omitempty"`
	WeightOverflow  bool    `json:"weight_overflow,omitempty"`
	TotalWeight     int64   `json:"total_weight"`
}
