package converter

import (
	"SmartSwap/internal/token"

	"github.com/holiman/uint256"
)

// Quote is the engine's answer to a read-only pricing question.
type Quote struct {
	Amount *uint256.Int
	Fee    *uint256.Int
	Err    error
}

// QuoteRequest asks the engine loop for an expected conversion return.
// Quotes run on the engine goroutine between mutating requests so they
// always see a consistent state. Reply must be buffered (capacity 1) so
// the loop never blocks on a caller that gave up.
type QuoteRequest struct {
	Source token.Address
	Target token.Address
	Amount *uint256.Int
	Reply  chan Quote
}

// ServeQuote answers a quote request on the engine goroutine.
func (e *Engine) ServeQuote(q QuoteRequest) {
	amount, fee, err := e.GetReturn(q.Source, q.Target, q.Amount)
	select {
	case q.Reply <- Quote{Amount: amount, Fee: fee, Err: err}:
	default:
	}
}
