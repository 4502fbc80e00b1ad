// Package reserve implements the reserve ledger: the authoritative cached
// balance, fixed weight and existence flag for every reserve asset, with
// the aggregate-weight invariant enforced on registration.
package reserve

import (
	"errors"
	"fmt"

	"SmartSwap/internal/token"

	"github.com/holiman/uint256"
)

// WeightResolution is 100% in ppm. The sum of all reserve weights never
// exceeds it.
const WeightResolution uint32 = 1_000_000

var (
	ErrUnknownReserve   = errors.New("reserve: token is not a registered reserve")
	ErrDuplicateReserve = errors.New("reserve: token is already a registered reserve")
	ErrInvalidWeight    = errors.New("reserve: weight out of range")
	ErrWeightExceeded   = errors.New("reserve: aggregate weight would exceed resolution")
)

// Reserve is one configured reserve asset. Weight is fixed at creation;
// Balance is the cached copy of custody holdings and is only trusted after
// an explicit sync.
type Reserve struct {
	Token   token.Address
	Weight  uint32
	Balance *uint256.Int
}

// Registry holds reserves as an ordered arena plus an identity index:
// liquidity operations need stable iteration order, conversions need O(1)
// existence checks.
//
// Not thread-safe: only the single-threaded engine goroutine mutates it.
type Registry struct {
	arena       []*Reserve
	index       map[token.Address]int
	totalWeight uint32
}

func NewRegistry() *Registry {
	return &Registry{
		index: make(map[token.Address]int),
	}
}

// Add appends a reserve. The caller gates on engine lifecycle (inactive
// only) and on the token not being the governed token; the registry
// enforces uniqueness, the weight range and the aggregate-weight invariant.
func (r *Registry) Add(tok token.Address, weight uint32) (*Reserve, error) {
	if _, exists := r.index[tok]; exists {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateReserve, tok)
	}
	if weight == 0 || weight > WeightResolution {
		return nil, fmt.Errorf("%w: %d", ErrInvalidWeight, weight)
	}
	if r.totalWeight+weight > WeightResolution {
		return nil, fmt.Errorf("%w: %d + %d", ErrWeightExceeded, r.totalWeight, weight)
	}

	res := &Reserve{
		Token:   tok,
		Weight:  weight,
		Balance: uint256.NewInt(0),
	}
	r.index[tok] = len(r.arena)
	r.arena = append(r.arena, res)
	r.totalWeight += weight
	return res, nil
}

// Get returns the reserve for a token, or ErrUnknownReserve.
func (r *Registry) Get(tok token.Address) (*Reserve, error) {
	idx, ok := r.index[tok]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownReserve, tok)
	}
	return r.arena[idx], nil
}

// Has reports whether a token is a registered reserve.
func (r *Registry) Has(tok token.Address) bool {
	_, ok := r.index[tok]
	return ok
}

// BalanceOf returns the cached balance for a registered reserve.
func (r *Registry) BalanceOf(tok token.Address) (*uint256.Int, error) {
	res, err := r.Get(tok)
	if err != nil {
		return nil, err
	}
	return res.Balance.Clone(), nil
}

// All returns the reserves in registration order. The slice is shared;
// callers must not reorder it.
func (r *Registry) All() []*Reserve {
	return r.arena
}

// IndexOf returns the registration-order position of a reserve, or -1.
func (r *Registry) IndexOf(tok token.Address) int {
	idx, ok := r.index[tok]
	if !ok {
		return -1
	}
	return idx
}

// Count returns the number of registered reserves.
func (r *Registry) Count() int {
	return len(r.arena)
}

// TotalWeight returns the aggregate reserve weight ("reserve ratio").
func (r *Registry) TotalWeight() uint32 {
	return r.totalWeight
}

// SyncBalance overwrites the cached balance with the true custody holding
// of the engine for that asset. Must be called after every external
// transfer affecting the reserve — the cache is the only defense against
// donation-style external balance manipulation and double-counting.
func (r *Registry) SyncBalance(tok token.Address, custody *token.Bank, engine token.Address) error {
	res, err := r.Get(tok)
	if err != nil {
		return err
	}
	asset, err := custody.Asset(tok)
	if err != nil {
		return err
	}
	res.Balance = asset.BalanceOf(engine)
	return nil
}

// SyncAll rebases every cached balance against custody ground truth. Used
// once when ownership of the governed token is newly accepted.
func (r *Registry) SyncAll(custody *token.Bank, engine token.Address) error {
	for _, res := range r.arena {
		if err := r.SyncBalance(res.Token, custody, engine); err != nil {
			return err
		}
	}
	return nil
}

// SnapshotBalances copies the cached balances in registration order so a
// failed operation can restore them.
func (r *Registry) SnapshotBalances() []*uint256.Int {
	out := make([]*uint256.Int, len(r.arena))
	for i, res := range r.arena {
		out[i] = res.Balance.Clone()
	}
	return out
}

// RestoreBalances reinstates balances captured by SnapshotBalances.
func (r *Registry) RestoreBalances(balances []*uint256.Int) {
	for i, bal := range balances {
		r.arena[i].Balance = bal
	}
}
