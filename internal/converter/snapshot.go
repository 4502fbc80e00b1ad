package converter

import (
	"github.com/holiman/uint256"
)

// ReserveState is one reserve's configuration and cached balance, in
// registration order.
type ReserveState struct {
	Token   string
	Weight  uint32
	Balance *uint256.Int
}

// EngineSnapshot captures everything a restart needs to resume without
// replaying the whole log: the hash-chain tip, the reserve set, the
// smart token supply, per-origin sequence counters and the recent
// idempotency keys for LRU warming.
type EngineSnapshot struct {
	Sequence        int64
	StateHash       [32]byte
	Fee             uint32
	Active          bool
	Reserves        []ReserveState
	SmartSupply     *uint256.Int
	SequenceState   map[string]int64
	IdempotencyKeys []string
}

// SnapshotState captures the engine's current state. Must be called on
// the engine goroutine.
func (e *Engine) SnapshotState() *EngineSnapshot {
	snap := &EngineSnapshot{
		Sequence:        e.sequence,
		StateHash:       e.hasher.GetPrevHash(),
		Fee:             e.fee,
		Active:          e.active,
		SmartSupply:     e.totalSupply(),
		SequenceState:   e.seqValidator.Origins(),
		IdempotencyKeys: e.idempotency.lru.Keys(),
	}
	for _, res := range e.registry.All() {
		snap.Reserves = append(snap.Reserves, ReserveState{
			Token:   string(res.Token),
			Weight:  res.Weight,
			Balance: res.Balance.Clone(),
		})
	}
	return snap
}
