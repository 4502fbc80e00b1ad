package converter

import "sync/atomic"

// Guard is the single "protected" lock shared by every state-mutating
// entry point. It is acquire-or-fail, not blocking: a reentrant call from
// inside an asset-transfer callback must fail immediately rather than
// queue behind the outer call, which is why this is an atomic flag and not
// a mutex.
type Guard struct {
	locked atomic.Bool
}

// Enter acquires the lock or fails with ErrReentrancy. The returned
// release function must run on every exit path.
func (g *Guard) Enter() (func(), error) {
	if !g.locked.CompareAndSwap(false, true) {
		return nil, ErrReentrancy
	}
	return func() { g.locked.Store(false) }, nil
}
