package token

import (
	"fmt"

	"github.com/holiman/uint256"
)

// Bank is the in-memory custody ledger for every asset the engine touches:
// plain reserve tokens, the wrapped-native token, the governed smart token
// and raw native-currency holdings. It keeps an undo journal so a caller
// can take a snapshot at the start of a multi-step operation and revert
// every balance mutation if any later step fails — the all-or-nothing
// guarantee the host ledger would otherwise provide.
//
// Not thread-safe: only the single-threaded engine goroutine mutates it.
type Bank struct {
	assets  map[Address]*assetState
	journal []undoEntry
}

type assetState struct {
	balances map[Address]*uint256.Int
	hook     TransferHook

	// Governed-token extras; zero-valued for plain assets.
	supply       *uint256.Int
	owner        Address
	pendingOwner Address
	governed     bool
	wrapped      bool
}

// TransferHook runs after a transfer on the asset moves balances. Token
// contracts on the host ledger can execute arbitrary third-party code on
// transfer; the hook models that behavior. A non-nil error fails the
// transfer and propagates to the caller, whose journal rollback unwinds
// the balance movement.
type TransferHook func(from, to Address, amount *uint256.Int) error

type undoEntry func()

func NewBank() *Bank {
	b := &Bank{assets: make(map[Address]*assetState)}
	// Native currency always exists.
	b.assets[NativeAddress] = newAssetState()
	return b
}

func newAssetState() *assetState {
	return &assetState{
		balances: make(map[Address]*uint256.Int),
		supply:   uint256.NewInt(0),
	}
}

// CreateAsset registers a plain transferable asset.
func (b *Bank) CreateAsset(addr Address) {
	if _, exists := b.assets[addr]; !exists {
		b.assets[addr] = newAssetState()
	}
}

// CreateGoverned registers a mintable/burnable token owned by owner.
func (b *Bank) CreateGoverned(addr, owner Address) {
	st := newAssetState()
	st.governed = true
	st.owner = owner
	b.assets[addr] = st
}

// CreateWrappedNative registers the wrapped-currency intermediary.
func (b *Bank) CreateWrappedNative(addr Address) {
	st := newAssetState()
	st.wrapped = true
	b.assets[addr] = st
}

// SetTransferHook attaches a transfer callback to a registered asset.
func (b *Bank) SetTransferHook(addr Address, hook TransferHook) error {
	st, ok := b.assets[addr]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAsset, addr)
	}
	st.hook = hook
	return nil
}

// Asset returns the transfer primitive for a registered asset.
func (b *Bank) Asset(addr Address) (Asset, error) {
	if _, ok := b.assets[addr]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownAsset, addr)
	}
	return &assetView{bank: b, addr: addr}, nil
}

// Governed returns the governed-token view of a registered governed asset.
func (b *Bank) Governed(addr Address) (Governed, error) {
	st, ok := b.assets[addr]
	if !ok || !st.governed {
		return nil, fmt.Errorf("%w: %s is not governed", ErrUnknownAsset, addr)
	}
	return &governedView{assetView{bank: b, addr: addr}}, nil
}

// WrappedNative returns the wrapped-currency view of a registered wrapper.
func (b *Bank) WrappedNative(addr Address) (WrappedNative, error) {
	st, ok := b.assets[addr]
	if !ok || !st.wrapped {
		return nil, fmt.Errorf("%w: %s is not wrapped native", ErrUnknownAsset, addr)
	}
	return &wrappedView{assetView{bank: b, addr: addr}}, nil
}

// Mint credits amount of asset to holder without a counterparty. Test and
// genesis seeding helper; conversions never create value this way.
func (b *Bank) Mint(asset, holder Address, amount *uint256.Int) error {
	st, ok := b.assets[asset]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAsset, asset)
	}
	b.credit(st, holder, amount)
	b.recordSupply(st)
	st.supply = new(uint256.Int).Add(st.supply, amount)
	return nil
}

// --- Snapshot / revert ---

// Snapshot marks the current journal position. RevertToSnapshot with the
// returned id undoes every mutation recorded after this point.
func (b *Bank) Snapshot() int {
	return len(b.journal)
}

// RevertToSnapshot unwinds the journal back to the given snapshot id.
func (b *Bank) RevertToSnapshot(id int) {
	for i := len(b.journal) - 1; i >= id; i-- {
		b.journal[i]()
	}
	b.journal = b.journal[:id]
}

// DiscardSnapshots drops journal history after a committed operation so it
// cannot grow without bound. Outstanding snapshot ids become invalid.
func (b *Bank) DiscardSnapshots() {
	b.journal = b.journal[:0]
}

func (b *Bank) recordBalance(st *assetState, holder Address) {
	prev, existed := st.balances[holder]
	if existed {
		prev = prev.Clone()
	}
	b.journal = append(b.journal, func() {
		if existed {
			st.balances[holder] = prev
		} else {
			delete(st.balances, holder)
		}
	})
}

func (b *Bank) recordSupply(st *assetState) {
	prev := st.supply.Clone()
	b.journal = append(b.journal, func() { st.supply = prev })
}

func (b *Bank) recordOwnership(st *assetState) {
	owner, pending := st.owner, st.pendingOwner
	b.journal = append(b.journal, func() {
		st.owner = owner
		st.pendingOwner = pending
	})
}

func (b *Bank) credit(st *assetState, holder Address, amount *uint256.Int) {
	b.recordBalance(st, holder)
	cur, ok := st.balances[holder]
	if !ok {
		cur = uint256.NewInt(0)
	}
	st.balances[holder] = new(uint256.Int).Add(cur, amount)
}

func (b *Bank) debit(st *assetState, holder Address, amount *uint256.Int) error {
	cur, ok := st.balances[holder]
	if !ok || cur.Lt(amount) {
		return fmt.Errorf("%w: holder %s", ErrInsufficientBalance, holder)
	}
	b.recordBalance(st, holder)
	st.balances[holder] = new(uint256.Int).Sub(cur, amount)
	return nil
}

// --- Views ---

type assetView struct {
	bank *Bank
	addr Address
}

func (v *assetView) state() *assetState { return v.bank.assets[v.addr] }

func (v *assetView) BalanceOf(holder Address) *uint256.Int {
	if bal, ok := v.state().balances[holder]; ok {
		return bal.Clone()
	}
	return uint256.NewInt(0)
}

func (v *assetView) Transfer(from, to Address, amount *uint256.Int) error {
	st := v.state()
	if err := v.bank.debit(st, from, amount); err != nil {
		return fmt.Errorf("transfer %s: %w", v.addr, err)
	}
	v.bank.credit(st, to, amount)
	if st.hook != nil {
		if err := st.hook(from, to, amount); err != nil {
			return fmt.Errorf("transfer hook %s: %w", v.addr, err)
		}
	}
	return nil
}

type governedView struct{ assetView }

func (v *governedView) TotalSupply() *uint256.Int {
	return v.state().supply.Clone()
}

func (v *governedView) Issue(to Address, amount *uint256.Int) error {
	st := v.state()
	v.bank.recordSupply(st)
	st.supply = new(uint256.Int).Add(st.supply, amount)
	v.bank.credit(st, to, amount)
	return nil
}

func (v *governedView) Destroy(from Address, amount *uint256.Int) error {
	st := v.state()
	if err := v.bank.debit(st, from, amount); err != nil {
		return fmt.Errorf("destroy %s: %w", v.addr, err)
	}
	if st.supply.Lt(amount) {
		return ErrInsufficientSupply
	}
	v.bank.recordSupply(st)
	st.supply = new(uint256.Int).Sub(st.supply, amount)
	return nil
}

func (v *governedView) Owner() Address { return v.state().owner }

func (v *governedView) TransferOwnership(by, to Address) error {
	st := v.state()
	if by != st.owner {
		return ErrNotOwner
	}
	v.bank.recordOwnership(st)
	st.pendingOwner = to
	return nil
}

func (v *governedView) AcceptOwnership(by Address) error {
	st := v.state()
	if by != st.pendingOwner || by == "" {
		return ErrNotPendingOwner
	}
	v.bank.recordOwnership(st)
	st.owner = by
	st.pendingOwner = ""
	return nil
}

type wrappedView struct{ assetView }

// Withdraw burns wrapped units held by holder and credits the same amount
// of native currency to holder.
func (v *wrappedView) Withdraw(holder Address, amount *uint256.Int) error {
	st := v.state()
	if err := v.bank.debit(st, holder, amount); err != nil {
		return fmt.Errorf("withdraw %s: %w", v.addr, err)
	}
	v.bank.recordSupply(st)
	st.supply = new(uint256.Int).Sub(st.supply, amount)
	native := v.bank.assets[NativeAddress]
	v.bank.credit(native, holder, amount)
	return nil
}
