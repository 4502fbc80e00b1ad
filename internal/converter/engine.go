// Package converter implements the conversion engine: the single-threaded
// core that prices and executes exchanges between the governed smart token
// and its weighted reserve basket, maintains the reserve ledger under the
// all-or-nothing rule, and emits the observable event stream.
package converter

import (
	"fmt"

	"SmartSwap/internal/event"
	"SmartSwap/internal/observability"
	"SmartSwap/internal/pricing"
	"SmartSwap/internal/reserve"
	"SmartSwap/internal/token"

	"github.com/holiman/uint256"
)

// Config fixes the engine's immutable identity and limits.
type Config struct {
	// EngineAddr is the engine's own custody identity; reserve deposits
	// accumulate under it.
	EngineAddr token.Address

	// SmartToken is the governed token the engine controls once active.
	SmartToken token.Address

	// WrappedNative is the wrapped-currency intermediary used to pull
	// native shortfalls during fund. Empty disables the pull path.
	WrappedNative token.Address

	// Owner gates configuration calls.
	Owner token.Address

	// MaxFee is the immutable upper bound for the conversion fee, in ppm.
	MaxFee uint32
}

// Engine is the conversion engine and liquidity pool manager. All state
// mutations flow through ProcessRequest on a single goroutine; the guard
// only exists to reject reentrant calls from asset-transfer callbacks.
type Engine struct {
	cfg      Config
	registry *reserve.Registry
	pricing  *pricing.Adapter
	custody  *token.Bank

	whitelist token.Whitelist
	resolver  token.Resolver

	fee    uint32
	active bool

	guard        Guard
	sequence     int64
	hasher       *StateHasher
	idempotency  *IdempotencyChecker
	seqValidator *SequenceValidator
	metrics      *observability.Metrics

	persistChan    chan<- Output
	projectionChan chan<- Output

	// Events buffered by the operation in flight; flushed on commit,
	// dropped on rollback.
	pending []pendingEvent
}

type pendingEvent struct {
	typ     event.Type
	payload interface{}
}

// Output pairs a committed envelope with its decoded payload.
type Output struct {
	Envelope *event.Envelope
	Payload  interface{}
}

func New(
	cfg Config,
	custody *token.Bank,
	whitelist token.Whitelist,
	resolver token.Resolver,
	startSequence int64,
	persistChan, projectionChan chan<- Output,
	dbChecker DBIdempotencyChecker,
	metrics *observability.Metrics,
) *Engine {
	return &Engine{
		cfg:            cfg,
		registry:       reserve.NewRegistry(),
		pricing:        pricing.NewAdapter(),
		custody:        custody,
		whitelist:      whitelist,
		resolver:       resolver,
		guard:          Guard{},
		sequence:       startSequence,
		hasher:         NewStateHasher(),
		idempotency:    NewIdempotencyChecker(defaultLRUCapacity, dbChecker),
		seqValidator:   NewSequenceValidator(),
		metrics:        metrics,
		persistChan:    persistChan,
		projectionChan: projectionChan,
	}
}

// Registry exposes the reserve ledger for quoting and snapshotting.
func (e *Engine) Registry() *reserve.Registry { return e.registry }

// Active reports whether the engine controls the governed token.
func (e *Engine) Active() bool { return e.active }

// Fee returns the current conversion fee in ppm.
func (e *Engine) Fee() uint32 { return e.fee }

// --- Token classification ---

// tokenKind tags a token identity once at entry instead of re-deriving it
// in every branch.
type tokenKind int

const (
	kindUnknown tokenKind = iota
	kindSmartToken
	kindReserve
)

type classified struct {
	kind tokenKind
	res  *reserve.Reserve
}

func (e *Engine) classify(tok token.Address) classified {
	if tok == e.cfg.SmartToken {
		return classified{kind: kindSmartToken}
	}
	if res, err := e.registry.Get(tok); err == nil {
		return classified{kind: kindReserve, res: res}
	}
	return classified{kind: kindUnknown}
}

// --- Capability gates ---

func (e *Engine) requireOwner(caller token.Address) error {
	if caller != e.cfg.Owner {
		return ErrNotOwner
	}
	return nil
}

func (e *Engine) requireNetwork(caller token.Address) error {
	if e.resolver == nil || caller != e.resolver.AddressOf(token.RoleNetwork) {
		return ErrNotNetwork
	}
	return nil
}

func (e *Engine) requireActive() error {
	if !e.active {
		return ErrInactive
	}
	return nil
}

func (e *Engine) requireInactive() error {
	if e.active {
		return ErrActive
	}
	return nil
}

// requireMultiReserve gates the liquidity operations: a single-reserve
// pool trades through buy/sell only.
func (e *Engine) requireMultiReserve() error {
	if e.registry.Count() < 2 {
		return ErrSingleReserve
	}
	return nil
}

// --- Rollback scope ---

type checkpoint struct {
	custody     int
	balances    []*uint256.Int
	pendingMark int
}

func (e *Engine) begin() checkpoint {
	return checkpoint{
		custody:     e.custody.Snapshot(),
		balances:    e.registry.SnapshotBalances(),
		pendingMark: len(e.pending),
	}
}

func (e *Engine) rollback(cp checkpoint) {
	e.custody.RevertToSnapshot(cp.custody)
	e.registry.RestoreBalances(cp.balances)
	e.pending = e.pending[:cp.pendingMark]
}

func (e *Engine) emit(typ event.Type, payload interface{}) {
	e.pending = append(e.pending, pendingEvent{typ: typ, payload: payload})
}

// --- Lifecycle operations ---

// AddReserve appends a reserve while the engine is inactive. Order is
// significant: proportional-liquidity iteration follows it forever.
func (e *Engine) AddReserve(req AddReserveRequest) error {
	release, err := e.guard.Enter()
	if err != nil {
		return err
	}
	defer release()

	if err := e.requireOwner(req.Caller); err != nil {
		return err
	}
	if err := e.requireInactive(); err != nil {
		return err
	}
	if req.Token == e.cfg.SmartToken {
		return fmt.Errorf("%w: reserve cannot be the smart token", ErrInvalidToken)
	}
	if _, err := e.custody.Asset(req.Token); err != nil {
		return fmt.Errorf("add reserve: %w", err)
	}

	if _, err := e.registry.Add(req.Token, req.Weight); err != nil {
		return err
	}

	e.emit(event.TypeReserveAdded, &event.ReserveAdded{
		Reserve:     req.Token,
		Weight:      req.Weight,
		TotalWeight: e.registry.TotalWeight(),
	})
	return nil
}

// SetConversionFee updates the fee within the immutable maximum.
func (e *Engine) SetConversionFee(req SetFeeRequest) error {
	release, err := e.guard.Enter()
	if err != nil {
		return err
	}
	defer release()

	if err := e.requireOwner(req.Caller); err != nil {
		return err
	}
	if req.Fee > e.cfg.MaxFee {
		return fmt.Errorf("%w: %d > %d", ErrFeeTooHigh, req.Fee, e.cfg.MaxFee)
	}

	old := e.fee
	e.fee = req.Fee
	e.emit(event.TypeConversionFeeUpdate, &event.ConversionFeeUpdate{
		OldFee: old,
		NewFee: req.Fee,
	})
	return nil
}

// AcceptTokenOwnership completes the governed-token handshake, rebases
// every reserve cache against custody ground truth and activates the
// engine. Reserve configuration freezes from here on.
func (e *Engine) AcceptTokenOwnership(req AcceptOwnershipRequest) error {
	release, err := e.guard.Enter()
	if err != nil {
		return err
	}
	defer release()

	if err := e.requireOwner(req.Caller); err != nil {
		return err
	}
	if err := e.requireInactive(); err != nil {
		return err
	}

	cp := e.begin()
	governed, err := e.custody.Governed(e.cfg.SmartToken)
	if err != nil {
		return err
	}
	if err := governed.AcceptOwnership(e.cfg.EngineAddr); err != nil {
		e.rollback(cp)
		return fmt.Errorf("accept ownership: %w", err)
	}
	if err := e.registry.SyncAll(e.custody, e.cfg.EngineAddr); err != nil {
		e.rollback(cp)
		return fmt.Errorf("sync balances: %w", err)
	}

	e.active = true
	e.emit(event.TypeOwnershipAccepted, &event.OwnershipAccepted{
		Token: e.cfg.SmartToken,
		By:    e.cfg.EngineAddr,
	})
	e.custody.DiscardSnapshots()
	return nil
}

// RestoreReserve reinstates a reserve from a snapshot without the
// lifecycle gates or an event; replayed log entries fill in the rest.
func (e *Engine) RestoreReserve(tok token.Address, weight uint32, balance *uint256.Int) error {
	res, err := e.registry.Add(tok, weight)
	if err != nil {
		return err
	}
	res.Balance = balance.Clone()
	return nil
}

// --- Quoting ---

// GetReturn prices a conversion without executing it, returning the
// post-fee amount and the fee charged. Fails when source == target or
// either token is unknown.
func (e *Engine) GetReturn(source, target token.Address, amount *uint256.Int) (*uint256.Int, *uint256.Int, error) {
	if source == target {
		return nil, nil, ErrSameToken
	}

	src, dst := e.classify(source), e.classify(target)
	supply := e.totalSupply()

	switch {
	case src.kind == kindReserve && dst.kind == kindSmartToken:
		raw, err := e.pricing.PurchaseReturn(supply, src.res, amount)
		if err != nil {
			return nil, nil, err
		}
		final, fee, err := pricing.FinalAmount(raw, e.fee, pricing.MagnitudeSingle)
		return final, fee, err

	case src.kind == kindSmartToken && dst.kind == kindReserve:
		raw, err := e.pricing.SaleReturn(supply, dst.res, amount)
		if err != nil {
			return nil, nil, err
		}
		final, fee, err := pricing.FinalAmount(raw, e.fee, pricing.MagnitudeSingle)
		return final, fee, err

	case src.kind == kindReserve && dst.kind == kindReserve:
		raw, err := e.pricing.CrossReserveReturn(src.res, dst.res, amount)
		if err != nil {
			return nil, nil, err
		}
		final, fee, err := pricing.FinalAmount(raw, e.fee, pricing.MagnitudeCross)
		return final, fee, err

	default:
		return nil, nil, ErrInvalidToken
	}
}

// --- Conversion ---

// Convert executes a conversion on behalf of the network contract. The
// whole call commits or rolls back as one unit: any failure after an
// asset transfer unwinds the transfer along with every cache mutation.
func (e *Engine) Convert(req ConvertRequest) (*uint256.Int, error) {
	release, err := e.guard.Enter()
	if err != nil {
		return nil, err
	}
	defer release()

	if err := e.requireNetwork(req.Caller); err != nil {
		return nil, err
	}
	if err := e.requireActive(); err != nil {
		return nil, err
	}
	if req.SourceToken == req.TargetToken {
		return nil, ErrSameToken
	}
	if req.Amount == nil || req.Amount.IsZero() {
		return nil, ErrZeroAmount
	}
	if e.whitelist != nil {
		if !e.whitelist.IsWhitelisted(req.Trader) || !e.whitelist.IsWhitelisted(req.Beneficiary) {
			return nil, ErrNotWhitelisted
		}
	}

	src, dst := e.classify(req.SourceToken), e.classify(req.TargetToken)

	cp := e.begin()
	var out *uint256.Int

	switch {
	case src.kind == kindReserve && dst.kind == kindSmartToken:
		out, err = e.buy(req, src.res)
	case src.kind == kindSmartToken && dst.kind == kindReserve:
		out, err = e.sell(req, dst.res)
	case src.kind == kindReserve && dst.kind == kindReserve:
		out, err = e.crossConvert(req, src.res, dst.res)
	default:
		err = ErrInvalidToken
	}

	if err != nil {
		e.rollback(cp)
		return nil, err
	}
	// Committed: the undo journal for this operation is dead weight.
	e.custody.DiscardSnapshots()
	return out, nil
}

// buy converts a reserve deposit into newly issued smart tokens. The
// deposit must already sit in custody; the cached balance is re-synced
// against ground truth before any minting.
func (e *Engine) buy(req ConvertRequest, res *reserve.Reserve) (*uint256.Int, error) {
	supply := e.totalSupply()
	raw, err := e.pricing.PurchaseReturn(supply, res, req.Amount)
	if err != nil {
		return nil, fmt.Errorf("price purchase: %w", err)
	}
	final, feeAmount, err := pricing.FinalAmount(raw, e.fee, pricing.MagnitudeSingle)
	if err != nil {
		return nil, err
	}
	if final.IsZero() {
		return nil, ErrZeroReturn
	}
	if req.MinReturn != nil && final.Lt(req.MinReturn) {
		return nil, ErrBelowMinReturn
	}

	if err := e.verifyDeposit(req, res); err != nil {
		return nil, err
	}
	if err := e.registry.SyncBalance(res.Token, e.custody, e.cfg.EngineAddr); err != nil {
		return nil, err
	}

	governed, err := e.custody.Governed(e.cfg.SmartToken)
	if err != nil {
		return nil, err
	}
	if err := governed.Issue(req.Beneficiary, final); err != nil {
		return nil, fmt.Errorf("issue: %w", err)
	}

	e.emitConversion(req, req.Amount, final, feeAmount)
	e.emitPriceUpdate(res)
	return final, nil
}

// sell converts smart tokens back into a reserve. The trade may only
// exhaust the reserve completely if it also exhausts total supply exactly;
// anything else would leave supply unbacked and is a fatal defect.
func (e *Engine) sell(req ConvertRequest, res *reserve.Reserve) (*uint256.Int, error) {
	governed, err := e.custody.Governed(e.cfg.SmartToken)
	if err != nil {
		return nil, err
	}
	if governed.BalanceOf(req.Trader).Lt(req.Amount) {
		return nil, ErrInsufficientSmart
	}

	supply := e.totalSupply()
	raw, err := e.pricing.SaleReturn(supply, res, req.Amount)
	if err != nil {
		return nil, fmt.Errorf("price sale: %w", err)
	}
	final, feeAmount, err := pricing.FinalAmount(raw, e.fee, pricing.MagnitudeSingle)
	if err != nil {
		return nil, err
	}
	if final.IsZero() {
		return nil, ErrZeroReturn
	}
	if req.MinReturn != nil && final.Lt(req.MinReturn) {
		return nil, ErrBelowMinReturn
	}

	// Supply-consistency rule: exhausting the reserve is only legal when
	// the entire supply is being sold at once.
	if !final.Lt(res.Balance) && !(final.Eq(res.Balance) && req.Amount.Eq(supply)) {
		panic(fmt.Sprintf("FATAL: sale of %s would overdraw reserve %s (balance %s, supply %s)",
			req.Amount, res.Token, res.Balance, supply))
	}

	if err := governed.Destroy(req.Trader, req.Amount); err != nil {
		return nil, fmt.Errorf("destroy: %w", err)
	}

	// Funds leave rather than arrive: decrement the cache directly, no
	// re-sync, then pay out.
	res.Balance = new(uint256.Int).Sub(res.Balance, final)

	asset, err := e.custody.Asset(res.Token)
	if err != nil {
		return nil, err
	}
	if err := asset.Transfer(e.cfg.EngineAddr, req.Beneficiary, final); err != nil {
		return nil, fmt.Errorf("pay out: %w", err)
	}

	e.emitConversion(req, req.Amount, final, feeAmount)
	e.emitPriceUpdate(res)
	return final, nil
}

// crossConvert exchanges one reserve directly for another, paying the fee
// at magnitude 2 (two modeled hops). Unlike sell there is no supply-linked
// exception: draining a reserve here would still leave the smart token
// backed by the others, so the output must stay strictly below the target
// balance.
func (e *Engine) crossConvert(req ConvertRequest, from, to *reserve.Reserve) (*uint256.Int, error) {
	raw, err := e.pricing.CrossReserveReturn(from, to, req.Amount)
	if err != nil {
		return nil, fmt.Errorf("price cross-reserve: %w", err)
	}
	final, feeAmount, err := pricing.FinalAmount(raw, e.fee, pricing.MagnitudeCross)
	if err != nil {
		return nil, err
	}
	if final.IsZero() {
		return nil, ErrZeroReturn
	}
	if req.MinReturn != nil && final.Lt(req.MinReturn) {
		return nil, ErrBelowMinReturn
	}

	if !final.Lt(to.Balance) {
		panic(fmt.Sprintf("FATAL: cross conversion of %s would drain reserve %s (balance %s)",
			req.Amount, to.Token, to.Balance))
	}

	if err := e.verifyDeposit(req, from); err != nil {
		return nil, err
	}
	if err := e.registry.SyncBalance(from.Token, e.custody, e.cfg.EngineAddr); err != nil {
		return nil, err
	}

	to.Balance = new(uint256.Int).Sub(to.Balance, final)

	asset, err := e.custody.Asset(to.Token)
	if err != nil {
		return nil, err
	}
	if err := asset.Transfer(e.cfg.EngineAddr, req.Beneficiary, final); err != nil {
		return nil, fmt.Errorf("pay out: %w", err)
	}

	e.emitConversion(req, req.Amount, final, feeAmount)
	e.emitPriceUpdate(from)
	e.emitPriceUpdate(to)
	return final, nil
}

// verifyDeposit confirms the source deposit was already delivered to
// custody. The native reserve requires the attached payment to equal the
// deposit exactly; token reserves require the external balance to have
// grown by at least the deposit beyond the cached figure.
func (e *Engine) verifyDeposit(req ConvertRequest, res *reserve.Reserve) error {
	if res.Token == token.NativeAddress {
		if req.Value == nil || !req.Value.Eq(req.Amount) {
			return ErrDepositMismatch
		}
		return nil
	}

	asset, err := e.custody.Asset(res.Token)
	if err != nil {
		return err
	}
	expected := new(uint256.Int).Add(res.Balance, req.Amount)
	if asset.BalanceOf(e.cfg.EngineAddr).Lt(expected) {
		return fmt.Errorf("%w: reserve %s", ErrDepositNotArrived, res.Token)
	}
	return nil
}

// --- Event helpers ---

// feeSignBound guards the sign-carrying fee encoding: values at or above
// 2^255 would corrupt the sign bit.
var feeSignBound = new(uint256.Int).Lsh(uint256.NewInt(1), 255)

func (e *Engine) emitConversion(req ConvertRequest, amountIn, amountOut, feeAmount *uint256.Int) {
	if !feeAmount.Lt(feeSignBound) {
		panic(fmt.Sprintf("FATAL: fee %s overflows the sign-reserving bound", feeAmount))
	}
	e.emit(event.TypeConversion, &event.Conversion{
		SourceToken: req.SourceToken,
		TargetToken: req.TargetToken,
		Trader:      req.Trader,
		Beneficiary: req.Beneficiary,
		AmountIn:    amountIn.Clone(),
		AmountOut:   amountOut.Clone(),
		Fee:         feeAmount.ToBig(),
	})
}

func (e *Engine) emitPriceUpdate(res *reserve.Reserve) {
	e.emit(event.TypePriceDataUpdate, &event.PriceDataUpdate{
		Reserve:        res.Token,
		Supply:         e.totalSupply(),
		ReserveBalance: res.Balance.Clone(),
		Weight:         res.Weight,
	})
}

// totalSupply queries the governed token live; supply is never tracked
// redundantly inside the engine.
func (e *Engine) totalSupply() *uint256.Int {
	governed, err := e.custody.Governed(e.cfg.SmartToken)
	if err != nil {
		return uint256.NewInt(0)
	}
	return governed.TotalSupply()
}
