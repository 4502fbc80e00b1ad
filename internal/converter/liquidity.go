package converter

import (
	"fmt"

	"SmartSwap/internal/event"
	"SmartSwap/internal/formula"
	"SmartSwap/internal/reserve"
	"SmartSwap/internal/token"

	"github.com/holiman/uint256"
)

// Fund mints exactly req.Amount smart tokens against proportional deposits
// into every reserve. Costs are priced off the supply as it stood before
// the mint; the mint itself happens only after every reserve was paid.
func (e *Engine) Fund(req FundRequest) error {
	release, err := e.guard.Enter()
	if err != nil {
		return err
	}
	defer release()

	if err := e.requireActive(); err != nil {
		return err
	}
	if err := e.requireMultiReserve(); err != nil {
		return err
	}
	if req.Amount == nil || req.Amount.IsZero() {
		return ErrZeroAmount
	}

	cp := e.begin()
	if err := e.fund(req); err != nil {
		e.rollback(cp)
		return err
	}
	e.custody.DiscardSnapshots()
	return nil
}

func (e *Engine) fund(req FundRequest) error {
	supply := e.totalSupply()
	totalWeight := e.registry.TotalWeight()
	newSupply := new(uint256.Int).Add(supply, req.Amount)

	for _, res := range e.registry.All() {
		cost, err := e.pricing.FundCost(supply, res, totalWeight, req.Amount)
		if err != nil {
			return fmt.Errorf("fund cost for %s: %w", res.Token, err)
		}
		if err := e.collectDeposit(req.Provider, res.Token, cost, req.Value); err != nil {
			return err
		}
		if err := e.registry.SyncBalance(res.Token, e.custody, e.cfg.EngineAddr); err != nil {
			return err
		}
		e.emit(event.TypeLiquidityAdded, &event.LiquidityAdded{
			Provider:   req.Provider,
			Reserve:    res.Token,
			Amount:     cost,
			NewBalance: res.Balance.Clone(),
			NewSupply:  newSupply.Clone(),
		})
	}

	governed, err := e.custody.Governed(e.cfg.SmartToken)
	if err != nil {
		return err
	}
	if err := governed.Issue(req.Provider, req.Amount); err != nil {
		return fmt.Errorf("issue: %w", err)
	}
	for _, res := range e.registry.All() {
		e.emitPriceUpdate(res)
	}
	return nil
}

// Liquidate burns req.Amount smart tokens and pays out each reserve's
// proportional share. The supply used for pricing is captured before the
// burn so every reserve is priced against the same denominator.
func (e *Engine) Liquidate(req LiquidateRequest) error {
	release, err := e.guard.Enter()
	if err != nil {
		return err
	}
	defer release()

	if err := e.requireActive(); err != nil {
		return err
	}
	if err := e.requireMultiReserve(); err != nil {
		return err
	}
	if req.Amount == nil || req.Amount.IsZero() {
		return ErrZeroAmount
	}

	cp := e.begin()
	if err := e.liquidate(req.Provider, req.Amount, nil); err != nil {
		e.rollback(cp)
		return err
	}
	e.custody.DiscardSnapshots()
	return nil
}

// liquidate burns and pays out. minReturns, when non-nil, carries one
// floor per reserve in registry order.
func (e *Engine) liquidate(provider token.Address, amount *uint256.Int, minReturns []*uint256.Int) error {
	governed, err := e.custody.Governed(e.cfg.SmartToken)
	if err != nil {
		return err
	}
	if governed.BalanceOf(provider).Lt(amount) {
		return ErrInsufficientSmart
	}

	supply := e.totalSupply()
	totalWeight := e.registry.TotalWeight()
	newSupply := new(uint256.Int).Sub(supply, amount)

	if err := governed.Destroy(provider, amount); err != nil {
		return fmt.Errorf("destroy: %w", err)
	}

	for i, res := range e.registry.All() {
		ret, err := e.pricing.LiquidateReturn(supply, res, totalWeight, amount)
		if err != nil {
			return fmt.Errorf("liquidate return for %s: %w", res.Token, err)
		}
		if minReturns != nil && ret.Lt(minReturns[i]) {
			return fmt.Errorf("%w: reserve %s", ErrBelowMinReturn, res.Token)
		}

		res.Balance = new(uint256.Int).Sub(res.Balance, ret)
		asset, err := e.custody.Asset(res.Token)
		if err != nil {
			return err
		}
		if err := asset.Transfer(e.cfg.EngineAddr, provider, ret); err != nil {
			return fmt.Errorf("pay out %s: %w", res.Token, err)
		}

		e.emit(event.TypeLiquidityRemoved, &event.LiquidityRemoved{
			Provider:   provider,
			Reserve:    res.Token,
			Amount:     ret,
			NewBalance: res.Balance.Clone(),
			NewSupply:  newSupply.Clone(),
		})
		e.emitPriceUpdate(res)
	}
	return nil
}

// AddLiquidity deposits caller-chosen amounts across the full reserve set
// and mints the largest smart-token amount those deposits cover. Returns
// the minted amount.
func (e *Engine) AddLiquidity(req AddLiquidityRequest) (*uint256.Int, error) {
	release, err := e.guard.Enter()
	if err != nil {
		return nil, err
	}
	defer release()

	if err := e.requireActive(); err != nil {
		return nil, err
	}
	if err := e.requireMultiReserve(); err != nil {
		return nil, err
	}
	amounts, err := e.orderByRegistry(req.Tokens, req.Amounts)
	if err != nil {
		return nil, err
	}
	for _, amt := range amounts {
		if amt == nil || amt.IsZero() {
			return nil, ErrZeroAmount
		}
	}

	cp := e.begin()
	minted, err := e.addLiquidity(req, amounts)
	if err != nil {
		e.rollback(cp)
		return nil, err
	}
	e.custody.DiscardSnapshots()
	return minted, nil
}

func (e *Engine) addLiquidity(req AddLiquidityRequest, amounts []*uint256.Int) (*uint256.Int, error) {
	supply := e.totalSupply()

	var minted *uint256.Int
	var err error
	if supply.IsZero() {
		minted, err = e.addLiquidityToEmptyPool(req.Provider, amounts, req.Value)
	} else {
		minted, err = e.addLiquidityToPool(req.Provider, supply, amounts, req.Value)
	}
	if err != nil {
		return nil, err
	}
	if req.MinReturn != nil && minted.Lt(req.MinReturn) {
		return nil, ErrBelowMinReturn
	}

	governed, err := e.custody.Governed(e.cfg.SmartToken)
	if err != nil {
		return nil, err
	}
	if err := governed.Issue(req.Provider, minted); err != nil {
		return nil, fmt.Errorf("issue: %w", err)
	}
	for _, res := range e.registry.All() {
		e.emitPriceUpdate(res)
	}
	return minted, nil
}

// addLiquidityToEmptyPool seeds an empty pool: every amount is taken in
// full and the minted supply is the order-of-magnitude mean of the
// deposits, so the initial token roughly prices at one unit regardless of
// the deposit scale.
func (e *Engine) addLiquidityToEmptyPool(provider token.Address, amounts []*uint256.Int, value *uint256.Int) (*uint256.Int, error) {
	minted := magnitudeMean(amounts)
	newSupply := minted.Clone()

	for i, res := range e.registry.All() {
		if err := e.collectDeposit(provider, res.Token, amounts[i], value); err != nil {
			return nil, err
		}
		if err := e.registry.SyncBalance(res.Token, e.custody, e.cfg.EngineAddr); err != nil {
			return nil, err
		}
		e.emit(event.TypeLiquidityAdded, &event.LiquidityAdded{
			Provider:   provider,
			Reserve:    res.Token,
			Amount:     amounts[i].Clone(),
			NewBalance: res.Balance.Clone(),
			NewSupply:  newSupply,
		})
	}
	return minted, nil
}

// addLiquidityToPool adds to a live pool: the minted amount is the
// smallest share any single deposit supports, and each reserve is charged
// only the cost of that share. Unused headroom in the other deposits is
// simply never collected (native excess is refunded explicitly).
func (e *Engine) addLiquidityToPool(provider token.Address, supply *uint256.Int, amounts []*uint256.Int, value *uint256.Int) (*uint256.Int, error) {
	totalWeight := e.registry.TotalWeight()
	reserves := e.registry.All()

	var minted *uint256.Int
	for i, res := range reserves {
		share, err := shareOfPool(supply, res, totalWeight, amounts[i])
		if err != nil {
			return nil, err
		}
		if minted == nil || share.Lt(minted) {
			minted = share
		}
	}
	if minted.IsZero() {
		return nil, ErrZeroReturn
	}

	newSupply := new(uint256.Int).Add(supply, minted)
	for i, res := range reserves {
		cost, err := e.pricing.FundCost(supply, res, totalWeight, minted)
		if err != nil {
			return nil, fmt.Errorf("fund cost for %s: %w", res.Token, err)
		}
		// minted is the smallest share any deposit covers, so its cost can
		// never exceed what the provider offered for this reserve.
		if cost.Gt(amounts[i]) {
			panic(fmt.Sprintf("FATAL: fund cost %s for %s exceeds provided amount %s",
				cost, res.Token, amounts[i]))
		}
		if err := e.collectDeposit(provider, res.Token, cost, value); err != nil {
			return nil, err
		}
		if err := e.registry.SyncBalance(res.Token, e.custody, e.cfg.EngineAddr); err != nil {
			return nil, err
		}
		e.emit(event.TypeLiquidityAdded, &event.LiquidityAdded{
			Provider:   provider,
			Reserve:    res.Token,
			Amount:     cost,
			NewBalance: res.Balance.Clone(),
			NewSupply:  newSupply.Clone(),
		})
	}
	return minted, nil
}

// RemoveLiquidity burns req.Amount and pays out every reserve's share,
// enforcing a caller-supplied floor per reserve.
func (e *Engine) RemoveLiquidity(req RemoveLiquidityRequest) error {
	release, err := e.guard.Enter()
	if err != nil {
		return err
	}
	defer release()

	if err := e.requireActive(); err != nil {
		return err
	}
	if err := e.requireMultiReserve(); err != nil {
		return err
	}
	if req.Amount == nil || req.Amount.IsZero() {
		return ErrZeroAmount
	}
	minReturns, err := e.orderByRegistry(req.Tokens, req.MinReturns)
	if err != nil {
		return err
	}
	for i, mr := range minReturns {
		if mr == nil {
			minReturns[i] = uint256.NewInt(0)
		}
	}

	cp := e.begin()
	if err := e.liquidate(req.Provider, req.Amount, minReturns); err != nil {
		e.rollback(cp)
		return err
	}
	e.custody.DiscardSnapshots()
	return nil
}

// --- Deposit collection ---

// collectDeposit moves amount of tok from the provider into engine
// custody. For the native reserve the attached value must already sit in
// custody; excess over the cost is refunded, a shortfall is pulled through
// the wrapped-native token and unwrapped.
func (e *Engine) collectDeposit(provider token.Address, tok token.Address, amount, value *uint256.Int) error {
	if tok != token.NativeAddress {
		asset, err := e.custody.Asset(tok)
		if err != nil {
			return err
		}
		if err := asset.Transfer(provider, e.cfg.EngineAddr, amount); err != nil {
			return fmt.Errorf("collect %s: %w", tok, err)
		}
		return nil
	}

	attached := uint256.NewInt(0)
	if value != nil {
		attached = value
	}
	switch {
	case attached.Gt(amount):
		native, err := e.custody.Asset(token.NativeAddress)
		if err != nil {
			return err
		}
		excess := new(uint256.Int).Sub(attached, amount)
		if err := native.Transfer(e.cfg.EngineAddr, provider, excess); err != nil {
			return fmt.Errorf("refund native excess: %w", err)
		}
	case attached.Lt(amount):
		if e.cfg.WrappedNative == "" {
			return ErrDepositMismatch
		}
		wrapped, err := e.custody.WrappedNative(e.cfg.WrappedNative)
		if err != nil {
			return err
		}
		shortfall := new(uint256.Int).Sub(amount, attached)
		if err := wrapped.Transfer(provider, e.cfg.EngineAddr, shortfall); err != nil {
			return fmt.Errorf("pull wrapped native: %w", err)
		}
		if err := wrapped.Withdraw(e.cfg.EngineAddr, shortfall); err != nil {
			return fmt.Errorf("unwrap native: %w", err)
		}
	}
	return nil
}

// orderByRegistry validates that tokens is a permutation of the full
// reserve set and reorders values to match registry order.
func (e *Engine) orderByRegistry(tokens []token.Address, values []*uint256.Int) ([]*uint256.Int, error) {
	if len(tokens) != len(values) || len(tokens) != e.registry.Count() {
		return nil, fmt.Errorf("%w: expected all %d reserves", ErrLiquidityShape, e.registry.Count())
	}
	ordered := make([]*uint256.Int, len(tokens))
	seen := make(map[token.Address]bool, len(tokens))
	for i, tok := range tokens {
		res, err := e.registry.Get(tok)
		if err != nil {
			return nil, fmt.Errorf("%w: %s is not a reserve", ErrLiquidityShape, tok)
		}
		if seen[tok] {
			return nil, fmt.Errorf("%w: duplicate token %s", ErrLiquidityShape, tok)
		}
		seen[tok] = true
		ordered[e.registry.IndexOf(res.Token)] = values[i]
	}
	return ordered, nil
}

// shareOfPool computes how many smart tokens a single reserve deposit
// would fund on its own:
//
//	supply * amount * totalWeight / ((balance + amount) * WeightResolution)
func shareOfPool(supply *uint256.Int, res *reserve.Reserve, totalWeight uint32, amount *uint256.Int) (*uint256.Int, error) {
	num := new(uint256.Int)
	if _, overflow := num.MulOverflow(supply, amount); overflow {
		return nil, formula.ErrOverflow
	}
	if _, overflow := num.MulOverflow(num, uint256.NewInt(uint64(totalWeight))); overflow {
		return nil, formula.ErrOverflow
	}
	den := new(uint256.Int).Add(res.Balance, amount)
	den.Mul(den, uint256.NewInt(uint64(reserve.WeightResolution)))
	return num.Div(num, den), nil
}

// magnitudeMean returns 10^(mean decimal magnitude − 1) of the amounts,
// with the mean rounded to nearest.
func magnitudeMean(amounts []*uint256.Int) *uint256.Int {
	sum := uint64(0)
	for _, amt := range amounts {
		sum += uint64(len(amt.Dec()))
	}
	digits := roundDiv(sum, uint64(len(amounts)))
	out := uint256.NewInt(1)
	ten := uint256.NewInt(10)
	for i := uint64(1); i < digits; i++ {
		out.Mul(out, ten)
	}
	return out
}

func roundDiv(n, d uint64) uint64 {
	return (n + d/2) / d
}
