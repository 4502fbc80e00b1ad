package converter_test

import (
	"errors"
	"testing"

	"SmartSwap/internal/converter"
	"SmartSwap/internal/token"

	"github.com/holiman/uint256"
)

// twoReservePool is the standard liquidity fixture: 100% aggregate weight
// split across two reserves so fund/liquidate costs stay exactly linear.
func twoReservePool(t *testing.T, supply uint64) (*converter.Engine, *token.Bank) {
	t.Helper()
	return newEngine(t, fixtureOpts{
		supply: supply,
		reserves: []reserveSpec{
			{"usd", 500_000, 500},
			{"eur", 500_000, 1000},
		},
	})
}

// ============================================================================
// Test: Fund
// ============================================================================

func TestFund_MintsAgainstProportionalDeposits(t *testing.T) {
	eng, bank := twoReservePool(t, 1000)
	if err := bank.Mint("usd", trader, u(50)); err != nil {
		t.Fatalf("mint usd: %v", err)
	}
	if err := bank.Mint("eur", trader, u(100)); err != nil {
		t.Fatalf("mint eur: %v", err)
	}

	err := eng.Fund(converter.FundRequest{Base: reqBase(), Provider: trader, Amount: u(100)})
	if err != nil {
		t.Fatalf("fund: %v", err)
	}

	// 10% more supply costs 10% of each reserve: 50 usd, 100 eur.
	if got := smartBalance(t, bank, trader); !got.Eq(u(1100)) {
		t.Errorf("provider smart: got %s, want 1100", got)
	}
	if got := smartSupply(t, bank); !got.Eq(u(1100)) {
		t.Errorf("supply: got %s, want 1100", got)
	}
	if got, _ := eng.Registry().BalanceOf("usd"); !got.Eq(u(550)) {
		t.Errorf("usd cache: got %s, want 550", got)
	}
	if got, _ := eng.Registry().BalanceOf("eur"); !got.Eq(u(1100)) {
		t.Errorf("eur cache: got %s, want 1100", got)
	}
	usd, _ := bank.Asset("usd")
	if got := usd.BalanceOf(trader); !got.IsZero() {
		t.Errorf("provider usd remainder: got %s, want 0", got)
	}
}

func TestFund_RollsBackOnPartialCollection(t *testing.T) {
	eng, bank := twoReservePool(t, 1000)
	// Provider can cover the usd leg but not the eur leg.
	if err := bank.Mint("usd", trader, u(50)); err != nil {
		t.Fatalf("mint usd: %v", err)
	}

	err := eng.Fund(converter.FundRequest{Base: reqBase(), Provider: trader, Amount: u(100)})
	if !errors.Is(err, token.ErrInsufficientBalance) {
		t.Fatalf("got %v, want ErrInsufficientBalance", err)
	}

	// The collected usd leg was unwound along with everything else.
	usd, _ := bank.Asset("usd")
	if got := usd.BalanceOf(trader); !got.Eq(u(50)) {
		t.Errorf("provider usd: got %s, want 50", got)
	}
	if got, _ := eng.Registry().BalanceOf("usd"); !got.Eq(u(500)) {
		t.Errorf("usd cache: got %s, want 500", got)
	}
	if got := smartSupply(t, bank); !got.Eq(u(1000)) {
		t.Errorf("supply: got %s, want 1000", got)
	}
}

func TestFund_Gates(t *testing.T) {
	eng, _ := twoReservePool(t, 1000)
	err := eng.Fund(converter.FundRequest{Base: reqBase(), Provider: trader, Amount: u(0)})
	if !errors.Is(err, converter.ErrZeroAmount) {
		t.Errorf("zero amount: got %v, want ErrZeroAmount", err)
	}

	inactive, _ := newEngine(t, fixtureOpts{
		reserves: []reserveSpec{{"usd", 500_000, 500}},
		inactive: true,
	})
	err = inactive.Fund(converter.FundRequest{Base: reqBase(), Provider: trader, Amount: u(100)})
	if !errors.Is(err, converter.ErrInactive) {
		t.Errorf("inactive: got %v, want ErrInactive", err)
	}
}

func TestFund_NativeValueExcessRefunded(t *testing.T) {
	eng, bank := newEngine(t, fixtureOpts{
		supply: 1000,
		reserves: []reserveSpec{
			{token.NativeAddress, 500_000, 500},
			{"usd", 500_000, 500},
		},
	})
	// Attached payment of 80 already credited to custody; the native cost
	// will be 50. The usd leg is covered in full.
	if err := bank.Mint(token.NativeAddress, engineAddr, u(80)); err != nil {
		t.Fatalf("credit payment: %v", err)
	}
	if err := bank.Mint("usd", trader, u(50)); err != nil {
		t.Fatalf("mint usd: %v", err)
	}

	err := eng.Fund(converter.FundRequest{Base: reqBase(), Provider: trader, Amount: u(100), Value: u(80)})
	if err != nil {
		t.Fatalf("fund: %v", err)
	}

	native, _ := bank.Asset(token.NativeAddress)
	if got := native.BalanceOf(trader); !got.Eq(u(30)) {
		t.Errorf("refund: got %s, want 30", got)
	}
	if got, _ := eng.Registry().BalanceOf(token.NativeAddress); !got.Eq(u(550)) {
		t.Errorf("native cache: got %s, want 550", got)
	}
	if got, _ := eng.Registry().BalanceOf("usd"); !got.Eq(u(550)) {
		t.Errorf("usd cache: got %s, want 550", got)
	}
}

func TestFund_NativeShortfallPulledThroughWrapper(t *testing.T) {
	eng, bank := newEngine(t, fixtureOpts{
		supply: 1000,
		reserves: []reserveSpec{
			{token.NativeAddress, 500_000, 500},
			{"usd", 500_000, 500},
		},
		wrappedNative: "wnative",
	})
	// Attached 20, native cost 50: the missing 30 comes from wrapped
	// holdings.
	if err := bank.Mint(token.NativeAddress, engineAddr, u(20)); err != nil {
		t.Fatalf("credit payment: %v", err)
	}
	if err := bank.Mint("wnative", trader, u(30)); err != nil {
		t.Fatalf("mint wrapped: %v", err)
	}
	if err := bank.Mint("usd", trader, u(50)); err != nil {
		t.Fatalf("mint usd: %v", err)
	}

	err := eng.Fund(converter.FundRequest{Base: reqBase(), Provider: trader, Amount: u(100), Value: u(20)})
	if err != nil {
		t.Fatalf("fund: %v", err)
	}

	if got, _ := eng.Registry().BalanceOf(token.NativeAddress); !got.Eq(u(550)) {
		t.Errorf("native cache: got %s, want 550", got)
	}
	if got, _ := eng.Registry().BalanceOf("usd"); !got.Eq(u(550)) {
		t.Errorf("usd cache: got %s, want 550", got)
	}
	wn, _ := bank.Asset("wnative")
	if got := wn.BalanceOf(trader); !got.IsZero() {
		t.Errorf("provider wrapped remainder: got %s, want 0", got)
	}
}

func TestFund_NativeShortfallWithoutWrapperFails(t *testing.T) {
	eng, bank := newEngine(t, fixtureOpts{
		supply: 1000,
		reserves: []reserveSpec{
			{token.NativeAddress, 500_000, 500},
			{"usd", 500_000, 500},
		},
	})
	if err := bank.Mint(token.NativeAddress, engineAddr, u(20)); err != nil {
		t.Fatalf("credit payment: %v", err)
	}
	if err := bank.Mint("usd", trader, u(50)); err != nil {
		t.Fatalf("mint usd: %v", err)
	}

	err := eng.Fund(converter.FundRequest{Base: reqBase(), Provider: trader, Amount: u(100), Value: u(20)})
	if !errors.Is(err, converter.ErrDepositMismatch) {
		t.Fatalf("got %v, want ErrDepositMismatch", err)
	}
}

func TestLiquidityOps_SingleReservePoolRejected(t *testing.T) {
	eng, _ := newEngine(t, fixtureOpts{
		supply:   1000,
		reserves: []reserveSpec{{"usd", 1_000_000, 500}},
	})

	if err := eng.Fund(converter.FundRequest{Base: reqBase(), Provider: trader, Amount: u(100)}); !errors.Is(err, converter.ErrSingleReserve) {
		t.Errorf("fund: got %v, want ErrSingleReserve", err)
	}
	if err := eng.Liquidate(converter.LiquidateRequest{Base: reqBase(), Provider: trader, Amount: u(100)}); !errors.Is(err, converter.ErrSingleReserve) {
		t.Errorf("liquidate: got %v, want ErrSingleReserve", err)
	}
	_, err := eng.AddLiquidity(converter.AddLiquidityRequest{
		Base: reqBase(), Provider: trader,
		Tokens: []token.Address{"usd"}, Amounts: []*uint256.Int{u(100)},
	})
	if !errors.Is(err, converter.ErrSingleReserve) {
		t.Errorf("add liquidity: got %v, want ErrSingleReserve", err)
	}
	err = eng.RemoveLiquidity(converter.RemoveLiquidityRequest{
		Base: reqBase(), Provider: trader, Amount: u(100),
		Tokens: []token.Address{"usd"}, MinReturns: []*uint256.Int{u(0)},
	})
	if !errors.Is(err, converter.ErrSingleReserve) {
		t.Errorf("remove liquidity: got %v, want ErrSingleReserve", err)
	}
}

// ============================================================================
// Test: Liquidate
// ============================================================================

func TestLiquidate_PaysProportionalShares(t *testing.T) {
	eng, bank := twoReservePool(t, 1000)

	err := eng.Liquidate(converter.LiquidateRequest{Base: reqBase(), Provider: trader, Amount: u(100)})
	if err != nil {
		t.Fatalf("liquidate: %v", err)
	}

	usd, _ := bank.Asset("usd")
	eur, _ := bank.Asset("eur")
	if got := usd.BalanceOf(trader); !got.Eq(u(50)) {
		t.Errorf("usd payout: got %s, want 50", got)
	}
	if got := eur.BalanceOf(trader); !got.Eq(u(100)) {
		t.Errorf("eur payout: got %s, want 100", got)
	}
	if got := smartSupply(t, bank); !got.Eq(u(900)) {
		t.Errorf("supply: got %s, want 900", got)
	}
	if got, _ := eng.Registry().BalanceOf("usd"); !got.Eq(u(450)) {
		t.Errorf("usd cache: got %s, want 450", got)
	}
	if got, _ := eng.Registry().BalanceOf("eur"); !got.Eq(u(900)) {
		t.Errorf("eur cache: got %s, want 900", got)
	}
}

func TestLiquidate_FullSupplyDrainsPool(t *testing.T) {
	eng, bank := twoReservePool(t, 1000)

	err := eng.Liquidate(converter.LiquidateRequest{Base: reqBase(), Provider: trader, Amount: u(1000)})
	if err != nil {
		t.Fatalf("liquidate: %v", err)
	}
	if got := smartSupply(t, bank); !got.IsZero() {
		t.Errorf("supply: got %s, want 0", got)
	}
	if got, _ := eng.Registry().BalanceOf("usd"); !got.IsZero() {
		t.Errorf("usd cache: got %s, want 0", got)
	}
	if got, _ := eng.Registry().BalanceOf("eur"); !got.IsZero() {
		t.Errorf("eur cache: got %s, want 0", got)
	}
}

func TestLiquidate_InsufficientSmart(t *testing.T) {
	eng, _ := twoReservePool(t, 1000)
	err := eng.Liquidate(converter.LiquidateRequest{Base: reqBase(), Provider: beneficiary, Amount: u(100)})
	if !errors.Is(err, converter.ErrInsufficientSmart) {
		t.Fatalf("got %v, want ErrInsufficientSmart", err)
	}
}

// ============================================================================
// Test: AddLiquidity
// ============================================================================

func TestAddLiquidity_EmptyPoolSeedsMagnitudeMean(t *testing.T) {
	eng, bank := newEngine(t, fixtureOpts{
		reserves: []reserveSpec{
			{"usd", 300_000, 0},
			{"eur", 300_000, 0},
			{"gold", 400_000, 0},
		},
	})
	for tok, amt := range map[token.Address]uint64{"usd": 1000, "eur": 2000, "gold": 4000} {
		if err := bank.Mint(tok, trader, u(amt)); err != nil {
			t.Fatalf("mint %s: %v", tok, err)
		}
	}

	minted, err := eng.AddLiquidity(converter.AddLiquidityRequest{
		Base:     reqBase(),
		Provider: trader,
		Tokens:   []token.Address{"usd", "eur", "gold"},
		Amounts:  []*uint256.Int{u(1000), u(2000), u(4000)},
	})
	if err != nil {
		t.Fatalf("add liquidity: %v", err)
	}

	// All deposits are 4-digit, so the seed supply is 10^3.
	if !minted.Eq(u(1000)) {
		t.Errorf("minted: got %s, want 1000", minted)
	}
	if got := smartSupply(t, bank); !got.Eq(u(1000)) {
		t.Errorf("supply: got %s, want 1000", got)
	}
	// Every deposit is taken in full.
	if got, _ := eng.Registry().BalanceOf("gold"); !got.Eq(u(4000)) {
		t.Errorf("gold cache: got %s, want 4000", got)
	}
}

func TestAddLiquidity_PoolMintsLimitingShare(t *testing.T) {
	eng, bank := twoReservePool(t, 1000)
	if err := bank.Mint("usd", trader, u(100)); err != nil {
		t.Fatalf("mint usd: %v", err)
	}
	if err := bank.Mint("eur", trader, u(100)); err != nil {
		t.Fatalf("mint eur: %v", err)
	}

	minted, err := eng.AddLiquidity(converter.AddLiquidityRequest{
		Base:     reqBase(),
		Provider: trader,
		Tokens:   []token.Address{"usd", "eur"},
		Amounts:  []*uint256.Int{u(100), u(100)},
	})
	if err != nil {
		t.Fatalf("add liquidity: %v", err)
	}

	// usd supports 1000*100/600 = 166 shares, eur only 1000*100/1100 = 90:
	// the smaller deposit limits the mint.
	if !minted.Eq(u(90)) {
		t.Errorf("minted: got %s, want 90", minted)
	}

	// Each reserve is charged only the cost of 90 shares: 45 usd, 90 eur.
	usd, _ := bank.Asset("usd")
	eur, _ := bank.Asset("eur")
	if got := usd.BalanceOf(trader); !got.Eq(u(55)) {
		t.Errorf("usd remainder: got %s, want 55", got)
	}
	if got := eur.BalanceOf(trader); !got.Eq(u(10)) {
		t.Errorf("eur remainder: got %s, want 10", got)
	}
	if got, _ := eng.Registry().BalanceOf("usd"); !got.Eq(u(545)) {
		t.Errorf("usd cache: got %s, want 545", got)
	}
	if got, _ := eng.Registry().BalanceOf("eur"); !got.Eq(u(1090)) {
		t.Errorf("eur cache: got %s, want 1090", got)
	}
	if got := smartSupply(t, bank); !got.Eq(u(1090)) {
		t.Errorf("supply: got %s, want 1090", got)
	}
}

func TestAddLiquidity_MinReturnRollsBack(t *testing.T) {
	eng, bank := twoReservePool(t, 1000)
	if err := bank.Mint("usd", trader, u(100)); err != nil {
		t.Fatalf("mint usd: %v", err)
	}
	if err := bank.Mint("eur", trader, u(100)); err != nil {
		t.Fatalf("mint eur: %v", err)
	}

	_, err := eng.AddLiquidity(converter.AddLiquidityRequest{
		Base:      reqBase(),
		Provider:  trader,
		Tokens:    []token.Address{"usd", "eur"},
		Amounts:   []*uint256.Int{u(100), u(100)},
		MinReturn: u(91),
	})
	if !errors.Is(err, converter.ErrBelowMinReturn) {
		t.Fatalf("got %v, want ErrBelowMinReturn", err)
	}

	// Deposits already collected must come back.
	usd, _ := bank.Asset("usd")
	if got := usd.BalanceOf(trader); !got.Eq(u(100)) {
		t.Errorf("usd: got %s, want 100", got)
	}
	if got := smartSupply(t, bank); !got.Eq(u(1000)) {
		t.Errorf("supply: got %s, want 1000", got)
	}
}

func TestAddLiquidity_ShapeValidation(t *testing.T) {
	eng, _ := twoReservePool(t, 1000)

	tests := []struct {
		name    string
		tokens  []token.Address
		amounts []*uint256.Int
	}{
		{"missing reserve", []token.Address{"usd"}, []*uint256.Int{u(10)}},
		{"duplicate token", []token.Address{"usd", "usd"}, []*uint256.Int{u(10), u(10)}},
		{"non-reserve token", []token.Address{"usd", "gold"}, []*uint256.Int{u(10), u(10)}},
		{"length mismatch", []token.Address{"usd", "eur"}, []*uint256.Int{u(10)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := eng.AddLiquidity(converter.AddLiquidityRequest{
				Base: reqBase(), Provider: trader, Tokens: tt.tokens, Amounts: tt.amounts,
			})
			if !errors.Is(err, converter.ErrLiquidityShape) {
				t.Errorf("got %v, want ErrLiquidityShape", err)
			}
		})
	}
}

func TestAddLiquidity_ZeroAmount(t *testing.T) {
	eng, _ := twoReservePool(t, 1000)
	_, err := eng.AddLiquidity(converter.AddLiquidityRequest{
		Base:     reqBase(),
		Provider: trader,
		Tokens:   []token.Address{"usd", "eur"},
		Amounts:  []*uint256.Int{u(10), u(0)},
	})
	if !errors.Is(err, converter.ErrZeroAmount) {
		t.Fatalf("got %v, want ErrZeroAmount", err)
	}
}

// ============================================================================
// Test: RemoveLiquidity
// ============================================================================

func TestRemoveLiquidity_EnforcesPerReserveFloors(t *testing.T) {
	eng, bank := twoReservePool(t, 1000)

	// Shares for burning 100: 50 usd, 100 eur. Floor of 51 on usd trips.
	err := eng.RemoveLiquidity(converter.RemoveLiquidityRequest{
		Base:       reqBase(),
		Provider:   trader,
		Amount:     u(100),
		Tokens:     []token.Address{"usd", "eur"},
		MinReturns: []*uint256.Int{u(51), u(100)},
	})
	if !errors.Is(err, converter.ErrBelowMinReturn) {
		t.Fatalf("got %v, want ErrBelowMinReturn", err)
	}
	if got := smartSupply(t, bank); !got.Eq(u(1000)) {
		t.Errorf("supply after rejected removal: got %s, want 1000", got)
	}

	err = eng.RemoveLiquidity(converter.RemoveLiquidityRequest{
		Base:       reqBase(),
		Provider:   trader,
		Amount:     u(100),
		Tokens:     []token.Address{"eur", "usd"}, // any order is accepted
		MinReturns: []*uint256.Int{u(100), u(50)},
	})
	if err != nil {
		t.Fatalf("remove liquidity: %v", err)
	}

	usd, _ := bank.Asset("usd")
	if got := usd.BalanceOf(trader); !got.Eq(u(50)) {
		t.Errorf("usd payout: got %s, want 50", got)
	}
	if got := smartSupply(t, bank); !got.Eq(u(900)) {
		t.Errorf("supply: got %s, want 900", got)
	}
}
