package token_test

import (
	"errors"
	"testing"

	"SmartSwap/internal/token"

	"github.com/holiman/uint256"
)

func u(v uint64) *uint256.Int { return uint256.NewInt(v) }

// ============================================================================
// Test: asset transfers
// ============================================================================

func TestTransfer_MovesBalance(t *testing.T) {
	b := token.NewBank()
	b.CreateAsset("usd")
	if err := b.Mint("usd", "alice", u(100)); err != nil {
		t.Fatalf("mint: %v", err)
	}

	asset, err := b.Asset("usd")
	if err != nil {
		t.Fatalf("asset: %v", err)
	}
	if err := asset.Transfer("alice", "bob", u(40)); err != nil {
		t.Fatalf("transfer: %v", err)
	}

	if got := asset.BalanceOf("alice"); !got.Eq(u(60)) {
		t.Errorf("alice: got %s, want 60", got)
	}
	if got := asset.BalanceOf("bob"); !got.Eq(u(40)) {
		t.Errorf("bob: got %s, want 40", got)
	}
}

func TestTransfer_InsufficientBalance(t *testing.T) {
	b := token.NewBank()
	b.CreateAsset("usd")
	if err := b.Mint("usd", "alice", u(10)); err != nil {
		t.Fatalf("mint: %v", err)
	}

	asset, _ := b.Asset("usd")
	if err := asset.Transfer("alice", "bob", u(11)); !errors.Is(err, token.ErrInsufficientBalance) {
		t.Errorf("got %v, want ErrInsufficientBalance", err)
	}
	// A failed transfer must leave both sides untouched.
	if got := asset.BalanceOf("alice"); !got.Eq(u(10)) {
		t.Errorf("alice: got %s, want 10", got)
	}
	if got := asset.BalanceOf("bob"); !got.IsZero() {
		t.Errorf("bob: got %s, want 0", got)
	}
}

func TestAsset_Unknown(t *testing.T) {
	b := token.NewBank()
	if _, err := b.Asset("missing"); !errors.Is(err, token.ErrUnknownAsset) {
		t.Errorf("got %v, want ErrUnknownAsset", err)
	}
}

func TestNativeAssetAlwaysExists(t *testing.T) {
	b := token.NewBank()
	if _, err := b.Asset(token.NativeAddress); err != nil {
		t.Errorf("native asset: %v", err)
	}
}

func TestTransferHook_RunsAfterBalancesMove(t *testing.T) {
	b := token.NewBank()
	b.CreateAsset("usd")
	if err := b.Mint("usd", "alice", u(100)); err != nil {
		t.Fatalf("mint: %v", err)
	}

	asset, _ := b.Asset("usd")
	var seenTo token.Address
	var seenBalance *uint256.Int
	err := b.SetTransferHook("usd", func(from, to token.Address, amount *uint256.Int) error {
		seenTo = to
		seenBalance = asset.BalanceOf(to)
		return nil
	})
	if err != nil {
		t.Fatalf("set hook: %v", err)
	}

	if err := asset.Transfer("alice", "bob", u(40)); err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if seenTo != "bob" {
		t.Errorf("hook recipient: got %s, want bob", seenTo)
	}
	// The hook observes the post-transfer balance.
	if seenBalance == nil || !seenBalance.Eq(u(40)) {
		t.Errorf("hook balance: got %s, want 40", seenBalance)
	}
}

func TestTransferHook_ErrorFailsTransfer(t *testing.T) {
	b := token.NewBank()
	b.CreateAsset("usd")
	if err := b.Mint("usd", "alice", u(100)); err != nil {
		t.Fatalf("mint: %v", err)
	}
	hookErr := errors.New("token contract reverted")
	if err := b.SetTransferHook("usd", func(token.Address, token.Address, *uint256.Int) error {
		return hookErr
	}); err != nil {
		t.Fatalf("set hook: %v", err)
	}

	cp := b.Snapshot()
	asset, _ := b.Asset("usd")
	if err := asset.Transfer("alice", "bob", u(40)); !errors.Is(err, hookErr) {
		t.Fatalf("transfer: got %v, want hook error", err)
	}

	// The movement stays journaled; the caller's revert restores it.
	b.RevertToSnapshot(cp)
	if got := asset.BalanceOf("alice"); !got.Eq(u(100)) {
		t.Errorf("alice: got %s, want 100", got)
	}
	if got := asset.BalanceOf("bob"); !got.IsZero() {
		t.Errorf("bob: got %s, want 0", got)
	}
}

func TestSetTransferHook_UnknownAsset(t *testing.T) {
	b := token.NewBank()
	err := b.SetTransferHook("missing", func(token.Address, token.Address, *uint256.Int) error { return nil })
	if !errors.Is(err, token.ErrUnknownAsset) {
		t.Errorf("got %v, want ErrUnknownAsset", err)
	}
}

// ============================================================================
// Test: governed token
// ============================================================================

func TestGoverned_IssueAndDestroy(t *testing.T) {
	b := token.NewBank()
	b.CreateGoverned("smart", "owner")

	gov, err := b.Governed("smart")
	if err != nil {
		t.Fatalf("governed: %v", err)
	}

	if err := gov.Issue("alice", u(1000)); err != nil {
		t.Fatalf("issue: %v", err)
	}
	if got := gov.TotalSupply(); !got.Eq(u(1000)) {
		t.Errorf("supply after issue: got %s, want 1000", got)
	}

	if err := gov.Destroy("alice", u(400)); err != nil {
		t.Fatalf("destroy: %v", err)
	}
	if got := gov.TotalSupply(); !got.Eq(u(600)) {
		t.Errorf("supply after destroy: got %s, want 600", got)
	}
	if got := gov.BalanceOf("alice"); !got.Eq(u(600)) {
		t.Errorf("alice: got %s, want 600", got)
	}
}

func TestGoverned_DestroyMoreThanHeld(t *testing.T) {
	b := token.NewBank()
	b.CreateGoverned("smart", "owner")
	gov, _ := b.Governed("smart")
	if err := gov.Issue("alice", u(5)); err != nil {
		t.Fatalf("issue: %v", err)
	}
	if err := gov.Destroy("alice", u(6)); !errors.Is(err, token.ErrInsufficientBalance) {
		t.Errorf("got %v, want ErrInsufficientBalance", err)
	}
}

func TestGoverned_ViewOfPlainAsset(t *testing.T) {
	b := token.NewBank()
	b.CreateAsset("usd")
	if _, err := b.Governed("usd"); !errors.Is(err, token.ErrUnknownAsset) {
		t.Errorf("got %v, want ErrUnknownAsset", err)
	}
}

// ============================================================================
// Test: two-step ownership handshake
// ============================================================================

func TestOwnershipHandshake(t *testing.T) {
	b := token.NewBank()
	b.CreateGoverned("smart", "owner")
	gov, _ := b.Governed("smart")

	// Acceptance before any transfer is staged fails.
	if err := gov.AcceptOwnership("engine"); !errors.Is(err, token.ErrNotPendingOwner) {
		t.Errorf("premature accept: got %v, want ErrNotPendingOwner", err)
	}

	// Only the current owner can stage a transfer.
	if err := gov.TransferOwnership("mallory", "engine"); !errors.Is(err, token.ErrNotOwner) {
		t.Errorf("transfer by non-owner: got %v, want ErrNotOwner", err)
	}

	if err := gov.TransferOwnership("owner", "engine"); err != nil {
		t.Fatalf("transfer ownership: %v", err)
	}
	// Staging does not change the owner yet.
	if got := gov.Owner(); got != "owner" {
		t.Errorf("owner before accept: got %s, want owner", got)
	}

	// Only the staged recipient can accept.
	if err := gov.AcceptOwnership("mallory"); !errors.Is(err, token.ErrNotPendingOwner) {
		t.Errorf("accept by wrong party: got %v, want ErrNotPendingOwner", err)
	}
	if err := gov.AcceptOwnership("engine"); err != nil {
		t.Fatalf("accept ownership: %v", err)
	}
	if got := gov.Owner(); got != "engine" {
		t.Errorf("owner after accept: got %s, want engine", got)
	}

	// The handshake is one-shot.
	if err := gov.AcceptOwnership("engine"); !errors.Is(err, token.ErrNotPendingOwner) {
		t.Errorf("second accept: got %v, want ErrNotPendingOwner", err)
	}
}

// ============================================================================
// Test: wrapped native
// ============================================================================

func TestWrappedNative_WithdrawCreditsNative(t *testing.T) {
	b := token.NewBank()
	b.CreateWrappedNative("wnative")
	if err := b.Mint("wnative", "alice", u(100)); err != nil {
		t.Fatalf("mint: %v", err)
	}

	wn, err := b.WrappedNative("wnative")
	if err != nil {
		t.Fatalf("wrapped native: %v", err)
	}
	if err := wn.Withdraw("alice", u(30)); err != nil {
		t.Fatalf("withdraw: %v", err)
	}

	if got := wn.BalanceOf("alice"); !got.Eq(u(70)) {
		t.Errorf("wrapped: got %s, want 70", got)
	}
	native, _ := b.Asset(token.NativeAddress)
	if got := native.BalanceOf("alice"); !got.Eq(u(30)) {
		t.Errorf("native: got %s, want 30", got)
	}
}

// ============================================================================
// Test: snapshot / revert journal
// ============================================================================

func TestRevertToSnapshot_RestoresEverything(t *testing.T) {
	b := token.NewBank()
	b.CreateAsset("usd")
	b.CreateGoverned("smart", "owner")
	if err := b.Mint("usd", "alice", u(100)); err != nil {
		t.Fatalf("mint: %v", err)
	}
	gov, _ := b.Governed("smart")
	if err := gov.Issue("alice", u(1000)); err != nil {
		t.Fatalf("issue: %v", err)
	}
	b.DiscardSnapshots()

	snap := b.Snapshot()

	usd, _ := b.Asset("usd")
	if err := usd.Transfer("alice", "bob", u(25)); err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if err := gov.Issue("bob", u(500)); err != nil {
		t.Fatalf("issue: %v", err)
	}
	if err := gov.Destroy("alice", u(100)); err != nil {
		t.Fatalf("destroy: %v", err)
	}
	if err := gov.TransferOwnership("owner", "engine"); err != nil {
		t.Fatalf("transfer ownership: %v", err)
	}
	if err := gov.AcceptOwnership("engine"); err != nil {
		t.Fatalf("accept ownership: %v", err)
	}

	b.RevertToSnapshot(snap)

	if got := usd.BalanceOf("alice"); !got.Eq(u(100)) {
		t.Errorf("alice usd: got %s, want 100", got)
	}
	if got := usd.BalanceOf("bob"); !got.IsZero() {
		t.Errorf("bob usd: got %s, want 0", got)
	}
	if got := gov.TotalSupply(); !got.Eq(u(1000)) {
		t.Errorf("supply: got %s, want 1000", got)
	}
	if got := gov.BalanceOf("bob"); !got.IsZero() {
		t.Errorf("bob smart: got %s, want 0", got)
	}
	if got := gov.Owner(); got != "owner" {
		t.Errorf("owner: got %s, want owner", got)
	}
}

func TestRevertToSnapshot_NestedSnapshots(t *testing.T) {
	b := token.NewBank()
	b.CreateAsset("usd")
	if err := b.Mint("usd", "alice", u(100)); err != nil {
		t.Fatalf("mint: %v", err)
	}
	b.DiscardSnapshots()

	usd, _ := b.Asset("usd")

	outer := b.Snapshot()
	if err := usd.Transfer("alice", "bob", u(10)); err != nil {
		t.Fatalf("transfer: %v", err)
	}

	inner := b.Snapshot()
	if err := usd.Transfer("alice", "bob", u(20)); err != nil {
		t.Fatalf("transfer: %v", err)
	}

	// Reverting the inner snapshot keeps the outer mutation.
	b.RevertToSnapshot(inner)
	if got := usd.BalanceOf("bob"); !got.Eq(u(10)) {
		t.Errorf("bob after inner revert: got %s, want 10", got)
	}

	b.RevertToSnapshot(outer)
	if got := usd.BalanceOf("alice"); !got.Eq(u(100)) {
		t.Errorf("alice after outer revert: got %s, want 100", got)
	}
}

// ============================================================================
// Test: roles and whitelist
// ============================================================================

func TestStaticResolver(t *testing.T) {
	r := token.StaticResolver{token.RoleNetwork: "net"}
	if got := r.AddressOf(token.RoleNetwork); got != "net" {
		t.Errorf("got %s, want net", got)
	}
	if got := r.AddressOf(token.RoleUpgrader); got != "" {
		t.Errorf("unset role: got %s, want empty", got)
	}
}

func TestSetWhitelist(t *testing.T) {
	w := token.SetWhitelist{"alice": true}
	if !w.IsWhitelisted("alice") {
		t.Error("alice should be whitelisted")
	}
	if w.IsWhitelisted("bob") {
		t.Error("bob should not be whitelisted")
	}
}
