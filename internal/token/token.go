// Package token defines the external-collaborator contracts the engine
// consumes — the asset transfer primitive, the governed (mintable/burnable)
// smart token, the optional whitelist and the role resolver — plus the
// in-memory custody bank backing them in this process.
package token

import (
	"errors"

	"github.com/holiman/uint256"
)

// Address identifies a token contract or a holder.
type Address string

// NativeAddress is the sentinel identity of the host's native currency.
// Native holdings live directly in custody rather than behind a contract.
const NativeAddress Address = "native"

// Role names resolved through the Resolver on every gated call.
const (
	RoleNetwork  = "network"
	RoleUpgrader = "upgrader"
)

var (
	ErrUnknownAsset        = errors.New("token: unknown asset")
	ErrInsufficientBalance = errors.New("token: insufficient balance")
	ErrInsufficientSupply  = errors.New("token: insufficient supply")
	ErrNotOwner            = errors.New("token: caller is not the owner")
	ErrNotPendingOwner     = errors.New("token: caller is not the pending owner")
)

// Asset is the transfer primitive for a single token. Implementations must
// surface failure through the error return; callers tolerate non-conforming
// tokens by re-checking balances after transfers rather than trusting the
// return alone.
type Asset interface {
	BalanceOf(holder Address) *uint256.Int
	Transfer(from, to Address, amount *uint256.Int) error
}

// Governed is the smart token controlled by the engine: an Asset with a
// live supply, mint/burn and a two-step ownership handshake.
type Governed interface {
	Asset
	TotalSupply() *uint256.Int
	Issue(to Address, amount *uint256.Int) error
	Destroy(from Address, amount *uint256.Int) error
	Owner() Address
	TransferOwnership(by, to Address) error
	AcceptOwnership(by Address) error
}

// WrappedNative is the wrapped-currency intermediary used to pull
// native-currency shortfalls: Withdraw burns wrapped units and credits the
// holder's native balance.
type WrappedNative interface {
	Asset
	Withdraw(holder Address, amount *uint256.Int) error
}

// Whitelist gates conversion parties. A nil whitelist disables gating.
type Whitelist interface {
	IsWhitelisted(addr Address) bool
}

// Resolver maps a logical role name to a concrete caller identity.
type Resolver interface {
	AddressOf(role string) Address
}

// StaticResolver is a fixed role table.
type StaticResolver map[string]Address

func (r StaticResolver) AddressOf(role string) Address { return r[role] }

// SetWhitelist is a mutable address-set whitelist.
type SetWhitelist map[Address]bool

func (w SetWhitelist) IsWhitelisted(addr Address) bool { return w[addr] }
