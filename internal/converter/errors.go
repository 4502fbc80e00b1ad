package converter

import "errors"

// Recoverable validation failures. Each aborts the whole operation with no
// state change and surfaces a specific reason to the caller. Fatal
// invariant violations are not errors — they panic, because they indicate
// a logic or configuration defect upstream.
var (
	ErrReentrancy        = errors.New("converter: reentrant call detected")
	ErrNotOwner          = errors.New("converter: caller is not the owner")
	ErrNotNetwork        = errors.New("converter: caller is not the network contract")
	ErrActive            = errors.New("converter: engine is already active")
	ErrInactive          = errors.New("converter: engine is not active")
	ErrSameToken         = errors.New("converter: source and target are the same token")
	ErrInvalidToken      = errors.New("converter: token is neither the smart token nor a reserve")
	ErrZeroReturn        = errors.New("converter: conversion return is zero")
	ErrBelowMinReturn    = errors.New("converter: return is below the minimum requested")
	ErrNotWhitelisted    = errors.New("converter: party is not whitelisted")
	ErrZeroAmount        = errors.New("converter: amount must be positive")
	ErrFeeTooHigh        = errors.New("converter: fee exceeds the maximum conversion fee")
	ErrDepositMismatch   = errors.New("converter: attached value does not match the deposit")
	ErrDepositNotArrived = errors.New("converter: reserve deposit not found in custody")
	ErrSingleReserve     = errors.New("converter: liquidity operations require more than one reserve")
	ErrLiquidityShape    = errors.New("converter: token list must cover each reserve exactly once")
	ErrInsufficientSmart = errors.New("converter: caller holds too few smart tokens")
)
