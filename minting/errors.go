package minting

import "errors"

var (
	// ErrNotVerified is returned when a run is requested for a right whose
	// verification is not in the verified state.
	ErrNotVerified = errors.New("right is not verified")

	// ErrNoWalletConnected is returned when no valid wallet session exists
	// at run start.
	ErrNoWalletConnected = errors.New("no wallet connected")

	// ErrReceiptTimeout is returned when the bounded receipt poll is
	// exhausted before the network reports a terminal status.
	ErrReceiptTimeout = errors.New("receipt polling timed out")

	// ErrRunNotFound is returned when no run exists for the right.
	ErrRunNotFound = errors.New("minting run not found")

	// ErrEmptyBatch is returned when a batch start names no rights.
	ErrEmptyBatch = errors.New("batch contains no rights")
)
