package verify

import "errors"

var (
	// ErrAssetNotFound is returned when the metadata provider cannot
	// resolve the claimed asset (non-2xx or malformed response).
	ErrAssetNotFound = errors.New("asset not found")

	// ErrCodeMismatch is returned when the placed ownership code does not
	// match the one generated for the claim.
	ErrCodeMismatch = errors.New("ownership code mismatch")

	// ErrClaimNotFound is returned for an unknown claim id.
	ErrClaimNotFound = errors.New("claim not found")

	// ErrClaimTerminal is returned when an operation targets a claim that
	// already reached verified, rejected or abandoned.
	ErrClaimTerminal = errors.New("claim is terminal")

	// ErrInvalidMethod is returned for an unknown verification method.
	ErrInvalidMethod = errors.New("invalid verification method")

	// ErrInvalidPlacement is returned for an unknown placement location.
	ErrInvalidPlacement = errors.New("invalid placement location")

	// ErrWrongMethod is returned when an operation does not apply to the
	// claim's chosen method.
	ErrWrongMethod = errors.New("operation does not apply to claim method")
)
