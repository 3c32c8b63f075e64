package wallet

import (
	"errors"
	"fmt"
)

var (
	// ErrWalletUnavailable is returned when no backend can produce an
	// account: the provider object is absent or every primitive in the
	// fallback chain declined to handle the request.
	ErrWalletUnavailable = errors.New("wallet unavailable")

	// ErrUserRejected is returned when the provider reports an explicit
	// decline. Never retried automatically.
	ErrUserRejected = errors.New("user rejected request")

	// ErrConnectTimeout is returned when the relay pairing handshake
	// exceeds its bounded wait.
	ErrConnectTimeout = errors.New("connect timed out")

	// ErrSignatureRejected is returned when the provider declines to sign.
	ErrSignatureRejected = errors.New("signature rejected")

	// ErrUnsupportedProvider is returned when no sign primitive in the
	// fallback chain could handle the request for this backend.
	ErrUnsupportedProvider = errors.New("unsupported provider")

	// ErrUnknownProvider is returned for a provider id Detect never
	// reported.
	ErrUnknownProvider = errors.New("unknown provider")

	// errTryNext is the internal signal that a strategy cannot serve the
	// request and the chain should move on.
	errTryNext = errors.New("try next strategy")
)

// SubmissionError wraps the reason a submission failed after signing.
type SubmissionError struct {
	Reason string
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("submission failed: %s", e.Reason)
}
