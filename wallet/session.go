package wallet

import (
	"context"
	"sync"
	"time"

	"github.com/dright-io/dright-core/app"
	"github.com/dright-io/dright-core/models"
	log "github.com/sirupsen/logrus"
)

const defaultSignTimeout = 120 * time.Second

// Manager owns connect/disconnect and sign-and-submit for wallet sessions.
// Signing is write-exclusive: one in-flight request at a time.
type Manager struct {
	registry *Registry

	signMu sync.Mutex
}

func NewManager(registry *Registry) *Manager {
	return &Manager{registry: registry}
}

func (m *Manager) Detect() []models.WalletProvider {
	return m.registry.Detect()
}

// Connect runs the fallback chain for the preferred provider, or for the
// first auto-connectable provider when none is named, and persists the
// resulting session.
func (m *Manager) Connect(ctx context.Context, preferredProviderId string) (*models.WalletConnection, error) {
	providerId := preferredProviderId
	if providerId == "" {
		providers := m.registry.Detect()
		if len(providers) == 0 {
			return nil, ErrWalletUnavailable
		}
		providerId = providers[0].Id
		for _, provider := range providers {
			if provider.CanAutoConnect {
				providerId = provider.Id
				break
			}
		}
	}

	connection, err := m.registry.Connect(ctx, providerId)
	if err != nil {
		return nil, err
	}

	PersistConnection(connection)
	return connection, nil
}

func signTimeout() time.Duration {
	millis := app.Config.Wallet.SignTimeoutMillis
	if millis == 0 {
		return defaultSignTimeout
	}
	return time.Duration(millis) * time.Millisecond
}

// SignAndSubmit tries the backend's sign primitives in fixed order and
// returns the first recognizable result. The application-level timeout is
// mandatory: a provider that never answers fails the request instead of
// hanging the caller.
func (m *Manager) SignAndSubmit(ctx context.Context, connection *models.WalletConnection, payload *TxPayload) (*models.SubmitResult, error) {
	if !connection.IsValid() {
		return nil, ErrWalletUnavailable
	}

	backend, ok := m.registry.backend(connection.BackendId)
	if !ok {
		return nil, ErrUnknownProvider
	}

	strategies := backend.SignStrategies()
	if len(strategies) == 0 {
		return nil, ErrUnsupportedProvider
	}

	m.signMu.Lock()
	defer m.signMu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, signTimeout())
	defer cancel()

	var lastErr error
	for _, strategy := range strategies {
		log.Debugf("[WALLET] Trying sign strategy %s for backend %s", strategy.Name, backend.ID())

		txHash, err := strategy.Sign(ctx, connection.AccountId, payload)
		if err == nil && txHash != "" {
			log.Infof("[WALLET] Submitted transaction %s via %s", txHash, strategy.Name)
			return &models.SubmitResult{
				TransactionHash: txHash,
				ReceiptStatus:   models.ReceiptStatusPending,
			}, nil
		}

		if err == ErrSignatureRejected {
			return nil, err
		}
		if ctx.Err() != nil {
			return nil, &SubmissionError{Reason: "signature request timed out"}
		}
		if err != nil && err != errTryNext {
			lastErr = err
			log.Debugf("[WALLET] Sign strategy %s failed: %s", strategy.Name, err.Error())
		}
	}

	if lastErr != nil {
		if submissionErr, ok := lastErr.(*SubmissionError); ok {
			return nil, submissionErr
		}
		return nil, &SubmissionError{Reason: lastErr.Error()}
	}
	return nil, ErrUnsupportedProvider
}

// Disconnect is idempotent and always clears the persisted record, even if
// the underlying backend misbehaves.
func (m *Manager) Disconnect(connection *models.WalletConnection) {
	if connection != nil {
		connection.Connected = false
	}
	ClearConnection()
	log.Info("[WALLET] Disconnected")
}

// Restore returns the persisted session, or nil when none or malformed.
func (m *Manager) Restore() *models.WalletConnection {
	return RestoreConnection()
}
