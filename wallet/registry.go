package wallet

import (
	"context"
	"time"

	"github.com/dright-io/dright-core/app"
	"github.com/dright-io/dright-core/models"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

const defaultConnectTimeout = 60 * time.Second

// Registry detects the wallet backends available in this deployment and
// drives the per-backend fallback chain on connect.
type Registry struct {
	backends []Backend
}

// NewRegistry assembles backends from config; a backend is a candidate only
// if its prerequisites are configured.
func NewRegistry() *Registry {
	var backends []Backend

	if app.Config.Wallet.Mnemonic != "" || app.Config.Wallet.GcpKmsKeyName != "" {
		signer, err := NewConfiguredSigner()
		if err != nil {
			log.Error("[WALLET] Error initializing keystore signer: ", err)
		} else {
			backends = append(backends, &keystoreBackend{signer: signer, node: Node})
		}
	}

	if app.Config.Ethereum.RPCURL != "" {
		backends = append(backends, &nodeBackend{node: Node})
	}

	if app.Config.Wallet.RelayURL != "" {
		backends = append(backends, &relayBackend{relay: NewRelayClient(app.Config.Wallet.RelayURL)})
	}

	if app.Config.Wallet.ManualAccount != "" {
		backends = append(backends, &manualBackend{account: app.Config.Wallet.ManualAccount})
	}

	return &Registry{backends: backends}
}

// NewRegistryWithBackends is used by tests to fix the backend set.
func NewRegistryWithBackends(backends []Backend) *Registry {
	return &Registry{backends: backends}
}

// NewConfiguredSigner picks the keystore custody from config: a local
// mnemonic key when present, a GCP KMS key otherwise.
func NewConfiguredSigner() (Signer, error) {
	if app.Config.Wallet.Mnemonic != "" {
		return NewMnemonicSigner(app.Config.Wallet.Mnemonic)
	}
	return NewGcpKmsSigner(app.Config.Wallet.GcpKmsKeyName)
}

// Detect lists candidate providers. It never fails; no providers is a valid
// empty result.
func (r *Registry) Detect() []models.WalletProvider {
	providers := make([]models.WalletProvider, 0, len(r.backends))
	for _, backend := range r.backends {
		providers = append(providers, models.WalletProvider{
			Id:             backend.ID(),
			Name:           backend.Name(),
			CanAutoConnect: backend.CanAutoConnect(),
		})
	}
	return providers
}

func (r *Registry) backend(id string) (Backend, bool) {
	for _, backend := range r.backends {
		if backend.ID() == id {
			return backend, true
		}
	}
	return nil, false
}

func connectTimeout() time.Duration {
	millis := app.Config.Wallet.ConnectTimeoutMillis
	if millis == 0 {
		return defaultConnectTimeout
	}
	return time.Duration(millis) * time.Millisecond
}

// Connect runs the chosen backend's fallback chain in its fixed order and
// returns the result of the first primitive that yields a non-empty
// account. An explicit user decline stops the chain; anything else moves it
// along. The whole attempt is bounded by the connect timeout and by the
// caller's context, so an abandoned flow cancels an in-flight handshake.
func (r *Registry) Connect(ctx context.Context, providerId string) (*models.WalletConnection, error) {
	backend, ok := r.backend(providerId)
	if !ok {
		if len(r.backends) == 0 {
			return nil, ErrWalletUnavailable
		}
		return nil, ErrUnknownProvider
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout())
	defer cancel()

	strategies := backend.ConnectStrategies()
	if backend.ID() != "manual" && app.Config.Wallet.ManualAccount != "" {
		strategies = append(strategies, manualEntryStrategy(app.Config.Wallet.ManualAccount))
	}

	for _, strategy := range strategies {
		log.Debugf("[WALLET] Trying connect strategy %s for backend %s", strategy.Name, backend.ID())

		account, err := strategy.Connect(ctx)
		if err == nil && account != "" {
			connection := &models.WalletConnection{
				SessionId:   uuid.NewString(),
				BackendId:   backend.ID(),
				AccountId:   account,
				NetworkId:   app.Config.Ethereum.ChainId,
				Connected:   true,
				ConnectedAt: time.Now(),
			}
			log.Infof("[WALLET] Connected backend %s via %s", backend.ID(), strategy.Name)
			return connection, nil
		}

		if err == context.Canceled || ctx.Err() == context.Canceled {
			return nil, context.Canceled
		}
		if err == ErrUserRejected || err == ErrConnectTimeout {
			return nil, err
		}
		if err == context.DeadlineExceeded || ctx.Err() == context.DeadlineExceeded {
			return nil, ErrConnectTimeout
		}
		if err != nil && err != errTryNext {
			log.Debugf("[WALLET] Connect strategy %s failed: %s", strategy.Name, err.Error())
		}
	}

	return nil, ErrWalletUnavailable
}
