package wallet

import (
	"context"
	"errors"
	"testing"

	"github.com/dright-io/dright-core/app"
	"github.com/dright-io/dright-core/models"
	"github.com/stretchr/testify/assert"
)

type fakeBackend struct {
	id       string
	name     string
	auto     bool
	connects []ConnectStrategy
	signs    []SignStrategy
}

func (b *fakeBackend) ID() string                           { return b.id }
func (b *fakeBackend) Name() string                         { return b.name }
func (b *fakeBackend) CanAutoConnect() bool                 { return b.auto }
func (b *fakeBackend) ConnectStrategies() []ConnectStrategy { return b.connects }
func (b *fakeBackend) SignStrategies() []SignStrategy       { return b.signs }

func connectResult(account string, err error) ConnectStrategy {
	return ConnectStrategy{
		Name: "fake",
		Connect: func(ctx context.Context) (string, error) {
			return account, err
		},
	}
}

func TestDetect(t *testing.T) {

	t.Run("Empty Is Valid", func(t *testing.T) {
		registry := NewRegistryWithBackends(nil)

		providers := registry.Detect()

		assert.NotNil(t, providers)
		assert.Len(t, providers, 0)
	})

	t.Run("Reports Backends In Order", func(t *testing.T) {
		registry := NewRegistryWithBackends([]Backend{
			&fakeBackend{id: "keystore", name: "Keystore Wallet", auto: true},
			&fakeBackend{id: "relay", name: "Relay Pairing"},
		})

		providers := registry.Detect()

		assert.Len(t, providers, 2)
		assert.Equal(t, "keystore", providers[0].Id)
		assert.True(t, providers[0].CanAutoConnect)
		assert.Equal(t, "relay", providers[1].Id)
		assert.False(t, providers[1].CanAutoConnect)
	})
}

func TestRegistryConnect(t *testing.T) {

	app.Config = models.Config{}
	app.Config.Ethereum.ChainId = "1"

	t.Run("No Backends", func(t *testing.T) {
		registry := NewRegistryWithBackends(nil)

		connection, err := registry.Connect(context.Background(), "keystore")

		assert.Nil(t, connection)
		assert.Equal(t, ErrWalletUnavailable, err)
	})

	t.Run("Unknown Provider", func(t *testing.T) {
		registry := NewRegistryWithBackends([]Backend{
			&fakeBackend{id: "keystore"},
		})

		connection, err := registry.Connect(context.Background(), "hardware")

		assert.Nil(t, connection)
		assert.Equal(t, ErrUnknownProvider, err)
	})

	t.Run("First Non Empty Account Wins", func(t *testing.T) {
		registry := NewRegistryWithBackends([]Backend{
			&fakeBackend{id: "node-rpc", connects: []ConnectStrategy{
				connectResult("", errTryNext),
				connectResult("0x2222222222222222222222222222222222222222", nil),
				connectResult("0x3333333333333333333333333333333333333333", nil),
			}},
		})

		connection, err := registry.Connect(context.Background(), "node-rpc")

		assert.Nil(t, err)
		assert.Equal(t, "0x2222222222222222222222222222222222222222", connection.AccountId)
		assert.Equal(t, "node-rpc", connection.BackendId)
		assert.Equal(t, "1", connection.NetworkId)
		assert.NotEmpty(t, connection.SessionId)
		assert.True(t, connection.Connected)
	})

	t.Run("Fallback Order Is Deterministic", func(t *testing.T) {
		calls := []string{}
		strategy := func(name string, account string, err error) ConnectStrategy {
			return ConnectStrategy{
				Name: name,
				Connect: func(ctx context.Context) (string, error) {
					calls = append(calls, name)
					return account, err
				},
			}
		}

		registry := NewRegistryWithBackends([]Backend{
			&fakeBackend{id: "node-rpc", connects: []ConnectStrategy{
				strategy("first", "", errTryNext),
				strategy("second", "", errors.New("rpc refused")),
				strategy("third", "0x2222222222222222222222222222222222222222", nil),
			}},
		})

		_, err := registry.Connect(context.Background(), "node-rpc")

		assert.Nil(t, err)
		assert.Equal(t, []string{"first", "second", "third"}, calls)
	})

	t.Run("User Rejection Stops Chain", func(t *testing.T) {
		reached := false
		registry := NewRegistryWithBackends([]Backend{
			&fakeBackend{id: "node-rpc", connects: []ConnectStrategy{
				connectResult("", ErrUserRejected),
				{Name: "never", Connect: func(ctx context.Context) (string, error) {
					reached = true
					return "0x2222222222222222222222222222222222222222", nil
				}},
			}},
		})

		connection, err := registry.Connect(context.Background(), "node-rpc")

		assert.Nil(t, connection)
		assert.Equal(t, ErrUserRejected, err)
		assert.False(t, reached)
	})

	t.Run("All Strategies Decline", func(t *testing.T) {
		registry := NewRegistryWithBackends([]Backend{
			&fakeBackend{id: "node-rpc", connects: []ConnectStrategy{
				connectResult("", errTryNext),
				connectResult("", errTryNext),
			}},
		})

		connection, err := registry.Connect(context.Background(), "node-rpc")

		assert.Nil(t, connection)
		assert.Equal(t, ErrWalletUnavailable, err)
	})

	t.Run("Connect Timeout", func(t *testing.T) {
		registry := NewRegistryWithBackends([]Backend{
			&fakeBackend{id: "relay", connects: []ConnectStrategy{
				connectResult("", ErrConnectTimeout),
			}},
		})

		connection, err := registry.Connect(context.Background(), "relay")

		assert.Nil(t, connection)
		assert.Equal(t, ErrConnectTimeout, err)
	})

	t.Run("Caller Cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		registry := NewRegistryWithBackends([]Backend{
			&fakeBackend{id: "relay", connects: []ConnectStrategy{
				{Name: "hangs", Connect: func(ctx context.Context) (string, error) {
					cancel()
					<-ctx.Done()
					return "", ctx.Err()
				}},
			}},
		})

		connection, err := registry.Connect(ctx, "relay")

		assert.Nil(t, connection)
		assert.Equal(t, context.Canceled, err)
	})

	t.Run("Cancellation Is Not A Timeout", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		registry := NewRegistryWithBackends([]Backend{
			&fakeBackend{id: "relay", connects: []ConnectStrategy{
				{Name: "hangs", Connect: func(ctx context.Context) (string, error) {
					cancel()
					<-ctx.Done()
					return "", ErrConnectTimeout
				}},
			}},
		})

		connection, err := registry.Connect(ctx, "relay")

		assert.Nil(t, connection)
		assert.Equal(t, context.Canceled, err)
	})

	t.Run("Manual Entry Appended As Last Resort", func(t *testing.T) {
		app.Config.Wallet.ManualAccount = "0x4444444444444444444444444444444444444444"
		defer func() { app.Config.Wallet.ManualAccount = "" }()

		registry := NewRegistryWithBackends([]Backend{
			&fakeBackend{id: "node-rpc", connects: []ConnectStrategy{
				connectResult("", errTryNext),
			}},
		})

		connection, err := registry.Connect(context.Background(), "node-rpc")

		assert.Nil(t, err)
		assert.Equal(t, "0x4444444444444444444444444444444444444444", connection.AccountId)
		assert.Equal(t, "node-rpc", connection.BackendId)
	})
}
