package wallet

import (
	"context"
	"errors"
	"testing"

	"github.com/dright-io/dright-core/app"
	appmocks "github.com/dright-io/dright-core/app/mocks"
	"github.com/dright-io/dright-core/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func signResult(txHash string, err error) SignStrategy {
	return SignStrategy{
		Name: "fake",
		Sign: func(ctx context.Context, account string, payload *TxPayload) (string, error) {
			return txHash, err
		},
	}
}

func TestManagerConnect(t *testing.T) {

	app.Config = models.Config{}

	t.Run("No Providers", func(t *testing.T) {
		manager := NewManager(NewRegistryWithBackends(nil))

		connection, err := manager.Connect(context.Background(), "")

		assert.Nil(t, connection)
		assert.Equal(t, ErrWalletUnavailable, err)
	})

	t.Run("Auto Picks First Auto Connectable", func(t *testing.T) {
		mockStore := appmocks.NewMockStore(t)
		app.SessionStore = mockStore
		mockStore.EXPECT().Set(walletConnectionKey, mock.Anything).Return(nil)

		manager := NewManager(NewRegistryWithBackends([]Backend{
			&fakeBackend{id: "relay", auto: false},
			&fakeBackend{id: "keystore", auto: true, connects: []ConnectStrategy{
				connectResult("0x1111111111111111111111111111111111111111", nil),
			}},
		}))

		connection, err := manager.Connect(context.Background(), "")

		assert.Nil(t, err)
		assert.Equal(t, "keystore", connection.BackendId)
	})

	t.Run("Preferred Provider Respected", func(t *testing.T) {
		mockStore := appmocks.NewMockStore(t)
		app.SessionStore = mockStore
		mockStore.EXPECT().Set(walletConnectionKey, mock.Anything).Return(nil)

		manager := NewManager(NewRegistryWithBackends([]Backend{
			&fakeBackend{id: "keystore", auto: true},
			&fakeBackend{id: "relay", connects: []ConnectStrategy{
				connectResult("0x2222222222222222222222222222222222222222", nil),
			}},
		}))

		connection, err := manager.Connect(context.Background(), "relay")

		assert.Nil(t, err)
		assert.Equal(t, "relay", connection.BackendId)
	})

	t.Run("Failed Connect Is Not Persisted", func(t *testing.T) {
		manager := NewManager(NewRegistryWithBackends([]Backend{
			&fakeBackend{id: "relay", connects: []ConnectStrategy{
				connectResult("", ErrUserRejected),
			}},
		}))

		connection, err := manager.Connect(context.Background(), "relay")

		assert.Nil(t, connection)
		assert.Equal(t, ErrUserRejected, err)
	})
}

func TestSignAndSubmit(t *testing.T) {

	app.Config = models.Config{}

	payload := &TxPayload{
		To:   "0x9999999999999999999999999999999999999999",
		Data: []byte{0x01},
	}

	t.Run("Invalid Connection", func(t *testing.T) {
		manager := NewManager(NewRegistryWithBackends(nil))

		result, err := manager.SignAndSubmit(context.Background(), &models.WalletConnection{}, payload)

		assert.Nil(t, result)
		assert.Equal(t, ErrWalletUnavailable, err)
	})

	t.Run("Unknown Backend", func(t *testing.T) {
		manager := NewManager(NewRegistryWithBackends([]Backend{
			&fakeBackend{id: "keystore"},
		}))

		connection := validTestConnection()
		connection.BackendId = "hardware"

		result, err := manager.SignAndSubmit(context.Background(), connection, payload)

		assert.Nil(t, result)
		assert.Equal(t, ErrUnknownProvider, err)
	})

	t.Run("No Sign Strategies", func(t *testing.T) {
		manager := NewManager(NewRegistryWithBackends([]Backend{
			&fakeBackend{id: "keystore"},
		}))

		result, err := manager.SignAndSubmit(context.Background(), validTestConnection(), payload)

		assert.Nil(t, result)
		assert.Equal(t, ErrUnsupportedProvider, err)
	})

	t.Run("First Recognizable Result Wins", func(t *testing.T) {
		manager := NewManager(NewRegistryWithBackends([]Backend{
			&fakeBackend{id: "keystore", signs: []SignStrategy{
				signResult("", errTryNext),
				signResult("0xabc123", nil),
			}},
		}))

		result, err := manager.SignAndSubmit(context.Background(), validTestConnection(), payload)

		assert.Nil(t, err)
		assert.Equal(t, "0xabc123", result.TransactionHash)
		assert.Equal(t, models.ReceiptStatusPending, result.ReceiptStatus)
	})

	t.Run("Signature Rejection Is Terminal", func(t *testing.T) {
		reached := false
		manager := NewManager(NewRegistryWithBackends([]Backend{
			&fakeBackend{id: "keystore", signs: []SignStrategy{
				signResult("", ErrSignatureRejected),
				{Name: "never", Sign: func(ctx context.Context, account string, payload *TxPayload) (string, error) {
					reached = true
					return "0xabc123", nil
				}},
			}},
		}))

		result, err := manager.SignAndSubmit(context.Background(), validTestConnection(), payload)

		assert.Nil(t, result)
		assert.Equal(t, ErrSignatureRejected, err)
		assert.False(t, reached)
	})

	t.Run("Failure Reason Surfaces", func(t *testing.T) {
		manager := NewManager(NewRegistryWithBackends([]Backend{
			&fakeBackend{id: "keystore", signs: []SignStrategy{
				signResult("", errors.New("nonce too low")),
			}},
		}))

		result, err := manager.SignAndSubmit(context.Background(), validTestConnection(), payload)

		assert.Nil(t, result)
		var submissionErr *SubmissionError
		assert.ErrorAs(t, err, &submissionErr)
		assert.Contains(t, submissionErr.Reason, "nonce too low")
	})

	t.Run("Sign Timeout", func(t *testing.T) {
		app.Config.Wallet.SignTimeoutMillis = 10
		defer func() { app.Config.Wallet.SignTimeoutMillis = 0 }()

		manager := NewManager(NewRegistryWithBackends([]Backend{
			&fakeBackend{id: "keystore", signs: []SignStrategy{
				{Name: "hangs", Sign: func(ctx context.Context, account string, payload *TxPayload) (string, error) {
					<-ctx.Done()
					return "", ctx.Err()
				}},
			}},
		}))

		result, err := manager.SignAndSubmit(context.Background(), validTestConnection(), payload)

		assert.Nil(t, result)
		var submissionErr *SubmissionError
		assert.ErrorAs(t, err, &submissionErr)
	})
}

func TestDisconnect(t *testing.T) {

	t.Run("Clears Persisted Record", func(t *testing.T) {
		mockStore := appmocks.NewMockStore(t)
		app.SessionStore = mockStore
		mockStore.EXPECT().Delete(walletConnectionKey).Return(nil)

		manager := NewManager(NewRegistryWithBackends(nil))
		connection := validTestConnection()

		manager.Disconnect(connection)

		assert.False(t, connection.Connected)
	})

	t.Run("Idempotent With Nil Connection", func(t *testing.T) {
		mockStore := appmocks.NewMockStore(t)
		app.SessionStore = mockStore
		mockStore.EXPECT().Delete(walletConnectionKey).Return(nil)

		manager := NewManager(NewRegistryWithBackends(nil))

		manager.Disconnect(nil)
	})
}
