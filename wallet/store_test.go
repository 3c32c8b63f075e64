package wallet

import (
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/dright-io/dright-core/app"
	appmocks "github.com/dright-io/dright-core/app/mocks"
	"github.com/dright-io/dright-core/models"
	"github.com/stretchr/testify/assert"

	log "github.com/sirupsen/logrus"
)

func init() {
	log.SetOutput(io.Discard)
}

func validTestConnection() *models.WalletConnection {
	return &models.WalletConnection{
		SessionId:   "session-1",
		BackendId:   models.BackendKeystore,
		AccountId:   "0x1111111111111111111111111111111111111111",
		NetworkId:   "1",
		Connected:   true,
		ConnectedAt: time.Now(),
	}
}

func TestPersistConnection(t *testing.T) {

	t.Run("Writes Record", func(t *testing.T) {
		mockStore := appmocks.NewMockStore(t)
		app.SessionStore = mockStore

		connection := validTestConnection()
		encoded, _ := json.Marshal(connection)
		mockStore.EXPECT().Set(walletConnectionKey, encoded).Return(nil)

		PersistConnection(connection)
	})

	t.Run("Store Error Is Not Fatal", func(t *testing.T) {
		mockStore := appmocks.NewMockStore(t)
		app.SessionStore = mockStore

		connection := validTestConnection()
		encoded, _ := json.Marshal(connection)
		mockStore.EXPECT().Set(walletConnectionKey, encoded).Return(errors.New("store down"))

		PersistConnection(connection)
	})
}

func TestRestoreConnection(t *testing.T) {

	t.Run("No Record", func(t *testing.T) {
		mockStore := appmocks.NewMockStore(t)
		app.SessionStore = mockStore

		mockStore.EXPECT().Get(walletConnectionKey).Return(nil, false, nil)

		assert.Nil(t, RestoreConnection())
	})

	t.Run("Valid Record", func(t *testing.T) {
		mockStore := appmocks.NewMockStore(t)
		app.SessionStore = mockStore

		connection := validTestConnection()
		encoded, _ := json.Marshal(connection)
		mockStore.EXPECT().Get(walletConnectionKey).Return(encoded, true, nil)

		restored := RestoreConnection()

		assert.NotNil(t, restored)
		assert.Equal(t, connection.SessionId, restored.SessionId)
		assert.Equal(t, connection.AccountId, restored.AccountId)
		assert.True(t, restored.IsValid())
	})

	t.Run("Malformed Record Is Discarded", func(t *testing.T) {
		mockStore := appmocks.NewMockStore(t)
		app.SessionStore = mockStore

		mockStore.EXPECT().Get(walletConnectionKey).Return([]byte("{corrupt"), true, nil)
		mockStore.EXPECT().Delete(walletConnectionKey).Return(nil)

		assert.Nil(t, RestoreConnection())
	})

	t.Run("Invalid Record Is Discarded", func(t *testing.T) {
		mockStore := appmocks.NewMockStore(t)
		app.SessionStore = mockStore

		connection := validTestConnection()
		connection.Connected = false
		encoded, _ := json.Marshal(connection)
		mockStore.EXPECT().Get(walletConnectionKey).Return(encoded, true, nil)
		mockStore.EXPECT().Delete(walletConnectionKey).Return(nil)

		assert.Nil(t, RestoreConnection())
	})

	t.Run("Store Error", func(t *testing.T) {
		mockStore := appmocks.NewMockStore(t)
		app.SessionStore = mockStore

		mockStore.EXPECT().Get(walletConnectionKey).Return(nil, false, errors.New("store down"))

		assert.Nil(t, RestoreConnection())
	})
}

func TestClearConnection(t *testing.T) {
	mockStore := appmocks.NewMockStore(t)
	app.SessionStore = mockStore

	mockStore.EXPECT().Delete(walletConnectionKey).Return(nil)

	ClearConnection()
}
