package wallet

import (
	"encoding/json"

	"github.com/dright-io/dright-core/app"
	"github.com/dright-io/dright-core/models"
	log "github.com/sirupsen/logrus"
)

// well-known key for the single persisted wallet connection; last writer
// wins across tabs, and a disconnect from any tab is authoritative.
const walletConnectionKey = "dright:wallet:connection"

// PersistConnection writes the session record so it survives a reload.
// Persistence failures are logged, not fatal; a session without a persisted
// record just won't survive a reload.
func PersistConnection(connection *models.WalletConnection) {
	encoded, err := json.Marshal(connection)
	if err != nil {
		log.Error("[WALLET] Error encoding connection: ", err)
		return
	}
	if err := app.SessionStore.Set(walletConnectionKey, encoded); err != nil {
		log.Error("[WALLET] Error persisting connection: ", err)
	}
}

// RestoreConnection reads back the persisted session. Malformed records are
// discarded silently; corrupt persisted state must never propagate as a
// crash.
func RestoreConnection() *models.WalletConnection {
	value, ok, err := app.SessionStore.Get(walletConnectionKey)
	if err != nil {
		log.Error("[WALLET] Error reading persisted connection: ", err)
		return nil
	}
	if !ok {
		return nil
	}

	var connection models.WalletConnection
	if err := json.Unmarshal(value, &connection); err != nil {
		log.Debug("[WALLET] Discarding malformed persisted connection: ", err)
		ClearConnection()
		return nil
	}
	if !connection.IsValid() {
		log.Debug("[WALLET] Discarding invalid persisted connection")
		ClearConnection()
		return nil
	}
	return &connection
}

// ClearConnection removes the persisted record; missing keys are fine.
func ClearConnection() {
	if err := app.SessionStore.Delete(walletConnectionKey); err != nil {
		log.Error("[WALLET] Error clearing persisted connection: ", err)
	}
}
