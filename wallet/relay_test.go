package wallet

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dright-io/dright-core/app"
	"github.com/dright-io/dright-core/models"
	"github.com/stretchr/testify/assert"
)

// relayServer serves a pairing that is created pending and then observed in
// the given final state on every poll.
func relayServer(t *testing.T, pairing relayRecord) *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/pairings", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(relayRecord{Id: pairing.Id, Status: relayStatusPending})
	})
	mux.HandleFunc("/v1/pairings/"+pairing.Id, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(pairing)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestRelayPair(t *testing.T) {

	app.Config = models.Config{}
	app.Config.Ethereum.ChainId = "1"

	t.Run("Approved", func(t *testing.T) {
		server := relayServer(t, relayRecord{
			Id:      "p1",
			Status:  relayStatusApproved,
			Account: "0x2222222222222222222222222222222222222222",
		})
		relay := NewRelayClient(server.URL)

		account, err := relay.Pair(context.Background())

		assert.Nil(t, err)
		assert.Equal(t, "0x2222222222222222222222222222222222222222", account)
	})

	t.Run("Rejected", func(t *testing.T) {
		server := relayServer(t, relayRecord{Id: "p1", Status: relayStatusRejected})
		relay := NewRelayClient(server.URL)

		account, err := relay.Pair(context.Background())

		assert.Empty(t, account)
		assert.Equal(t, ErrUserRejected, err)
	})

	t.Run("Abandoned Flow Surfaces Cancellation", func(t *testing.T) {
		server := relayServer(t, relayRecord{Id: "p1", Status: relayStatusPending})
		relay := NewRelayClient(server.URL)

		ctx, cancel := context.WithCancel(context.Background())
		time.AfterFunc(20*time.Millisecond, cancel)

		account, err := relay.Pair(ctx)

		assert.Empty(t, account)
		assert.Equal(t, context.Canceled, err)
	})

	t.Run("Elapsed Deadline Is A Timeout", func(t *testing.T) {
		server := relayServer(t, relayRecord{Id: "p1", Status: relayStatusPending})
		relay := NewRelayClient(server.URL)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		account, err := relay.Pair(ctx)

		assert.Empty(t, account)
		assert.Equal(t, ErrConnectTimeout, err)
	})
}
