package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/dright-io/dright-core/app"
	appmocks "github.com/dright-io/dright-core/app/mocks"
	"github.com/dright-io/dright-core/catalog"
	catalogmocks "github.com/dright-io/dright-core/catalog/mocks"
	"github.com/dright-io/dright-core/minting"
	"github.com/dright-io/dright-core/models"
	"github.com/dright-io/dright-core/verify"
	"github.com/dright-io/dright-core/wallet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	log "github.com/sirupsen/logrus"
)

func init() {
	log.SetOutput(io.Discard)
}

func newTestServer(t *testing.T) (*Server, *appmocks.MockDatabase, *appmocks.MockStore, *catalogmocks.MockClient) {
	mockDB := appmocks.NewMockDatabase(t)
	mockStore := appmocks.NewMockStore(t)
	mockCatalog := catalogmocks.NewMockClient(t)

	app.Config = models.Config{}
	app.DB = mockDB
	app.SessionStore = mockStore
	catalog.Catalog = mockCatalog

	manager := wallet.NewManager(wallet.NewRegistryWithBackends(nil))
	server := NewServer(verify.NewEngine(), manager, minting.NewOrchestrator(manager), &sync.WaitGroup{})
	return server, mockDB, mockStore, mockCatalog
}

func perform(server *Server, method string, path string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		encoded, _ := json.Marshal(body)
		reader = bytes.NewReader(encoded)
	}
	req := httptest.NewRequest(method, path, reader)
	recorder := httptest.NewRecorder()
	server.httpServer.Handler.ServeHTTP(recorder, req)
	return recorder
}

func TestNewServerInvalidParameters(t *testing.T) {
	server := NewServer(nil, nil, nil, nil)
	assert.Nil(t, server)
}

func TestRightRoutes(t *testing.T) {

	t.Run("Get Right", func(t *testing.T) {
		server, _, _, mockCatalog := newTestServer(t)
		mockCatalog.EXPECT().GetRight("right-1").
			Return(&models.Right{Id: "right-1", Title: "Sample"}, nil)

		recorder := perform(server, http.MethodGet, "/v1/rights/right-1", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var right models.Right
		assert.Nil(t, json.Unmarshal(recorder.Body.Bytes(), &right))
		assert.Equal(t, "Sample", right.Title)
	})

	t.Run("Catalog Error Is Tagged", func(t *testing.T) {
		server, _, _, mockCatalog := newTestServer(t)
		mockCatalog.EXPECT().GetRight("right-1").
			Return(nil, &catalog.CatalogError{StatusCode: http.StatusNotFound, Body: "gone"})

		recorder := perform(server, http.MethodGet, "/v1/rights/right-1", nil)

		assert.Equal(t, http.StatusBadGateway, recorder.Code)
		var response errorResponse
		assert.Nil(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, "catalog_error", response.Error.Kind)
	})
}

func TestListingSpecRoute(t *testing.T) {
	server, _, _, _ := newTestServer(t)

	recorder := perform(server, http.MethodGet, "/v1/listing/spec?asset_category=audio-track", nil)

	assert.Equal(t, http.StatusOK, recorder.Code)
	var body map[string]interface{}
	assert.Nil(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "audio-track", body["asset_category"])
	assert.NotEmpty(t, body["right_category"])
	assert.NotEmpty(t, body["legal_right_categories"])
}

func TestMintRoutes(t *testing.T) {

	t.Run("No Wallet Connected", func(t *testing.T) {
		server, _, mockStore, _ := newTestServer(t)
		mockStore.EXPECT().Get(mock.Anything).Return(nil, false, nil)

		recorder := perform(server, http.MethodPost, "/v1/rights/right-1/mint", nil)

		assert.Equal(t, http.StatusConflict, recorder.Code)
		var response errorResponse
		assert.Nil(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, "no_wallet_connected", response.Error.Kind)
	})

	t.Run("Empty Batch", func(t *testing.T) {
		server, _, _, _ := newTestServer(t)

		recorder := perform(server, http.MethodPost, "/v1/mint/batch", map[string]interface{}{
			"right_ids": []string{},
		})

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		var response errorResponse
		assert.Nil(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Equal(t, "empty_batch", response.Error.Kind)
	})
}

func TestWalletRoutes(t *testing.T) {

	t.Run("No Providers", func(t *testing.T) {
		server, _, _, _ := newTestServer(t)

		recorder := perform(server, http.MethodGet, "/v1/wallet/providers", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("No Session", func(t *testing.T) {
		server, _, mockStore, _ := newTestServer(t)
		mockStore.EXPECT().Get(mock.Anything).Return(nil, false, nil)

		recorder := perform(server, http.MethodGet, "/v1/wallet/session", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var body map[string]interface{}
		assert.Nil(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, false, body["connected"])
	})
}

func TestHealthRoute(t *testing.T) {

	t.Run("Serves Latest Health Doc", func(t *testing.T) {
		server, mockDB, _, _ := newTestServer(t)
		mockDB.EXPECT().FindOneAndSort(
			models.CollectionHealthChecks,
			mock.Anything,
			mock.Anything,
			mock.Anything,
		).Run(func(collection string, filter interface{}, sort interface{}, result interface{}) {
			*result.(*models.Health) = models.Health{Hostname: "host-1"}
		}).Return(nil)

		recorder := perform(server, http.MethodGet, "/health", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var health models.Health
		assert.Nil(t, json.Unmarshal(recorder.Body.Bytes(), &health))
		assert.Equal(t, "host-1", health.Hostname)
	})

	t.Run("Fallback When No Doc", func(t *testing.T) {
		server, mockDB, _, _ := newTestServer(t)
		mockDB.EXPECT().FindOneAndSort(
			models.CollectionHealthChecks,
			mock.Anything,
			mock.Anything,
			mock.Anything,
		).Return(assert.AnError)

		recorder := perform(server, http.MethodGet, "/health", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		var body map[string]interface{}
		assert.Nil(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, true, body["healthy"])
	})
}
