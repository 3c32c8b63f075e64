package catalog

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dright-io/dright-core/models"
	"github.com/stretchr/testify/assert"

	log "github.com/sirupsen/logrus"
)

func init() {
	log.SetOutput(io.Discard)
}

func TestCreateRight(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rights", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var right models.Right
		assert.Nil(t, json.NewDecoder(r.Body).Decode(&right))
		right.Id = "right-1"

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(right)
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-key", time.Second)

	created, err := client.CreateRight(&models.Right{Title: "Sample"})

	assert.Nil(t, err)
	assert.Equal(t, "right-1", created.Id)
	assert.Equal(t, "Sample", created.Title)
}

func TestGetRight(t *testing.T) {

	t.Run("Found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/rights/right-1", r.URL.Path)
			json.NewEncoder(w).Encode(models.Right{Id: "right-1", VerificationStatus: models.VerificationStatusVerified})
		}))
		defer server.Close()

		client := NewClient(server.URL, "", time.Second)

		right, err := client.GetRight("right-1")

		assert.Nil(t, err)
		assert.True(t, right.IsVerified())
	})

	t.Run("Not Found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte("no such right"))
		}))
		defer server.Close()

		client := NewClient(server.URL, "", time.Second)

		right, err := client.GetRight("missing")

		assert.Nil(t, right)
		var catalogErr *CatalogError
		assert.ErrorAs(t, err, &catalogErr)
		assert.Equal(t, http.StatusNotFound, catalogErr.StatusCode)
		assert.Equal(t, "no such right", catalogErr.Body)
	})
}

func TestUpdateRight(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/rights/right-1", r.URL.Path)

		var patch models.RightPatch
		assert.Nil(t, json.NewDecoder(r.Body).Decode(&patch))
		assert.Equal(t, models.VerificationStatusVerified, *patch.VerificationStatus)

		json.NewEncoder(w).Encode(models.Right{Id: "right-1", VerificationStatus: *patch.VerificationStatus})
	}))
	defer server.Close()

	client := NewClient(server.URL, "", time.Second)

	status := models.VerificationStatusVerified
	updated, err := client.UpdateRight("right-1", &models.RightPatch{VerificationStatus: &status})

	assert.Nil(t, err)
	assert.Equal(t, models.VerificationStatusVerified, updated.VerificationStatus)
}

func TestListRights(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rights", r.URL.Path)
		assert.Equal(t, models.VerificationStatusVerified, r.URL.Query().Get("verification_status"))

		json.NewEncoder(w).Encode([]models.Right{{Id: "right-1"}, {Id: "right-2"}})
	}))
	defer server.Close()

	client := NewClient(server.URL, "", time.Second)

	rights, err := client.ListRights(map[string]string{"verification_status": models.VerificationStatusVerified})

	assert.Nil(t, err)
	assert.Len(t, rights, 2)
}
