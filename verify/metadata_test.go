package verify

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	log "github.com/sirupsen/logrus"
)

func init() {
	log.SetOutput(io.Discard)
}

func TestMetadataLookup(t *testing.T) {

	t.Run("Successful Lookup", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "json", r.URL.Query().Get("format"))
			assert.Equal(t, "https://example.com/v/123", r.URL.Query().Get("url"))
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"title":"My Video","author_name":"Creator","provider_name":"Example"}`))
		}))
		defer server.Close()

		client := NewMetadataClient(server.URL, time.Second)
		metadata, err := client.Lookup("https://example.com/v/123")

		assert.Nil(t, err)
		assert.Equal(t, "My Video", metadata.Title)
		assert.Equal(t, "Creator", metadata.AuthorName)
		assert.Equal(t, "Example", metadata.ProviderName)
	})

	t.Run("Not Found Status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := NewMetadataClient(server.URL, time.Second)
		metadata, err := client.Lookup("https://example.com/v/missing")

		assert.Nil(t, metadata)
		assert.Equal(t, ErrAssetNotFound, err)
	})

	t.Run("Malformed Body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer server.Close()

		client := NewMetadataClient(server.URL, time.Second)
		_, err := client.Lookup("https://example.com/v/123")

		assert.Equal(t, ErrAssetNotFound, err)
	})

	t.Run("Empty Title", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"title":""}`))
		}))
		defer server.Close()

		client := NewMetadataClient(server.URL, time.Second)
		_, err := client.Lookup("https://example.com/v/123")

		assert.Equal(t, ErrAssetNotFound, err)
	})

	t.Run("Unreachable Provider", func(t *testing.T) {
		client := NewMetadataClient("http://127.0.0.1:1", time.Second)
		_, err := client.Lookup("https://example.com/v/123")

		assert.Equal(t, ErrAssetNotFound, err)
	})
}
