package verify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/dright-io/dright-core/app"
	"github.com/dright-io/dright-core/models"
	log "github.com/sirupsen/logrus"
)

// MetadataClient resolves a public asset URL to its canonical metadata.
type MetadataClient interface {
	Lookup(assetURL string) (*models.AssetMetadata, error)
}

type httpMetadataClient struct {
	baseURL string
	client  *http.Client
}

var Metadata MetadataClient = &httpMetadataClient{}

func (c *httpMetadataClient) timeout() time.Duration {
	millis := app.Config.Metadata.TimeoutMillis
	if millis == 0 {
		millis = 5000
	}
	return time.Duration(millis) * time.Millisecond
}

// Lookup performs a single read call against the provider's oembed-style
// endpoint. Any non-2xx or malformed response maps to ErrAssetNotFound;
// the provider is untrusted and its failure detail is only logged.
func (c *httpMetadataClient) Lookup(assetURL string) (*models.AssetMetadata, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout())
	defer cancel()

	endpoint := c.baseURL + "?format=json&url=" + url.QueryEscape(assetURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	res, err := c.client.Do(req)
	if err != nil {
		log.Debug("[METADATA] Error fetching asset metadata: ", err)
		return nil, ErrAssetNotFound
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		log.Debug("[METADATA] Unexpected status fetching asset metadata: ", res.StatusCode)
		return nil, ErrAssetNotFound
	}

	var payload struct {
		Title        string `json:"title"`
		AuthorName   string `json:"author_name"`
		ThumbnailURL string `json:"thumbnail_url"`
		ProviderName string `json:"provider_name"`
	}
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		log.Debug("[METADATA] Malformed asset metadata response: ", err)
		return nil, ErrAssetNotFound
	}
	if payload.Title == "" {
		return nil, ErrAssetNotFound
	}

	return &models.AssetMetadata{
		Title:        payload.Title,
		AuthorName:   payload.AuthorName,
		ThumbnailURL: payload.ThumbnailURL,
		ProviderName: payload.ProviderName,
	}, nil
}

// NewMetadataClient builds a metadata client for the given endpoint; used
// by tests to point at a local server.
func NewMetadataClient(baseURL string, timeout time.Duration) MetadataClient {
	return &httpMetadataClient{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

// InitMetadata wires the package-level client from config.
func InitMetadata() {
	c := &httpMetadataClient{
		baseURL: app.Config.Metadata.BaseURL,
		client:  &http.Client{},
	}
	Metadata = c
	log.Info("[METADATA] Metadata client initialized: ", c.baseURL)
}
