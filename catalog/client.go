package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/dright-io/dright-core/app"
	"github.com/dright-io/dright-core/models"
	log "github.com/sirupsen/logrus"
)

// Client talks to the remote Right record store.
type Client interface {
	CreateRight(right *models.Right) (*models.Right, error)
	GetRight(id string) (*models.Right, error)
	UpdateRight(id string, patch *models.RightPatch) (*models.Right, error)
	ListRights(filter map[string]string) ([]models.Right, error)
}

type httpClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

var Catalog Client = &httpClient{}

func (c *httpClient) timeout() time.Duration {
	millis := app.Config.Catalog.TimeoutMillis
	if millis == 0 {
		millis = 5000
	}
	return time.Duration(millis) * time.Millisecond
}

func (c *httpClient) do(method string, path string, body interface{}, result interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout())
	defer cancel()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	res, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		resBody, _ := io.ReadAll(io.LimitReader(res.Body, 1024))
		return &CatalogError{StatusCode: res.StatusCode, Body: string(resBody)}
	}

	if result == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(result)
}

func (c *httpClient) CreateRight(right *models.Right) (*models.Right, error) {
	log.Debug("[CATALOG] Creating right")
	var created models.Right
	if err := c.do(http.MethodPost, "/rights", right, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *httpClient) GetRight(id string) (*models.Right, error) {
	var right models.Right
	if err := c.do(http.MethodGet, "/rights/"+url.PathEscape(id), nil, &right); err != nil {
		return nil, err
	}
	return &right, nil
}

func (c *httpClient) UpdateRight(id string, patch *models.RightPatch) (*models.Right, error) {
	log.Debug("[CATALOG] Updating right: ", id)
	var updated models.Right
	if err := c.do(http.MethodPatch, "/rights/"+url.PathEscape(id), patch, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *httpClient) ListRights(filter map[string]string) ([]models.Right, error) {
	query := url.Values{}
	for key, value := range filter {
		query.Set(key, value)
	}
	path := "/rights"
	if len(query) > 0 {
		path = fmt.Sprintf("%s?%s", path, query.Encode())
	}
	var rights []models.Right
	if err := c.do(http.MethodGet, path, nil, &rights); err != nil {
		return nil, err
	}
	return rights, nil
}

// NewClient builds a catalog client for the given base URL; used by tests
// to point at a local server.
func NewClient(baseURL string, apiKey string, timeout time.Duration) Client {
	return &httpClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  &http.Client{Timeout: timeout},
	}
}

// InitCatalog wires the package-level client from config.
func InitCatalog() {
	c := &httpClient{
		baseURL: app.Config.Catalog.BaseURL,
		apiKey:  app.Config.Catalog.APIKey,
		client:  &http.Client{},
	}
	Catalog = c
	log.Info("[CATALOG] Catalog client initialized: ", c.baseURL)
}
