package catalog

import "fmt"

// CatalogError is returned for any non-2xx response from the catalog
// store. Writes are never retried automatically; retry is the caller's
// decision.
type CatalogError struct {
	StatusCode int
	Body       string
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("catalog: unexpected status %d: %s", e.StatusCode, e.Body)
}
