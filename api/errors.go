package api

import (
	"errors"
	"net/http"

	"github.com/dright-io/dright-core/catalog"
	"github.com/dright-io/dright-core/listing"
	"github.com/dright-io/dright-core/minting"
	"github.com/dright-io/dright-core/verify"
	"github.com/dright-io/dright-core/wallet"
	"github.com/gin-gonic/gin"
)

// errorBody is the JSON envelope for every non-2xx response. Kind is a
// stable machine-readable tag; message is for humans.
type errorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

// abortWithError maps a domain error onto an HTTP status and kind tag.
// Unrecognized errors become an opaque 500 so internals never leak.
func abortWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	kind := "internal"
	message := "internal error"

	var missingField *listing.MissingRequiredFieldError
	var evidenceErr *verify.EvidenceError
	var catalogErr *catalog.CatalogError
	var submissionErr *wallet.SubmissionError

	switch {
	case errors.Is(err, verify.ErrAssetNotFound):
		status, kind, message = http.StatusNotFound, "asset_not_found", err.Error()
	case errors.Is(err, verify.ErrClaimNotFound):
		status, kind, message = http.StatusNotFound, "claim_not_found", err.Error()
	case errors.Is(err, verify.ErrClaimTerminal):
		status, kind, message = http.StatusConflict, "claim_terminal", err.Error()
	case errors.Is(err, verify.ErrInvalidMethod):
		status, kind, message = http.StatusBadRequest, "invalid_method", err.Error()
	case errors.Is(err, verify.ErrInvalidPlacement):
		status, kind, message = http.StatusBadRequest, "invalid_placement", err.Error()
	case errors.Is(err, verify.ErrWrongMethod):
		status, kind, message = http.StatusConflict, "wrong_method", err.Error()
	case errors.As(err, &evidenceErr):
		status, kind, message = http.StatusBadRequest, "invalid_evidence", err.Error()
	case errors.As(err, &missingField):
		status, kind, message = http.StatusUnprocessableEntity, "missing_required_field", err.Error()
	case errors.Is(err, wallet.ErrWalletUnavailable):
		status, kind, message = http.StatusServiceUnavailable, "wallet_unavailable", err.Error()
	case errors.Is(err, wallet.ErrUnknownProvider):
		status, kind, message = http.StatusBadRequest, "unknown_provider", err.Error()
	case errors.Is(err, wallet.ErrUserRejected):
		status, kind, message = http.StatusForbidden, "user_rejected", err.Error()
	case errors.Is(err, wallet.ErrConnectTimeout):
		status, kind, message = http.StatusGatewayTimeout, "connect_timeout", err.Error()
	case errors.Is(err, wallet.ErrSignatureRejected):
		status, kind, message = http.StatusForbidden, "signature_rejected", err.Error()
	case errors.Is(err, wallet.ErrUnsupportedProvider):
		status, kind, message = http.StatusConflict, "unsupported_provider", err.Error()
	case errors.As(err, &submissionErr):
		status, kind, message = http.StatusBadGateway, "submission_failed", err.Error()
	case errors.Is(err, minting.ErrNotVerified):
		status, kind, message = http.StatusConflict, "not_verified", err.Error()
	case errors.Is(err, minting.ErrNoWalletConnected):
		status, kind, message = http.StatusConflict, "no_wallet_connected", err.Error()
	case errors.Is(err, minting.ErrRunNotFound):
		status, kind, message = http.StatusNotFound, "run_not_found", err.Error()
	case errors.Is(err, minting.ErrEmptyBatch):
		status, kind, message = http.StatusBadRequest, "empty_batch", err.Error()
	case errors.As(err, &catalogErr):
		status, kind, message = http.StatusBadGateway, "catalog_error", err.Error()
	}

	c.AbortWithStatusJSON(status, errorResponse{Error: errorBody{Kind: kind, Message: message}})
}

func abortBadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{
		Error: errorBody{Kind: "bad_request", Message: message},
	})
}
