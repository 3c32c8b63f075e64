package api

import (
	"net/http"

	"github.com/dright-io/dright-core/app"
	"github.com/dright-io/dright-core/listing"
	"github.com/dright-io/dright-core/minting"
	"github.com/dright-io/dright-core/models"
	"github.com/dright-io/dright-core/verify"
	"github.com/gin-gonic/gin"

	"go.mongodb.org/mongo-driver/bson"
)

// POST /v1/rights
func (s *Server) createRight(c *gin.Context) {
	var right models.Right
	if err := c.ShouldBindJSON(&right); err != nil {
		abortBadRequest(c, "invalid right payload")
		return
	}
	created, err := s.catalog.CreateRight(&right)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GET /v1/rights/:id
func (s *Server) getRight(c *gin.Context) {
	right, err := s.catalog.GetRight(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, right)
}

// PATCH /v1/rights/:id
func (s *Server) updateRight(c *gin.Context) {
	var patch models.RightPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		abortBadRequest(c, "invalid right patch")
		return
	}
	right, err := s.catalog.UpdateRight(c.Param("id"), &patch)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, right)
}

// GET /v1/rights
func (s *Server) listRights(c *gin.Context) {
	filter := map[string]string{}
	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			filter[key] = values[0]
		}
	}
	rights, err := s.catalog.ListRights(filter)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, rights)
}

// GET /v1/listing/spec — resolves the field requirements for a category
// pair. Total by construction, so this never errors.
func (s *Server) resolveListingSpec(c *gin.Context) {
	assetCategory := c.Query("asset_category")
	rightCategory := c.Query("right_category")
	if rightCategory == "" {
		rightCategory = listing.DefaultRightCategory(assetCategory)
	}
	c.JSON(http.StatusOK, gin.H{
		"asset_category":         assetCategory,
		"right_category":         rightCategory,
		"legal_right_categories": listing.LegalRightCategories(assetCategory),
		"spec":                   listing.Resolve(assetCategory, rightCategory),
	})
}

// POST /v1/rights/:id/listing — validates the configured listing fields
// against the resolved spec.
func (s *Server) validateListing(c *gin.Context) {
	right, err := s.catalog.GetRight(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	if err := listing.Validate(right); err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true})
}

type startVerificationRequest struct {
	Method    string `json:"method"`
	AssetURL  string `json:"asset_url"`
	Placement string `json:"placement"`
}

// POST /v1/rights/:id/verification
func (s *Server) startVerification(c *gin.Context) {
	var req startVerificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, "invalid verification request")
		return
	}
	claim, err := s.engine.StartVerification(c.Param("id"), req.Method, verify.StartParams{
		AssetURL:  req.AssetURL,
		Placement: req.Placement,
	})
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, claim)
}

// GET /v1/claims/:id
func (s *Server) getClaim(c *gin.Context) {
	claim, err := s.engine.GetClaim(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, claim)
}

// POST /v1/claims/:id/placement
func (s *Server) confirmPlacement(c *gin.Context) {
	claim, err := s.engine.ConfirmPlacement(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, claim)
}

type checkCodeRequest struct {
	ObservedCode string `json:"observed_code"`
}

// POST /v1/claims/:id/check-code
func (s *Server) checkCode(c *gin.Context) {
	var req checkCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, "invalid check request")
		return
	}
	claim, err := s.engine.CheckCode(c.Param("id"), req.ObservedCode)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, claim)
}

type oauthResultRequest struct {
	Success bool   `json:"success"`
	Reason  string `json:"reason"`
}

// POST /v1/claims/:id/oauth-result
func (s *Server) acceptOAuthResult(c *gin.Context) {
	var req oauthResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, "invalid oauth result")
		return
	}
	claim, err := s.engine.AcceptOAuthResult(c.Param("id"), req.Success, req.Reason)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, claim)
}

type submitEvidenceRequest struct {
	Files []models.EvidenceFile `json:"files"`
}

// POST /v1/claims/:id/evidence
func (s *Server) submitEvidence(c *gin.Context) {
	var req submitEvidenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, "invalid evidence payload")
		return
	}
	claim, err := s.engine.SubmitEvidence(c.Param("id"), req.Files)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, claim)
}

type reviewerDecisionRequest struct {
	Approved   bool   `json:"approved"`
	ReviewerId string `json:"reviewer_id"`
	Note       string `json:"note"`
}

// POST /v1/claims/:id/review
func (s *Server) acceptReviewerDecision(c *gin.Context) {
	var req reviewerDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, "invalid reviewer decision")
		return
	}
	claim, err := s.engine.AcceptReviewerDecision(c.Param("id"), req.Approved, req.ReviewerId, req.Note)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, claim)
}

// GET /v1/wallet/providers
func (s *Server) detectProviders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"providers": s.wallet.Detect()})
}

type connectWalletRequest struct {
	ProviderId string `json:"provider_id"`
}

// POST /v1/wallet/connect
func (s *Server) connectWallet(c *gin.Context) {
	var req connectWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, "invalid connect request")
		return
	}
	connection, err := s.wallet.Connect(c.Request.Context(), req.ProviderId)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, connection)
}

// GET /v1/wallet/session
func (s *Server) getWalletSession(c *gin.Context) {
	connection := s.wallet.Restore()
	if !connection.IsValid() {
		c.JSON(http.StatusOK, gin.H{"connected": false})
		return
	}
	c.JSON(http.StatusOK, connection)
}

// POST /v1/wallet/disconnect
func (s *Server) disconnectWallet(c *gin.Context) {
	s.wallet.Disconnect(s.wallet.Restore())
	c.JSON(http.StatusOK, gin.H{"connected": false})
}

// POST /v1/rights/:id/mint
func (s *Server) startMinting(c *gin.Context) {
	run, err := s.orchestrator.StartMinting(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, run)
}

type startBatchRequest struct {
	RightIds []string `json:"right_ids"`
}

// POST /v1/mint/batch
func (s *Server) startBatch(c *gin.Context) {
	var req startBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, "invalid batch request")
		return
	}
	run, err := s.orchestrator.StartBatch(req.RightIds)
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, run)
}

// GET /v1/rights/:id/mint/progress
func (s *Server) getProgress(c *gin.Context) {
	progress, err := minting.GetProgress(c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}

// GET /health — serves the latest persisted health snapshot so every
// instance behind a balancer answers with cluster-visible state.
func (s *Server) health(c *gin.Context) {
	var health models.Health
	err := app.DB.FindOneAndSort(
		models.CollectionHealthChecks,
		bson.M{},
		bson.M{"updated_at": -1},
		&health,
	)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"healthy": true})
		return
	}
	c.JSON(http.StatusOK, health)
}
