package verify

import (
	"time"

	"github.com/dright-io/dright-core/app"
	"github.com/dright-io/dright-core/catalog"
	"github.com/dright-io/dright-core/models"
	log "github.com/sirupsen/logrus"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// StartParams carries the method-specific inputs for a new claim.
type StartParams struct {
	AssetURL  string `json:"asset_url"`
	Placement string `json:"placement"`
}

// Engine drives one verification claim at a time per Right through its
// state machine. Transitions happen only here; readers of claim state are
// pure observers.
type Engine struct {
	catalog  catalog.Client
	metadata MetadataClient
}

func NewEngine() *Engine {
	return &Engine{
		catalog:  catalog.Catalog,
		metadata: Metadata,
	}
}

// StartVerification opens a new claim for the right. Any in-flight claim is
// first marked abandoned; abandonment is distinguishable from rejection in
// the audit record.
func (x *Engine) StartVerification(rightId string, method string, params StartParams) (*models.VerificationClaim, error) {
	log.Debug("[VERIFY] Starting verification for right: ", rightId, " method: ", method)

	switch method {
	case models.MethodOwnershipCode, models.MethodProviderOAuth, models.MethodDocumentUpload:
	default:
		return nil, ErrInvalidMethod
	}

	now := time.Now()
	claim := &models.VerificationClaim{
		RightId:   rightId,
		Method:    method,
		Status:    models.ClaimStatusChosen,
		Terminal:  false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// claim inputs are validated up front; a rejected start must leave any
	// in-flight claim untouched
	if method == models.MethodOwnershipCode {
		placement := params.Placement
		if placement == "" {
			placement = models.PlacementDescription
		}
		switch placement {
		case models.PlacementDescription, models.PlacementComment, models.PlacementTitle:
		default:
			return nil, ErrInvalidPlacement
		}

		metadata, err := x.metadata.Lookup(params.AssetURL)
		if err != nil {
			return nil, err
		}

		claim.Code = GenerateCode()
		claim.ProofToken = GenerateProofToken()
		claim.Placement = placement
		claim.AssetMetadata = metadata
	}

	lockId, err := app.DB.XLock("claim/" + rightId)
	if err != nil {
		log.Error("[VERIFY] Error locking claim resource: ", err)
		return nil, err
	}
	defer func() {
		if err := app.DB.Unlock(lockId); err != nil {
			log.Error("[VERIFY] Error unlocking claim resource: ", err)
		}
	}()

	if err := x.abandonLiveClaim(rightId); err != nil {
		return nil, err
	}

	insertedId, err := app.DB.InsertOne(models.CollectionClaims, claim)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			log.Warn("[VERIFY] Concurrent claim creation for right: ", rightId)
		}
		log.Error("[VERIFY] Error inserting claim: ", err)
		return nil, err
	}
	if oid, ok := insertedId.(primitive.ObjectID); ok {
		claim.Id = &oid
	}

	x.patchRightStatus(rightId, models.VerificationStatusPending)

	log.Info("[VERIFY] Started verification claim for right: ", rightId)
	return claim, nil
}

// abandonLiveClaim marks the right's non-terminal claim abandoned, if any.
func (x *Engine) abandonLiveClaim(rightId string) error {
	filter := bson.M{
		"right_id": rightId,
		"terminal": false,
	}

	var live models.VerificationClaim
	err := app.DB.FindOne(models.CollectionClaims, filter, &live)
	if err == mongo.ErrNoDocuments {
		return nil
	}
	if err != nil {
		log.Error("[VERIFY] Error finding live claim: ", err)
		return err
	}

	update := bson.M{
		"$set": bson.M{
			"status":     models.ClaimStatusAbandoned,
			"terminal":   true,
			"updated_at": time.Now(),
		},
	}
	if err := app.DB.UpdateOne(models.CollectionClaims, filter, update); err != nil {
		log.Error("[VERIFY] Error abandoning live claim: ", err)
		return err
	}
	log.Info("[VERIFY] Abandoned prior claim for right: ", rightId)
	return nil
}

// GetClaim returns one claim by id.
func (x *Engine) GetClaim(claimId string) (*models.VerificationClaim, error) {
	oid, err := primitive.ObjectIDFromHex(claimId)
	if err != nil {
		return nil, ErrClaimNotFound
	}
	var claim models.VerificationClaim
	if err := app.DB.FindOne(models.CollectionClaims, bson.M{"_id": oid}, &claim); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrClaimNotFound
		}
		return nil, err
	}
	return &claim, nil
}

// ConfirmPlacement records the caller's confirmation that the ownership
// code was placed at the asset's public location. The engine never scrapes
// the asset itself; confirmation is an explicit caller action.
func (x *Engine) ConfirmPlacement(claimId string) (*models.VerificationClaim, error) {
	claim, err := x.GetClaim(claimId)
	if err != nil {
		return nil, err
	}
	if claim.Method != models.MethodOwnershipCode {
		return nil, ErrWrongMethod
	}
	if claim.IsTerminal() {
		return nil, ErrClaimTerminal
	}

	return x.updateClaimStatus(claim, models.ClaimStatusEvidenceSubmitted, "")
}

// CheckCode compares the code observed at the asset's location with the one
// generated for the claim and resolves the claim either way. Placement
// location never affects validity.
func (x *Engine) CheckCode(claimId string, observedCode string) (*models.VerificationClaim, error) {
	claim, err := x.GetClaim(claimId)
	if err != nil {
		return nil, err
	}
	if claim.Method != models.MethodOwnershipCode {
		return nil, ErrWrongMethod
	}
	if claim.IsTerminal() {
		return nil, ErrClaimTerminal
	}

	if observedCode != claim.Code {
		log.Info("[VERIFY] Code mismatch for claim: ", claimId)
		updated, err := x.updateClaimStatus(claim, models.ClaimStatusRejected, ErrCodeMismatch.Error())
		if err != nil {
			return nil, err
		}
		x.patchRightStatus(claim.RightId, models.VerificationStatusRejected)
		return updated, nil
	}

	updated, err := x.updateClaimStatus(claim, models.ClaimStatusVerified, "")
	if err != nil {
		return nil, err
	}
	x.patchRightStatus(claim.RightId, models.VerificationStatusVerified)
	log.Info("[VERIFY] Claim verified via ownership code: ", claimId)
	return updated, nil
}

// AcceptOAuthResult accepts the terminal outcome of the external
// authorization flow. The engine delegates the flow entirely; this is its
// only involvement.
func (x *Engine) AcceptOAuthResult(claimId string, success bool, reason string) (*models.VerificationClaim, error) {
	claim, err := x.GetClaim(claimId)
	if err != nil {
		return nil, err
	}
	if claim.Method != models.MethodProviderOAuth {
		return nil, ErrWrongMethod
	}
	if claim.IsTerminal() {
		return nil, ErrClaimTerminal
	}

	if !success {
		updated, err := x.updateClaimStatus(claim, models.ClaimStatusRejected, reason)
		if err != nil {
			return nil, err
		}
		x.patchRightStatus(claim.RightId, models.VerificationStatusRejected)
		return updated, nil
	}

	updated, err := x.updateClaimStatus(claim, models.ClaimStatusVerified, "")
	if err != nil {
		return nil, err
	}
	x.patchRightStatus(claim.RightId, models.VerificationStatusVerified)
	log.Info("[VERIFY] Claim verified via provider oauth: ", claimId)
	return updated, nil
}

// SubmitEvidence attaches validated document descriptors to the claim and
// moves it to evidence_submitted. Never auto-approves; a reviewer decision
// arrives later through AcceptReviewerDecision.
func (x *Engine) SubmitEvidence(claimId string, files []models.EvidenceFile) (*models.VerificationClaim, error) {
	claim, err := x.GetClaim(claimId)
	if err != nil {
		return nil, err
	}
	if claim.Method != models.MethodDocumentUpload {
		return nil, ErrWrongMethod
	}
	if claim.IsTerminal() {
		return nil, ErrClaimTerminal
	}

	if err := ValidateEvidence(files); err != nil {
		return nil, err
	}

	filter := bson.M{"_id": claim.Id}
	update := bson.M{
		"$set": bson.M{
			"status":     models.ClaimStatusEvidenceSubmitted,
			"evidence":   files,
			"updated_at": time.Now(),
		},
	}
	if err := app.DB.UpdateOne(models.CollectionClaims, filter, update); err != nil {
		log.Error("[VERIFY] Error submitting evidence: ", err)
		return nil, err
	}

	claim.Status = models.ClaimStatusEvidenceSubmitted
	claim.Evidence = files
	log.Info("[VERIFY] Evidence submitted for claim: ", claimId)
	return claim, nil
}

// AcceptReviewerDecision applies an asynchronous reviewer decision to a
// document-upload claim. Notes are append-only.
func (x *Engine) AcceptReviewerDecision(claimId string, approved bool, reviewerId string, note string) (*models.VerificationClaim, error) {
	claim, err := x.GetClaim(claimId)
	if err != nil {
		return nil, err
	}
	if claim.Method != models.MethodDocumentUpload {
		return nil, ErrWrongMethod
	}
	if claim.IsTerminal() {
		return nil, ErrClaimTerminal
	}

	status := models.ClaimStatusVerified
	reason := ""
	if !approved {
		status = models.ClaimStatusRejected
		reason = "evidence rejected by reviewer"
	}

	reviewerNote := models.ReviewerNote{
		ReviewerId: reviewerId,
		Note:       note,
		CreatedAt:  time.Now(),
	}

	filter := bson.M{"_id": claim.Id}
	update := bson.M{
		"$set": bson.M{
			"status":         status,
			"terminal":       true,
			"failure_reason": reason,
			"updated_at":     time.Now(),
		},
		"$push": bson.M{"reviewer_notes": reviewerNote},
	}
	if err := app.DB.UpdateOne(models.CollectionClaims, filter, update); err != nil {
		log.Error("[VERIFY] Error applying reviewer decision: ", err)
		return nil, err
	}

	claim.Status = status
	claim.Terminal = true
	claim.FailureReason = reason
	claim.ReviewerNotes = append(claim.ReviewerNotes, reviewerNote)

	if approved {
		x.patchRightStatus(claim.RightId, models.VerificationStatusVerified)
		log.Info("[VERIFY] Claim verified by reviewer: ", claimId)
	} else {
		// rejected is terminal for the claim but not for the right; a
		// fresh claim with any method may be opened
		x.patchRightStatus(claim.RightId, models.VerificationStatusRejected)
		log.Info("[VERIFY] Claim rejected by reviewer: ", claimId)
	}
	return claim, nil
}

func (x *Engine) updateClaimStatus(claim *models.VerificationClaim, status string, reason string) (*models.VerificationClaim, error) {
	terminal := status == models.ClaimStatusVerified ||
		status == models.ClaimStatusRejected ||
		status == models.ClaimStatusAbandoned

	filter := bson.M{"_id": claim.Id}
	update := bson.M{
		"$set": bson.M{
			"status":         status,
			"terminal":       terminal,
			"failure_reason": reason,
			"updated_at":     time.Now(),
		},
	}
	if err := app.DB.UpdateOne(models.CollectionClaims, filter, update); err != nil {
		log.Error("[VERIFY] Error updating claim status: ", err)
		return nil, err
	}

	claim.Status = status
	claim.Terminal = terminal
	claim.FailureReason = reason
	return claim, nil
}

// patchRightStatus mirrors a claim outcome onto the catalog record. Catalog
// failures are logged, not propagated; the claim remains the source of
// truth and the next transition retries the mirror.
func (x *Engine) patchRightStatus(rightId string, status string) {
	patch := &models.RightPatch{VerificationStatus: &status}
	if _, err := x.catalog.UpdateRight(rightId, patch); err != nil {
		log.Error("[VERIFY] Error updating right status in catalog: ", err)
	}
}
