package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CollectionClaims = "claims"
)

// verification methods
const (
	MethodOwnershipCode  = "ownership-code"
	MethodProviderOAuth  = "provider-oauth"
	MethodDocumentUpload = "document-upload"
)

// claim states
const (
	ClaimStatusChosen            = "chosen"
	ClaimStatusEvidenceSubmitted = "evidence_submitted"
	ClaimStatusVerified          = "verified"
	ClaimStatusRejected          = "rejected"
	ClaimStatusAbandoned         = "abandoned"
)

// ownership-code placement locations
const (
	PlacementDescription = "description"
	PlacementComment     = "comment"
	PlacementTitle       = "title"
)

// EvidenceFile is an uploaded document descriptor; the file body lives in
// external storage, the claim only records what was declared and accepted.
type EvidenceFile struct {
	Name        string `bson:"name" json:"name"`
	ContentType string `bson:"content_type" json:"content_type"`
	SizeBytes   int64  `bson:"size_bytes" json:"size_bytes"`
	StorageKey  string `bson:"storage_key" json:"storage_key"`
}

// ReviewerNote is append-only; notes are never edited or removed.
type ReviewerNote struct {
	ReviewerId string    `bson:"reviewer_id" json:"reviewer_id"`
	Note       string    `bson:"note" json:"note"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
}

// AssetMetadata is the canonical metadata fetched for a claimed asset.
type AssetMetadata struct {
	Title        string `bson:"title" json:"title"`
	AuthorName   string `bson:"author_name" json:"author_name"`
	ThumbnailURL string `bson:"thumbnail_url" json:"thumbnail_url"`
	ProviderName string `bson:"provider_name" json:"provider_name"`
}

// VerificationClaim is one verification attempt for a Right. A claim is
// immutable once it reaches verified, rejected or abandoned.
type VerificationClaim struct {
	Id            *primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	RightId       string              `bson:"right_id" json:"right_id"`
	Method        string              `bson:"method" json:"method"`
	Status        string              `bson:"status" json:"status"`
	Code          string              `bson:"code,omitempty" json:"code,omitempty"`
	ProofToken    string              `bson:"proof_token,omitempty" json:"proof_token,omitempty"`
	Placement     string              `bson:"placement,omitempty" json:"placement,omitempty"`
	AssetMetadata *AssetMetadata      `bson:"asset_metadata,omitempty" json:"asset_metadata,omitempty"`
	Evidence      []EvidenceFile      `bson:"evidence,omitempty" json:"evidence,omitempty"`
	ReviewerNotes []ReviewerNote      `bson:"reviewer_notes,omitempty" json:"reviewer_notes,omitempty"`
	FailureReason string              `bson:"failure_reason,omitempty" json:"failure_reason,omitempty"`
	// Terminal mirrors the status; it backs the partial unique index that
	// serializes competing claims per right.
	Terminal  bool      `bson:"terminal" json:"terminal"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// IsTerminal reports whether the claim can no longer change.
func (c *VerificationClaim) IsTerminal() bool {
	switch c.Status {
	case ClaimStatusVerified, ClaimStatusRejected, ClaimStatusAbandoned:
		return true
	}
	return false
}

// NonTerminalClaimStatuses are the states a live claim can be in; at most
// one claim per right may hold any of them.
var NonTerminalClaimStatuses = []string{
	ClaimStatusChosen,
	ClaimStatusEvidenceSubmitted,
}
