package models

// types of asset categories
const (
	AssetCategoryVideo        = "video"
	AssetCategoryAudioTrack   = "audio-track"
	AssetCategoryPatent       = "patent"
	AssetCategoryProperty     = "property"
	AssetCategoryArtwork      = "artwork"
	AssetCategorySoftware     = "software"
	AssetCategoryBrand        = "brand"
	AssetCategoryLiteraryWork = "literary-work"
	AssetCategoryOther        = "other"
)

// types of right categories
const (
	RightCategoryCopyright      = "copyright"
	RightCategoryRoyaltyShare   = "royalty-share"
	RightCategoryLicense        = "license"
	RightCategoryOwnershipStake = "ownership-stake"
	RightCategoryAccessGrant    = "access-grant"
)

// types of right verification status
const (
	VerificationStatusNotSubmitted = "not_submitted"
	VerificationStatusPending      = "pending"
	VerificationStatusVerified     = "verified"
	VerificationStatusRejected     = "rejected"
	VerificationStatusIncomplete   = "incomplete"
)

// types of listing modes
const (
	ListingModeFixed   = "fixed"
	ListingModeAuction = "auction"
)

// Right is a catalog entry for a claimed, tokenizable asset. The catalog is
// a remote record store, so fields carry json tags rather than bson.
type Right struct {
	Id                 string  `json:"id"`
	OwnerAddress       string  `json:"owner_address"`
	Title              string  `json:"title"`
	Description        string  `json:"description"`
	AssetCategory      string  `json:"asset_category"`
	RightCategory      string  `json:"right_category"`
	AssetURL           string  `json:"asset_url"`
	VerificationStatus string  `json:"verification_status"`
	Price              string  `json:"price"`
	Currency           string  `json:"currency"`
	ListingMode        string  `json:"listing_mode"`
	RoyaltyPercent     float64 `json:"royalty_percent"`
	PaysDividends      bool    `json:"pays_dividends"`
	// token fields, set only after a minting run succeeds
	TokenId         string `json:"token_id,omitempty"`
	TransactionHash string `json:"transaction_hash,omitempty"`
	MetadataURI     string `json:"metadata_uri,omitempty"`
	CreatedAt       string `json:"created_at,omitempty"`
	UpdatedAt       string `json:"updated_at,omitempty"`
}

// RightPatch is a partial update sent to the catalog store; nil fields are
// left untouched.
type RightPatch struct {
	VerificationStatus *string  `json:"verification_status,omitempty"`
	Price              *string  `json:"price,omitempty"`
	Currency           *string  `json:"currency,omitempty"`
	ListingMode        *string  `json:"listing_mode,omitempty"`
	RoyaltyPercent     *float64 `json:"royalty_percent,omitempty"`
	PaysDividends      *bool    `json:"pays_dividends,omitempty"`
	TokenId            *string  `json:"token_id,omitempty"`
	TransactionHash    *string  `json:"transaction_hash,omitempty"`
	MetadataURI        *string  `json:"metadata_uri,omitempty"`
}

func (r *Right) IsVerified() bool {
	return r.VerificationStatus == VerificationStatusVerified
}
