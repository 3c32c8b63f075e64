package listing

import (
	"fmt"

	"github.com/dright-io/dright-core/models"
)

// MissingRequiredFieldError is raised before a minting run can start; it
// never reaches the orchestrator.
type MissingRequiredFieldError struct {
	Field string
}

func (e *MissingRequiredFieldError) Error() string {
	return fmt.Sprintf("listing: missing required field %q", e.Field)
}

// Validate checks a right's pricing fields against the spec for its
// category pair. Each right in a batch is validated independently.
func Validate(right *models.Right) error {
	spec := Resolve(right.AssetCategory, right.RightCategory)

	for _, field := range spec.RequiredFields {
		if !fieldPresent(right, field) {
			return &MissingRequiredFieldError{Field: field}
		}
	}
	return nil
}

func fieldPresent(right *models.Right, field string) bool {
	switch field {
	case FieldDescription:
		return right.Description != ""
	case FieldPrice:
		return right.Price != "" && right.Price != "0"
	case FieldCurrency:
		return right.Currency != ""
	case FieldListingMode:
		return right.ListingMode == models.ListingModeFixed || right.ListingMode == models.ListingModeAuction
	case FieldRoyaltyPercent:
		return right.RoyaltyPercent > 0
	case FieldDividendFlag:
		// a boolean is always present once the right exists
		return true
	case FieldTerritory, FieldDuration:
		// carried in the description free text for now
		return right.Description != ""
	}
	return false
}
