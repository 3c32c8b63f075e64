package listing

import (
	"testing"

	"github.com/dright-io/dright-core/models"
	"github.com/stretchr/testify/assert"
)

func validTestRight() *models.Right {
	return &models.Right{
		Id:             "right-1",
		Title:          "Sample Track",
		Description:    "50% royalty share in a recorded track",
		AssetCategory:  models.AssetCategoryAudioTrack,
		RightCategory:  models.RightCategoryRoyaltyShare,
		Price:          "1.5",
		Currency:       "ETH",
		ListingMode:    models.ListingModeFixed,
		RoyaltyPercent: 50,
	}
}

func TestValidate(t *testing.T) {

	t.Run("Valid Right", func(t *testing.T) {
		err := Validate(validTestRight())

		assert.Nil(t, err)
	})

	t.Run("Missing Price", func(t *testing.T) {
		right := validTestRight()
		right.Price = ""

		err := Validate(right)

		assert.NotNil(t, err)
		var missing *MissingRequiredFieldError
		assert.ErrorAs(t, err, &missing)
		assert.Equal(t, FieldPrice, missing.Field)
	})

	t.Run("Zero Price", func(t *testing.T) {
		right := validTestRight()
		right.Price = "0"

		err := Validate(right)

		assert.NotNil(t, err)
	})

	t.Run("Missing Description", func(t *testing.T) {
		right := validTestRight()
		right.Description = ""

		err := Validate(right)

		assert.NotNil(t, err)
		var missing *MissingRequiredFieldError
		assert.ErrorAs(t, err, &missing)
		assert.Equal(t, FieldDescription, missing.Field)
	})

	t.Run("Fallback Row Still Requires Fields", func(t *testing.T) {
		right := validTestRight()
		right.AssetCategory = "unknown-asset"
		right.RightCategory = "unknown-right"
		right.Description = ""

		err := Validate(right)

		assert.NotNil(t, err)
	})

	t.Run("Batch Items Validated Independently", func(t *testing.T) {
		good := validTestRight()
		bad := validTestRight()
		bad.Price = ""

		assert.Nil(t, Validate(good))
		assert.NotNil(t, Validate(bad))
		assert.Nil(t, Validate(good))
	})
}
