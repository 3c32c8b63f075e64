package listing

import (
	"io"
	"testing"

	"github.com/dright-io/dright-core/models"
	"github.com/stretchr/testify/assert"

	log "github.com/sirupsen/logrus"
)

func init() {
	log.SetOutput(io.Discard)
}

var allAssetCategories = []string{
	models.AssetCategoryVideo,
	models.AssetCategoryAudioTrack,
	models.AssetCategoryPatent,
	models.AssetCategoryProperty,
	models.AssetCategoryArtwork,
	models.AssetCategorySoftware,
	models.AssetCategoryBrand,
	models.AssetCategoryLiteraryWork,
	models.AssetCategoryOther,
}

var allRightCategories = []string{
	models.RightCategoryCopyright,
	models.RightCategoryRoyaltyShare,
	models.RightCategoryLicense,
	models.RightCategoryOwnershipStake,
	models.RightCategoryAccessGrant,
}

func TestResolveIsTotal(t *testing.T) {
	for _, asset := range allAssetCategories {
		for _, right := range allRightCategories {
			spec := Resolve(asset, right)
			assert.NotEmpty(t, spec.RequiredFields, "asset %s right %s", asset, right)
			assert.NotEmpty(t, spec.GuidanceText, "asset %s right %s", asset, right)
		}
	}
}

func TestResolveUnknownCategories(t *testing.T) {
	spec := Resolve("unknown-asset", "unknown-right")

	assert.Contains(t, spec.RequiredFields, FieldDescription)
	assert.Contains(t, spec.RequiredFields, FieldPrice)
}

func TestResolveIsPure(t *testing.T) {
	first := Resolve(models.AssetCategoryVideo, models.RightCategoryRoyaltyShare)
	second := Resolve(models.AssetCategoryVideo, models.RightCategoryRoyaltyShare)

	assert.Equal(t, first, second)
}

func TestResolveReturnsCopies(t *testing.T) {
	spec := Resolve(models.AssetCategoryVideo, models.RightCategoryCopyright)
	spec.RequiredFields[0] = "mutated"

	fresh := Resolve(models.AssetCategoryVideo, models.RightCategoryCopyright)
	assert.NotEqual(t, "mutated", fresh.RequiredFields[0])
}

func TestLegalRightCategories(t *testing.T) {
	t.Run("Known Asset", func(t *testing.T) {
		rights := LegalRightCategories(models.AssetCategoryAudioTrack)

		assert.NotEmpty(t, rights)
		assert.Contains(t, rights, models.RightCategoryRoyaltyShare)
	})

	t.Run("Unknown Asset", func(t *testing.T) {
		rights := LegalRightCategories("unknown-asset")

		assert.NotEmpty(t, rights)
	})
}

func TestDefaultRightCategory(t *testing.T) {
	for _, asset := range allAssetCategories {
		def := DefaultRightCategory(asset)
		legal := LegalRightCategories(asset)

		assert.Equal(t, legal[0], def, "asset %s", asset)
		assert.Contains(t, legal, def, "asset %s", asset)
	}
}
