package listing

import "github.com/dright-io/dright-core/models"

// field names used by required/optional sets
const (
	FieldDescription    = "description"
	FieldPrice          = "price"
	FieldCurrency       = "currency"
	FieldListingMode    = "listing_mode"
	FieldRoyaltyPercent = "royalty_percent"
	FieldDividendFlag   = "pays_dividends"
	FieldTerritory      = "territory"
	FieldDuration       = "duration"
)

// Spec is the validated field contract for one (asset, right) pair.
// Resolve is a pure function: identical inputs always yield a structurally
// identical Spec, which is what makes listing validation reproducible.
type Spec struct {
	RequiredFields    []string `json:"required_fields"`
	OptionalFields    []string `json:"optional_fields"`
	GuidanceText      string   `json:"guidance_text"`
	ExamplePriceRange string   `json:"example_price_range"`
}

type ruleKey struct {
	assetCategory string
	rightCategory string
}

type ruleRow struct {
	spec          Spec
	legalRights   []string
	defaultChoice string
}

// legal right categories per asset category, with the default choice first
var legalRightsByAsset = map[string][]string{
	models.AssetCategoryVideo:        {models.RightCategoryCopyright, models.RightCategoryRoyaltyShare, models.RightCategoryLicense},
	models.AssetCategoryAudioTrack:   {models.RightCategoryRoyaltyShare, models.RightCategoryCopyright, models.RightCategoryLicense},
	models.AssetCategoryPatent:       {models.RightCategoryLicense, models.RightCategoryOwnershipStake},
	models.AssetCategoryProperty:     {models.RightCategoryOwnershipStake, models.RightCategoryAccessGrant},
	models.AssetCategoryArtwork:      {models.RightCategoryCopyright, models.RightCategoryOwnershipStake, models.RightCategoryRoyaltyShare},
	models.AssetCategorySoftware:     {models.RightCategoryLicense, models.RightCategoryCopyright, models.RightCategoryAccessGrant},
	models.AssetCategoryBrand:        {models.RightCategoryLicense, models.RightCategoryRoyaltyShare},
	models.AssetCategoryLiteraryWork: {models.RightCategoryCopyright, models.RightCategoryRoyaltyShare, models.RightCategoryLicense},
	models.AssetCategoryOther:        {models.RightCategoryOwnershipStake, models.RightCategoryLicense, models.RightCategoryAccessGrant},
}

// fallbackRow keeps Resolve total: every combination resolves to a row, and
// the fallback still demands a description and a price.
var fallbackRow = Spec{
	RequiredFields:    []string{FieldDescription, FieldPrice},
	OptionalFields:    []string{FieldCurrency, FieldListingMode},
	GuidanceText:      "Describe the right being sold and set an asking price. Provide enough detail for a buyer to understand exactly what they acquire.",
	ExamplePriceRange: "0.05 - 5 ETH",
}

var rules = map[ruleKey]Spec{
	{models.AssetCategoryVideo, models.RightCategoryCopyright}: {
		RequiredFields:    []string{FieldDescription, FieldPrice, FieldListingMode},
		OptionalFields:    []string{FieldCurrency, FieldRoyaltyPercent},
		GuidanceText:      "You are selling the copyright of this video. The buyer gains the exclusive right to reproduce and distribute it; monetization on the original platform transfers with the sale.",
		ExamplePriceRange: "0.5 - 20 ETH",
	},
	{models.AssetCategoryVideo, models.RightCategoryRoyaltyShare}: {
		RequiredFields:    []string{FieldDescription, FieldPrice, FieldRoyaltyPercent, FieldDividendFlag},
		OptionalFields:    []string{FieldCurrency, FieldListingMode},
		GuidanceText:      "You are selling a share of this video's future ad revenue. State the percentage offered and whether payouts are distributed as dividends.",
		ExamplePriceRange: "0.1 - 5 ETH",
	},
	{models.AssetCategoryVideo, models.RightCategoryLicense}: {
		RequiredFields:    []string{FieldDescription, FieldPrice, FieldTerritory, FieldDuration},
		OptionalFields:    []string{FieldCurrency, FieldListingMode},
		GuidanceText:      "You are granting a non-exclusive license to use this video. Specify where and for how long the license applies.",
		ExamplePriceRange: "0.05 - 2 ETH",
	},
	{models.AssetCategoryAudioTrack, models.RightCategoryRoyaltyShare}: {
		RequiredFields:    []string{FieldDescription, FieldPrice, FieldRoyaltyPercent, FieldDividendFlag},
		OptionalFields:    []string{FieldCurrency, FieldListingMode},
		GuidanceText:      "You are selling a share of this track's streaming royalties. State the percentage offered and the payout arrangement.",
		ExamplePriceRange: "0.1 - 10 ETH",
	},
	{models.AssetCategoryAudioTrack, models.RightCategoryCopyright}: {
		RequiredFields:    []string{FieldDescription, FieldPrice, FieldListingMode},
		OptionalFields:    []string{FieldCurrency, FieldRoyaltyPercent},
		GuidanceText:      "You are selling the master recording copyright. The buyer controls reproduction, sync and distribution.",
		ExamplePriceRange: "1 - 50 ETH",
	},
	{models.AssetCategoryPatent, models.RightCategoryLicense}: {
		RequiredFields:    []string{FieldDescription, FieldPrice, FieldTerritory, FieldDuration},
		OptionalFields:    []string{FieldCurrency, FieldRoyaltyPercent},
		GuidanceText:      "You are licensing this patent. Specify jurisdiction and term; exclusive licenses should be priced accordingly.",
		ExamplePriceRange: "5 - 100 ETH",
	},
	{models.AssetCategoryPatent, models.RightCategoryOwnershipStake}: {
		RequiredFields:    []string{FieldDescription, FieldPrice, FieldRoyaltyPercent},
		OptionalFields:    []string{FieldCurrency, FieldListingMode, FieldDividendFlag},
		GuidanceText:      "You are selling partial ownership of this patent. The stake entitles the buyer to a share of any licensing income.",
		ExamplePriceRange: "10 - 500 ETH",
	},
	{models.AssetCategoryProperty, models.RightCategoryOwnershipStake}: {
		RequiredFields:    []string{FieldDescription, FieldPrice, FieldRoyaltyPercent, FieldDividendFlag},
		OptionalFields:    []string{FieldCurrency, FieldListingMode},
		GuidanceText:      "You are selling a fractional stake in this property. State the percentage sold and whether rental income is distributed.",
		ExamplePriceRange: "1 - 1000 ETH",
	},
	{models.AssetCategoryArtwork, models.RightCategoryCopyright}: {
		RequiredFields:    []string{FieldDescription, FieldPrice},
		OptionalFields:    []string{FieldCurrency, FieldListingMode, FieldRoyaltyPercent},
		GuidanceText:      "You are selling the reproduction rights to this artwork. Physical ownership of the original is unaffected unless stated.",
		ExamplePriceRange: "0.2 - 30 ETH",
	},
	{models.AssetCategorySoftware, models.RightCategoryLicense}: {
		RequiredFields:    []string{FieldDescription, FieldPrice, FieldDuration},
		OptionalFields:    []string{FieldCurrency, FieldListingMode, FieldTerritory},
		GuidanceText:      "You are selling a usage license for this software. Specify the term and any seat or deployment limits in the description.",
		ExamplePriceRange: "0.1 - 10 ETH",
	},
	{models.AssetCategoryBrand, models.RightCategoryLicense}: {
		RequiredFields:    []string{FieldDescription, FieldPrice, FieldTerritory, FieldDuration},
		OptionalFields:    []string{FieldCurrency, FieldRoyaltyPercent},
		GuidanceText:      "You are licensing this brand or trademark. Specify the territory, term and permitted product categories.",
		ExamplePriceRange: "2 - 200 ETH",
	},
	{models.AssetCategoryLiteraryWork, models.RightCategoryCopyright}: {
		RequiredFields:    []string{FieldDescription, FieldPrice, FieldListingMode},
		OptionalFields:    []string{FieldCurrency, FieldRoyaltyPercent},
		GuidanceText:      "You are selling the publishing copyright of this work. Translation and adaptation rights transfer unless excluded in the description.",
		ExamplePriceRange: "0.5 - 25 ETH",
	},
}

// Resolve returns the listing spec for the given pair. It is total: unknown
// combinations fall back to the default row.
func Resolve(assetCategory string, rightCategory string) Spec {
	if row, ok := rules[ruleKey{assetCategory, rightCategory}]; ok {
		return copySpec(row)
	}
	return copySpec(fallbackRow)
}

// LegalRightCategories returns the right categories a seller may choose for
// an asset category, default choice first. Unknown categories get the full
// fallback set.
func LegalRightCategories(assetCategory string) []string {
	if legal, ok := legalRightsByAsset[assetCategory]; ok {
		out := make([]string, len(legal))
		copy(out, legal)
		return out
	}
	return LegalRightCategories(models.AssetCategoryOther)
}

// DefaultRightCategory returns the default right category choice for an
// asset category.
func DefaultRightCategory(assetCategory string) string {
	return LegalRightCategories(assetCategory)[0]
}

// copySpec returns a defensive copy so callers cannot mutate the table.
func copySpec(s Spec) Spec {
	out := Spec{
		GuidanceText:      s.GuidanceText,
		ExamplePriceRange: s.ExamplePriceRange,
	}
	out.RequiredFields = append([]string{}, s.RequiredFields...)
	out.OptionalFields = append([]string{}, s.OptionalFields...)
	return out
}
