package entity

// PrType is the narrative angle of a press release.
type PrType string

const (
	PrTypeNewProduct PrType = "new_product"
	PrTypeCampaign   PrType = "campaign"
	PrTypeTrend      PrType = "trend"
	PrTypePromotion  PrType = "promotion"
	PrTypeIssue      PrType = "issue"

	// prTypeActivity is accepted from older clients as an alias of issue.
	prTypeActivity = "activity"
)

// AllPrTypes lists the angles in display order.
var AllPrTypes = []PrType{PrTypeNewProduct, PrTypeCampaign, PrTypeTrend, PrTypePromotion, PrTypeIssue}

// ParsePrType maps free text to a PrType. Unknown values fall back to new_product.
func ParsePrType(s string) PrType {
	switch PrType(s) {
	case PrTypeNewProduct, PrTypeCampaign, PrTypeTrend, PrTypePromotion, PrTypeIssue:
		return PrType(s)
	}
	if s == prTypeActivity {
		return PrTypeIssue
	}
	return PrTypeNewProduct
}

// FactSheet is the source material one press release is generated from.
type FactSheet struct {
	BrandName     string   `json:"brandName"`
	ProductName   string   `json:"productName"`
	PrType        PrType   `json:"prType"`
	Definition    string   `json:"definition"`
	Features      []string `json:"features"`
	UsageContext  string   `json:"usageContext"`
	CoreMessages  []string `json:"coreMessages"`
	LaunchDate    string   `json:"launchDate"`
	DiscountPromo string   `json:"discountPromo"`
	Channels      string   `json:"channels"`
	CommentIntent string   `json:"commentIntent"`
}

// Feature returns the i-th feature slot, or "" when the slot is empty.
func (f FactSheet) Feature(i int) string {
	return slot(f.Features, i)
}

// CoreMessage returns the i-th core message slot, or "" when the slot is empty.
func (f FactSheet) CoreMessage(i int) string {
	return slot(f.CoreMessages, i)
}

func slot(list []string, i int) string {
	if i < 0 || i >= len(list) {
		return ""
	}
	return list[i]
}

// SpecCategory classifies a physical product specification.
type SpecCategory string

const (
	SpecCategoryDimensions SpecCategory = "dimensions"
	SpecCategoryMaterial   SpecCategory = "material"
	SpecCategoryFunction   SpecCategory = "function"
	SpecCategoryOther      SpecCategory = "other"
)

// SpecItem is one product specification entered by the user.
type SpecItem struct {
	Category SpecCategory `json:"category"`
	Value    string       `json:"value"`
	Detail   string       `json:"detail"`
}
