package pressrelease

import (
	"embed"
	"strings"

	"github.com/valyala/fasttemplate"

	"presscraft/internal/entity"
)

const (
	startTag = "{{"
	endTag   = "}}"

	defaultCampaignEvent = "다양한 온/오프라인 이벤트"
)

// GrowthKeywords is the brand vocabulary the templates draw on.
var GrowthKeywords = []string{"가능성", "성장", "도전", "몰입", "워크 앤 라이프스타일", "일잘러", "주체적인 삶"}

//go:embed templates/*.txt
var templateFS embed.FS

var (
	newProductTpl       = mustLoad("new_product.txt")
	newProductPromoTpl  = mustLoad("new_product_promotion.txt")
	newProductPointTpls = mustLoadLines("new_product_points.txt")
	campaignTpl         = mustLoad("campaign.txt")
	trendTpl            = mustLoad("trend.txt")
	promotionTpl        = mustLoad("promotion.txt")
	promotionBenefitTpl = mustLoad("promotion_benefit.txt")
	issueTpl            = mustLoad("issue.txt")
)

type renderFunc func(fs entity.FactSheet, stories []string) string

var renderers = map[entity.PrType]renderFunc{
	entity.PrTypeNewProduct: renderNewProduct,
	entity.PrTypeCampaign:   renderCampaign,
	entity.PrTypeTrend:      renderTrend,
	entity.PrTypePromotion:  renderPromotion,
	entity.PrTypeIssue:      renderIssue,
}

func mustLoad(name string) *fasttemplate.Template {
	b, err := templateFS.ReadFile("templates/" + name)
	if err != nil {
		panic(err)
	}
	return fasttemplate.New(strings.TrimSuffix(string(b), "\n"), startTag, endTag)
}

// mustLoadLines compiles every line of the file as its own template.
func mustLoadLines(name string) []*fasttemplate.Template {
	b, err := templateFS.ReadFile("templates/" + name)
	if err != nil {
		panic(err)
	}
	lines := strings.Split(strings.TrimSuffix(string(b), "\n"), "\n")
	tpls := make([]*fasttemplate.Template, len(lines))
	for i, line := range lines {
		tpls[i] = fasttemplate.New(line, startTag, endTag)
	}
	return tpls
}

// GenerateDraft renders the press release for the fact sheet's angle.
// Specs only influence the new_product angle, where they become the
// differentiating points. Empty fact sheet fields render as empty text.
func GenerateDraft(fs entity.FactSheet, specs []entity.SpecItem) string {
	render, ok := renderers[entity.ParsePrType(string(fs.PrType))]
	if !ok {
		render = renderNewProduct
	}
	return render(fs, MapSpecToStory(specs))
}

// baseTags holds the placeholders shared by every angle.
func baseTags(fs entity.FactSheet) map[string]interface{} {
	return map[string]interface{}{
		"brand_name":          fs.BrandName,
		"product_name":        fs.ProductName,
		"definition":          fs.Definition,
		"usage_context":       fs.UsageContext,
		"launch_date":         fs.LaunchDate,
		"discount_promo":      fs.DiscountPromo,
		"channels":            fs.Channels,
		"comment_intent":      fs.CommentIntent,
		"core_message_1":      fs.CoreMessage(0),
		"core_message_2":      fs.CoreMessage(1),
		"feature_1":           fs.Feature(0),
		"feature_2":           fs.Feature(1),
		"feature_3":           fs.Feature(2),
		"keyword_possibility": GrowthKeywords[0],
		"keyword_growth":      GrowthKeywords[1],
		"keyword_immersion":   GrowthKeywords[3],
		"growth_keywords":     strings.Join(GrowthKeywords, ", "),
	}
}

func renderNewProduct(fs entity.FactSheet, stories []string) string {
	tags := baseTags(fs)

	for i := 0; i < 3; i++ {
		point := ""
		if i < len(stories) {
			point = stories[i]
		}
		if point == "" && i < len(newProductPointTpls) {
			point = newProductPointTpls[i].ExecuteString(tags)
		}
		tags[pointTag(i)] = point
	}

	tags["promotion_sentence"] = ""
	if fs.DiscountPromo != "" {
		tags["promotion_sentence"] = newProductPromoTpl.ExecuteString(tags)
	}
	return newProductTpl.ExecuteString(tags)
}

func pointTag(i int) string {
	return []string{"point_1", "point_2", "point_3"}[i]
}

func renderCampaign(fs entity.FactSheet, _ []string) string {
	tags := baseTags(fs)
	tags["campaign_event"] = defaultCampaignEvent
	if fs.DiscountPromo != "" {
		tags["campaign_event"] = fs.DiscountPromo
	}
	return campaignTpl.ExecuteString(tags)
}

func renderTrend(fs entity.FactSheet, _ []string) string {
	return trendTpl.ExecuteString(baseTags(fs))
}

// renderPromotion prints the benefit paragraph only when a discount is known.
// The discount bullet is always printed.
func renderPromotion(fs entity.FactSheet, _ []string) string {
	tags := baseTags(fs)
	tags["benefit_paragraph"] = ""
	if fs.DiscountPromo != "" {
		tags["benefit_paragraph"] = promotionBenefitTpl.ExecuteString(tags) + "\n\n"
	}
	return promotionTpl.ExecuteString(tags)
}

func renderIssue(fs entity.FactSheet, _ []string) string {
	return issueTpl.ExecuteString(baseTags(fs))
}
