package factsheet

import (
	"strings"
	"unicode/utf8"

	"presscraft/internal/entity"
	"presscraft/pkg/common"
	"presscraft/pkg/utils"
)

const (
	deskerBrand          = "데스커(DESKER)"
	deskerChannel        = "데스커 공식몰"
	defaultChannel       = "공식 홈페이지"
	missingProductName   = "상품 정보 없음"
	quotaExceededSummary = "정보 없음 (Gemini API 할당량 초과)"

	// AdvisoryFileFallback is shown when a document was parsed without the LLM.
	AdvisoryFileFallback = "⚠️ AI 할당량 초과로 기본 파싱만 적용됨. 수동으로 보완해주세요."
	// AdvisoryLinkFallback is shown when a page was parsed without the LLM.
	AdvisoryLinkFallback = "⚠️ AI 분석을 사용할 수 없어 페이지 텍스트 기반 기본 파싱만 적용됨. 수동으로 보완해주세요."

	maxFallbackFeatures = 3
)

var featureKeywords = []string{"적용", "지원", "기능", "소재", "모터", "높이", "사이즈", "컬러", "설치", "조절", "수납"}

// BrandHint is the brand the LLM is nudged toward for a given page URL.
func BrandHint(url string) string {
	if strings.Contains(url, "desker") {
		return deskerBrand
	}
	return common.NotAvailable
}

// FromPage builds a fact sheet from scraped page text without the LLM.
func FromPage(rawText, pageTitle, url string) entity.FactSheet {
	brand := common.NotAvailable
	if strings.Contains(url, "desker") || strings.Contains(strings.ToLower(rawText), "desker") || strings.Contains(rawText, "데스커") {
		brand = deskerBrand
	}

	product := pageTitle
	if strings.Contains(pageTitle, "|") {
		product = strings.TrimSpace(strings.Split(pageTitle, "|")[0])
	} else if strings.Contains(pageTitle, "-") {
		product = strings.TrimSpace(strings.Split(pageTitle, "-")[0])
	}

	lines := meaningfulLines(rawText)
	features := make([]string, 0, maxFallbackFeatures)
	for _, line := range lines {
		if len(features) >= maxFallbackFeatures {
			break
		}
		if containsAny(line, featureKeywords) {
			features = append(features, line)
		}
	}
	for _, line := range lines {
		if len(features) >= maxFallbackFeatures {
			break
		}
		n := utf8.RuneCountInString(line)
		if !utils.ContainsString(features, line) && n > 10 && n < 80 {
			features = append(features, line)
		}
	}

	productName, coreMessage := product, product
	if product == "" {
		productName, coreMessage = missingProductName, common.NotAvailable
	}
	channels := defaultChannel
	if strings.Contains(url, "desker") {
		channels = deskerChannel
	}

	return entity.FactSheet{
		BrandName:    brand,
		ProductName:  productName,
		Definition:   brand + " " + product,
		Features:     features,
		CoreMessages: []string{coreMessage},
		UsageContext: common.NotAvailable,
		Channels:     channels,
	}
}

// FromDocument builds a fact sheet from document text without the LLM.
func FromDocument(text, fileName string) entity.FactSheet {
	lines := meaningfulLines(text)

	product := fileName
	for _, line := range lines {
		if utf8.RuneCountInString(line) > 10 {
			product = line
			break
		}
	}

	features := lines
	if len(features) > maxFallbackFeatures {
		features = features[:maxFallbackFeatures]
	}

	return entity.FactSheet{
		BrandName:    common.NotAvailable,
		ProductName:  product,
		Definition:   quotaExceededSummary,
		Features:     append([]string{}, features...),
		CoreMessages: []string{},
		UsageContext: common.NotAvailable,
	}
}

// meaningfulLines keeps trimmed lines longer than 5 and shorter than 150 characters.
func meaningfulLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if n := utf8.RuneCountInString(line); n > 5 && n < 150 {
			lines = append(lines, line)
		}
	}
	return lines
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
