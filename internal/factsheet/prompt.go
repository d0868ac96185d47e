package factsheet

import (
	"fmt"

	"presscraft/pkg/utils"
)

const (
	maxLinkPromptText = 18000
	maxFilePromptText = 20000
)

const factSheetSchema = `{
  "brandName": "브랜드명",
  "productName": "%s",
  "definition": "한 줄 정의 (슬로건/테마)",
  "features": ["특징1", "특징2", "특징3"],
  "coreMessages": ["핵심 메시지1", "핵심 메시지2"],
  "usageContext": "타겟 사용자/사용 맥락",
  "launchDate": "%s",
  "discountPromo": "프로모션/할인 정보",
  "channels": "판매 채널",
  "commentIntent": "관계자 코멘트 요약"
}`

// BuildLinkPrompt asks for a fact sheet from a scraped product page.
func BuildLinkPrompt(brandHint, pageTitle, pageText string) string {
	schema := fmt.Sprintf(factSheetSchema, "제품명", "출시일")
	return fmt.Sprintf(`
당신은 보도자료 작성 전문가입니다.
아래 제품 페이지 내용을 분석하여 보도자료 팩트 시트를 작성해주세요.
정보가 없는 항목은 "정보 없음"으로 표기하세요.

반드시 아래 JSON 구조로만 응답하세요 (JSON만, 다른 텍스트 없이):

%s

브랜드 힌트: %s
페이지 타이틀: %s
페이지 내용:
---
%s
---
`, schema, brandHint, pageTitle, utils.TruncateRunes(pageText, maxLinkPromptText))
}

// BuildFilePrompt asks for a fact sheet from the text of an uploaded document.
func BuildFilePrompt(documentText string) string {
	schema := fmt.Sprintf(factSheetSchema, "제품명 또는 캠페인명", "출시일/배포일")
	return fmt.Sprintf(`
당신은 보도자료 작성 전문가입니다.
아래 문서에서 제품/브랜드 정보를 추출하여 보도자료 팩트 시트를 작성해주세요.
정보가 없는 항목은 "정보 없음"으로 표기하세요.

반드시 아래 JSON 구조로만 응답하세요 (JSON만, 다른 텍스트 없이):

%s

문서 내용:
---
%s
---
`, schema, utils.TruncateRunes(documentText, maxFilePromptText))
}
