package pressrelease

import (
	"fmt"
	"strings"

	"presscraft/internal/entity"
)

// MapSpecToStory turns each spec into one storytelling sentence, in input order.
// Keyword matching is case-insensitive and runs against the value only.
func MapSpecToStory(specs []entity.SpecItem) []string {
	stories := make([]string, 0, len(specs))
	for _, spec := range specs {
		stories = append(stories, storyFor(spec))
	}
	return stories
}

func storyFor(spec entity.SpecItem) string {
	v := spec.Value
	lower := strings.ToLower(v)

	switch spec.Category {
	case entity.SpecCategoryDimensions:
		switch {
		case containsAny(lower, "1200", "1000"):
			return fmt.Sprintf("%s 사이즈로 콤팩트한 공간에도 여유롭게 배치하여 나만의 홈오피스를 완성할 수 있다.", v)
		case containsAny(lower, "1400", "1600", "1800"):
			return fmt.Sprintf("%s의 넉넉한 사이즈로 멀티태스킹에 최적화된 넓은 작업 공간을 제공한다.", v)
		default:
			return fmt.Sprintf("%s의 효율적인 규격으로 공간 활용성을 극대화했다.", v)
		}
	case entity.SpecCategoryMaterial:
		switch {
		case containsAny(lower, "e0", "친환경"):
			return fmt.Sprintf("엄격한 품질 관리를 거친 %s 자재를 사용하여 건강한 학습 및 업무 환경을 조성한다. 이는 ESG 경영을 실천하는 브랜드의 철학을 담고 있다.", v)
		case containsAny(lower, "lpm", "강화"):
			return fmt.Sprintf("스크래치와 오염에 강한 %s 마감을 적용하여, 오랜 사용에도 변함없는 내구성을 자랑한다.", v)
		}
	case entity.SpecCategoryFunction:
		switch {
		case containsAny(lower, "모터", "높이"):
			return fmt.Sprintf("%s 기능을 통해 사용자의 체형과 컨디션에 맞춘 최적의 높이를 제공, 업무 몰입도를 비약적으로 높여준다.", v)
		case containsAny(lower, "조명", "led"):
			return fmt.Sprintf("%s 기능은 눈의 피로를 최소화하여 장시간 집중이 필요한 작업에 도움을 준다.", v)
		case containsAny(lower, "수납", "배선"):
			return fmt.Sprintf("%s 솔루션을 통해 복잡한 데스크 위를 깔끔하게 정리, 심리적 안정감을 주는 인테리어 효과까지 누릴 수 있다.", v)
		}
	}

	if spec.Detail != "" {
		return fmt.Sprintf("%s - %s", v, spec.Detail)
	}
	return fmt.Sprintf("%s를 통해 사용자 편의성을 높였다.", v)
}

func containsAny(s string, keywords ...string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
