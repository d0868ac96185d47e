package pressrelease

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"presscraft/internal/entity"
)

func TestMapSpecToStory_Empty(t *testing.T) {
	assert.Empty(t, MapSpecToStory(nil))
	assert.Empty(t, MapSpecToStory([]entity.SpecItem{}))
}

func TestMapSpecToStory_PreservesLengthAndOrder(t *testing.T) {
	specs := []entity.SpecItem{
		{Category: entity.SpecCategoryDimensions, Value: "W1200"},
		{Category: entity.SpecCategoryMaterial, Value: "E0 등급 PB"},
		{Category: entity.SpecCategoryFunction, Value: "LED 조명"},
		{Category: entity.SpecCategoryOther, Value: "무선 충전", Detail: "스마트폰 거치"},
	}

	stories := MapSpecToStory(specs)
	require.Len(t, stories, len(specs))
	for i, s := range stories {
		assert.Contains(t, s, specs[i].Value)
	}
}

func TestMapSpecToStory_Sentences(t *testing.T) {
	tests := []struct {
		name string
		spec entity.SpecItem
		want string
	}{
		{
			name: "compact desk",
			spec: entity.SpecItem{Category: entity.SpecCategoryDimensions, Value: "W1200"},
			want: "W1200 사이즈로 콤팩트한 공간에도 여유롭게 배치하여 나만의 홈오피스를 완성할 수 있다.",
		},
		{
			name: "wide desk",
			spec: entity.SpecItem{Category: entity.SpecCategoryDimensions, Value: "W1600 x D700"},
			want: "W1600 x D700의 넉넉한 사이즈로 멀티태스킹에 최적화된 넓은 작업 공간을 제공한다.",
		},
		{
			name: "other dimensions",
			spec: entity.SpecItem{Category: entity.SpecCategoryDimensions, Value: "W900"},
			want: "W900의 효율적인 규격으로 공간 활용성을 극대화했다.",
		},
		{
			name: "lpm finish is case insensitive",
			spec: entity.SpecItem{Category: entity.SpecCategoryMaterial, Value: "LPM"},
			want: "스크래치와 오염에 강한 LPM 마감을 적용하여, 오랜 사용에도 변함없는 내구성을 자랑한다.",
		},
		{
			name: "motor",
			spec: entity.SpecItem{Category: entity.SpecCategoryFunction, Value: "듀얼 모터"},
			want: "듀얼 모터 기능을 통해 사용자의 체형과 컨디션에 맞춘 최적의 높이를 제공, 업무 몰입도를 비약적으로 높여준다.",
		},
		{
			name: "storage",
			spec: entity.SpecItem{Category: entity.SpecCategoryFunction, Value: "배선 정리"},
			want: "배선 정리 솔루션을 통해 복잡한 데스크 위를 깔끔하게 정리, 심리적 안정감을 주는 인테리어 효과까지 누릴 수 있다.",
		},
		{
			name: "unmatched material with detail",
			spec: entity.SpecItem{Category: entity.SpecCategoryMaterial, Value: "원목", Detail: "오크 무늬"},
			want: "원목 - 오크 무늬",
		},
		{
			name: "unmatched function without detail",
			spec: entity.SpecItem{Category: entity.SpecCategoryFunction, Value: "USB 포트"},
			want: "USB 포트를 통해 사용자 편의성을 높였다.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, []string{tt.want}, MapSpecToStory([]entity.SpecItem{tt.spec}))
		})
	}
}
