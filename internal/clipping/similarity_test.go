package clipping

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "<b>데스커</b>, 신제품 출시", want: "데스커신제품출시"},
		{in: "[단독] 데스커 (종합) 모션데스크!", want: "데스커모션데스크"},
		{in: "Desker &amp; Fursys 2024", want: "DeskerFursys2024"},
		{in: "   ", want: ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeTitle(tt.in), tt.in)
	}
}

func TestIsSimilar(t *testing.T) {
	tests := []struct {
		name string
		t1   string
		t2   string
		want bool
	}{
		{name: "reflexive", t1: "데스커 모션데스크 출시", t2: "데스커 모션데스크 출시", want: true},
		{name: "equal after normalization", t1: "[포토] 데스커 신제품", t2: "<b>데스커</b> 신제품", want: true},
		{name: "empty never matches", t1: "[속보]", t2: "[속보]", want: false},
		{name: "long containment", t1: "데스커 모션데스크 출시 기념 할인 행사", t2: "데스커 모션데스크 출시 기념 할인", want: true},
		{name: "short containment falls through to overlap", t1: "데스커 가구 브랜드 이야기 전체", t2: "데스커", want: true},
		{name: "unrelated", t1: "데스커 모션데스크 출시", t2: "코스피 장중 하락 마감", want: false},
		{name: "same characters different order", t1: "가나다라마바", t2: "바마라다나가", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsSimilar(tt.t1, tt.t2))
			assert.Equal(t, tt.want, IsSimilar(tt.t2, tt.t1))
		})
	}
}

func TestIsSimilar_NotTransitive(t *testing.T) {
	b := "가나다라마바사아자차"
	a := b + "ABCDEFGHIJ"
	c := b + "KLMNOPQRST"

	assert.True(t, IsSimilar(a, b))
	assert.True(t, IsSimilar(b, c))
	assert.False(t, IsSimilar(a, c))
}

func TestCleanTitle(t *testing.T) {
	assert.Equal(t, `데스커 "모션데스크" 출시`, CleanTitle(" <b>데스커</b> &quot;모션데스크&quot; 출시 "))
}
