package factsheet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const deskerPage = `홈
모션데스크 1400
전동 모터로 높이 조절이 가능한 데스크
친환경 E0 소재를 적용한 상판
케이블 수납 트레이 기본 제공
가볍게 조립하고 오래 쓰는 책상입니다
장바구니`

func TestFromPage_Desker(t *testing.T) {
	fs := FromPage(deskerPage, "모션데스크 1400 | 데스커 공식몰", "https://desker.co.kr/product/612")

	assert.Equal(t, "데스커(DESKER)", fs.BrandName)
	assert.Equal(t, "모션데스크 1400", fs.ProductName)
	assert.Equal(t, "데스커(DESKER) 모션데스크 1400", fs.Definition)
	assert.Equal(t, []string{
		"전동 모터로 높이 조절이 가능한 데스크",
		"친환경 E0 소재를 적용한 상판",
		"케이블 수납 트레이 기본 제공",
	}, fs.Features)
	assert.Equal(t, []string{"모션데스크 1400"}, fs.CoreMessages)
	assert.Equal(t, "정보 없음", fs.UsageContext)
	assert.Equal(t, "데스커 공식몰", fs.Channels)
}

func TestFromPage_TopsUpWithPlainLines(t *testing.T) {
	text := "데스크 조절 기능 안내문\n편안한 하루를 위한 가구 이야기\n짧음"

	fs := FromPage(text, "Lounge Chair - Shop", "https://shop.example.com/chair")

	assert.Equal(t, "정보 없음", fs.BrandName)
	assert.Equal(t, "Lounge Chair", fs.ProductName)
	assert.Equal(t, []string{"데스크 조절 기능 안내문", "편안한 하루를 위한 가구 이야기"}, fs.Features)
	assert.Equal(t, "공식 홈페이지", fs.Channels)
}

func TestFromPage_NoTitle(t *testing.T) {
	fs := FromPage("DESKER 브랜드 스토리를 소개합니다", "", "https://blog.example.com")

	assert.Equal(t, "데스커(DESKER)", fs.BrandName)
	assert.Equal(t, "상품 정보 없음", fs.ProductName)
	assert.Equal(t, []string{"정보 없음"}, fs.CoreMessages)
}

func TestFromDocument(t *testing.T) {
	text := "보도자료\n데스커 모션데스크 출시 안내\n- 전동 높이 조절\n- 친환경 자재 사용"

	fs := FromDocument(text, "release.docx")

	assert.Equal(t, "정보 없음", fs.BrandName)
	assert.Equal(t, "데스커 모션데스크 출시 안내", fs.ProductName)
	assert.Equal(t, "정보 없음 (Gemini API 할당량 초과)", fs.Definition)
	assert.Equal(t, []string{"데스커 모션데스크 출시 안내", "- 전동 높이 조절", "- 친환경 자재 사용"}, fs.Features)
	assert.Equal(t, []string{}, fs.CoreMessages)
}

func TestFromDocument_FileNameWhenNoLongLine(t *testing.T) {
	fs := FromDocument("짧은 줄들\n여섯글자다", "memo.txt")

	assert.Equal(t, "memo.txt", fs.ProductName)
	assert.Len(t, fs.Features, 0)
}

func TestBuildPrompts(t *testing.T) {
	link := BuildLinkPrompt(BrandHint("https://desker.co.kr"), "모션데스크", strings.Repeat("가", 20000))
	assert.Contains(t, link, "브랜드 힌트: 데스커(DESKER)")
	assert.Contains(t, link, `"productName": "제품명"`)
	assert.NotContains(t, link, strings.Repeat("가", 18001))

	file := BuildFilePrompt("문서 본문")
	assert.Contains(t, file, `"productName": "제품명 또는 캠페인명"`)
	assert.Contains(t, file, "문서 내용:\n---\n문서 본문\n---")
}
