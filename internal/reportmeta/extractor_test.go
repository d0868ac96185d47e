package reportmeta

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var fixedNow = func() time.Time {
	return time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC)
}

func TestExtract_FileNamePriority(t *testing.T) {
	e := NewExtractor(WithClock(fixedNow))

	meta := e.Extract("2024.03.16_제품출시_기타.pdf", "보도일 2023-01-01\n번호 1 2 3")

	assert.Equal(t, "2024-03-15", meta.ExtractedDate)
	assert.Equal(t, "제품출시", meta.ExtractedTitle)
	assert.Equal(t, 3, meta.ArticleCount)
}

func TestExtract_DefaultsToToday(t *testing.T) {
	kst := time.FixedZone("KST", 9*60*60)
	e := NewExtractor(WithClock(fixedNow), WithLocation(kst))

	meta := e.Extract("scan.png", "")

	// 20:00 UTC is already the next day in Seoul.
	assert.Equal(t, "2024-06-02", meta.ExtractedDate)
	assert.Equal(t, "scan", meta.ExtractedTitle)
	assert.Equal(t, 0, meta.ArticleCount)
}

func TestDateFromFileName(t *testing.T) {
	tests := []struct {
		name   string
		file   string
		want   string
		wantOK bool
	}{
		{name: "compact", file: "20240301_리포트.xlsx", want: "2024-02-29", wantOK: true},
		{name: "short year", file: "클리핑_240101.pdf", want: "2023-12-31", wantOK: true},
		{name: "dotted", file: "2024.03.16_제품출시_기타.pdf", want: "2024-03-15", wantOK: true},
		{name: "dashed single digits", file: "report_2024-3-5.docx", want: "2024-03-04", wantOK: true},
		{name: "no extension", file: "2024.03.16", want: "2024-03-15", wantOK: true},
		{name: "invalid month", file: "20241399_리포트.pdf", wantOK: false},
		{name: "no date", file: "리포트_최종.pdf", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DateFromFileName(tt.file)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDateFromText(t *testing.T) {
	got, ok := DateFromText("배포일: 2024년 3월 7일 오전\n수정 2024.04.01")
	assert.True(t, ok)
	assert.Equal(t, "2024-03-07", got)

	got, ok = DateFromText("보도일 2024-03-16, 작성 2024.03.17")
	assert.True(t, ok)
	assert.Equal(t, "2024-03-16", got)

	got, ok = DateFromText("기간 2024-2-30 ~ 2024.03.02")
	assert.True(t, ok)
	assert.Equal(t, "2024-2-30", got)

	_, ok = DateFromText("날짜 없음")
	assert.False(t, ok)
}

func TestTitle(t *testing.T) {
	tests := []struct {
		name string
		file string
		text string
		want string
	}{
		{name: "second file name part", file: "240316_ 모션데스크 출시 _기사.pdf", want: "모션데스크 출시"},
		{name: "labelled line", file: "scan.png", text: "보고서\nTITLE: 데스커 신제품 반응\n본문", want: "데스커 신제품 반응"},
		{name: "korean label", file: "scan.png", text: "제목 : 브랜드 캠페인 결과", want: "브랜드 캠페인 결과"},
		{name: "first long line", file: "scan.png", text: "요약\n데스커 모션데스크 언론 보도 결과 보고", want: "데스커 모션데스크 언론 보도 결과 보고"},
		{
			name: "long line truncated",
			file: "scan.png",
			text: "가나다라마바사아자차카타파하가나다라마바사아자차카타파하가나다라마바사아자차카타파하가나다라마바사아자차",
			want: "가나다라마바사아자차카타파하가나다라마바사아자차카타파하가나다라마바사아자차카타파하가나다라마바사아",
		},
		{name: "empty second part falls through", file: "리포트_.pdf", text: "짧음", want: "리포트_"},
		{name: "file name fallback", file: "clipping.pdf", text: "abc", want: "clipping"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Title(tt.file, tt.text))
		})
	}
}

func TestCountArticles(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{name: "number column", text: "번호 매체 제목\n1 한국경제\n2 매일경제\n3 서울경제\n4 전자신문\n5 머니투데이", want: 5},
		{name: "header with dotted numbers", text: "No. 매체\n1. A일보\n2. B일보\n3) C일보", want: 3},
		{name: "duplicates and out of range", text: "번호\n1 1 2 2 500 3 2024", want: 3},
		{name: "candidates without a run", text: "번호\n7 9 12", want: 3},
		{name: "pipe delimited table", text: "번호|매체|제목\n1|한국경제|기사\n2|매일경제|기사\n3|서울경제|기사", want: 3},
		{name: "dates in rows are not row numbers", text: "번호 날짜 매체\n1 2024.03.15 한국경제\n2 2024-03-16 매일경제", want: 2},
		{name: "emails only", text: "문의 a@desker.co.kr, b@fursys.com, c.kim@press.kr", want: 3},
		{name: "reporters beat copyright", text: "김철수 기자 ⓒ 한국경제\n이영희 기자", want: 2},
		{name: "long text without markers", text: stringOf('가', 101), want: 1},
		{name: "short text without markers", text: "요약 보고서", want: 0},
		{name: "empty", text: "", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CountArticles(tt.text))
		})
	}
}

func stringOf(r rune, n int) string {
	out := make([]rune, n)
	for i := range out {
		out[i] = r
	}
	return string(out)
}
