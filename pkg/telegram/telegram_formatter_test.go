package telegram

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"presscraft/internal/coverage"
	"presscraft/internal/entity"
)

func TestFormatTimelineForTelegram_Empty(t *testing.T) {
	parts := FormatTimelineForTelegram("데스커", nil)
	require.Len(t, parts, 1)
	assert.Contains(t, parts[0], "신규 기사가 없습니다")
}

func TestFormatTimelineForTelegram(t *testing.T) {
	main := entity.NewsItem{Title: "<b>데스커</b> 모션데스크_출시", Link: "https://n.news/1"}
	days := []entity.DailyNewsGroups{{
		Date: "2024-03-15",
		Groups: []entity.NewsGroup{
			{Main: main, All: []entity.NewsItem{main, {Title: "dup"}, {Title: "dup2"}}},
		},
	}}

	parts := FormatTimelineForTelegram("데스커", days)

	require.Len(t, parts, 1)
	assert.Contains(t, parts[0], "📅 *2024-03-15* (이슈 1건 / 기사 3건)")
	assert.Contains(t, parts[0], "• 데스커 모션데스크\\_출시 _외 2건_")
	assert.Contains(t, parts[0], "https://n.news/1")
}

func TestFormatTimelineForTelegram_EscapesLinks(t *testing.T) {
	main := entity.NewsItem{Title: "데스커", Link: "https://news.example.com/read?oid=015&art_id=2024_03*15"}
	days := []entity.DailyNewsGroups{{
		Date:   "2024-03-15",
		Groups: []entity.NewsGroup{{Main: main, All: []entity.NewsItem{main}}},
	}}

	parts := FormatTimelineForTelegram("데스커", days)

	require.Len(t, parts, 1)
	assert.Contains(t, parts[0], "  https://news.example.com/read?oid=015&art\\_id=2024\\_03\\*15\n")
}

func TestFormatTimelineForTelegram_Paginates(t *testing.T) {
	var days []entity.DailyNewsGroups
	for i := 0; i < 60; i++ {
		item := entity.NewsItem{Title: strings.Repeat("가", 40), Link: fmt.Sprintf("https://n.news/%d", i)}
		days = append(days, entity.DailyNewsGroups{
			Date:   fmt.Sprintf("2024-01-%02d", i%28+1),
			Groups: []entity.NewsGroup{{Main: item, All: []entity.NewsItem{item}}},
		})
	}

	parts := FormatTimelineForTelegram("데스커", days)

	require.Greater(t, len(parts), 1)
	for _, p := range parts {
		assert.LessOrEqual(t, len(p), maxMessageLen)
	}
	assert.Contains(t, parts[1], "Part 2")
}

func TestFormatCoverageForTelegram(t *testing.T) {
	r := coverage.Rollup{
		From: "2024-03-01", To: "2024-03-07", TotalEvents: 2, TotalArticles: 9,
		ByType: []coverage.Bucket{{Key: "new_product", Events: 2, Articles: 9}},
	}

	parts := FormatCoverageForTelegram("주간", r)

	require.Len(t, parts, 1)
	assert.Contains(t, parts[0], "기간: 2024-03-01 ~ 2024-03-07")
	assert.Contains(t, parts[0], "*게재 기사 수:* 9")
	assert.Contains(t, parts[0], "- new\\_product: 2건 배포 / 기사 9건")
	assert.Contains(t, parts[0], "🗓 *월별*\n- 데이터 없음")
}

type recordingNotifier struct {
	sent []string
	fail int
}

func (r *recordingNotifier) SendMessage(text string) error {
	if r.fail > 0 && len(r.sent)+1 == r.fail {
		return fmt.Errorf("boom")
	}
	r.sent = append(r.sent, text)
	return nil
}

func TestSendAll(t *testing.T) {
	n := &recordingNotifier{}
	require.NoError(t, SendAll(n, []string{"a", "b"}))
	assert.Equal(t, []string{"a", "b"}, n.sent)

	n = &recordingNotifier{fail: 2}
	err := SendAll(n, []string{"a", "b", "c"})
	assert.ErrorContains(t, err, "part 2/3")
	assert.Equal(t, []string{"a"}, n.sent)
}
