package telegram

import (
	"fmt"
	"strings"

	"presscraft/internal/clipping"
	"presscraft/internal/coverage"
	"presscraft/internal/entity"
)

// maxMessageLen keeps each part under Telegram's 4096 character limit.
const maxMessageLen = 4090

var markdownEscaper = strings.NewReplacer("_", "\\_", "*", "\\*", "`", "\\`", "[", "\\[")

// EscapeMarkdown escapes the characters legacy Telegram Markdown treats as entities.
func EscapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}

// FormatTimelineForTelegram renders a day-bucketed clipping timeline, split
// into parts that each fit in one Telegram message.
func FormatTimelineForTelegram(query string, days []entity.DailyNewsGroups) []string {
	if len(days) == 0 {
		return []string{fmt.Sprintf("📭 '%s' 관련 신규 기사가 없습니다.", EscapeMarkdown(query))}
	}

	header := func(part int) string {
		if part == 1 {
			return fmt.Sprintf("📰 *뉴스 클리핑: %s* 📰\n\n", EscapeMarkdown(query))
		}
		return fmt.Sprintf("---*뉴스 클리핑 %s (계속) Part %d*---\n\n", EscapeMarkdown(query), part)
	}

	var entries []string
	for _, day := range days {
		articles := 0
		for _, g := range day.Groups {
			articles += len(g.All)
		}

		var b strings.Builder
		b.WriteString(fmt.Sprintf("📅 *%s* (이슈 %d건 / 기사 %d건)\n", day.Date, len(day.Groups), articles))
		for _, g := range day.Groups {
			title := EscapeMarkdown(clipping.CleanTitle(g.Main.Title))
			if len(g.All) > 1 {
				b.WriteString(fmt.Sprintf("• %s _외 %d건_\n", title, len(g.All)-1))
			} else {
				b.WriteString(fmt.Sprintf("• %s\n", title))
			}
			b.WriteString(fmt.Sprintf("  %s\n", EscapeMarkdown(g.Main.Link)))
		}
		b.WriteString("\n")
		entries = append(entries, b.String())
	}

	return paginate(header, entries)
}

// FormatCoverageForTelegram renders a coverage rollup.
func FormatCoverageForTelegram(name string, r coverage.Rollup) []string {
	header := func(part int) string {
		if part == 1 {
			return fmt.Sprintf("📊 *보도 성과 리포트: %s*\n기간: %s ~ %s\n\n", EscapeMarkdown(name), r.From, r.To)
		}
		return fmt.Sprintf("---*보도 성과 리포트 (계속) Part %d*---\n\n", part)
	}

	entries := []string{fmt.Sprintf("📝 *배포 건수:* %d\n📰 *게재 기사 수:* %d\n\n", r.TotalEvents, r.TotalArticles)}
	entries = append(entries, bucketSection("🗓 *월별*", r.ByMonth))
	entries = append(entries, bucketSection("📆 *주별*", r.ByWeek))
	entries = append(entries, bucketSection("🏷 *유형별*", r.ByType))

	return paginate(header, entries)
}

func bucketSection(title string, buckets []coverage.Bucket) string {
	var b strings.Builder
	b.WriteString(title + "\n")
	if len(buckets) == 0 {
		b.WriteString("- 데이터 없음\n")
	}
	for _, bucket := range buckets {
		b.WriteString(fmt.Sprintf("- %s: %d건 배포 / 기사 %d건\n", EscapeMarkdown(bucket.Key), bucket.Events, bucket.Articles))
	}
	b.WriteString("\n")
	return b.String()
}

// paginate packs entries into messages of at most maxMessageLen bytes. An
// entry is never split, so a single oversized entry becomes its own part.
func paginate(header func(part int) string, entries []string) []string {
	var messages []string
	var current strings.Builder
	part := 1
	current.WriteString(header(part))
	hasEntry := false

	for _, entry := range entries {
		if hasEntry && current.Len()+len(entry) > maxMessageLen {
			messages = append(messages, current.String())
			part++
			current.Reset()
			current.WriteString(header(part))
			hasEntry = false
		}
		current.WriteString(entry)
		hasEntry = true
	}

	return append(messages, current.String())
}
