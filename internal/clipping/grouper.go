package clipping

import (
	"time"

	"presscraft/internal/entity"
)

const dayLayout = "2006-01-02"

// Group clusters items in a single left-to-right pass. Each item joins the
// first group whose main headline is similar to it, or starts a new group.
// Groups are never merged, so the outcome depends on input order.
func Group(items []entity.NewsItem) []entity.NewsGroup {
	groups := make([]entity.NewsGroup, 0)
	for _, item := range items {
		joined := false
		for i := range groups {
			if IsSimilar(groups[i].Main.Title, item.Title) {
				groups[i].All = append(groups[i].All, item)
				joined = true
				break
			}
		}
		if !joined {
			groups = append(groups, entity.NewsGroup{Main: item, All: []entity.NewsItem{item}})
		}
	}
	return groups
}

// GroupByDay partitions items by their calendar day in loc and groups each
// day on its own. Days appear in order of their first item.
func GroupByDay(items []entity.NewsItem, loc *time.Location) []entity.DailyNewsGroups {
	if loc == nil {
		loc = time.UTC
	}

	var days []string
	buckets := make(map[string][]entity.NewsItem)
	for _, item := range items {
		day := DayOf(item.PubDate, loc)
		if _, ok := buckets[day]; !ok {
			days = append(days, day)
		}
		buckets[day] = append(buckets[day], item)
	}

	result := make([]entity.DailyNewsGroups, 0, len(days))
	for _, day := range days {
		result = append(result, entity.DailyNewsGroups{Date: day, Groups: Group(buckets[day])})
	}
	return result
}

// DayOf formats t as a YYYY-MM-DD day in loc.
func DayOf(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(dayLayout)
}
