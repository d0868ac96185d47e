package coverage

import (
	"fmt"
	"sort"
	"time"

	"presscraft/internal/entity"
)

const (
	dayLayout   = "2006-01-02"
	monthLayout = "2006-01"

	untypedKey = "untyped"
)

// Bucket aggregates the events that share one key.
type Bucket struct {
	Key      string `json:"key"`
	Events   int    `json:"events"`
	Articles int    `json:"articles"`
}

// Rollup is the coverage summary of the events dated inside [From, To].
type Rollup struct {
	From          string   `json:"from"`
	To            string   `json:"to"`
	TotalEvents   int      `json:"totalEvents"`
	TotalArticles int      `json:"totalArticles"`
	ByMonth       []Bucket `json:"byMonth"`
	ByWeek        []Bucket `json:"byWeek"`
	ByType        []Bucket `json:"byType"`
}

// Window returns the day range covering the last lookbackDays days up to now.
func Window(now time.Time, lookbackDays int, loc *time.Location) (time.Time, time.Time) {
	if lookbackDays < 1 {
		lookbackDays = 1
	}
	now = now.In(loc)
	to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	return to.AddDate(0, 0, -(lookbackDays - 1)), to
}

// BuildRollup counts events and article totals per month, ISO week and
// event type. Both bounds are inclusive days; events outside are ignored.
// Month and week buckets are sorted by key, types by article count.
func BuildRollup(events []entity.PREvent, from, to time.Time) Rollup {
	fromDay, toDay := from.Format(dayLayout), to.Format(dayLayout)
	r := Rollup{
		From:    fromDay,
		To:      toDay,
		ByMonth: []Bucket{},
		ByWeek:  []Bucket{},
		ByType:  []Bucket{},
	}

	months := make(map[string]*Bucket)
	weeks := make(map[string]*Bucket)
	types := make(map[string]*Bucket)

	for _, ev := range events {
		day := ev.Date.Format(dayLayout)
		if day < fromDay || day > toDay {
			continue
		}

		r.TotalEvents++
		r.TotalArticles += ev.ArticleCount

		year, week := ev.Date.ISOWeek()
		add(months, ev.Date.Format(monthLayout), ev.ArticleCount)
		add(weeks, fmt.Sprintf("%d-W%02d", year, week), ev.ArticleCount)

		eventType := ev.Type
		if eventType == "" {
			eventType = untypedKey
		}
		add(types, eventType, ev.ArticleCount)
	}

	r.ByMonth = sortedByKey(months)
	r.ByWeek = sortedByKey(weeks)
	r.ByType = sortedByArticles(types)
	return r
}

func add(buckets map[string]*Bucket, key string, articles int) {
	b, ok := buckets[key]
	if !ok {
		b = &Bucket{Key: key}
		buckets[key] = b
	}
	b.Events++
	b.Articles += articles
}

func flatten(buckets map[string]*Bucket) []Bucket {
	out := make([]Bucket, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, *b)
	}
	return out
}

func sortedByKey(buckets map[string]*Bucket) []Bucket {
	out := flatten(buckets)
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}

func sortedByArticles(buckets map[string]*Bucket) []Bucket {
	out := flatten(buckets)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Articles != out[j].Articles {
			return out[i].Articles > out[j].Articles
		}
		return out[i].Key < out[j].Key
	})
	return out
}
