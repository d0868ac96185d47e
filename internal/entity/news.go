package entity

import "time"

// NewsItem is one article returned by the news search collaborator.
type NewsItem struct {
	Title        string    `json:"title"`
	Link         string    `json:"link"`
	OriginalLink string    `json:"originalLink,omitempty"`
	Description  string    `json:"description"`
	PubDate      time.Time `json:"pubDate"`
}

// NewsGroup is a cluster of items judged to report the same story.
// All holds every member in discovery order, starting with Main.
type NewsGroup struct {
	Main NewsItem   `json:"main"`
	All  []NewsItem `json:"all"`
}

// DailyNewsGroups holds the groups of one calendar day.
type DailyNewsGroups struct {
	Date   string      `json:"date"`
	Groups []NewsGroup `json:"groups"`
}
