package entity

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// EventStatus is the distribution state of a calendar event.
type EventStatus string

const (
	EventStatusScheduled EventStatus = "scheduled"
	EventStatusDraft     EventStatus = "draft"
	EventStatusPublished EventStatus = "published"
)

// PREvent is one entry on the PR calendar.
type PREvent struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	Title           string         `gorm:"not null" json:"title"`
	Date            time.Time      `gorm:"type:date;not null" json:"date"`
	Status          EventStatus    `gorm:"not null;default:scheduled" json:"status"`
	Type            string         `json:"type"`
	Content         string         `json:"content"`
	ArticleCount    int            `gorm:"not null;default:0" json:"articleCount"`
	PerformanceFile datatypes.JSON `json:"performanceFile,omitempty" swaggertype:"object"`
	Keywords        pq.StringArray `gorm:"type:text[]" json:"keywords" swaggertype:"array,string"`
	CreatedAt       time.Time      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime" json:"updatedAt"`
}

// TableName specifies the table name for the PREvent model.
func (PREvent) TableName() string {
	return "pr_events"
}
