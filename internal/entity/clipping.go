package entity

import (
	"database/sql"
	"time"

	"gorm.io/datatypes"
)

// TaskType selects the executor strategy for a subscription.
type TaskType string

const (
	TaskTypeNewsClipping   TaskType = "news_clipping"
	TaskTypeCoverageReport TaskType = "coverage_report"
)

// RunStatus is the state of a ClippingRun.
type RunStatus string

const (
	RunStatusRunning RunStatus = "running"
	RunStatusSuccess RunStatus = "success"
	RunStatusFailed  RunStatus = "failed"
)

// ClippingSubscription is a recurring news-clipping or coverage-report task.
type ClippingSubscription struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	Name           string       `gorm:"not null" json:"name"`
	Type           TaskType     `gorm:"not null" json:"type"`
	Query          string       `json:"query"`
	Sort           string       `gorm:"not null;default:date" json:"sort"`
	MaxPages       int          `gorm:"not null;default:1" json:"maxPages"`
	LookbackDays   int          `gorm:"not null;default:7" json:"lookbackDays"`
	CronExpression string       `gorm:"not null" json:"cronExpression"`
	IsActive       bool         `gorm:"not null;default:true" json:"isActive"`
	NextExecution  sql.NullTime `json:"nextExecution"`
	LastExecution  sql.NullTime `json:"lastExecution"`
	CreatedAt      time.Time    `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time    `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (ClippingSubscription) TableName() string {
	return "clipping_subscriptions"
}

// ClippingRun is the execution history of one subscription run.
type ClippingRun struct {
	ID             uint           `gorm:"primaryKey" json:"id"`
	SubscriptionID uint           `gorm:"not null;index" json:"subscriptionId"`
	Status         RunStatus      `gorm:"not null" json:"status"`
	StartedAt      time.Time      `json:"startedAt"`
	CompletedAt    sql.NullTime   `json:"completedAt"`
	Result         datatypes.JSON `json:"result,omitempty"`
	ErrorMessage   sql.NullString `json:"errorMessage"`
}

func (ClippingRun) TableName() string {
	return "clipping_runs"
}

// NewsClipping is one persisted article of a clipping timeline.
type NewsClipping struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	SubscriptionID   uint       `gorm:"index" json:"subscriptionId"`
	Query            string     `gorm:"not null" json:"query"`
	Title            string     `gorm:"not null" json:"title"`
	Link             string     `gorm:"not null" json:"link"`
	Description      string     `json:"description"`
	PublishedAt      *time.Time `json:"publishedAt,omitempty"`
	DayBucket        string     `gorm:"index" json:"dayBucket"`
	GroupKey         string     `gorm:"index" json:"groupKey"`
	IsRepresentative bool       `json:"isRepresentative"`
	HashIdentifier   string     `gorm:"unique;not null" json:"hashIdentifier"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"createdAt"`
}

func (NewsClipping) TableName() string {
	return "news_clippings"
}

// ClippingTask is the stream payload that hands one run to the executor.
type ClippingTask struct {
	RunID          uint      `json:"runId"`
	SubscriptionID uint      `json:"subscriptionId"`
	Type           TaskType  `json:"type"`
	EnqueuedAt     time.Time `json:"enqueuedAt"`
}
