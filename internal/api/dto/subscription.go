package dto

import (
	"database/sql"
	"encoding/json"
	"time"

	"presscraft/internal/entity"
)

// SubscriptionRequest is the DTO for creating or updating a clipping subscription.
type SubscriptionRequest struct {
	Name           string          `json:"name"`
	Type           entity.TaskType `json:"type"`
	Query          string          `json:"query"`
	Sort           string          `json:"sort"`
	MaxPages       int             `json:"maxPages"`
	LookbackDays   int             `json:"lookbackDays"`
	CronExpression string          `json:"cronExpression"`
	IsActive       *bool           `json:"isActive,omitempty"`
}

// SubscriptionResponse is the DTO for API responses containing a subscription.
type SubscriptionResponse struct {
	ID             uint            `json:"id"`
	Name           string          `json:"name"`
	Type           entity.TaskType `json:"type"`
	Query          string          `json:"query"`
	Sort           string          `json:"sort"`
	MaxPages       int             `json:"maxPages"`
	LookbackDays   int             `json:"lookbackDays"`
	CronExpression string          `json:"cronExpression"`
	IsActive       bool            `json:"isActive"`
	NextExecution  *time.Time      `json:"nextExecution,omitempty"`
	LastExecution  *time.Time      `json:"lastExecution,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

// RunResponse is the DTO for one entry of a subscription's run history.
type RunResponse struct {
	ID             uint             `json:"id"`
	SubscriptionID uint             `json:"subscriptionId"`
	Status         entity.RunStatus `json:"status"`
	StartedAt      time.Time        `json:"startedAt"`
	CompletedAt    *time.Time       `json:"completedAt,omitempty"`
	Result         json.RawMessage  `json:"result,omitempty" swaggertype:"object"`
	ErrorMessage   string           `json:"errorMessage,omitempty"`
}

// NullTimePtr converts a nullable column into an optional JSON timestamp.
func NullTimePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
