package dto

import (
	"time"

	"presscraft/internal/entity"
)

// EventRequest is the DTO for creating or updating a calendar event.
// Date uses the YYYY-MM-DD layout.
type EventRequest struct {
	Title        string             `json:"title"`
	Date         string             `json:"date"`
	Status       entity.EventStatus `json:"status"`
	Type         string             `json:"type"`
	Content      string             `json:"content"`
	ArticleCount *int               `json:"articleCount,omitempty"`
	Keywords     []string           `json:"keywords"`
}

// EventResponse is the DTO for API responses containing a calendar event.
type EventResponse struct {
	ID              uint                    `json:"id"`
	Title           string                  `json:"title"`
	Date            string                  `json:"date"`
	Status          entity.EventStatus      `json:"status"`
	Type            string                  `json:"type"`
	Content         string                  `json:"content"`
	ArticleCount    int                     `json:"articleCount"`
	PerformanceFile *entity.PerformanceFile `json:"performanceFile,omitempty"`
	Keywords        []string                `json:"keywords"`
	CreatedAt       time.Time               `json:"createdAt"`
	UpdatedAt       time.Time               `json:"updatedAt"`
}
