package dto

import "presscraft/internal/entity"

// TimelineResponse is a day-bucketed, near-duplicate grouped news timeline.
type TimelineResponse struct {
	Query      string                   `json:"query"`
	Sort       string                   `json:"sort"`
	TotalItems int                      `json:"totalItems"`
	Days       []entity.DailyNewsGroups `json:"days"`
}
