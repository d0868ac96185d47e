package dto

import "presscraft/internal/coverage"

// ClippingResult is the run result of a news clipping subscription. It is
// stored on the run and published as the clipping.completed payload.
type ClippingResult struct {
	SubscriptionID uint   `json:"subscriptionId"`
	RunID          uint   `json:"runId,omitempty"`
	Query          string `json:"query"`
	Fetched        int    `json:"fetched"`
	NewItems       int    `json:"newItems"`
	Inserted       int64  `json:"inserted"`
	Groups         int    `json:"groups"`
	Days           int    `json:"days"`
	NotifyError    string `json:"notifyError,omitempty"`
}

// CoverageResult is the run result of a coverage report subscription.
type CoverageResult struct {
	SubscriptionID uint            `json:"subscriptionId"`
	RunID          uint            `json:"runId,omitempty"`
	Name           string          `json:"name"`
	Rollup         coverage.Rollup `json:"rollup"`
	NotifyError    string          `json:"notifyError,omitempty"`
}
