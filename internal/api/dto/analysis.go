package dto

import "presscraft/internal/entity"

// AnalyzeLinkRequest is the DTO for extracting a fact sheet from a product page.
type AnalyzeLinkRequest struct {
	URL string `json:"url"`
}

// AnalysisResponse is returned by both link and file analysis.
// Degraded is true when the heuristic fallback produced the fact sheet.
type AnalysisResponse struct {
	Success  bool             `json:"success"`
	Data     entity.FactSheet `json:"data"`
	Degraded bool             `json:"degraded"`
	Message  string           `json:"message,omitempty"`
	Source   string           `json:"source"`
}
