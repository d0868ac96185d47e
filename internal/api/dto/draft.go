package dto

import "presscraft/internal/entity"

// GenerateDraftRequest is the DTO for generating a press release draft.
// When EventID is set the draft is also stored as that event's content.
type GenerateDraftRequest struct {
	FactSheet entity.FactSheet  `json:"factSheet"`
	Specs     []entity.SpecItem `json:"specs"`
	EventID   *uint             `json:"eventId,omitempty"`
}

// GenerateDraftResponse carries the rendered draft and the benefit sentences used for it.
type GenerateDraftResponse struct {
	PrType  entity.PrType `json:"prType"`
	Draft   string        `json:"draft"`
	Stories []string      `json:"stories"`
	EventID *uint         `json:"eventId,omitempty"`
}

// MapStoriesRequest is the DTO for converting specifications into benefit sentences.
type MapStoriesRequest struct {
	Specs []entity.SpecItem `json:"specs"`
}

// MapStoriesResponse holds one sentence per input specification, in input order.
type MapStoriesResponse struct {
	Stories []string `json:"stories"`
}
