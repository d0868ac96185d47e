package dto

import "presscraft/internal/entity"

// ReportMetadataResult is the outcome for one uploaded report file.
// Exactly one of Metadata and Error is set.
type ReportMetadataResult struct {
	FileName string                     `json:"fileName"`
	Metadata *entity.ReportFileMetadata `json:"metadata,omitempty"`
	Error    string                     `json:"error,omitempty"`
}

// BulkMetadataResponse lists results in upload order.
type BulkMetadataResponse struct {
	Results []ReportMetadataResult `json:"results"`
}
