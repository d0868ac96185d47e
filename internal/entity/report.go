package entity

// ReportFileMetadata is derived from one uploaded performance report.
type ReportFileMetadata struct {
	ExtractedDate  string `json:"extractedDate"`
	ExtractedTitle string `json:"extractedTitle"`
	ArticleCount   int    `json:"articleCount"`
}

// PerformanceFile is what an event keeps about its attached report.
type PerformanceFile struct {
	FileName string             `json:"fileName"`
	Metadata ReportFileMetadata `json:"metadata"`
}
