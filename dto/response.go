package dto

import "errors"

// Custom errors
var (
	ErrNoFiles      = errors.New("no files provided")
	ErrNoUsableText = errors.New("no readable text in any uploaded document")
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// AnalyzeResponse is the final response structure
type AnalyzeResponse struct {
	Profile       *FinancialProfile `json:"profile"`
	DocumentCount int               `json:"document_count"`
	SkippedFiles  []string          `json:"skipped_files,omitempty"`
	ProcessedAt   string            `json:"processed_at"`
}

// ExportResponse is returned by the export endpoint alongside the profile
type ExportResponse struct {
	Profile     *FinancialProfile `json:"profile"`
	JSONFiles   []string          `json:"json_files"`
	ProcessedAt string            `json:"processed_at"`
}
