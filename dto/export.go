package dto

// Export format version. Field names and nesting below are a compatibility
// surface consumed by the dashboard and plan generators.
const ExportVersion = "1.0"

// ExportMetadata describes when and from what a profile export was generated.
type ExportMetadata struct {
	GeneratedAt string `json:"generated_at"` // ISO-8601
	SourceFile  string `json:"source_file"`
	Version     string `json:"version"`
}

// ExportDocument is the canonical interchange representation of a profile.
type ExportDocument struct {
	Metadata      ExportMetadata   `json:"metadata"`
	FinancialData FinancialProfile `json:"financial_data"`
}
