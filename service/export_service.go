package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/muchfin/financial-report-extractor/dto"
)

// noDataMessage is shown when a preview is requested for an absent profile.
const noDataMessage = "데이터가 없습니다."

// ExportService renders profiles to the canonical interchange JSON and back,
// and writes export files under the configured output directory.
type ExportService struct {
	outputDir string
	now       func() time.Time
}

func NewExportService(outputDir string) *ExportService {
	return &ExportService{
		outputDir: outputDir,
		now:       time.Now,
	}
}

// BuildDocument wraps a profile with generation metadata.
func (s *ExportService) BuildDocument(profile *dto.FinancialProfile, sourceFile string) dto.ExportDocument {
	if sourceFile == "" {
		sourceFile = "unknown"
	}
	return dto.ExportDocument{
		Metadata: dto.ExportMetadata{
			GeneratedAt: s.now().Format(time.RFC3339),
			SourceFile:  sourceFile,
			Version:     dto.ExportVersion,
		},
		FinancialData: *profile,
	}
}

// Marshal renders an export document as indented UTF-8 JSON. Korean labels
// are written as-is, not as \u escapes.
func (s *ExportService) Marshal(doc dto.ExportDocument) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to encode export document: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Parse reconstructs an export document from its JSON representation.
func (s *ExportService) Parse(data []byte) (*dto.ExportDocument, error) {
	var doc dto.ExportDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse export document: %w", err)
	}
	return &doc, nil
}

// Preview renders any profile-shaped value as a readable string. Absent data
// yields an explicit message instead of empty output.
func (s *ExportService) Preview(data any) string {
	if data == nil {
		return noDataMessage
	}
	if p, ok := data.(*dto.FinancialProfile); ok && p == nil {
		return noDataMessage
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(data); err != nil {
		return fmt.Sprintf("JSON 변환 오류: %v", err)
	}
	return strings.TrimRight(buf.String(), "\n")
}

// SaveFile writes one profile to <output dir>/<base>_financial_data.json,
// creating the directory on first use, and returns the written path.
func (s *ExportService) SaveFile(profile *dto.FinancialProfile, sourceFile string) (string, error) {
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}

	base := strings.TrimSuffix(filepath.Base(sourceFile), filepath.Ext(sourceFile))
	jsonPath := filepath.Join(s.outputDir, base+"_financial_data.json")

	data, err := s.Marshal(s.BuildDocument(profile, sourceFile))
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(jsonPath, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}
	return jsonPath, nil
}
