package service

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/muchfin/financial-report-extractor/dto"
)

func sampleProfile() *dto.FinancialProfile {
	p := dto.NewFinancialProfile()
	p.Income = 3500000
	p.Expense = 2800000
	p.Savings = 700000
	p.CreditScore = 720
	p.Assets.Checking = 5000000
	p.Assets.ISA = 2000000
	p.Transactions = []dto.Transaction{
		{
			Date:        "2024-01-20",
			Category:    "식비",
			Amount:      500000,
			Type:        dto.TransactionExpense,
			Description: "2024-01-20 식비 -500,000원",
		},
	}
	return p
}

func TestExportRoundTrip(t *testing.T) {
	svc := NewExportService(t.TempDir())

	doc := svc.BuildDocument(sampleProfile(), "january.pdf")
	data, err := svc.Marshal(doc)
	require.NoError(t, err)

	parsed, err := svc.Parse(data)
	require.NoError(t, err)

	assert.Equal(t, doc, *parsed)
	assert.Equal(t, *sampleProfile(), parsed.FinancialData)
}

func TestBuildDocumentMetadata(t *testing.T) {
	svc := NewExportService(t.TempDir())
	svc.now = func() time.Time {
		return time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	}

	doc := svc.BuildDocument(sampleProfile(), "january.pdf")

	assert.Equal(t, "2024-03-01T09:30:00Z", doc.Metadata.GeneratedAt)
	assert.Equal(t, "january.pdf", doc.Metadata.SourceFile)
	assert.Equal(t, "1.0", doc.Metadata.Version)
}

func TestBuildDocumentUnknownSource(t *testing.T) {
	svc := NewExportService(t.TempDir())

	doc := svc.BuildDocument(sampleProfile(), "")

	assert.Equal(t, "unknown", doc.Metadata.SourceFile)
}

func TestMarshalKeepsKoreanReadable(t *testing.T) {
	svc := NewExportService(t.TempDir())

	data, err := svc.Marshal(svc.BuildDocument(sampleProfile(), "january.pdf"))
	require.NoError(t, err)

	assert.Contains(t, string(data), "식비")
	assert.NotContains(t, string(data), `\u`)
	assert.Contains(t, string(data), `"financial_data"`)
	assert.Contains(t, string(data), `"credit_score": 720`)
}

func TestPreview(t *testing.T) {
	svc := NewExportService(t.TempDir())

	preview := svc.Preview(sampleProfile())
	assert.Contains(t, preview, `"income"`)
	assert.Contains(t, preview, "식비")
}

func TestPreviewNoData(t *testing.T) {
	svc := NewExportService(t.TempDir())

	assert.Equal(t, "데이터가 없습니다.", svc.Preview(nil))

	var absent *dto.FinancialProfile
	assert.Equal(t, "데이터가 없습니다.", svc.Preview(absent))
}

func TestSaveFile(t *testing.T) {
	dir := t.TempDir()
	svc := NewExportService(filepath.Join(dir, "output"))

	path, err := svc.SaveFile(sampleProfile(), "january.pdf")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "output", "january_financial_data.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	parsed, err := svc.Parse(data)
	require.NoError(t, err)
	assert.Equal(t, *sampleProfile(), parsed.FinancialData)
}
