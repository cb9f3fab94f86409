package service

import (
	"io"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/muchfin/financial-report-extractor/dto"
	"github.com/muchfin/financial-report-extractor/utils"
)

// ReportService runs uploaded report documents through text extraction and
// assembles the combined financial profile.
type ReportService struct {
	pdfProcessor PDFProcessor
	exporter     *ExportService
	logger       zerolog.Logger
}

func NewReportService(pdfProcessor PDFProcessor, exporter *ExportService, logger zerolog.Logger) *ReportService {
	return &ReportService{
		pdfProcessor: pdfProcessor,
		exporter:     exporter,
		logger:       logger,
	}
}

// BuildProfile assembles one document's profile from its raw text. Savings
// is derived only when income and expense were both recovered; a profile
// with only one of the two keeps savings at zero rather than reporting a
// misleading figure.
func BuildProfile(text string) *dto.FinancialProfile {
	profile := utils.ExtractFields(text)
	profile.Transactions = utils.ExtractTransactions(text)

	if profile.Income > 0 && profile.Expense > 0 {
		profile.Savings = profile.Income - profile.Expense
	}
	return profile
}

// CombineProfiles merges per-document profiles, in document order, into one.
// Monthly flow figures (income, expense, savings) are averaged; credit score
// and each asset balance take the maximum across documents; transactions are
// concatenated without deduplication. Returns nil for empty input.
func CombineProfiles(profiles []*dto.FinancialProfile) *dto.FinancialProfile {
	if len(profiles) == 0 {
		return nil
	}

	combined := dto.NewFinancialProfile()

	for _, p := range profiles {
		combined.Income += p.Income
		combined.Expense += p.Expense
		combined.Savings += p.Savings

		if p.CreditScore > combined.CreditScore {
			combined.CreditScore = p.CreditScore
		}
		combined.Assets.Checking = max(combined.Assets.Checking, p.Assets.Checking)
		combined.Assets.Savings = max(combined.Assets.Savings, p.Assets.Savings)
		combined.Assets.Investment = max(combined.Assets.Investment, p.Assets.Investment)
		combined.Assets.Pension = max(combined.Assets.Pension, p.Assets.Pension)
		combined.Assets.ISA = max(combined.Assets.ISA, p.Assets.ISA)
		combined.Assets.Government = max(combined.Assets.Government, p.Assets.Government)

		combined.Transactions = append(combined.Transactions, p.Transactions...)
	}

	n := float64(len(profiles))
	combined.Income /= n
	combined.Expense /= n
	combined.Savings /= n

	return combined
}

// AnalyzeDocuments reads every uploaded file once, extracts a per-document
// profile from each readable one and combines them. Unreadable documents are
// skipped and reported back; only the case where no document produced text
// at all is an error.
func (s *ReportService) AnalyzeDocuments(req *dto.AnalyzeRequest) (*dto.AnalyzeResponse, error) {
	profiles, skipped, _ := s.extractProfiles(req.Files)
	if len(profiles) == 0 {
		return nil, dto.ErrNoUsableText
	}

	return &dto.AnalyzeResponse{
		Profile:       CombineProfiles(profiles),
		DocumentCount: len(profiles),
		SkippedFiles:  skipped,
		ProcessedAt:   time.Now().Format(time.RFC3339),
	}, nil
}

// ExportDocuments behaves like AnalyzeDocuments but additionally writes a
// JSON export file per readable document plus one for the combined profile.
func (s *ReportService) ExportDocuments(req *dto.AnalyzeRequest) (*dto.ExportResponse, error) {
	profiles, _, names := s.extractProfiles(req.Files)
	if len(profiles) == 0 {
		return nil, dto.ErrNoUsableText
	}

	var jsonFiles []string
	for i, p := range profiles {
		path, err := s.exporter.SaveFile(p, names[i])
		if err != nil {
			s.logger.Warn().Err(err).Str("file", names[i]).Msg("failed to write export file")
			continue
		}
		jsonFiles = append(jsonFiles, path)
	}

	combined := CombineProfiles(profiles)
	if path, err := s.exporter.SaveFile(combined, "combined_financial_data"); err != nil {
		s.logger.Warn().Err(err).Msg("failed to write combined export file")
	} else {
		jsonFiles = append(jsonFiles, path)
	}

	return &dto.ExportResponse{
		Profile:     combined,
		JSONFiles:   jsonFiles,
		ProcessedAt: time.Now().Format(time.RFC3339),
	}, nil
}

// extractProfiles processes files strictly one at a time: one read attempt
// per document, unreadable documents contribute nothing.
func (s *ReportService) extractProfiles(files []*multipart.FileHeader) (profiles []*dto.FinancialProfile, skipped, names []string) {
	log := s.logger.With().Str("run_id", uuid.NewString()).Logger()

	for _, fileHeader := range files {
		data, err := readUpload(fileHeader)
		if err != nil {
			log.Warn().Err(err).Str("file", fileHeader.Filename).Msg("failed to read upload")
			skipped = append(skipped, fileHeader.Filename)
			continue
		}

		text, err := s.pdfProcessor.ExtractText(data)
		if err != nil {
			log.Warn().Err(err).Str("file", fileHeader.Filename).Msg("document contributed no text")
			skipped = append(skipped, fileHeader.Filename)
			continue
		}

		profile := BuildProfile(text)
		log.Info().
			Str("file", fileHeader.Filename).
			Int("transactions", len(profile.Transactions)).
			Msg("document extracted")

		profiles = append(profiles, profile)
		names = append(names, fileHeader.Filename)
	}
	return profiles, skipped, names
}

func readUpload(fileHeader *multipart.FileHeader) ([]byte, error) {
	f, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
