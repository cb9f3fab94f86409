package service

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PDFProcessor reads the text content of an uploaded report document.
// A single attempt is made per document; an error means the document
// carries no usable text and the caller should continue without it.
type PDFProcessor interface {
	ExtractText(pdfData []byte) (string, error)
}

type pdfProcessor struct{}

func NewPDFProcessor() PDFProcessor {
	return &pdfProcessor{}
}

// ExtractText returns the concatenation of all page texts in page order.
// pdfcpu preflights the document first, which rejects corrupted and
// encrypted files before the text reader touches them.
func (p *pdfProcessor) ExtractText(pdfData []byte) (text string, err error) {
	conf := model.NewDefaultConfiguration()
	if _, err := api.PageCount(bytes.NewReader(pdfData), conf); err != nil {
		return "", fmt.Errorf("document failed preflight: %w", err)
	}

	// The pdf library panics on some malformed cross-reference tables.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("pdf text extraction crashed: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(pdfData), int64(len(pdfData)))
	if err != nil {
		return "", err
	}

	var textBuilder strings.Builder
	totalPage := r.NumPage()

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		rows, _ := page.GetTextByRow()
		for _, row := range rows {
			for _, word := range row.Content {
				textBuilder.WriteString(word.S)
			}
			textBuilder.WriteString("\n")
		}
	}

	if strings.TrimSpace(textBuilder.String()) == "" {
		return "", fmt.Errorf("document contains no extractable text")
	}
	return textBuilder.String(), nil
}
