package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractTextRejectsNonPDF(t *testing.T) {
	processor := NewPDFProcessor()

	text, err := processor.ExtractText([]byte("this is not a pdf document"))

	assert.Error(t, err)
	assert.Empty(t, text)
}

func TestExtractTextRejectsEmptyInput(t *testing.T) {
	processor := NewPDFProcessor()

	_, err := processor.ExtractText(nil)

	assert.Error(t, err)
}
