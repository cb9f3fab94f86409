package dto

import (
	"mime/multipart"
)

// AnalyzeRequest represents the incoming multi-document analysis request
type AnalyzeRequest struct {
	Files []*multipart.FileHeader `form:"files[]" binding:"required"`
}

// Validate performs basic validation on the request
func (r *AnalyzeRequest) Validate() error {
	if len(r.Files) == 0 {
		return ErrNoFiles
	}
	return nil
}
