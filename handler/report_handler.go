package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/muchfin/financial-report-extractor/dto"
	"github.com/muchfin/financial-report-extractor/service"
)

type ReportHandler struct {
	reportService *service.ReportService
	logger        zerolog.Logger
}

func NewReportHandler(reportService *service.ReportService, logger zerolog.Logger) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		logger:        logger,
	}
}

// AnalyzeReports handles the POST /reports/analyze endpoint
func (h *ReportHandler) AnalyzeReports(c *gin.Context) {
	request, ok := h.bindRequest(c)
	if !ok {
		return
	}

	response, err := h.reportService.AnalyzeDocuments(request)
	if err != nil {
		h.sendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ExportReports handles the POST /reports/export endpoint
func (h *ReportHandler) ExportReports(c *gin.Context) {
	request, ok := h.bindRequest(c)
	if !ok {
		return
	}

	response, err := h.reportService.ExportDocuments(request)
	if err != nil {
		h.sendServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ReportHandler) bindRequest(c *gin.Context) (*dto.AnalyzeRequest, bool) {
	form, err := c.MultipartForm()
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Failed to parse multipart form", err)
		return nil, false
	}

	request := &dto.AnalyzeRequest{Files: form.File["files[]"]}
	if err := request.Validate(); err != nil {
		h.sendError(c, http.StatusBadRequest, err.Error(), err)
		return nil, false
	}

	h.logger.Info().Int("files", len(request.Files)).Msg("received report analysis request")
	return request, true
}

// sendServiceError maps the nothing-to-analyze case to 422 so the dashboard
// can render its empty state instead of an error page.
func (h *ReportHandler) sendServiceError(c *gin.Context, err error) {
	if errors.Is(err, dto.ErrNoUsableText) {
		h.sendError(c, http.StatusUnprocessableEntity, "No readable documents to analyze", err)
		return
	}
	h.sendError(c, http.StatusInternalServerError, "Failed to analyze reports", err)
}

// sendError sends a structured error response
func (h *ReportHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		h.logger.Error().Err(err).Msg(message)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "ANALYSIS_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
