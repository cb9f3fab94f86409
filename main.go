package main

import (
	"github.com/gin-gonic/gin"

	"github.com/muchfin/financial-report-extractor/config"
	"github.com/muchfin/financial-report-extractor/handler"
	"github.com/muchfin/financial-report-extractor/logger"
	"github.com/muchfin/financial-report-extractor/service"
)

func main() {
	log := logger.New()

	// Initialize configuration
	cfg := config.LoadConfig()

	// Initialize PDF processor
	pdfProcessor := service.NewPDFProcessor()

	// Initialize service layer
	exportService := service.NewExportService(cfg.OutputDir)
	reportService := service.NewReportService(pdfProcessor, exportService, log)

	// Initialize handler layer
	reportHandler := handler.NewReportHandler(reportService, log)

	// Setup Gin router
	router := gin.Default()

	// Configure max multipart memory (32 MB)
	router.MaxMultipartMemory = 32 << 20

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "Financial Report Extractor",
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		reports := api.Group("/reports")
		{
			reports.POST("/analyze", reportHandler.AnalyzeReports)
			reports.POST("/export", reportHandler.ExportReports)
		}
	}

	// Start server
	log.Info().Str("port", cfg.ServerPort).Msg("starting financial report extractor")
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
