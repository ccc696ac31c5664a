package ui

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"insighta/adapters/excel"
	"insighta/ai"
	"insighta/domain/core"
	"insighta/domain/viz"
	"insighta/internal/session"
)

var validExtensions = []string{".csv", ".xlsx", ".xls"}

// handleUpload ingests an uploaded dataset file, profiles it and replaces
// the current session wholesale.
func (s *Server) handleUpload(c *gin.Context) {
	log.Printf("[handleUpload] Starting file upload process")

	file, header, err := c.Request.FormFile("dataset")
	if err != nil {
		log.Printf("[handleUpload] FAILED - No file uploaded: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	defer file.Close()

	maxFileSize := int64(s.upload.MaxSizeMB) << 20
	if header.Size > maxFileSize {
		log.Printf("[handleUpload] FAILED - File too large: %d bytes", header.Size)
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("File size (%.1f MB) exceeds the %dMB limit", float64(header.Size)/(1024*1024), s.upload.MaxSizeMB)})
		return
	}

	filename := header.Filename
	if !hasValidExtension(filename) {
		log.Printf("[handleUpload] FAILED - Invalid file extension: %s", filename)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only Excel (.xlsx, .xls) and CSV (.csv) files are allowed"})
		return
	}

	path, cleanup, err := excel.SpoolUpload(file, filename, s.upload.TempDir)
	if err != nil {
		log.Printf("[handleUpload] FAILED - Could not spool upload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store uploaded file"})
		return
	}
	defer cleanup()

	name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	reader := excel.NewDataReader(path)
	ds, err := reader.Read(name)
	if err != nil {
		log.Printf("[handleUpload] FAILED - Could not read dataset: %v", err)
		status := http.StatusInternalServerError
		if core.IsIngestionError(err) || errors.Is(err, core.ErrUnsupportedFile) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": fmt.Sprintf("Failed to read dataset: %v", err)})
		return
	}

	prof := s.engine.Run(c.Request.Context(), ds)
	s.dashboard.Load(ds, prof)

	c.JSON(http.StatusOK, gin.H{
		"dataset": gin.H{
			"id":       ds.ID.String(),
			"name":     ds.Name,
			"rowCount": ds.Len(),
			"columns":  ds.Columns,
		},
		"profile": prof,
	})
}

// handleDashboard returns the current session state
func (s *Server) handleDashboard(c *gin.Context) {
	if !s.dashboard.Loaded() {
		c.JSON(http.StatusOK, gin.H{"loaded": false})
		return
	}

	ds := s.dashboard.Dataset()
	c.JSON(http.StatusOK, gin.H{
		"loaded": true,
		"dataset": gin.H{
			"id":       ds.ID.String(),
			"name":     ds.Name,
			"rowCount": ds.Len(),
			"columns":  ds.Columns,
		},
		"profile":  s.dashboard.Profile(),
		"charts":   s.dashboard.Charts(),
		"messages": s.dashboard.Messages(),
	})
}

type chatRequest struct {
	Message string `json:"message" binding:"required"`
}

// handleChat runs one assistant turn against the loaded dataset
func (s *Server) handleChat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Message is required"})
		return
	}

	ds := s.dashboard.Dataset()
	if ds == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "No dataset loaded. Upload a dataset first."})
		return
	}

	s.dashboard.AppendMessage(session.ChatMessage{Role: "user", Content: req.Message})

	result, err := s.assistant.Ask(c.Request.Context(), ds, s.dashboard.Charts(), req.Message)
	if err != nil {
		if errors.Is(err, core.ErrAssistantUnavailable) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Chart assistant is not configured"})
			return
		}
		log.Printf("[handleChat] FAILED - Assistant call error: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Chart assistant is temporarily unavailable"})
		return
	}

	if result.Outcome == ai.OutcomeCreated && result.Chart != nil {
		// Unknown types are stored anyway; the renderer treats them as a no-op
		if !viz.CanRender(result.Chart.Type) {
			log.Printf("[handleChat] Chart type %q has no renderer", result.Chart.Type)
		}
		s.dashboard.AppendChart(*result.Chart)
		log.Printf("[handleChat] Added %q chart to dashboard", result.Chart.Title)
	}

	s.dashboard.AppendMessage(session.ChatMessage{Role: "assistant", Content: result.DisplayText})

	resp := gin.H{
		"reply":   result.DisplayText,
		"success": result.Success,
		"outcome": string(result.Outcome),
		"charts":  s.dashboard.Charts(),
	}
	if result.Chart != nil {
		resp["chart"] = result.Chart
	}
	c.JSON(http.StatusOK, resp)
}

// handleReset clears the session: dataset, profile, charts and transcript
func (s *Server) handleReset(c *gin.Context) {
	s.dashboard.Reset()
	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}

func hasValidExtension(filename string) bool {
	lower := strings.ToLower(filename)
	for _, ext := range validExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
