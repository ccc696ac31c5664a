// Package ui exposes the dashboard over HTTP: dataset upload, profile
// retrieval, the chart assistant chat and session reset.
package ui

import (
	"log"

	"github.com/gin-gonic/gin"

	"insighta/ai"
	"insighta/internal/config"
	"insighta/internal/profile"
	"insighta/internal/session"
)

// Server represents the Insighta web server
type Server struct {
	router    *gin.Engine
	engine    *profile.Engine
	assistant *ai.Assistant
	dashboard *session.Dashboard
	upload    config.UploadConfig
}

// NewServer creates a new web server instance
func NewServer(engine *profile.Engine, assistant *ai.Assistant, dashboard *session.Dashboard, upload config.UploadConfig) *Server {
	s := &Server{
		router:    gin.Default(),
		engine:    engine,
		assistant: assistant,
		dashboard: dashboard,
		upload:    upload,
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures the application routes
func (s *Server) setupRoutes() {
	s.router.MaxMultipartMemory = int64(s.upload.MaxSizeMB) << 20

	api := s.router.Group("/api")
	{
		api.POST("/datasets/upload", s.handleUpload)
		api.POST("/datasets/reset", s.handleReset)
		api.GET("/dashboard", s.handleDashboard)
		api.POST("/chat", s.handleChat)
	}
}

// Start starts the web server
func (s *Server) Start(addr string) error {
	log.Printf("Starting Insighta UI on http://%s", addr)
	return s.router.Run(addr)
}
