package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"insighta/ai"
	"insighta/internal/config"
	"insighta/internal/profile"
	"insighta/internal/session"
	"insighta/ui"
)

func main() {
	// Load environment variables from .env file (optional in production)
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	gin.SetMode(appConfig.Server.GinMode)

	client := ai.NewClient(ai.Config{
		APIKey:    appConfig.AI.AnthropicKey,
		Model:     appConfig.AI.Model,
		MaxTokens: appConfig.AI.MaxTokens,
		TimeoutMS: appConfig.AI.TimeoutMS,
	})
	assistant := ai.NewAssistant(client)
	if assistant.Configured() {
		log.Printf("Chart assistant enabled (model: %s)", appConfig.AI.Model)
	} else {
		log.Printf("ANTHROPIC_API_KEY not set, chart assistant disabled")
	}

	engine := profile.NewEngine()
	dashboard := session.NewDashboard()

	server := ui.NewServer(engine, assistant, dashboard, appConfig.Upload)
	if err := server.Start(":" + appConfig.Server.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
