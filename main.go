package main

import (
	"context"
	"log"
	"time"

	"watermetal/adapters/excel"
	"watermetal/adapters/llm"
	"watermetal/ai"
	"watermetal/app"
	"watermetal/internal"
	"watermetal/internal/config"
	"watermetal/internal/session"
	"watermetal/ports"
	"watermetal/ui"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	// Load application configuration
	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := internal.NewDefaultLogger()

	// Uploaded datasets live in memory only; the sweeper reclaims sessions
	// that outlive their TTL.
	store := session.NewStore(appConfig.Server.SessionTTL)
	store.StartSweeper(context.Background(), 10*time.Minute)

	// Without an API key the assistant degrades: uploads, analysis and
	// reports still work, only /ask answers with a warning.
	var llmClient ports.LLMClient
	if appConfig.AI.OpenAIKey != "" {
		llmClient = llm.NewOpenAIClient(appConfig.AI.OpenAIKey, appConfig.AI.SystemContext, appConfig.AI.Temperature)
	} else {
		log.Println("OPENAI_API_KEY not set, AI assistant disabled")
	}
	assistant := ai.NewAssistant(llmClient, appConfig.AI.Model, appConfig.AI.MaxTokens, logger)

	webApp, err := ui.NewApp(ui.Config{
		Port:        appConfig.Server.Port,
		MaxUploadMB: appConfig.Data.MaxUploadMB,
		Store:       store,
		Pipeline:    app.NewPipeline(logger),
		Reader:      excel.Reader{},
		Assistant:   assistant,
		Logger:      logger,
	})
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}

	log.Fatal(webApp.Start())
}
