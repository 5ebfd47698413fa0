package main

import (
	"log"
	"log/slog"
	"os"

	"github.com/pghetiya-a11y/NewsSummarizer-Insc-435/internal/handler"
	"github.com/pghetiya-a11y/NewsSummarizer-Insc-435/internal/service"
	"github.com/pghetiya-a11y/NewsSummarizer-Insc-435/internal/store"
	"github.com/pghetiya-a11y/NewsSummarizer-Insc-435/pkg/llm"
	"github.com/pghetiya-a11y/NewsSummarizer-Insc-435/pkg/news"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	newsAPIKey := os.Getenv("NEWS_API_KEY")
	if newsAPIKey == "" {
		log.Fatal("NEWS_API_KEY environment variable is not set")
	}

	llmProvider := os.Getenv("LLM_PROVIDER")
	if llmProvider == "" {
		llmProvider = "openai"
	}

	llmKey := os.Getenv("OPENAI_API_KEY")
	if llmProvider == "anthropic" {
		llmKey = os.Getenv("ANTHROPIC_API_KEY")
	}

	engine, err := llm.New(llmProvider, llmKey)
	if err != nil {
		// The engine is best-effort: without it every summary degrades to
		// the fallback text, but article retrieval still works.
		slog.Warn("summarization engine not configured", "error", err)
	}

	articleStore := store.NewArticleStore()
	provider := news.NewNewsAPIClient(newsAPIKey)

	aggregator := service.NewAggregator(provider, articleStore)
	summarizer := service.NewSummarizer(engine, articleStore)

	articleHandler := handler.NewArticleHandler(aggregator)
	summaryHandler := handler.NewSummaryHandler(summarizer, aggregator)
	voiceHandler := handler.NewVoiceHandler()

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/articles", articleHandler.GetArticles)
	r.GET("/articles/search", articleHandler.SearchArticles)
	r.GET("/sources", articleHandler.GetSources)
	r.POST("/summarize", summaryHandler.Summarize)
	r.POST("/summarize-article/:id", summaryHandler.SummarizeArticle)
	r.POST("/topic-summary", summaryHandler.TopicSummary)
	r.POST("/voice-query", voiceHandler.VoiceQuery)
	r.GET("/health", articleHandler.GetHealth)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	err = r.Run(":" + port)
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
