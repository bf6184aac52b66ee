package app

import (
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/openai/openai-go/v3"

	"github.com/direeo/llm-qa/internal/config"
	"github.com/direeo/llm-qa/internal/llm"
	"github.com/direeo/llm-qa/internal/logger"
	"github.com/direeo/llm-qa/internal/qa"
)

// Deps bundles common runtime dependencies for services.
type Deps struct {
	Config config.Config
	Log    *slog.Logger
	QA     *qa.Requester

	// LLMErr records why the LLM client could not be built. The web
	// front end keeps serving with a fixed unavailable message; the
	// CLI treats it as fatal.
	LLMErr error
}

// Build loads env, config, and shared components.
func Build() Deps {
	// Missing .env is fine; variables may come from the environment.
	_ = godotenv.Load()
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	client, err := buildLLM(cfg, log)
	if err != nil {
		log.Warn("LLM client unavailable", "err", err)
	}
	return Deps{
		Config: cfg,
		Log:    log,
		QA:     qa.New(client),
		LLMErr: err,
	}
}

func buildLLM(cfg config.Config, log *slog.Logger) (llm.Client, error) {
	switch cfg.LLMProvider {
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is required when LLM_PROVIDER=gemini")
		}
		client, err := llm.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
		}
		log.Info("using Gemini LLM client", "model", cfg.GeminiModel)
		return client, nil
	case "openai":
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required when LLM_PROVIDER=openai")
		}
		client, err := llm.NewOpenAIClient(cfg.OpenAIKey, openai.ChatModel(cfg.OpenAIModel))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize OpenAI client: %w", err)
		}
		log.Info("using OpenAI LLM client", "model", cfg.OpenAIModel)
		return client, nil
	default:
		return nil, fmt.Errorf("invalid LLM_PROVIDER: %s (valid options: gemini, openai)", cfg.LLMProvider)
	}
}
