package suggest_fx

import (
	"context"
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"giftmuse/internal/api/controllers"
	"giftmuse/internal/config"
	"giftmuse/internal/services"
	"giftmuse/pkg/analytics"
	"giftmuse/pkg/llm"
)

var Module = fx.Provide(
	ProvideLLMClient,
	ProvideSuggestionService,
	ProvideSearchController,
)

// ProvideLLMClient builds the configured provider's client. A missing API
// key is not fatal: the suggestion service degrades to empty results and the
// catalog keeps working, so it only warns.
func ProvideLLMClient(cfg *config.Config, logger *zap.Logger) (llm.Client, error) {
	switch cfg.Suggest.Provider {
	case "gemini":
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			logger.Warn("GEMINI_API_KEY not set, AI suggestions disabled")
			return nil, nil
		}
		return llm.NewGeminiClient(context.Background(), apiKey, cfg.Suggest.Model)
	default:
		apiKey := os.Getenv("PERPLEXITY_API_KEY")
		if apiKey == "" {
			logger.Warn("PERPLEXITY_API_KEY not set, AI suggestions disabled")
			return nil, nil
		}
		return llm.NewPerplexityClient(apiKey, cfg.Suggest.Model), nil
	}
}

func ProvideSuggestionService(client llm.Client, metrics *analytics.Recorder, logger *zap.Logger) services.SuggestionServiceInterface {
	return services.NewSuggestionService(client, metrics, logger)
}

func ProvideSearchController(suggestionService services.SuggestionServiceInterface) *controllers.SearchController {
	return controllers.NewSearchController(suggestionService)
}
