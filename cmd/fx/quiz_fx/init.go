package quiz_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"giftmuse/internal/api/controllers"
	"giftmuse/internal/config"
	"giftmuse/internal/services"
	"giftmuse/pkg/analytics"
)

var Module = fx.Provide(
	provideQuizService,
	provideQuizController,
)

func provideQuizService(cfg *config.Config, suggester services.SuggestionServiceInterface, metrics *analytics.Recorder, logger *zap.Logger) services.QuizServiceInterface {
	return services.NewQuizService(cfg.Quiz.IncludeAgeStep, suggester, metrics, logger)
}

func provideQuizController(quizService services.QuizServiceInterface) *controllers.QuizController {
	return controllers.NewQuizController(quizService)
}
