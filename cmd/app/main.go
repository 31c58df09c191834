package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"giftmuse/cmd/fx/catalog_fx"
	"giftmuse/cmd/fx/prefs_fx"
	"giftmuse/cmd/fx/quiz_fx"
	"giftmuse/cmd/fx/retailer_fx"
	"giftmuse/cmd/fx/subscribe_fx"
	"giftmuse/cmd/fx/suggest_fx"
	"giftmuse/internal/api/controllers"
	"giftmuse/internal/config"
	"giftmuse/pkg/analytics"
	"giftmuse/pkg/logger"
	"giftmuse/pkg/middleware"
)

func main() {
	app := fx.New(
		fx.Provide(config.Load),
		fx.Provide(ProvideLogger),
		fx.Provide(analytics.NewRecorder),

		catalog_fx.Module,
		suggest_fx.Module,
		quiz_fx.Module,
		retailer_fx.Module,
		subscribe_fx.Module,
		prefs_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func ProvideLogger(cfg *config.Config) *zap.Logger {
	return logger.New(cfg.Logging.Level, cfg.Logging.Format)
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				logger.Info("starting HTTP server", zap.String("port", cfg.Server.Port))
				if err := engine.Run(":" + cfg.Server.Port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping HTTP server")
			return logger.Sync()
		},
	})
}

func ProvideRouter(
	giftsController *controllers.GiftsController,
	categoriesController *controllers.CategoriesController,
	quizController *controllers.QuizController,
	searchController *controllers.SearchController,
	subscribeController *controllers.SubscribeController,
	retailerController *controllers.RetailerController,
	preferencesController *controllers.PreferencesController,
	metrics *analytics.Recorder) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r,
		giftsController,
		categoriesController,
		quizController,
		searchController,
		subscribeController,
		retailerController,
		preferencesController,
		metrics)

	return r
}

func RegisterRoutes(r *gin.Engine,
	giftsController *controllers.GiftsController,
	categoriesController *controllers.CategoriesController,
	quizController *controllers.QuizController,
	searchController *controllers.SearchController,
	subscribeController *controllers.SubscribeController,
	retailerController *controllers.RetailerController,
	preferencesController *controllers.PreferencesController,
	metrics *analytics.Recorder) {

	giftsGroup := r.Group("/gifts")
	giftsGroup.GET("", giftsController.ListAllGiftsHandler)
	giftsGroup.GET("/random", giftsController.GetRandomGiftsHandler)
	giftsGroup.GET("/search", giftsController.SearchGiftsHandler)
	giftsGroup.GET("/:id", giftsController.GetGiftByIDHandler)

	categoriesGroup := r.Group("/categories")
	categoriesGroup.GET("", categoriesController.ListAllCategoriesHandler)
	categoriesGroup.GET("/:slug/gifts", categoriesController.GetCategoryGiftsHandler)

	quizGroup := r.Group("/quiz")
	quizGroup.POST("/start", quizController.StartQuizHandler)
	quizGroup.GET("/:session", quizController.GetQuizHandler)
	quizGroup.POST("/:session/select", quizController.SelectOptionHandler)
	quizGroup.POST("/:session/continue", quizController.ContinueQuizHandler)
	quizGroup.POST("/:session/restart", quizController.RestartQuizHandler)

	apiGroup := r.Group("/api")
	apiGroup.POST("/search", searchController.SearchHandler)
	apiGroup.POST("/subscribe", subscribeController.SubscribeHandler)
	apiGroup.POST("/retailer-link", retailerController.ResolveLinkHandler)
	apiGroup.GET("/preferences/:key", preferencesController.GetPreferenceHandler)
	apiGroup.PUT("/preferences/:key", preferencesController.SetPreferenceHandler)

	r.GET("/go/:retailer", retailerController.RedirectHandler)

	r.GET("/metrics", gin.WrapH(metrics.Handler()))
}
