package subscribe_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"giftmuse/internal/api/controllers"
	"giftmuse/internal/config"
	"giftmuse/internal/services"
	"giftmuse/pkg/analytics"
)

var Module = fx.Provide(
	provideSubscriberService,
	provideSubscribeController,
)

func provideSubscriberService(cfg *config.Config, metrics *analytics.Recorder, logger *zap.Logger) services.SubscriberServiceInterface {
	return services.NewSubscriberService(cfg.Kit.APIKey, cfg.Kit.FormID, cfg.Kit.BaseURL, metrics, logger)
}

func provideSubscribeController(subscriberService services.SubscriberServiceInterface) *controllers.SubscribeController {
	return controllers.NewSubscribeController(subscriberService)
}
