package retailer_fx

import (
	"go.uber.org/fx"

	"giftmuse/internal/api/controllers"
	"giftmuse/internal/config"
	"giftmuse/internal/services"
	"giftmuse/pkg/analytics"
	"giftmuse/pkg/retailer"
)

var Module = fx.Provide(
	provideRetailerConfig,
	provideRetailerController,
)

func provideRetailerConfig(cfg *config.Config) retailer.Config {
	return retailer.DefaultConfig(cfg.Retail.AmazonTag)
}

func provideRetailerController(rc retailer.Config, giftService services.GiftServiceInterface, metrics *analytics.Recorder) *controllers.RetailerController {
	return controllers.NewRetailerController(rc, giftService, metrics)
}
