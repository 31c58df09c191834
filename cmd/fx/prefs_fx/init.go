package prefs_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"giftmuse/internal/api/controllers"
	"giftmuse/internal/config"
	"giftmuse/pkg/prefstore"
)

var Module = fx.Provide(
	providePrefStore,
	providePreferencesController,
)

func providePrefStore(cfg *config.Config, logger *zap.Logger) prefstore.Store {
	if cfg.Prefs.Backend == "redis" {
		logger.Info("using redis preference store", zap.String("addr", cfg.Prefs.RedisAddr))
		return prefstore.NewRedis(cfg.Prefs.RedisAddr)
	}
	return prefstore.NewMemory()
}

func providePreferencesController(store prefstore.Store) *controllers.PreferencesController {
	return controllers.NewPreferencesController(store)
}
