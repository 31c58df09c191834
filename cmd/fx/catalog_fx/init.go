package catalog_fx

import (
	"go.uber.org/fx"

	"giftmuse/internal/api/controllers"
	"giftmuse/internal/repositories"
	"giftmuse/internal/services"
	"giftmuse/pkg/analytics"
)

var Module = fx.Provide(
	provideGiftRepo,
	provideGiftService,
	provideCategoryService,
	provideGiftsController,
	provideCategoriesController,
)

func provideGiftRepo() (repositories.GiftRepository, error) {
	return repositories.NewGiftRepository()
}

func provideGiftService(giftRepo repositories.GiftRepository) services.GiftServiceInterface {
	return services.NewGiftService(giftRepo)
}

func provideCategoryService(giftRepo repositories.GiftRepository) services.CategoryServiceInterface {
	return services.NewCategoryService(giftRepo)
}

func provideGiftsController(giftService services.GiftServiceInterface) *controllers.GiftsController {
	return controllers.NewGiftsController(giftService)
}

func provideCategoriesController(categoryService services.CategoryServiceInterface, metrics *analytics.Recorder) *controllers.CategoriesController {
	return controllers.NewCategoriesController(categoryService, metrics)
}
