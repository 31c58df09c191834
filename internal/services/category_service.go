package services

import (
	"giftmuse/internal/models/catalog_models"
	"giftmuse/internal/repositories"
	"giftmuse/pkg/utils"
)

// categories is the fixed storefront browse structure. Slugs are part of the
// public URL scheme, so changing one breaks inbound links.
var categories = []catalog_models.Category{
	{
		Slug:        "under-25",
		Name:        "Under £25",
		Description: "Thoughtful gifts that won't break the bank",
		Filter: catalog_models.CategoryFilter{
			PriceRange: []catalog_models.PriceRange{catalog_models.PriceUnder25},
		},
	},
	{
		Slug:        "for-him",
		Name:        "For Him",
		Description: "Gifts perfect for boyfriends and husbands",
		Filter: catalog_models.CategoryFilter{
			RecipientType: []catalog_models.RecipientType{catalog_models.RecipientBoyfriend, catalog_models.RecipientHusband},
		},
	},
	{
		Slug:        "for-her",
		Name:        "For Her",
		Description: "Gifts perfect for girlfriends and wives",
		Filter: catalog_models.CategoryFilter{
			RecipientType: []catalog_models.RecipientType{catalog_models.RecipientGirlfriend, catalog_models.RecipientWife},
		},
	},
	{
		Slug:        "experiences",
		Name:        "Experiences",
		Description: "Create memories together with experiential gifts",
		Filter: catalog_models.CategoryFilter{
			Vibe: []catalog_models.Vibe{catalog_models.VibeExperiential},
		},
	},
	{
		Slug:        "romantic",
		Name:        "Romantic",
		Description: "Classic romantic gifts to sweep them off their feet",
		Filter: catalog_models.CategoryFilter{
			Vibe: []catalog_models.Vibe{catalog_models.VibeRomantic},
		},
	},
	{
		Slug:        "practical",
		Name:        "Practical",
		Description: "Useful gifts they'll actually use every day",
		Filter: catalog_models.CategoryFilter{
			Vibe: []catalog_models.Vibe{catalog_models.VibePractical},
		},
	},
	{
		Slug:        "luxury",
		Name:        "Luxury",
		Description: "Special occasion splurges for someone special",
		Filter: catalog_models.CategoryFilter{
			PriceRange: []catalog_models.PriceRange{catalog_models.PriceOver100},
		},
	},
	{
		Slug:        "fun-playful",
		Name:        "Fun & Playful",
		Description: "Lighthearted gifts that bring joy and laughter",
		Filter: catalog_models.CategoryFilter{
			Vibe: []catalog_models.Vibe{catalog_models.VibeFunny},
		},
	},
}

type CategoryServiceInterface interface {
	GetAllCategories() []catalog_models.Category
	GetCategoryBySlug(slug string) (*catalog_models.Category, error)
	GetCategoryGifts(slug string) ([]catalog_models.Gift, error)
}

type CategoryService struct {
	giftRepo repositories.GiftRepository
}

func NewCategoryService(giftRepo repositories.GiftRepository) CategoryServiceInterface {
	return &CategoryService{
		giftRepo: giftRepo,
	}
}

func (c *CategoryService) GetAllCategories() []catalog_models.Category {
	return categories
}

func (c *CategoryService) GetCategoryBySlug(slug string) (*catalog_models.Category, error) {
	for i := range categories {
		if categories[i].Slug == slug {
			return &categories[i], nil
		}
	}
	return nil, utils.ErrCategoryNotFound
}

func (c *CategoryService) GetCategoryGifts(slug string) ([]catalog_models.Gift, error) {
	category, err := c.GetCategoryBySlug(slug)
	if err != nil {
		return nil, err
	}
	return c.giftRepo.Filter(category.Filter), nil
}
