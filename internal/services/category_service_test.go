package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"giftmuse/internal/models/catalog_models"
	"giftmuse/internal/repositories"
	"giftmuse/pkg/utils"
)

func newCategoryService(t *testing.T) CategoryServiceInterface {
	t.Helper()
	repo, err := repositories.NewGiftRepository()
	require.NoError(t, err)
	return NewCategoryService(repo)
}

func TestGetAllCategories(t *testing.T) {
	svc := newCategoryService(t)

	all := svc.GetAllCategories()
	require.Len(t, all, 8)

	slugs := make([]string, 0, len(all))
	for _, c := range all {
		slugs = append(slugs, c.Slug)
	}
	assert.Equal(t, []string{
		"under-25", "for-him", "for-her", "experiences",
		"romantic", "practical", "luxury", "fun-playful",
	}, slugs)
}

func TestGetCategoryBySlug(t *testing.T) {
	svc := newCategoryService(t)

	category, err := svc.GetCategoryBySlug("experiences")
	require.NoError(t, err)
	assert.Equal(t, "Experiences", category.Name)

	_, err = svc.GetCategoryBySlug("nope")
	assert.ErrorIs(t, err, utils.ErrCategoryNotFound)
}

func TestGetCategoryGifts(t *testing.T) {
	svc := newCategoryService(t)

	t.Run("every category has at least one gift", func(t *testing.T) {
		for _, category := range svc.GetAllCategories() {
			gifts, err := svc.GetCategoryGifts(category.Slug)
			require.NoError(t, err)
			assert.NotEmpty(t, gifts, "category %s is empty", category.Slug)
		}
	})

	t.Run("luxury only holds top-tier prices", func(t *testing.T) {
		gifts, err := svc.GetCategoryGifts("luxury")
		require.NoError(t, err)
		for _, gift := range gifts {
			assert.Equal(t, catalog_models.PriceOver100, gift.PriceRange)
		}
	})

	t.Run("unknown slug", func(t *testing.T) {
		_, err := svc.GetCategoryGifts("missing")
		assert.ErrorIs(t, err, utils.ErrCategoryNotFound)
	})
}
