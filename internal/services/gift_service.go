package services

import (
	"math/rand"
	"strings"

	"giftmuse/internal/models/catalog_models"
	"giftmuse/internal/repositories"
	"giftmuse/pkg/utils"
)

type GiftServiceInterface interface {
	GetAllGifts() []catalog_models.Gift
	GetGiftByID(id string) (*catalog_models.Gift, error)
	FilterByCategory(filter catalog_models.CategoryFilter) []catalog_models.Gift
	GetRandomGifts(count int, filter *catalog_models.CategoryFilter) []catalog_models.Gift
	SearchGifts(query string) []catalog_models.Gift
	PriceLabel(priceRange catalog_models.PriceRange) string
	InterestOptions() []string
}

type GiftService struct {
	giftRepo repositories.GiftRepository
}

func NewGiftService(giftRepo repositories.GiftRepository) GiftServiceInterface {
	return &GiftService{
		giftRepo: giftRepo,
	}
}

func (g *GiftService) GetAllGifts() []catalog_models.Gift {
	return g.giftRepo.All()
}

func (g *GiftService) GetGiftByID(id string) (*catalog_models.Gift, error) {
	gift, err := g.giftRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if gift == nil {
		return nil, utils.ErrGiftNotFound
	}
	return gift, nil
}

func (g *GiftService) FilterByCategory(filter catalog_models.CategoryFilter) []catalog_models.Gift {
	return g.giftRepo.Filter(filter)
}

// GetRandomGifts returns up to count gifts in shuffled order, optionally
// restricted by a category filter. Fewer than count are returned when the
// pool is smaller.
func (g *GiftService) GetRandomGifts(count int, filter *catalog_models.CategoryFilter) []catalog_models.Gift {
	var pool []catalog_models.Gift
	if filter != nil {
		pool = g.giftRepo.Filter(*filter)
	} else {
		pool = g.giftRepo.All()
	}

	shuffled := make([]catalog_models.Gift, len(pool))
	copy(shuffled, pool)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rand.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	if count > len(shuffled) {
		count = len(shuffled)
	}
	if count < 0 {
		count = 0
	}
	return shuffled[:count]
}

// SearchGifts matches the query case-insensitively against gift names,
// descriptions and interest tags. A blank query returns no results.
func (g *GiftService) SearchGifts(query string) []catalog_models.Gift {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []catalog_models.Gift{}
	}

	matched := make([]catalog_models.Gift, 0)
	for _, gift := range g.giftRepo.All() {
		if strings.Contains(strings.ToLower(gift.Name), q) ||
			strings.Contains(strings.ToLower(gift.Description), q) ||
			interestMatches(gift.Interests, q) {
			matched = append(matched, gift)
		}
	}
	return matched
}

func interestMatches(interests []string, q string) bool {
	for _, interest := range interests {
		if strings.Contains(strings.ToLower(interest), q) {
			return true
		}
	}
	return false
}

func (g *GiftService) PriceLabel(priceRange catalog_models.PriceRange) string {
	return g.giftRepo.BudgetTiers()[priceRange]
}

func (g *GiftService) InterestOptions() []string {
	return g.giftRepo.InterestOptions()
}
