package repositories

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"giftmuse/internal/models/catalog_models"
)

//go:embed gifts_database.json
var giftDatabaseJSON []byte

type GiftRepository interface {
	All() []catalog_models.Gift
	FindByID(id string) (*catalog_models.Gift, error)
	Filter(filter catalog_models.CategoryFilter) []catalog_models.Gift
	Metadata() catalog_models.GiftMetadata
	InterestOptions() []string
	BudgetTiers() map[catalog_models.PriceRange]string
}

type giftRepository struct {
	db   catalog_models.GiftDatabase
	byID map[string]*catalog_models.Gift
}

func NewGiftRepository() (GiftRepository, error) {
	var db catalog_models.GiftDatabase
	if err := json.Unmarshal(giftDatabaseJSON, &db); err != nil {
		return nil, fmt.Errorf("decode gift database: %w", err)
	}

	byID := make(map[string]*catalog_models.Gift, len(db.Gifts))
	for i := range db.Gifts {
		byID[db.Gifts[i].ID] = &db.Gifts[i]
	}

	return &giftRepository{db: db, byID: byID}, nil
}

func (r *giftRepository) All() []catalog_models.Gift {
	return r.db.Gifts
}

func (r *giftRepository) FindByID(id string) (*catalog_models.Gift, error) {
	gift, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return gift, nil
}

func (r *giftRepository) Filter(filter catalog_models.CategoryFilter) []catalog_models.Gift {
	matched := make([]catalog_models.Gift, 0)
	for _, gift := range r.db.Gifts {
		if filter.Matches(gift) {
			matched = append(matched, gift)
		}
	}
	return matched
}

func (r *giftRepository) Metadata() catalog_models.GiftMetadata {
	return r.db.Metadata
}

func (r *giftRepository) InterestOptions() []string {
	return r.db.InterestOptions
}

func (r *giftRepository) BudgetTiers() map[catalog_models.PriceRange]string {
	return r.db.BudgetTiers
}
