package services

import (
	"context"

	"github.com/fahrezi93/NutriSuggest/logger"
	"github.com/fahrezi93/NutriSuggest/models"

	"go.uber.org/zap"
)

// FoodService serves the catalog used by the ingredient selector. Reads are
// proxied to the engine and degrade to the static lists when it is down, so
// the input form always has something to offer.
type FoodService struct {
	engine *EngineService
}

func NewFoodService(engine *EngineService) *FoodService {
	return &FoodService{engine: engine}
}

func (s *FoodService) Conditions(ctx context.Context) []string {
	conditions, err := s.engine.Conditions(ctx)
	if err != nil || len(conditions) == 0 {
		logger.Warn("condition list unavailable, using fallback", zap.Error(err))
		return FallbackConditions()
	}
	return conditions
}

func (s *FoodService) Foods(ctx context.Context) []models.FoodItem {
	foods, err := s.engine.Foods(ctx)
	if err != nil || len(foods) == 0 {
		logger.Warn("food list unavailable, using fallback", zap.Error(err))
		return FallbackFoods()
	}
	return foods
}

func (s *FoodService) Categories(ctx context.Context) []string {
	categories, err := s.engine.Categories(ctx)
	if err != nil || len(categories) == 0 {
		logger.Warn("category list unavailable, using fallback", zap.Error(err))
		return FallbackCategories()
	}
	return categories
}

func (s *FoodService) FoodsByCategory(ctx context.Context, category string) []models.FoodItem {
	foods, err := s.engine.FoodsByCategory(ctx, category)
	if err != nil {
		logger.Warn("category lookup unavailable, using fallback", zap.String("category", category), zap.Error(err))
		var out []models.FoodItem
		for _, f := range FallbackFoods() {
			if f.Category == category {
				out = append(out, f)
			}
		}
		return out
	}
	return foods
}
