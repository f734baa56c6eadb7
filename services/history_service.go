package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fahrezi93/NutriSuggest/logger"
	"github.com/fahrezi93/NutriSuggest/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	defaultHistoryLimit = 10
	maxHistoryLimit     = 20
)

var ErrEntryNotFound = errors.New("history entry not found")

// HistoryService is the gateway to per-user recommendation history. Every
// operation takes the owning user id first; no entry is ever addressed by a
// global id alone.
type HistoryService struct {
	db *gorm.DB
}

func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{db: db}
}

// Save writes one immutable history entry and returns its id. The store
// assigns the timestamp at write time.
func (s *HistoryService) Save(userID uint, ingredients []string, result models.RecommendationResult) (uint, error) {
	if ingredients == nil {
		ingredients = []string{}
	}
	reduced := models.StoredResult{
		Foods:             result.RecommendedFoods,
		NutritionAnalysis: result.NutritionAnalysis,
		HealthAdvice:      result.HealthAdvice,
	}
	if reduced.Foods == nil {
		reduced.Foods = []models.FoodItem{}
	}
	if reduced.HealthAdvice == nil {
		reduced.HealthAdvice = []string{}
	}

	ingJSON, err := json.Marshal(ingredients)
	if err != nil {
		return 0, fmt.Errorf("encode ingredients: %w", err)
	}
	resJSON, err := json.Marshal(reduced)
	if err != nil {
		return 0, fmt.Errorf("encode recommendation result: %w", err)
	}

	row := models.SavedRecommendation{
		UserID:      userID,
		Ingredients: string(ingJSON),
		Result:      string(resJSON),
	}
	if err := s.db.Create(&row).Error; err != nil {
		return 0, fmt.Errorf("save recommendation: %w", err)
	}
	return row.ID, nil
}

// List returns the user's entries newest first. Ties on timestamp fall back
// to id order so a snapshot read is deterministic.
func (s *HistoryService) List(userID uint, limit int) ([]models.HistoryEntry, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	var rows []models.SavedRecommendation
	err := s.db.
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list recommendations: %w", err)
	}

	entries := make([]models.HistoryEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, decodeEntry(row))
	}
	return entries, nil
}

func (s *HistoryService) Get(userID, id uint) (*models.HistoryEntry, error) {
	var row models.SavedRecommendation
	err := s.db.Where("user_id = ? AND id = ?", userID, id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEntryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get recommendation: %w", err)
	}
	entry := decodeEntry(row)
	return &entry, nil
}

// DeleteOne removes exactly one entry. Deleting an id that no longer exists
// is a success: the caller's goal state already holds.
func (s *HistoryService) DeleteOne(userID, id uint) error {
	res := s.db.Where("user_id = ? AND id = ?", userID, id).Delete(&models.SavedRecommendation{})
	if res.Error != nil {
		return fmt.Errorf("delete recommendation: %w", res.Error)
	}
	return nil
}

// DeleteAll removes every entry for the user in one statement.
func (s *HistoryService) DeleteAll(userID uint) error {
	res := s.db.Where("user_id = ?", userID).Delete(&models.SavedRecommendation{})
	if res.Error != nil {
		return fmt.Errorf("clear history: %w", res.Error)
	}
	return nil
}

func decodeEntry(row models.SavedRecommendation) models.HistoryEntry {
	entry := models.HistoryEntry{
		ID:          row.ID,
		Timestamp:   row.CreatedAt,
		Ingredients: []string{},
	}
	if row.Ingredients != "" {
		if err := json.Unmarshal([]byte(row.Ingredients), &entry.Ingredients); err != nil {
			logger.Warn("corrupt ingredients column", zap.Uint("id", row.ID), zap.Error(err))
		}
	}
	if row.Result != "" {
		if err := json.Unmarshal([]byte(row.Result), &entry.Result); err != nil {
			logger.Warn("corrupt result column", zap.Uint("id", row.ID), zap.Error(err))
		}
	}
	return entry
}
