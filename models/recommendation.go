package models

import "time"

// RecommendationRequest is the payload sent to the recommendation engine.
// A request is only submittable with at least one health condition.
type RecommendationRequest struct {
	HealthConditions     []string `json:"health_conditions" binding:"required,min=1"`
	AvailableIngredients []string `json:"available_ingredients"`
	TargetCalories       int      `json:"target_calories"`
}

type FoodItem struct {
	Name                string   `json:"name"`
	Category            string   `json:"category"`
	Calories            float64  `json:"calories"`
	Protein             float64  `json:"protein"`
	Carbohydrates       float64  `json:"carbohydrates"`
	Fat                 float64  `json:"fat"`
	Fiber               float64  `json:"fiber"`
	Sugar               float64  `json:"sugar"`
	HealthScore         int      `json:"health_score"`
	HealthLabels        []string `json:"health_labels"`
	SuitableFor         []string `json:"suitable_for"`
	Region              string   `json:"region"`
	Description         string   `json:"description"`
	RecommendationScore float64  `json:"recommendation_score,omitempty"`
}

// NutritionAnalysis figures default to zero when the engine omits them;
// absence is "no data", not an error.
type NutritionAnalysis struct {
	TotalCalories     float64 `json:"total_calories"`
	ProteinPercentage float64 `json:"protein_percentage"`
	CarbPercentage    float64 `json:"carb_percentage"`
	FatPercentage     float64 `json:"fat_percentage"`
	FiberContent      float64 `json:"fiber_content"`
	SugarContent      float64 `json:"sugar_content"`
}

type MealPlanFood struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
}

type MealPlanNutrition struct {
	Protein       float64 `json:"protein"`
	Carbohydrates float64 `json:"carbohydrates"`
	Fat           float64 `json:"fat"`
}

type MealPlan struct {
	MealType      string            `json:"meal_type"`
	TotalCalories float64           `json:"total_calories"`
	Foods         []MealPlanFood    `json:"foods"`
	Nutrition     MealPlanNutrition `json:"nutrition"`
}

// RecommendationResult is the response envelope shown to the user.
type RecommendationResult struct {
	Success           bool              `json:"success"`
	RecommendedFoods  []FoodItem        `json:"recommended_foods"`
	NutritionAnalysis NutritionAnalysis `json:"nutrition_analysis"`
	HealthAdvice      []string          `json:"health_advice"`
	MealPlans         []MealPlan        `json:"meal_plans"`
}

// StoredResult is the reduced copy persisted with a history entry.
// Meal plans are deliberately not persisted.
type StoredResult struct {
	Foods             []FoodItem        `json:"foods"`
	NutritionAnalysis NutritionAnalysis `json:"nutrition_analysis"`
	HealthAdvice      []string          `json:"health_advice"`
}

// SavedRecommendation rows are immutable once written. The store assigns
// both id and timestamp. Ingredients and the result snapshot are kept as
// JSON text columns.
type SavedRecommendation struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"index;not null"`
	CreatedAt   time.Time `gorm:"index"`
	Ingredients string    `gorm:"type:text"`
	Result      string    `gorm:"type:text"`
}

// HistoryEntry is the decoded view of a SavedRecommendation row.
type HistoryEntry struct {
	ID          uint         `json:"id"`
	Timestamp   time.Time    `json:"timestamp"`
	Ingredients []string     `json:"ingredients"`
	Result      StoredResult `json:"recommendation_result"`
}

type HealthStatus struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}
