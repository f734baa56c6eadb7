package utils

import "github.com/fahrezi93/NutriSuggest/models"

// Nutrient thresholds for display labels, per 100g serving.
const (
	highProteinMin = 15.0
	lowFatMax      = 5.0
	lowCarbMax     = 20.0
	highFiberMin   = 3.0
	lowCalorieMax  = 200.0
	lowSugarMax    = 2.0
)

// DeriveHealthLabels evaluates the independent nutrient predicates for a
// food item. The predicates are not mutually exclusive; the fixed order
// only determines presentation order.
func DeriveHealthLabels(food models.FoodItem) []string {
	labels := []string{}
	if food.Protein >= highProteinMin {
		labels = append(labels, "Tinggi Protein")
	}
	if food.Fat <= lowFatMax {
		labels = append(labels, "Rendah Lemak")
	}
	if food.Carbohydrates <= lowCarbMax {
		labels = append(labels, "Rendah Karbohidrat")
	}
	if food.Fiber >= highFiberMin {
		labels = append(labels, "Tinggi Serat")
	}
	if food.Calories <= lowCalorieMax {
		labels = append(labels, "Rendah Kalori")
	}
	if food.Sugar <= lowSugarMax {
		labels = append(labels, "Rendah Gula")
	}
	return labels
}

// FillHealthLabels derives labels for any food the engine returned without
// its own label set. Engine-supplied labels are never overwritten.
func FillHealthLabels(foods []models.FoodItem) {
	for i := range foods {
		if len(foods[i].HealthLabels) == 0 {
			foods[i].HealthLabels = DeriveHealthLabels(foods[i])
		}
	}
}
