package utils

import (
	"testing"

	"github.com/fahrezi93/NutriSuggest/models"

	"github.com/stretchr/testify/assert"
)

func TestDeriveHealthLabels(t *testing.T) {
	lean := models.FoodItem{
		Name:          "Ayam Panggang",
		Calories:      165,
		Protein:       31.0,
		Carbohydrates: 0.0,
		Fat:           3.6,
		Fiber:         0.0,
		Sugar:         0.0,
	}
	assert.Equal(t, []string{
		"Tinggi Protein",
		"Rendah Lemak",
		"Rendah Karbohidrat",
		"Rendah Kalori",
		"Rendah Gula",
	}, DeriveHealthLabels(lean))

	fibrous := models.FoodItem{
		Name:          "Alpukat",
		Calories:      240,
		Protein:       3.0,
		Carbohydrates: 12.8,
		Fat:           22.0,
		Fiber:         10.1,
		Sugar:         1.0,
	}
	assert.Equal(t, []string{
		"Rendah Karbohidrat",
		"Tinggi Serat",
		"Rendah Gula",
	}, DeriveHealthLabels(fibrous))
}

func TestDeriveHealthLabelsBoundaries(t *testing.T) {
	// thresholds are inclusive
	food := models.FoodItem{
		Protein:       15.0,
		Fat:           5.0,
		Carbohydrates: 20.0,
		Fiber:         3.0,
		Calories:      200.0,
		Sugar:         2.0,
	}
	assert.Len(t, DeriveHealthLabels(food), 6)
}

func TestFillHealthLabelsKeepsEngineLabels(t *testing.T) {
	foods := []models.FoodItem{
		{Name: "A", Protein: 20, HealthLabels: []string{"omega_3"}},
		{Name: "B", Protein: 20, Fat: 10, Carbohydrates: 30, Calories: 300, Sugar: 5},
	}
	FillHealthLabels(foods)

	assert.Equal(t, []string{"omega_3"}, foods[0].HealthLabels, "engine labels must not be overwritten")
	assert.Equal(t, []string{"Tinggi Protein"}, foods[1].HealthLabels)
}
