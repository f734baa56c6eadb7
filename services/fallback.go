package services

import "github.com/fahrezi93/NutriSuggest/models"

// FallbackResult is the curated payload served whenever the engine is
// unreachable. Returned by value so callers can never mutate the originals.
func FallbackResult() models.RecommendationResult {
	return models.RecommendationResult{
		Success: true,
		RecommendedFoods: []models.FoodItem{
			{
				Name:          "Ayam Panggang",
				Category:      "Protein Hewani",
				Calories:      165,
				Protein:       31.0,
				Carbohydrates: 0.0,
				Fat:           3.6,
				Fiber:         0.0,
				Sugar:         0.0,
				HealthScore:   5,
				HealthLabels:  []string{"tinggi_protein", "rendah_lemak", "rendah_karbohidrat"},
				SuitableFor:   []string{"diabetes", "hipertensi", "obesitas"},
				Region:        "Indonesia",
				Description:   "Dada ayam panggang tanpa kulit, protein lean",
			},
			{
				Name:          "Brokoli Kukus",
				Category:      "Sayuran",
				Calories:      34,
				Protein:       2.8,
				Carbohydrates: 7.0,
				Fat:           0.4,
				Fiber:         2.6,
				Sugar:         1.5,
				HealthScore:   5,
				HealthLabels:  []string{"tinggi_serat", "rendah_lemak", "antioksidan"},
				SuitableFor:   []string{"diabetes", "hipertensi", "obesitas"},
				Region:        "Indonesia",
				Description:   "Brokoli kukus, kaya antioksidan dan serat",
			},
			{
				Name:          "Nasi Merah",
				Category:      "Makanan Pokok",
				Calories:      111,
				Protein:       2.6,
				Carbohydrates: 23.0,
				Fat:           0.9,
				Fiber:         1.8,
				Sugar:         0.4,
				HealthScore:   4,
				HealthLabels:  []string{"tinggi_serat", "rendah_gula", "gluten_free"},
				SuitableFor:   []string{"diabetes", "hipertensi", "obesitas"},
				Region:        "Indonesia",
				Description:   "Nasi merah organik, lebih sehat dari nasi putih",
			},
			{
				Name:          "Salmon Panggang",
				Category:      "Protein Hewani",
				Calories:      208,
				Protein:       25.0,
				Carbohydrates: 0.0,
				Fat:           12.0,
				Fiber:         0.0,
				Sugar:         0.0,
				HealthScore:   5,
				HealthLabels:  []string{"tinggi_protein", "omega_3", "rendah_karbohidrat"},
				SuitableFor:   []string{"diabetes", "hipertensi", "obesitas"},
				Region:        "Indonesia",
				Description:   "Salmon kaya omega-3 untuk kesehatan jantung",
			},
			{
				Name:          "Bayam Kukus",
				Category:      "Sayuran",
				Calories:      23,
				Protein:       2.9,
				Carbohydrates: 3.6,
				Fat:           0.4,
				Fiber:         2.2,
				Sugar:         0.4,
				HealthScore:   5,
				HealthLabels:  []string{"tinggi_serat", "rendah_lemak", "tinggi_zat_besi"},
				SuitableFor:   []string{"diabetes", "hipertensi", "obesitas"},
				Region:        "Indonesia",
				Description:   "Bayam kaya zat besi dan serat",
			},
		},
		NutritionAnalysis: models.NutritionAnalysis{
			TotalCalories:     541,
			ProteinPercentage: 36.1,
			CarbPercentage:    30.7,
			FatPercentage:     34.5,
			FiberContent:      6.6,
			SugarContent:      2.3,
		},
		HealthAdvice: []string{
			"Konsumsi lebih banyak sayuran hijau untuk meningkatkan asupan serat",
			"Batasi makanan tinggi gula untuk mengontrol kadar gula darah",
			"Pilih protein lean seperti ayam dan ikan untuk kesehatan jantung",
			"Pilih karbohidrat kompleks seperti nasi merah untuk energi yang lebih stabil",
		},
		MealPlans: []models.MealPlan{
			{
				MealType:      "Sarapan Sehat",
				TotalCalories: 199,
				Foods: []models.MealPlanFood{
					{Name: "Ayam Panggang", Calories: 165},
					{Name: "Brokoli Kukus", Calories: 34},
				},
				Nutrition: models.MealPlanNutrition{Protein: 33.8, Carbohydrates: 7.0, Fat: 4.0},
			},
			{
				MealType:      "Makan Siang Bergizi",
				TotalCalories: 342,
				Foods: []models.MealPlanFood{
					{Name: "Nasi Merah", Calories: 111},
					{Name: "Salmon Panggang", Calories: 208},
					{Name: "Bayam Kukus", Calories: 23},
				},
				Nutrition: models.MealPlanNutrition{Protein: 52.5, Carbohydrates: 33.6, Fat: 16.9},
			},
		},
	}
}

// FallbackConditions mirrors the engine's selectable condition tags for when
// it is unreachable.
func FallbackConditions() []string {
	return []string{
		"diabetes",
		"hipertensi",
		"obesitas",
		"jantung",
		"kolesterol",
		"asam_urat",
		"ginjal",
		"lambung",
		"tiroid",
		"alergi",
	}
}

// FallbackFoods is the static ingredient-suggestion list.
func FallbackFoods() []models.FoodItem {
	return []models.FoodItem{
		{Name: "Ayam", Category: "Protein Hewani"},
		{Name: "Nasi", Category: "Makanan Pokok"},
		{Name: "Sayur Bayam", Category: "Sayuran"},
		{Name: "Tahu", Category: "Protein Nabati"},
		{Name: "Tempe", Category: "Protein Nabati"},
		{Name: "Brokoli", Category: "Sayuran"},
		{Name: "Wortel", Category: "Sayuran"},
		{Name: "Pisang", Category: "Buah-buahan"},
		{Name: "Apel", Category: "Buah-buahan"},
		{Name: "Jeruk", Category: "Buah-buahan"},
	}
}

// FallbackCategories lists the distinct categories of FallbackFoods in
// catalog order.
func FallbackCategories() []string {
	seen := map[string]bool{}
	var out []string
	for _, f := range FallbackFoods() {
		if !seen[f.Category] {
			seen[f.Category] = true
			out = append(out, f.Category)
		}
	}
	return out
}
