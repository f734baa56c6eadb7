package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fahrezi93/NutriSuggest/models"

	"github.com/stretchr/testify/assert"
)

func liveResult() models.RecommendationResult {
	return models.RecommendationResult{
		Success: true,
		RecommendedFoods: []models.FoodItem{
			{Name: "Tempe Bacem", Category: "Protein Nabati", Calories: 150, Protein: 10, Fiber: 4},
		},
		NutritionAnalysis: models.NutritionAnalysis{TotalCalories: 150},
		HealthAdvice:      []string{"Perbanyak serat"},
	}
}

func TestRecommendLive(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/recommendations", r.URL.Path)

		var req models.RecommendationRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"diabetes"}, req.HealthConditions)

		_ = json.NewEncoder(w).Encode(liveResult())
	}))
	defer srv.Close()
	t.Setenv("ENGINE_URL", srv.URL)

	result, source := NewEngineService().Recommend(context.Background(), models.RecommendationRequest{
		HealthConditions: []string{"diabetes"},
		TargetCalories:   2000,
	})

	assert.Equal(t, SourceLive, source)
	assert.True(t, result.Success)
	assert.Equal(t, "Tempe Bacem", result.RecommendedFoods[0].Name)
	// labels were derived because the engine sent none
	assert.Contains(t, result.RecommendedFoods[0].HealthLabels, "Tinggi Serat")
}

func TestRecommendPreservesEngineSuccessFlag(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result := liveResult()
		result.Success = false
		_ = json.NewEncoder(w).Encode(result)
	}))
	defer srv.Close()
	t.Setenv("ENGINE_URL", srv.URL)

	result, source := NewEngineService().Recommend(context.Background(), models.RecommendationRequest{
		HealthConditions: []string{"diabetes"},
	})

	assert.Equal(t, SourceLive, source)
	assert.False(t, result.Success, "the engine's flag is passed through untouched")
}

func TestRecommendFallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()
	t.Setenv("ENGINE_URL", srv.URL)

	result, source := NewEngineService().Recommend(context.Background(), models.RecommendationRequest{
		HealthConditions: []string{"diabetes"},
	})

	assert.Equal(t, SourceFallback, source)
	assert.Equal(t, FallbackResult(), result, "fallback must match the curated payload exactly")
}

func TestRecommendFallsBackOnTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // engine down
	t.Setenv("ENGINE_URL", srv.URL)

	result, source := NewEngineService().Recommend(context.Background(), models.RecommendationRequest{
		HealthConditions: []string{"hipertensi"},
	})

	assert.Equal(t, SourceFallback, source)
	assert.True(t, result.Success, "Recommend is total, the flow never sees a failure")
	assert.NotEmpty(t, result.RecommendedFoods)
}

func TestRecommendFallsBackOnMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()
	t.Setenv("ENGINE_URL", srv.URL)

	result, source := NewEngineService().Recommend(context.Background(), models.RecommendationRequest{
		HealthConditions: []string{"obesitas"},
	})

	assert.Equal(t, SourceFallback, source)
	assert.Equal(t, FallbackResult(), result)
}

func TestCatalogFallbacks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	t.Setenv("ENGINE_URL", srv.URL)

	svc := NewFoodService(NewEngineService())
	ctx := context.Background()

	assert.Equal(t, FallbackConditions(), svc.Conditions(ctx))
	assert.Equal(t, FallbackFoods(), svc.Foods(ctx))
	assert.Equal(t, FallbackCategories(), svc.Categories(ctx))

	veggies := svc.FoodsByCategory(ctx, "Sayuran")
	assert.Len(t, veggies, 3)
	for _, f := range veggies {
		assert.Equal(t, "Sayuran", f.Category)
	}
}

func TestCatalogLive(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/health-conditions":
			_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "data": []string{"diabetes", "hipertensi"}})
		case "/health":
			_ = json.NewEncoder(w).Encode(models.HealthStatus{Status: "healthy"})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()
	t.Setenv("ENGINE_URL", srv.URL)

	engine := NewEngineService()
	svc := NewFoodService(engine)

	assert.Equal(t, []string{"diabetes", "hipertensi"}, svc.Conditions(context.Background()))

	status, err := engine.Health(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "healthy", status.Status)
}
