package controllers

import (
	"net/http"

	"github.com/fahrezi93/NutriSuggest/config"
	"github.com/fahrezi93/NutriSuggest/logger"
	"github.com/fahrezi93/NutriSuggest/models"
	"github.com/fahrezi93/NutriSuggest/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	minTargetCalories     = 1000
	maxTargetCalories     = 5000
	defaultTargetCalories = 2000
)

// GetRecommendations handles POST /api/recommendations. A request without a
// health condition is rejected before any engine call; everything past
// validation always produces a result (live or fallback). When a session is
// present the result is persisted best-effort.
func GetRecommendations(c *gin.Context) {
	var req models.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pilih minimal satu kondisi kesehatan"})
		return
	}

	if req.TargetCalories == 0 {
		req.TargetCalories = defaultTargetCalories
	}
	if req.TargetCalories < minTargetCalories {
		req.TargetCalories = minTargetCalories
	}
	if req.TargetCalories > maxTargetCalories {
		req.TargetCalories = maxTargetCalories
	}

	engine := services.NewEngineService()
	result, source := engine.Recommend(c.Request.Context(), req)

	logger.Info("recommendation served",
		zap.String("source", string(source)),
		zap.Int("foods", len(result.RecommendedFoods)),
	)
	c.Header("X-Recommendation-Source", string(source))

	// persistence is best-effort: the user already has the result
	if userID, ok := currentUserID(c); ok {
		hist := services.NewHistoryService(config.DB)
		if _, err := hist.Save(userID, req.AvailableIngredients, result); err != nil {
			logger.Error("failed to save recommendation", zap.Uint("userID", userID), zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, result)
}

type SaveRecommendationInput struct {
	Ingredients          []string                    `json:"ingredients"`
	RecommendationResult models.RecommendationResult `json:"recommendation_result" binding:"required"`
}

// SaveRecommendation is the explicit save path, for a result the client
// obtained before logging in.
func SaveRecommendation(c *gin.Context) {
	userID, _ := currentUserID(c)

	var input SaveRecommendationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	hist := services.NewHistoryService(config.DB)
	id, err := hist.Save(userID, input.Ingredients, input.RecommendationResult)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "gagal menyimpan rekomendasi"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":          true,
		"message":          "rekomendasi tersimpan",
		"recommendationId": id,
	})
}
