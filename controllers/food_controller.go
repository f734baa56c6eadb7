package controllers

import (
	"net/http"

	"github.com/fahrezi93/NutriSuggest/services"

	"github.com/gin-gonic/gin"
)

// GET /api/health-conditions
func GetHealthConditions(c *gin.Context) {
	svc := services.NewFoodService(services.NewEngineService())
	conditions := svc.Conditions(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"success": true, "data": conditions})
}

// GET /api/foods
func GetFoods(c *gin.Context) {
	svc := services.NewFoodService(services.NewEngineService())
	foods := svc.Foods(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"success": true, "data": foods, "total": len(foods)})
}

// GET /api/categories
func GetCategories(c *gin.Context) {
	svc := services.NewFoodService(services.NewEngineService())
	categories := svc.Categories(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"success": true, "data": categories})
}

// GET /api/foods/category/:category
func GetFoodsByCategory(c *gin.Context) {
	svc := services.NewFoodService(services.NewEngineService())
	foods := svc.FoodsByCategory(c.Request.Context(), c.Param("category"))
	c.JSON(http.StatusOK, gin.H{"success": true, "data": foods, "total": len(foods)})
}
