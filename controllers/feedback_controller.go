package controllers

import (
	"net/http"

	"github.com/fahrezi93/NutriSuggest/services"

	"github.com/gin-gonic/gin"
)

type FeedbackInput struct {
	Email   string `json:"email" binding:"omitempty,email"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Message string `json:"message" binding:"required"`
}

// POST /api/feedback — works with or without a session.
func SubmitFeedback(c *gin.Context) {
	var input FeedbackInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var userID *uint
	if id, ok := currentUserID(c); ok {
		userID = &id
	}
	email := input.Email
	if email == "" {
		email = c.GetString("email")
	}

	if err := services.SubmitFeedback(userID, email, input.Rating, input.Message); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "terima kasih atas masukan Anda"})
}

// POST /api/newsletter/subscribe
func SubscribeNewsletter(c *gin.Context) {
	var input struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := services.SubscribeNewsletter(input.Email); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
