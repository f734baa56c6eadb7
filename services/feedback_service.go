package services

import (
	"errors"

	"github.com/fahrezi93/NutriSuggest/config"
	"github.com/fahrezi93/NutriSuggest/logger"
	"github.com/fahrezi93/NutriSuggest/models"
	"github.com/fahrezi93/NutriSuggest/utils"

	"go.uber.org/zap"
)

func SubmitFeedback(userID *uint, email string, rating int, message string) error {
	if rating < 1 || rating > 5 {
		return errors.New("rating must be between 1 and 5")
	}

	entry := models.Feedback{
		UserID:  userID,
		Email:   email,
		Rating:  rating,
		Message: message,
	}
	if err := config.DB.Create(&entry).Error; err != nil {
		return err
	}

	// notification is best-effort, the feedback is already stored
	if err := utils.SendFeedbackNotification(email, rating, message); err != nil {
		logger.Warn("feedback notification failed", zap.Error(err))
	}
	return nil
}

// SubscribeNewsletter is idempotent: subscribing twice is a success.
func SubscribeNewsletter(email string) error {
	var existing models.NewsletterSubscriber
	err := config.DB.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}

	return config.DB.Create(&models.NewsletterSubscriber{Email: email}).Error
}
