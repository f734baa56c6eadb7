package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fahrezi93/NutriSuggest/config"
	"github.com/fahrezi93/NutriSuggest/models"
	"github.com/fahrezi93/NutriSuggest/utils"
)

type ProfileInput struct {
	FullName         string   `json:"full_name"`
	HealthConditions []string `json:"health_conditions"`
	ProfilePicture   string   `json:"profile_picture"` // base64 data URI
}

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	result := config.DB.Where("id = ? AND disabled = ?", userID, false).First(&user)
	if result.Error != nil {
		return nil, errors.New("user not found or disabled")
	}

	conditions := []string{}
	if user.HealthConditions != "" {
		conditions = strings.Split(user.HealthConditions, ",")
	}

	return map[string]interface{}{
		"id":                user.ID,
		"email":             user.Email,
		"full_name":         user.FullName,
		"health_conditions": conditions,
		"profile_picture":   user.ProfilePicture,
	}, nil
}

func UpdateUserProfile(userID uint, input ProfileInput) error {
	var user models.User
	result := config.DB.Where("id = ? AND disabled = ?", userID, false).First(&user)
	if result.Error != nil {
		return errors.New("user not found or disabled")
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.HealthConditions != nil {
		user.HealthConditions = strings.Join(input.HealthConditions, ",")
	}
	if input.ProfilePicture != "" {
		url, err := utils.UploadBase64ImageToS3(input.ProfilePicture, user.Email)
		if err != nil {
			return fmt.Errorf("failed to upload image: %v", err)
		}
		user.ProfilePicture = url
	}

	return config.DB.Save(&user).Error
}
