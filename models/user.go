package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email            string `gorm:"uniqueIndex;not null"`
	Password         string `gorm:"not null" json:"-"`
	FullName         string
	HealthConditions string // comma separated, prefills the selector
	ProfilePicture   string
	ResetToken       string
	ResetTokenExp    time.Time
	Disabled         bool
}
