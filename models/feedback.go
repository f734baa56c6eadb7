package models

import "gorm.io/gorm"

type Feedback struct {
	gorm.Model
	UserID  *uint  `gorm:"index"` // nil for anonymous feedback
	Email   string
	Rating  int    // 1-5
	Message string `gorm:"type:text;not null"`
}

type NewsletterSubscriber struct {
	gorm.Model
	Email string `gorm:"uniqueIndex;not null"`
}
