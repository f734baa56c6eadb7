package utils

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	"github.com/fahrezi93/NutriSuggest/logger"

	"go.uber.org/zap"
)

var (
	sesClient *ses.Client
	sesOnce   sync.Once
	sesErr    error
)

func loadSES() (*ses.Client, error) {
	sesOnce.Do(func() {
		cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
		if err != nil {
			sesErr = fmt.Errorf("AWS config load failed: %w", err)
			return
		}
		sesClient = ses.NewFromConfig(cfg)
	})
	return sesClient, sesErr
}

// generic SES sender
func sendEmail(to string, subject string, body string) error {
	client, err := loadSES()
	if err != nil {
		return err
	}

	input := &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{
				Data: aws.String(subject),
			},
			Body: &types.Body{
				Text: &types.Content{
					Data: aws.String(body),
				},
			},
		},
		Source: aws.String(os.Getenv("SES_EMAIL")),
	}

	_, err = client.SendEmail(context.TODO(), input)
	if err != nil {
		logger.Error("SES send failed", zap.String("to", to), zap.Error(err))
		return fmt.Errorf("email send failed: %w", err)
	}
	return nil
}

// Forgot Password email sender
func SendResetEmail(to string, token string) error {
	subject := "Kode Reset Password NutriSuggest"
	body := fmt.Sprintf("Kode reset password Anda: %s\n\nGunakan kode ini di aplikasi untuk membuat password baru.", token)
	return sendEmail(to, subject, body)
}

// SendFeedbackNotification forwards a feedback entry to the admin inbox.
func SendFeedbackNotification(from string, rating int, message string) error {
	admin := os.Getenv("ADMIN_EMAIL")
	if admin == "" {
		admin = os.Getenv("SES_EMAIL")
	}
	subject := "NutriSuggest: feedback baru"
	body := fmt.Sprintf("Dari: %s\nRating: %d/5\n\n%s", from, rating, message)
	return sendEmail(admin, subject, body)
}
