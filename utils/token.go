package utils

import (
	"math/rand"
	"time"
)

const tokenCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateRandomToken produces an alphanumeric reset code.
func GenerateRandomToken(length int) string {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	token := make([]byte, length)
	for i := range token {
		token[i] = tokenCharset[rng.Intn(len(tokenCharset))]
	}
	return string(token)
}
