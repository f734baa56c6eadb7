package main

import (
	"context"
	"os"
	"time"

	"github.com/fahrezi93/NutriSuggest/config"
	"github.com/fahrezi93/NutriSuggest/logger"
	"github.com/fahrezi93/NutriSuggest/routes"
	"github.com/fahrezi93/NutriSuggest/services"
	"github.com/fahrezi93/NutriSuggest/utils"

	"go.uber.org/zap"
)

func main() {
	logger.InitializeLogger()
	defer logger.Close()

	config.InitDB()
	utils.InitS3()

	hub := services.NewStatusHub()
	go hub.Watch(context.Background(), services.NewEngineService(), 30*time.Second)

	r := routes.SetupRouter(hub)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.Info("starting NutriSuggest API", zap.String("port", port))
	if err := r.Run(":" + port); err != nil {
		logger.Error("server stopped", zap.Error(err))
	}
}
