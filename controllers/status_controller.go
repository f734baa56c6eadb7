package controllers

import (
	"net/http"
	"time"

	"github.com/fahrezi93/NutriSuggest/logger"
	"github.com/fahrezi93/NutriSuggest/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// HealthCheck reports this server's health plus the engine connectivity the
// hub last observed. Engine state never gates functionality here.
func HealthCheck(hub *services.StatusHub) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"message":   "NutriSuggest API is running",
			"engine":    hub.Status(),
			"timestamp": time.Now().Format(time.RFC3339),
		})
	}
}

// StatusWS streams engine connectivity changes to the client.
func StatusWS(hub *services.StatusHub) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			logger.Warn("websocket upgrade failed", zap.Error(err))
			return
		}

		hub.Register(conn)
		defer hub.Unregister(conn)

		// the hub pushes; drain reads until the client goes away
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}
}
