package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/fahrezi93/NutriSuggest/config"
	"github.com/fahrezi93/NutriSuggest/services"

	"github.com/gin-gonic/gin"
)

// GET /api/history?limit=10
func GetHistory(c *gin.Context) {
	userID, _ := currentUserID(c)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	hist := services.NewHistoryService(config.DB)
	entries, err := hist.List(userID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "gagal mengambil riwayat rekomendasi"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    entries,
		"total":   len(entries),
	})
}

// GET /api/history/:id
func GetHistoryEntry(c *gin.Context) {
	userID, _ := currentUserID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	hist := services.NewHistoryService(config.DB)
	entry, err := hist.Get(userID, uint(id))
	if errors.Is(err, services.ErrEntryNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "riwayat tidak ditemukan"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "gagal mengambil rekomendasi"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": entry})
}

// DELETE /api/history/:id — idempotent, a second delete of the same id is
// still a success.
func DeleteHistoryEntry(c *gin.Context) {
	userID, _ := currentUserID(c)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	hist := services.NewHistoryService(config.DB)
	if err := hist.DeleteOne(userID, uint(id)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "gagal menghapus riwayat"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DELETE /api/history
func ClearHistory(c *gin.Context) {
	userID, _ := currentUserID(c)

	hist := services.NewHistoryService(config.DB)
	if err := hist.DeleteAll(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "gagal menghapus riwayat"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
