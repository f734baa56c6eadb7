package controllers

import (
	"net/http"

	"github.com/fahrezi93/NutriSuggest/viewstate"

	"github.com/gin-gonic/gin"
)

type NavigateInput struct {
	State viewstate.State `json:"state" binding:"required"`
	Event viewstate.Event `json:"event" binding:"required"`
}

// Navigate replays a view transition through the reducer, so the SPA and
// browser history stay on the same state machine. Session presence gates
// the history screen.
func Navigate(c *gin.Context) {
	var input NavigateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !input.State.Valid() || !input.Event.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown state or event"})
		return
	}

	_, loggedIn := currentUserID(c)
	next, effect := viewstate.Reduce(input.State, input.Event, loggedIn)

	c.JSON(http.StatusOK, gin.H{
		"state":  next,
		"path":   viewstate.Path(next),
		"effect": effect,
	})
}
