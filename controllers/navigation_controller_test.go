package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavigateHistoryGatedOnSession(t *testing.T) {
	r := setupApp(t)

	// anonymous: stay put, ask for login
	w := doJSON(r, http.MethodPost, "/api/navigate", "", map[string]string{
		"state": "results",
		"event": "viewHistory",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var out struct {
		State  string `json:"state"`
		Path   string `json:"path"`
		Effect string `json:"effect"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, "results", out.State)
	assert.Equal(t, "loginRequired", out.Effect)

	// with a session the same event navigates
	token := registerAndLogin(t, r, "nav@nutrisuggest.id")
	w = doJSON(r, http.MethodPost, "/api/navigate", token, map[string]string{
		"state": "results",
		"event": "viewHistory",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, "history", out.State)
	assert.Equal(t, "/history", out.Path)
	assert.Empty(t, out.Effect)
}

func TestNavigateSubmitEntersLoading(t *testing.T) {
	r := setupApp(t)

	w := doJSON(r, http.MethodPost, "/api/navigate", "", map[string]string{
		"state": "input",
		"event": "submitValid",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var out struct {
		State  string `json:"state"`
		Path   string `json:"path"`
		Effect string `json:"effect"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	assert.Equal(t, "loading", out.State)
	assert.Equal(t, "/results", out.Path)
	assert.Equal(t, "fetchRecommendation", out.Effect)
}

func TestNavigateRejectsUnknownInput(t *testing.T) {
	r := setupApp(t)

	w := doJSON(r, http.MethodPost, "/api/navigate", "", map[string]string{
		"state": "nowhere",
		"event": "viewHistory",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
