package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/fahrezi93/NutriSuggest/logger"
	"github.com/fahrezi93/NutriSuggest/models"
	"github.com/fahrezi93/NutriSuggest/utils"

	"go.uber.org/zap"
)

// Source tags where a recommendation came from. The user-facing contract is
// "always succeeds"; the tag exists for logging and telemetry.
type Source string

const (
	SourceLive     Source = "live"
	SourceFallback Source = "fallback"
)

// EngineService talks to the external recommendation engine.
type EngineService struct {
	client  *http.Client
	baseURL string
}

func NewEngineService() *EngineService {
	base := os.Getenv("ENGINE_URL")
	if base == "" {
		base = "http://localhost:5000/api"
	}
	return &EngineService{
		client:  &http.Client{Timeout: 15 * time.Second},
		baseURL: strings.TrimRight(base, "/"),
	}
}

// Recommend asks the engine for recommendations. It never fails from the
// caller's point of view: any transport error, timeout or non-2xx response
// resolves to the curated fallback payload so the flow is never blocked.
// The caller has already validated that at least one health condition is set.
func (s *EngineService) Recommend(ctx context.Context, req models.RecommendationRequest) (models.RecommendationResult, Source) {
	body, err := json.Marshal(req)
	if err != nil {
		logger.Error("marshal recommendation request", zap.Error(err))
		return FallbackResult(), SourceFallback
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/recommendations", bytes.NewReader(body))
	if err != nil {
		return FallbackResult(), SourceFallback
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		logger.Warn("engine unreachable, serving fallback", zap.Error(err))
		return FallbackResult(), SourceFallback
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Warn("engine returned error, serving fallback", zap.Int("status", resp.StatusCode))
		return FallbackResult(), SourceFallback
	}

	var result models.RecommendationResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		logger.Warn("engine response malformed, serving fallback", zap.Error(err))
		return FallbackResult(), SourceFallback
	}

	// the engine's own success flag is passed through untouched
	utils.FillHealthLabels(result.RecommendedFoods)
	return result, SourceLive
}

// Health probes the engine's connectivity endpoint.
func (s *EngineService) Health(ctx context.Context) (models.HealthStatus, error) {
	var status models.HealthStatus
	err := s.get(ctx, "/health", &status)
	return status, err
}

func (s *EngineService) Conditions(ctx context.Context) ([]string, error) {
	var out struct {
		Success bool     `json:"success"`
		Data    []string `json:"data"`
	}
	if err := s.get(ctx, "/health-conditions", &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (s *EngineService) Foods(ctx context.Context) ([]models.FoodItem, error) {
	var out struct {
		Success bool              `json:"success"`
		Data    []models.FoodItem `json:"data"`
	}
	if err := s.get(ctx, "/foods", &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (s *EngineService) Categories(ctx context.Context) ([]string, error) {
	var out struct {
		Success bool     `json:"success"`
		Data    []string `json:"data"`
	}
	if err := s.get(ctx, "/categories", &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (s *EngineService) FoodsByCategory(ctx context.Context, category string) ([]models.FoodItem, error) {
	var out struct {
		Success bool              `json:"success"`
		Data    []models.FoodItem `json:"data"`
	}
	if err := s.get(ctx, "/foods/category/"+category, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

func (s *EngineService) get(ctx context.Context, path string, out any) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("engine request error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("engine api error (%d)", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode engine response: %w", err)
	}
	return nil
}
