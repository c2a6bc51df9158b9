package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"movie-vault/internal/config"
	"movie-vault/internal/metrics"
	"movie-vault/internal/models"

	"github.com/sirupsen/logrus"
)

// OMDBService talks to the OMDB title endpoint. LookupByTitle returns
// (nil, nil) when OMDB has no match, so callers can tell a legitimate miss
// from a transport or decoding failure.
type OMDBService interface {
	LookupByTitle(ctx context.Context, title string, year int) (*models.OMDBMovie, error)
}

type omdbService struct {
	apiKey     string
	baseURL    string
	logger     *logrus.Logger
	httpClient *http.Client
}

func NewOMDBService(cfg config.OMDBConfig, logger *logrus.Logger) OMDBService {
	return &omdbService{
		apiKey:  cfg.APIKey,
		baseURL: cfg.BaseURL,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
	}
}

func (s *omdbService) LookupByTitle(ctx context.Context, title string, year int) (*models.OMDBMovie, error) {
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if s.apiKey == "" {
		return nil, fmt.Errorf("OMDB API key is not configured")
	}

	endpoint, err := url.Parse(s.baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid OMDB base URL: %w", err)
	}
	params := url.Values{}
	params.Set("t", title)
	params.Set("apikey", s.apiKey)
	if year > 0 {
		params.Set("y", strconv.Itoa(year))
	}
	endpoint.RawQuery = params.Encode()

	metrics.OMDBLookupsInFlight.Inc()
	defer metrics.OMDBLookupsInFlight.Dec()
	start := time.Now()
	defer func() {
		metrics.OMDBLookupDuration.Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		metrics.OMDBLookups.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to fetch from OMDB: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.OMDBLookups.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("OMDB API returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.OMDBLookups.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to read OMDB response: %w", err)
	}

	var payload models.OMDBMovie
	if err := json.Unmarshal(body, &payload); err != nil {
		metrics.OMDBLookups.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to decode OMDB response: %w", err)
	}

	if payload.Response != "True" {
		s.logger.WithFields(logrus.Fields{
			"title":  title,
			"reason": payload.Error,
		}).Debug("No OMDB match for title")
		metrics.OMDBLookups.WithLabelValues("miss").Inc()
		return nil, nil
	}

	// Keep the undecoded payload so the row can store OMDB's full answer.
	if err := json.Unmarshal(body, &payload.Raw); err != nil {
		metrics.OMDBLookups.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to decode OMDB response: %w", err)
	}

	metrics.OMDBLookups.WithLabelValues("found").Inc()
	return &payload, nil
}
