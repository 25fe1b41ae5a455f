package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/ngmaloney/sailing-score/internal/models"
	"github.com/sony/gobreaker"
)

// MinQueryLength is the shortest geocoding query sent over the network.
const MinQueryLength = 2

// Client talks to the sailing score backend over HTTP. It implements both
// Geocoder and Scorer.
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string

	// One breaker per endpoint so a failing geocoder cannot block scoring.
	geocodeBreaker *gobreaker.CircuitBreaker
	scoreBreaker   *gobreaker.CircuitBreaker
	healthBreaker  *gobreaker.CircuitBreaker
}

func newBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn("circuit breaker state change", "name", name, "from", from.String(), "to", to.String())
		},
	})
}

// NewClient creates a client for the backend at baseURL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		userAgent:      "SailingScore/1.0 (github.com/ngmaloney/sailing-score)",
		geocodeBreaker: newBreaker("sailing-score-geocode"),
		scoreBreaker:   newBreaker("sailing-score-score"),
		healthBreaker:  newBreaker("sailing-score-health"),
	}
}

// Geocode implements Geocoder.
func (c *Client) Geocode(ctx context.Context, query string) ([]models.GeocodeResult, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < MinQueryLength {
		return []models.GeocodeResult{}, nil
	}

	params := url.Values{}
	params.Set("q", query)

	var resp models.GeocodeResponse
	if err := c.do(ctx, c.geocodeBreaker, http.MethodGet, "/api/geocode?"+params.Encode(), nil, &resp); err != nil {
		return nil, err
	}
	if resp.Results == nil {
		resp.Results = []models.GeocodeResult{}
	}
	return resp.Results, nil
}

// Score implements Scorer.
func (c *Client) Score(ctx context.Context, req models.ScoreRequest) (*models.ScoreResponse, error) {
	if err := models.Validate(req); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRequest, err)
	}

	var resp models.ScoreResponse
	if err := c.do(ctx, c.scoreBreaker, http.MethodPost, "/api/score", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Health checks that the backend is reachable.
func (c *Client) Health(ctx context.Context) error {
	var resp struct {
		Status string `json:"status"`
	}
	if err := c.do(ctx, c.healthBreaker, http.MethodGet, "/api/health", nil, &resp); err != nil {
		return err
	}
	if resp.Status != "ok" {
		return fmt.Errorf("%w: health status %q", ErrCollaborator, resp.Status)
	}
	return nil
}

// do sends one request through cb and decodes a 2xx JSON
// body into out. Every failure is wrapped in ErrCollaborator.
func (c *Client) do(ctx context.Context, cb *gobreaker.CircuitBreaker, method, path string, body, out any) error {
	requestID := uuid.NewString()
	start := time.Now()

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
	}

	result, err := cb.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(payload))
		if err != nil {
			return nil, fmt.Errorf("creating request: %w", err)
		}
		req.Header.Set("User-Agent", c.userAgent)
		req.Header.Set("Accept", "application/json")
		req.Header.Set("X-Request-ID", requestID)
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("executing request: %w", err)
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
			resp.Body.Close()
			return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
		}
		return resp, nil
	})
	if err != nil {
		log.Error("request failed", "id", requestID, "method", method, "path", path, "err", err)
		return fmt.Errorf("%w: %v", ErrCollaborator, err)
	}

	resp := result.(*http.Response)
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		log.Error("decoding response", "id", requestID, "path", path, "err", err)
		return fmt.Errorf("%w: decoding response: %v", ErrCollaborator, err)
	}
	if err := models.Validate(out); err != nil {
		log.Error("invalid response", "id", requestID, "path", path, "err", err)
		return fmt.Errorf("%w: invalid response: %v", ErrCollaborator, err)
	}

	log.Debug("request done", "id", requestID, "method", method, "path", path, "took", time.Since(start))
	return nil
}
