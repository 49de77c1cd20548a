// Package fetch implements the REST client for the hospital service.
package fetch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/mfreeman451/wardwatch/pkg/geo"
	"github.com/mfreeman451/wardwatch/pkg/models"
)

const (
	requestTimeout  = 10 * time.Second
	locationTimeout = 5 * time.Second
)

// HTTPClient talks to the hospital service over HTTP. It performs no
// caching and no retries; failures propagate to the caller.
type HTTPClient struct {
	baseURL string
	client  *http.Client
	locator geo.Provider
}

// Option configures an HTTPClient.
type Option func(*HTTPClient)

// WithHTTPClient overrides the underlying http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(h *HTTPClient) { h.client = c }
}

// WithLocator sets the location provider used to enrich AQI requests.
func WithLocator(p geo.Provider) Option {
	return func(h *HTTPClient) { h.locator = p }
}

// New creates a client for the given base URL, e.g.
// "http://localhost:8000/api/v1".
func New(baseURL string, opts ...Option) *HTTPClient {
	h := &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: requestTimeout,
		},
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

func (h *HTTPClient) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return h.do(ctx, http.MethodGet, path, query, nil, out)
}

func (h *HTTPClient) post(ctx context.Context, path string, body, out interface{}) error {
	return h.do(ctx, http.MethodPost, path, nil, body, out)
}

func (h *HTTPClient) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	u := h.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}

		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrNetwork, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		// Drain so the connection can be reused; the body is not
		// part of the contract on failure.
		_, _ = io.Copy(io.Discard, resp.Body)

		return fmt.Errorf("%w: %s %s returned status %d", ErrService, method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}

	return nil
}

// Beds implements Client.
func (h *HTTPClient) Beds(ctx context.Context, department string) (models.BedAvailability, error) {
	query := url.Values{}
	if department != "" {
		query.Set("department", department)
	}

	var out models.BedAvailability
	if err := h.get(ctx, "/beds", query, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// Staff implements Client.
func (h *HTTPClient) Staff(ctx context.Context, shift string) (*models.StaffSnapshot, error) {
	query := url.Values{}
	if shift != "" {
		query.Set("shift", shift)
	}

	var out models.StaffSnapshot
	if err := h.get(ctx, "/staff", query, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Inventory implements Client.
func (h *HTTPClient) Inventory(ctx context.Context, criticalOnly bool) ([]models.InventoryItem, error) {
	query := url.Values{}
	if criticalOnly {
		query.Set("critical_only", "true")
	}

	var out []models.InventoryItem
	if err := h.get(ctx, "/inventory", query, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// LatestPrediction implements Client.
func (h *HTTPClient) LatestPrediction(ctx context.Context) (*models.SurgePrediction, error) {
	var out models.SurgePrediction
	if err := h.get(ctx, "/predictions/latest", nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// PredictionHistory implements Client.
func (h *HTTPClient) PredictionHistory(ctx context.Context, limit int) ([]models.SurgePrediction, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var out []models.SurgePrediction
	if err := h.get(ctx, "/predictions/history", query, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// Recommendations implements Client.
func (h *HTTPClient) Recommendations(ctx context.Context, status string) ([]models.Recommendation, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", status)
	}

	var out []models.Recommendation
	if err := h.get(ctx, "/recommendations", query, &out); err != nil {
		return nil, err
	}

	return out, nil
}

// ApproveRecommendation implements Client.
func (h *HTTPClient) ApproveRecommendation(ctx context.Context, id string) error {
	return h.post(ctx, "/recommendations/"+url.PathEscape(id)+"/approve", nil, nil)
}

type rejectRequest struct {
	Reason string `json:"reason"`
}

// RejectRecommendation implements Client.
func (h *HTTPClient) RejectRecommendation(ctx context.Context, id, reason string) error {
	return h.post(ctx, "/recommendations/"+url.PathEscape(id)+"/reject", rejectRequest{Reason: reason}, nil)
}

// CostSavings implements Client.
func (h *HTTPClient) CostSavings(ctx context.Context) (*models.CostSavings, error) {
	var out models.CostSavings
	if err := h.get(ctx, "/analytics/cost-savings", nil, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// AQI implements Client. The request is enriched with coordinates from the
// location provider when one is configured and answers within the bound;
// any lookup failure degrades to an unparameterized request.
func (h *HTTPClient) AQI(ctx context.Context) (*models.AQIReading, error) {
	query := url.Values{}

	if h.locator != nil {
		locCtx, cancel := context.WithTimeout(ctx, locationTimeout)

		coords, err := h.locator.Locate(locCtx)

		cancel()

		if err != nil {
			log.Printf("Location lookup unavailable, requesting AQI without coordinates: %v", err)
		} else {
			query.Set("lat", strconv.FormatFloat(coords.Lat, 'f', -1, 64))
			query.Set("lon", strconv.FormatFloat(coords.Lon, 'f', -1, 64))
		}
	}

	var out models.AQIReading
	if err := h.get(ctx, "/environment/aqi", query, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

type crisisRequest struct {
	CrisisType string `json:"crisis_type"`
}

// TriggerCrisis implements Client.
func (h *HTTPClient) TriggerCrisis(ctx context.Context, crisisType string) (*models.CrisisAck, error) {
	var out models.CrisisAck
	if err := h.post(ctx, "/simulation/trigger-crisis", crisisRequest{CrisisType: crisisType}, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// RunAgentWorkflow implements Client.
func (h *HTTPClient) RunAgentWorkflow(ctx context.Context) error {
	return h.post(ctx, "/agent/run", nil, nil)
}
