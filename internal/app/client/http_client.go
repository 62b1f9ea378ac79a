package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/exp/slog"

	"gatepost/internal/app/client/config"
	"gatepost/internal/domain/transit"
)

type httpClient struct {
	client    *http.Client
	config    *config.Config
	log       *slog.Logger
	baseURL   string
	userAgent string
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) (*httpClient, error) {
	client := &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	scheme := "http://"
	if cfg.EnableTLS {
		scheme = "https://"
	}
	baseURL := scheme + cfg.ServerAddress

	return &httpClient{
		client:    client,
		config:    cfg,
		log:       log,
		baseURL:   baseURL,
		userAgent: "Gatepost-Client/1.0",
	}, nil
}

// HealthCheck verifies the server is reachable.
func (h *httpClient) HealthCheck(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.baseURL+"/api/v1/health", nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", h.userAgent)

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("server unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned status: %d", resp.StatusCode)
	}

	return nil
}

// List fetches all records, newest first.
func (h *httpClient) List(ctx context.Context) ([]transit.Record, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "/api/v1/records", nil)
	if err != nil {
		return nil, err
	}

	var listResp transit.ListResponse
	if err := h.parseResponse(resp, &listResp); err != nil {
		return nil, err
	}

	return listResp.Records, nil
}

// Create registers a new record on the server and returns its id.
func (h *httpClient) Create(ctx context.Context, draft transit.Draft) (int64, error) {
	resp, err := h.doRequest(ctx, http.MethodPost, "/api/v1/records", draft)
	if err != nil {
		return 0, err
	}

	var createResp struct {
		ID int64 `json:"id"`
	}
	if err := h.parseResponse(resp, &createResp); err != nil {
		return 0, err
	}

	return createResp.ID, nil
}

// RecordExit stamps the exit time for the record.
func (h *httpClient) RecordExit(ctx context.Context, id int64) error {
	resp, err := h.doRequest(ctx, http.MethodPost, fmt.Sprintf("/api/v1/records/%d/exit", id), nil)
	if err != nil {
		return err
	}

	return h.parseResponse(resp, nil)
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", h.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	return resp, nil
}

// parseResponse decodes a successful response into out and converts any
// non-2xx answer into an error carrying the server's own description.
func (h *httpClient) parseResponse(resp *http.Response, out interface{}) error {
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, errorDetail(raw))
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// errorDetail pulls the human-readable message out of a huma error body,
// falling back to the raw payload.
func errorDetail(raw []byte) string {
	var problem struct {
		Title  string `json:"title"`
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &problem); err == nil {
		if problem.Detail != "" {
			return problem.Detail
		}
		if problem.Title != "" {
			return problem.Title
		}
	}
	return strings.TrimSpace(string(raw))
}
