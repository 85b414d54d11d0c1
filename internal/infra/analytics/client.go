// Package analytics is the HTTP client for the upstream analysis pipeline.
// Each endpoint's wire shape is normalized into typed records right here at
// the boundary, so the rest of the service never sniffs payload variants.
package analytics

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"batulens/config"
	"batulens/internal/domain/entity"
	domainerrors "batulens/internal/domain/errors"
	"batulens/internal/domain/service"

	"github.com/pkg/errors"
)

type client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient builds the analytics source from configuration.
func NewClient(cfg *config.Config, logger *slog.Logger) service.AnalyticsSource {
	return &client{
		baseURL: strings.TrimRight(cfg.Analytics.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Analytics.Timeout,
		},
		logger: logger,
	}
}

// FetchAnalysis returns the per-destination aggregates.
func (c *client) FetchAnalysis(ctx context.Context) ([]*entity.AnalysisRecord, error) {
	body, err := c.getJSON(ctx, "/api/analysis", nil)
	if err != nil {
		return nil, err
	}

	records, err := normalizeAnalysisPayload(body)
	if err != nil {
		return nil, domainerrors.ErrUpstreamBadPayload.WithDetails(err.Error())
	}

	return records, nil
}

// FetchStats returns dataset totals.
func (c *client) FetchStats(ctx context.Context) (*service.Stats, error) {
	body, err := c.getJSON(ctx, "/api/stats", nil)
	if err != nil {
		return nil, err
	}

	stats, err := normalizeStatsPayload(body)
	if err != nil {
		return nil, domainerrors.ErrUpstreamBadPayload.WithDetails(err.Error())
	}

	return stats, nil
}

// FetchComplaintAnalysis returns the keyword-category complaint payload for
// the given visit-level filter.
func (c *client) FetchComplaintAnalysis(ctx context.Context, filter string) (map[string]any, error) {
	body, err := c.getJSON(ctx, "/api/complaint_analysis", url.Values{"filter": {filter}})
	if err != nil {
		return nil, err
	}

	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, domainerrors.ErrUpstreamBadPayload.WithDetails(err.Error())
	}

	return payload, nil
}

// getJSON performs the request and applies the shared failure taxonomy:
// HTML bodies and 401/403 mean the upstream session expired, any other
// non-2xx or transport error means the pipeline is unavailable.
func (c *client) getJSON(ctx context.Context, path string, query url.Values) ([]byte, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build analytics request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Analytics request failed",
			slog.String("path", path),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrUpstreamUnavailable.WithDetails(err.Error())
	}
	defer resp.Body.Close()

	// A login redirect page instead of JSON is an auth failure, not a
	// parse error.
	if strings.Contains(resp.Header.Get("Content-Type"), "text/html") {
		return nil, domainerrors.ErrUpstreamAuthRequired.WithDetails("received HTML response from " + path)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, domainerrors.ErrUpstreamAuthRequired.WithDetails(resp.Status)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, domainerrors.ErrUpstreamUnavailable.WithDetails(resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domainerrors.ErrUpstreamUnavailable.WithDetails(err.Error())
	}

	return body, nil
}
