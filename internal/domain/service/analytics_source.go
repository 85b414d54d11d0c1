package service

import (
	"context"

	"batulens/internal/domain/entity"
)

// Stats holds the dataset-wide totals reported by the analytics pipeline.
type Stats struct {
	TotalReviews      int `json:"total_reviews"`
	TotalDestinations int `json:"total_destinations"`
}

// AnalyticsSource is the upstream analytics pipeline consumed over HTTP.
// Implementations normalize each endpoint's wire shape into typed records
// at the boundary; callers never see the raw payload variants.
type AnalyticsSource interface {
	// FetchAnalysis returns the per-destination aggregates.
	FetchAnalysis(ctx context.Context) ([]*entity.AnalysisRecord, error)

	// FetchStats returns dataset totals.
	FetchStats(ctx context.Context) (*Stats, error)

	// FetchComplaintAnalysis returns the keyword-category complaint payload
	// for the given visit-level filter. The payload is served as-is; its
	// internals belong to the pipeline.
	FetchComplaintAnalysis(ctx context.Context, filter string) (map[string]any, error)
}
