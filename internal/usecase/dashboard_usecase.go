package usecase

import (
	"context"

	"batulens/internal/domain/entity"
	"batulens/internal/domain/service"
)

// DashboardMetrics are the headline numbers on the overview page.
type DashboardMetrics struct {
	TotalWisata     int     `json:"total_wisata"`
	TotalReviews    int     `json:"total_reviews"`
	TotalVisits     int64   `json:"total_visits"`
	AvgRating       float64 `json:"avg_rating"`
	ComplaintTinggi int     `json:"complaint_tinggi"`
}

// ChartSeries is a generic label/value pairing consumed by the frontend
// chart components.
type ChartSeries struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// DashboardOutput bundles the metrics with the chart payloads.
type DashboardOutput struct {
	Metrics            DashboardMetrics `json:"metrics"`
	ComplaintLevels    ChartSeries      `json:"complaint_levels"`
	VisitCategories    ChartSeries      `json:"visit_categories"`
	TopVisited         ChartSeries      `json:"top_visited"`
	SentimentAverages  ChartSeries      `json:"sentiment_averages"`
	RatingDistribution ChartSeries      `json:"rating_distribution"`
}

// FilterOutput is the dashboard payload restricted to one visit level,
// plus the level counts over the unfiltered set so the filter chips can
// show totals.
type FilterOutput struct {
	Filter          string                `json:"filter"`
	VisitLevelCount map[string]int        `json:"visit_level_counts"`
	Metrics         DashboardMetrics      `json:"metrics"`
	Destinations    []*entity.Destination `json:"data"`
}

// ComplaintAnalysisOutput wraps the upstream complaint breakdown. When the
// upstream requires interactive authentication the payload degrades to a
// placeholder instead of failing the whole page.
type ComplaintAnalysisOutput struct {
	Data         map[string]any `json:"data"`
	RequiresAuth bool           `json:"requires_auth"`
}

// DashboardUsecase aggregates reconciled data for the overview pages.
type DashboardUsecase interface {
	Dashboard(ctx context.Context) (*DashboardOutput, error)
	FilterData(ctx context.Context, filter string) (*FilterOutput, error)
	ComplaintAnalysis(ctx context.Context, filter string) (*ComplaintAnalysisOutput, error)
	Stats(ctx context.Context) (*service.Stats, error)
}
