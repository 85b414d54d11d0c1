package usecase

import (
	"context"

	"batulens/internal/domain/entity"
)

// AnalysisQuery carries the list filters for the main analysis table.
type AnalysisQuery struct {
	ComplaintLevel string
	Search         string
	Page           int
	PageSize       int
}

// AnalysisOutput is the paginated analysis listing with summary counts.
type AnalysisOutput struct {
	Destinations []*entity.Destination `json:"data"`
	Total        int                   `json:"total"`
	Page         int                   `json:"page"`
	PageSize     int                   `json:"page_size"`
	TotalPages   int                   `json:"total_pages"`
	Summary      AnalysisSummary       `json:"summary"`
}

// AnalysisSummary counts destinations per complaint level over the full
// (unpaginated) result set.
type AnalysisSummary struct {
	TotalWisata int `json:"total_wisata"`
	Rendah      int `json:"rendah"`
	Sedang      int `json:"sedang"`
	Tinggi      int `json:"tinggi"`
}

// QuadrantPoint is a single destination plotted on the visits/rating plane.
type QuadrantPoint struct {
	Name        string  `json:"name"`
	Rating      float64 `json:"rating"`
	VisitCount  int64   `json:"visit_count"`
	ReviewCount int     `json:"review_count"`
}

// QuadrantAxis describes a fixed plot range so the frontend renders a
// stable chart regardless of the data extent.
type QuadrantAxis struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// QuadrantOutput is the scatter-plot payload for the strategy quadrant.
type QuadrantOutput struct {
	Points        []QuadrantPoint `json:"points"`
	XAxis         QuadrantAxis    `json:"x_axis"`
	YAxis         QuadrantAxis    `json:"y_axis"`
	AvgRating     float64         `json:"avg_rating"`
	AvgVisits     float64         `json:"avg_visits"`
	Matched       []string        `json:"matched"`
	Skipped       []string        `json:"skipped"`
	Filter        string          `json:"filter"`
	TotalIncluded int             `json:"total_included"`
}

// AnalysisUsecase serves the reconciled destination analytics.
type AnalysisUsecase interface {
	// ListAnalysis fetches upstream review analytics, reconciles them with
	// the locally managed visit records, and returns a filtered page.
	ListAnalysis(ctx context.Context, query AnalysisQuery) (*AnalysisOutput, error)

	// QuadrantData returns the visits-versus-rating scatter payload,
	// optionally restricted to one visit level filter.
	QuadrantData(ctx context.Context, filter string) (*QuadrantOutput, error)

	// ReconciledDestinations returns the full reconciled data set without
	// pagination, for callers that aggregate over the whole set.
	ReconciledDestinations(ctx context.Context) ([]*entity.Destination, error)
}
