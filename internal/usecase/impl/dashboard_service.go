package impl

import (
	"context"
	"log/slog"
	"math"
	"sort"

	deliverycontext "batulens/internal/delivery/context"
	"batulens/internal/domain/entity"
	domainerrors "batulens/internal/domain/errors"
	"batulens/internal/domain/scoring"
	"batulens/internal/domain/service"
	"batulens/internal/errors"
	"batulens/internal/usecase"
)

// topVisitedLimit caps the "most visited" chart so the bar chart stays
// readable.
const topVisitedLimit = 10

// dashboardService implements the DashboardUsecase interface.
type dashboardService struct {
	analysis  usecase.AnalysisUsecase
	analytics service.AnalyticsSource
	logger    *slog.Logger
}

// NewDashboardService is the constructor for dashboardService.
func NewDashboardService(
	analysis usecase.AnalysisUsecase,
	analytics service.AnalyticsSource,
	logger *slog.Logger,
) usecase.DashboardUsecase {
	return &dashboardService{
		analysis:  analysis,
		analytics: analytics,
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *dashboardService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Dashboard aggregates the full reconciled data set into overview metrics
// and chart payloads.
func (srv *dashboardService) Dashboard(ctx context.Context) (*usecase.DashboardOutput, error) {
	destinations, err := srv.analysis.ReconciledDestinations(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build dashboard")
	}

	return &usecase.DashboardOutput{
		Metrics:            buildMetrics(destinations),
		ComplaintLevels:    complaintLevelSeries(destinations),
		VisitCategories:    visitCategorySeries(destinations),
		TopVisited:         topVisitedSeries(destinations),
		SentimentAverages:  sentimentSeries(destinations),
		RatingDistribution: ratingDistributionSeries(destinations),
	}, nil
}

// FilterData restricts the dashboard to one visit level while reporting the
// level counts over the unfiltered set.
func (srv *dashboardService) FilterData(ctx context.Context, filter string) (*usecase.FilterOutput, error) {
	category, restrict := scoring.LevelFilterCategory(filter)
	if !restrict && filter != "" && filter != "all" {
		return nil, domainerrors.ErrInvalidFilter
	}

	destinations, err := srv.analysis.ReconciledDestinations(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build filter data")
	}

	levelCounts := map[string]int{"high": 0, "medium": 0, "low": 0}
	for _, dest := range destinations {
		switch dest.VisitCategory {
		case entity.VisitCategoryTinggi:
			levelCounts["high"]++
		case entity.VisitCategorySedang:
			levelCounts["medium"]++
		case entity.VisitCategoryRendah:
			levelCounts["low"]++
		}
	}

	selected := destinations
	if restrict {
		selected = make([]*entity.Destination, 0, len(destinations))
		for _, dest := range destinations {
			if dest.VisitCategory == category {
				selected = append(selected, dest)
			}
		}
	}

	return &usecase.FilterOutput{
		Filter:          filter,
		VisitLevelCount: levelCounts,
		Metrics:         buildMetrics(selected),
		Destinations:    selected,
	}, nil
}

// ComplaintAnalysis proxies the upstream keyword breakdown. An upstream
// that demands interactive login degrades to a placeholder payload so the
// page still renders.
func (srv *dashboardService) ComplaintAnalysis(ctx context.Context, filter string) (*usecase.ComplaintAnalysisOutput, error) {
	if _, ok := scoring.LevelFilterCategory(filter); !ok && filter != "" && filter != "all" {
		return nil, domainerrors.ErrInvalidFilter
	}

	payload, err := srv.analytics.FetchComplaintAnalysis(ctx, filter)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUpstreamAuthRequired) {
			srv.log(ctx).Warn("complaint analysis upstream requires authentication", slog.String("filter", filter))

			return &usecase.ComplaintAnalysisOutput{
				Data:         map[string]any{},
				RequiresAuth: true,
			}, nil
		}

		return nil, errors.Wrap(err, "failed to fetch complaint analysis")
	}

	return &usecase.ComplaintAnalysisOutput{Data: payload}, nil
}

// Stats returns the dataset-wide totals from the pipeline.
func (srv *dashboardService) Stats(ctx context.Context) (*service.Stats, error) {
	stats, err := srv.analytics.FetchStats(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch stats")
	}

	return stats, nil
}

func buildMetrics(destinations []*entity.Destination) usecase.DashboardMetrics {
	metrics := usecase.DashboardMetrics{TotalWisata: len(destinations)}

	var ratingSum float64
	var rated int
	for _, dest := range destinations {
		metrics.TotalReviews += dest.TotalReviews
		metrics.TotalVisits += dest.VisitCount
		if dest.ComplaintLevel == entity.ComplaintLevelTinggi {
			metrics.ComplaintTinggi++
		}
		if dest.TotalReviews > 0 {
			ratingSum += dest.AverageRating
			rated++
		}
	}
	if rated > 0 {
		metrics.AvgRating = math.Round(ratingSum/float64(rated)*100) / 100
	}

	return metrics
}

func complaintLevelSeries(destinations []*entity.Destination) usecase.ChartSeries {
	counts := map[entity.ComplaintLevel]int{}
	for _, dest := range destinations {
		counts[dest.ComplaintLevel]++
	}

	return usecase.ChartSeries{
		Labels: []string{"rendah", "sedang", "tinggi"},
		Values: []float64{
			float64(counts[entity.ComplaintLevelRendah]),
			float64(counts[entity.ComplaintLevelSedang]),
			float64(counts[entity.ComplaintLevelTinggi]),
		},
	}
}

func visitCategorySeries(destinations []*entity.Destination) usecase.ChartSeries {
	counts := map[entity.VisitCategory]int{}
	for _, dest := range destinations {
		counts[dest.VisitCategory]++
	}

	return usecase.ChartSeries{
		Labels: []string{"RENDAH", "SEDANG", "TINGGI"},
		Values: []float64{
			float64(counts[entity.VisitCategoryRendah]),
			float64(counts[entity.VisitCategorySedang]),
			float64(counts[entity.VisitCategoryTinggi]),
		},
	}
}

func topVisitedSeries(destinations []*entity.Destination) usecase.ChartSeries {
	ranked := make([]*entity.Destination, len(destinations))
	copy(ranked, destinations)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].VisitCount != ranked[j].VisitCount {
			return ranked[i].VisitCount > ranked[j].VisitCount
		}

		return ranked[i].Name < ranked[j].Name
	})

	if len(ranked) > topVisitedLimit {
		ranked = ranked[:topVisitedLimit]
	}

	series := usecase.ChartSeries{
		Labels: make([]string, 0, len(ranked)),
		Values: make([]float64, 0, len(ranked)),
	}
	for _, dest := range ranked {
		series.Labels = append(series.Labels, dest.Name)
		series.Values = append(series.Values, float64(dest.VisitCount))
	}

	return series
}

func sentimentSeries(destinations []*entity.Destination) usecase.ChartSeries {
	series := usecase.ChartSeries{
		Labels: []string{"positive", "neutral", "negative"},
		Values: []float64{0, 0, 0},
	}
	if len(destinations) == 0 {
		return series
	}

	for _, dest := range destinations {
		series.Values[0] += dest.Sentiment.Positive
		series.Values[1] += dest.Sentiment.Neutral
		series.Values[2] += dest.Sentiment.Negative
	}

	n := float64(len(destinations))
	for i := range series.Values {
		series.Values[i] = math.Round(series.Values[i]/n*100) / 100
	}

	return series
}

func ratingDistributionSeries(destinations []*entity.Destination) usecase.ChartSeries {
	series := usecase.ChartSeries{
		Labels: []string{"1", "2", "3", "4", "5"},
		Values: []float64{0, 0, 0, 0, 0},
	}
	for _, dest := range destinations {
		for star, count := range dest.RatingDistribution {
			if star >= 1 && star <= 5 {
				series.Values[star-1] += float64(count)
			}
		}
	}

	return series
}
