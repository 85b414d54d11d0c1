// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"math"

	"batulens/config"
	deliverycontext "batulens/internal/delivery/context"
	"batulens/internal/domain/entity"
	domainerrors "batulens/internal/domain/errors"
	"batulens/internal/domain/repository"
	"batulens/internal/domain/scoring"
	"batulens/internal/domain/service"
	"batulens/internal/usecase"

	"golang.org/x/sync/errgroup"
)

// Fixed plot ranges for the strategy quadrant. The frontend relies on a
// stable chart frame, so the axes do not follow the data extent.
const (
	quadrantXMin = -100_000
	quadrantXMax = 2_500_000
	quadrantYMin = 1.0
	quadrantYMax = 5.2

	// Destinations with fewer reviews than this carry too much rating
	// noise to plot.
	quadrantMinReviews = 3
)

// analysisService implements the AnalysisUsecase interface.
type analysisService struct {
	analytics  service.AnalyticsSource
	visitRepo  repository.VisitRepository
	thresholds scoring.Thresholds
	logger     *slog.Logger
}

// NewAnalysisService is the constructor for analysisService.
func NewAnalysisService(
	cfg *config.Config,
	analytics service.AnalyticsSource,
	visitRepo repository.VisitRepository,
	logger *slog.Logger,
) usecase.AnalysisUsecase {
	return &analysisService{
		analytics: analytics,
		visitRepo: visitRepo,
		thresholds: scoring.Thresholds{
			HighVisits:   cfg.Visit.HighThreshold,
			MediumVisits: cfg.Visit.MediumThreshold,
		},
		logger: logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *analysisService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ReconciledDestinations fetches the upstream analysis and the local visit
// records concurrently and merges them. Either side failing degrades that
// side to an empty set instead of failing the whole page.
func (srv *analysisService) ReconciledDestinations(ctx context.Context) ([]*entity.Destination, error) {
	var (
		records []*entity.AnalysisRecord
		visits  []*entity.VisitRecord
	)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		fetched, err := srv.analytics.FetchAnalysis(groupCtx)
		if err != nil {
			srv.log(ctx).Warn("upstream analysis unavailable, serving visits only", slog.Any("error", err))

			return nil
		}
		records = fetched

		return nil
	})

	group.Go(func() error {
		listed, err := srv.visitRepo.ListAll(groupCtx)
		if err != nil {
			srv.log(ctx).Warn("visit records unavailable, serving analysis only", slog.Any("error", err))

			return nil
		}
		visits = listed

		return nil
	})

	// Errors are downgraded to empty sets above, so the group never fails.
	_ = group.Wait()

	return scoring.Reconcile(records, visits, srv.thresholds), nil
}

// parseComplaintLevel maps the query value to a complaint level. Empty and
// "all" mean no filtering.
func parseComplaintLevel(raw string) (entity.ComplaintLevel, error) {
	switch raw {
	case "", "all":
		return "", nil
	case string(entity.ComplaintLevelRendah):
		return entity.ComplaintLevelRendah, nil
	case string(entity.ComplaintLevelSedang):
		return entity.ComplaintLevelSedang, nil
	case string(entity.ComplaintLevelTinggi):
		return entity.ComplaintLevelTinggi, nil
	default:
		return "", domainerrors.ErrInvalidFilter
	}
}

// ListAnalysis returns a filtered, paginated page of reconciled destinations.
func (srv *analysisService) ListAnalysis(ctx context.Context, query usecase.AnalysisQuery) (*usecase.AnalysisOutput, error) {
	level, err := parseComplaintLevel(query.ComplaintLevel)
	if err != nil {
		return nil, err
	}

	destinations, err := srv.ReconciledDestinations(ctx)
	if err != nil {
		return nil, err
	}

	summary := usecase.AnalysisSummary{TotalWisata: len(destinations)}
	for _, dest := range destinations {
		switch dest.ComplaintLevel {
		case entity.ComplaintLevelRendah:
			summary.Rendah++
		case entity.ComplaintLevelSedang:
			summary.Sedang++
		case entity.ComplaintLevelTinggi:
			summary.Tinggi++
		}
	}

	filtered := scoring.FilterDestinations(destinations, level, query.Search)
	items, totalPages := scoring.Paginate(filtered, query.Page, query.PageSize)

	page := query.Page
	if page < 1 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize < 1 {
		pageSize = 10
	}

	return &usecase.AnalysisOutput{
		Destinations: items,
		Total:        len(filtered),
		Page:         page,
		PageSize:     pageSize,
		TotalPages:   totalPages,
		Summary:      summary,
	}, nil
}

// QuadrantData builds the visits-versus-rating scatter payload. Filter is
// one of "all", "high", "medium", "low" or empty.
func (srv *analysisService) QuadrantData(ctx context.Context, filter string) (*usecase.QuadrantOutput, error) {
	category, restrict := scoring.LevelFilterCategory(filter)
	if !restrict && filter != "" && filter != "all" {
		return nil, domainerrors.ErrInvalidFilter
	}

	destinations, err := srv.ReconciledDestinations(ctx)
	if err != nil {
		return nil, err
	}

	output := &usecase.QuadrantOutput{
		Points:  []usecase.QuadrantPoint{},
		XAxis:   usecase.QuadrantAxis{Min: quadrantXMin, Max: quadrantXMax},
		YAxis:   usecase.QuadrantAxis{Min: quadrantYMin, Max: quadrantYMax},
		Matched: []string{},
		Skipped: []string{},
		Filter:  filter,
	}

	var ratingSum, visitSum float64
	for _, dest := range destinations {
		if restrict && dest.VisitCategory != category {
			continue
		}
		if dest.TotalReviews < quadrantMinReviews || dest.VisitCount <= 0 {
			output.Skipped = append(output.Skipped, dest.Name)

			continue
		}

		output.Points = append(output.Points, usecase.QuadrantPoint{
			Name:        dest.Name,
			Rating:      dest.AverageRating,
			VisitCount:  dest.VisitCount,
			ReviewCount: dest.TotalReviews,
		})
		output.Matched = append(output.Matched, dest.Name)
		ratingSum += dest.AverageRating
		visitSum += float64(dest.VisitCount)
	}

	output.TotalIncluded = len(output.Points)
	if output.TotalIncluded > 0 {
		n := float64(output.TotalIncluded)
		output.AvgRating = math.Round(ratingSum/n*100) / 100
		output.AvgVisits = math.Round(visitSum / n)
	}

	return output, nil
}
