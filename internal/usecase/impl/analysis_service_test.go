package impl

import (
	"context"
	"testing"

	"batulens/internal/domain/entity"
	domainerrors "batulens/internal/domain/errors"
	mockRepo "batulens/internal/mocks/repository"
	mockService "batulens/internal/mocks/service"
	"batulens/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// analysisServiceFixtures holds all test dependencies for analysis service tests.
type analysisServiceFixtures struct {
	service   usecase.AnalysisUsecase
	analytics *mockService.MockAnalyticsSource
	visitRepo *mockRepo.MockVisitRepository
}

func createTestAnalysisService(t *testing.T) analysisServiceFixtures {
	analytics := mockService.NewMockAnalyticsSource(t)
	visitRepo := mockRepo.NewMockVisitRepository(t)
	service := NewAnalysisService(newTestConfig(), analytics, visitRepo, newDiscardLogger())

	return analysisServiceFixtures{
		service:   service,
		analytics: analytics,
		visitRepo: visitRepo,
	}
}

func TestAnalysisService_ListAnalysis(t *testing.T) {
	fx := createTestAnalysisService(t)

	ctx := context.Background()

	// The fetches run on a derived errgroup context, so match any context.
	fx.analytics.EXPECT().
		FetchAnalysis(mock.Anything).
		Return([]*entity.AnalysisRecord{
			{Name: "Jatim Park 1", AverageRating: 4.6, TotalReviews: 120},
			{Name: "Museum Angkut", AverageRating: 3.2, TotalReviews: 80},
		}, nil)

	fx.visitRepo.EXPECT().
		ListAll(mock.Anything).
		Return([]*entity.VisitRecord{
			{Name: "Jatim Park 1", Count: 1_500_000},
			{Name: "Museum Angkut", Count: 600_000},
		}, nil)

	output, err := fx.service.ListAnalysis(ctx, usecase.AnalysisQuery{})
	require.NoError(t, err)
	require.Len(t, output.Destinations, 2)

	// Sorted by visit count descending.
	assert.Equal(t, "Jatim Park 1", output.Destinations[0].Name)
	assert.Equal(t, int64(1_500_000), output.Destinations[0].VisitCount)
	assert.Equal(t, entity.VisitCategoryTinggi, output.Destinations[0].VisitCategory)
	assert.Equal(t, entity.VisitCategorySedang, output.Destinations[1].VisitCategory)

	// Quiet 3.2 rating splits neutral and negative, which lands in tinggi.
	assert.Equal(t, entity.ComplaintLevelTinggi, output.Destinations[1].ComplaintLevel)

	assert.Equal(t, 2, output.Total)
	assert.Equal(t, 1, output.Page)
	assert.Equal(t, 10, output.PageSize)
	assert.Equal(t, 1, output.TotalPages)
	assert.Equal(t, 2, output.Summary.TotalWisata)
	assert.Equal(t, 1, output.Summary.Rendah)
	assert.Equal(t, 1, output.Summary.Tinggi)
}

func TestAnalysisService_ListAnalysis_FiltersAndPaginates(t *testing.T) {
	fx := createTestAnalysisService(t)

	ctx := context.Background()

	fx.analytics.EXPECT().
		FetchAnalysis(mock.Anything).
		Return([]*entity.AnalysisRecord{
			{Name: "Alun-Alun Batu", AverageRating: 4.2, TotalReviews: 50},
			{Name: "Coban Rondo", AverageRating: 4.3, TotalReviews: 40},
			{Name: "Coban Talun", AverageRating: 2.5, TotalReviews: 30},
		}, nil)

	fx.visitRepo.EXPECT().
		ListAll(mock.Anything).
		Return([]*entity.VisitRecord{}, nil)

	output, err := fx.service.ListAnalysis(ctx, usecase.AnalysisQuery{
		ComplaintLevel: "rendah",
		Search:         "coban",
		Page:           1,
		PageSize:       1,
	})
	require.NoError(t, err)
	require.Len(t, output.Destinations, 1)
	assert.Equal(t, "Coban Rondo", output.Destinations[0].Name)
	assert.Equal(t, 1, output.Total)
	assert.Equal(t, 1, output.TotalPages)

	// Summary counts cover the whole set, not the filtered page.
	assert.Equal(t, 3, output.Summary.TotalWisata)
}

func TestAnalysisService_ListAnalysis_UpstreamDown(t *testing.T) {
	fx := createTestAnalysisService(t)

	ctx := context.Background()

	fx.analytics.EXPECT().
		FetchAnalysis(mock.Anything).
		Return(nil, domainerrors.ErrUpstreamUnavailable)

	fx.visitRepo.EXPECT().
		ListAll(mock.Anything).
		Return([]*entity.VisitRecord{
			{Name: "Jatim Park 1", Count: 1_500_000},
		}, nil)

	output, err := fx.service.ListAnalysis(ctx, usecase.AnalysisQuery{})
	require.NoError(t, err)
	assert.Empty(t, output.Destinations)
	assert.Equal(t, 0, output.Summary.TotalWisata)
}

func TestAnalysisService_ListAnalysis_VisitStoreDown(t *testing.T) {
	fx := createTestAnalysisService(t)

	ctx := context.Background()

	fx.analytics.EXPECT().
		FetchAnalysis(mock.Anything).
		Return([]*entity.AnalysisRecord{
			{Name: "Jatim Park 1", AverageRating: 4.6, TotalReviews: 120},
		}, nil)

	fx.visitRepo.EXPECT().
		ListAll(mock.Anything).
		Return(nil, errors.New("connection refused"))

	output, err := fx.service.ListAnalysis(ctx, usecase.AnalysisQuery{})
	require.NoError(t, err)
	require.Len(t, output.Destinations, 1)
	assert.Equal(t, int64(0), output.Destinations[0].VisitCount)
	assert.Equal(t, entity.VisitCategoryRendah, output.Destinations[0].VisitCategory)
}

func TestAnalysisService_ListAnalysis_InvalidLevel(t *testing.T) {
	fx := createTestAnalysisService(t)

	_, err := fx.service.ListAnalysis(context.Background(), usecase.AnalysisQuery{
		ComplaintLevel: "severe",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidFilter)
}

func TestAnalysisService_QuadrantData(t *testing.T) {
	fx := createTestAnalysisService(t)

	ctx := context.Background()

	fx.analytics.EXPECT().
		FetchAnalysis(mock.Anything).
		Return([]*entity.AnalysisRecord{
			{Name: "Jatim Park 1", AverageRating: 4.0, TotalReviews: 100},
			{Name: "Museum Angkut", AverageRating: 5.0, TotalReviews: 50},
			{Name: "Coban Rondo", AverageRating: 4.8, TotalReviews: 2},
			{Name: "Desa Wisata Punten", AverageRating: 4.1, TotalReviews: 10},
		}, nil)

	fx.visitRepo.EXPECT().
		ListAll(mock.Anything).
		Return([]*entity.VisitRecord{
			{Name: "Jatim Park 1", Count: 1_000_000},
			{Name: "Museum Angkut", Count: 500_000},
			{Name: "Coban Rondo", Count: 100_000},
		}, nil)

	output, err := fx.service.QuadrantData(ctx, "all")
	require.NoError(t, err)

	// Coban Rondo has too few reviews and Desa Wisata Punten has no visit
	// record; both are reported as skipped.
	require.Len(t, output.Points, 2)
	assert.ElementsMatch(t, []string{"Jatim Park 1", "Museum Angkut"}, output.Matched)
	assert.ElementsMatch(t, []string{"Coban Rondo", "Desa Wisata Punten"}, output.Skipped)

	assert.InDelta(t, 4.5, output.AvgRating, 0.001)
	assert.InDelta(t, 750_000, output.AvgVisits, 0.001)
	assert.Equal(t, 2, output.TotalIncluded)

	assert.Equal(t, float64(-100_000), output.XAxis.Min)
	assert.Equal(t, float64(2_500_000), output.XAxis.Max)
	assert.Equal(t, 1.0, output.YAxis.Min)
	assert.Equal(t, 5.2, output.YAxis.Max)
}

func TestAnalysisService_QuadrantData_LevelFilter(t *testing.T) {
	fx := createTestAnalysisService(t)

	ctx := context.Background()

	fx.analytics.EXPECT().
		FetchAnalysis(mock.Anything).
		Return([]*entity.AnalysisRecord{
			{Name: "Jatim Park 1", AverageRating: 4.0, TotalReviews: 100},
			{Name: "Museum Angkut", AverageRating: 5.0, TotalReviews: 50},
		}, nil)

	fx.visitRepo.EXPECT().
		ListAll(mock.Anything).
		Return([]*entity.VisitRecord{
			{Name: "Jatim Park 1", Count: 1_000_000},
			{Name: "Museum Angkut", Count: 500_000},
		}, nil)

	output, err := fx.service.QuadrantData(ctx, "high")
	require.NoError(t, err)
	require.Len(t, output.Points, 1)
	assert.Equal(t, "Jatim Park 1", output.Points[0].Name)
	assert.Equal(t, "high", output.Filter)
}

func TestAnalysisService_QuadrantData_InvalidFilter(t *testing.T) {
	fx := createTestAnalysisService(t)

	_, err := fx.service.QuadrantData(context.Background(), "huge")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidFilter)
}
