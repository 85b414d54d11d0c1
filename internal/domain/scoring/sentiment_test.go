package scoring

import (
	"testing"

	"batulens/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pct(v float64) *float64 { return &v }

func TestInferSentiment_PerfectRatingWithoutComplaints(t *testing.T) {
	record := &entity.AnalysisRecord{
		Name:          "Jatim Park 1",
		AverageRating: 5.0,
		TotalReviews:  50,
	}

	got := InferSentiment(record)
	assert.Equal(t, entity.Sentiment{Positive: 100}, got)
}

func TestInferSentiment_QuietHighRating(t *testing.T) {
	for _, rating := range []float64{4.0, 4.3, 4.9} {
		record := &entity.AnalysisRecord{AverageRating: rating}

		got := InferSentiment(record)
		assert.Equal(t, entity.Sentiment{Neutral: 100}, got, "rating %.1f", rating)
	}
}

func TestInferSentiment_QuietLowRatingBands(t *testing.T) {
	tests := []struct {
		rating float64
		want   entity.Sentiment
	}{
		{rating: 3.7, want: entity.Sentiment{Neutral: 70, Negative: 30}},
		{rating: 3.2, want: entity.Sentiment{Neutral: 50, Negative: 50}},
		{rating: 2.4, want: entity.Sentiment{Neutral: 30, Negative: 70}},
	}

	for _, tt := range tests {
		record := &entity.AnalysisRecord{AverageRating: tt.rating}

		got := InferSentiment(record)
		assert.Equal(t, tt.want, got, "rating %.1f", tt.rating)
	}
}

func TestInferSentiment_LowQuietRatingIsTinggi(t *testing.T) {
	// A 3.2 average with no complaint entries lands in the 50/50 band and
	// classifies as a high complaint level.
	record := &entity.AnalysisRecord{AverageRating: 3.2}

	got := InferSentiment(record)
	require.Equal(t, entity.Sentiment{Neutral: 50, Negative: 50}, got)
	assert.Equal(t, entity.ComplaintLevelTinggi, ComplaintLevelFor(got.Negative))
}

func TestInferSentiment_ExplicitPercentagesWin(t *testing.T) {
	record := &entity.AnalysisRecord{
		AverageRating: 4.2,
		PositivePct:   pct(55),
		NeutralPct:    pct(25),
		NegativePct:   pct(20),
		Complaints:    []entity.Complaint{{Text: "antrian terlalu panjang"}},
	}

	got := InferSentiment(record)
	assert.Equal(t, entity.Sentiment{Positive: 55, Neutral: 25, Negative: 20}, got)
}

func TestInferSentiment_GenuineComplaintsUseRatingBand(t *testing.T) {
	tests := []struct {
		rating float64
		want   entity.Sentiment
	}{
		{rating: 4.7, want: entity.Sentiment{Positive: 60, Neutral: 20, Negative: 20}},
		{rating: 4.1, want: entity.Sentiment{Positive: 45, Neutral: 30, Negative: 25}},
		{rating: 3.6, want: entity.Sentiment{Positive: 30, Neutral: 30, Negative: 40}},
		{rating: 3.0, want: entity.Sentiment{Positive: 10, Neutral: 30, Negative: 60}},
	}

	for _, tt := range tests {
		record := &entity.AnalysisRecord{
			AverageRating: tt.rating,
			Complaints:    []entity.Complaint{{Text: "toilet kotor dan bau"}},
		}

		got := InferSentiment(record)
		assert.Equal(t, tt.want, got, "rating %.1f", tt.rating)
	}
}

func TestInferSentiment_ContradictoryTripleReplaced(t *testing.T) {
	// 80% negative on a 4.6 average is contradictory source data; the
	// override substitutes the moderate triple.
	record := &entity.AnalysisRecord{
		AverageRating: 4.6,
		PositivePct:   pct(10),
		NeutralPct:    pct(10),
		NegativePct:   pct(80),
		Complaints:    []entity.Complaint{{Text: "harga tiket terlalu mahal"}},
	}

	got := InferSentiment(record)
	assert.Equal(t, entity.Sentiment{Positive: 50, Neutral: 30, Negative: 20}, got)
}

func TestInferSentiment_AlwaysSumsToOneHundred(t *testing.T) {
	records := []*entity.AnalysisRecord{
		{AverageRating: 5.0},
		{AverageRating: 4.4},
		{AverageRating: 3.3},
		{AverageRating: 1.2},
		{AverageRating: 4.8, Complaints: []entity.Complaint{{Text: "parkir sempit"}}},
		{AverageRating: 2.1, Complaints: []entity.Complaint{{Text: "jalan rusak"}}},
		{AverageRating: 4.0, PositivePct: pct(62.5), NeutralPct: pct(20.5), NegativePct: pct(30)},
		{AverageRating: 3.9, PositivePct: pct(-5), NeutralPct: pct(120), NegativePct: pct(15)},
	}

	for i, record := range records {
		got := InferSentiment(record)
		assert.InDelta(t, 100, got.Sum(), 0.5, "record %d", i)
		assert.GreaterOrEqual(t, got.Positive, 0.0)
		assert.GreaterOrEqual(t, got.Neutral, 0.0)
		assert.GreaterOrEqual(t, got.Negative, 0.0)
	}
}

func TestIsGenuineComplaint_FiltersPraise(t *testing.T) {
	assert.False(t, IsGenuineComplaint("Tempatnya bagus dan recommended"))
	assert.False(t, IsGenuineComplaint("Sangat puas, pemandangan indah"))
	assert.False(t, IsGenuineComplaint("   "))
	assert.True(t, IsGenuineComplaint("Antrian panjang, fasilitas kurang terawat"))
}

func TestGenuineComplaints_PreservesOrder(t *testing.T) {
	complaints := []entity.Complaint{
		{Text: "Antrian panjang"},
		{Text: "Mantap sekali"},
		{Text: "Harga mahal"},
	}

	got := GenuineComplaints(complaints)
	require.Len(t, got, 2)
	assert.Equal(t, "Antrian panjang", got[0].Text)
	assert.Equal(t, "Harga mahal", got[1].Text)
}
