package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAnalysisPayload_NestedEnvelope(t *testing.T) {
	body := []byte(`{
		"success": true,
		"analysis_data": {
			"all_wisata_analysis": [
				{
					"wisata_name": "Jatim Park 1",
					"avg_rating": 4.6,
					"total_reviews": 120,
					"positive_ratio": 62.0,
					"neutral_ratio": 23.0,
					"complaint_ratio": 15.0,
					"main_complaints": [
						{"display_text": "Antrian panjang", "date": "2024-06-01"}
					]
				}
			]
		}
	}`)

	records, err := normalizeAnalysisPayload(body)
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0]
	assert.Equal(t, "Jatim Park 1", got.Name)
	assert.Equal(t, 4.6, got.AverageRating)
	assert.Equal(t, 120, got.TotalReviews)
	require.True(t, got.HasExplicitSentiment())
	assert.Equal(t, 15.0, *got.NegativePct)
	require.Len(t, got.Complaints, 1)
	assert.Equal(t, "Antrian panjang", got.Complaints[0].Text)
	assert.Equal(t, "2024-06-01", got.Complaints[0].Date)
}

func TestNormalizeAnalysisPayload_FlatListVariants(t *testing.T) {
	variants := [][]byte{
		[]byte(`{"all_wisata_analysis": [{"name": "Goa Pinus", "average_rating": 4.2, "total_reviews": 8}]}`),
		[]byte(`{"data": [{"name": "Goa Pinus", "average_rating": 4.2, "total_reviews": 8}]}`),
		[]byte(`[{"name": "Goa Pinus", "average_rating": 4.2, "total_reviews": 8}]`),
	}

	for i, body := range variants {
		records, err := normalizeAnalysisPayload(body)
		require.NoError(t, err, "variant %d", i)
		require.Len(t, records, 1, "variant %d", i)
		assert.Equal(t, "Goa Pinus", records[0].Name)
		assert.Equal(t, 4.2, records[0].AverageRating)
		assert.False(t, records[0].HasExplicitSentiment())
	}
}

func TestNormalizeAnalysisPayload_NegativeFallbackChain(t *testing.T) {
	body := []byte(`{"data": [
		{"name": "A", "total_reviews": 10, "negative_ratio": 12.5},
		{"name": "B", "total_reviews": 10, "negative_percentage": 30},
		{"name": "C", "total_reviews": 40, "negative_reviews": 10},
		{"name": "D", "total_reviews": 10}
	]}`)

	records, err := normalizeAnalysisPayload(body)
	require.NoError(t, err)
	require.Len(t, records, 4)

	require.NotNil(t, records[0].NegativePct)
	assert.Equal(t, 12.5, *records[0].NegativePct)
	require.NotNil(t, records[1].NegativePct)
	assert.Equal(t, 30.0, *records[1].NegativePct)
	require.NotNil(t, records[2].NegativePct)
	assert.Equal(t, 25.0, *records[2].NegativePct)
	assert.Nil(t, records[3].NegativePct)
}

func TestNormalizeAnalysisPayload_StringComplaintsAndDistribution(t *testing.T) {
	body := []byte(`{"data": [{
		"name": "Coban Rondo",
		"avg_rating": 3.9,
		"total_reviews": 25,
		"main_complaints": ["jalan rusak", "parkir sempit"],
		"rating_distribution": {"5": 10, "4": 8, "3": 4, "2": 2, "1": 1}
	}]}`)

	records, err := normalizeAnalysisPayload(body)
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0]
	require.Len(t, got.Complaints, 2)
	assert.Equal(t, "jalan rusak", got.Complaints[0].Text)
	assert.Equal(t, map[int]int{5: 10, 4: 8, 3: 4, 2: 2, 1: 1}, got.RatingDistribution)
}

func TestNormalizeAnalysisPayload_FullTextComplaints(t *testing.T) {
	body := []byte(`{"data": [{
		"name": "Alun-Alun Kota Batu",
		"avg_rating": 4.2,
		"total_reviews": 40,
		"main_complaints": [
			{"full_text": "toilet kotor dan bau", "date": "2024-07-12"},
			{"full_text": "antrian loket sangat panjang padahal loket banyak yang tutup", "display_text": "antrian loket sangat panjang padahal loket banyak y...", "date": "2024-07-13"}
		]
	}]}`)

	records, err := normalizeAnalysisPayload(body)
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0]
	require.Len(t, got.Complaints, 2)
	// full_text-only objects still decode, and full_text beats the
	// truncated display_text when both are present.
	assert.Equal(t, "toilet kotor dan bau", got.Complaints[0].Text)
	assert.Equal(t, "antrian loket sangat panjang padahal loket banyak yang tutup", got.Complaints[1].Text)
	assert.Equal(t, "2024-07-12", got.Complaints[0].Date)
}

func TestNormalizeAnalysisPayload_Malformed(t *testing.T) {
	_, err := normalizeAnalysisPayload([]byte(`"just a string"`))
	assert.Error(t, err)
}

func TestNormalizeStatsPayload(t *testing.T) {
	stats, err := normalizeStatsPayload([]byte(`{"total_reviews": 22000, "total_wisata": 30}`))
	require.NoError(t, err)
	assert.Equal(t, 22000, stats.TotalReviews)
	assert.Equal(t, 30, stats.TotalDestinations)

	stats, err = normalizeStatsPayload([]byte(`{"total_reviews": 5, "total_destinations": 2}`))
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalDestinations)
}
