package scoring

import (
	"testing"

	"batulens/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func distributionSum(dist map[int]int) int {
	sum := 0
	for _, count := range dist {
		sum += count
	}

	return sum
}

func TestSynthesizeDistribution_KeepsPipelineHistogram(t *testing.T) {
	record := &entity.AnalysisRecord{
		TotalReviews:       10,
		RatingDistribution: map[int]int{5: 6, 4: 3, 1: 1},
	}

	got := SynthesizeDistribution(record, entity.Sentiment{Neutral: 100})
	assert.Equal(t, map[int]int{5: 6, 4: 3, 3: 0, 2: 0, 1: 1}, got)
}

func TestSynthesizeDistribution_PerfectRatingAllFiveStar(t *testing.T) {
	record := &entity.AnalysisRecord{AverageRating: 5.0, TotalReviews: 50}

	got := SynthesizeDistribution(record, entity.Sentiment{Positive: 100})
	assert.Equal(t, map[int]int{5: 50, 4: 0, 3: 0, 2: 0, 1: 0}, got)
}

func TestSynthesizeDistribution_QuietHighRatingSkewsTop(t *testing.T) {
	record := &entity.AnalysisRecord{AverageRating: 4.3, TotalReviews: 40}

	got := SynthesizeDistribution(record, entity.Sentiment{Neutral: 100})
	require.Equal(t, 40, distributionSum(got))
	assert.Equal(t, 18, got[5])
	assert.Equal(t, 18, got[4])
	assert.Equal(t, 4, got[3])
}

func TestSynthesizeDistribution_WeightedSplitSumsExactly(t *testing.T) {
	sentiments := []entity.Sentiment{
		{Positive: 60, Neutral: 20, Negative: 20},
		{Positive: 45, Neutral: 30, Negative: 25},
		{Positive: 10, Neutral: 30, Negative: 60},
		{Neutral: 50, Negative: 50},
	}
	totals := []int{1, 7, 33, 100, 101}

	for _, sentiment := range sentiments {
		for _, total := range totals {
			record := &entity.AnalysisRecord{AverageRating: 3.8, TotalReviews: total}

			got := SynthesizeDistribution(record, sentiment)
			assert.Equal(t, total, distributionSum(got), "total %d sentiment %+v", total, sentiment)
			for star := 1; star <= 5; star++ {
				assert.GreaterOrEqual(t, got[star], 0)
			}
		}
	}
}

func TestSynthesizeDistribution_ZeroReviews(t *testing.T) {
	record := &entity.AnalysisRecord{AverageRating: 4.0}

	got := SynthesizeDistribution(record, entity.Sentiment{Neutral: 100})
	assert.Equal(t, map[int]int{5: 0, 4: 0, 3: 0, 2: 0, 1: 0}, got)
}
