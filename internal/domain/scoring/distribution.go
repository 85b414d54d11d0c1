package scoring

import "batulens/internal/domain/entity"

// SynthesizeDistribution returns a per-star review histogram for the record.
// The pipeline's own histogram wins when present; otherwise one is derived
// from the repaired sentiment triple. The result always holds the keys 1..5,
// is non-negative, and sums exactly to TotalReviews.
func SynthesizeDistribution(record *entity.AnalysisRecord, sentiment entity.Sentiment) map[int]int {
	if len(record.RatingDistribution) > 0 {
		dist := make(map[int]int, 5)
		for star := 1; star <= 5; star++ {
			dist[star] = record.RatingDistribution[star]
		}

		return dist
	}

	total := record.TotalReviews
	dist := map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	if total <= 0 {
		return dist
	}

	// A perfect rating means every review was five stars.
	if record.AverageRating >= 5.0 && sentiment.Negative == 0 && sentiment.Neutral == 0 {
		dist[5] = total

		return dist
	}

	// A high rating with no complaint signal skews to the top bands.
	if sentiment.Neutral >= 100 && record.AverageRating >= 4.0 {
		dist[5] = int(float64(total) * 0.45)
		dist[4] = int(float64(total) * 0.45)
		dist[3] = total - dist[5] - dist[4]

		return dist
	}

	// Otherwise split the bands proportionally to the sentiment triple:
	// positive feeds 5-4 stars, neutral feeds 3, negative feeds 2-1.
	weights := map[int]float64{
		5: sentiment.Positive * 0.6,
		4: sentiment.Positive * 0.4,
		3: sentiment.Neutral,
		2: sentiment.Negative * 0.6,
		1: sentiment.Negative * 0.4,
	}

	assigned := 0
	largest, largestWeight := 3, -1.0
	for star := 5; star >= 1; star-- {
		count := int(float64(total) * weights[star] / 100)
		dist[star] = count
		assigned += count
		if weights[star] > largestWeight {
			largest, largestWeight = star, weights[star]
		}
	}

	// Flooring loses a few units; park the remainder in the largest band so
	// the histogram still sums to the review count.
	dist[largest] += total - assigned

	return dist
}
