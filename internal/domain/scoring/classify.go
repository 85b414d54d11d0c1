// Package scoring contains the pure business rules that merge the analysis
// aggregates with the kunjungan store and repair incomplete sentiment data.
// Everything in this package is deterministic and side-effect free.
package scoring

import "batulens/internal/domain/entity"

// Thresholds holds the visit-count boundaries separating the popularity tiers.
type Thresholds struct {
	HighVisits   int64
	MediumVisits int64
}

// ComplaintLevelFor maps a negative-sentiment percentage to its severity tier.
func ComplaintLevelFor(negative float64) entity.ComplaintLevel {
	switch {
	case negative > 20:
		return entity.ComplaintLevelTinggi
	case negative >= 10:
		return entity.ComplaintLevelSedang
	default:
		return entity.ComplaintLevelRendah
	}
}

// VisitCategoryFor maps a visit count to its popularity tier.
func VisitCategoryFor(count int64, t Thresholds) entity.VisitCategory {
	switch {
	case count >= t.HighVisits:
		return entity.VisitCategoryTinggi
	case count >= t.MediumVisits:
		return entity.VisitCategorySedang
	default:
		return entity.VisitCategoryRendah
	}
}

// LevelFilterCategory translates the API filter values (high/medium/low)
// to the visit category they select. Returns false for "all" and unknown values.
func LevelFilterCategory(filter string) (entity.VisitCategory, bool) {
	switch filter {
	case "high":
		return entity.VisitCategoryTinggi, true
	case "medium":
		return entity.VisitCategorySedang, true
	case "low":
		return entity.VisitCategoryRendah, true
	default:
		return "", false
	}
}
