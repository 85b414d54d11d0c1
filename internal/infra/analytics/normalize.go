package analytics

import (
	"encoding/json"
	"strconv"

	"batulens/internal/domain/entity"
	"batulens/internal/domain/service"

	"github.com/pkg/errors"
)

// analysisEnvelope covers every shape the pipeline has historically served
// the aggregates under. Exactly one of the lists is populated.
type analysisEnvelope struct {
	Success      bool `json:"success"`
	AnalysisData *struct {
		AllWisataAnalysis []rawAnalysisRecord `json:"all_wisata_analysis"`
	} `json:"analysis_data"`
	AllWisataAnalysis []rawAnalysisRecord `json:"all_wisata_analysis"`
	Data              []rawAnalysisRecord `json:"data"`
}

type rawAnalysisRecord struct {
	WisataName    string   `json:"wisata_name"`
	Name          string   `json:"name"`
	AvgRating     *float64 `json:"avg_rating"`
	AverageRating *float64 `json:"average_rating"`
	TotalReviews  int      `json:"total_reviews"`

	PositiveRatio *float64 `json:"positive_ratio"`
	NeutralRatio  *float64 `json:"neutral_ratio"`

	// The negative share has been served under several names; the first
	// present field wins, with a count-based fallback at the end.
	ComplaintRatio  *float64 `json:"complaint_ratio"`
	ComplaintPct    *float64 `json:"complaint_percentage"`
	NegativeRatio   *float64 `json:"negative_ratio"`
	NegativePct     *float64 `json:"negative_percentage"`
	NegativeReviews *int     `json:"negative_reviews"`

	MainComplaints     json.RawMessage `json:"main_complaints"`
	RatingDistribution map[string]int  `json:"rating_distribution"`
}

type rawComplaint struct {
	Text        string `json:"text"`
	FullText    string `json:"full_text"`
	DisplayText string `json:"display_text"`
	Date        string `json:"date"`
}

// normalizeAnalysisPayload maps any historical analysis wire shape to the
// internal records.
func normalizeAnalysisPayload(body []byte) ([]*entity.AnalysisRecord, error) {
	var raws []rawAnalysisRecord

	var envelope analysisEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil {
		switch {
		case envelope.AnalysisData != nil && envelope.AnalysisData.AllWisataAnalysis != nil:
			raws = envelope.AnalysisData.AllWisataAnalysis
		case envelope.AllWisataAnalysis != nil:
			raws = envelope.AllWisataAnalysis
		case envelope.Data != nil:
			raws = envelope.Data
		}
	}

	if raws == nil {
		// Oldest shape: a bare array.
		if err := json.Unmarshal(body, &raws); err != nil {
			return nil, errors.Wrap(err, "analysis payload matches no known shape")
		}
	}

	records := make([]*entity.AnalysisRecord, 0, len(raws))
	for i := range raws {
		records = append(records, raws[i].normalize())
	}

	return records, nil
}

func (raw *rawAnalysisRecord) normalize() *entity.AnalysisRecord {
	record := &entity.AnalysisRecord{
		Name:         firstNonEmpty(raw.WisataName, raw.Name),
		TotalReviews: raw.TotalReviews,
		Complaints:   parseComplaints(raw.MainComplaints),
	}

	if raw.AvgRating != nil {
		record.AverageRating = *raw.AvgRating
	} else if raw.AverageRating != nil {
		record.AverageRating = *raw.AverageRating
	}

	record.PositivePct = raw.PositiveRatio
	record.NeutralPct = raw.NeutralRatio
	record.NegativePct = raw.negativePercentage()

	if len(raw.RatingDistribution) > 0 {
		record.RatingDistribution = make(map[int]int, len(raw.RatingDistribution))
		for star, count := range raw.RatingDistribution {
			if n, err := strconv.Atoi(star); err == nil {
				record.RatingDistribution[n] = count
			}
		}
	}

	return record
}

func (raw *rawAnalysisRecord) negativePercentage() *float64 {
	for _, candidate := range []*float64{raw.ComplaintRatio, raw.ComplaintPct, raw.NegativeRatio, raw.NegativePct} {
		if candidate != nil {
			return candidate
		}
	}

	if raw.NegativeReviews != nil && raw.TotalReviews > 0 {
		computed := float64(*raw.NegativeReviews) / float64(raw.TotalReviews) * 100

		return &computed
	}

	return nil
}

// parseComplaints accepts both complaint shapes: a list of objects with
// text/full_text/display_text/date, or a bare list of strings. full_text
// carries the untruncated review, so it wins over the 120-char display_text.
func parseComplaints(raw json.RawMessage) []entity.Complaint {
	if len(raw) == 0 {
		return nil
	}

	var structured []rawComplaint
	if err := json.Unmarshal(raw, &structured); err == nil {
		complaints := make([]entity.Complaint, 0, len(structured))
		for _, c := range structured {
			complaints = append(complaints, entity.Complaint{
				Text: firstNonEmpty(c.FullText, c.Text, c.DisplayText),
				Date: c.Date,
			})
		}

		return complaints
	}

	var plain []string
	if err := json.Unmarshal(raw, &plain); err == nil {
		complaints := make([]entity.Complaint, 0, len(plain))
		for _, text := range plain {
			complaints = append(complaints, entity.Complaint{Text: text})
		}

		return complaints
	}

	return nil
}

type rawStats struct {
	TotalReviews      *int `json:"total_reviews"`
	TotalWisata       *int `json:"total_wisata"`
	TotalDestinations *int `json:"total_destinations"`
}

func normalizeStatsPayload(body []byte) (*service.Stats, error) {
	var raw rawStats
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, errors.Wrap(err, "stats payload matches no known shape")
	}

	stats := &service.Stats{}
	if raw.TotalReviews != nil {
		stats.TotalReviews = *raw.TotalReviews
	}
	switch {
	case raw.TotalWisata != nil:
		stats.TotalDestinations = *raw.TotalWisata
	case raw.TotalDestinations != nil:
		stats.TotalDestinations = *raw.TotalDestinations
	}

	return stats, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
