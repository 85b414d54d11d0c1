// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// ComplaintLevel is the coarse severity tier derived from the negative
// sentiment percentage.
type ComplaintLevel string

const (
	ComplaintLevelRendah ComplaintLevel = "rendah"
	ComplaintLevelSedang ComplaintLevel = "sedang"
	ComplaintLevelTinggi ComplaintLevel = "tinggi"
)

// VisitCategory is the coarse popularity tier derived from visit counts.
type VisitCategory string

const (
	VisitCategoryRendah VisitCategory = "RENDAH"
	VisitCategorySedang VisitCategory = "SEDANG"
	VisitCategoryTinggi VisitCategory = "TINGGI"
)

// Sentiment holds the positive/neutral/negative percentage triple.
// After normalization the three values are non-negative and sum to 100.
type Sentiment struct {
	Positive float64 `json:"positive"`
	Neutral  float64 `json:"neutral"`
	Negative float64 `json:"negative"`
}

// Sum returns the total of the three percentages.
func (s Sentiment) Sum() float64 {
	return s.Positive + s.Neutral + s.Negative
}

// Complaint is a single complaint entry attached to a destination.
type Complaint struct {
	Text string `json:"text"`
	Date string `json:"date,omitempty"`
}

// Destination is the reconciled, classified per-destination record served
// to the dashboard and analysis views. It is derived on every load and
// never persisted.
type Destination struct {
	Name               string         `json:"name"`
	AverageRating      float64        `json:"average_rating"`
	TotalReviews       int            `json:"total_reviews"`
	VisitCount         int64          `json:"visit_count"`
	Sentiment          Sentiment      `json:"sentiment"`
	ComplaintLevel     ComplaintLevel `json:"complaint_level"`
	VisitCategory      VisitCategory  `json:"visit_category"`
	Complaints         []Complaint    `json:"complaints"`
	RatingDistribution map[int]int    `json:"rating_distribution"`
}

// AnalysisRecord is a destination aggregate as produced by the upstream
// analytics pipeline, after wire-shape normalization but before
// reconciliation and sentiment repair. Optional fields the pipeline may
// omit are pointers.
type AnalysisRecord struct {
	Name          string
	AverageRating float64
	TotalReviews  int

	// Explicit sentiment percentages when the pipeline provides them.
	PositivePct *float64
	NeutralPct  *float64
	NegativePct *float64

	Complaints         []Complaint
	RatingDistribution map[int]int
}

// HasExplicitSentiment reports whether the upstream record carried a full
// sentiment triple.
func (r *AnalysisRecord) HasExplicitSentiment() bool {
	return r.PositivePct != nil && r.NeutralPct != nil && r.NegativePct != nil
}
