package scoring

import (
	"strings"

	"batulens/internal/domain/entity"
)

// positiveWords filters out complaint entries that are actually praise the
// pipeline misclassified. A complaint only counts as genuine when its text
// contains none of these.
var positiveWords = []string{
	"bagus",
	"indah",
	"recommended",
	"puas",
	"senang",
	"mantap",
	"keren",
	"menarik",
	"seru",
	"asik",
	"luar biasa",
}

// IsGenuineComplaint reports whether the complaint text survives the
// positive-word exclusion filter.
func IsGenuineComplaint(text string) bool {
	lowered := strings.ToLower(text)
	for _, word := range positiveWords {
		if strings.Contains(lowered, word) {
			return false
		}
	}

	return strings.TrimSpace(lowered) != ""
}

// GenuineComplaints returns the complaints that survive the exclusion filter,
// preserving order.
func GenuineComplaints(complaints []entity.Complaint) []entity.Complaint {
	var genuine []entity.Complaint
	for _, c := range complaints {
		if IsGenuineComplaint(c.Text) {
			genuine = append(genuine, c)
		}
	}

	return genuine
}

// sentimentInput carries everything a sentiment rule may look at.
type sentimentInput struct {
	rating     float64
	explicit   *entity.Sentiment // full triple from the pipeline, if present
	hasGenuine bool
}

// sentimentRule is one row of the ordered rule table. The first rule whose
// condition holds produces the raw triple; later rules are not consulted.
type sentimentRule struct {
	name    string
	applies func(in sentimentInput) bool
	derive  func(in sentimentInput) entity.Sentiment
}

var sentimentRules = []sentimentRule{
	{
		name:    "perfect rating without genuine complaints",
		applies: func(in sentimentInput) bool { return !in.hasGenuine && in.rating >= 5.0 },
		derive:  func(sentimentInput) entity.Sentiment { return entity.Sentiment{Positive: 100} },
	},
	{
		name:    "quiet high rating",
		applies: func(in sentimentInput) bool { return !in.hasGenuine && in.rating >= 4.0 },
		derive:  func(sentimentInput) entity.Sentiment { return entity.Sentiment{Neutral: 100} },
	},
	{
		name:    "quiet low rating",
		applies: func(in sentimentInput) bool { return !in.hasGenuine },
		derive: func(in sentimentInput) entity.Sentiment {
			switch {
			case in.rating >= 3.5:
				return entity.Sentiment{Neutral: 70, Negative: 30}
			case in.rating >= 3.0:
				return entity.Sentiment{Neutral: 50, Negative: 50}
			default:
				return entity.Sentiment{Neutral: 30, Negative: 70}
			}
		},
	},
	{
		name:    "explicit pipeline percentages",
		applies: func(in sentimentInput) bool { return in.explicit != nil },
		derive:  func(in sentimentInput) entity.Sentiment { return *in.explicit },
	},
	{
		name:    "rating band with genuine complaints",
		applies: func(sentimentInput) bool { return true },
		derive: func(in sentimentInput) entity.Sentiment {
			switch {
			case in.rating >= 4.5:
				return entity.Sentiment{Positive: 60, Neutral: 20, Negative: 20}
			case in.rating >= 4.0:
				return entity.Sentiment{Positive: 45, Neutral: 30, Negative: 25}
			case in.rating >= 3.5:
				return entity.Sentiment{Positive: 30, Neutral: 30, Negative: 40}
			default:
				return entity.Sentiment{Positive: 10, Neutral: 30, Negative: 60}
			}
		},
	},
}

// InferSentiment produces a consistent sentiment triple for a destination.
// The pipeline's own percentages win when present and plausible; everything
// else is estimated from the rating and whether genuine complaints exist.
// The result is clamped and rescaled so the three values sum to exactly 100.
func InferSentiment(record *entity.AnalysisRecord) entity.Sentiment {
	in := sentimentInput{
		rating:     record.AverageRating,
		hasGenuine: len(GenuineComplaints(record.Complaints)) > 0,
	}
	if record.HasExplicitSentiment() {
		in.explicit = &entity.Sentiment{
			Positive: *record.PositivePct,
			Neutral:  *record.NeutralPct,
			Negative: *record.NegativePct,
		}
	}

	var raw entity.Sentiment
	for _, rule := range sentimentRules {
		if rule.applies(in) {
			raw = rule.derive(in)

			break
		}
	}

	// A very negative triple on a near-perfect rating is contradictory
	// source data; substitute a moderate triple instead of trusting it.
	if raw.Negative > 70 && in.rating >= 4.5 {
		raw = entity.Sentiment{Positive: 50, Neutral: 30, Negative: 20}
	}

	return normalizeSentiment(raw)
}

// normalizeSentiment clamps each percentage to [0,100] and rescales the
// triple proportionally so it sums to exactly 100.
func normalizeSentiment(s entity.Sentiment) entity.Sentiment {
	s.Positive = clampPct(s.Positive)
	s.Neutral = clampPct(s.Neutral)
	s.Negative = clampPct(s.Negative)

	sum := s.Sum()
	if sum <= 0 {
		return entity.Sentiment{Neutral: 100}
	}

	scale := 100 / sum

	return entity.Sentiment{
		Positive: s.Positive * scale,
		Neutral:  s.Neutral * scale,
		Negative: s.Negative * scale,
	}
}

func clampPct(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}

	return v
}
