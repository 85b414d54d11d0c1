package scoring

import (
	"sort"
	"strings"

	"batulens/internal/domain/entity"
)

// stopWords are generic tourism terms stripped before the loosest matching
// step. They carry no identity: "Wisata Taman X" and "Taman Wisata X Batu"
// name the same place.
var stopWords = map[string]struct{}{
	"wisata":   {},
	"tempat":   {},
	"objek":    {},
	"wana":     {},
	"taman":    {},
	"park":     {},
	"desa":     {},
	"air":      {},
	"terjun":   {},
	"kota":     {},
	"batu":     {},
	"malang":   {},
	"rekreasi": {},
}

// MatchVisitCount finds the best-effort visit count for an analysis name.
// Rules fire in priority order across the whole record set; the first record
// the active rule matches wins. Returns (0, false) when nothing matches.
//
// Callers must pass records in a deterministic order (ListAll sorts by name)
// so repeated runs assign identical counts.
func MatchVisitCount(name string, records []*entity.VisitRecord) (int64, bool) {
	lowered := strings.ToLower(name)
	stripped := stripGenericTokens(lowered)

	type matcher func(record *entity.VisitRecord) bool
	rules := []matcher{
		// 1. Exact equality.
		func(r *entity.VisitRecord) bool { return r.Name == name },
		// 2. Case-insensitive equality.
		func(r *entity.VisitRecord) bool { return strings.ToLower(r.Name) == lowered },
		// 3. Bidirectional substring containment, lower-cased.
		func(r *entity.VisitRecord) bool {
			other := strings.ToLower(r.Name)

			return strings.Contains(other, lowered) || strings.Contains(lowered, other)
		},
		// 4. Bidirectional containment after stripping generic terms and
		// edition markers ("Jatim Park 1" vs "Jatim Park I").
		func(r *entity.VisitRecord) bool {
			other := stripGenericTokens(strings.ToLower(r.Name))
			if len(stripped) < 3 || len(other) < 3 {
				return false
			}

			return strings.Contains(other, stripped) || strings.Contains(stripped, other)
		},
	}

	for _, rule := range rules {
		for _, record := range records {
			if rule(record) {
				return record.Count, true
			}
		}
	}

	return 0, false
}

// stripGenericTokens removes punctuation, stop words, and edition markers
// (digits, roman numerals) from a lower-cased name and rejoins the rest.
func stripGenericTokens(lowered string) string {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == ' ' {
			return r
		}

		return ' '
	}, lowered)

	var kept []string
	for _, token := range strings.Fields(cleaned) {
		if _, generic := stopWords[token]; generic {
			continue
		}
		if isEditionToken(token) {
			continue
		}
		kept = append(kept, token)
	}

	return strings.Join(kept, " ")
}

// isEditionToken reports whether the token is a bare number or a short roman
// numeral, the usual ways sequels are written ("2", "II").
func isEditionToken(token string) bool {
	digits, romans := true, true
	for _, r := range token {
		if r < '0' || r > '9' {
			digits = false
		}
		if r != 'i' && r != 'v' && r != 'x' {
			romans = false
		}
	}

	return (digits || romans) && len(token) <= 4
}

// Reconcile joins the analysis aggregates with the kunjungan store and
// produces fully classified destination records. The full pipeline runs per
// record: visit-count matching, sentiment repair, rating-distribution
// synthesis, then tier classification.
func Reconcile(analysis []*entity.AnalysisRecord, visits []*entity.VisitRecord, t Thresholds) []*entity.Destination {
	// Sort a copy by name so matching does not depend on store order.
	ordered := make([]*entity.VisitRecord, len(visits))
	copy(ordered, visits)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Name < ordered[j].Name })

	destinations := make([]*entity.Destination, 0, len(analysis))
	for _, record := range analysis {
		count, _ := MatchVisitCount(record.Name, ordered)
		sentiment := InferSentiment(record)
		genuine := GenuineComplaints(record.Complaints)

		destinations = append(destinations, &entity.Destination{
			Name:               record.Name,
			AverageRating:      record.AverageRating,
			TotalReviews:       record.TotalReviews,
			VisitCount:         count,
			Sentiment:          sentiment,
			ComplaintLevel:     ComplaintLevelFor(sentiment.Negative),
			VisitCategory:      VisitCategoryFor(count, t),
			Complaints:         genuine,
			RatingDistribution: SynthesizeDistribution(record, sentiment),
		})
	}

	return destinations
}
