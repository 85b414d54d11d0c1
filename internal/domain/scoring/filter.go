package scoring

import (
	"sort"
	"strings"

	"batulens/internal/domain/entity"
)

// FilterDestinations narrows the destination set by an exact complaint level
// and a case-insensitive name substring. Either criterion may be empty. The
// two filters commute; the result is a fresh slice sorted descending by
// visit count (names ascending break ties so output order is stable).
func FilterDestinations(destinations []*entity.Destination, level entity.ComplaintLevel, search string) []*entity.Destination {
	needle := strings.ToLower(strings.TrimSpace(search))

	filtered := make([]*entity.Destination, 0, len(destinations))
	for _, d := range destinations {
		if level != "" && d.ComplaintLevel != level {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(d.Name), needle) {
			continue
		}
		filtered = append(filtered, d)
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		if filtered[i].VisitCount != filtered[j].VisitCount {
			return filtered[i].VisitCount > filtered[j].VisitCount
		}

		return filtered[i].Name < filtered[j].Name
	})

	return filtered
}

// Paginate slices the list into fixed-size pages. Pages are 1-based; an
// out-of-range page yields an empty slice. Concatenating every page in order
// reproduces the input exactly.
func Paginate(destinations []*entity.Destination, page, pageSize int) (items []*entity.Destination, totalPages int) {
	if pageSize <= 0 {
		pageSize = 10
	}
	if page <= 0 {
		page = 1
	}

	totalPages = (len(destinations) + pageSize - 1) / pageSize
	start := (page - 1) * pageSize
	if start >= len(destinations) {
		return []*entity.Destination{}, totalPages
	}

	end := start + pageSize
	if end > len(destinations) {
		end = len(destinations)
	}

	return destinations[start:end], totalPages
}
