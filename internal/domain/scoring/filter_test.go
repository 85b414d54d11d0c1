package scoring

import (
	"testing"

	"batulens/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDestinations() []*entity.Destination {
	return []*entity.Destination{
		{Name: "Jatim Park 2", VisitCount: 900_000, ComplaintLevel: entity.ComplaintLevelSedang},
		{Name: "Alun-Alun Kota Wisata Batu", VisitCount: 2_302_385, ComplaintLevel: entity.ComplaintLevelRendah},
		{Name: "Jatim Park 1", VisitCount: 752_484, ComplaintLevel: entity.ComplaintLevelRendah},
		{Name: "Coban Talun", VisitCount: 120_000, ComplaintLevel: entity.ComplaintLevelTinggi},
		{Name: "Goa Pinus", VisitCount: 3_064, ComplaintLevel: entity.ComplaintLevelSedang},
	}
}

func TestFilterDestinations_SortsByVisitCountDesc(t *testing.T) {
	got := FilterDestinations(sampleDestinations(), "", "")
	require.Len(t, got, 5)

	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i-1].VisitCount, got[i].VisitCount)
	}
	assert.Equal(t, "Alun-Alun Kota Wisata Batu", got[0].Name)
}

func TestFilterDestinations_LevelAndSearchCommute(t *testing.T) {
	destinations := sampleDestinations()

	levelThenSearch := FilterDestinations(
		FilterDestinations(destinations, entity.ComplaintLevelSedang, ""), "", "jatim",
	)
	searchThenLevel := FilterDestinations(
		FilterDestinations(destinations, "", "jatim"), entity.ComplaintLevelSedang, "",
	)

	require.Equal(t, len(levelThenSearch), len(searchThenLevel))
	for i := range levelThenSearch {
		assert.Equal(t, levelThenSearch[i].Name, searchThenLevel[i].Name)
	}
	require.Len(t, levelThenSearch, 1)
	assert.Equal(t, "Jatim Park 2", levelThenSearch[0].Name)
}

func TestFilterDestinations_SearchIsCaseInsensitive(t *testing.T) {
	got := FilterDestinations(sampleDestinations(), "", "JATIM")
	require.Len(t, got, 2)
	assert.Equal(t, "Jatim Park 2", got[0].Name)
	assert.Equal(t, "Jatim Park 1", got[1].Name)
}

func TestPaginate_PartitionsExactly(t *testing.T) {
	sorted := FilterDestinations(sampleDestinations(), "", "")

	var rebuilt []*entity.Destination
	page := 1
	for {
		items, totalPages := Paginate(sorted, page, 2)
		require.Equal(t, 3, totalPages)
		if len(items) == 0 {
			break
		}
		rebuilt = append(rebuilt, items...)
		page++
	}

	require.Len(t, rebuilt, len(sorted))
	for i := range sorted {
		assert.Same(t, sorted[i], rebuilt[i])
	}
}

func TestPaginate_OutOfRange(t *testing.T) {
	items, totalPages := Paginate(sampleDestinations(), 9, 2)
	assert.Empty(t, items)
	assert.Equal(t, 3, totalPages)
}
