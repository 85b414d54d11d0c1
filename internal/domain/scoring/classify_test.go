package scoring

import (
	"testing"

	"batulens/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func TestComplaintLevelFor_Boundaries(t *testing.T) {
	tests := []struct {
		negative float64
		want     entity.ComplaintLevel
	}{
		{negative: 0, want: entity.ComplaintLevelRendah},
		{negative: 9.99, want: entity.ComplaintLevelRendah},
		{negative: 10, want: entity.ComplaintLevelSedang},
		{negative: 20, want: entity.ComplaintLevelSedang},
		{negative: 20.01, want: entity.ComplaintLevelTinggi},
		{negative: 100, want: entity.ComplaintLevelTinggi},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ComplaintLevelFor(tt.negative), "negative %.2f", tt.negative)
	}
}

func TestVisitCategoryFor_Boundaries(t *testing.T) {
	thresholds := Thresholds{HighVisits: 1_000_000, MediumVisits: 500_000}

	assert.Equal(t, entity.VisitCategoryRendah, VisitCategoryFor(0, thresholds))
	assert.Equal(t, entity.VisitCategoryRendah, VisitCategoryFor(499_999, thresholds))
	assert.Equal(t, entity.VisitCategorySedang, VisitCategoryFor(500_000, thresholds))
	assert.Equal(t, entity.VisitCategorySedang, VisitCategoryFor(999_999, thresholds))
	assert.Equal(t, entity.VisitCategoryTinggi, VisitCategoryFor(1_000_000, thresholds))
}

func TestLevelFilterCategory(t *testing.T) {
	category, ok := LevelFilterCategory("high")
	assert.True(t, ok)
	assert.Equal(t, entity.VisitCategoryTinggi, category)

	category, ok = LevelFilterCategory("medium")
	assert.True(t, ok)
	assert.Equal(t, entity.VisitCategorySedang, category)

	category, ok = LevelFilterCategory("low")
	assert.True(t, ok)
	assert.Equal(t, entity.VisitCategoryRendah, category)

	_, ok = LevelFilterCategory("all")
	assert.False(t, ok)

	_, ok = LevelFilterCategory("bogus")
	assert.False(t, ok)
}
