package services

import (
	"testing"

	"Backend-WMS-ROI/src/models"

	"github.com/stretchr/testify/assert"
)

func TestSortByPriorityHighFirst(t *testing.T) {
	recs := []models.Recommendation{
		{Title: "cycle counting", Priority: models.PriorityLow},
		{Title: "pick-path optimization", Priority: models.PriorityHigh},
		{Title: "barcode scanning", Priority: models.PriorityMedium},
		{Title: "slotting review", Priority: models.PriorityHigh},
	}

	sortByPriority(recs)

	assert.Equal(t, "pick-path optimization", recs[0].Title)
	assert.Equal(t, "slotting review", recs[1].Title) // stable within a priority
	assert.Equal(t, "barcode scanning", recs[2].Title)
	assert.Equal(t, "cycle counting", recs[3].Title)
}

func TestSortByPriorityUnknownLast(t *testing.T) {
	recs := []models.Recommendation{
		{Title: "legacy import", Priority: "urgent"},
		{Title: "cycle counting", Priority: models.PriorityLow},
	}

	sortByPriority(recs)

	assert.Equal(t, "cycle counting", recs[0].Title)
	assert.Equal(t, "legacy import", recs[1].Title)
}
