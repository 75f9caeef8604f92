package jobs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNextMidnightAdvancesDaily(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)

	first := nextMidnight(now)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), first)

	// a handler running at its scheduled time reschedules for the next day
	second := nextMidnight(first)
	assert.Equal(t, first.Add(24*time.Hour), second)
	assert.True(t, second.After(first))
}

func TestNextMidnightNeverSchedulesInThePast(t *testing.T) {
	almostMidnight := time.Date(2026, 3, 14, 23, 59, 59, 0, time.UTC)
	runAt := nextMidnight(almostMidnight)
	assert.True(t, runAt.After(almostMidnight))
}

func TestMaintenanceTaskIDDedupesPerDay(t *testing.T) {
	morning := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 3, 15, 23, 0, 0, 0, time.UTC)
	tomorrow := morning.Add(24 * time.Hour)

	// same day collapses to one task, the next day gets a fresh ID
	assert.Equal(t, maintenanceTaskID("audit-retention", morning), maintenanceTaskID("audit-retention", evening))
	assert.NotEqual(t, maintenanceTaskID("audit-retention", morning), maintenanceTaskID("audit-retention", tomorrow))

	assert.Equal(t, "auto-archive-2026-03-15", maintenanceTaskID("auto-archive", morning))
}
