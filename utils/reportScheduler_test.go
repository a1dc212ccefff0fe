package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReportWindow_YesterdayBounds(t *testing.T) {
	ref := time.Date(2026, time.March, 10, 8, 0, 0, 0, time.UTC)
	start, end := reportWindow(ref)

	assert.Equal(t, time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC), end)
}

func TestReportWindow_CalendarDayNotRolling(t *testing.T) {
	ref := time.Date(2026, time.March, 10, 23, 30, 0, 0, time.UTC)
	start, end := reportWindow(ref)

	// The window is yesterday's calendar day, so an order from earlier the
	// same day falls outside it while yesterday's late evening is inside
	sameDay := time.Date(2026, time.March, 10, 1, 0, 0, 0, time.UTC)
	assert.False(t, sameDay.Before(end))

	lateYesterday := time.Date(2026, time.March, 9, 23, 0, 0, 0, time.UTC)
	assert.True(t, !lateYesterday.Before(start) && lateYesterday.Before(end))
}
