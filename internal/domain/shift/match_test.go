package shift

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mkShift(id, start, end string, status Status) ShiftAssignment {
	return ShiftAssignment{
		ID:        id,
		StartTime: start,
		EndTime:   end,
		Status:    status,
	}
}

// minutes is a test helper for readable "now" values.
func minutes(h, m int) int {
	return h*60 + m
}

func TestMatchCurrent_NoCandidates(t *testing.T) {
	assert.Nil(t, MatchCurrent(nil, minutes(9, 0)))
	assert.Nil(t, MatchCurrent([]ShiftAssignment{}, minutes(9, 0)))
}

func TestMatchCurrent_SkipsCancelledAndSwapped(t *testing.T) {
	candidates := []ShiftAssignment{
		mkShift("a", "09:00", "17:00", StatusCancelled),
		mkShift("b", "09:00", "17:00", StatusSwapped),
	}
	assert.Nil(t, MatchCurrent(candidates, minutes(9, 0)))
}

func TestMatchCurrent_SingleShift(t *testing.T) {
	candidates := []ShiftAssignment{
		mkShift("a", "09:00", "17:00", StatusScheduled),
	}
	got := MatchCurrent(candidates, minutes(8, 55))
	require.NotNil(t, got)
	assert.Equal(t, "a", got.ID)
}

func TestMatchCurrent_PicksNearestToNow(t *testing.T) {
	candidates := []ShiftAssignment{
		mkShift("morning", "06:00", "10:00", StatusCompleted),
		mkShift("evening", "18:00", "22:00", StatusScheduled),
	}

	got := MatchCurrent(candidates, minutes(17, 50))
	require.NotNil(t, got)
	assert.Equal(t, "evening", got.ID)

	got = MatchCurrent(candidates, minutes(7, 0))
	require.NotNil(t, got)
	assert.Equal(t, "morning", got.ID)
}

func TestMatchCurrent_InsideIntervalWins(t *testing.T) {
	candidates := []ShiftAssignment{
		mkShift("early", "06:00", "09:00", StatusCompleted),
		mkShift("current", "09:00", "17:00", StatusScheduled),
	}
	got := MatchCurrent(candidates, minutes(12, 0))
	require.NotNil(t, got)
	assert.Equal(t, "current", got.ID)
}

func TestMatchCurrent_TieBreaksByStartTime(t *testing.T) {
	// Equidistant: now 12:00, one shift ends 11:00, another starts 13:00.
	candidates := []ShiftAssignment{
		mkShift("later", "13:00", "17:00", StatusScheduled),
		mkShift("earlier", "07:00", "11:00", StatusScheduled),
	}
	got := MatchCurrent(candidates, minutes(12, 0))
	require.NotNil(t, got)
	assert.Equal(t, "earlier", got.ID)
}

func TestMatchCurrent_OvernightCoversEarlyMorning(t *testing.T) {
	candidates := []ShiftAssignment{
		mkShift("night", "22:00", "06:00", StatusInProgress),
	}
	got := MatchCurrent(candidates, minutes(1, 30))
	require.NotNil(t, got)
	assert.Equal(t, "night", got.ID)
}

func TestScheduledHours(t *testing.T) {
	cases := []struct {
		start, end string
		want       float64
	}{
		{"09:00", "17:00", 8},
		{"17:00", "01:00", 8},  // overnight
		{"23:50", "01:30", 100.0 / 60.0},
		{"08:00", "08:30", 0.5},
	}
	for _, c := range cases {
		got := ScheduledHours(mkShift("x", c.start, c.end, StatusScheduled))
		assert.InDelta(t, c.want, got, 1e-9, "ScheduledHours(%s-%s)", c.start, c.end)
	}
}

func TestScheduledHours_MalformedTimes(t *testing.T) {
	assert.Zero(t, ScheduledHours(mkShift("x", "9:00", "17:00", StatusScheduled)))
}
