package shift

import (
	"sort"

	"github.com/Naveen-M-V/HRMS-Updated-sub001/internal/pkg/timeutil"
)

// MatchCurrent picks the single assignment considered current for a clock
// event at nowMinutes (minutes since midnight). Candidates are assumed to
// already be same-day; cancelled and swapped assignments are skipped. When
// several candidates remain, the one whose interval is nearest to now wins;
// ties go to the earliest start time. Returns nil when nothing matches;
// callers fall back to an unscheduled classification, never an error.
func MatchCurrent(candidates []ShiftAssignment, nowMinutes int) *ShiftAssignment {
	active := make([]ShiftAssignment, 0, len(candidates))
	for _, c := range candidates {
		if c.Status.Active() {
			active = append(active, c)
		}
	}
	if len(active) == 0 {
		return nil
	}

	sort.SliceStable(active, func(i, j int) bool {
		di := distanceToNow(active[i], nowMinutes)
		dj := distanceToNow(active[j], nowMinutes)
		if di != dj {
			return di < dj
		}
		si, _ := timeutil.ToMinutes(active[i].StartTime)
		sj, _ := timeutil.ToMinutes(active[j].StartTime)
		return si < sj
	})

	matched := active[0]
	return &matched
}

// distanceToNow is zero when now falls inside the shift's interval,
// otherwise the gap in minutes to the nearer edge. Unparseable times sort
// last rather than failing the match.
func distanceToNow(s ShiftAssignment, nowMinutes int) int {
	start, err := timeutil.ToMinutes(s.StartTime)
	if err != nil {
		return timeutil.MinutesPerDay
	}
	end, err := timeutil.ToMinutes(s.EndTime)
	if err != nil {
		return timeutil.MinutesPerDay
	}
	if end <= start {
		end += timeutil.MinutesPerDay
	}

	// An overnight shift started yesterday still covers the early minutes of
	// today.
	for _, now := range []int{nowMinutes, nowMinutes + timeutil.MinutesPerDay} {
		if now >= start && now < end {
			return 0
		}
	}

	dist := absInt(nowMinutes - start)
	if d := absInt(nowMinutes - end); d < dist {
		dist = d
	}
	if d := absInt(nowMinutes + timeutil.MinutesPerDay - end); d < dist {
		dist = d
	}
	return dist
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// ScheduledHours is the planned length of the shift in hours, from start to
// end with overnight wrap. The shift's break allowance is not subtracted
// here; callers that want break-net figures subtract BreakDuration
// themselves.
func ScheduledHours(s ShiftAssignment) float64 {
	minutes, err := timeutil.Duration(s.StartTime, s.EndTime)
	if err != nil {
		return 0
	}
	return float64(minutes) / 60.0
}
