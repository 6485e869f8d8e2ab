package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(value string) time.Time {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCovers(t *testing.T) {
	record := LeaveRecord{
		StartDate: day("2026-03-02"),
		EndDate:   day("2026-03-04"),
	}

	cases := []struct {
		name string
		date time.Time
		want bool
	}{
		{"day before range", day("2026-03-01"), false},
		{"first day", day("2026-03-02"), true},
		{"middle day", day("2026-03-03"), true},
		{"last day", day("2026-03-04"), true},
		{"day after range", day("2026-03-05"), false},
		{
			// 23:30 local is already the next day in UTC; the wall-clock
			// day is what counts.
			"late evening in a western zone",
			time.Date(2026, 3, 2, 23, 30, 0, 0, time.FixedZone("UTC-5", -5*3600)),
			true,
		},
		{
			"late evening before the range in a western zone",
			time.Date(2026, 3, 1, 23, 30, 0, 0, time.FixedZone("UTC-5", -5*3600)),
			false,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, record.Covers(c.date))
		})
	}
}
