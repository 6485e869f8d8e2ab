package timeutil

import (
	"testing"
)

func TestToMinutes(t *testing.T) {
	cases := []struct {
		input string
		want  int
		ok    bool
	}{
		{"00:00", 0, true},
		{"09:30", 570, true},
		{"23:59", 1439, true},
		{"24:00", 0, false},
		{"9:30", 0, false},
		{"09:60", 0, false},
		{"0930", 0, false},
		{"", 0, false},
		{"ab:cd", 0, false},
	}
	for _, c := range cases {
		got, err := ToMinutes(c.input)
		if c.ok {
			if err != nil {
				t.Errorf("ToMinutes(%q) returned error %v, want %d", c.input, err, c.want)
				continue
			}
			if got != c.want {
				t.Errorf("ToMinutes(%q) = %d, want %d", c.input, got, c.want)
			}
		} else if err == nil {
			t.Errorf("ToMinutes(%q) = %d, want error", c.input, got)
		}
	}
}

func TestFormatMinutes(t *testing.T) {
	cases := []struct {
		input int
		want  string
	}{
		{0, "00:00"},
		{570, "09:30"},
		{1439, "23:59"},
		{1440, "00:00"},
		{1500, "01:00"},
	}
	for _, c := range cases {
		if got := FormatMinutes(c.input); got != c.want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestDuration(t *testing.T) {
	cases := []struct {
		start, end string
		want       int
	}{
		{"09:00", "17:00", 480},
		{"17:00", "01:00", 480}, // overnight wrap
		{"23:50", "01:30", 100}, // overnight wrap, short session
		{"00:00", "00:00", 1440},
		{"08:15", "08:45", 30},
	}
	for _, c := range cases {
		got, err := Duration(c.start, c.end)
		if err != nil {
			t.Fatalf("Duration(%q, %q) returned error: %v", c.start, c.end, err)
		}
		if got != c.want {
			t.Errorf("Duration(%q, %q) = %d, want %d", c.start, c.end, got, c.want)
		}
	}
}

func TestDurationMalformed(t *testing.T) {
	if _, err := Duration("9:00", "17:00"); err == nil {
		t.Error("Duration with malformed start should return error")
	}
	if _, err := Duration("09:00", "25:00"); err == nil {
		t.Error("Duration with malformed end should return error")
	}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     string
		want                           bool
	}{
		{"identical ranges", "09:00", "17:00", "09:00", "17:00", true},
		{"partial overlap", "09:00", "17:00", "16:00", "20:00", true},
		{"contained", "09:00", "17:00", "10:00", "11:00", true},
		{"single shared minute", "09:00", "12:01", "12:00", "15:00", true},
		{"touching endpoints", "09:00", "12:00", "12:00", "15:00", false},
		{"disjoint", "09:00", "12:00", "13:00", "15:00", false},
		{"overnight vs morning tail", "22:00", "06:00", "05:00", "09:00", true},
		{"overnight vs evening head", "22:00", "06:00", "20:00", "23:00", true},
		{"overnight disjoint", "22:00", "06:00", "10:00", "14:00", false},
		{"both overnight", "22:00", "02:00", "23:00", "03:00", true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Overlaps(c.aStart, c.aEnd, c.bStart, c.bEnd)
			if err != nil {
				t.Fatalf("Overlaps returned error: %v", err)
			}
			if got != c.want {
				t.Errorf("Overlaps(%q, %q, %q, %q) = %v, want %v",
					c.aStart, c.aEnd, c.bStart, c.bEnd, got, c.want)
			}
		})
	}
}

// A non-empty range always overlaps itself.
func TestOverlapsSelf(t *testing.T) {
	ranges := [][2]string{
		{"09:00", "17:00"},
		{"17:00", "01:00"},
		{"23:59", "00:01"},
		{"00:00", "23:59"},
	}
	for _, r := range ranges {
		got, err := Overlaps(r[0], r[1], r[0], r[1])
		if err != nil {
			t.Fatalf("Overlaps returned error: %v", err)
		}
		if !got {
			t.Errorf("Overlaps(%q, %q) against itself = false, want true", r[0], r[1])
		}
	}
}
