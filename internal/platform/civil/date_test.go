package civil

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-09-07")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if d.String() != "2026-09-07" {
		t.Errorf("String() = %q, want 2026-09-07", d.String())
	}

	for _, bad := range []string{"", "07-09-2026", "2026/09/07", "2026-13-01", "not a date"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) should fail", bad)
		}
	}
}

func TestDateWeekday(t *testing.T) {
	tests := []struct {
		date string
		want int
	}{
		{"2026-09-07", 1}, // Monday
		{"2026-09-08", 2},
		{"2026-09-12", 6},
		{"2026-09-13", 7}, // Sunday maps to 7, not 0
	}
	for _, tt := range tests {
		d, err := ParseDate(tt.date)
		if err != nil {
			t.Fatalf("ParseDate(%s): %v", tt.date, err)
		}
		if got := d.Weekday(); got != tt.want {
			t.Errorf("Weekday(%s) = %d, want %d", tt.date, got, tt.want)
		}
	}
}

func TestDateAddDaysAndOrdering(t *testing.T) {
	d, _ := ParseDate("2026-02-28")
	next := d.AddDays(1)
	if next.String() != "2026-03-01" {
		t.Errorf("AddDays over month boundary = %s, want 2026-03-01", next)
	}
	if !d.Before(next) || !next.After(d) || d.Equal(next) {
		t.Error("ordering methods disagree with AddDays")
	}
	if !d.Equal(d.AddDays(0)) {
		t.Error("AddDays(0) should equal the original date")
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d, _ := ParseDate("2026-09-07")
	b, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `"2026-09-07"` {
		t.Errorf("marshalled as %s, want quoted YYYY-MM-DD", b)
	}

	var back Date
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !back.Equal(d) {
		t.Errorf("round trip changed %s to %s", d, back)
	}
}

func TestDateScan(t *testing.T) {
	want, _ := ParseDate("2026-09-07")

	var fromTime Date
	if err := fromTime.Scan(time.Date(2026, 9, 7, 15, 4, 5, 0, time.UTC)); err != nil {
		t.Fatalf("Scan time.Time: %v", err)
	}
	if !fromTime.Equal(want) {
		t.Errorf("scan from time.Time = %s, want %s", fromTime, want)
	}

	var fromText Date
	if err := fromText.Scan("2026-09-07"); err != nil {
		t.Fatalf("Scan string: %v", err)
	}
	if !fromText.Equal(want) {
		t.Errorf("scan from string = %s, want %s", fromText, want)
	}

	var bad Date
	if err := bad.Scan(42); err == nil {
		t.Error("scanning an int should fail")
	}
}
