package civil

import (
	"encoding/json"
	"testing"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in   string
		want TimeOfDay
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"09:30", 570},
		{"23:59", 1439},
	}
	for _, tt := range tests {
		got, err := ParseTimeOfDay(tt.in)
		if err != nil {
			t.Errorf("ParseTimeOfDay(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTimeOfDay(%q) = %d, want %d", tt.in, got, tt.want)
		}
		if got.String() != tt.in {
			t.Errorf("String() = %q, want %q", got.String(), tt.in)
		}
	}
}

func TestParseTimeOfDay_Rejects(t *testing.T) {
	bad := []string{"", "9:00", "09:0", "24:00", "12:60", "ab:cd", "09-30", "09:3a", "-1:00"}
	for _, s := range bad {
		if _, err := ParseTimeOfDay(s); err == nil {
			t.Errorf("ParseTimeOfDay(%q) should fail", s)
		}
	}
}

func TestTimeOfDayArithmetic(t *testing.T) {
	start := NewTimeOfDay(9, 0)
	end := start.AddMinutes(30)
	if end.String() != "09:30" {
		t.Errorf("09:00 + 30m = %s, want 09:30", end)
	}
	if !start.Before(end) || !end.After(start) {
		t.Error("ordering methods disagree with AddMinutes")
	}
	if end.Minutes() != 570 {
		t.Errorf("Minutes() = %d, want 570", end.Minutes())
	}
}

func TestTimeOfDayJSONRoundTrip(t *testing.T) {
	tod := NewTimeOfDay(14, 5)
	b, err := json.Marshal(tod)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(b) != `"14:05"` {
		t.Errorf("marshalled as %s, want quoted HH:MM", b)
	}

	var back TimeOfDay
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back != tod {
		t.Errorf("round trip changed %s to %s", tod, back)
	}
}

func TestTimeOfDayValueSortsLexicographically(t *testing.T) {
	early, _ := NewTimeOfDay(9, 0).Value()
	late, _ := NewTimeOfDay(14, 0).Value()
	if early.(string) >= late.(string) {
		t.Errorf("expected %q < %q as text", early, late)
	}
}

func TestTimeOfDayScan(t *testing.T) {
	var tod TimeOfDay
	if err := tod.Scan("10:30"); err != nil {
		t.Fatalf("Scan string: %v", err)
	}
	if tod != NewTimeOfDay(10, 30) {
		t.Errorf("scan = %s, want 10:30", tod)
	}
	if err := tod.Scan([]byte("11:00")); err != nil {
		t.Fatalf("Scan bytes: %v", err)
	}
	if tod != NewTimeOfDay(11, 0) {
		t.Errorf("scan = %s, want 11:00", tod)
	}
	if err := tod.Scan(630); err == nil {
		t.Error("scanning an int should fail")
	}
}
