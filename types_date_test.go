package finance

import (
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := NewDate(2025, 7, 31)
	d2 := NewDate(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestNewDate_Normalizes(t *testing.T) {
	if got, want := NewDate(2025, time.February, 29), NewDate(2025, time.March, 1); got != want {
		t.Errorf("NewDate(2025, 2, 29) = %v, want %v", got, want)
	}
	if got, want := NewDate(2025, time.March, 0), NewDate(2025, time.February, 28); got != want {
		t.Errorf("NewDate(2025, 3, 0) = %v, want %v", got, want)
	}
}

func TestParseDate(t *testing.T) {
	today := Today()

	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"15-01-2025", NewDate(2025, time.January, 15), false},
		{"1-7-2025", NewDate(2025, time.July, 1), false},
		{" 01-01-2025 ", NewDate(2025, time.January, 1), false},
		{"29-02-2024", NewDate(2024, time.February, 29), false},
		{"29-02-2025", Date{}, true},
		{"2025-01-15", Date{}, true},
		{"15/01/2025", Date{}, true},
		{"15-01-25", Date{}, true},
		{"invalid-date", Date{}, true},
		{"", Date{}, true},

		// Relative Duration Format
		{"0d", today, false},
		{"-1d", today.Add(-1), false},
		{"+1d", today.Add(1), false},
		{"1d", Date{}, true},
		{"-2w", today.Add(-14), false},
		{"+1m", NewDate(today.Year(), today.Month()+1, today.Day()), false},
		{"-1q", NewDate(today.Year(), today.Month()-3, today.Day()), false},
		{"-1y", NewDate(today.Year()-1, today.Month(), today.Day()), false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got != tt.expected {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDate_String(t *testing.T) {
	if got, want := NewDate(2025, time.March, 5).String(), "05-03-2025"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestDate_StartOfEndOf(t *testing.T) {
	d := NewDate(2025, time.August, 14) // a Thursday

	tests := []struct {
		period     Period
		start, end Date
	}{
		{Daily, d, d},
		{Weekly, NewDate(2025, time.August, 11), NewDate(2025, time.August, 17)},
		{Monthly, NewDate(2025, time.August, 1), NewDate(2025, time.August, 31)},
		{Quarterly, NewDate(2025, time.July, 1), NewDate(2025, time.September, 30)},
		{Yearly, NewDate(2025, time.January, 1), NewDate(2025, time.December, 31)},
	}
	for _, tt := range tests {
		t.Run(tt.period.Name(), func(t *testing.T) {
			if got := d.StartOf(tt.period); got != tt.start {
				t.Errorf("StartOf(%v) = %v, want %v", tt.period, got, tt.start)
			}
			if got := d.EndOf(tt.period); got != tt.end {
				t.Errorf("EndOf(%v) = %v, want %v", tt.period, got, tt.end)
			}
		})
	}
}
