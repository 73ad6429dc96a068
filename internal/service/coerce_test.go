package service

import (
	"testing"
	"time"
)

func TestCanonicalDate(t *testing.T) {
	now := time.Date(2024, 1, 15, 9, 30, 0, 0, time.UTC) // Monday

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty defaults to now", "", "Mon Jan 15 2024"},
		{"whitespace defaults to now", "   ", "Mon Jan 15 2024"},
		{"iso form", "2023-01-15", "Sun Jan 15 2023"},
		{"single digit day padded", "2023-01-05", "Thu Jan 05 2023"},
		{"canonical form round trips", "Sun Jan 15 2023", "Sun Jan 15 2023"},
		{"rfc3339 accepted", "2023-01-15T10:00:00Z", "Sun Jan 15 2023"},
		{"long month form", "January 15, 2023", "Sun Jan 15 2023"},
		{"us slash form", "01/15/2023", "Sun Jan 15 2023"},
		{"garbage degrades", "yesterday", "Invalid Date"},
		{"partial garbage degrades", "2023-13-45", "Invalid Date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := canonicalDate(tt.input, now); got != tt.want {
				t.Fatalf("canonicalDate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input  string
		wantOK bool
	}{
		{"2023-01-15", true},
		{"Sun Jan 15 2023", true},
		{"", false},
		{"not a date", false},
		{"2023-02-30", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if _, ok := parseDate(tt.input); ok != tt.wantOK {
				t.Fatalf("parseDate(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
		})
	}
}

func TestCoerceInt(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"15", 15},
		{"015", 15},
		{"+7", 7},
		{"-5", -5},
		{"15min", 15},
		{"  30  ", 30},
		{"", NotANumber},
		{"abc", NotANumber},
		{"min15", NotANumber},
		{"-", NotANumber},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := coerceInt(tt.input); got != tt.want {
				t.Fatalf("coerceInt(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
