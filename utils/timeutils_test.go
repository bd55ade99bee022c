package utils

import (
	"testing"
	"time"
)

func TestIso8601FromUnixSeconds(t *testing.T) {
	tests := []struct {
		name     string
		input    int64
		expected string
	}{
		{
			name:     "epoch",
			input:    0,
			expected: "1970-01-01T00:00:00Z",
		},
		{
			name:     "specific timestamp",
			input:    1732255200, // 2024-11-22 06:00:00 UTC
			expected: "2024-11-22T06:00:00Z",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Iso8601FromUnixSeconds(tt.input)
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}

func TestIso8601Now(t *testing.T) {
	before := time.Now().UTC().Add(-1 * time.Second)
	result := Iso8601Now()
	after := time.Now().UTC().Add(1 * time.Second)

	parsed, err := time.Parse(time.RFC3339, result)
	if err != nil {
		t.Fatalf("Failed to parse result: %v", err)
	}

	if parsed.Before(before) || parsed.After(after) {
		t.Errorf("timestamp should be between %v and %v, got %v", before, after, parsed)
	}
}

func TestCompactDate(t *testing.T) {
	tests := []struct {
		name             string
		year, month, day int32
		expected         string
	}{
		{
			name:     "two-digit month and day",
			year:     2024,
			month:    11,
			day:      22,
			expected: "20241122",
		},
		{
			name:     "single-digit month and day are zero padded",
			year:     2024,
			month:    1,
			day:      2,
			expected: "20240102",
		},
		{
			name:     "first day of year",
			year:     2025,
			month:    1,
			day:      1,
			expected: "20250101",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CompactDate(tt.year, tt.month, tt.day)
			if result != tt.expected {
				t.Errorf("expected %s, got %s", tt.expected, result)
			}
		})
	}
}
