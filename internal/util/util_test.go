package util

import (
	"testing"
	"time"
)

func TestFormatWindow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		window   time.Duration
		expected string
	}{
		{name: "zero", window: 0, expected: "0s"},
		{name: "seven days", window: 7 * 24 * time.Hour, expected: "7d"},
		{name: "one hour", window: time.Hour, expected: "1h"},
		{name: "thirty six hours", window: 36 * time.Hour, expected: "36h"},
		{name: "fifteen minutes", window: 15 * time.Minute, expected: "15m"},
		{name: "uneven", window: 90*time.Second + time.Minute, expected: "2m30s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatWindow(tt.window); got != tt.expected {
				t.Fatalf("FormatWindow(%v) = %s, want %s", tt.window, got, tt.expected)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "seconds", duration: 45 * time.Second, expected: "45s"},
		{name: "rounds", duration: 1499 * time.Millisecond, expected: "1s"},
		{name: "minutes", duration: 5*time.Minute + 10*time.Second, expected: "5m10s"},
		{name: "hours", duration: 90 * time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%v) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}

func TestMaskPhoneNumber(t *testing.T) {
	t.Parallel()

	tests := []struct {
		phone    string
		expected string
	}{
		{phone: "5551234567", expected: "******4567"},
		{phone: "123", expected: "***"},
		{phone: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.phone, func(t *testing.T) {
			t.Parallel()

			if got := MaskPhoneNumber(tt.phone); got != tt.expected {
				t.Fatalf("MaskPhoneNumber(%q) = %s, want %s", tt.phone, got, tt.expected)
			}
		})
	}
}
