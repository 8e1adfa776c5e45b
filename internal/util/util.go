package util

import (
	"fmt"
	"strings"
	"time"
)

// FormatWindow formats a trailing window as its largest whole unit
// (e.g., "7d", "36h", "15m"). Windows that do not divide evenly fall back to
// FormatDuration.
func FormatWindow(window time.Duration) string {
	const day = 24 * time.Hour

	switch {
	case window <= 0:
		return "0s"
	case window%day == 0:
		return fmt.Sprintf("%dd", window/day)
	case window%time.Hour == 0:
		return fmt.Sprintf("%dh", window/time.Hour)
	case window%time.Minute == 0:
		return fmt.Sprintf("%dm", window/time.Minute)
	default:
		return FormatDuration(window)
	}
}

// FormatDuration formats duration into human readable format (e.g., "1h30m", "5m10s", "45s").
func FormatDuration(duration time.Duration) string {
	duration = duration.Round(time.Second)

	if duration < time.Minute {
		return fmt.Sprintf("%ds", int(duration.Seconds()))
	}

	if duration < time.Hour {
		return fmt.Sprintf("%dm%ds", int(duration.Minutes()), int(duration.Seconds())%60)
	}

	return fmt.Sprintf("%dh%dm", int(duration.Hours()), int(duration.Minutes())%60)
}

// MaskPhoneNumber keeps the last four digits of a phone number for logs.
func MaskPhoneNumber(phone string) string {
	if len(phone) <= 4 {
		return strings.Repeat("*", len(phone))
	}

	return strings.Repeat("*", len(phone)-4) + phone[len(phone)-4:]
}
