package entity

import (
	"regexp"
	"time"
)

var phoneNumberPattern = regexp.MustCompile(`^[0-9]{10}$`)

// ValidPhoneNumber reports whether phone is exactly ten ASCII digits.
// Country codes and separators are not accepted.
func ValidPhoneNumber(phone string) bool {
	return phoneNumberPattern.MatchString(phone)
}

// Subscription registers a phone number to be notified about a parking lot.
// Records are append-only and keyed by a store-generated id.
type Subscription struct {
	ID           string    `json:"id"`                     // Store-generated record id.
	PhoneNumber  string    `json:"phoneNumber"`            // Ten ASCII digits.
	ParkingLot   string    `json:"parkingLot"`             // Lot display name, the correlation key.
	ParkingLotID string    `json:"parkingLotId,omitempty"` // Provider place id, kept for presentation.
	Timestamp    time.Time `json:"timestamp"`              // Creation time in UTC.
}

// WithinWindow reports whether the subscription was created in [now-window, now].
func (s *Subscription) WithinWindow(now time.Time, window time.Duration) bool {
	if s.Timestamp.After(now) {
		return false
	}

	return !s.Timestamp.Before(now.Add(-window))
}

// LotRef identifies the lot a panel or subscription refers to.
type LotRef struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}
