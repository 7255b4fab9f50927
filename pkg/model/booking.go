package model

import (
	"time"
)

// Booking is the canonical, fully-populated appointment record. Instances are
// only ever built by the normalizer; a Booking with gaps is never handed to
// the boundary. Answer-backed fields (name, email, phone, notes) carry no
// required tag: their presence is enforced by answer-code lookup during
// normalization, and an answered-but-blank value is still a valid answer.
type Booking struct {
	ID        string    `json:"id" validate:"required"`
	Title     string    `json:"title" validate:"required"`
	Cancelled bool      `json:"cancelled"`
	CreatedAt time.Time `json:"createdAt" validate:"required"`
	StartsAt  time.Time `json:"startsAt" validate:"required"`
	EndsAt    time.Time `json:"endsAt" validate:"required"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Notes     string    `json:"notes"`
	Duration  string    `json:"duration" validate:"required"`
}

// DayBookings partitions one day's bookings by cancellation state. Every
// booking for the day lands in exactly one of the two slices, in fetch order.
type DayBookings struct {
	Bookings  []Booking `json:"bookings"`
	Cancelled []Booking `json:"cancelled"`
}
