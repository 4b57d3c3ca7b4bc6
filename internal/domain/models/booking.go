package models

import "time"

// Booking is a confirmed reservation for an experience. BookingAmount keeps
// the raw decimal string as charged; parsing happens at invoice time so a
// malformed amount never blocks booking creation.
type Booking struct {
	ID                int64     `json:"id"`
	BookingNumber     string    `json:"booking_number"`
	ExperienceID      int64     `json:"experience_id"`
	ActivityID        *int64    `json:"activity_id,omitempty"`
	CustomerName      string    `json:"customer_name"`
	CustomerPhone     string    `json:"customer_phone"`
	CustomerEmail     string    `json:"customer_email"`
	BookingAmount     string    `json:"booking_amount"`
	TotalParticipants int       `json:"total_participants"`
	BookingDate       string    `json:"booking_date"`
	PickupLocation    string    `json:"pickup_location,omitempty"`
	SlotStartTime     string    `json:"slot_start_time,omitempty"`
	SlotEndTime       string    `json:"slot_end_time,omitempty"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
}

// BookingUpdate carries PATCH-style changes; nil means leave untouched.
type BookingUpdate struct {
	CustomerName  *string
	CustomerPhone *string
	Status        *string
}

// HasTimeSlot reports whether the booking is linked to a start/end slot.
func (b Booking) HasTimeSlot() bool {
	return b.SlotStartTime != "" && b.SlotEndTime != ""
}
