package domain

import "time"

type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "pending"
	BookingStatusConfirmed  BookingStatus = "confirmed"
	BookingStatusInProgress BookingStatus = "in_progress"
	BookingStatusCompleted  BookingStatus = "completed"
	BookingStatusCancelled  BookingStatus = "cancelled"
)

type Booking struct {
	ID            string        `json:"id"`
	CustomerID    string        `json:"customer_id"`
	WorkerID      string        `json:"worker_id"`
	WorkerOfferID string        `json:"worker_offer_id"`
	AddressID     string        `json:"address_id"`
	Status        BookingStatus `json:"status"`
	BookingDate   time.Time     `json:"booking_date"`
	SlotStart     time.Time     `json:"slot_start"`
	SlotEnd       time.Time     `json:"slot_end"`
	TotalAmount   float64       `json:"total_amount"`
	Notes         string        `json:"notes,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}
