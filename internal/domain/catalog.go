package domain

import "time"

type Service struct {
	ID              string    `json:"id"`
	CategoryID      string    `json:"category_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	DurationMinutes int       `json:"duration_minutes"`
	BasePrice       float64   `json:"base_price"`
	CreatedAt       time.Time `json:"created_at"`
}

// WorkerOffer is a worker's active offer for a service. The set of active
// offers for a service is the qualification table for request fan-out.
type WorkerOffer struct {
	ID          string    `json:"id"`
	WorkerID    string    `json:"worker_id"`
	ServiceID   string    `json:"service_id"`
	Price       float64   `json:"price"`
	Experience  string    `json:"experience"`
	Description string    `json:"description"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateOfferInput struct {
	WorkerID    string
	ServiceID   string
	Price       float64
	Experience  string
	Description string
}

// OfferDetails joins an offer with its worker for the workers-by-service
// read model.
type OfferDetails struct {
	Offer  WorkerOffer `json:"offer"`
	Worker *User       `json:"worker,omitempty"`
}
