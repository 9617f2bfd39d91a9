package domain

import "time"

type RequestStatus string

const (
	RequestStatusPending          RequestStatus = "pending"
	RequestStatusAccepted         RequestStatus = "accepted"
	RequestStatusCustomerApproved RequestStatus = "customer_approved"
	RequestStatusBookingCreated   RequestStatus = "booking_created"
	RequestStatusExpired          RequestStatus = "expired"
)

// Terminal reports whether no further transition is permitted from s.
func (s RequestStatus) Terminal() bool {
	return s == RequestStatusExpired || s == RequestStatusBookingCreated
}

type Acceptance struct {
	WorkerID  string    `json:"worker_id"`
	Timestamp time.Time `json:"timestamp"`
}

type Rejection struct {
	WorkerID  string    `json:"worker_id"`
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
}

type ServiceRequest struct {
	ID                string        `json:"id"`
	CustomerID        string        `json:"customer_id"`
	ServiceID         string        `json:"service_id"`
	ServiceCategoryID string        `json:"service_category_id"`
	Description       string        `json:"description"`
	PreferredDateTime time.Time     `json:"preferred_date_time"`
	AddressID         string        `json:"address_id"`
	Status            RequestStatus `json:"status"`
	AcceptedBy        *Acceptance   `json:"accepted_by,omitempty"`
	RejectedBy        []Rejection   `json:"rejected_by"`
	BookingID         *string       `json:"booking_id,omitempty"`
	ExpiresAt         time.Time     `json:"expires_at"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
}

type CreateRequestInput struct {
	CustomerID        string
	ServiceID         string
	Description       string
	PreferredDateTime time.Time
	AddressID         string
}

// RequestDetails is the assembled read model for list endpoints: the raw
// request joined in memory with its service and, when accepted, the worker.
type RequestDetails struct {
	Request ServiceRequest `json:"request"`
	Service *Service       `json:"service,omitempty"`
	Worker  *User          `json:"worker,omitempty"`
}
