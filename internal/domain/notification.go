package domain

import "time"

type NotificationPriority string

const (
	NotificationPriorityLow    NotificationPriority = "low"
	NotificationPriorityMedium NotificationPriority = "medium"
	NotificationPriorityHigh   NotificationPriority = "high"
)

const (
	NotificationTypeNewRequest         = "new_service_request"
	NotificationTypeRequestCreated     = "service_request_created"
	NotificationTypeRequestAccepted    = "service_request_accepted"
	NotificationTypeRequestExpired     = "service_request_expired"
	NotificationTypeRejectedByCustomer = "request_rejected_by_customer"
	NotificationTypeBookingCreated     = "booking_created"
)

type Notification struct {
	ID        string               `json:"id"`
	UserID    string               `json:"user_id"`
	Type      string               `json:"type"`
	Title     string               `json:"title"`
	Message   string               `json:"message"`
	Category  string               `json:"category"`
	Priority  NotificationPriority `json:"priority"`
	Metadata  map[string]any       `json:"metadata,omitempty"`
	ActionURL string               `json:"action_url,omitempty"`
	Read      bool                 `json:"read"`
	CreatedAt time.Time            `json:"created_at"`
}
