package dto

import (
	"time"

	"github.com/nvkv0/HomeCall/internal/domain"
)

type AcceptanceResponse struct {
	WorkerID  string `json:"worker_id"`
	Timestamp string `json:"timestamp"`
}

type RejectionResponse struct {
	WorkerID  string `json:"worker_id"`
	Reason    string `json:"reason"`
	Timestamp string `json:"timestamp"`
}

type RequestResponse struct {
	ID                string              `json:"id"`
	CustomerID        string              `json:"customer_id"`
	ServiceID         string              `json:"service_id"`
	ServiceCategoryID string              `json:"service_category_id"`
	Description       string              `json:"description"`
	PreferredDateTime string              `json:"preferred_date_time"`
	AddressID         string              `json:"address_id"`
	Status            string              `json:"status"`
	AcceptedBy        *AcceptanceResponse `json:"accepted_by,omitempty"`
	RejectedBy        []RejectionResponse `json:"rejected_by"`
	BookingID         *string             `json:"booking_id,omitempty"`
	ExpiresAt         string              `json:"expires_at"`
	CreatedAt         string              `json:"created_at"`
}

type RequestDetailsResponse struct {
	Request RequestResponse  `json:"request"`
	Service *ServiceResponse `json:"service,omitempty"`
	Worker  *UserResponse    `json:"worker,omitempty"`
}

type ServiceResponse struct {
	ID              string  `json:"id"`
	CategoryID      string  `json:"category_id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"duration_minutes"`
	BasePrice       float64 `json:"base_price"`
}

type OfferResponse struct {
	ID          string  `json:"id"`
	WorkerID    string  `json:"worker_id"`
	ServiceID   string  `json:"service_id"`
	Price       float64 `json:"price"`
	Experience  string  `json:"experience"`
	Description string  `json:"description"`
	Active      bool    `json:"active"`
	CreatedAt   string  `json:"created_at"`
}

type OfferDetailsResponse struct {
	Offer  OfferResponse `json:"offer"`
	Worker *UserResponse `json:"worker,omitempty"`
}

type BookingResponse struct {
	ID            string  `json:"id"`
	CustomerID    string  `json:"customer_id"`
	WorkerID      string  `json:"worker_id"`
	WorkerOfferID string  `json:"worker_offer_id"`
	AddressID     string  `json:"address_id"`
	Status        string  `json:"status"`
	BookingDate   string  `json:"booking_date"`
	SlotStart     string  `json:"slot_start"`
	SlotEnd       string  `json:"slot_end"`
	TotalAmount   float64 `json:"total_amount"`
	Notes         string  `json:"notes,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

type ApproveResponse struct {
	Request RequestResponse `json:"request"`
	Booking BookingResponse `json:"booking"`
}

type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

type AddressResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Line1     string `json:"line1"`
	City      string `json:"city"`
	Postcode  string `json:"postcode,omitempty"`
	CreatedAt string `json:"created_at"`
}

type NotificationResponse struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Category  string         `json:"category"`
	Priority  string         `json:"priority"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	ActionURL string         `json:"action_url,omitempty"`
	Read      bool           `json:"read"`
	CreatedAt string         `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToRequestResponse(r *domain.ServiceRequest) RequestResponse {
	resp := RequestResponse{
		ID:                r.ID,
		CustomerID:        r.CustomerID,
		ServiceID:         r.ServiceID,
		ServiceCategoryID: r.ServiceCategoryID,
		Description:       r.Description,
		PreferredDateTime: r.PreferredDateTime.Format(time.RFC3339),
		AddressID:         r.AddressID,
		Status:            string(r.Status),
		RejectedBy:        make([]RejectionResponse, 0, len(r.RejectedBy)),
		BookingID:         r.BookingID,
		ExpiresAt:         r.ExpiresAt.Format(time.RFC3339),
		CreatedAt:         r.CreatedAt.Format(time.RFC3339),
	}
	if r.AcceptedBy != nil {
		resp.AcceptedBy = &AcceptanceResponse{
			WorkerID:  r.AcceptedBy.WorkerID,
			Timestamp: r.AcceptedBy.Timestamp.Format(time.RFC3339),
		}
	}
	for _, rej := range r.RejectedBy {
		resp.RejectedBy = append(resp.RejectedBy, RejectionResponse{
			WorkerID:  rej.WorkerID,
			Reason:    rej.Reason,
			Timestamp: rej.Timestamp.Format(time.RFC3339),
		})
	}
	return resp
}

func ToRequestDetailsResponse(d *domain.RequestDetails) RequestDetailsResponse {
	resp := RequestDetailsResponse{
		Request: ToRequestResponse(&d.Request),
	}
	if d.Service != nil {
		svc := ToServiceResponse(d.Service)
		resp.Service = &svc
	}
	if d.Worker != nil {
		w := ToUserResponse(d.Worker)
		resp.Worker = &w
	}
	return resp
}

func ToServiceResponse(s *domain.Service) ServiceResponse {
	return ServiceResponse{
		ID:              s.ID,
		CategoryID:      s.CategoryID,
		Name:            s.Name,
		Description:     s.Description,
		DurationMinutes: s.DurationMinutes,
		BasePrice:       s.BasePrice,
	}
}

func ToOfferResponse(o *domain.WorkerOffer) OfferResponse {
	return OfferResponse{
		ID:          o.ID,
		WorkerID:    o.WorkerID,
		ServiceID:   o.ServiceID,
		Price:       o.Price,
		Experience:  o.Experience,
		Description: o.Description,
		Active:      o.Active,
		CreatedAt:   o.CreatedAt.Format(time.RFC3339),
	}
}

func ToOfferDetailsResponse(d *domain.OfferDetails) OfferDetailsResponse {
	resp := OfferDetailsResponse{
		Offer: ToOfferResponse(&d.Offer),
	}
	if d.Worker != nil {
		w := ToUserResponse(d.Worker)
		resp.Worker = &w
	}
	return resp
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		CustomerID:    b.CustomerID,
		WorkerID:      b.WorkerID,
		WorkerOfferID: b.WorkerOfferID,
		AddressID:     b.AddressID,
		Status:        string(b.Status),
		BookingDate:   b.BookingDate.Format(time.RFC3339),
		SlotStart:     b.SlotStart.Format(time.RFC3339),
		SlotEnd:       b.SlotEnd.Format(time.RFC3339),
		TotalAmount:   b.TotalAmount,
		Notes:         b.Notes,
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Phone:     u.Phone,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

func ToAddressResponse(a *domain.Address) AddressResponse {
	return AddressResponse{
		ID:        a.ID,
		UserID:    a.UserID,
		Line1:     a.Line1,
		City:      a.City,
		Postcode:  a.Postcode,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}

func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		Category:  n.Category,
		Priority:  string(n.Priority),
		Metadata:  n.Metadata,
		ActionURL: n.ActionURL,
		Read:      n.Read,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
	}
}
