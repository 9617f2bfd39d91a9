package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/nvkv0/HomeCall/internal/domain"
	"github.com/nvkv0/HomeCall/internal/handler/dto"
	"github.com/nvkv0/HomeCall/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

type RequestSvc interface {
	Create(ctx context.Context, input domain.CreateRequestInput) (*domain.ServiceRequest, error)
	AcceptByWorker(ctx context.Context, requestID, workerID string) (*domain.ServiceRequest, error)
	RejectByWorker(ctx context.Context, requestID, workerID, reason string) (*domain.ServiceRequest, error)
	ApproveByCustomer(ctx context.Context, requestID, customerID string) (*domain.ServiceRequest, *domain.Booking, error)
	RejectByCustomer(ctx context.Context, requestID, customerID, reason string) (*domain.ServiceRequest, error)
	ListForWorker(ctx context.Context, workerID string) ([]*domain.RequestDetails, error)
	ListForCustomer(ctx context.Context, customerID string) ([]*domain.RequestDetails, error)
}

type CatalogSvc interface {
	ListServices(ctx context.Context) ([]*domain.Service, error)
	AddOffer(ctx context.Context, input domain.CreateOfferInput) (*domain.WorkerOffer, error)
	ListWorkerOffers(ctx context.Context, workerID string) ([]*domain.WorkerOffer, error)
	WorkersForService(ctx context.Context, serviceID string) ([]*domain.OfferDetails, error)
	ToggleOffer(ctx context.Context, offerID, workerID string, active bool) (*domain.WorkerOffer, error)
}

type BookingSvc interface {
	ListByCustomer(ctx context.Context, customerID string) ([]*domain.Booking, error)
	ListByWorker(ctx context.Context, workerID string) ([]*domain.Booking, error)
	Get(ctx context.Context, id, userID string) (*domain.Booking, error)
}

type NotificationSvc interface {
	ListForUser(ctx context.Context, userID string) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id, userID string) error
}

type UserSvc interface {
	Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	CreateAddress(ctx context.Context, input domain.CreateAddressInput) (*domain.Address, error)
	ListAddresses(ctx context.Context, userID string) ([]*domain.Address, error)
}

type Handler struct {
	requestService      RequestSvc
	catalogService      CatalogSvc
	bookingService      BookingSvc
	notificationService NotificationSvc
	userService         UserSvc
}

func NewHandler(
	requestService RequestSvc,
	catalogService CatalogSvc,
	bookingService BookingSvc,
	notificationService NotificationSvc,
	userService UserSvc,
) *Handler {
	return &Handler{
		requestService:      requestService,
		catalogService:      catalogService,
		bookingService:      bookingService,
		notificationService: notificationService,
		userService:         userService,
	}
}

// Service requests

func (h *Handler) CreateRequest(c *ginext.Context) {
	var req dto.CreateRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	preferredAt, err := time.Parse(time.RFC3339, req.PreferredDateTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid preferred_date_time format, expected RFC3339",
		})
		return
	}

	input := domain.CreateRequestInput{
		CustomerID:        c.GetString(middleware.ContextUserID),
		ServiceID:         req.ServiceID,
		Description:       req.Description,
		PreferredDateTime: preferredAt,
		AddressID:         req.AddressID,
	}

	created, err := h.requestService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRequestResponse(created))
}

func (h *Handler) ListCustomerRequests(c *ginext.Context) {
	requests, err := h.requestService.ListForCustomer(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RequestDetailsResponse, 0, len(requests))
	for _, r := range requests {
		resp = append(resp, dto.ToRequestDetailsResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListWorkerRequests(c *ginext.Context) {
	requests, err := h.requestService.ListForWorker(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RequestDetailsResponse, 0, len(requests))
	for _, r := range requests {
		resp = append(resp, dto.ToRequestDetailsResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) AcceptRequest(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request id"})
		return
	}

	updated, err := h.requestService.AcceptByWorker(c.Request.Context(), id, c.GetString(middleware.ContextUserID))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRequestResponse(updated))
}

func (h *Handler) RejectRequest(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request id"})
		return
	}

	var req dto.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	updated, err := h.requestService.RejectByWorker(c.Request.Context(), id, c.GetString(middleware.ContextUserID), req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRequestResponse(updated))
}

func (h *Handler) ApproveRequest(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request id"})
		return
	}

	updated, booking, err := h.requestService.ApproveByCustomer(c.Request.Context(), id, c.GetString(middleware.ContextUserID))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ApproveResponse{
		Request: dto.ToRequestResponse(updated),
		Booking: dto.ToBookingResponse(booking),
	})
}

func (h *Handler) RejectWorker(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request id"})
		return
	}

	var req dto.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	updated, err := h.requestService.RejectByCustomer(c.Request.Context(), id, c.GetString(middleware.ContextUserID), req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRequestResponse(updated))
}

// Catalog

func (h *Handler) ListServices(c *ginext.Context) {
	services, err := h.catalogService.ListServices(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ServiceResponse, 0, len(services))
	for _, s := range services {
		resp = append(resp, dto.ToServiceResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) AddOffer(c *ginext.Context) {
	var req dto.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateOfferInput{
		WorkerID:    c.GetString(middleware.ContextUserID),
		ServiceID:   req.ServiceID,
		Price:       req.Price,
		Experience:  req.Experience,
		Description: req.Description,
	}

	offer, err := h.catalogService.AddOffer(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToOfferResponse(offer))
}

func (h *Handler) ListMyOffers(c *ginext.Context) {
	offers, err := h.catalogService.ListWorkerOffers(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.OfferResponse, 0, len(offers))
	for _, o := range offers {
		resp = append(resp, dto.ToOfferResponse(o))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListServiceWorkers(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid service id"})
		return
	}

	offers, err := h.catalogService.WorkersForService(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.OfferDetailsResponse, 0, len(offers))
	for _, o := range offers {
		resp = append(resp, dto.ToOfferDetailsResponse(o))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ToggleOffer(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid offer id"})
		return
	}

	var req dto.ToggleOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	offer, err := h.catalogService.ToggleOffer(c.Request.Context(), id, c.GetString(middleware.ContextUserID), *req.Active)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToOfferResponse(offer))
}

// Bookings

func (h *Handler) ListCustomerBookings(c *ginext.Context) {
	bookings, err := h.bookingService.ListByCustomer(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) ListWorkerBookings(c *ginext.Context) {
	bookings, err := h.bookingService.ListByWorker(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid booking id"})
		return
	}

	booking, err := h.bookingService.Get(c.Request.Context(), id, c.GetString(middleware.ContextUserID))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

// Notifications

func (h *Handler) ListNotifications(c *ginext.Context) {
	notifications, err := h.notificationService.ListForUser(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		resp = append(resp, dto.ToNotificationResponse(n))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) MarkNotificationRead(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid notification id"})
		return
	}

	if err := h.notificationService.MarkRead(c.Request.Context(), id, c.GetString(middleware.ContextUserID)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "read"})
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateUserInput{
		Name:           req.Name,
		Phone:          req.Phone,
		Role:           domain.Role(req.Role),
		TelegramChatID: req.TelegramChatID,
	}

	user, err := h.userService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// Addresses

func (h *Handler) CreateAddress(c *ginext.Context) {
	var req dto.CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	input := domain.CreateAddressInput{
		UserID:   c.GetString(middleware.ContextUserID),
		Line1:    req.Line1,
		City:     req.City,
		Postcode: req.Postcode,
	}

	addr, err := h.userService.CreateAddress(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAddressResponse(addr))
}

func (h *Handler) ListAddresses(c *ginext.Context) {
	addresses, err := h.userService.ListAddresses(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.AddressResponse, 0, len(addresses))
	for _, a := range addresses {
		resp = append(resp, dto.ToAddressResponse(a))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var conflict *domain.StatusConflictError

	switch {
	case errors.Is(err, domain.ErrRequestNotFound),
		errors.Is(err, domain.ErrServiceNotFound),
		errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrOfferNotFound),
		errors.Is(err, domain.ErrAddressNotFound),
		errors.Is(err, domain.ErrNotificationNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	// A failed status precondition reports the request's actual status.
	case errors.As(err, &conflict):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: conflict.Error()})

	case errors.Is(err, domain.ErrNotQualified),
		errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrOfferExists),
		errors.Is(err, domain.ErrPhoneTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
