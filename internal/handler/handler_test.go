package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nvkv0/HomeCall/internal/domain"
	"github.com/nvkv0/HomeCall/internal/handler/dto"
	hmocks "github.com/nvkv0/HomeCall/internal/handler/mocks"
	"github.com/nvkv0/HomeCall/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

type testMocks struct {
	requestSvc      *hmocks.MockRequestSvc
	catalogSvc      *hmocks.MockCatalogSvc
	bookingSvc      *hmocks.MockBookingSvc
	notificationSvc *hmocks.MockNotificationSvc
	userSvc         *hmocks.MockUserSvc
}

// testIdentity replaces the JWT middleware: the X-User-ID header becomes the
// authenticated user.
func testIdentity() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		c.Set(middleware.ContextUserID, c.GetHeader("X-User-ID"))
		c.Next()
	}
}

func setupRouter(t *testing.T) (testMocks, http.Handler) {
	t.Helper()
	m := testMocks{
		requestSvc:      hmocks.NewMockRequestSvc(t),
		catalogSvc:      hmocks.NewMockCatalogSvc(t),
		bookingSvc:      hmocks.NewMockBookingSvc(t),
		notificationSvc: hmocks.NewMockNotificationSvc(t),
		userSvc:         hmocks.NewMockUserSvc(t),
	}

	h := NewHandler(m.requestSvc, m.catalogSvc, m.bookingSvc, m.notificationSvc, m.userSvc)

	r := ginext.New("test")
	api := r.Group("/api", testIdentity())
	{
		api.POST("/users", h.CreateUser)
		api.GET("/services", h.ListServices)
		api.GET("/worker-services/service/:id", h.ListServiceWorkers)

		api.POST("/service-requests", h.CreateRequest)
		api.GET("/service-requests/customer", h.ListCustomerRequests)
		api.GET("/service-requests/worker", h.ListWorkerRequests)
		api.POST("/service-requests/:id/accept", h.AcceptRequest)
		api.POST("/service-requests/:id/reject", h.RejectRequest)
		api.POST("/service-requests/:id/approve", h.ApproveRequest)
		api.POST("/service-requests/:id/reject-worker", h.RejectWorker)

		api.POST("/worker-services", h.AddOffer)
		api.GET("/worker-services/mine", h.ListMyOffers)
		api.PATCH("/worker-services/:id/toggle", h.ToggleOffer)

		api.GET("/bookings/:id", h.GetBooking)

		api.POST("/addresses", h.CreateAddress)
		api.GET("/addresses", h.ListAddresses)

		api.GET("/notifications", h.ListNotifications)
		api.PATCH("/notifications/:id/read", h.MarkNotificationRead)
	}

	return m, r
}

func doJSON(t *testing.T, r http.Handler, method, path, userID string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	r.ServeHTTP(w, req)
	return w
}

// --- Service requests ---

func TestHandler_CreateRequest_Success(t *testing.T) {
	m, r := setupRouter(t)

	customerID := uuid.New().String()
	created := &domain.ServiceRequest{
		ID:         uuid.New().String(),
		CustomerID: customerID,
		ServiceID:  uuid.New().String(),
		Status:     domain.RequestStatusPending,
		CreatedAt:  time.Now(),
	}

	m.requestSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(created, nil)

	body := dto.CreateRequestRequest{
		ServiceID:         created.ServiceID,
		Description:       "leaking kitchen sink, water everywhere",
		PreferredDateTime: time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		AddressID:         uuid.New().String(),
	}

	w := doJSON(t, r, http.MethodPost, "/api/service-requests", customerID, body)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.RequestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
}

func TestHandler_CreateRequest_InvalidDate(t *testing.T) {
	_, r := setupRouter(t)

	body := dto.CreateRequestRequest{
		ServiceID:         uuid.New().String(),
		Description:       "leaking kitchen sink, water everywhere",
		PreferredDateTime: "not-a-date",
		AddressID:         uuid.New().String(),
	}

	w := doJSON(t, r, http.MethodPost, "/api/service-requests", "c1", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateRequest_ShortDescription(t *testing.T) {
	_, r := setupRouter(t)

	body := dto.CreateRequestRequest{
		ServiceID:         uuid.New().String(),
		Description:       "short",
		PreferredDateTime: time.Now().Add(time.Hour).Format(time.RFC3339),
		AddressID:         uuid.New().String(),
	}

	w := doJSON(t, r, http.MethodPost, "/api/service-requests", "c1", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_AcceptRequest_Success(t *testing.T) {
	m, r := setupRouter(t)

	requestID := uuid.New().String()
	workerID := uuid.New().String()
	accepted := &domain.ServiceRequest{
		ID:         requestID,
		Status:     domain.RequestStatusAccepted,
		AcceptedBy: &domain.Acceptance{WorkerID: workerID, Timestamp: time.Now()},
	}

	m.requestSvc.EXPECT().AcceptByWorker(mock.Anything, requestID, workerID).Return(accepted, nil)

	w := doJSON(t, r, http.MethodPost, "/api/service-requests/"+requestID+"/accept", workerID, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.RequestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "accepted", resp.Status)
	require.NotNil(t, resp.AcceptedBy)
	assert.Equal(t, workerID, resp.AcceptedBy.WorkerID)
}

func TestHandler_AcceptRequest_InvalidID(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/service-requests/not-a-uuid/accept", "w1", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_AcceptRequest_StatusConflict(t *testing.T) {
	m, r := setupRouter(t)

	requestID := uuid.New().String()
	workerID := uuid.New().String()

	m.requestSvc.EXPECT().AcceptByWorker(mock.Anything, requestID, workerID).
		Return(nil, domain.NewStatusConflict(domain.RequestStatusAccepted))

	w := doJSON(t, r, http.MethodPost, "/api/service-requests/"+requestID+"/accept", workerID, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "accepted")
}

func TestHandler_AcceptRequest_NotQualified(t *testing.T) {
	m, r := setupRouter(t)

	requestID := uuid.New().String()
	workerID := uuid.New().String()

	m.requestSvc.EXPECT().AcceptByWorker(mock.Anything, requestID, workerID).
		Return(nil, domain.ErrNotQualified)

	w := doJSON(t, r, http.MethodPost, "/api/service-requests/"+requestID+"/accept", workerID, nil)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestHandler_AcceptRequest_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	requestID := uuid.New().String()
	workerID := uuid.New().String()

	m.requestSvc.EXPECT().AcceptByWorker(mock.Anything, requestID, workerID).
		Return(nil, domain.ErrRequestNotFound)

	w := doJSON(t, r, http.MethodPost, "/api/service-requests/"+requestID+"/accept", workerID, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_RejectRequest_Success(t *testing.T) {
	m, r := setupRouter(t)

	requestID := uuid.New().String()
	workerID := uuid.New().String()
	updated := &domain.ServiceRequest{ID: requestID, Status: domain.RequestStatusPending}

	m.requestSvc.EXPECT().RejectByWorker(mock.Anything, requestID, workerID, "too far away").Return(updated, nil)

	w := doJSON(t, r, http.MethodPost, "/api/service-requests/"+requestID+"/reject", workerID,
		dto.RejectRequest{Reason: "too far away"})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_RejectRequest_MissingReason(t *testing.T) {
	_, r := setupRouter(t)

	requestID := uuid.New().String()

	w := doJSON(t, r, http.MethodPost, "/api/service-requests/"+requestID+"/reject", "w1",
		map[string]string{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ApproveRequest_Success(t *testing.T) {
	m, r := setupRouter(t)

	requestID := uuid.New().String()
	customerID := uuid.New().String()
	bookingID := uuid.New().String()
	updated := &domain.ServiceRequest{
		ID:        requestID,
		Status:    domain.RequestStatusBookingCreated,
		BookingID: &bookingID,
	}
	booking := &domain.Booking{
		ID:         bookingID,
		CustomerID: customerID,
		Status:     domain.BookingStatusConfirmed,
	}

	m.requestSvc.EXPECT().ApproveByCustomer(mock.Anything, requestID, customerID).Return(updated, booking, nil)

	w := doJSON(t, r, http.MethodPost, "/api/service-requests/"+requestID+"/approve", customerID, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ApproveResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "booking_created", resp.Request.Status)
	assert.Equal(t, bookingID, resp.Booking.ID)
	assert.Equal(t, "confirmed", resp.Booking.Status)
}

func TestHandler_ApproveRequest_NotAccepted(t *testing.T) {
	m, r := setupRouter(t)

	requestID := uuid.New().String()
	customerID := uuid.New().String()

	m.requestSvc.EXPECT().ApproveByCustomer(mock.Anything, requestID, customerID).
		Return(nil, nil, domain.NewStatusConflict(domain.RequestStatusPending))

	w := doJSON(t, r, http.MethodPost, "/api/service-requests/"+requestID+"/approve", customerID, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "pending")
}

func TestHandler_RejectWorker_Success(t *testing.T) {
	m, r := setupRouter(t)

	requestID := uuid.New().String()
	customerID := uuid.New().String()
	updated := &domain.ServiceRequest{ID: requestID, Status: domain.RequestStatusPending}

	m.requestSvc.EXPECT().RejectByCustomer(mock.Anything, requestID, customerID, "found someone cheaper").
		Return(updated, nil)

	w := doJSON(t, r, http.MethodPost, "/api/service-requests/"+requestID+"/reject-worker", customerID,
		dto.RejectRequest{Reason: "found someone cheaper"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.RequestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
	assert.Nil(t, resp.AcceptedBy)
}

func TestHandler_ListCustomerRequests_Success(t *testing.T) {
	m, r := setupRouter(t)

	customerID := uuid.New().String()
	details := []*domain.RequestDetails{
		{
			Request: domain.ServiceRequest{ID: "r1", Status: domain.RequestStatusPending},
			Service: &domain.Service{ID: "s1", Name: "Plumbing"},
		},
	}

	m.requestSvc.EXPECT().ListForCustomer(mock.Anything, customerID).Return(details, nil)

	w := doJSON(t, r, http.MethodGet, "/api/service-requests/customer", customerID, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.RequestDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	require.NotNil(t, resp[0].Service)
	assert.Equal(t, "Plumbing", resp[0].Service.Name)
}

func TestHandler_ListWorkerRequests_Success(t *testing.T) {
	m, r := setupRouter(t)

	workerID := uuid.New().String()
	m.requestSvc.EXPECT().ListForWorker(mock.Anything, workerID).Return(nil, nil)

	w := doJSON(t, r, http.MethodGet, "/api/service-requests/worker", workerID, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

// --- Catalog ---

func TestHandler_ListServices_Success(t *testing.T) {
	m, r := setupRouter(t)

	services := []*domain.Service{
		{ID: "s1", Name: "Plumbing"},
		{ID: "s2", Name: "Cleaning"},
	}
	m.catalogSvc.EXPECT().ListServices(mock.Anything).Return(services, nil)

	w := doJSON(t, r, http.MethodGet, "/api/services", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ServiceResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_AddOffer_Success(t *testing.T) {
	m, r := setupRouter(t)

	workerID := uuid.New().String()
	offer := &domain.WorkerOffer{
		ID:       uuid.New().String(),
		WorkerID: workerID,
		Price:    120,
		Active:   true,
	}

	m.catalogSvc.EXPECT().AddOffer(mock.Anything, mock.Anything).Return(offer, nil)

	w := doJSON(t, r, http.MethodPost, "/api/worker-services", workerID, dto.CreateOfferRequest{
		ServiceID: uuid.New().String(),
		Price:     120,
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.OfferResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Active)
}

func TestHandler_AddOffer_Duplicate(t *testing.T) {
	m, r := setupRouter(t)

	m.catalogSvc.EXPECT().AddOffer(mock.Anything, mock.Anything).Return(nil, domain.ErrOfferExists)

	w := doJSON(t, r, http.MethodPost, "/api/worker-services", "w1", dto.CreateOfferRequest{
		ServiceID: uuid.New().String(),
		Price:     120,
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_ToggleOffer_Success(t *testing.T) {
	m, r := setupRouter(t)

	offerID := uuid.New().String()
	workerID := uuid.New().String()
	active := false
	toggled := &domain.WorkerOffer{ID: offerID, WorkerID: workerID, Active: false}

	m.catalogSvc.EXPECT().ToggleOffer(mock.Anything, offerID, workerID, false).Return(toggled, nil)

	w := doJSON(t, r, http.MethodPatch, "/api/worker-services/"+offerID+"/toggle", workerID,
		dto.ToggleOfferRequest{Active: &active})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ToggleOffer_MissingActive(t *testing.T) {
	_, r := setupRouter(t)

	offerID := uuid.New().String()

	w := doJSON(t, r, http.MethodPatch, "/api/worker-services/"+offerID+"/toggle", "w1",
		map[string]string{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListServiceWorkers_Success(t *testing.T) {
	m, r := setupRouter(t)

	serviceID := uuid.New().String()
	details := []*domain.OfferDetails{
		{
			Offer:  domain.WorkerOffer{ID: "o1", WorkerID: "w1", Price: 100},
			Worker: &domain.User{ID: "w1", Name: "Bob"},
		},
	}

	m.catalogSvc.EXPECT().WorkersForService(mock.Anything, serviceID).Return(details, nil)

	w := doJSON(t, r, http.MethodGet, "/api/worker-services/service/"+serviceID, "", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.OfferDetailsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Bob", resp[0].Worker.Name)
}

// --- Bookings ---

func TestHandler_GetBooking_Success(t *testing.T) {
	m, r := setupRouter(t)

	bookingID := uuid.New().String()
	customerID := uuid.New().String()
	booking := &domain.Booking{ID: bookingID, CustomerID: customerID, Status: domain.BookingStatusConfirmed}

	m.bookingSvc.EXPECT().Get(mock.Anything, bookingID, customerID).Return(booking, nil)

	w := doJSON(t, r, http.MethodGet, "/api/bookings/"+bookingID, customerID, nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_GetBooking_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	bookingID := uuid.New().String()

	m.bookingSvc.EXPECT().Get(mock.Anything, bookingID, "stranger").Return(nil, domain.ErrBookingNotFound)

	w := doJSON(t, r, http.MethodGet, "/api/bookings/"+bookingID, "stranger", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Notifications ---

func TestHandler_ListNotifications_Success(t *testing.T) {
	m, r := setupRouter(t)

	userID := uuid.New().String()
	notifications := []*domain.Notification{
		{ID: "n1", UserID: userID, Type: domain.NotificationTypeNewRequest, Title: "New Service Request"},
	}

	m.notificationSvc.EXPECT().ListForUser(mock.Anything, userID).Return(notifications, nil)

	w := doJSON(t, r, http.MethodGet, "/api/notifications", userID, nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.NotificationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "New Service Request", resp[0].Title)
}

func TestHandler_MarkNotificationRead_Success(t *testing.T) {
	m, r := setupRouter(t)

	notificationID := uuid.New().String()
	userID := uuid.New().String()

	m.notificationSvc.EXPECT().MarkRead(mock.Anything, notificationID, userID).Return(nil)

	w := doJSON(t, r, http.MethodPatch, "/api/notifications/"+notificationID+"/read", userID, nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_MarkNotificationRead_NotFound(t *testing.T) {
	m, r := setupRouter(t)

	notificationID := uuid.New().String()
	userID := uuid.New().String()

	m.notificationSvc.EXPECT().MarkRead(mock.Anything, notificationID, userID).
		Return(domain.ErrNotificationNotFound)

	w := doJSON(t, r, http.MethodPatch, "/api/notifications/"+notificationID+"/read", userID, nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Addresses ---

func TestHandler_CreateAddress_Success(t *testing.T) {
	m, r := setupRouter(t)

	customerID := uuid.New().String()
	addr := &domain.Address{
		ID:        uuid.New().String(),
		UserID:    customerID,
		Line1:     "12 Green Lane",
		City:      "Manchester",
		CreatedAt: time.Now(),
	}

	m.userSvc.EXPECT().CreateAddress(mock.Anything, domain.CreateAddressInput{
		UserID: customerID,
		Line1:  "12 Green Lane",
		City:   "Manchester",
	}).Return(addr, nil)

	body := dto.CreateAddressRequest{Line1: "12 Green Lane", City: "Manchester"}
	w := doJSON(t, r, http.MethodPost, "/api/addresses", customerID, body)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.AddressResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, addr.ID, resp.ID)
	assert.Equal(t, customerID, resp.UserID)
}

func TestHandler_CreateAddress_MissingCity(t *testing.T) {
	_, r := setupRouter(t)

	body := dto.CreateAddressRequest{Line1: "12 Green Lane"}
	w := doJSON(t, r, http.MethodPost, "/api/addresses", uuid.New().String(), body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListAddresses_Success(t *testing.T) {
	m, r := setupRouter(t)

	customerID := uuid.New().String()
	m.userSvc.EXPECT().ListAddresses(mock.Anything, customerID).
		Return([]*domain.Address{{ID: "a1", UserID: customerID, Line1: "12 Green Lane", City: "Manchester"}}, nil)

	w := doJSON(t, r, http.MethodGet, "/api/addresses", customerID, nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "12 Green Lane")
}

func TestHandler_CreateRequest_AddressNotFound(t *testing.T) {
	m, r := setupRouter(t)

	m.requestSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrAddressNotFound)

	body := dto.CreateRequestRequest{
		ServiceID:         uuid.New().String(),
		Description:       "leaking kitchen sink, water everywhere",
		PreferredDateTime: time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		AddressID:         uuid.New().String(),
	}
	w := doJSON(t, r, http.MethodPost, "/api/service-requests", uuid.New().String(), body)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "address not found")
}

// --- Users ---

func TestHandler_CreateUser_Success(t *testing.T) {
	m, r := setupRouter(t)

	user := &domain.User{
		ID:        uuid.New().String(),
		Name:      "Alice",
		Phone:     "+79001234567",
		Role:      domain.RoleCustomer,
		CreatedAt: time.Now(),
	}
	m.userSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(user, nil)

	w := doJSON(t, r, http.MethodPost, "/api/users", "", dto.CreateUserRequest{
		Name:  "Alice",
		Phone: "+79001234567",
		Role:  "customer",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Alice", resp.Name)
}

func TestHandler_CreateUser_InvalidRole(t *testing.T) {
	_, r := setupRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/users", "", dto.CreateUserRequest{
		Name:  "Alice",
		Phone: "+79001234567",
		Role:  "manager",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateUser_PhoneTaken(t *testing.T) {
	m, r := setupRouter(t)

	m.userSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, domain.ErrPhoneTaken)

	w := doJSON(t, r, http.MethodPost, "/api/users", "", dto.CreateUserRequest{
		Name:  "Alice",
		Phone: "+79001234567",
		Role:  "customer",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	m, r := setupRouter(t)

	m.catalogSvc.EXPECT().ListServices(mock.Anything).Return(nil, assert.AnError)

	w := doJSON(t, r, http.MethodGet, "/api/services", "", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "internal server error", resp.Error)
}
