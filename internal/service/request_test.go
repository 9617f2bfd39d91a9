package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nvkv0/HomeCall/internal/domain"
	"github.com/nvkv0/HomeCall/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newRequestService(t *testing.T) (*RequestService, *mocks.MockRequestRepo, *mocks.MockOfferRepo, *mocks.MockServiceRepo, *mocks.MockUserRepo, *mocks.MockAddressRepo, *mocks.MockNotifier) {
	t.Helper()
	requestRepo := mocks.NewMockRequestRepo(t)
	offerRepo := mocks.NewMockOfferRepo(t)
	serviceRepo := mocks.NewMockServiceRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	addressRepo := mocks.NewMockAddressRepo(t)
	notifier := mocks.NewMockNotifier(t)
	log := newTestLogger(t)

	svc := NewRequestService(requestRepo, offerRepo, serviceRepo, userRepo, addressRepo, notifier, 7*24*time.Hour, log)
	return svc, requestRepo, offerRepo, serviceRepo, userRepo, addressRepo, notifier
}

func validCreateInput() domain.CreateRequestInput {
	return domain.CreateRequestInput{
		CustomerID:        "c1",
		ServiceID:         "s1",
		Description:       "leaking kitchen sink, water everywhere",
		PreferredDateTime: time.Now().Add(24 * time.Hour),
		AddressID:         "a1",
	}
}

func TestRequestService_Create_Success(t *testing.T) {
	svc, requestRepo, offerRepo, serviceRepo, _, addressRepo, notifier := newRequestService(t)

	service := &domain.Service{ID: "s1", CategoryID: "cat1", Name: "Plumbing"}
	offers := []*domain.WorkerOffer{
		{ID: "o1", WorkerID: "w1", ServiceID: "s1"},
		{ID: "o2", WorkerID: "w2", ServiceID: "s1"},
	}

	serviceRepo.EXPECT().GetByID(mock.Anything, "s1").Return(service, nil)
	addressRepo.EXPECT().GetByID(mock.Anything, "a1").Return(&domain.Address{ID: "a1", UserID: "c1"}, nil)
	requestRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	offerRepo.EXPECT().ListQualified(mock.Anything, "s1", []string(nil)).Return(offers, nil)
	notifier.EXPECT().NotifyNewRequest(mock.Anything, []string{"w1", "w2"}, mock.Anything, service).Return()
	notifier.EXPECT().NotifyRequestCreated(mock.Anything, mock.Anything, service).Return()

	req, err := svc.Create(context.Background(), validCreateInput())

	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusPending, req.Status)
	assert.Equal(t, "c1", req.CustomerID)
	assert.Equal(t, "cat1", req.ServiceCategoryID)
	assert.NotEmpty(t, req.ID)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), req.ExpiresAt, time.Minute)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestRequestService_Create_DescriptionTooShort(t *testing.T) {
	svc, _, _, _, _, _, _ := newRequestService(t)

	input := validCreateInput()
	input.Description = "short"

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRequestService_Create_PreferredTimeInPast(t *testing.T) {
	svc, _, _, _, _, _, _ := newRequestService(t)

	input := validCreateInput()
	input.PreferredDateTime = time.Now().Add(-2 * time.Hour)

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRequestService_Create_MissingAddress(t *testing.T) {
	svc, _, _, _, _, _, _ := newRequestService(t)

	input := validCreateInput()
	input.AddressID = ""

	_, err := svc.Create(context.Background(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRequestService_Create_ServiceNotFound(t *testing.T) {
	svc, _, _, serviceRepo, _, _, _ := newRequestService(t)

	serviceRepo.EXPECT().GetByID(mock.Anything, "s1").Return(nil, domain.ErrServiceNotFound)

	_, err := svc.Create(context.Background(), validCreateInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrServiceNotFound)
}

func TestRequestService_Create_FanOutLookupFails(t *testing.T) {
	svc, requestRepo, offerRepo, serviceRepo, _, addressRepo, _ := newRequestService(t)

	service := &domain.Service{ID: "s1", CategoryID: "cat1"}

	serviceRepo.EXPECT().GetByID(mock.Anything, "s1").Return(service, nil)
	addressRepo.EXPECT().GetByID(mock.Anything, "a1").Return(&domain.Address{ID: "a1", UserID: "c1"}, nil)
	requestRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	offerRepo.EXPECT().ListQualified(mock.Anything, "s1", []string(nil)).Return(nil, errors.New("db error"))

	req, err := svc.Create(context.Background(), validCreateInput())

	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusPending, req.Status)
}

func TestRequestService_Create_AddressNotFound(t *testing.T) {
	svc, _, _, serviceRepo, _, addressRepo, _ := newRequestService(t)

	serviceRepo.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Service{ID: "s1", CategoryID: "cat1"}, nil)
	addressRepo.EXPECT().GetByID(mock.Anything, "a1").Return(nil, domain.ErrAddressNotFound)

	_, err := svc.Create(context.Background(), validCreateInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAddressNotFound)
}

func TestRequestService_Create_AddressNotOwned(t *testing.T) {
	svc, _, _, serviceRepo, _, addressRepo, _ := newRequestService(t)

	serviceRepo.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Service{ID: "s1", CategoryID: "cat1"}, nil)
	addressRepo.EXPECT().GetByID(mock.Anything, "a1").Return(&domain.Address{ID: "a1", UserID: "other"}, nil)

	_, err := svc.Create(context.Background(), validCreateInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAddressNotFound)
}

func TestRequestService_AcceptByWorker_Success(t *testing.T) {
	svc, requestRepo, offerRepo, serviceRepo, userRepo, _, notifier := newRequestService(t)

	pending := &domain.ServiceRequest{ID: "r1", ServiceID: "s1", Status: domain.RequestStatusPending}
	accepted := &domain.ServiceRequest{
		ID:        "r1",
		ServiceID: "s1",
		Status:    domain.RequestStatusAccepted,
		AcceptedBy: &domain.Acceptance{
			WorkerID:  "w1",
			Timestamp: time.Now(),
		},
	}
	service := &domain.Service{ID: "s1", Name: "Plumbing"}
	worker := &domain.User{ID: "w1", Name: "Bob"}

	requestRepo.EXPECT().GetByID(mock.Anything, "r1").Return(pending, nil)
	offerRepo.EXPECT().GetActive(mock.Anything, "w1", "s1").Return(&domain.WorkerOffer{ID: "o1"}, nil)
	requestRepo.EXPECT().Accept(mock.Anything, "r1", "w1", mock.Anything).Return(accepted, nil)
	serviceRepo.EXPECT().GetByID(mock.Anything, "s1").Return(service, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "w1").Return(worker, nil)
	notifier.EXPECT().NotifyRequestAccepted(mock.Anything, accepted, service, worker).Return()

	result, err := svc.AcceptByWorker(context.Background(), "r1", "w1")

	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusAccepted, result.Status)
	require.NotNil(t, result.AcceptedBy)
	assert.Equal(t, "w1", result.AcceptedBy.WorkerID)

	time.Sleep(50 * time.Millisecond)
}

func TestRequestService_AcceptByWorker_AlreadyAccepted(t *testing.T) {
	svc, requestRepo, _, _, _, _, _ := newRequestService(t)

	accepted := &domain.ServiceRequest{ID: "r1", Status: domain.RequestStatusAccepted}
	requestRepo.EXPECT().GetByID(mock.Anything, "r1").Return(accepted, nil)

	_, err := svc.AcceptByWorker(context.Background(), "r1", "w2")

	require.Error(t, err)
	var conflict *domain.StatusConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, domain.RequestStatusAccepted, conflict.Status)
}

func TestRequestService_AcceptByWorker_NotQualified(t *testing.T) {
	svc, requestRepo, offerRepo, _, _, _, _ := newRequestService(t)

	pending := &domain.ServiceRequest{ID: "r1", ServiceID: "s1", Status: domain.RequestStatusPending}

	requestRepo.EXPECT().GetByID(mock.Anything, "r1").Return(pending, nil)
	offerRepo.EXPECT().GetActive(mock.Anything, "w1", "s1").Return(nil, domain.ErrOfferNotFound)

	_, err := svc.AcceptByWorker(context.Background(), "r1", "w1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotQualified)
}

func TestRequestService_AcceptByWorker_LostRace(t *testing.T) {
	svc, requestRepo, offerRepo, _, _, _, _ := newRequestService(t)

	// The early status check saw pending but another worker won the
	// status-guarded update.
	pending := &domain.ServiceRequest{ID: "r1", ServiceID: "s1", Status: domain.RequestStatusPending}

	requestRepo.EXPECT().GetByID(mock.Anything, "r1").Return(pending, nil)
	offerRepo.EXPECT().GetActive(mock.Anything, "w1", "s1").Return(&domain.WorkerOffer{ID: "o1"}, nil)
	requestRepo.EXPECT().Accept(mock.Anything, "r1", "w1", mock.Anything).
		Return(nil, domain.NewStatusConflict(domain.RequestStatusAccepted))

	_, err := svc.AcceptByWorker(context.Background(), "r1", "w1")

	require.Error(t, err)
	var conflict *domain.StatusConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, domain.RequestStatusAccepted, conflict.Status)
}

func TestRequestService_AcceptByWorker_LapsedPendingExpires(t *testing.T) {
	svc, requestRepo, offerRepo, _, _, _, notifier := newRequestService(t)

	// The early status check saw pending, but the guarded update found the
	// window lapsed and settled the request to expired. The repo returns the
	// expired request alongside the conflict so the customer gets notified.
	pending := &domain.ServiceRequest{ID: "r1", ServiceID: "s1", Status: domain.RequestStatusPending}
	expired := &domain.ServiceRequest{ID: "r1", CustomerID: "c1", ServiceID: "s1", Status: domain.RequestStatusExpired}

	requestRepo.EXPECT().GetByID(mock.Anything, "r1").Return(pending, nil)
	offerRepo.EXPECT().GetActive(mock.Anything, "w1", "s1").Return(&domain.WorkerOffer{ID: "o1"}, nil)
	requestRepo.EXPECT().Accept(mock.Anything, "r1", "w1", mock.Anything).
		Return(expired, domain.NewStatusConflict(domain.RequestStatusExpired))
	notifier.EXPECT().NotifyRequestExpired(mock.Anything, expired).Return()

	_, err := svc.AcceptByWorker(context.Background(), "r1", "w1")

	require.Error(t, err)
	var conflict *domain.StatusConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, domain.RequestStatusExpired, conflict.Status)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestRequestService_AcceptByWorker_NotFound(t *testing.T) {
	svc, requestRepo, _, _, _, _, _ := newRequestService(t)

	requestRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrRequestNotFound)

	_, err := svc.AcceptByWorker(context.Background(), "missing", "w1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRequestNotFound)
}

func TestRequestService_RejectByWorker_ReFansOut(t *testing.T) {
	svc, requestRepo, _, serviceRepo, _, _, notifier := newRequestService(t)

	updated := &domain.ServiceRequest{ID: "r1", ServiceID: "s1", Status: domain.RequestStatusPending}
	service := &domain.Service{ID: "s1", Name: "Plumbing"}
	remaining := []string{"w2", "w3"}

	requestRepo.EXPECT().RejectByWorker(mock.Anything, "r1", "w1", "too far away").Return(updated, remaining, nil)
	serviceRepo.EXPECT().GetByID(mock.Anything, "s1").Return(service, nil)
	notifier.EXPECT().NotifyNewRequest(mock.Anything, remaining, updated, service).Return()

	result, err := svc.RejectByWorker(context.Background(), "r1", "w1", "too far away")

	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusPending, result.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestRequestService_RejectByWorker_LastWorkerExpires(t *testing.T) {
	svc, requestRepo, _, _, _, _, notifier := newRequestService(t)

	expired := &domain.ServiceRequest{ID: "r1", ServiceID: "s1", Status: domain.RequestStatusExpired}

	requestRepo.EXPECT().RejectByWorker(mock.Anything, "r1", "w1", "fully booked").Return(expired, nil, nil)
	notifier.EXPECT().NotifyRequestExpired(mock.Anything, expired).Return()

	result, err := svc.RejectByWorker(context.Background(), "r1", "w1", "fully booked")

	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusExpired, result.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestRequestService_RejectByWorker_LapsedPendingExpires(t *testing.T) {
	svc, requestRepo, _, _, _, _, notifier := newRequestService(t)

	expired := &domain.ServiceRequest{ID: "r1", CustomerID: "c1", ServiceID: "s1", Status: domain.RequestStatusExpired}

	requestRepo.EXPECT().RejectByWorker(mock.Anything, "r1", "w1", "too far away").
		Return(expired, nil, domain.NewStatusConflict(domain.RequestStatusExpired))
	notifier.EXPECT().NotifyRequestExpired(mock.Anything, expired).Return()

	_, err := svc.RejectByWorker(context.Background(), "r1", "w1", "too far away")

	require.Error(t, err)
	var conflict *domain.StatusConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, domain.RequestStatusExpired, conflict.Status)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestRequestService_RejectByWorker_ReasonTooShort(t *testing.T) {
	svc, _, _, _, _, _, _ := newRequestService(t)

	_, err := svc.RejectByWorker(context.Background(), "r1", "w1", "no")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRequestService_RejectByWorker_NotPending(t *testing.T) {
	svc, requestRepo, _, _, _, _, _ := newRequestService(t)

	requestRepo.EXPECT().RejectByWorker(mock.Anything, "r1", "w1", "too far away").
		Return(nil, nil, domain.NewStatusConflict(domain.RequestStatusAccepted))

	_, err := svc.RejectByWorker(context.Background(), "r1", "w1", "too far away")

	require.Error(t, err)
	var conflict *domain.StatusConflictError
	assert.ErrorAs(t, err, &conflict)
}

func TestRequestService_ApproveByCustomer_Success(t *testing.T) {
	svc, requestRepo, offerRepo, serviceRepo, _, _, notifier := newRequestService(t)

	preferred := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)
	accepted := &domain.ServiceRequest{
		ID:                "r1",
		CustomerID:        "c1",
		ServiceID:         "s1",
		AddressID:         "a1",
		PreferredDateTime: preferred,
		Status:            domain.RequestStatusAccepted,
		AcceptedBy:        &domain.Acceptance{WorkerID: "w1", Timestamp: time.Now()},
	}
	offer := &domain.WorkerOffer{ID: "o1", WorkerID: "w1", ServiceID: "s1", Price: 150}
	service := &domain.Service{ID: "s1", Name: "Plumbing", DurationMinutes: 90}
	approved := &domain.ServiceRequest{ID: "r1", CustomerID: "c1", ServiceID: "s1", Status: domain.RequestStatusBookingCreated}

	requestRepo.EXPECT().GetByID(mock.Anything, "r1").Return(accepted, nil)
	offerRepo.EXPECT().GetActive(mock.Anything, "w1", "s1").Return(offer, nil)
	serviceRepo.EXPECT().GetByID(mock.Anything, "s1").Return(service, nil)
	requestRepo.EXPECT().Approve(mock.Anything, "r1", "c1", "w1", mock.Anything).Return(approved, nil)
	notifier.EXPECT().NotifyBookingCreated(mock.Anything, approved, mock.Anything, service).Return()

	result, booking, err := svc.ApproveByCustomer(context.Background(), "r1", "c1")

	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusBookingCreated, result.Status)
	require.NotNil(t, booking)
	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, "c1", booking.CustomerID)
	assert.Equal(t, "w1", booking.WorkerID)
	assert.Equal(t, "o1", booking.WorkerOfferID)
	assert.Equal(t, float64(150), booking.TotalAmount)
	assert.Equal(t, preferred, booking.SlotStart)
	assert.Equal(t, preferred.Add(90*time.Minute), booking.SlotEnd)

	time.Sleep(50 * time.Millisecond)
}

func TestRequestService_ApproveByCustomer_DefaultDuration(t *testing.T) {
	svc, requestRepo, offerRepo, serviceRepo, _, _, notifier := newRequestService(t)

	preferred := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)
	accepted := &domain.ServiceRequest{
		ID:                "r1",
		CustomerID:        "c1",
		ServiceID:         "s1",
		PreferredDateTime: preferred,
		Status:            domain.RequestStatusAccepted,
		AcceptedBy:        &domain.Acceptance{WorkerID: "w1", Timestamp: time.Now()},
	}
	offer := &domain.WorkerOffer{ID: "o1", WorkerID: "w1", Price: 80}
	service := &domain.Service{ID: "s1"} // no duration configured
	approved := &domain.ServiceRequest{ID: "r1", Status: domain.RequestStatusBookingCreated}

	requestRepo.EXPECT().GetByID(mock.Anything, "r1").Return(accepted, nil)
	offerRepo.EXPECT().GetActive(mock.Anything, "w1", "s1").Return(offer, nil)
	serviceRepo.EXPECT().GetByID(mock.Anything, "s1").Return(service, nil)
	requestRepo.EXPECT().Approve(mock.Anything, "r1", "c1", "w1", mock.Anything).Return(approved, nil)
	notifier.EXPECT().NotifyBookingCreated(mock.Anything, approved, mock.Anything, service).Return()

	_, booking, err := svc.ApproveByCustomer(context.Background(), "r1", "c1")

	require.NoError(t, err)
	assert.Equal(t, preferred.Add(60*time.Minute), booking.SlotEnd)

	time.Sleep(50 * time.Millisecond)
}

func TestRequestService_ApproveByCustomer_WrongCustomer(t *testing.T) {
	svc, requestRepo, _, _, _, _, _ := newRequestService(t)

	accepted := &domain.ServiceRequest{
		ID:         "r1",
		CustomerID: "c1",
		Status:     domain.RequestStatusAccepted,
		AcceptedBy: &domain.Acceptance{WorkerID: "w1"},
	}
	requestRepo.EXPECT().GetByID(mock.Anything, "r1").Return(accepted, nil)

	_, _, err := svc.ApproveByCustomer(context.Background(), "r1", "other")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRequestNotFound)
}

func TestRequestService_ApproveByCustomer_NotAccepted(t *testing.T) {
	svc, requestRepo, _, _, _, _, _ := newRequestService(t)

	pending := &domain.ServiceRequest{ID: "r1", CustomerID: "c1", Status: domain.RequestStatusPending}
	requestRepo.EXPECT().GetByID(mock.Anything, "r1").Return(pending, nil)

	_, _, err := svc.ApproveByCustomer(context.Background(), "r1", "c1")

	require.Error(t, err)
	var conflict *domain.StatusConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, domain.RequestStatusPending, conflict.Status)
}

func TestRequestService_RejectByCustomer_NotifiesRejectedWorker(t *testing.T) {
	svc, requestRepo, _, serviceRepo, _, _, notifier := newRequestService(t)

	// accepted_by is already cleared on the returned request; the repo
	// reports which worker was rejected separately.
	updated := &domain.ServiceRequest{ID: "r1", ServiceID: "s1", Status: domain.RequestStatusPending}
	service := &domain.Service{ID: "s1", Name: "Plumbing"}
	remaining := []string{"w2"}

	requestRepo.EXPECT().RejectByCustomer(mock.Anything, "r1", "c1", "found someone cheaper").
		Return(updated, "w1", remaining, nil)
	notifier.EXPECT().NotifyWorkerRejected(mock.Anything, updated, "w1", "found someone cheaper").Return()
	serviceRepo.EXPECT().GetByID(mock.Anything, "s1").Return(service, nil)
	notifier.EXPECT().NotifyNewRequest(mock.Anything, remaining, updated, service).Return()

	result, err := svc.RejectByCustomer(context.Background(), "r1", "c1", "found someone cheaper")

	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusPending, result.Status)
	assert.Nil(t, result.AcceptedBy)

	time.Sleep(50 * time.Millisecond)
}

func TestRequestService_RejectByCustomer_NoWorkersLeft(t *testing.T) {
	svc, requestRepo, _, _, _, _, notifier := newRequestService(t)

	expired := &domain.ServiceRequest{ID: "r1", ServiceID: "s1", Status: domain.RequestStatusExpired}

	requestRepo.EXPECT().RejectByCustomer(mock.Anything, "r1", "c1", "changed my mind").
		Return(expired, "w1", nil, nil)
	notifier.EXPECT().NotifyWorkerRejected(mock.Anything, expired, "w1", "changed my mind").Return()
	notifier.EXPECT().NotifyRequestExpired(mock.Anything, expired).Return()

	result, err := svc.RejectByCustomer(context.Background(), "r1", "c1", "changed my mind")

	require.NoError(t, err)
	assert.Equal(t, domain.RequestStatusExpired, result.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestRequestService_RejectByCustomer_NotAccepted(t *testing.T) {
	svc, requestRepo, _, _, _, _, _ := newRequestService(t)

	requestRepo.EXPECT().RejectByCustomer(mock.Anything, "r1", "c1", "changed my mind").
		Return(nil, "", nil, domain.NewStatusConflict(domain.RequestStatusPending))

	_, err := svc.RejectByCustomer(context.Background(), "r1", "c1", "changed my mind")

	require.Error(t, err)
	var conflict *domain.StatusConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, domain.RequestStatusPending, conflict.Status)
}

func TestRequestService_ListForWorker_AssemblesDetails(t *testing.T) {
	svc, requestRepo, _, serviceRepo, userRepo, _, _ := newRequestService(t)

	reqs := []*domain.ServiceRequest{
		{ID: "r1", ServiceID: "s1", Status: domain.RequestStatusPending},
		{ID: "r2", ServiceID: "s2", Status: domain.RequestStatusPending},
	}
	services := []*domain.Service{
		{ID: "s1", Name: "Plumbing"},
		{ID: "s2", Name: "Cleaning"},
	}

	requestRepo.EXPECT().ListForWorker(mock.Anything, "w1", mock.Anything).Return(reqs, nil)
	serviceRepo.EXPECT().ListByIDs(mock.Anything, []string{"s1", "s2"}).Return(services, nil)
	userRepo.EXPECT().ListByIDs(mock.Anything, []string{}).Return(nil, nil)

	result, err := svc.ListForWorker(context.Background(), "w1")

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "Plumbing", result[0].Service.Name)
	assert.Equal(t, "Cleaning", result[1].Service.Name)
	assert.Nil(t, result[0].Worker)
}

func TestRequestService_ListForCustomer_IncludesAcceptedWorker(t *testing.T) {
	svc, requestRepo, _, serviceRepo, userRepo, _, _ := newRequestService(t)

	reqs := []*domain.ServiceRequest{
		{
			ID:         "r1",
			ServiceID:  "s1",
			Status:     domain.RequestStatusAccepted,
			AcceptedBy: &domain.Acceptance{WorkerID: "w1"},
		},
	}
	services := []*domain.Service{{ID: "s1", Name: "Plumbing"}}
	workers := []*domain.User{{ID: "w1", Name: "Bob"}}

	requestRepo.EXPECT().ListForCustomer(mock.Anything, "c1").Return(reqs, nil)
	serviceRepo.EXPECT().ListByIDs(mock.Anything, []string{"s1"}).Return(services, nil)
	userRepo.EXPECT().ListByIDs(mock.Anything, []string{"w1"}).Return(workers, nil)

	result, err := svc.ListForCustomer(context.Background(), "c1")

	require.NoError(t, err)
	require.Len(t, result, 1)
	require.NotNil(t, result[0].Worker)
	assert.Equal(t, "Bob", result[0].Worker.Name)
}

func TestRequestService_ExpireOverdue_NotifiesCustomers(t *testing.T) {
	svc, requestRepo, _, _, _, _, notifier := newRequestService(t)

	expired := []*domain.ServiceRequest{
		{ID: "r1", CustomerID: "c1", Status: domain.RequestStatusExpired},
		{ID: "r2", CustomerID: "c2", Status: domain.RequestStatusExpired},
	}

	requestRepo.EXPECT().ExpireOverdue(mock.Anything, mock.Anything).Return(expired, nil)
	notifier.EXPECT().NotifyRequestExpired(mock.Anything, expired[0]).Return()
	notifier.EXPECT().NotifyRequestExpired(mock.Anything, expired[1]).Return()

	result, err := svc.ExpireOverdue(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)

	time.Sleep(100 * time.Millisecond) // goroutine notify
}

func TestRequestService_ExpireOverdue_NoneExpired(t *testing.T) {
	svc, requestRepo, _, _, _, _, _ := newRequestService(t)

	requestRepo.EXPECT().ExpireOverdue(mock.Anything, mock.Anything).Return(nil, nil)

	result, err := svc.ExpireOverdue(context.Background())

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestRequestService_ExpireOverdue_RepoError(t *testing.T) {
	svc, requestRepo, _, _, _, _, _ := newRequestService(t)

	requestRepo.EXPECT().ExpireOverdue(mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.ExpireOverdue(context.Background())

	require.Error(t, err)
}
