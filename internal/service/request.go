package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nvkv0/HomeCall/internal/domain"
	"github.com/nvkv0/HomeCall/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const (
	minDescriptionLen = 10
	maxDescriptionLen = 500

	defaultServiceDuration = 60 * time.Minute
)

// RequestService orchestrates the service-request lifecycle: creation and
// worker fan-out, accept/reject negotiation, booking conversion and expiry.
type RequestService struct {
	requestRepo ports.RequestRepo
	offerRepo   ports.OfferRepo
	serviceRepo ports.ServiceRepo
	userRepo    ports.UserRepo
	addressRepo ports.AddressRepo
	notifier    ports.Notifier
	requestTTL  time.Duration
	logger      logger.Logger
}

func NewRequestService(
	requestRepo ports.RequestRepo,
	offerRepo ports.OfferRepo,
	serviceRepo ports.ServiceRepo,
	userRepo ports.UserRepo,
	addressRepo ports.AddressRepo,
	notifier ports.Notifier,
	requestTTL time.Duration,
	logger logger.Logger,
) *RequestService {
	return &RequestService{
		requestRepo: requestRepo,
		offerRepo:   offerRepo,
		serviceRepo: serviceRepo,
		userRepo:    userRepo,
		addressRepo: addressRepo,
		notifier:    notifier,
		requestTTL:  requestTTL,
		logger:      logger,
	}
}

func (s *RequestService) Create(ctx context.Context, input domain.CreateRequestInput) (*domain.ServiceRequest, error) {
	if l := len(input.Description); l < minDescriptionLen || l > maxDescriptionLen {
		return nil, fmt.Errorf("%w: description must be between %d and %d characters",
			domain.ErrValidation, minDescriptionLen, maxDescriptionLen)
	}
	if input.PreferredDateTime.Before(time.Now().Add(-time.Minute)) {
		return nil, fmt.Errorf("%w: preferred_date_time must not be in the past", domain.ErrValidation)
	}
	if input.AddressID == "" {
		return nil, fmt.Errorf("%w: address_id is required", domain.ErrValidation)
	}

	svc, err := s.serviceRepo.GetByID(ctx, input.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("check service: %w", err)
	}

	addr, err := s.addressRepo.GetByID(ctx, input.AddressID)
	if err != nil {
		return nil, fmt.Errorf("check address: %w", err)
	}
	if addr.UserID != input.CustomerID {
		// Another user's address reads the same as a missing one.
		return nil, domain.ErrAddressNotFound
	}

	now := time.Now().UTC()
	req := &domain.ServiceRequest{
		ID:                uuid.New().String(),
		CustomerID:        input.CustomerID,
		ServiceID:         input.ServiceID,
		ServiceCategoryID: svc.CategoryID,
		Description:       input.Description,
		PreferredDateTime: input.PreferredDateTime,
		AddressID:         input.AddressID,
		Status:            domain.RequestStatusPending,
		ExpiresAt:         now.Add(s.requestTTL),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err = s.requestRepo.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	s.logger.Info("service request created",
		logger.String("request_id", req.ID),
		logger.String("customer_id", req.CustomerID),
		logger.String("service_id", req.ServiceID),
	)

	offers, err := s.offerRepo.ListQualified(ctx, req.ServiceID, nil)
	if err != nil {
		// The request exists either way; a failed fan-out lookup only costs
		// the initial notifications.
		s.logger.Error("failed to list qualified workers",
			logger.String("request_id", req.ID),
			logger.String("error", err.Error()),
		)
		return req, nil
	}

	workerIDs := offerWorkerIDs(offers)
	go s.notifier.NotifyNewRequest(context.WithoutCancel(ctx), workerIDs, req, svc)
	go s.notifier.NotifyRequestCreated(context.WithoutCancel(ctx), req, svc)

	return req, nil
}

func (s *RequestService) AcceptByWorker(ctx context.Context, requestID, workerID string) (*domain.ServiceRequest, error) {
	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("get request: %w", err)
	}
	if req.Status != domain.RequestStatusPending {
		return nil, domain.NewStatusConflict(req.Status)
	}

	if _, err = s.offerRepo.GetActive(ctx, workerID, req.ServiceID); err != nil {
		if errors.Is(err, domain.ErrOfferNotFound) {
			return nil, domain.ErrNotQualified
		}
		return nil, fmt.Errorf("check qualification: %w", err)
	}

	// The repository re-checks the pending status atomically; the early
	// check above only short-circuits the obvious cases.
	updated, err := s.requestRepo.Accept(ctx, requestID, workerID, time.Now().UTC())
	if err != nil {
		s.notifyIfLazilyExpired(ctx, updated)
		return nil, fmt.Errorf("accept request: %w", err)
	}

	s.logger.Info("service request accepted",
		logger.String("request_id", requestID),
		logger.String("worker_id", workerID),
	)

	svc, err := s.serviceRepo.GetByID(ctx, updated.ServiceID)
	if err != nil {
		s.logger.Error("failed to get service for notification",
			logger.String("service_id", updated.ServiceID),
			logger.String("error", err.Error()),
		)
		return updated, nil
	}
	worker, err := s.userRepo.GetByID(ctx, workerID)
	if err != nil {
		s.logger.Error("failed to get worker for notification",
			logger.String("worker_id", workerID),
			logger.String("error", err.Error()),
		)
		return updated, nil
	}

	go s.notifier.NotifyRequestAccepted(context.WithoutCancel(ctx), updated, svc, worker)

	return updated, nil
}

func (s *RequestService) RejectByWorker(ctx context.Context, requestID, workerID, reason string) (*domain.ServiceRequest, error) {
	if err := validateReason(reason); err != nil {
		return nil, err
	}

	updated, remaining, err := s.requestRepo.RejectByWorker(ctx, requestID, workerID, reason)
	if err != nil {
		s.notifyIfLazilyExpired(ctx, updated)
		return nil, fmt.Errorf("reject request: %w", err)
	}

	s.logger.Info("service request rejected by worker",
		logger.String("request_id", requestID),
		logger.String("worker_id", workerID),
		logger.Int("remaining_workers", len(remaining)),
	)

	s.fanOutAfterRejection(ctx, updated, remaining)

	return updated, nil
}

func (s *RequestService) ApproveByCustomer(ctx context.Context, requestID, customerID string) (*domain.ServiceRequest, *domain.Booking, error) {
	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, nil, fmt.Errorf("get request: %w", err)
	}
	if req.CustomerID != customerID {
		return nil, nil, domain.ErrRequestNotFound
	}
	if req.Status != domain.RequestStatusAccepted || req.AcceptedBy == nil {
		return nil, nil, domain.NewStatusConflict(req.Status)
	}
	workerID := req.AcceptedBy.WorkerID

	offer, err := s.offerRepo.GetActive(ctx, workerID, req.ServiceID)
	if err != nil {
		if errors.Is(err, domain.ErrOfferNotFound) {
			// accepted_by points at a worker with no active offer: the
			// qualification table and the acceptance disagree.
			s.logger.Error("accepted worker has no active offer",
				logger.String("request_id", requestID),
				logger.String("worker_id", workerID),
				logger.String("service_id", req.ServiceID),
			)
			return nil, nil, domain.ErrOfferNotFound
		}
		return nil, nil, fmt.Errorf("get accepted offer: %w", err)
	}

	svc, err := s.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		return nil, nil, fmt.Errorf("get service: %w", err)
	}

	duration := time.Duration(svc.DurationMinutes) * time.Minute
	if duration <= 0 {
		duration = defaultServiceDuration
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:            uuid.New().String(),
		CustomerID:    req.CustomerID,
		WorkerID:      workerID,
		WorkerOfferID: offer.ID,
		AddressID:     req.AddressID,
		Status:        domain.BookingStatusConfirmed,
		BookingDate:   req.PreferredDateTime,
		SlotStart:     req.PreferredDateTime,
		SlotEnd:       req.PreferredDateTime.Add(duration),
		TotalAmount:   offer.Price,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	updated, err := s.requestRepo.Approve(ctx, requestID, customerID, workerID, booking)
	if err != nil {
		return nil, nil, fmt.Errorf("approve request: %w", err)
	}

	s.logger.Info("booking created from request",
		logger.String("request_id", requestID),
		logger.String("booking_id", booking.ID),
		logger.String("worker_id", workerID),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), updated, booking, svc)

	return updated, booking, nil
}

func (s *RequestService) RejectByCustomer(ctx context.Context, requestID, customerID, reason string) (*domain.ServiceRequest, error) {
	if err := validateReason(reason); err != nil {
		return nil, err
	}

	updated, rejectedWorkerID, remaining, err := s.requestRepo.RejectByCustomer(ctx, requestID, customerID, reason)
	if err != nil {
		return nil, fmt.Errorf("reject worker: %w", err)
	}

	s.logger.Info("worker rejected by customer",
		logger.String("request_id", requestID),
		logger.String("worker_id", rejectedWorkerID),
		logger.Int("remaining_workers", len(remaining)),
	)

	go s.notifier.NotifyWorkerRejected(context.WithoutCancel(ctx), updated, rejectedWorkerID, reason)
	s.fanOutAfterRejection(ctx, updated, remaining)

	return updated, nil
}

// ListForWorker returns pending, unexpired requests for services the worker
// offers, excluding requests the worker already rejected, assembled with
// service details.
func (s *RequestService) ListForWorker(ctx context.Context, workerID string) ([]*domain.RequestDetails, error) {
	reqs, err := s.requestRepo.ListForWorker(ctx, workerID, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}

	return s.assemble(ctx, reqs)
}

func (s *RequestService) ListForCustomer(ctx context.Context, customerID string) ([]*domain.RequestDetails, error) {
	reqs, err := s.requestRepo.ListForCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}

	return s.assemble(ctx, reqs)
}

// ExpireOverdue is the scheduler hook: overdue pending requests flip to
// expired and their customers are notified once each.
func (s *RequestService) ExpireOverdue(ctx context.Context) ([]*domain.ServiceRequest, error) {
	expired, err := s.requestRepo.ExpireOverdue(ctx, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("expire overdue: %w", err)
	}

	if len(expired) > 0 {
		s.logger.Info("overdue requests expired",
			logger.Int("count", len(expired)),
		)
		go s.notifyExpired(context.WithoutCancel(ctx), expired)
	}

	return expired, nil
}

// notifyIfLazilyExpired handles the repository signalling that a failed
// transition settled an overdue pending request to expired: the repository
// returns the expired request alongside the conflict, once, and the customer
// notification fires here.
func (s *RequestService) notifyIfLazilyExpired(ctx context.Context, req *domain.ServiceRequest) {
	if req == nil || req.Status != domain.RequestStatusExpired {
		return
	}

	s.logger.Info("overdue request expired on access",
		logger.String("request_id", req.ID),
	)
	go s.notifier.NotifyRequestExpired(context.WithoutCancel(ctx), req)
}

func (s *RequestService) notifyExpired(ctx context.Context, reqs []*domain.ServiceRequest) {
	for _, req := range reqs {
		s.notifier.NotifyRequestExpired(ctx, req)
	}
}

func (s *RequestService) fanOutAfterRejection(ctx context.Context, req *domain.ServiceRequest, remaining []string) {
	if req.Status == domain.RequestStatusExpired {
		go s.notifier.NotifyRequestExpired(context.WithoutCancel(ctx), req)
		return
	}

	svc, err := s.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		s.logger.Error("failed to get service for re-fan-out",
			logger.String("request_id", req.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	go s.notifier.NotifyNewRequest(context.WithoutCancel(ctx), remaining, req, svc)
}

// assemble builds the read model: raw requests joined in memory with their
// services and accepted workers, batched to avoid per-row queries.
func (s *RequestService) assemble(ctx context.Context, reqs []*domain.ServiceRequest) ([]*domain.RequestDetails, error) {
	serviceIDs := make([]string, 0, len(reqs))
	workerIDs := make([]string, 0, len(reqs))
	seenServices := make(map[string]struct{})
	for _, req := range reqs {
		if _, ok := seenServices[req.ServiceID]; !ok {
			seenServices[req.ServiceID] = struct{}{}
			serviceIDs = append(serviceIDs, req.ServiceID)
		}
		if req.AcceptedBy != nil {
			workerIDs = append(workerIDs, req.AcceptedBy.WorkerID)
		}
	}

	services, err := s.serviceRepo.ListByIDs(ctx, serviceIDs)
	if err != nil {
		return nil, fmt.Errorf("load services: %w", err)
	}
	workers, err := s.userRepo.ListByIDs(ctx, workerIDs)
	if err != nil {
		return nil, fmt.Errorf("load workers: %w", err)
	}

	servicesByID := make(map[string]*domain.Service, len(services))
	for _, svc := range services {
		servicesByID[svc.ID] = svc
	}
	workersByID := make(map[string]*domain.User, len(workers))
	for _, w := range workers {
		workersByID[w.ID] = w
	}

	res := make([]*domain.RequestDetails, 0, len(reqs))
	for _, req := range reqs {
		details := &domain.RequestDetails{
			Request: *req,
			Service: servicesByID[req.ServiceID],
		}
		if req.AcceptedBy != nil {
			details.Worker = workersByID[req.AcceptedBy.WorkerID]
		}
		res = append(res, details)
	}

	return res, nil
}

func validateReason(reason string) error {
	if l := len(reason); l < 5 || l > 200 {
		return fmt.Errorf("%w: reason must be between 5 and 200 characters", domain.ErrValidation)
	}
	return nil
}

func offerWorkerIDs(offers []*domain.WorkerOffer) []string {
	ids := make([]string, 0, len(offers))
	for _, o := range offers {
		ids = append(ids, o.WorkerID)
	}
	return ids
}
