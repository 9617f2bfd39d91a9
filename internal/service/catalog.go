package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nvkv0/HomeCall/internal/domain"
	"github.com/nvkv0/HomeCall/internal/service/ports"
)

// CatalogService covers the service catalog and worker offers (the
// qualification table).
type CatalogService struct {
	serviceRepo ports.ServiceRepo
	offerRepo   ports.OfferRepo
	userRepo    ports.UserRepo
}

func NewCatalogService(serviceRepo ports.ServiceRepo, offerRepo ports.OfferRepo, userRepo ports.UserRepo) *CatalogService {
	return &CatalogService{
		serviceRepo: serviceRepo,
		offerRepo:   offerRepo,
		userRepo:    userRepo,
	}
}

func (s *CatalogService) ListServices(ctx context.Context) ([]*domain.Service, error) {
	return s.serviceRepo.List(ctx)
}

func (s *CatalogService) AddOffer(ctx context.Context, input domain.CreateOfferInput) (*domain.WorkerOffer, error) {
	if input.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", domain.ErrValidation)
	}

	if _, err := s.serviceRepo.GetByID(ctx, input.ServiceID); err != nil {
		return nil, fmt.Errorf("check service: %w", err)
	}

	experience := input.Experience
	if experience == "" {
		experience = "0 years"
	}

	offer := &domain.WorkerOffer{
		ID:          uuid.New().String(),
		WorkerID:    input.WorkerID,
		ServiceID:   input.ServiceID,
		Price:       input.Price,
		Experience:  experience,
		Description: input.Description,
		Active:      true,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.offerRepo.Create(ctx, offer); err != nil {
		return nil, fmt.Errorf("create offer: %w", err)
	}

	return offer, nil
}

func (s *CatalogService) ListWorkerOffers(ctx context.Context, workerID string) ([]*domain.WorkerOffer, error) {
	return s.offerRepo.ListByWorker(ctx, workerID)
}

// WorkersForService returns active offers for a service joined in memory
// with the offering workers.
func (s *CatalogService) WorkersForService(ctx context.Context, serviceID string) ([]*domain.OfferDetails, error) {
	if _, err := s.serviceRepo.GetByID(ctx, serviceID); err != nil {
		return nil, fmt.Errorf("check service: %w", err)
	}

	offers, err := s.offerRepo.ListByService(ctx, serviceID)
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}

	workerIDs := make([]string, 0, len(offers))
	for _, o := range offers {
		workerIDs = append(workerIDs, o.WorkerID)
	}
	workers, err := s.userRepo.ListByIDs(ctx, workerIDs)
	if err != nil {
		return nil, fmt.Errorf("load workers: %w", err)
	}
	workersByID := make(map[string]*domain.User, len(workers))
	for _, w := range workers {
		workersByID[w.ID] = w
	}

	res := make([]*domain.OfferDetails, 0, len(offers))
	for _, o := range offers {
		res = append(res, &domain.OfferDetails{
			Offer:  *o,
			Worker: workersByID[o.WorkerID],
		})
	}

	return res, nil
}

func (s *CatalogService) ToggleOffer(ctx context.Context, offerID, workerID string, active bool) (*domain.WorkerOffer, error) {
	return s.offerRepo.SetActive(ctx, offerID, workerID, active)
}
