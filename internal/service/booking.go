package service

import (
	"context"
	"fmt"

	"github.com/nvkv0/HomeCall/internal/domain"
	"github.com/nvkv0/HomeCall/internal/service/ports"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
}

func NewBookingService(bookingRepo ports.BookingRepo) *BookingService {
	return &BookingService{bookingRepo: bookingRepo}
}

func (s *BookingService) ListByCustomer(ctx context.Context, customerID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByCustomer(ctx, customerID)
}

func (s *BookingService) ListByWorker(ctx context.Context, workerID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByWorker(ctx, workerID)
}

// Get enforces ownership: a booking is visible only to its customer or
// worker. Everyone else sees not-found.
func (s *BookingService) Get(ctx context.Context, id, userID string) (*domain.Booking, error) {
	b, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if b.CustomerID != userID && b.WorkerID != userID {
		return nil, domain.ErrBookingNotFound
	}

	return b, nil
}
