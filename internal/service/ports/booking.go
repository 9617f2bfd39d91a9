package ports

import (
	"context"

	"github.com/nvkv0/HomeCall/internal/domain"
)

type BookingRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListByCustomer(ctx context.Context, customerID string) ([]*domain.Booking, error)
	ListByWorker(ctx context.Context, workerID string) ([]*domain.Booking, error)
}
