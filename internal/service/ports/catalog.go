package ports

import (
	"context"

	"github.com/nvkv0/HomeCall/internal/domain"
)

type ServiceRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Service, error)
	List(ctx context.Context) ([]*domain.Service, error)
	ListByIDs(ctx context.Context, ids []string) ([]*domain.Service, error)
}

type OfferRepo interface {
	Create(ctx context.Context, o *domain.WorkerOffer) error
	GetActive(ctx context.Context, workerID, serviceID string) (*domain.WorkerOffer, error)
	ListQualified(ctx context.Context, serviceID string, excluding []string) ([]*domain.WorkerOffer, error)
	ListByWorker(ctx context.Context, workerID string) ([]*domain.WorkerOffer, error)
	ListByService(ctx context.Context, serviceID string) ([]*domain.WorkerOffer, error)
	SetActive(ctx context.Context, id, workerID string, active bool) (*domain.WorkerOffer, error)
}
