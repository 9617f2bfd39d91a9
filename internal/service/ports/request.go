package ports

import (
	"context"
	"time"

	"github.com/nvkv0/HomeCall/internal/domain"
)

type RequestRepo interface {
	Create(ctx context.Context, req *domain.ServiceRequest) error
	GetByID(ctx context.Context, id string) (*domain.ServiceRequest, error)
	Accept(ctx context.Context, id, workerID string, at time.Time) (*domain.ServiceRequest, error)
	RejectByWorker(ctx context.Context, id, workerID, reason string) (*domain.ServiceRequest, []string, error)
	RejectByCustomer(ctx context.Context, id, customerID, reason string) (*domain.ServiceRequest, string, []string, error)
	Approve(ctx context.Context, id, customerID, workerID string, booking *domain.Booking) (*domain.ServiceRequest, error)
	ListForWorker(ctx context.Context, workerID string, now time.Time) ([]*domain.ServiceRequest, error)
	ListForCustomer(ctx context.Context, customerID string) ([]*domain.ServiceRequest, error)
	ExpireOverdue(ctx context.Context, now time.Time) ([]*domain.ServiceRequest, error)
}
