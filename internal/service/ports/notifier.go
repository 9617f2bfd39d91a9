package ports

import (
	"context"

	"github.com/nvkv0/HomeCall/internal/domain"
)

// Notifier fans out request lifecycle notifications. Delivery is
// fire-and-forget: implementations log failures and never report them back.
type Notifier interface {
	NotifyNewRequest(ctx context.Context, workerIDs []string, req *domain.ServiceRequest, svc *domain.Service)
	NotifyRequestCreated(ctx context.Context, req *domain.ServiceRequest, svc *domain.Service)
	NotifyRequestAccepted(ctx context.Context, req *domain.ServiceRequest, svc *domain.Service, worker *domain.User)
	NotifyRequestExpired(ctx context.Context, req *domain.ServiceRequest)
	NotifyWorkerRejected(ctx context.Context, req *domain.ServiceRequest, workerID, reason string)
	NotifyBookingCreated(ctx context.Context, req *domain.ServiceRequest, booking *domain.Booking, svc *domain.Service)
}
