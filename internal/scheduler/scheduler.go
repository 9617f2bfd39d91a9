package scheduler

import (
	"context"
	"time"

	"github.com/nvkv0/HomeCall/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type requestExpirer interface {
	ExpireOverdue(ctx context.Context) ([]*domain.ServiceRequest, error)
}

// Scheduler periodically expires overdue pending requests. The lifecycle
// also checks expiry lazily, so the sweep only shortens how long an overdue
// request stays visible.
type Scheduler struct {
	requestService requestExpirer
	interval       time.Duration
	logger         logger.Logger
}

func New(
	requestService requestExpirer,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		requestService: requestService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	expired, err := s.requestService.ExpireOverdue(ctx)
	if err != nil {
		s.logger.Error("failed to expire overdue requests",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, req := range expired {
		s.logger.Info("service request expired",
			logger.String("request_id", req.ID),
			logger.String("customer_id", req.CustomerID),
		)
	}
}
