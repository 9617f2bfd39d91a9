package notification

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/nvkv0/HomeCall/internal/domain"
	"github.com/nvkv0/HomeCall/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// Sink persists notifications and optionally pushes them over Telegram.
// Every method is fire-and-forget: failures are logged and swallowed so a
// delivery problem can never fail the transition that triggered it.
type Sink struct {
	repo     ports.NotificationRepo
	userRepo ports.UserRepo
	bot      *tgbotapi.BotAPI
	logger   logger.Logger
}

func NewSink(repo ports.NotificationRepo, userRepo ports.UserRepo, botToken string, logger logger.Logger) (*Sink, error) {
	s := &Sink{
		repo:     repo,
		userRepo: userRepo,
		logger:   logger,
	}

	if botToken == "" {
		logger.Warn("telegram bot token is empty, push notifications disabled")
		return s, nil
	}

	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	s.bot = bot

	return s, nil
}

func (s *Sink) NotifyNewRequest(ctx context.Context, workerIDs []string, req *domain.ServiceRequest, svc *domain.Service) {
	for _, workerID := range workerIDs {
		s.create(ctx, &domain.Notification{
			UserID:   workerID,
			Type:     domain.NotificationTypeNewRequest,
			Title:    "New Service Request",
			Message:  fmt.Sprintf("A customer has requested %s service", svc.Name),
			Category: "service_request",
			Priority: domain.NotificationPriorityHigh,
			Metadata: map[string]any{
				"request_id":   req.ID,
				"service_id":   svc.ID,
				"service_name": svc.Name,
			},
			ActionURL: "/worker/service-requests/" + req.ID,
		})
	}
}

func (s *Sink) NotifyRequestCreated(ctx context.Context, req *domain.ServiceRequest, svc *domain.Service) {
	s.create(ctx, &domain.Notification{
		UserID:   req.CustomerID,
		Type:     domain.NotificationTypeRequestCreated,
		Title:    "Service Request Created",
		Message:  fmt.Sprintf("Your service request for %s has been created successfully", svc.Name),
		Category: "service_request",
		Priority: domain.NotificationPriorityMedium,
		Metadata: map[string]any{
			"request_id":   req.ID,
			"service_id":   svc.ID,
			"service_name": svc.Name,
		},
		ActionURL: "/customer/service-requests/" + req.ID,
	})
}

func (s *Sink) NotifyRequestAccepted(ctx context.Context, req *domain.ServiceRequest, svc *domain.Service, worker *domain.User) {
	s.create(ctx, &domain.Notification{
		UserID:   req.CustomerID,
		Type:     domain.NotificationTypeRequestAccepted,
		Title:    "Service Request Accepted",
		Message:  fmt.Sprintf("Your service request for %s has been accepted by %s", svc.Name, worker.Name),
		Category: "service_request",
		Priority: domain.NotificationPriorityHigh,
		Metadata: map[string]any{
			"request_id":   req.ID,
			"service_id":   svc.ID,
			"service_name": svc.Name,
			"worker_id":    worker.ID,
			"worker_name":  worker.Name,
		},
		ActionURL: "/customer/service-requests/" + req.ID,
	})
}

func (s *Sink) NotifyRequestExpired(ctx context.Context, req *domain.ServiceRequest) {
	s.create(ctx, &domain.Notification{
		UserID:   req.CustomerID,
		Type:     domain.NotificationTypeRequestExpired,
		Title:    "No Workers Available",
		Message:  "Unfortunately, no workers are currently available for your service request",
		Category: "service_request",
		Priority: domain.NotificationPriorityHigh,
		Metadata: map[string]any{
			"request_id": req.ID,
		},
		ActionURL: "/customer/service-requests/" + req.ID,
	})
}

func (s *Sink) NotifyWorkerRejected(ctx context.Context, req *domain.ServiceRequest, workerID, reason string) {
	s.create(ctx, &domain.Notification{
		UserID:   workerID,
		Type:     domain.NotificationTypeRejectedByCustomer,
		Title:    "Service Request Rejected by Customer",
		Message:  fmt.Sprintf("The customer has rejected your acceptance. Reason: %s", reason),
		Category: "service_request",
		Priority: domain.NotificationPriorityMedium,
		Metadata: map[string]any{
			"request_id": req.ID,
			"reason":     reason,
		},
	})
}

func (s *Sink) NotifyBookingCreated(ctx context.Context, req *domain.ServiceRequest, booking *domain.Booking, svc *domain.Service) {
	s.create(ctx, &domain.Notification{
		UserID:   booking.WorkerID,
		Type:     domain.NotificationTypeBookingCreated,
		Title:    "New Booking Created",
		Message:  "Customer has approved your acceptance. A new booking has been created.",
		Category: "booking",
		Priority: domain.NotificationPriorityHigh,
		Metadata: map[string]any{
			"request_id":   req.ID,
			"booking_id":   booking.ID,
			"service_id":   svc.ID,
			"service_name": svc.Name,
		},
		ActionURL: "/worker/bookings/" + booking.ID,
	})
	s.create(ctx, &domain.Notification{
		UserID:   booking.CustomerID,
		Type:     domain.NotificationTypeBookingCreated,
		Title:    "Booking Confirmed",
		Message:  fmt.Sprintf("Your booking for %s has been confirmed.", svc.Name),
		Category: "booking",
		Priority: domain.NotificationPriorityHigh,
		Metadata: map[string]any{
			"request_id":   req.ID,
			"booking_id":   booking.ID,
			"service_id":   svc.ID,
			"service_name": svc.Name,
			"worker_id":    booking.WorkerID,
		},
		ActionURL: "/customer/bookings/" + booking.ID,
	})
}

func (s *Sink) create(ctx context.Context, n *domain.Notification) {
	if err := ctx.Err(); err != nil {
		s.logger.Debug("notification skipped (context cancelled)",
			logger.String("user_id", n.UserID),
			logger.String("type", n.Type),
		)
		return
	}

	n.ID = uuid.New().String()
	n.CreatedAt = time.Now().UTC()

	if err := s.repo.Create(ctx, n); err != nil {
		s.logger.Error("failed to store notification",
			logger.String("user_id", n.UserID),
			logger.String("type", n.Type),
			logger.String("error", err.Error()),
		)
		return
	}

	s.push(ctx, n)
}

func (s *Sink) push(ctx context.Context, n *domain.Notification) {
	if s.bot == nil {
		return
	}

	user, err := s.userRepo.GetByID(ctx, n.UserID)
	if err != nil {
		s.logger.Error("failed to get user for push",
			logger.String("user_id", n.UserID),
			logger.String("error", err.Error()),
		)
		return
	}
	if user.TelegramChatID == nil {
		s.logger.Debug("push skipped (no chat_id)",
			logger.String("user_id", n.UserID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*user.TelegramChatID, fmt.Sprintf("*%s*\n\n%s", n.Title, n.Message))
	msg.ParseMode = "Markdown"

	if _, err = s.bot.Send(msg); err != nil {
		s.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *user.TelegramChatID),
			logger.String("error", err.Error()),
		)
	}
}
