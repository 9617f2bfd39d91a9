package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nvkv0/HomeCall/internal/domain"
	"github.com/nvkv0/HomeCall/internal/service/ports"
)

type UserService struct {
	repo        ports.UserRepo
	addressRepo ports.AddressRepo
}

func NewUserService(repo ports.UserRepo, addressRepo ports.AddressRepo) *UserService {
	return &UserService{repo: repo, addressRepo: addressRepo}
}

func (s *UserService) Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Phone == "" {
		return nil, fmt.Errorf("%w: phone is required", domain.ErrValidation)
	}
	switch input.Role {
	case domain.RoleCustomer, domain.RoleWorker, domain.RoleAdmin:
	default:
		return nil, fmt.Errorf("%w: role must be customer, worker or admin", domain.ErrValidation)
	}

	user := &domain.User{
		ID:             uuid.New().String(),
		Name:           input.Name,
		Phone:          input.Phone,
		Role:           input.Role,
		TelegramChatID: input.TelegramChatID,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) CreateAddress(ctx context.Context, input domain.CreateAddressInput) (*domain.Address, error) {
	if input.Line1 == "" {
		return nil, fmt.Errorf("%w: line1 is required", domain.ErrValidation)
	}
	if input.City == "" {
		return nil, fmt.Errorf("%w: city is required", domain.ErrValidation)
	}

	addr := &domain.Address{
		ID:        uuid.New().String(),
		UserID:    input.UserID,
		Line1:     input.Line1,
		City:      input.City,
		Postcode:  input.Postcode,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.addressRepo.Create(ctx, addr); err != nil {
		return nil, fmt.Errorf("create address: %w", err)
	}

	return addr, nil
}

func (s *UserService) ListAddresses(ctx context.Context, userID string) ([]*domain.Address, error) {
	return s.addressRepo.ListByUser(ctx, userID)
}
