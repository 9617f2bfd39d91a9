package service

import (
	"context"
	"testing"

	"github.com/nvkv0/HomeCall/internal/domain"
	"github.com/nvkv0/HomeCall/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Create_Success(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewUserService(userRepo, mocks.NewMockAddressRepo(t))

	userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Create(context.Background(), domain.CreateUserInput{
		Name:  "Alice",
		Phone: "+79001234567",
		Role:  domain.RoleCustomer,
	})

	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, domain.RoleCustomer, user.Role)
	assert.NotEmpty(t, user.ID)
}

func TestUserService_Create_MissingName(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewUserService(userRepo, mocks.NewMockAddressRepo(t))

	_, err := svc.Create(context.Background(), domain.CreateUserInput{
		Phone: "+79001234567",
		Role:  domain.RoleCustomer,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Create_InvalidRole(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewUserService(userRepo, mocks.NewMockAddressRepo(t))

	_, err := svc.Create(context.Background(), domain.CreateUserInput{
		Name:  "Alice",
		Phone: "+79001234567",
		Role:  "manager",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Create_PhoneTaken(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewUserService(userRepo, mocks.NewMockAddressRepo(t))

	userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrPhoneTaken)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{
		Name:  "Alice",
		Phone: "+79001234567",
		Role:  domain.RoleWorker,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrPhoneTaken)
}

func TestUserService_CreateAddress_Success(t *testing.T) {
	addressRepo := mocks.NewMockAddressRepo(t)
	svc := NewUserService(mocks.NewMockUserRepo(t), addressRepo)

	addressRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	addr, err := svc.CreateAddress(context.Background(), domain.CreateAddressInput{
		UserID:   "c1",
		Line1:    "12 Green Lane",
		City:     "Manchester",
		Postcode: "M1 2AB",
	})

	require.NoError(t, err)
	assert.Equal(t, "c1", addr.UserID)
	assert.Equal(t, "12 Green Lane", addr.Line1)
	assert.NotEmpty(t, addr.ID)
}

func TestUserService_CreateAddress_MissingLine1(t *testing.T) {
	svc := NewUserService(mocks.NewMockUserRepo(t), mocks.NewMockAddressRepo(t))

	_, err := svc.CreateAddress(context.Background(), domain.CreateAddressInput{
		UserID: "c1",
		City:   "Manchester",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_CreateAddress_MissingCity(t *testing.T) {
	svc := NewUserService(mocks.NewMockUserRepo(t), mocks.NewMockAddressRepo(t))

	_, err := svc.CreateAddress(context.Background(), domain.CreateAddressInput{
		UserID: "c1",
		Line1:  "12 Green Lane",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_ListAddresses(t *testing.T) {
	addressRepo := mocks.NewMockAddressRepo(t)
	svc := NewUserService(mocks.NewMockUserRepo(t), addressRepo)

	addressRepo.EXPECT().ListByUser(mock.Anything, "c1").
		Return([]*domain.Address{{ID: "a1", UserID: "c1"}}, nil)

	addresses, err := svc.ListAddresses(context.Background(), "c1")

	require.NoError(t, err)
	require.Len(t, addresses, 1)
	assert.Equal(t, "a1", addresses[0].ID)
}

func TestUserService_GetByID(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	svc := NewUserService(userRepo, mocks.NewMockAddressRepo(t))

	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1", Name: "Alice"}, nil)

	user, err := svc.GetByID(context.Background(), "u1")

	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
}
