package service

import (
	"context"
	"errors"
	"testing"

	"github.com/nvkv0/HomeCall/internal/domain"
	"github.com/nvkv0/HomeCall/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_AddOffer_Success(t *testing.T) {
	serviceRepo := mocks.NewMockServiceRepo(t)
	offerRepo := mocks.NewMockOfferRepo(t)
	userRepo := mocks.NewMockUserRepo(t)

	svc := NewCatalogService(serviceRepo, offerRepo, userRepo)

	serviceRepo.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Service{ID: "s1"}, nil)
	offerRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	offer, err := svc.AddOffer(context.Background(), domain.CreateOfferInput{
		WorkerID:   "w1",
		ServiceID:  "s1",
		Price:      120,
		Experience: "5 years",
	})

	require.NoError(t, err)
	assert.Equal(t, "w1", offer.WorkerID)
	assert.Equal(t, "5 years", offer.Experience)
	assert.True(t, offer.Active)
	assert.NotEmpty(t, offer.ID)
}

func TestCatalogService_AddOffer_DefaultExperience(t *testing.T) {
	serviceRepo := mocks.NewMockServiceRepo(t)
	offerRepo := mocks.NewMockOfferRepo(t)
	userRepo := mocks.NewMockUserRepo(t)

	svc := NewCatalogService(serviceRepo, offerRepo, userRepo)

	serviceRepo.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Service{ID: "s1"}, nil)
	offerRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	offer, err := svc.AddOffer(context.Background(), domain.CreateOfferInput{
		WorkerID:  "w1",
		ServiceID: "s1",
		Price:     50,
	})

	require.NoError(t, err)
	assert.Equal(t, "0 years", offer.Experience)
}

func TestCatalogService_AddOffer_InvalidPrice(t *testing.T) {
	serviceRepo := mocks.NewMockServiceRepo(t)
	offerRepo := mocks.NewMockOfferRepo(t)
	userRepo := mocks.NewMockUserRepo(t)

	svc := NewCatalogService(serviceRepo, offerRepo, userRepo)

	_, err := svc.AddOffer(context.Background(), domain.CreateOfferInput{
		WorkerID:  "w1",
		ServiceID: "s1",
		Price:     0,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCatalogService_AddOffer_ServiceNotFound(t *testing.T) {
	serviceRepo := mocks.NewMockServiceRepo(t)
	offerRepo := mocks.NewMockOfferRepo(t)
	userRepo := mocks.NewMockUserRepo(t)

	svc := NewCatalogService(serviceRepo, offerRepo, userRepo)

	serviceRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrServiceNotFound)

	_, err := svc.AddOffer(context.Background(), domain.CreateOfferInput{
		WorkerID:  "w1",
		ServiceID: "missing",
		Price:     50,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrServiceNotFound)
}

func TestCatalogService_AddOffer_Duplicate(t *testing.T) {
	serviceRepo := mocks.NewMockServiceRepo(t)
	offerRepo := mocks.NewMockOfferRepo(t)
	userRepo := mocks.NewMockUserRepo(t)

	svc := NewCatalogService(serviceRepo, offerRepo, userRepo)

	serviceRepo.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Service{ID: "s1"}, nil)
	offerRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrOfferExists)

	_, err := svc.AddOffer(context.Background(), domain.CreateOfferInput{
		WorkerID:  "w1",
		ServiceID: "s1",
		Price:     50,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrOfferExists)
}

func TestCatalogService_WorkersForService_JoinsWorkers(t *testing.T) {
	serviceRepo := mocks.NewMockServiceRepo(t)
	offerRepo := mocks.NewMockOfferRepo(t)
	userRepo := mocks.NewMockUserRepo(t)

	svc := NewCatalogService(serviceRepo, offerRepo, userRepo)

	offers := []*domain.WorkerOffer{
		{ID: "o1", WorkerID: "w1", ServiceID: "s1", Price: 100},
		{ID: "o2", WorkerID: "w2", ServiceID: "s1", Price: 120},
	}
	workers := []*domain.User{
		{ID: "w1", Name: "Bob"},
		{ID: "w2", Name: "Carol"},
	}

	serviceRepo.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Service{ID: "s1"}, nil)
	offerRepo.EXPECT().ListByService(mock.Anything, "s1").Return(offers, nil)
	userRepo.EXPECT().ListByIDs(mock.Anything, []string{"w1", "w2"}).Return(workers, nil)

	result, err := svc.WorkersForService(context.Background(), "s1")

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "Bob", result[0].Worker.Name)
	assert.Equal(t, "Carol", result[1].Worker.Name)
}

func TestCatalogService_WorkersForService_ServiceNotFound(t *testing.T) {
	serviceRepo := mocks.NewMockServiceRepo(t)
	offerRepo := mocks.NewMockOfferRepo(t)
	userRepo := mocks.NewMockUserRepo(t)

	svc := NewCatalogService(serviceRepo, offerRepo, userRepo)

	serviceRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrServiceNotFound)

	_, err := svc.WorkersForService(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrServiceNotFound)
}

func TestCatalogService_ToggleOffer(t *testing.T) {
	serviceRepo := mocks.NewMockServiceRepo(t)
	offerRepo := mocks.NewMockOfferRepo(t)
	userRepo := mocks.NewMockUserRepo(t)

	svc := NewCatalogService(serviceRepo, offerRepo, userRepo)

	toggled := &domain.WorkerOffer{ID: "o1", WorkerID: "w1", Active: false}
	offerRepo.EXPECT().SetActive(mock.Anything, "o1", "w1", false).Return(toggled, nil)

	offer, err := svc.ToggleOffer(context.Background(), "o1", "w1", false)

	require.NoError(t, err)
	assert.False(t, offer.Active)
}

func TestCatalogService_ListServices_RepoError(t *testing.T) {
	serviceRepo := mocks.NewMockServiceRepo(t)
	offerRepo := mocks.NewMockOfferRepo(t)
	userRepo := mocks.NewMockUserRepo(t)

	svc := NewCatalogService(serviceRepo, offerRepo, userRepo)

	serviceRepo.EXPECT().List(mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.ListServices(context.Background())

	require.Error(t, err)
}
