package usecases_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"handshake.backend/internal/domain/entities"
	"handshake.backend/internal/infrastructure/geocoding"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uint) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *mockUserRepo) MarkEmailVerified(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockVerificationRepo struct {
	mock.Mock
}

func (m *mockVerificationRepo) Create(ctx context.Context, v *entities.EmailVerification) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *mockVerificationRepo) FindLatestMatching(ctx context.Context, userID uint, code string) (*entities.EmailVerification, error) {
	args := m.Called(ctx, userID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.EmailVerification), args.Error(1)
}

func (m *mockVerificationRepo) DeleteAllForUser(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type mockSender struct {
	mock.Mock
}

func (m *mockSender) SendVerification(ctx context.Context, toEmail, toName, code string) error {
	args := m.Called(ctx, toEmail, toName, code)
	return args.Error(0)
}

func (m *mockSender) SendOrderNotification(ctx context.Context, toEmail, toName, productTitle string, orderID uint, midpointAddress string) error {
	args := m.Called(ctx, toEmail, toName, productTitle, orderID, midpointAddress)
	return args.Error(0)
}

type mockLimiter struct {
	mock.Mock
}

func (m *mockLimiter) Allow(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type mockProductRepo struct {
	mock.Mock
}

func (m *mockProductRepo) Create(ctx context.Context, product *entities.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *mockProductRepo) GetByID(ctx context.Context, id uint) (*entities.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Product), args.Error(1)
}

func (m *mockProductRepo) List(ctx context.Context, filter entities.ProductFilter) ([]*entities.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Product), args.Error(1)
}

func (m *mockProductRepo) Update(ctx context.Context, product *entities.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *mockProductRepo) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockCategoryRepo struct {
	mock.Mock
}

func (m *mockCategoryRepo) List(ctx context.Context) ([]*entities.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Category), args.Error(1)
}

func (m *mockCategoryRepo) GetBySlug(ctx context.Context, slug string) (*entities.Category, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Category), args.Error(1)
}

type mockOrderRepo struct {
	mock.Mock
}

func (m *mockOrderRepo) Create(ctx context.Context, order *entities.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *mockOrderRepo) GetByID(ctx context.Context, id uint) (*entities.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Order), args.Error(1)
}

func (m *mockOrderRepo) ListByUser(ctx context.Context, userID uint) ([]*entities.Order, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Order), args.Error(1)
}

type mockLocationRepo struct {
	mock.Mock
}

func (m *mockLocationRepo) Create(ctx context.Context, location *entities.Location) error {
	args := m.Called(ctx, location)
	return args.Error(0)
}

func (m *mockLocationRepo) GetByID(ctx context.Context, id uint) (*entities.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Location), args.Error(1)
}

func (m *mockLocationRepo) GetByUserID(ctx context.Context, userID uint) (*entities.Location, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Location), args.Error(1)
}

func (m *mockLocationRepo) Upsert(ctx context.Context, location *entities.Location) error {
	args := m.Called(ctx, location)
	return args.Error(0)
}

type mockGeocoder struct {
	mock.Mock
}

func (m *mockGeocoder) Geocode(ctx context.Context, address string) (*geocoding.GeocodeResult, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*geocoding.GeocodeResult), args.Error(1)
}

func (m *mockGeocoder) ReverseGeocode(ctx context.Context, lat, lon float64) (*geocoding.GeocodeResult, error) {
	args := m.Called(ctx, lat, lon)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*geocoding.GeocodeResult), args.Error(1)
}
