package usecases

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"handshake.backend/internal/config"
	"handshake.backend/internal/domain/entities"
	domainerrors "handshake.backend/internal/domain/errors"
	"handshake.backend/internal/domain/repositories"
	"handshake.backend/internal/infrastructure/email"
	"handshake.backend/internal/infrastructure/geocoding"
	"handshake.backend/pkg/geo"
	"handshake.backend/pkg/logger"
)

// Geocoder resolves addresses and coordinates
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*geocoding.GeocodeResult, error)
	ReverseGeocode(ctx context.Context, lat, lon float64) (*geocoding.GeocodeResult, error)
}

// OrderUsecase handles order placement and the meeting-point calculation.
type OrderUsecase struct {
	orderRepo    repositories.OrderRepository
	locationRepo repositories.LocationRepository
	productRepo  repositories.ProductRepository
	userRepo     repositories.UserRepository
	sender       email.Sender
	geocoder     Geocoder
	sellerCfg    config.SellerConfig
}

// NewOrderUsecase creates a new order usecase
func NewOrderUsecase(
	orderRepo repositories.OrderRepository,
	locationRepo repositories.LocationRepository,
	productRepo repositories.ProductRepository,
	userRepo repositories.UserRepository,
	sender email.Sender,
	geocoder Geocoder,
	sellerCfg config.SellerConfig,
) *OrderUsecase {
	return &OrderUsecase{
		orderRepo:    orderRepo,
		locationRepo: locationRepo,
		productRepo:  productRepo,
		userRepo:     userRepo,
		sender:       sender,
		geocoder:     geocoder,
		sellerCfg:    sellerCfg,
	}
}

// CreateOrder places an order for a product. The buyer's location comes from
// the request; the seller's comes from their stored location, falling back to
// the configured default when they have not set one. The buyer is emailed an
// order confirmation with the calculated meeting point; a failed notification
// does not fail the order.
func (u *OrderUsecase) CreateOrder(ctx context.Context, buyerID uint, input *entities.CreateOrderInput) (*entities.OrderDetails, error) {
	if buyerID == input.SellerID {
		return nil, domainerrors.ErrInvalidInput
	}

	product, err := u.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product.SellerID != input.SellerID {
		return nil, domainerrors.ErrInvalidInput
	}

	buyerLoc := &entities.Location{
		UserID:    buyerID,
		Latitude:  input.BuyerLocation.Latitude,
		Longitude: input.BuyerLocation.Longitude,
		Address:   input.BuyerLocation.Address,
	}
	if err := u.locationRepo.Create(ctx, buyerLoc); err != nil {
		return nil, err
	}

	sellerLoc, err := u.sellerLocation(ctx, input.SellerID)
	if err != nil {
		return nil, err
	}

	order := &entities.Order{
		ProductID:        input.ProductID,
		BuyerID:          buyerID,
		SellerID:         input.SellerID,
		BuyerLocationID:  buyerLoc.ID,
		SellerLocationID: sellerLoc.ID,
		Status:           entities.OrderStatusPending,
	}
	if err := u.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	midpoint := u.midpoint(buyerLoc, sellerLoc)
	u.notifyBuyer(ctx, order, product, midpoint)

	return &entities.OrderDetails{
		Order:          order,
		BuyerLocation:  buyerLoc,
		SellerLocation: sellerLoc,
		MidpointInfo:   midpoint,
	}, nil
}

// GetOrder gets an order with both locations and the meeting point. Only the
// buyer and the seller may see it.
func (u *OrderUsecase) GetOrder(ctx context.Context, orderID, userID uint) (*entities.OrderDetails, error) {
	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !order.Participant(userID) {
		return nil, domainerrors.ErrForbidden
	}

	buyerLoc, err := u.locationRepo.GetByID(ctx, order.BuyerLocationID)
	if err != nil {
		return nil, err
	}
	sellerLoc, err := u.locationRepo.GetByID(ctx, order.SellerLocationID)
	if err != nil {
		return nil, err
	}

	return &entities.OrderDetails{
		Order:          order,
		BuyerLocation:  buyerLoc,
		SellerLocation: sellerLoc,
		MidpointInfo:   u.midpoint(buyerLoc, sellerLoc),
	}, nil
}

// MyOrders lists the user's orders, as buyer or seller
func (u *OrderUsecase) MyOrders(ctx context.Context, userID uint) ([]*entities.Order, error) {
	return u.orderRepo.ListByUser(ctx, userID)
}

// UpsertMyLocation stores or replaces the user's meeting location
func (u *OrderUsecase) UpsertMyLocation(ctx context.Context, userID uint, input *entities.LocationInput) (*entities.Location, error) {
	location := &entities.Location{
		UserID:    userID,
		Latitude:  input.Latitude,
		Longitude: input.Longitude,
		Address:   input.Address,
	}
	if err := u.locationRepo.Upsert(ctx, location); err != nil {
		return nil, err
	}
	return location, nil
}

func (u *OrderUsecase) sellerLocation(ctx context.Context, sellerID uint) (*entities.Location, error) {
	stored, err := u.locationRepo.GetByUserID(ctx, sellerID)
	if err == nil {
		return stored, nil
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	fallback := &entities.Location{
		UserID:    sellerID,
		Latitude:  u.sellerCfg.DefaultLatitude,
		Longitude: u.sellerCfg.DefaultLongitude,
		Address:   u.sellerCfg.DefaultAddress,
	}
	if err := u.locationRepo.Create(ctx, fallback); err != nil {
		return nil, err
	}
	return fallback, nil
}

func (u *OrderUsecase) midpoint(buyerLoc, sellerLoc *entities.Location) geo.MidpointResult {
	return geo.CalculateMidpoint(buyerLoc.Latitude, buyerLoc.Longitude, sellerLoc.Latitude, sellerLoc.Longitude)
}

func (u *OrderUsecase) notifyBuyer(ctx context.Context, order *entities.Order, product *entities.Product, midpoint geo.MidpointResult) {
	buyer, err := u.userRepo.GetByID(ctx, order.BuyerID)
	if err != nil {
		logger.Warn(ctx, "order confirmation skipped, buyer lookup failed",
			zap.Uint("order_id", order.ID),
			zap.Error(err),
		)
		return
	}

	address := fmt.Sprintf("%.4f, %.4f", midpoint.Midpoint.Latitude, midpoint.Midpoint.Longitude)
	if resolved, err := u.geocoder.ReverseGeocode(ctx, midpoint.Midpoint.Latitude, midpoint.Midpoint.Longitude); err == nil {
		address = resolved.Address
	}

	if err := u.sender.SendOrderNotification(ctx, buyer.Email, buyer.Name, product.Title, order.ID, address); err != nil {
		logger.Warn(ctx, "order confirmation dispatch failed",
			zap.Uint("order_id", order.ID),
			zap.Error(err),
		)
	}
}
