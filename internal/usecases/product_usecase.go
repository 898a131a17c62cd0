package usecases

import (
	"context"

	"handshake.backend/internal/domain/entities"
	domainerrors "handshake.backend/internal/domain/errors"
	"handshake.backend/internal/domain/repositories"
)

// ProductUsecase handles listing management
type ProductUsecase struct {
	productRepo  repositories.ProductRepository
	categoryRepo repositories.CategoryRepository
}

// NewProductUsecase creates a new product usecase
func NewProductUsecase(productRepo repositories.ProductRepository, categoryRepo repositories.CategoryRepository) *ProductUsecase {
	return &ProductUsecase{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
	}
}

// CreateProduct creates a listing owned by sellerID
func (u *ProductUsecase) CreateProduct(ctx context.Context, sellerID uint, input *entities.CreateProductInput) (*entities.Product, error) {
	product := &entities.Product{
		SellerID:    sellerID,
		CategoryID:  input.CategoryID,
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Status:      entities.ProductStatusActive,
	}
	if input.ImageURL != nil {
		product.ImageURL.SetValid(*input.ImageURL)
	}

	if err := u.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return u.productRepo.GetByID(ctx, product.ID)
}

// GetProduct gets a listing by ID
func (u *ProductUsecase) GetProduct(ctx context.Context, id uint) (*entities.Product, error) {
	return u.productRepo.GetByID(ctx, id)
}

// ListProducts lists active listings matching the filter. A category slug is
// resolved first so an unknown slug surfaces as not-found instead of an
// empty page.
func (u *ProductUsecase) ListProducts(ctx context.Context, filter entities.ProductFilter) ([]*entities.Product, error) {
	if filter.CategorySlug != "" {
		category, err := u.categoryRepo.GetBySlug(ctx, filter.CategorySlug)
		if err != nil {
			return nil, err
		}
		filter.CategoryID = category.ID
		filter.CategorySlug = ""
	}
	return u.productRepo.List(ctx, filter)
}

// UpdateProduct applies a partial update. Only the owner may update.
func (u *ProductUsecase) UpdateProduct(ctx context.Context, id, sellerID uint, input *entities.UpdateProductInput) (*entities.Product, error) {
	product, err := u.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product.SellerID != sellerID {
		return nil, domainerrors.ErrForbidden
	}

	if input.Title != nil {
		product.Title = *input.Title
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		if *input.Price <= 0 {
			return nil, domainerrors.ErrInvalidInput
		}
		product.Price = *input.Price
	}
	if input.ImageURL != nil {
		product.ImageURL.SetValid(*input.ImageURL)
	}
	if input.Status != nil {
		switch entities.ProductStatus(*input.Status) {
		case entities.ProductStatusActive, entities.ProductStatusInactive, entities.ProductStatusSold:
			product.Status = entities.ProductStatus(*input.Status)
		default:
			return nil, domainerrors.ErrInvalidInput
		}
	}

	if err := u.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return u.productRepo.GetByID(ctx, id)
}

// DeleteProduct removes a listing. Only the owner may delete.
func (u *ProductUsecase) DeleteProduct(ctx context.Context, id, sellerID uint) error {
	product, err := u.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product.SellerID != sellerID {
		return domainerrors.ErrForbidden
	}
	return u.productRepo.Delete(ctx, id)
}

// ListCategories lists all categories
func (u *ProductUsecase) ListCategories(ctx context.Context) ([]*entities.Category, error) {
	return u.categoryRepo.List(ctx)
}
