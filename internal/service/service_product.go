package service

import (
	"context"
	"strings"

	"github.com/AchrafELGhazi/WareFlow-sub000/internal/logger"
	"github.com/AchrafELGhazi/WareFlow-sub000/internal/store"
	"github.com/AchrafELGhazi/WareFlow-sub000/models"
)

// ProductService implements Products.
type ProductService struct {
	products store.ProductRepository
	log      *logger.Logger
}

func NewProductService(products store.ProductRepository, log *logger.Logger) *ProductService {
	return &ProductService{products: products, log: log}
}

func (s *ProductService) Create(ctx context.Context, product models.Product) (models.Product, error) {
	product.Name = strings.TrimSpace(product.Name)
	product.SKU = strings.TrimSpace(product.SKU)
	if product.Name == "" || product.SKU == "" || product.WarehouseID == 0 {
		return models.Product{}, ErrInvalidDataProvided
	}
	if product.UnitPrice < 0 || product.Quantity < 0 {
		return models.Product{}, ErrInvalidDataProvided
	}
	return s.products.CreateProduct(ctx, product)
}

func (s *ProductService) Get(ctx context.Context, productID int64) (models.Product, error) {
	return s.products.FindProductByID(ctx, productID)
}

func (s *ProductService) List(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	return s.products.ListProducts(ctx, filter)
}

// Update changes catalogue attributes. The stored quantity is not part of
// the update, stock only moves through inventory transactions.
func (s *ProductService) Update(ctx context.Context, product models.Product) (models.Product, error) {
	product.Name = strings.TrimSpace(product.Name)
	product.SKU = strings.TrimSpace(product.SKU)
	if product.Name == "" || product.SKU == "" {
		return models.Product{}, ErrInvalidDataProvided
	}
	if product.UnitPrice < 0 {
		return models.Product{}, ErrInvalidDataProvided
	}
	return s.products.UpdateProduct(ctx, product)
}

func (s *ProductService) Delete(ctx context.Context, productID int64) error {
	return s.products.DeleteProduct(ctx, productID)
}
