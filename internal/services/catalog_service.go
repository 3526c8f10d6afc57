package services

import (
	"context"
	"encoding/json"

	"stock-backend/internal/apperrors"
	"stock-backend/internal/cache"
	"stock-backend/internal/models"
	"stock-backend/internal/repositories"

	"github.com/shopspring/decimal"
)

// CatalogService owns category and item master data. Listings are cached in
// Redis; every write invalidates the catalog keys.
type CatalogService struct {
	Categories *repositories.CategoryRepository
	Items      *repositories.ItemRepository
}

func NewCatalogService(categories *repositories.CategoryRepository, items *repositories.ItemRepository) *CatalogService {
	return &CatalogService{Categories: categories, Items: items}
}

func (s *CatalogService) CreateCategory(ctx context.Context, req *models.CreateCategoryRequest) (*models.Category, error) {
	if req.Name == "" {
		return nil, apperrors.Invalidf("category name is required")
	}

	category := &models.Category{Name: req.Name}
	if err := s.Categories.Create(ctx, category); err != nil {
		return nil, err
	}

	cache.InvalidateCatalog(ctx)
	return category, nil
}

func (s *CatalogService) UpdateCategory(ctx context.Context, id int, req *models.UpdateCategoryRequest) (*models.Category, error) {
	if req.Name == "" {
		return nil, apperrors.Invalidf("category name is required")
	}

	category, err := s.Categories.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = req.Name
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := s.Categories.Update(ctx, category); err != nil {
		return nil, err
	}

	cache.InvalidateCatalog(ctx)
	return s.Categories.Get(ctx, id)
}

// ListCategories returns all categories, served from cache when possible.
// The cached form is the JSON-encoded slice, ready to hand to the response
// writer.
func (s *CatalogService) GetCategory(ctx context.Context, id int) (*models.Category, error) {
	return s.Categories.Get(ctx, id)
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]byte, error) {
	if data, ok := cache.GetCachedCategories(ctx); ok {
		return data, nil
	}

	categories, err := s.Categories.List(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(categories)
	if err != nil {
		return nil, err
	}

	cache.CacheCategories(ctx, data)
	return data, nil
}

func (s *CatalogService) CreateItem(ctx context.Context, req *models.CreateItemRequest) (*models.Item, error) {
	if req.Name == "" {
		return nil, apperrors.Invalidf("item name is required")
	}
	if err := validatePrices(req.SellingPrice, req.OriginalPrice); err != nil {
		return nil, err
	}
	if req.Stock < 0 {
		return nil, apperrors.Invalidf("stock must not be negative")
	}

	if _, err := s.Categories.Get(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	item := &models.Item{
		Name:          req.Name,
		SellingPrice:  req.SellingPrice,
		OriginalPrice: req.OriginalPrice,
		CategoryID:    req.CategoryID,
		Stock:         req.Stock,
	}
	if err := s.Items.Create(ctx, item); err != nil {
		return nil, err
	}

	cache.InvalidateCatalog(ctx)
	return s.Items.Get(ctx, item.ID)
}

func (s *CatalogService) GetItem(ctx context.Context, id int) (*models.Item, error) {
	return s.Items.Get(ctx, id)
}

func (s *CatalogService) UpdateItem(ctx context.Context, id int, req *models.UpdateItemRequest) (*models.Item, error) {
	if req.Name == "" {
		return nil, apperrors.Invalidf("item name is required")
	}
	if err := validatePrices(req.SellingPrice, req.OriginalPrice); err != nil {
		return nil, err
	}

	item, err := s.Items.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.Categories.Get(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	item.Name = req.Name
	item.SellingPrice = req.SellingPrice
	item.OriginalPrice = req.OriginalPrice
	item.CategoryID = req.CategoryID
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	if err := s.Items.Update(ctx, item); err != nil {
		return nil, err
	}

	cache.InvalidateCatalog(ctx)
	return s.Items.Get(ctx, id)
}

func (s *CatalogService) ListItems(ctx context.Context) ([]*models.Item, error) {
	return s.Items.List(ctx)
}

// ListActiveItems returns active items as JSON, served from cache when
// possible.
func (s *CatalogService) ListActiveItems(ctx context.Context) ([]byte, error) {
	if data, ok := cache.GetCachedActiveItems(ctx); ok {
		return data, nil
	}

	items, err := s.Items.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}

	cache.CacheActiveItems(ctx, data)
	return data, nil
}

// validatePrices rejects negative prices. Absent prices are allowed; items
// may exist unpriced until valuation needs them.
func validatePrices(prices ...decimal.NullDecimal) error {
	for _, p := range prices {
		if p.Valid && p.Decimal.LessThan(decimal.Zero) {
			return apperrors.Invalidf("price must not be negative")
		}
	}
	return nil
}
