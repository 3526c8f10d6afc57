package services

import (
	"context"

	"stock-backend/internal/apperrors"
	"stock-backend/internal/models"
	"stock-backend/internal/repositories"
)

type SupplierService struct {
	Repo *repositories.SupplierRepository
}

func NewSupplierService(repo *repositories.SupplierRepository) *SupplierService {
	return &SupplierService{Repo: repo}
}

func (s *SupplierService) CreateSupplier(ctx context.Context, req *models.CreateSupplierRequest) (*models.Supplier, error) {
	if req.Name == "" {
		return nil, apperrors.Invalidf("supplier name is required")
	}

	supplier := &models.Supplier{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	}
	if err := s.Repo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *SupplierService) GetSupplier(ctx context.Context, id int) (*models.Supplier, error) {
	return s.Repo.Get(ctx, id)
}

func (s *SupplierService) ListSuppliers(ctx context.Context) ([]*models.Supplier, error) {
	return s.Repo.List(ctx)
}

func (s *SupplierService) UpdateSupplier(ctx context.Context, id int, req *models.UpdateSupplierRequest) (*models.Supplier, error) {
	if req.Name == "" {
		return nil, apperrors.Invalidf("supplier name is required")
	}

	supplier, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	supplier.Name = req.Name
	supplier.Address = req.Address
	supplier.Phone = req.Phone
	if req.IsActive != nil {
		supplier.IsActive = *req.IsActive
	}

	if err := s.Repo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return s.Repo.Get(ctx, id)
}
