package services

import (
	"context"

	"stock-backend/internal/apperrors"
	"stock-backend/internal/models"
	"stock-backend/internal/repositories"
)

// PermissionService files access requests. There is no approval workflow:
// an administrator reads the list and flips account flags by hand.
type PermissionService struct {
	Repo *repositories.PermissionRepository
}

func NewPermissionService(repo *repositories.PermissionRepository) *PermissionService {
	return &PermissionService{Repo: repo}
}

func (s *PermissionService) FileRequest(ctx context.Context, req *models.CreatePermissionRequest, userID int) (*models.PermissionRequest, error) {
	if req.Message == "" {
		return nil, apperrors.Invalidf("message is required")
	}

	request := &models.PermissionRequest{
		UserID:           userID,
		Message:          req.Message,
		RequestedReport:  req.RequestedReport,
		RequestedArrival: req.RequestedArrival,
	}
	if err := s.Repo.Create(ctx, request); err != nil {
		return nil, err
	}
	return s.Repo.Get(ctx, request.ID)
}

func (s *PermissionService) ListUserRequests(ctx context.Context, userID int) ([]*models.PermissionRequest, error) {
	return s.Repo.ListByUser(ctx, userID)
}

func (s *PermissionService) ListRequests(ctx context.Context) ([]*models.PermissionRequest, error) {
	return s.Repo.List(ctx)
}
