package services

import (
	"context"

	"stock-backend/internal/apperrors"
	"stock-backend/internal/metrics"
	"stock-backend/internal/models"
	"stock-backend/internal/repositories"
	"stock-backend/internal/valuation"

	"github.com/shopspring/decimal"
)

// TransferService records goods-dispatch documents, the outbound mirror of
// ArrivalService.
type TransferService struct {
	Repo      *repositories.TransferRepository
	Items     *repositories.ItemRepository
	Suppliers *repositories.SupplierRepository
}

func NewTransferService(repo *repositories.TransferRepository, items *repositories.ItemRepository, suppliers *repositories.SupplierRepository) *TransferService {
	return &TransferService{Repo: repo, Items: items, Suppliers: suppliers}
}

func (s *TransferService) CreateTransfer(ctx context.Context, req *models.CreateTransferRequest, userID int) (*models.Transfer, error) {
	if _, err := s.Suppliers.Get(ctx, req.ToSupplierID); err != nil {
		return nil, err
	}

	for _, line := range req.Lines {
		if line.Quantity.LessThan(decimal.Zero) {
			return nil, apperrors.Invalidf("quantity must not be negative (item %d)", line.ItemID)
		}
		if _, err := s.Items.Get(ctx, line.ItemID); err != nil {
			return nil, err
		}
	}

	transfer := &models.Transfer{
		ToSupplierID: req.ToSupplierID,
		UserID:       userID,
		DeliveredBy:  req.DeliveredBy,
		Lines:        make([]models.ItemTransfer, len(req.Lines)),
	}
	for i, line := range req.Lines {
		transfer.Lines[i] = models.ItemTransfer{
			ItemID:   line.ItemID,
			Quantity: line.Quantity,
		}
	}

	if err := s.Repo.Create(ctx, transfer); err != nil {
		return nil, err
	}

	metrics.TransfersCreated.Inc()
	return s.Repo.Get(ctx, transfer.ID)
}

func (s *TransferService) GetTransfer(ctx context.Context, id int) (*models.Transfer, error) {
	return s.Repo.Get(ctx, id)
}

func (s *TransferService) ListTransfers(ctx context.Context, filter *models.TransferFilter) ([]*models.Transfer, error) {
	return s.Repo.ListFiltered(ctx, filter)
}

// GrandTotal values a transfer against the items' current cost prices.
// Transfer lines carry no price of their own, so this is the only possible
// basis.
func (s *TransferService) GrandTotal(ctx context.Context, transfer *models.Transfer) (decimal.Decimal, error) {
	ids := make([]int, 0, len(transfer.Lines))
	for _, line := range transfer.Lines {
		ids = append(ids, line.ItemID)
	}
	items, err := s.Items.GetByIDs(ctx, ids)
	if err != nil {
		return decimal.Zero, err
	}
	return valuation.TransferGrandTotal(transfer.Lines, valuation.CostsOf(items))
}
