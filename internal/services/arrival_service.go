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

// ArrivalService records goods-receipt documents. All validation happens
// before the transaction opens; once the repository is called the document
// commits or rolls back as a whole.
type ArrivalService struct {
	Repo      *repositories.ArrivalRepository
	Items     *repositories.ItemRepository
	Suppliers *repositories.SupplierRepository
}

func NewArrivalService(repo *repositories.ArrivalRepository, items *repositories.ItemRepository, suppliers *repositories.SupplierRepository) *ArrivalService {
	return &ArrivalService{Repo: repo, Items: items, Suppliers: suppliers}
}

func (s *ArrivalService) CreateArrival(ctx context.Context, req *models.CreateArrivalRequest, userID int) (*models.Arrival, error) {
	if !req.PaymentType.Valid() {
		return nil, apperrors.Invalidf("payment type must be %q or %q", models.PaymentTypeCash, models.PaymentTypePayable)
	}
	if req.ReceiptNo < 0 {
		return nil, apperrors.Invalidf("receipt number must not be negative")
	}

	if _, err := s.Suppliers.Get(ctx, req.SupplierID); err != nil {
		return nil, err
	}

	if err := s.validateLines(ctx, req.Lines); err != nil {
		return nil, err
	}

	arrival := &models.Arrival{
		PaymentType: req.PaymentType,
		SupplierID:  req.SupplierID,
		ReceiptNo:   req.ReceiptNo,
		UserID:      userID,
		Lines:       make([]models.ItemArrival, len(req.Lines)),
	}
	for i, line := range req.Lines {
		arrival.Lines[i] = models.ItemArrival{
			ItemID:   line.ItemID,
			Quantity: line.Quantity,
			Price:    line.Price,
		}
	}

	if err := s.Repo.Create(ctx, arrival); err != nil {
		return nil, err
	}

	metrics.ArrivalsCreated.Inc()
	return s.Repo.Get(ctx, arrival.ID)
}

// validateLines checks every line before anything is written. Items may be
// inactive; retired catalog entries still receive goods.
func (s *ArrivalService) validateLines(ctx context.Context, lines []models.ArrivalLineRequest) error {
	for _, line := range lines {
		if line.Quantity.LessThan(decimal.Zero) {
			return apperrors.Invalidf("quantity must not be negative (item %d)", line.ItemID)
		}
		if line.Price.LessThan(decimal.Zero) {
			return apperrors.Invalidf("price must not be negative (item %d)", line.ItemID)
		}
		if _, err := s.Items.Get(ctx, line.ItemID); err != nil {
			return err
		}
	}
	return nil
}

func (s *ArrivalService) GetArrival(ctx context.Context, id int) (*models.Arrival, error) {
	return s.Repo.Get(ctx, id)
}

func (s *ArrivalService) ListArrivals(ctx context.Context, filter *models.ArrivalFilter) ([]*models.Arrival, error) {
	return s.Repo.ListFiltered(ctx, filter)
}

// GrandTotal values an arrival against the items' current cost prices.
func (s *ArrivalService) GrandTotal(ctx context.Context, arrival *models.Arrival) (decimal.Decimal, error) {
	costs, err := s.costIndex(ctx, arrival.Lines)
	if err != nil {
		return decimal.Zero, err
	}
	return valuation.ArrivalGrandTotal(arrival.Lines, costs)
}

func (s *ArrivalService) costIndex(ctx context.Context, lines []models.ItemArrival) (valuation.CostIndex, error) {
	ids := make([]int, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ItemID)
	}
	items, err := s.Items.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return valuation.CostsOf(items), nil
}
