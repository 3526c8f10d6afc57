// Package valuation derives monetary totals over ledger documents. It is
// pure: every function operates on already-loaded data and never touches
// persistence, so document identity and storage stay out of the math.
package valuation

import (
	"github.com/shopspring/decimal"

	"stock-backend/internal/apperrors"
	"stock-backend/internal/models"
)

// Scale is the number of fractional digits carried by every monetary and
// quantity value (NUMERIC(15,3) in storage).
const Scale = 3

// CostIndex maps item id to the item's current original (cost) price.
// Valuation is always based on the item's current cost price, not on the
// price recorded on the line; the line price is the historical receipt
// price and is kept for the record only.
type CostIndex map[int]decimal.NullDecimal

// CostsOf builds a CostIndex from loaded items.
func CostsOf(items []*models.Item) CostIndex {
	idx := make(CostIndex, len(items))
	for _, it := range items {
		idx[it.ID] = it.OriginalPrice
	}
	return idx
}

// LineTotal computes cost price x quantity at fixed precision. An absent
// cost price is a typed error, never a silent zero.
func LineTotal(cost decimal.NullDecimal, quantity decimal.Decimal) (decimal.Decimal, error) {
	if !cost.Valid {
		return decimal.Zero, apperrors.ErrMissingPrice
	}
	return cost.Decimal.Mul(quantity).Round(Scale), nil
}

// ArrivalGrandTotal sums line totals over an arrival's lines. A document
// with zero lines totals zero. A line whose item has no cost price fails
// with ErrMissingPrice.
func ArrivalGrandTotal(lines []models.ItemArrival, costs CostIndex) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, line := range lines {
		cost, ok := costs[line.ItemID]
		if !ok {
			return decimal.Zero, apperrors.NotFoundf("item %d not loaded for valuation", line.ItemID)
		}
		lt, err := LineTotal(cost, line.Quantity)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(lt)
	}
	return total, nil
}

// TransferGrandTotal sums line totals over a transfer's lines. Transfer
// lines carry no price of their own, so valuation is necessarily based on
// the item's current cost price.
func TransferGrandTotal(lines []models.ItemTransfer, costs CostIndex) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, line := range lines {
		cost, ok := costs[line.ItemID]
		if !ok {
			return decimal.Zero, apperrors.NotFoundf("item %d not loaded for valuation", line.ItemID)
		}
		lt, err := LineTotal(cost, line.Quantity)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(lt)
	}
	return total, nil
}
