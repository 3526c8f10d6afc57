package valuation

import (
	"testing"

	"stock-backend/internal/apperrors"
	"stock-backend/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func nullDec(s string) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: dec(s), Valid: true}
}

func TestLineTotal(t *testing.T) {
	total, err := LineTotal(nullDec("50.000"), dec("10.000"))
	require.NoError(t, err)
	assert.Equal(t, "500.000", total.StringFixed(Scale))
}

func TestLineTotalMissingPrice(t *testing.T) {
	_, err := LineTotal(decimal.NullDecimal{}, dec("10.000"))
	assert.ErrorIs(t, err, apperrors.ErrMissingPrice)
}

func TestLineTotalRoundsToScale(t *testing.T) {
	total, err := LineTotal(nullDec("0.333"), dec("0.5"))
	require.NoError(t, err)
	assert.Equal(t, "0.167", total.StringFixed(Scale))
}

func TestArrivalGrandTotal(t *testing.T) {
	costs := CostIndex{7: nullDec("50.000")}
	lines := []models.ItemArrival{
		{ItemID: 7, Quantity: dec("10.000"), Price: dec("45.000")},
		{ItemID: 7, Quantity: dec("10.000"), Price: dec("45.000")},
	}

	total, err := ArrivalGrandTotal(lines, costs)
	require.NoError(t, err)
	// valuation uses the item's current cost price, not the line price
	assert.Equal(t, "1000.000", total.StringFixed(Scale))
}

func TestArrivalGrandTotalZeroLines(t *testing.T) {
	total, err := ArrivalGrandTotal(nil, CostIndex{})
	require.NoError(t, err)
	assert.True(t, total.IsZero())
}

func TestArrivalGrandTotalMissingPrice(t *testing.T) {
	costs := CostIndex{7: decimal.NullDecimal{}}
	lines := []models.ItemArrival{{ItemID: 7, Quantity: dec("1.000")}}

	_, err := ArrivalGrandTotal(lines, costs)
	assert.ErrorIs(t, err, apperrors.ErrMissingPrice)
}

func TestArrivalGrandTotalUnloadedItem(t *testing.T) {
	lines := []models.ItemArrival{{ItemID: 99, Quantity: dec("1.000")}}

	_, err := ArrivalGrandTotal(lines, CostIndex{})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestTransferGrandTotal(t *testing.T) {
	costs := CostIndex{1: nullDec("2.500"), 2: nullDec("0.125")}
	lines := []models.ItemTransfer{
		{ItemID: 1, Quantity: dec("4.000")},
		{ItemID: 2, Quantity: dec("8.000")},
	}

	total, err := TransferGrandTotal(lines, costs)
	require.NoError(t, err)
	assert.Equal(t, "11.000", total.StringFixed(Scale))
}

func TestCostsOf(t *testing.T) {
	items := []*models.Item{
		{ID: 1, OriginalPrice: nullDec("10.000")},
		{ID: 2},
	}

	costs := CostsOf(items)
	assert.True(t, costs[1].Valid)
	assert.False(t, costs[2].Valid)
}
