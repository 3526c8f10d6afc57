package services

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"stock-backend/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRegister() *ArrivalRegister {
	created := time.Date(2024, 3, 15, 9, 30, 0, 0, time.UTC)
	arrival := &models.Arrival{
		ID:           12,
		PaymentType:  models.PaymentTypeCash,
		SupplierName: "Golden Grain Trading",
		ReceiptNo:    778,
		CreatedAt:    created,
		Lines: []models.ItemArrival{
			{ItemID: 1, ItemName: "Rice", Quantity: decimal.RequireFromString("10.000"), Price: decimal.RequireFromString("45.000")},
			{ItemID: 2, ItemName: "Sugar", Quantity: decimal.RequireFromString("5.000"), Price: decimal.RequireFromString("30.000")},
		},
	}
	total := decimal.RequireFromString("650.000")
	return &ArrivalRegister{
		Rows:       []ArrivalRegisterRow{{Arrival: arrival, GrandTotal: total}},
		RangeTotal: total,
	}
}

func TestExportCSV(t *testing.T) {
	svc := NewReportService(nil, nil)

	data, err := svc.ExportCSV(sampleRegister())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)

	// header + 2 lines + document total + range total
	require.Len(t, records, 5)
	assert.Equal(t, "arrival_id", records[0][0])
	assert.Equal(t, "Rice", records[1][5])
	assert.Equal(t, "10.000", records[1][6])
	assert.Equal(t, "650.000", records[3][8])
	assert.Equal(t, "650.000", records[4][8])
}

func TestExportCSVEmptyRegister(t *testing.T) {
	svc := NewReportService(nil, nil)

	data, err := svc.ExportCSV(&ArrivalRegister{RangeTotal: decimal.Zero})
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)

	// header + range total only
	require.Len(t, records, 2)
	assert.Equal(t, "0.000", records[1][8])
}

func TestExportPDF(t *testing.T) {
	svc := NewReportService(nil, nil)

	data, err := svc.ExportPDF(sampleRegister())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
