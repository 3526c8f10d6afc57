package repositories

import (
	"testing"
	"time"

	"stock-backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestBuildArrivalWhereEmpty(t *testing.T) {
	where, args := buildArrivalWhere(&models.ArrivalFilter{})
	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestBuildArrivalWhereStrictBounds(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	where, args := buildArrivalWhere(&models.ArrivalFilter{Start: &start, End: &end})

	// bounds are exclusive on both ends
	assert.Equal(t, "WHERE a.created_at > $1 AND a.created_at < $2", where)
	assert.Equal(t, []interface{}{start, end}, args)
}

func TestBuildArrivalWhereAllConditions(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	where, args := buildArrivalWhere(&models.ArrivalFilter{
		SupplierID:  5,
		Start:       &start,
		End:         &end,
		PaymentType: models.PaymentTypeCash,
	})

	assert.Equal(t,
		"WHERE a.supplier_id = $1 AND a.created_at > $2 AND a.created_at < $3 AND a.payment_type = $4",
		where)
	assert.Equal(t, []interface{}{5, start, end, models.PaymentTypeCash}, args)
}

func TestBuildArrivalWhereSupplierOnly(t *testing.T) {
	where, args := buildArrivalWhere(&models.ArrivalFilter{SupplierID: 9})
	assert.Equal(t, "WHERE a.supplier_id = $1", where)
	assert.Equal(t, []interface{}{9}, args)
}

func TestBuildTransferWhere(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	where, args := buildTransferWhere(&models.TransferFilter{
		ToSupplierID: 3,
		Start:        &start,
	})

	assert.Equal(t, "WHERE t.to_supplier_id = $1 AND t.created_at > $2", where)
	assert.Equal(t, []interface{}{3, start}, args)
}

func TestBuildEventWhere(t *testing.T) {
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	where, args := buildEventWhere(&models.EventFilter{
		Action: "auth.login",
		UserID: 2,
		End:    &end,
	})

	assert.Equal(t, "WHERE e.event_action = $1 AND e.user_id = $2 AND e.created_at < $3", where)
	assert.Equal(t, []interface{}{"auth.login", 2, end}, args)
}
