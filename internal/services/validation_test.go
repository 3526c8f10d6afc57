package services

import (
	"context"
	"testing"

	"stock-backend/internal/apperrors"
	"stock-backend/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// validation that rejects before any repository is touched can run with nil
// dependencies

func TestCreateArrivalRejectsBadPaymentType(t *testing.T) {
	svc := NewArrivalService(nil, nil, nil)

	_, err := svc.CreateArrival(context.Background(), &models.CreateArrivalRequest{
		PaymentType: "credit",
		SupplierID:  1,
	}, 1)

	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}

func TestCreateArrivalRejectsNegativeReceiptNo(t *testing.T) {
	svc := NewArrivalService(nil, nil, nil)

	_, err := svc.CreateArrival(context.Background(), &models.CreateArrivalRequest{
		PaymentType: models.PaymentTypeCash,
		SupplierID:  1,
		ReceiptNo:   -4,
	}, 1)

	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}

func TestCreateCategoryRejectsEmptyName(t *testing.T) {
	svc := NewCatalogService(nil, nil)

	_, err := svc.CreateCategory(context.Background(), &models.CreateCategoryRequest{})
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}

func TestCreateItemRejectsNegativePrice(t *testing.T) {
	svc := NewCatalogService(nil, nil)

	neg := decimal.NullDecimal{Decimal: decimal.NewFromInt(-1), Valid: true}
	_, err := svc.CreateItem(context.Background(), &models.CreateItemRequest{
		Name:          "Rice",
		CategoryID:    1,
		OriginalPrice: neg,
	})

	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}

func TestCreateItemRejectsNegativeStock(t *testing.T) {
	svc := NewCatalogService(nil, nil)

	_, err := svc.CreateItem(context.Background(), &models.CreateItemRequest{
		Name:       "Rice",
		CategoryID: 1,
		Stock:      -10,
	})

	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}

func TestCreateUserRejectsEmptyUsername(t *testing.T) {
	svc := NewUserService(nil, nil)

	_, err := svc.CreateUser(context.Background(), &models.CreateUserRequest{Password: "pw"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}

func TestCreateUserRejectsEmptyPassword(t *testing.T) {
	svc := NewUserService(nil, nil)

	_, err := svc.CreateUser(context.Background(), &models.CreateUserRequest{Username: "u"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}

func TestFileRequestRejectsEmptyMessage(t *testing.T) {
	svc := NewPermissionService(nil)

	_, err := svc.FileRequest(context.Background(), &models.CreatePermissionRequest{}, 1)
	assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
}
