package repositories

import (
	"context"

	"stock-backend/internal/apperrors"
	"stock-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type SupplierRepository struct {
	DB *pgxpool.Pool
}

func NewSupplierRepository(db *pgxpool.Pool) *SupplierRepository {
	return &SupplierRepository{DB: db}
}

func (r *SupplierRepository) Create(ctx context.Context, s *models.Supplier) error {
	err := r.DB.QueryRow(ctx,
		`INSERT INTO suppliers(name, address, phone)
         VALUES($1, $2, $3)
         RETURNING id, is_active, created_at, modified_at`,
		s.Name, s.Address, s.Phone,
	).Scan(&s.ID, &s.IsActive, &s.CreatedAt, &s.ModifiedAt)
	return apperrors.FromPg(err)
}

func (r *SupplierRepository) Get(ctx context.Context, id int) (*models.Supplier, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, name, address, phone, is_active, created_at, modified_at
         FROM suppliers WHERE id=$1`, id)

	var s models.Supplier
	err := row.Scan(&s.ID, &s.Name, &s.Address, &s.Phone, &s.IsActive, &s.CreatedAt, &s.ModifiedAt)
	if err != nil {
		return nil, apperrors.FromPg(err)
	}
	return &s, nil
}

func (r *SupplierRepository) List(ctx context.Context) ([]*models.Supplier, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, name, address, phone, is_active, created_at, modified_at
         FROM suppliers ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var suppliers []*models.Supplier
	for rows.Next() {
		var s models.Supplier
		if err := rows.Scan(&s.ID, &s.Name, &s.Address, &s.Phone, &s.IsActive,
			&s.CreatedAt, &s.ModifiedAt); err != nil {
			return nil, err
		}
		suppliers = append(suppliers, &s)
	}
	return suppliers, rows.Err()
}

func (r *SupplierRepository) Update(ctx context.Context, s *models.Supplier) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE suppliers SET name=$1, address=$2, phone=$3, is_active=$4, modified_at=CURRENT_TIMESTAMP
         WHERE id=$5`,
		s.Name, s.Address, s.Phone, s.IsActive, s.ID)
	if err != nil {
		return apperrors.FromPg(err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFoundf("supplier %d", s.ID)
	}
	return nil
}
