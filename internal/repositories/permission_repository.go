package repositories

import (
	"context"

	"stock-backend/internal/apperrors"
	"stock-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PermissionRepository struct {
	DB *pgxpool.Pool
}

func NewPermissionRepository(db *pgxpool.Pool) *PermissionRepository {
	return &PermissionRepository{DB: db}
}

func (r *PermissionRepository) Create(ctx context.Context, p *models.PermissionRequest) error {
	err := r.DB.QueryRow(ctx,
		`INSERT INTO permissions(user_id, message, requested_report, requested_arrival)
         VALUES($1, $2, $3, $4)
         RETURNING id, is_active, created_at, modified_at`,
		p.UserID, p.Message, p.RequestedReport, p.RequestedArrival,
	).Scan(&p.ID, &p.IsActive, &p.CreatedAt, &p.ModifiedAt)
	if err != nil {
		return apperrors.FromPg(err)
	}
	return nil
}

func (r *PermissionRepository) Get(ctx context.Context, id int) (*models.PermissionRequest, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT p.id, p.user_id, u.username, p.message, p.requested_report,
                p.requested_arrival, p.is_active, p.created_at, p.modified_at
         FROM permissions p JOIN user_accounts u ON p.user_id = u.id
         WHERE p.id=$1`, id)

	var p models.PermissionRequest
	err := row.Scan(&p.ID, &p.UserID, &p.Username, &p.Message, &p.RequestedReport,
		&p.RequestedArrival, &p.IsActive, &p.CreatedAt, &p.ModifiedAt)
	if err != nil {
		return nil, apperrors.FromPg(err)
	}
	return &p, nil
}

func (r *PermissionRepository) List(ctx context.Context) ([]*models.PermissionRequest, error) {
	return r.list(ctx,
		`SELECT p.id, p.user_id, u.username, p.message, p.requested_report,
                p.requested_arrival, p.is_active, p.created_at, p.modified_at
         FROM permissions p JOIN user_accounts u ON p.user_id = u.id
         ORDER BY p.created_at DESC`)
}

// ListByUser returns the requests filed by one user, newest first.
func (r *PermissionRepository) ListByUser(ctx context.Context, userID int) ([]*models.PermissionRequest, error) {
	return r.list(ctx,
		`SELECT p.id, p.user_id, u.username, p.message, p.requested_report,
                p.requested_arrival, p.is_active, p.created_at, p.modified_at
         FROM permissions p JOIN user_accounts u ON p.user_id = u.id
         WHERE p.user_id=$1
         ORDER BY p.created_at DESC`, userID)
}

func (r *PermissionRepository) list(ctx context.Context, query string, args ...interface{}) ([]*models.PermissionRequest, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []*models.PermissionRequest
	for rows.Next() {
		var p models.PermissionRequest
		if err := rows.Scan(&p.ID, &p.UserID, &p.Username, &p.Message, &p.RequestedReport,
			&p.RequestedArrival, &p.IsActive, &p.CreatedAt, &p.ModifiedAt); err != nil {
			return nil, err
		}
		requests = append(requests, &p)
	}
	return requests, rows.Err()
}
