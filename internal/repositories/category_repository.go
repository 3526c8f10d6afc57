package repositories

import (
	"context"

	"stock-backend/internal/apperrors"
	"stock-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type CategoryRepository struct {
	DB *pgxpool.Pool
}

func NewCategoryRepository(db *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) Create(ctx context.Context, c *models.Category) error {
	err := r.DB.QueryRow(ctx,
		`INSERT INTO categories(name)
         VALUES($1)
         RETURNING id, is_active, created_at, modified_at`,
		c.Name,
	).Scan(&c.ID, &c.IsActive, &c.CreatedAt, &c.ModifiedAt)
	return apperrors.FromPg(err)
}

func (r *CategoryRepository) Get(ctx context.Context, id int) (*models.Category, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT id, name, is_active, created_at, modified_at
         FROM categories WHERE id=$1`, id)

	var c models.Category
	err := row.Scan(&c.ID, &c.Name, &c.IsActive, &c.CreatedAt, &c.ModifiedAt)
	if err != nil {
		return nil, apperrors.FromPg(err)
	}
	return &c, nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]*models.Category, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT id, name, is_active, created_at, modified_at
         FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []*models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.IsActive, &c.CreatedAt, &c.ModifiedAt); err != nil {
			return nil, err
		}
		categories = append(categories, &c)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) Update(ctx context.Context, c *models.Category) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE categories SET name=$1, is_active=$2, modified_at=CURRENT_TIMESTAMP
         WHERE id=$3`,
		c.Name, c.IsActive, c.ID)
	if err != nil {
		return apperrors.FromPg(err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFoundf("category %d", c.ID)
	}
	return nil
}
