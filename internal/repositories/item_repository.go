package repositories

import (
	"context"

	"stock-backend/internal/apperrors"
	"stock-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ItemRepository struct {
	DB *pgxpool.Pool
}

func NewItemRepository(db *pgxpool.Pool) *ItemRepository {
	return &ItemRepository{DB: db}
}

func (r *ItemRepository) Create(ctx context.Context, it *models.Item) error {
	err := r.DB.QueryRow(ctx,
		`INSERT INTO items(name, selling_price, original_price, category_id, stock)
         VALUES($1, $2, $3, $4, $5)
         RETURNING id, is_active, created_at, modified_at`,
		it.Name, it.SellingPrice, it.OriginalPrice, it.CategoryID, it.Stock,
	).Scan(&it.ID, &it.IsActive, &it.CreatedAt, &it.ModifiedAt)
	return apperrors.FromPg(err)
}

func (r *ItemRepository) Get(ctx context.Context, id int) (*models.Item, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT i.id, i.name, i.selling_price, i.original_price, i.category_id, c.name,
                i.stock, i.is_active, i.created_at, i.modified_at
         FROM items i JOIN categories c ON i.category_id = c.id
         WHERE i.id=$1`, id)

	var it models.Item
	err := row.Scan(&it.ID, &it.Name, &it.SellingPrice, &it.OriginalPrice, &it.CategoryID,
		&it.CategoryName, &it.Stock, &it.IsActive, &it.CreatedAt, &it.ModifiedAt)
	if err != nil {
		return nil, apperrors.FromPg(err)
	}
	return &it, nil
}

// GetByIDs loads the given items in one query. Used by valuation to build
// its cost index without N round trips.
func (r *ItemRepository) GetByIDs(ctx context.Context, ids []int) ([]*models.Item, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT i.id, i.name, i.selling_price, i.original_price, i.category_id, c.name,
                i.stock, i.is_active, i.created_at, i.modified_at
         FROM items i JOIN categories c ON i.category_id = c.id
         WHERE i.id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanItems(rows)
}

func (r *ItemRepository) List(ctx context.Context) ([]*models.Item, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT i.id, i.name, i.selling_price, i.original_price, i.category_id, c.name,
                i.stock, i.is_active, i.created_at, i.modified_at
         FROM items i JOIN categories c ON i.category_id = c.id
         ORDER BY i.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanItems(rows)
}

// ListActive returns items with is_active=true, the projection consumed by
// the sales/presentation collaborator.
func (r *ItemRepository) ListActive(ctx context.Context) ([]*models.Item, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT i.id, i.name, i.selling_price, i.original_price, i.category_id, c.name,
                i.stock, i.is_active, i.created_at, i.modified_at
         FROM items i JOIN categories c ON i.category_id = c.id
         WHERE i.is_active = TRUE
         ORDER BY i.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanItems(rows)
}

func (r *ItemRepository) Update(ctx context.Context, it *models.Item) error {
	tag, err := r.DB.Exec(ctx,
		`UPDATE items
         SET name=$1, selling_price=$2, original_price=$3, category_id=$4,
             is_active=$5, modified_at=CURRENT_TIMESTAMP
         WHERE id=$6`,
		it.Name, it.SellingPrice, it.OriginalPrice, it.CategoryID, it.IsActive, it.ID)
	if err != nil {
		return apperrors.FromPg(err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFoundf("item %d", it.ID)
	}
	return nil
}

// AdjustStock applies delta to the stock counter as a single atomic UPDATE,
// safe under concurrent arrival/transfer processing. Pass tx as q when the
// adjustment belongs to a document-creation transaction.
func (r *ItemRepository) AdjustStock(ctx context.Context, q Querier, itemID, delta int) error {
	tag, err := q.Exec(ctx,
		`UPDATE items SET stock = stock + $2, modified_at=CURRENT_TIMESTAMP WHERE id = $1`,
		itemID, delta)
	if err != nil {
		return apperrors.FromPg(err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NotFoundf("item %d", itemID)
	}
	return nil
}

func scanItems(rows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}) ([]*models.Item, error) {
	var items []*models.Item
	for rows.Next() {
		var it models.Item
		if err := rows.Scan(&it.ID, &it.Name, &it.SellingPrice, &it.OriginalPrice,
			&it.CategoryID, &it.CategoryName, &it.Stock, &it.IsActive,
			&it.CreatedAt, &it.ModifiedAt); err != nil {
			return nil, err
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}
