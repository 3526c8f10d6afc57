package repositories

import (
	"context"
	"fmt"
	"strings"

	"stock-backend/internal/apperrors"
	"stock-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TransferRepository struct {
	DB    *pgxpool.Pool
	Items *ItemRepository
}

func NewTransferRepository(db *pgxpool.Pool, items *ItemRepository) *TransferRepository {
	return &TransferRepository{DB: db, Items: items}
}

// Create persists the transfer header, its lines, and the matching stock
// decrements in one transaction, mirroring ArrivalRepository.Create.
func (r *TransferRepository) Create(ctx context.Context, t *models.Transfer) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transfer transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO transfers(to_supplier_id, user_id, delivered_by)
         VALUES($1, $2, $3)
         RETURNING id, is_active, created_at, modified_at`,
		t.ToSupplierID, t.UserID, t.DeliveredBy,
	).Scan(&t.ID, &t.IsActive, &t.CreatedAt, &t.ModifiedAt)
	if err != nil {
		return apperrors.FromPg(err)
	}

	for i := range t.Lines {
		line := &t.Lines[i]
		line.TransferID = t.ID
		err = tx.QueryRow(ctx,
			`INSERT INTO item_transfers(transfer_id, item_id, quantity)
             VALUES($1, $2, $3)
             RETURNING id, is_active, created_at, modified_at`,
			line.TransferID, line.ItemID, line.Quantity,
		).Scan(&line.ID, &line.IsActive, &line.CreatedAt, &line.ModifiedAt)
		if err != nil {
			return apperrors.FromPg(err)
		}

		// Dispatched goods leave the shelf
		delta := int(line.Quantity.Round(0).IntPart())
		if err := r.Items.AdjustStock(ctx, tx, line.ItemID, -delta); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *TransferRepository) Get(ctx context.Context, id int) (*models.Transfer, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT t.id, t.to_supplier_id, s.name, t.user_id, t.delivered_by,
                t.is_active, t.created_at, t.modified_at
         FROM transfers t JOIN suppliers s ON t.to_supplier_id = s.id
         WHERE t.id=$1`, id)

	var t models.Transfer
	err := row.Scan(&t.ID, &t.ToSupplierID, &t.SupplierName, &t.UserID, &t.DeliveredBy,
		&t.IsActive, &t.CreatedAt, &t.ModifiedAt)
	if err != nil {
		return nil, apperrors.FromPg(err)
	}

	lines, err := r.GetLines(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	t.Lines = lines
	return &t, nil
}

// GetLines returns the line items of one transfer, item names joined in.
func (r *TransferRepository) GetLines(ctx context.Context, transferID int) ([]models.ItemTransfer, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT l.id, l.transfer_id, l.item_id, i.name, l.quantity,
                l.is_active, l.created_at, l.modified_at
         FROM item_transfers l JOIN items i ON l.item_id = i.id
         WHERE l.transfer_id=$1
         ORDER BY l.id`, transferID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []models.ItemTransfer
	for rows.Next() {
		var l models.ItemTransfer
		if err := rows.Scan(&l.ID, &l.TransferID, &l.ItemID, &l.ItemName, &l.Quantity,
			&l.IsActive, &l.CreatedAt, &l.ModifiedAt); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

// ListFiltered returns transfer headers matching the typed filter, with the
// same strict created_at bounds as the arrival query.
func (r *TransferRepository) ListFiltered(ctx context.Context, filter *models.TransferFilter) ([]*models.Transfer, error) {
	whereClause, args := buildTransferWhere(filter)

	limit := filter.Limit
	if limit <= 0 {
		limit = 500
	}

	query := fmt.Sprintf(`
		SELECT t.id, t.to_supplier_id, s.name, t.user_id, t.delivered_by,
		       t.is_active, t.created_at, t.modified_at
		FROM transfers t JOIN suppliers s ON t.to_supplier_id = s.id
		%s
		ORDER BY t.created_at DESC, t.id DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, len(args)+1, len(args)+2)

	args = append(args, limit, filter.Offset)

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transfers []*models.Transfer
	for rows.Next() {
		var t models.Transfer
		if err := rows.Scan(&t.ID, &t.ToSupplierID, &t.SupplierName, &t.UserID,
			&t.DeliveredBy, &t.IsActive, &t.CreatedAt, &t.ModifiedAt); err != nil {
			return nil, err
		}
		transfers = append(transfers, &t)
	}
	return transfers, rows.Err()
}

func buildTransferWhere(filter *models.TransferFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}
	argNum := 1

	if filter.ToSupplierID != 0 {
		conditions = append(conditions, fmt.Sprintf("t.to_supplier_id = $%d", argNum))
		args = append(args, filter.ToSupplierID)
		argNum++
	}

	if filter.Start != nil {
		conditions = append(conditions, fmt.Sprintf("t.created_at > $%d", argNum))
		args = append(args, *filter.Start)
		argNum++
	}

	if filter.End != nil {
		conditions = append(conditions, fmt.Sprintf("t.created_at < $%d", argNum))
		args = append(args, *filter.End)
		argNum++
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}
