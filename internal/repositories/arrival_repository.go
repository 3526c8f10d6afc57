package repositories

import (
	"context"
	"fmt"
	"strings"

	"stock-backend/internal/apperrors"
	"stock-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ArrivalRepository struct {
	DB    *pgxpool.Pool
	Items *ItemRepository
}

func NewArrivalRepository(db *pgxpool.Pool, items *ItemRepository) *ArrivalRepository {
	return &ArrivalRepository{DB: db, Items: items}
}

// Create persists the arrival header, every line, and the matching stock
// increments in one transaction. Nothing is visible to readers until the
// whole document committed; any failure rolls everything back.
func (r *ArrivalRepository) Create(ctx context.Context, a *models.Arrival) error {
	tx, err := r.DB.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin arrival transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO arrivals(payment_type, supplier_id, receipt_no, user_id)
         VALUES($1, $2, $3, $4)
         RETURNING id, is_active, created_at, modified_at`,
		a.PaymentType, a.SupplierID, a.ReceiptNo, a.UserID,
	).Scan(&a.ID, &a.IsActive, &a.CreatedAt, &a.ModifiedAt)
	if err != nil {
		return apperrors.FromPg(err)
	}

	for i := range a.Lines {
		line := &a.Lines[i]
		line.ArrivalID = a.ID
		err = tx.QueryRow(ctx,
			`INSERT INTO item_arrivals(arrival_id, item_id, quantity, price)
             VALUES($1, $2, $3, $4)
             RETURNING id, is_active, created_at, modified_at`,
			line.ArrivalID, line.ItemID, line.Quantity, line.Price,
		).Scan(&line.ID, &line.IsActive, &line.CreatedAt, &line.ModifiedAt)
		if err != nil {
			return apperrors.FromPg(err)
		}

		// Received goods go on the shelf. The stock counter is an
		// integer while line quantities carry 3 fractional digits, so
		// the delta is rounded.
		delta := int(line.Quantity.Round(0).IntPart())
		if err := r.Items.AdjustStock(ctx, tx, line.ItemID, delta); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *ArrivalRepository) Get(ctx context.Context, id int) (*models.Arrival, error) {
	row := r.DB.QueryRow(ctx,
		`SELECT a.id, a.payment_type, a.supplier_id, s.name, a.receipt_no, a.user_id,
                a.is_active, a.created_at, a.modified_at
         FROM arrivals a JOIN suppliers s ON a.supplier_id = s.id
         WHERE a.id=$1`, id)

	var a models.Arrival
	err := row.Scan(&a.ID, &a.PaymentType, &a.SupplierID, &a.SupplierName, &a.ReceiptNo,
		&a.UserID, &a.IsActive, &a.CreatedAt, &a.ModifiedAt)
	if err != nil {
		return nil, apperrors.FromPg(err)
	}

	lines, err := r.GetLines(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	a.Lines = lines
	return &a, nil
}

// GetLines returns the line items of one arrival, item names joined in.
func (r *ArrivalRepository) GetLines(ctx context.Context, arrivalID int) ([]models.ItemArrival, error) {
	rows, err := r.DB.Query(ctx,
		`SELECT l.id, l.arrival_id, l.item_id, i.name, l.quantity, l.price,
                l.is_active, l.created_at, l.modified_at
         FROM item_arrivals l JOIN items i ON l.item_id = i.id
         WHERE l.arrival_id=$1
         ORDER BY l.id`, arrivalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []models.ItemArrival
	for rows.Next() {
		var l models.ItemArrival
		if err := rows.Scan(&l.ID, &l.ArrivalID, &l.ItemID, &l.ItemName, &l.Quantity,
			&l.Price, &l.IsActive, &l.CreatedAt, &l.ModifiedAt); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

// ListFiltered returns arrival headers matching the typed filter. Start and
// End bound created_at STRICTLY on both ends — boundary-equal timestamps
// are excluded by contract.
func (r *ArrivalRepository) ListFiltered(ctx context.Context, filter *models.ArrivalFilter) ([]*models.Arrival, error) {
	whereClause, args := buildArrivalWhere(filter)

	limit := filter.Limit
	if limit <= 0 {
		limit = 500
	}

	query := fmt.Sprintf(`
		SELECT a.id, a.payment_type, a.supplier_id, s.name, a.receipt_no, a.user_id,
		       a.is_active, a.created_at, a.modified_at
		FROM arrivals a JOIN suppliers s ON a.supplier_id = s.id
		%s
		ORDER BY a.created_at DESC, a.id DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, len(args)+1, len(args)+2)

	args = append(args, limit, filter.Offset)

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var arrivals []*models.Arrival
	for rows.Next() {
		var a models.Arrival
		if err := rows.Scan(&a.ID, &a.PaymentType, &a.SupplierID, &a.SupplierName,
			&a.ReceiptNo, &a.UserID, &a.IsActive, &a.CreatedAt, &a.ModifiedAt); err != nil {
			return nil, err
		}
		arrivals = append(arrivals, &a)
	}
	return arrivals, rows.Err()
}

// buildArrivalWhere compiles the typed filter into a parameterised WHERE
// clause. Filters never reach SQL as raw text.
func buildArrivalWhere(filter *models.ArrivalFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}
	argNum := 1

	if filter.SupplierID != 0 {
		conditions = append(conditions, fmt.Sprintf("a.supplier_id = $%d", argNum))
		args = append(args, filter.SupplierID)
		argNum++
	}

	if filter.Start != nil {
		conditions = append(conditions, fmt.Sprintf("a.created_at > $%d", argNum))
		args = append(args, *filter.Start)
		argNum++
	}

	if filter.End != nil {
		conditions = append(conditions, fmt.Sprintf("a.created_at < $%d", argNum))
		args = append(args, *filter.End)
		argNum++
	}

	if filter.PaymentType != "" {
		conditions = append(conditions, fmt.Sprintf("a.payment_type = $%d", argNum))
		args = append(args, filter.PaymentType)
		argNum++
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}
