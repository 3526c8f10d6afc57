package repositories

import (
	"context"
	"fmt"
	"strings"

	"stock-backend/internal/apperrors"
	"stock-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EventRepository is append-only: events are inserted and read, never
// updated or deleted.
type EventRepository struct {
	DB *pgxpool.Pool
}

func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{DB: db}
}

// Append persists an audit event. The correlation_id column carries a
// UNIQUE constraint, so two events that somehow share an identifier fail
// loudly instead of silently colliding.
func (r *EventRepository) Append(ctx context.Context, e *models.Event) error {
	err := r.DB.QueryRow(ctx,
		`INSERT INTO events(correlation_id, event_action, description, payload,
                            ip_address, user_id, status)
         VALUES($1, $2, $3, $4, $5, $6, $7)
         RETURNING id, is_active, created_at, modified_at`,
		e.CorrelationID, e.EventAction, e.Description, e.Payload,
		e.IPAddress, e.UserID, e.Status,
	).Scan(&e.ID, &e.IsActive, &e.CreatedAt, &e.ModifiedAt)
	if err != nil {
		return apperrors.FromPg(err)
	}
	return nil
}

// ListFiltered returns audit events matching the typed filter, newest first.
func (r *EventRepository) ListFiltered(ctx context.Context, filter *models.EventFilter) ([]*models.Event, error) {
	whereClause, args := buildEventWhere(filter)

	limit := filter.Limit
	if limit <= 0 {
		limit = 500
	}

	query := fmt.Sprintf(`
		SELECT e.id, e.correlation_id, e.event_action, e.description, e.payload,
		       e.ip_address, e.user_id, u.username, e.status,
		       e.is_active, e.created_at, e.modified_at
		FROM events e JOIN user_accounts u ON e.user_id = u.id
		%s
		ORDER BY e.created_at DESC, e.id DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, len(args)+1, len(args)+2)

	args = append(args, limit, filter.Offset)

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*models.Event
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.CorrelationID, &e.EventAction, &e.Description,
			&e.Payload, &e.IPAddress, &e.UserID, &e.Username, &e.Status,
			&e.IsActive, &e.CreatedAt, &e.ModifiedAt); err != nil {
			return nil, err
		}
		events = append(events, &e)
	}
	return events, rows.Err()
}

func buildEventWhere(filter *models.EventFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}
	argNum := 1

	if filter.Action != "" {
		conditions = append(conditions, fmt.Sprintf("e.event_action = $%d", argNum))
		args = append(args, filter.Action)
		argNum++
	}

	if filter.UserID != 0 {
		conditions = append(conditions, fmt.Sprintf("e.user_id = $%d", argNum))
		args = append(args, filter.UserID)
		argNum++
	}

	if filter.Start != nil {
		conditions = append(conditions, fmt.Sprintf("e.created_at > $%d", argNum))
		args = append(args, *filter.Start)
		argNum++
	}

	if filter.End != nil {
		conditions = append(conditions, fmt.Sprintf("e.created_at < $%d", argNum))
		args = append(args, *filter.End)
		argNum++
	}

	if len(conditions) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}
