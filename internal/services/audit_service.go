package services

import (
	"context"
	"log"

	"stock-backend/internal/metrics"
	"stock-backend/internal/models"
	"stock-backend/internal/repositories"
)

// Audit event actions
const (
	EventLogin           = "auth.login"
	EventLoginFailed     = "auth.login_failed"
	EventCategoryCreated = "catalog.category_created"
	EventCategoryUpdated = "catalog.category_updated"
	EventItemCreated     = "catalog.item_created"
	EventItemUpdated     = "catalog.item_updated"
	EventSupplierCreated = "parties.supplier_created"
	EventSupplierUpdated = "parties.supplier_updated"
	EventUserCreated     = "users.created"
	EventUserUpdated     = "users.updated"
	EventArrivalCreated  = "ledger.arrival_created"
	EventTransferCreated = "ledger.transfer_created"
	EventPermissionFiled = "permission.filed"
)

// Event status values
const (
	StatusOK     int16 = 1
	StatusFailed int16 = 0
)

// AuditService appends immutable events to the audit log. Recording is
// best-effort relative to the operation it describes: a failed append is
// logged but never fails the business operation that triggered it.
type AuditService struct {
	Repo *repositories.EventRepository

	// Broadcast, when set, receives every successfully appended event.
	// The monitoring server uses it to push live events to websocket
	// subscribers.
	Broadcast func(*models.Event)
}

func NewAuditService(repo *repositories.EventRepository) *AuditService {
	return &AuditService{Repo: repo}
}

// Record appends an audit event with a freshly generated correlation
// identifier.
func (s *AuditService) Record(ctx context.Context, action, description, payload, ipAddress string, userID int, status int16) {
	event := models.NewEvent(action, description, payload, ipAddress, userID, status)

	if err := s.Repo.Append(ctx, event); err != nil {
		log.Printf("[Audit] Failed to append event %s: %v", action, err)
		return
	}

	metrics.AuditEventsRecorded.WithLabelValues(action).Inc()

	if s.Broadcast != nil {
		s.Broadcast(event)
	}
}

// List returns audit events matching the filter, newest first
func (s *AuditService) List(ctx context.Context, filter *models.EventFilter) ([]*models.Event, error) {
	return s.Repo.ListFiltered(ctx, filter)
}
