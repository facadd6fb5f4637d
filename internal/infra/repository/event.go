package repository

import (
	"context"
	"time"

	"ticketgate/internal/domain/event"
	"ticketgate/internal/infra"
	"ticketgate/internal/pkg/pgconv"
	"ticketgate/internal/usecase/queries"

	"github.com/google/uuid"
)

type EventRepository struct {
	db DBTX
}

func NewEventRepository(db DBTX) *EventRepository {
	return &EventRepository{db: db}
}

const findEventQuery = `
SELECT id, title, location, starts_at, ends_at
FROM events
WHERE id = $1`

const ticketTypesQuery = `
SELECT id, name, price_cents, max_quantity, sold_count
FROM ticket_types
WHERE event_id = $1
ORDER BY name`

func (r *EventRepository) FindByID(ctx context.Context, id uuid.UUID) (*queries.EventView, error) {
	var (
		eventID          uuid.UUID
		title, location  string
		startsAt, endsAt time.Time
	)

	err := r.db.QueryRow(ctx, findEventQuery, id).Scan(
		&eventID, &title, &location, &startsAt, &endsAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find event by ID", err)
	}

	ev, err := event.NewEvent(eventID, title, location, startsAt, endsAt)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt event record", err)
	}

	view := queries.EventView{
		ID:       ev.ID(),
		Title:    ev.Title(),
		Location: ev.Location(),
		StartsAt: ev.StartsAt(),
		EndsAt:   ev.EndsAt(),
	}

	rows, err := r.db.Query(ctx, ticketTypesQuery, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load ticket types", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			typeID                 uuid.UUID
			name                   string
			priceCents             int64
			maxQuantity, soldCount int32
		)
		if err := rows.Scan(&typeID, &name, &priceCents, &maxQuantity, &soldCount); err != nil {
			return nil, infra.WrapRepoErr("failed to scan ticket type", err)
		}
		tt, err := event.NewTicketType(typeID, ev.ID(), name, priceCents, maxQuantity, soldCount)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt ticket type record", err)
		}
		view.TicketTypes = append(view.TicketTypes, queries.TicketTypeView{
			ID:          tt.ID(),
			Name:        tt.Name(),
			PriceCents:  tt.PriceCents(),
			MaxQuantity: tt.MaxQuantity(),
			SoldCount:   tt.SoldCount(),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read ticket types", err)
	}

	return &view, nil
}

const countInProgressQuery = `
SELECT COUNT(*)
FROM events
WHERE starts_at <= $1 AND ends_at >= $1`

func (r *EventRepository) CountInProgress(ctx context.Context, now time.Time) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, countInProgressQuery, now).Scan(&count); err != nil {
		return 0, infra.WrapRepoErr("failed to count in-progress events", err)
	}
	return count, nil
}
