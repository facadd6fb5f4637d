package repository

import (
	"context"
	"time"

	"ticketgate/internal/domain/purchase"
	"ticketgate/internal/domain/ticket"
	"ticketgate/internal/infra"
	"ticketgate/internal/pkg/pgconv"
	"ticketgate/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type TicketRepository struct {
	db DBTX
}

func NewTicketRepository(db DBTX) *TicketRepository {
	return &TicketRepository{db: db}
}

const findByCodeQuery = `
SELECT t.id, t.event_id, t.ticket_type_id, t.code, t.status,
       t.attendee_name, t.attendee_email, t.created_at,
       e.title, e.starts_at, e.location,
       tt.name, tt.price_cents,
       t.purchase_id, p.purchaser_name, p.purchaser_email, p.quantity,
       p.total_paid_cents, p.promo_code, p.purchased_at,
       t.checked_in_at, t.checked_in_by
FROM attendee_tickets t
JOIN events e ON e.id = t.event_id
JOIN ticket_types tt ON tt.id = t.ticket_type_id
LEFT JOIN purchases p ON p.id = t.purchase_id
WHERE t.code = $1`

// FindByCode reconstructs the attendee ticket entity alongside its display
// snapshot, so lifecycle decisions run through the domain and a corrupt row
// is rejected at the boundary instead of leaking into responses.
func (r *TicketRepository) FindByCode(ctx context.Context, code string) (*ticket.AttendeeTicket, *queries.CheckInRecordView, error) {
	var (
		view           queries.CheckInRecordView
		ticketTypeID   uuid.UUID
		createdAt      time.Time
		typePriceCents int64
		purchaseID     pgtype.UUID
		purchaserName  pgtype.Text
		purchaserEmail pgtype.Text
		quantity       pgtype.Int4
		totalPaid      pgtype.Int8
		promoCode      pgtype.Text
		purchasedAt    pgtype.Timestamptz
		checkedInAt    pgtype.Timestamptz
		checkedInBy    pgtype.UUID
	)

	err := r.db.QueryRow(ctx, findByCodeQuery, code).Scan(
		&view.TicketID, &view.EventID, &ticketTypeID, &view.Code, &view.Status,
		&view.AttendeeName, &view.AttendeeEmail, &createdAt,
		&view.EventTitle, &view.EventDate, &view.EventLocation,
		&view.TicketTypeName, &typePriceCents,
		&purchaseID, &purchaserName, &purchaserEmail, &quantity,
		&totalPaid, &promoCode, &purchasedAt,
		&checkedInAt, &checkedInBy,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil, infra.WrapRepoErr("ticket not found by code", err, infra.KindNotFound)
		}
		return nil, nil, infra.WrapRepoErr("failed to find ticket by code", err)
	}

	view.PurchaseID = pgconv.UUIDPtrFromPgtype(purchaseID)
	view.PurchaseDate = pgconv.TimePtrFromPgtype(purchasedAt)
	view.CheckedInAt = pgconv.TimePtrFromPgtype(checkedInAt)
	view.CheckedInBy = pgconv.UUIDPtrFromPgtype(checkedInBy)

	tk, err := reconstructTicket(&view, ticketTypeID, createdAt)
	if err != nil {
		return nil, nil, infra.WrapRepoErr("corrupt ticket record", err)
	}

	// Display price: the seat's share of what the purchase actually charged,
	// or the list price for legacy seats without a purchase.
	view.PricePaidCents = typePriceCents
	if tk.HasPurchase() {
		p, err := purchase.Reconstruct(
			*view.PurchaseID, view.EventID,
			quantity.Int32, totalPaid.Int64,
			pgconv.StringPtrFromPgtype(promoCode),
			purchaserName.String, purchaserEmail.String,
			pgconv.TimeFromPgtype(purchasedAt),
		)
		if err != nil {
			return nil, nil, infra.WrapRepoErr("corrupt purchase record", err)
		}
		view.PricePaidCents = p.PerSeatCents()
	}

	return tk, &view, nil
}

func reconstructTicket(view *queries.CheckInRecordView, ticketTypeID uuid.UUID, createdAt time.Time) (*ticket.AttendeeTicket, error) {
	code, err := ticket.NewCode(view.Code)
	if err != nil {
		return nil, err
	}
	status, err := ticket.NewStatus(view.Status)
	if err != nil {
		return nil, err
	}
	return ticket.Reconstruct(
		view.TicketID, view.PurchaseID, view.EventID, ticketTypeID,
		view.AttendeeName, view.AttendeeEmail,
		code, status,
		view.CheckedInAt, view.CheckedInBy, createdAt,
	)
}

const consumeStmt = `
UPDATE attendee_tickets
SET status = 'used', checked_in_at = $2, checked_in_by = $3
WHERE code = $1 AND status = 'active'`

// Consume is the one mutation this core performs: a single conditional
// transition equivalent to "set status=used where status=active". Two
// scanners racing on the same code cannot both see one row affected; the
// loser observes zero and reports already_used, not an error.
func (r *TicketRepository) Consume(ctx context.Context, code string, staffID uuid.UUID, at time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, consumeStmt, code, pgconv.TimeToPgtype(at), staffID)
	if err != nil {
		return false, infra.WrapRepoErr("failed to consume ticket", err)
	}

	return tag.RowsAffected() == 1, nil
}
