package repository

import (
	"context"

	"ticketgate/internal/infra"
	"ticketgate/internal/pkg/pgconv"
	"ticketgate/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReportRepository struct {
	db DBTX
}

func NewReportRepository(db DBTX) *ReportRepository {
	return &ReportRepository{db: db}
}

const ticketRecordsQuery = `
SELECT t.id, t.status, t.checked_in_at,
       t.purchase_id, p.total_paid_cents,
       tt.id, tt.name, tt.price_cents
FROM attendee_tickets t
JOIN ticket_types tt ON tt.id = t.ticket_type_id
LEFT JOIN purchases p ON p.id = t.purchase_id
WHERE t.event_id = $1`

// TicketRecordsByEvent returns every attendee ticket of the event joined
// with its purchase and ticket type. Strictly read-only: the report
// reductions run over this snapshot.
func (r *ReportRepository) TicketRecordsByEvent(ctx context.Context, eventID uuid.UUID) ([]queries.TicketRecordView, error) {
	rows, err := r.db.Query(ctx, ticketRecordsQuery, eventID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query ticket records", err)
	}
	defer rows.Close()

	var records []queries.TicketRecordView
	for rows.Next() {
		var (
			record      queries.TicketRecordView
			checkedInAt pgtype.Timestamptz
			purchaseID  pgtype.UUID
			totalPaid   pgtype.Int8
		)

		err := rows.Scan(
			&record.TicketID, &record.Status, &checkedInAt,
			&purchaseID, &totalPaid,
			&record.TicketTypeID, &record.TicketTypeName, &record.TypePriceCents,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan ticket record", err)
		}

		record.CheckedInAt = pgconv.TimePtrFromPgtype(checkedInAt)
		record.PurchaseID = pgconv.UUIDPtrFromPgtype(purchaseID)
		if totalPaid.Valid {
			record.PurchaseTotalCents = totalPaid.Int64
		}

		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read ticket records", err)
	}

	return records, nil
}
