//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// CreateTestEvent inserts an event running from one hour ago to three hours
// from now, so it counts as in progress.
func CreateTestEvent(t *testing.T, db DBLike, title string) uuid.UUID {
	t.Helper()

	eventID := uuid.New()
	now := time.Now().UTC()
	_, err := db.Exec(context.Background(),
		"INSERT INTO events (id, title, location, starts_at, ends_at) VALUES ($1, $2, $3, $4, $5)",
		eventID, title, "Main Hall", now.Add(-time.Hour), now.Add(3*time.Hour))
	require.NoError(t, err)

	return eventID
}

func CreateTicketType(t *testing.T, db DBLike, eventID uuid.UUID, name string, priceCents int64, maxQuantity int32) uuid.UUID {
	t.Helper()

	typeID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO ticket_types (id, event_id, name, price_cents, max_quantity) VALUES ($1, $2, $3, $4, $5)",
		typeID, eventID, name, priceCents, maxQuantity)
	require.NoError(t, err)

	return typeID
}

func CreateTestPurchase(t *testing.T, db DBLike, eventID uuid.UUID, quantity int32, totalPaidCents int64) uuid.UUID {
	t.Helper()

	purchaseID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO purchases (id, event_id, purchaser_email, quantity, total_paid_cents) VALUES ($1, $2, $3, $4, $5)",
		purchaseID, eventID, "buyer@example.com", quantity, totalPaidCents)
	require.NoError(t, err)

	return purchaseID
}

func CreateAttendeeTicket(t *testing.T, db DBLike, eventID, typeID, purchaseID uuid.UUID, code, attendeeName string) uuid.UUID {
	t.Helper()

	ticketID := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO attendee_tickets (id, event_id, ticket_type_id, purchase_id, code, attendee_name, attendee_email)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		ticketID, eventID, typeID, purchaseID, code, attendeeName, "attendee@example.com")
	require.NoError(t, err)

	return ticketID
}

// CreateLegacyTicket inserts a seat with no owning purchase, the shape of
// records imported before purchase grouping existed.
func CreateLegacyTicket(t *testing.T, db DBLike, eventID, typeID uuid.UUID, code, attendeeName string) uuid.UUID {
	t.Helper()

	ticketID := uuid.New()
	_, err := db.Exec(context.Background(),
		`INSERT INTO attendee_tickets (id, event_id, ticket_type_id, code, attendee_name, attendee_email)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		ticketID, eventID, typeID, code, attendeeName, "attendee@example.com")
	require.NoError(t, err)

	return ticketID
}

func TicketStatus(t *testing.T, db DBLike, code string) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(),
		"SELECT status FROM attendee_tickets WHERE code = $1", code).Scan(&status)
	require.NoError(t, err)

	return status
}
