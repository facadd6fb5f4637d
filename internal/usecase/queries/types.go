package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

// CheckInRecordView is the joined snapshot the authority looks up by code:
// ticket, event, ticket type, and owning purchase in one row.
type CheckInRecordView struct {
	TicketID       uuid.UUID  `json:"ticket_id"`
	EventID        uuid.UUID  `json:"event_id"`
	Code           string     `json:"code"`
	Status         string     `json:"status"`
	AttendeeName   string     `json:"attendee_name"`
	AttendeeEmail  string     `json:"attendee_email"`
	EventTitle     string     `json:"event_title"`
	EventDate      time.Time  `json:"event_date"`
	EventLocation  string     `json:"event_location"`
	TicketTypeName string     `json:"ticket_type_name"`
	PricePaidCents int64      `json:"price_paid_cents"`
	PurchaseID     *uuid.UUID `json:"purchase_id,omitempty"`
	PurchaseDate   *time.Time `json:"purchase_date,omitempty"`
	CheckedInAt    *time.Time `json:"checked_in_at,omitempty"`
	CheckedInBy    *uuid.UUID `json:"checked_in_by,omitempty"`
}

// ValidationView is the transient check-in result; it is rendered, never
// persisted.
type ValidationView struct {
	Valid  bool                `json:"valid"`
	Reason string              `json:"reason"`
	Ticket *TicketSnapshotView `json:"ticket,omitempty"`
}

type TicketSnapshotView struct {
	AttendeeName   string     `json:"attendee_name"`
	AttendeeEmail  string     `json:"attendee_email"`
	EventTitle     string     `json:"event_title"`
	EventDate      time.Time  `json:"event_date"`
	EventLocation  string     `json:"event_location"`
	TicketTypeName string     `json:"ticket_type_name"`
	PricePaidCents int64      `json:"price_paid_cents"`
	PurchaseDate   *time.Time `json:"purchase_date,omitempty"`
	CheckedInAt    *time.Time `json:"checked_in_at,omitempty"`
}

// TicketRecordView is one attendee ticket joined with its purchase and
// ticket type, the row shape both report reductions consume.
type TicketRecordView struct {
	TicketID           uuid.UUID  `json:"ticket_id"`
	Status             string     `json:"status"`
	CheckedInAt        *time.Time `json:"checked_in_at,omitempty"`
	PurchaseID         *uuid.UUID `json:"purchase_id,omitempty"`
	PurchaseTotalCents int64      `json:"purchase_total_cents"`
	TicketTypeID       uuid.UUID  `json:"ticket_type_id"`
	TicketTypeName     string     `json:"ticket_type_name"`
	TypePriceCents     int64      `json:"type_price_cents"`
}

type EventView struct {
	ID          uuid.UUID        `json:"id"`
	Title       string           `json:"title"`
	Location    string           `json:"location"`
	StartsAt    time.Time        `json:"starts_at"`
	EndsAt      time.Time        `json:"ends_at"`
	TicketTypes []TicketTypeView `json:"ticket_types"`
}

type TicketTypeView struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	PriceCents  int64     `json:"price_cents"`
	MaxQuantity int32     `json:"max_quantity"`
	SoldCount   int32     `json:"sold_count"`
}

// RevenueLine is recognized revenue for one ticket type. Purchase-grouped
// totals and legacy per-seat attributions are reported separately so a
// legacy multi-seat record shows up as a visible discrepancy instead of a
// silently merged figure.
type RevenueLine struct {
	TicketTypeID       uuid.UUID `json:"ticket_type_id"`
	TicketTypeName     string    `json:"ticket_type_name"`
	RevenueCents       int64     `json:"revenue_cents"`
	PurchaseCount      int       `json:"purchase_count"`
	SeatCount          int       `json:"seat_count"`
	LegacySeatCount    int       `json:"legacy_seat_count"`
	LegacyRevenueCents int64     `json:"legacy_revenue_cents"`
}

type AttendanceMetricsView struct {
	TotalAttendees int        `json:"total_attendees"`
	CheckedIn      int        `json:"checked_in"`
	Pending        int        `json:"pending"`
	AttendanceRate float64    `json:"attendance_rate"`
	LastCheckInAt  *time.Time `json:"last_check_in_at,omitempty"`
}

type EventReportView struct {
	EventID           uuid.UUID             `json:"event_id"`
	GeneratedAt       time.Time             `json:"generated_at"`
	Revenue           []RevenueLine         `json:"revenue"`
	TotalRevenueCents int64                 `json:"total_revenue_cents"`
	Attendance        AttendanceMetricsView `json:"attendance"`
}

type DashboardView struct {
	InProgressEvents int       `json:"in_progress_events"`
	GeneratedAt      time.Time `json:"generated_at"`
}
