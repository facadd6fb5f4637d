package response

import (
	"time"

	"ticketgate/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type EventReportResponse struct {
	EventID           uuid.UUID                 `json:"event_id"`
	GeneratedAt       time.Time                 `json:"generated_at"`
	Revenue           []RevenueLineResponse     `json:"revenue"`
	TotalRevenueCents int64                     `json:"total_revenue_cents"`
	Attendance        AttendanceMetricsResponse `json:"attendance"`
}

type RevenueLineResponse struct {
	TicketTypeID       uuid.UUID `json:"ticket_type_id"`
	TicketTypeName     string    `json:"ticket_type_name"`
	RevenueCents       int64     `json:"revenue_cents"`
	PurchaseCount      int       `json:"purchase_count"`
	SeatCount          int       `json:"seat_count"`
	LegacySeatCount    int       `json:"legacy_seat_count"`
	LegacyRevenueCents int64     `json:"legacy_revenue_cents"`
}

type AttendanceMetricsResponse struct {
	TotalAttendees int        `json:"total_attendees"`
	CheckedIn      int        `json:"checked_in"`
	Pending        int        `json:"pending"`
	AttendanceRate float64    `json:"attendance_rate"`
	LastCheckInAt  *time.Time `json:"last_check_in_at,omitempty"`
}

type EventResponse struct {
	ID          uuid.UUID            `json:"id"`
	Title       string               `json:"title"`
	Location    string               `json:"location"`
	StartsAt    time.Time            `json:"starts_at"`
	EndsAt      time.Time            `json:"ends_at"`
	TicketTypes []TicketTypeResponse `json:"ticket_types"`
}

type TicketTypeResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	PriceCents  int64     `json:"price_cents"`
	MaxQuantity int32     `json:"max_quantity"`
	SoldCount   int32     `json:"sold_count"`
}

type DashboardResponse struct {
	InProgressEvents int       `json:"in_progress_events"`
	GeneratedAt      time.Time `json:"generated_at"`
}

func FromEventReportView(view *queries.EventReportView) *EventReportResponse {
	resp := &EventReportResponse{}
	_ = copier.Copy(resp, view)
	return resp
}

func FromEventView(view *queries.EventView) *EventResponse {
	resp := &EventResponse{}
	_ = copier.Copy(resp, view)
	return resp
}

func FromDashboardView(view *queries.DashboardView) *DashboardResponse {
	resp := &DashboardResponse{}
	_ = copier.Copy(resp, view)
	return resp
}
