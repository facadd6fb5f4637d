package response

import (
	"time"

	"ticketgate/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type CheckInResponse struct {
	Valid  bool                    `json:"valid"`
	Reason string                  `json:"reason"`
	Ticket *TicketSnapshotResponse `json:"ticket,omitempty"`
}

type TicketSnapshotResponse struct {
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

func FromValidationView(view *queries.ValidationView) *CheckInResponse {
	resp := &CheckInResponse{}
	_ = copier.Copy(resp, view)
	return resp
}
