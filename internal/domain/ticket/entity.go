package ticket

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus      = errors.New("invalid ticket status")
	ErrEmptyCode          = errors.New("validation code is empty")
	ErrCodeTooLong        = errors.New("validation code too long")
	ErrNotActive          = errors.New("ticket is not active")
	ErrAlreadyCheckedIn   = errors.New("ticket already checked in")
	ErrWrongEvent         = errors.New("ticket belongs to a different event")
	ErrMissingCheckInTime = errors.New("used ticket missing check-in time")
)

// AttendeeTicket is one admissible seat. It is created by the external
// checkout flow together with its purchase and is immutable here except for
// status, which the check-in authority consumes exactly once via an atomic
// conditional update. The entity therefore never mutates itself; it only
// answers lifecycle questions for a snapshot read from the store.
type AttendeeTicket struct {
	id            uuid.UUID
	purchaseID    *uuid.UUID
	eventID       uuid.UUID
	ticketTypeID  uuid.UUID
	attendeeName  string
	attendeeEmail string
	code          Code
	status        Status
	checkedInAt   *time.Time
	checkedInBy   *uuid.UUID
	createdAt     time.Time
}

func Reconstruct(
	id uuid.UUID,
	purchaseID *uuid.UUID,
	eventID, ticketTypeID uuid.UUID,
	attendeeName, attendeeEmail string,
	code Code,
	status Status,
	checkedInAt *time.Time,
	checkedInBy *uuid.UUID,
	createdAt time.Time,
) (*AttendeeTicket, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if status == StatusUsed && checkedInAt == nil {
		return nil, ErrMissingCheckInTime
	}
	return &AttendeeTicket{
		id:            id,
		purchaseID:    purchaseID,
		eventID:       eventID,
		ticketTypeID:  ticketTypeID,
		attendeeName:  attendeeName,
		attendeeEmail: attendeeEmail,
		code:          code,
		status:        status,
		checkedInAt:   checkedInAt,
		checkedInBy:   checkedInBy,
		createdAt:     createdAt,
	}, nil
}

// Admissible reports whether a check-in attempt scoped to eventID may
// proceed to the atomic consume step. It never mutates; the returned error
// is the non-admission reason.
func (t *AttendeeTicket) Admissible(eventID uuid.UUID) error {
	if t.eventID != eventID {
		return ErrWrongEvent
	}
	switch t.status {
	case StatusActive:
		return nil
	case StatusUsed:
		return ErrAlreadyCheckedIn
	default:
		return ErrNotActive
	}
}

func (t *AttendeeTicket) IsActive() bool {
	return t.status == StatusActive
}

// HasPurchase is false only for legacy seats issued before purchase
// grouping; revenue attribution for those falls back to per-seat pricing.
func (t *AttendeeTicket) HasPurchase() bool {
	return t.purchaseID != nil
}

func (t *AttendeeTicket) ID() uuid.UUID           { return t.id }
func (t *AttendeeTicket) PurchaseID() *uuid.UUID  { return t.purchaseID }
func (t *AttendeeTicket) EventID() uuid.UUID      { return t.eventID }
func (t *AttendeeTicket) TicketTypeID() uuid.UUID { return t.ticketTypeID }
func (t *AttendeeTicket) AttendeeName() string    { return t.attendeeName }
func (t *AttendeeTicket) AttendeeEmail() string   { return t.attendeeEmail }
func (t *AttendeeTicket) Code() Code              { return t.code }
func (t *AttendeeTicket) Status() Status          { return t.status }
func (t *AttendeeTicket) CheckedInAt() *time.Time { return t.checkedInAt }
func (t *AttendeeTicket) CheckedInBy() *uuid.UUID { return t.checkedInBy }
func (t *AttendeeTicket) CreatedAt() time.Time    { return t.createdAt }
