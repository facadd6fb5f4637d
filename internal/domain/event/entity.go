package event

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyTitle       = errors.New("event title is empty")
	ErrInvalidSchedule  = errors.New("event ends before it starts")
	ErrNegativePrice    = errors.New("ticket type price cannot be negative")
	ErrInvalidQuantity  = errors.New("ticket type maximum quantity must be positive")
	ErrSoldOverCapacity = errors.New("sold count exceeds maximum quantity")
)

// Event is read-only to this core: the management UI creates and edits it
// through the external record store.
type Event struct {
	id       uuid.UUID
	title    string
	location string
	startsAt time.Time
	endsAt   time.Time
}

func NewEvent(id uuid.UUID, title, location string, startsAt, endsAt time.Time) (*Event, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if endsAt.Before(startsAt) {
		return nil, ErrInvalidSchedule
	}
	return &Event{
		id:       id,
		title:    title,
		location: location,
		startsAt: startsAt,
		endsAt:   endsAt,
	}, nil
}

// InProgress reports whether the event is currently running.
func (e *Event) InProgress(now time.Time) bool {
	return !now.Before(e.startsAt) && !now.After(e.endsAt)
}

func (e *Event) ID() uuid.UUID       { return e.id }
func (e *Event) Title() string       { return e.title }
func (e *Event) Location() string    { return e.location }
func (e *Event) StartsAt() time.Time { return e.startsAt }
func (e *Event) EndsAt() time.Time   { return e.endsAt }

// TicketType carries the per-seat list price used both for display and for
// the legacy per-seat revenue fallback. Identity is immutable once sold
// tickets reference it.
type TicketType struct {
	id          uuid.UUID
	eventID     uuid.UUID
	name        string
	priceCents  int64
	maxQuantity int32
	soldCount   int32
}

func NewTicketType(id, eventID uuid.UUID, name string, priceCents int64, maxQuantity, soldCount int32) (*TicketType, error) {
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}
	if maxQuantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if soldCount > maxQuantity {
		return nil, ErrSoldOverCapacity
	}
	return &TicketType{
		id:          id,
		eventID:     eventID,
		name:        name,
		priceCents:  priceCents,
		maxQuantity: maxQuantity,
		soldCount:   soldCount,
	}, nil
}

func (tt *TicketType) Remaining() int32 {
	return tt.maxQuantity - tt.soldCount
}

func (tt *TicketType) ID() uuid.UUID      { return tt.id }
func (tt *TicketType) EventID() uuid.UUID { return tt.eventID }
func (tt *TicketType) Name() string       { return tt.name }
func (tt *TicketType) PriceCents() int64  { return tt.priceCents }
func (tt *TicketType) MaxQuantity() int32 { return tt.maxQuantity }
func (tt *TicketType) SoldCount() int32   { return tt.soldCount }
