package usecase

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"ticketgate/internal/domain/ticket"
	"ticketgate/internal/infra"
	"ticketgate/internal/pkg/clock"
	"ticketgate/internal/pkg/errs"
	"ticketgate/internal/usecase/queries"

	"github.com/google/uuid"
)

var (
	ErrInvalidCode             = errs.New("invalid validation code")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// Validation outcome reasons as they appear on the wire. Business outcomes
// are results, never Go errors: they all travel back to the operator as a
// rendered screen.
const (
	ReasonOK             = "ok"
	ReasonTicketNotFound = "ticket_not_found"
	ReasonWrongEvent     = "wrong_event"
	ReasonAlreadyUsed    = "already_used"
	ReasonCancelled      = "cancelled"
	ReasonExpired        = "expired"
)

type CheckInRepository interface {
	// FindByCode returns the reconstructed ticket with its joined display
	// snapshot, or KindNotFound.
	FindByCode(ctx context.Context, code string) (*ticket.AttendeeTicket, *queries.CheckInRecordView, error)
	// Consume performs the single conditional transition active -> used.
	// It reports whether THIS call won the transition; zero rows affected
	// means a concurrent scanner got there first.
	Consume(ctx context.Context, code string, staffID uuid.UUID, at time.Time) (bool, error)
}

type CheckInUseCase interface {
	CheckIn(ctx context.Context, eventID uuid.UUID, code string, staffID uuid.UUID) (*queries.ValidationView, error)
}

type checkInUseCaseImpl struct {
	ticketRepo CheckInRepository
	clock      clock.Clock
}

func NewCheckInUseCase(ticketRepo CheckInRepository, clk clock.Clock) CheckInUseCase {
	return &checkInUseCaseImpl{
		ticketRepo: ticketRepo,
		clock:      clk,
	}
}

// CheckIn validates a code against the event the scanning session is scoped
// to and, when admissible, consumes the ticket. Linearizability rests
// entirely on the repository's conditional update. There is deliberately no
// read-then-write of status here and no client-side locking, because
// independent scanner devices must still exclude each other.
func (u *checkInUseCaseImpl) CheckIn(
	ctx context.Context,
	eventID uuid.UUID,
	rawCode string,
	staffID uuid.UUID,
) (*queries.ValidationView, error) {
	code, err := ticket.NewCode(rawCode)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidCode)
	}

	tk, record, err := u.ticketRepo.FindByCode(ctx, code.String())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &queries.ValidationView{Valid: false, Reason: ReasonTicketNotFound}, nil
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if admitErr := tk.Admissible(eventID); admitErr != nil {
		if errors.Is(admitErr, ticket.ErrWrongEvent) {
			// A code valid for event A must never validate against event B's
			// session, and must not be mutated by the attempt.
			return rejection(ReasonWrongEvent, record), nil
		}
		return rejection(statusReason(tk.Status()), record), nil
	}

	return u.consume(ctx, record, staffID)
}

// statusReason maps a terminal status to its wire reason.
func statusReason(status ticket.Status) string {
	switch status {
	case ticket.StatusUsed:
		return ReasonAlreadyUsed
	case ticket.StatusCancelled:
		return ReasonCancelled
	default:
		return ReasonExpired
	}
}

func (u *checkInUseCaseImpl) consume(
	ctx context.Context,
	record *queries.CheckInRecordView,
	staffID uuid.UUID,
) (*queries.ValidationView, error) {
	now := u.clock.Now()

	won, err := u.ticketRepo.Consume(ctx, record.Code, staffID, now)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if !won {
		// Lost the race: another scanner consumed the ticket between our
		// lookup and the update. Re-read so the operator sees the winner's
		// check-in time, not an error.
		return u.afterLostRace(ctx, record.Code)
	}

	snapshot := snapshotFromRecord(record)
	snapshot.CheckedInAt = &now

	return &queries.ValidationView{
		Valid:  true,
		Reason: ReasonOK,
		Ticket: snapshot,
	}, nil
}

func (u *checkInUseCaseImpl) afterLostRace(ctx context.Context, code string) (*queries.ValidationView, error) {
	tk, record, err := u.ticketRepo.FindByCode(ctx, code)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return &queries.ValidationView{Valid: false, Reason: ReasonTicketNotFound}, nil
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	if tk.IsActive() {
		slog.Warn("conditional consume affected no rows but ticket is still active", "code", code)
		return nil, errs.New("inconsistent state for ticket code after lost race")
	}

	return rejection(statusReason(tk.Status()), record), nil
}

// rejection carries the ticket context along with the refusal so staff can
// make a manual judgment call.
func rejection(reason string, record *queries.CheckInRecordView) *queries.ValidationView {
	return &queries.ValidationView{
		Valid:  false,
		Reason: reason,
		Ticket: snapshotFromRecord(record),
	}
}

func snapshotFromRecord(record *queries.CheckInRecordView) *queries.TicketSnapshotView {
	return &queries.TicketSnapshotView{
		AttendeeName:   record.AttendeeName,
		AttendeeEmail:  record.AttendeeEmail,
		EventTitle:     record.EventTitle,
		EventDate:      record.EventDate,
		EventLocation:  record.EventLocation,
		TicketTypeName: record.TicketTypeName,
		PricePaidCents: record.PricePaidCents,
		PurchaseDate:   record.PurchaseDate,
		CheckedInAt:    record.CheckedInAt,
	}
}
