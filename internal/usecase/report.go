package usecase

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"ticketgate/internal/domain/ticket"
	"ticketgate/internal/infra"
	"ticketgate/internal/pkg/clock"
	"ticketgate/internal/pkg/errs"
	"ticketgate/internal/usecase/queries"

	"github.com/google/uuid"
)

var ErrEventNotFound = errs.New("event not found")

type ReportRepository interface {
	TicketRecordsByEvent(ctx context.Context, eventID uuid.UUID) ([]queries.TicketRecordView, error)
}

type EventRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*queries.EventView, error)
	CountInProgress(ctx context.Context, now time.Time) (int, error)
}

// ReportCache is a read-side snapshot store. A miss or a cache failure is
// never fatal; the report is recomputed from the record store.
type ReportCache interface {
	Get(ctx context.Context, eventID uuid.UUID) (*queries.EventReportView, bool, error)
	Set(ctx context.Context, report *queries.EventReportView) error
}

type ReportUseCase interface {
	EventReport(ctx context.Context, eventID uuid.UUID) (*queries.EventReportView, error)
	GetEvent(ctx context.Context, id uuid.UUID) (*queries.EventView, error)
	Dashboard(ctx context.Context) (*queries.DashboardView, error)
}

type reportUseCaseImpl struct {
	reportRepo ReportRepository
	eventRepo  EventRepository
	cache      ReportCache
	clock      clock.Clock
}

func NewReportUseCase(reportRepo ReportRepository, eventRepo EventRepository, cache ReportCache, clk clock.Clock) ReportUseCase {
	return &reportUseCaseImpl{
		reportRepo: reportRepo,
		eventRepo:  eventRepo,
		cache:      cache,
		clock:      clk,
	}
}

// EventReport recomputes revenue and attendance from a snapshot of the
// record set. Any "live" dashboard behavior is on-demand recomputation
// behind a short-lived cache, not shared mutable state.
func (u *reportUseCaseImpl) EventReport(ctx context.Context, eventID uuid.UUID) (*queries.EventReportView, error) {
	if cached, hit, err := u.cache.Get(ctx, eventID); err != nil {
		slog.Warn("report cache read failed", "event_id", eventID, "error", err.Error())
	} else if hit {
		return cached, nil
	}

	if _, err := u.eventRepo.FindByID(ctx, eventID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	records, err := u.reportRepo.TicketRecordsByEvent(ctx, eventID)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	revenue := AggregateRevenue(records)
	report := &queries.EventReportView{
		EventID:           eventID,
		GeneratedAt:       u.clock.Now(),
		Revenue:           revenue,
		TotalRevenueCents: totalRevenue(revenue),
		Attendance:        CalculateAttendance(records),
	}

	if err := u.cache.Set(ctx, report); err != nil {
		slog.Warn("report cache write failed", "event_id", eventID, "error", err.Error())
	}

	return report, nil
}

func (u *reportUseCaseImpl) GetEvent(ctx context.Context, id uuid.UUID) (*queries.EventView, error) {
	view, err := u.eventRepo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return view, nil
}

func (u *reportUseCaseImpl) Dashboard(ctx context.Context) (*queries.DashboardView, error) {
	count, err := u.eventRepo.CountInProgress(ctx, u.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return &queries.DashboardView{
		InProgressEvents: count,
		GeneratedAt:      u.clock.Now(),
	}, nil
}

// AggregateRevenue attributes recognized revenue to ticket types without
// double-counting multi-seat purchases. The purchase, not the seat, is the
// unit of financial truth: each distinct purchase contributes its total
// exactly once, because discounts apply to the purchase total and
// price x seats would overstate discounted group purchases. Seats without a
// purchase reference predate purchase grouping and fall back to their own
// list price, reported separately as legacy revenue.
func AggregateRevenue(records []queries.TicketRecordView) []queries.RevenueLine {
	lines := make(map[uuid.UUID]*queries.RevenueLine)
	seenPurchases := make(map[uuid.UUID]bool)

	lineFor := func(r queries.TicketRecordView) *queries.RevenueLine {
		line, ok := lines[r.TicketTypeID]
		if !ok {
			line = &queries.RevenueLine{
				TicketTypeID:   r.TicketTypeID,
				TicketTypeName: r.TicketTypeName,
			}
			lines[r.TicketTypeID] = line
		}
		return line
	}

	for _, r := range records {
		line := lineFor(r)
		line.SeatCount++

		if r.PurchaseID == nil {
			line.LegacySeatCount++
			line.LegacyRevenueCents += r.TypePriceCents
			line.RevenueCents += r.TypePriceCents
			continue
		}

		if seenPurchases[*r.PurchaseID] {
			continue
		}
		seenPurchases[*r.PurchaseID] = true
		line.PurchaseCount++
		line.RevenueCents += r.PurchaseTotalCents
	}

	result := make([]queries.RevenueLine, 0, len(lines))
	for _, line := range lines {
		result = append(result, *line)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].TicketTypeName < result[j].TicketTypeName
	})

	return result
}

func totalRevenue(lines []queries.RevenueLine) int64 {
	var total int64
	for _, line := range lines {
		total += line.RevenueCents
	}
	return total
}

// CalculateAttendance is a pure reduction over the same record set the
// revenue aggregation reads: totals, rate, and the most recent check-in
// taken as the maximum timestamp.
func CalculateAttendance(records []queries.TicketRecordView) queries.AttendanceMetricsView {
	metrics := queries.AttendanceMetricsView{
		TotalAttendees: len(records),
	}

	for _, r := range records {
		switch ticket.Status(r.Status) {
		case ticket.StatusUsed:
			metrics.CheckedIn++
		case ticket.StatusActive:
			metrics.Pending++
		}

		if r.CheckedInAt != nil {
			if metrics.LastCheckInAt == nil || r.CheckedInAt.After(*metrics.LastCheckInAt) {
				t := *r.CheckedInAt
				metrics.LastCheckInAt = &t
			}
		}
	}

	if metrics.TotalAttendees > 0 {
		metrics.AttendanceRate = float64(metrics.CheckedIn) / float64(metrics.TotalAttendees)
	}

	return metrics
}
