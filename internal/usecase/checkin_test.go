//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"ticketgate/internal/domain/ticket"
	"ticketgate/internal/infra"
	"ticketgate/internal/pkg/clock"
	"ticketgate/internal/usecase"
	"ticketgate/internal/usecase/queries"
	usecasemock "ticketgate/tests/mock/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckInUseCaseTestSuite struct {
	suite.Suite
	mockCtrl *gomock.Controller
	repo     *usecasemock.MockCheckInRepository
	clock    *clock.MockClock
	uc       usecase.CheckInUseCase

	eventID uuid.UUID
	staffID uuid.UUID
	now     time.Time
}

func (s *CheckInUseCaseTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.repo = usecasemock.NewMockCheckInRepository(s.mockCtrl)
	s.now = time.Date(2026, 6, 15, 19, 30, 0, 0, time.UTC)
	s.clock = clock.NewMockClock(s.now)
	s.uc = usecase.NewCheckInUseCase(s.repo, s.clock)

	s.eventID = uuid.New()
	s.staffID = uuid.New()
}

func (s *CheckInUseCaseTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckInUseCaseSuite(t *testing.T) {
	suite.Run(t, new(CheckInUseCaseTestSuite))
}

func (s *CheckInUseCaseTestSuite) record(status string) *queries.CheckInRecordView {
	return &queries.CheckInRecordView{
		TicketID:       uuid.New(),
		EventID:        s.eventID,
		Code:           "TKT-001",
		Status:         status,
		AttendeeName:   "Ada Lovelace",
		AttendeeEmail:  "ada@example.com",
		EventTitle:     "Summer Concert",
		EventDate:      s.now.Add(-time.Hour),
		EventLocation:  "Main Hall",
		TicketTypeName: "General",
		PricePaidCents: 4500,
	}
}

// entity reconstructs the domain ticket the repository would hand back
// alongside the display record.
func (s *CheckInUseCaseTestSuite) entity(record *queries.CheckInRecordView) *ticket.AttendeeTicket {
	code, err := ticket.NewCode(record.Code)
	s.Require().NoError(err)
	status, err := ticket.NewStatus(record.Status)
	s.Require().NoError(err)
	tk, err := ticket.Reconstruct(
		record.TicketID, record.PurchaseID, record.EventID, uuid.New(),
		record.AttendeeName, record.AttendeeEmail,
		code, status, record.CheckedInAt, nil, s.now.Add(-24*time.Hour),
	)
	s.Require().NoError(err)
	return tk
}

func (s *CheckInUseCaseTestSuite) TestActiveTicketIsConsumed() {
	record := s.record("active")
	s.repo.EXPECT().FindByCode(gomock.Any(), "TKT-001").Return(s.entity(record), record, nil)
	s.repo.EXPECT().Consume(gomock.Any(), "TKT-001", s.staffID, s.now).Return(true, nil)

	view, err := s.uc.CheckIn(context.Background(), s.eventID, "TKT-001", s.staffID)

	s.Require().NoError(err)
	s.True(view.Valid)
	s.Equal(usecase.ReasonOK, view.Reason)
	s.Require().NotNil(view.Ticket)
	s.Equal("Ada Lovelace", view.Ticket.AttendeeName)
	s.Require().NotNil(view.Ticket.CheckedInAt)
	s.Equal(s.now, *view.Ticket.CheckedInAt)
}

func (s *CheckInUseCaseTestSuite) TestCodeIsTrimmedBeforeLookup() {
	record := s.record("active")
	s.repo.EXPECT().FindByCode(gomock.Any(), "TKT-001").Return(s.entity(record), record, nil)
	s.repo.EXPECT().Consume(gomock.Any(), "TKT-001", s.staffID, s.now).Return(true, nil)

	view, err := s.uc.CheckIn(context.Background(), s.eventID, "  TKT-001\n", s.staffID)

	s.Require().NoError(err)
	s.True(view.Valid)
}

func (s *CheckInUseCaseTestSuite) TestEmptyCodeRejected() {
	view, err := s.uc.CheckIn(context.Background(), s.eventID, "   ", s.staffID)

	s.Require().Error(err)
	s.ErrorIs(err, usecase.ErrInvalidCode)
	s.Nil(view)
}

func (s *CheckInUseCaseTestSuite) TestUnknownCodeIsResultNotError() {
	notFound := infra.WrapRepoErr("ticket not found by code", errors.New("no rows"), infra.KindNotFound)
	s.repo.EXPECT().FindByCode(gomock.Any(), "NOPE").Return(nil, nil, notFound)

	view, err := s.uc.CheckIn(context.Background(), s.eventID, "NOPE", s.staffID)

	s.Require().NoError(err)
	s.False(view.Valid)
	s.Equal(usecase.ReasonTicketNotFound, view.Reason)
	s.Nil(view.Ticket)
}

func (s *CheckInUseCaseTestSuite) TestWrongEventNeverMutates() {
	record := s.record("active")
	record.EventID = uuid.New()
	s.repo.EXPECT().FindByCode(gomock.Any(), "TKT-001").Return(s.entity(record), record, nil)
	// No Consume expectation: the attempt must not touch the ticket.

	view, err := s.uc.CheckIn(context.Background(), s.eventID, "TKT-001", s.staffID)

	s.Require().NoError(err)
	s.False(view.Valid)
	s.Equal(usecase.ReasonWrongEvent, view.Reason)
	s.Require().NotNil(view.Ticket)
}

func (s *CheckInUseCaseTestSuite) TestWrongEventWinsOverUsedStatus() {
	at := s.now.Add(-10 * time.Minute)
	record := s.record("used")
	record.EventID = uuid.New()
	record.CheckedInAt = &at
	s.repo.EXPECT().FindByCode(gomock.Any(), "TKT-001").Return(s.entity(record), record, nil)

	view, err := s.uc.CheckIn(context.Background(), s.eventID, "TKT-001", s.staffID)

	s.Require().NoError(err)
	s.False(view.Valid)
	s.Equal(usecase.ReasonWrongEvent, view.Reason)
}

func (s *CheckInUseCaseTestSuite) TestTerminalStatusesRejectWithoutConsume() {
	cases := []struct {
		status string
		reason string
	}{
		{"used", usecase.ReasonAlreadyUsed},
		{"cancelled", usecase.ReasonCancelled},
		{"expired", usecase.ReasonExpired},
	}

	for _, tc := range cases {
		s.Run(tc.status, func() {
			record := s.record(tc.status)
			if tc.status == "used" {
				at := s.now.Add(-10 * time.Minute)
				record.CheckedInAt = &at
			}
			s.repo.EXPECT().FindByCode(gomock.Any(), "TKT-001").Return(s.entity(record), record, nil)

			view, err := s.uc.CheckIn(context.Background(), s.eventID, "TKT-001", s.staffID)

			s.Require().NoError(err)
			s.False(view.Valid)
			s.Equal(tc.reason, view.Reason)
			s.Require().NotNil(view.Ticket)
		})
	}
}

func (s *CheckInUseCaseTestSuite) TestAlreadyUsedKeepsOriginalCheckInTime() {
	firstCheckIn := s.now.Add(-30 * time.Minute)
	record := s.record("used")
	record.CheckedInAt = &firstCheckIn
	s.repo.EXPECT().FindByCode(gomock.Any(), "TKT-001").Return(s.entity(record), record, nil)

	view, err := s.uc.CheckIn(context.Background(), s.eventID, "TKT-001", s.staffID)

	s.Require().NoError(err)
	s.Equal(usecase.ReasonAlreadyUsed, view.Reason)
	s.Require().NotNil(view.Ticket.CheckedInAt)
	s.Equal(firstCheckIn, *view.Ticket.CheckedInAt)
}

func (s *CheckInUseCaseTestSuite) TestLostRaceReportsAlreadyUsed() {
	record := s.record("active")
	s.repo.EXPECT().FindByCode(gomock.Any(), "TKT-001").Return(s.entity(record), record, nil)
	s.repo.EXPECT().Consume(gomock.Any(), "TKT-001", s.staffID, s.now).Return(false, nil)

	winnerTime := s.now.Add(-time.Second)
	afterRace := s.record("used")
	afterRace.CheckedInAt = &winnerTime
	s.repo.EXPECT().FindByCode(gomock.Any(), "TKT-001").Return(s.entity(afterRace), afterRace, nil)

	view, err := s.uc.CheckIn(context.Background(), s.eventID, "TKT-001", s.staffID)

	s.Require().NoError(err)
	s.False(view.Valid)
	s.Equal(usecase.ReasonAlreadyUsed, view.Reason)
	s.Require().NotNil(view.Ticket.CheckedInAt)
	s.Equal(winnerTime, *view.Ticket.CheckedInAt)
}

func (s *CheckInUseCaseTestSuite) TestRepositoryFailureEscalates() {
	s.repo.EXPECT().FindByCode(gomock.Any(), "TKT-001").
		Return(nil, nil, infra.WrapRepoErr("query failed", errors.New("connection reset"), infra.KindDBFailure))

	view, err := s.uc.CheckIn(context.Background(), s.eventID, "TKT-001", s.staffID)

	s.Require().Error(err)
	s.ErrorIs(err, usecase.ErrDatabaseOperationFailed)
	s.Nil(view)
}

func (s *CheckInUseCaseTestSuite) TestConsumeFailureEscalates() {
	record := s.record("active")
	s.repo.EXPECT().FindByCode(gomock.Any(), "TKT-001").Return(s.entity(record), record, nil)
	s.repo.EXPECT().Consume(gomock.Any(), "TKT-001", s.staffID, s.now).
		Return(false, infra.WrapRepoErr("exec failed", errors.New("connection reset"), infra.KindDBFailure))

	view, err := s.uc.CheckIn(context.Background(), s.eventID, "TKT-001", s.staffID)

	s.Require().Error(err)
	s.ErrorIs(err, usecase.ErrDatabaseOperationFailed)
	s.Nil(view)
}
