//go:build e2e

package report_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"ticketgate/internal/domain/staff"
	"ticketgate/internal/handler/dto/response"
	"ticketgate/tests/common/authtest"
	"ticketgate/tests/common/dbtest"
	commonhttp "ticketgate/tests/common/httptest"
	"ticketgate/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type reportSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper
}

func TestReportSuite(t *testing.T) {
	suite.Run(t, new(reportSuite))
}

func (s *reportSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

type reportResponse struct {
	EventID           uuid.UUID                      `json:"event_id"`
	GeneratedAt       time.Time                      `json:"generated_at"`
	Revenue           []response.RevenueLineResponse `json:"revenue"`
	TotalRevenueCents int64                          `json:"total_revenue_cents"`
	Attendance        struct {
		TotalAttendees int        `json:"total_attendees"`
		CheckedIn      int        `json:"checked_in"`
		Pending        int        `json:"pending"`
		AttendanceRate float64    `json:"attendance_rate"`
		LastCheckInAt  *time.Time `json:"last_check_in_at"`
	} `json:"attendance"`
}

func (s *reportSuite) organizerToken() string {
	return s.jwt.GenerateToken(s.T(), uuid.New(), staff.RoleOrganizer)
}

func (s *reportSuite) TestEventReport() {
	eventID := dbtest.CreateTestEvent(s.T(), s.DB, "Summer Concert")
	vipType := dbtest.CreateTicketType(s.T(), s.DB, eventID, "VIP", 50000, 50)
	generalType := dbtest.CreateTicketType(s.T(), s.DB, eventID, "General", 4500, 500)

	// One discounted group purchase: four VIP seats for 180000 total.
	groupPurchase := dbtest.CreateTestPurchase(s.T(), s.DB, eventID, 4, 180000)
	for range 4 {
		dbtest.CreateAttendeeTicket(s.T(), s.DB, eventID, vipType, groupPurchase, "VIP-"+uuid.NewString(), "VIP Guest")
	}

	// Two independent single-seat purchases at list price.
	for range 2 {
		p := dbtest.CreateTestPurchase(s.T(), s.DB, eventID, 1, 4500)
		dbtest.CreateAttendeeTicket(s.T(), s.DB, eventID, generalType, p, "GEN-"+uuid.NewString(), "General Guest")
	}

	// One legacy seat with no purchase record.
	dbtest.CreateLegacyTicket(s.T(), s.DB, eventID, generalType, "LEG-"+uuid.NewString(), "Legacy Guest")

	w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet,
		"/api/events/"+eventID.String()+"/report", nil, s.organizerToken())

	var resp reportResponse
	commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)

	s.Equal(eventID, resp.EventID)

	// Sorted by type name. The VIP group purchase must count once, not per
	// seat, and the legacy seat is attributed separately at list price.
	expected := []response.RevenueLineResponse{
		{
			TicketTypeName:     "General",
			RevenueCents:       13500,
			PurchaseCount:      2,
			SeatCount:          3,
			LegacySeatCount:    1,
			LegacyRevenueCents: 4500,
		},
		{
			TicketTypeName: "VIP",
			RevenueCents:   180000,
			PurchaseCount:  1,
			SeatCount:      4,
		},
	}

	opts := []cmp.Option{
		cmpopts.IgnoreFields(response.RevenueLineResponse{}, "TicketTypeID"),
	}
	if diff := cmp.Diff(expected, resp.Revenue, opts...); diff != "" {
		s.T().Errorf("Revenue lines mismatch (-want +got):\n%s", diff)
	}

	s.Equal(int64(180000+9000+4500), resp.TotalRevenueCents)
	s.Equal(7, resp.Attendance.TotalAttendees)
	s.Equal(0, resp.Attendance.CheckedIn)
	s.Equal(7, resp.Attendance.Pending)
	s.Zero(resp.Attendance.AttendanceRate)
	s.Nil(resp.Attendance.LastCheckInAt)
}

func (s *reportSuite) TestAttendanceAfterCheckIns() {
	eventID := dbtest.CreateTestEvent(s.T(), s.DB, "Evening Show")
	typeID := dbtest.CreateTicketType(s.T(), s.DB, eventID, "General", 4500, 100)
	scanToken := s.jwt.GenerateToken(s.T(), uuid.New(), staff.RoleScanner)

	codes := make([]string, 4)
	for i := range codes {
		p := dbtest.CreateTestPurchase(s.T(), s.DB, eventID, 1, 4500)
		codes[i] = "TKT-" + uuid.NewString()
		dbtest.CreateAttendeeTicket(s.T(), s.DB, eventID, typeID, p, codes[i], "Guest")
	}

	for _, code := range codes[:3] {
		w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost,
			"/api/events/"+eventID.String()+"/checkin", map[string]string{"code": code}, scanToken)
		s.Require().Equal(http.StatusOK, w.Code)
	}

	w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet,
		"/api/events/"+eventID.String()+"/report", nil, s.organizerToken())

	var resp reportResponse
	commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)

	s.Equal(4, resp.Attendance.TotalAttendees)
	s.Equal(3, resp.Attendance.CheckedIn)
	s.Equal(1, resp.Attendance.Pending)
	s.InDelta(0.75, resp.Attendance.AttendanceRate, 1e-9)
	s.NotNil(resp.Attendance.LastCheckInAt)

	// Check-ins never change recognized revenue.
	s.Equal(int64(4*4500), resp.TotalRevenueCents)
}

func (s *reportSuite) TestReportIsCachedBriefly() {
	eventID := dbtest.CreateTestEvent(s.T(), s.DB, "Cached Event")
	token := s.organizerToken()

	first := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet,
		"/api/events/"+eventID.String()+"/report", nil, token)
	var firstResp reportResponse
	commonhttp.AssertSuccessResponse(s.T(), first, http.StatusOK, &firstResp)

	second := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet,
		"/api/events/"+eventID.String()+"/report", nil, token)
	var secondResp reportResponse
	commonhttp.AssertSuccessResponse(s.T(), second, http.StatusOK, &secondResp)

	// Same GeneratedAt proves the second response came from the cache.
	s.Equal(firstResp.GeneratedAt, secondResp.GeneratedAt)
}

func (s *reportSuite) TestReportUnknownEvent() {
	w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet,
		"/api/events/"+uuid.NewString()+"/report", nil, s.organizerToken())
	commonhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "")
}

func (s *reportSuite) TestReportRequiresOrganizerRole() {
	eventID := dbtest.CreateTestEvent(s.T(), s.DB, "Restricted Event")
	scannerToken := s.jwt.GenerateToken(s.T(), uuid.New(), staff.RoleScanner)

	w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet,
		"/api/events/"+eventID.String()+"/report", nil, scannerToken)
	commonhttp.AssertErrorResponse(s.T(), w, http.StatusForbidden, "")
}

func (s *reportSuite) TestGetEvent() {
	eventID := dbtest.CreateTestEvent(s.T(), s.DB, "Detailed Event")
	dbtest.CreateTicketType(s.T(), s.DB, eventID, "General", 4500, 100)
	scannerToken := s.jwt.GenerateToken(s.T(), uuid.New(), staff.RoleScanner)

	w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet,
		"/api/events/"+eventID.String(), nil, scannerToken)

	var resp struct {
		ID          uuid.UUID `json:"id"`
		Title       string    `json:"title"`
		TicketTypes []struct {
			Name       string `json:"name"`
			PriceCents int64  `json:"price_cents"`
		} `json:"ticket_types"`
	}
	commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Equal("Detailed Event", resp.Title)
	s.Require().Len(resp.TicketTypes, 1)
	s.Equal("General", resp.TicketTypes[0].Name)
}

func (s *reportSuite) TestOversoldTicketTypeRejected() {
	eventID := dbtest.CreateTestEvent(s.T(), s.DB, "Capacity Event")

	// sold_count above max_quantity must be refused by the store itself, not
	// merely detected later when the row is read back.
	_, err := s.DB.Exec(context.Background(),
		"INSERT INTO ticket_types (id, event_id, name, price_cents, max_quantity, sold_count) VALUES ($1, $2, $3, $4, $5, $6)",
		uuid.New(), eventID, "Oversold", int64(4500), int32(10), int32(50))
	s.Require().Error(err)
	s.Contains(err.Error(), "ticket_types_sold_within_capacity")
}

func (s *reportSuite) TestDashboard() {
	dbtest.CreateTestEvent(s.T(), s.DB, "Live Event")

	w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet,
		"/api/dashboard", nil, s.organizerToken())

	var resp struct {
		InProgressEvents int `json:"in_progress_events"`
	}
	commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.GreaterOrEqual(resp.InProgressEvents, 1)
}
