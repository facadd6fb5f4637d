//go:build unit

package api_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ticketgate/internal/domain/staff"
	"ticketgate/internal/handler/api"
	"ticketgate/internal/usecase"
	"ticketgate/internal/usecase/queries"
	usecasemock "ticketgate/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckInHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockUseCase *usecasemock.MockCheckInUseCase
	handler     *api.CheckInHandler

	staffID uuid.UUID
}

func (s *CheckInHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockUseCase = usecasemock.NewMockCheckInUseCase(s.mockCtrl)
	s.handler = api.NewCheckInHandler(s.mockUseCase)
	s.staffID = uuid.New()

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("staff_id", s.staffID)
		c.Set("staff_role", staff.RoleScanner)
		c.Next()
	}

	s.router.POST("/api/events/:id/checkin", authMiddleware, s.handler.CheckIn)
}

func (s *CheckInHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckInHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckInHandlerTestSuite))
}

func (s *CheckInHandlerTestSuite) postCheckIn(eventID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/events/"+eventID+"/checkin", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer token")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *CheckInHandlerTestSuite) TestValidCheckIn() {
	eventID := uuid.New()
	checkedInAt := time.Date(2026, 6, 15, 19, 30, 0, 0, time.UTC)
	s.mockUseCase.EXPECT().
		CheckIn(gomock.Any(), eventID, "TKT-001", s.staffID).
		Return(&queries.ValidationView{
			Valid:  true,
			Reason: usecase.ReasonOK,
			Ticket: &queries.TicketSnapshotView{
				AttendeeName: "Ada Lovelace",
				CheckedInAt:  &checkedInAt,
			},
		}, nil)

	w := s.postCheckIn(eventID.String(), `{"code":"TKT-001"}`)

	s.Equal(http.StatusOK, w.Code)

	var resp struct {
		Valid  bool   `json:"valid"`
		Reason string `json:"reason"`
		Ticket struct {
			AttendeeName string `json:"attendee_name"`
		} `json:"ticket"`
	}
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	s.True(resp.Valid)
	s.Equal("ok", resp.Reason)
	s.Equal("Ada Lovelace", resp.Ticket.AttendeeName)
}

func (s *CheckInHandlerTestSuite) TestBusinessRejectionIsStillOK() {
	eventID := uuid.New()
	s.mockUseCase.EXPECT().
		CheckIn(gomock.Any(), eventID, "TKT-001", s.staffID).
		Return(&queries.ValidationView{Valid: false, Reason: usecase.ReasonAlreadyUsed}, nil)

	w := s.postCheckIn(eventID.String(), `{"code":"TKT-001"}`)

	s.Equal(http.StatusOK, w.Code)
	s.Contains(w.Body.String(), `"already_used"`)
}

func (s *CheckInHandlerTestSuite) TestInvalidEventID() {
	w := s.postCheckIn("not-a-uuid", `{"code":"TKT-001"}`)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *CheckInHandlerTestSuite) TestMissingCode() {
	w := s.postCheckIn(uuid.New().String(), `{}`)
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *CheckInHandlerTestSuite) TestInvalidCodeFromUseCase() {
	eventID := uuid.New()
	s.mockUseCase.EXPECT().
		CheckIn(gomock.Any(), eventID, " ", s.staffID).
		Return(nil, usecase.ErrInvalidCode)

	w := s.postCheckIn(eventID.String(), `{"code":" "}`)

	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *CheckInHandlerTestSuite) TestUnauthenticated() {
	req := httptest.NewRequest(http.MethodPost, "/api/events/"+uuid.New().String()+"/checkin", bytes.NewBufferString(`{"code":"TKT-001"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	s.Equal(http.StatusUnauthorized, w.Code)
}

func (s *CheckInHandlerTestSuite) TestInternalError() {
	eventID := uuid.New()
	s.mockUseCase.EXPECT().
		CheckIn(gomock.Any(), eventID, "TKT-001", s.staffID).
		Return(nil, errors.New("database exploded"))

	w := s.postCheckIn(eventID.String(), `{"code":"TKT-001"}`)

	s.Equal(http.StatusInternalServerError, w.Code)
}
