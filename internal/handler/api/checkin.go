package api

import (
	"errors"
	"net/http"

	reqdto "ticketgate/internal/handler/dto/request"
	resdto "ticketgate/internal/handler/dto/response"
	"ticketgate/internal/handler/middleware"
	"ticketgate/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CheckInHandler struct {
	checkInUseCase usecase.CheckInUseCase
}

func NewCheckInHandler(checkInUseCase usecase.CheckInUseCase) *CheckInHandler {
	return &CheckInHandler{
		checkInUseCase: checkInUseCase,
	}
}

// @Summary Validate and consume a ticket code
// @Description Validates a ticket code against the event and atomically marks it used
// @Tags checkin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID the scanning session is scoped to"
// @Param request body reqdto.CheckInRequest true "Check-in request"
// @Success 200 {object} resdto.CheckInResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /api/events/{id}/checkin [post]
func (h *CheckInHandler) CheckIn(c *gin.Context) {
	staffID, ok := middleware.GetStaffID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid event ID format",
		})
		return
	}

	var req reqdto.CheckInRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	// Business outcomes (not found, wrong event, already used, terminal
	// states) come back inside the result with status 200; they are rendered
	// to the operator, never treated as transport errors.
	view, err := h.checkInUseCase.CheckIn(c.Request.Context(), eventID, req.Code, staffID)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidCode):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid validation code",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromValidationView(view))
}
