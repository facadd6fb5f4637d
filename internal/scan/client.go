package scan

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"ticketgate/internal/pkg/config"
	"ticketgate/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrValidationInFlight = errors.New("validation already in flight")

// Reason classifies a validation outcome. Every value except
// ReasonNetworkFailure comes from the authority; network failure is produced
// client-side when no response arrives.
type Reason string

const (
	ReasonOK             Reason = "ok"
	ReasonTicketNotFound Reason = "ticket_not_found"
	ReasonWrongEvent     Reason = "wrong_event"
	ReasonAlreadyUsed    Reason = "already_used"
	ReasonCancelled      Reason = "cancelled"
	ReasonExpired        Reason = "expired"
	ReasonNetworkFailure Reason = "network_failure"
)

// TicketSnapshot is the display context staff see with a result: enough to
// argue with a ticket-holder over an already_used outcome.
type TicketSnapshot struct {
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

// ValidationResult is transient: it is never persisted, only rendered.
type ValidationResult struct {
	Valid  bool            `json:"valid"`
	Reason Reason          `json:"reason"`
	Ticket *TicketSnapshot `json:"ticket,omitempty"`
}

// Client talks to the remote check-in authority. One validation may be in
// flight at a time per client: the UI must not fire a second scan while a
// result is pending, and the client enforces that contract itself.
type Client struct {
	baseURL    string
	authToken  string
	httpClient *http.Client

	mu       sync.Mutex
	inFlight bool
}

func NewClient(cfg config.AuthorityConfig, authToken string) *Client {
	return &Client{
		baseURL:   cfg.BaseURL,
		authToken: authToken,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type validateRequest struct {
	Code    string `json:"code"`
	StaffID string `json:"staff_id"`
}

// Validate sends the normalized code plus the acting staff identity to the
// authority and interprets the structured result. Transport failure maps to
// a network_failure result, never to an assumed success, and is never
// retried silently: retrying is the operator's call, and it is safe only
// because the authority's transition is idempotent. A malformed authority
// response escalates as a real error.
func (c *Client) Validate(ctx context.Context, eventID uuid.UUID, code string, staffID uuid.UUID) (*ValidationResult, error) {
	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return nil, ErrValidationInFlight
	}
	c.inFlight = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.inFlight = false
		c.mu.Unlock()
	}()

	body, err := json.Marshal(validateRequest{
		Code:    code,
		StaffID: staffID.String(),
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode validation request")
	}

	url := fmt.Sprintf("%s/api/events/%s/checkin", c.baseURL, eventID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build validation request")
	}
	req.Header.Set("Content-Type", "application/json")
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// No response: the check-in may or may not have been recorded, so the
		// only safe answer is "not admitted, re-scan".
		return &ValidationResult{Valid: false, Reason: ReasonNetworkFailure}, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errs.Newf("authority returned status %d", resp.StatusCode)
	}

	var result ValidationResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, errs.Wrap(err, "malformed authority response")
	}
	if result.Reason == "" {
		return nil, errs.New("authority response missing reason")
	}

	return &result, nil
}
