//go:build unit

package scan_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"ticketgate/internal/pkg/config"
	"ticketgate/internal/scan"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (*scan.Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := scan.NewClient(config.AuthorityConfig{
		BaseURL: server.URL,
		Timeout: time.Second,
	}, "test-token")
	return client, server
}

func TestClientValidateSuccess(t *testing.T) {
	eventID := uuid.New()
	staffID := uuid.New()

	var gotPath, gotAuth string
	var gotBody map[string]string

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(scan.ValidationResult{
			Valid:  true,
			Reason: scan.ReasonOK,
			Ticket: &scan.TicketSnapshot{AttendeeName: "Ada Lovelace"},
		})
	}))

	result, err := client.Validate(context.Background(), eventID, "TKT-001", staffID)

	require.NoError(t, err)
	assert.True(t, result.Valid)
	assert.Equal(t, scan.ReasonOK, result.Reason)
	assert.Equal(t, "Ada Lovelace", result.Ticket.AttendeeName)

	assert.Equal(t, "/api/events/"+eventID.String()+"/checkin", gotPath)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "TKT-001", gotBody["code"])
	assert.Equal(t, staffID.String(), gotBody["staff_id"])
}

func TestClientBusinessRejectionsAreResults(t *testing.T) {
	reasons := []scan.Reason{
		scan.ReasonTicketNotFound,
		scan.ReasonWrongEvent,
		scan.ReasonAlreadyUsed,
		scan.ReasonCancelled,
		scan.ReasonExpired,
	}

	for _, reason := range reasons {
		t.Run(string(reason), func(t *testing.T) {
			client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				json.NewEncoder(w).Encode(scan.ValidationResult{Valid: false, Reason: reason})
			}))

			result, err := client.Validate(context.Background(), uuid.New(), "TKT-001", uuid.New())

			require.NoError(t, err)
			assert.False(t, result.Valid)
			assert.Equal(t, reason, result.Reason)
		})
	}
}

func TestClientTimeoutBecomesNetworkFailure(t *testing.T) {
	block := make(chan struct{})
	defer close(block)

	server := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		<-block
	}))
	t.Cleanup(server.Close)

	client := scan.NewClient(config.AuthorityConfig{
		BaseURL: server.URL,
		Timeout: 50 * time.Millisecond,
	}, "")

	result, err := client.Validate(context.Background(), uuid.New(), "TKT-001", uuid.New())

	require.NoError(t, err)
	assert.False(t, result.Valid)
	assert.Equal(t, scan.ReasonNetworkFailure, result.Reason)
	assert.Nil(t, result.Ticket)
}

func TestClientUnreachableAuthorityBecomesNetworkFailure(t *testing.T) {
	client := scan.NewClient(config.AuthorityConfig{
		BaseURL: "http://127.0.0.1:1",
		Timeout: 100 * time.Millisecond,
	}, "")

	result, err := client.Validate(context.Background(), uuid.New(), "TKT-001", uuid.New())

	require.NoError(t, err)
	assert.Equal(t, scan.ReasonNetworkFailure, result.Reason)
}

func TestClientNonOKStatusIsAnError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	result, err := client.Validate(context.Background(), uuid.New(), "TKT-001", uuid.New())

	require.Error(t, err)
	assert.Nil(t, result)
}

func TestClientMalformedResponseIsAnError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("not json"))
	}))

	result, err := client.Validate(context.Background(), uuid.New(), "TKT-001", uuid.New())

	require.Error(t, err)
	assert.Nil(t, result)
}

func TestClientRejectsOverlappingValidations(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		close(started)
		<-release
		json.NewEncoder(w).Encode(scan.ValidationResult{Valid: true, Reason: scan.ReasonOK})
	}))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := client.Validate(context.Background(), uuid.New(), "TKT-001", uuid.New())
		assert.NoError(t, err)
	}()

	// Once the authority has received the first request, a second attempt
	// must be refused instead of queued.
	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("first validation never reached the authority")
	}

	_, err := client.Validate(context.Background(), uuid.New(), "TKT-002", uuid.New())
	assert.ErrorIs(t, err, scan.ErrValidationInFlight)

	close(release)
	wg.Wait()
}
