package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/bookit/internal/client/models"
	"github.com/dmitrijs2005/bookit/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newTestClient(t *testing.T, h http.HandlerFunc, token string) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL+"/", staticToken(token),
		WithRateLimit(1000, 1000),
		WithRetry(2, time.Millisecond),
		WithTimeout(2*time.Second),
	)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestHeaders_TokenAndRequestID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/me", r.URL.Path)
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		writeJSON(w, http.StatusOK, models.User{UID: "u1", Role: models.RoleAdmin})
	}, "tok-1")

	u, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, models.User{UID: "u1", Role: models.RoleAdmin}, u)
}

func TestHeaders_AnonymousHasNoAuthorization(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "wx-code", body["code"])
		writeJSON(w, http.StatusOK, models.TokenResponse{AccessToken: "jwt"})
	}, "")

	tok, err := c.WxLogin(context.Background(), "wx-code")
	require.NoError(t, err)
	assert.Equal(t, "jwt", tok.AccessToken)
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantIs  error
		wantAPI *APIError
	}{
		{name: "401", status: 401, body: `{"detail":"expired"}`, wantIs: ErrUnauthorized},
		{name: "detail string", status: 409, body: `{"detail":"slot already taken"}`, wantAPI: &APIError{Status: 409, Detail: "slot already taken"}},
		{name: "detail list", status: 422, body: `{"detail": [ {"loc":["body","items"]} ]}`, wantAPI: &APIError{Status: 422, Detail: `[{"loc":["body","items"]}]`}},
		{name: "no detail", status: 400, body: `oops`, wantAPI: &APIError{Status: 400, Detail: "Bad Request"}},
		{name: "403 stays api error", status: 403, body: `{"detail":"admins only"}`, wantAPI: &APIError{Status: 403, Detail: "admins only"}},
		{name: "503", status: 503, body: ``, wantIs: ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}, "t")

			err := c.DeleteShift(context.Background(), "s1")
			require.Error(t, err)
			if tt.wantIs != nil {
				require.ErrorIs(t, err, tt.wantIs)
				return
			}
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.wantAPI, apiErr)
		})
	}
}

func TestGet_RetriesWhileUnavailable(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		writeJSON(w, http.StatusOK, []models.Location{{UID: "l1", Name: "Main"}})
	}, "")

	locs, err := c.ScheduleLocations(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []models.Location{{UID: "l1", Name: "Main"}}, locs)
	assert.EqualValues(t, 3, calls.Load())
}

func TestGet_GivesUpAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}, "")

	_, err := c.ScheduleLocations(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
	assert.EqualValues(t, 3, calls.Load(), "one try plus two retries")
}

func TestPost_IsNotRetried(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}, "t")

	_, err := c.CreateAppointment(context.Background(), []models.HoldPayloadItem{{StartTime: "s", EndTime: "e"}})
	require.ErrorIs(t, err, ErrUnavailable)
	assert.EqualValues(t, 1, calls.Load())
}

func TestTransportFailureIsUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewHTTPClient(url, nil, WithRetry(0, time.Millisecond))
	err := c.Ping(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestCanceledContext(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, []models.Location{})
	}, "")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ScheduleLocations(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestValidation_RejectsBeforeSending(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("request must not be sent: %s", r.URL)
	}, "t")
	ctx := context.Background()

	_, err := c.Availability(ctx, models.AvailabilityQuery{LocationUID: "l1", ServiceUID: "s1", Date: "01/03/2026"})
	require.ErrorIs(t, err, common.ErrInvalidInput)
	assert.Contains(t, err.Error(), "Date")

	_, err = c.AdminLogin(ctx, "", "pw")
	require.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = c.WxLogin(ctx, "  ")
	require.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = c.CreateMyShifts(ctx, nil)
	require.ErrorIs(t, err, common.ErrInvalidInput)

	_, err = c.CreateShift(ctx, models.ShiftInput{LocationUID: "l1", StartTime: "2026-03-01T09:00:00Z", EndTime: "2026-03-01T17:00:00Z"})
	require.ErrorIs(t, err, common.ErrInvalidInput)

	err = c.UpdateCustomerRole(ctx, "u1", models.Role("owner"))
	require.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestRateLimiterThrottles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	t.Cleanup(srv.Close)

	c := NewHTTPClient(srv.URL, nil, WithRateLimit(20, 1))
	ctx := context.Background()

	started := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, c.Ping(ctx))
	}
	assert.GreaterOrEqual(t, time.Since(started), 90*time.Millisecond)
}
