package services

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/dmitrijs2005/bookit/internal/client/client"
	"github.com/dmitrijs2005/bookit/internal/client/holds"
	"github.com/dmitrijs2005/bookit/internal/client/models"
	"github.com/dmitrijs2005/bookit/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/bookit/internal/client/session"
	"github.com/dmitrijs2005/bookit/internal/logging"
	"github.com/dmitrijs2005/bookit/internal/timex"
	"github.com/stretchr/testify/require"
)

var t0 = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

type env struct {
	db      *sql.DB
	clock   *timex.ManualClock
	holds   *holds.Store
	session *session.Store
	api     *fakeAPI
}

func newEnv(t *testing.T) *env {
	t.Helper()
	ctx := context.Background()

	db, err := client.InitDatabase(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	clock := timex.NewManualClock(t0)
	n := 0
	hs := holds.New(holds.WithClock(clock), holds.WithIDGenerator(func() string {
		n++
		return fmt.Sprintf("h%d", n)
	}))

	return &env{
		db:      db,
		clock:   clock,
		holds:   hs,
		session: session.New(metadata.NewSQLiteRepository(db), clock),
		api:     &fakeAPI{},
	}
}

func (e *env) auth() AuthService {
	return NewAuthService(e.api, e.session, e.holds, e.db, logging.Nop())
}

func (e *env) booking() BookingService {
	return NewBookingService(e.api, e.holds, e.db, e.clock, logging.Nop())
}

func (e *env) admin() AdminService {
	return NewAdminService(e.api, e.session)
}

func (e *env) login(t *testing.T, role models.Role) {
	t.Helper()
	e.api.loginTok = models.TokenResponse{AccessToken: "tok"}
	e.api.me = models.User{UID: "u1", Role: role}
	_, err := e.auth().CodeLogin(context.Background(), "code")
	require.NoError(t, err)
}

// fakeAPI implements client.API. Admin calls not overridden here panic
// through the nil embedded interface.
type fakeAPI struct {
	client.AdminAPI

	loginTok  models.TokenResponse
	loginErr  error
	lastCode  string
	lastPhone string
	lastPass  string

	me    models.User
	meErr error

	pingErr error

	slots      []models.Slot
	lastQuery  models.AvailabilityQuery
	locations  []models.Location
	apps       []models.Appointment
	appErr     error
	lastItems  []models.HoldPayloadItem
	appCalls   int
	shifts     []models.Shift
	shiftItems []models.ShiftInput

	technicians []models.Technician
	roleUpdates map[string]models.Role
}

func (f *fakeAPI) WxLogin(_ context.Context, code string) (models.TokenResponse, error) {
	f.lastCode = code
	return f.loginTok, f.loginErr
}

func (f *fakeAPI) AdminLogin(_ context.Context, phone, password string) (models.TokenResponse, error) {
	f.lastPhone, f.lastPass = phone, password
	return f.loginTok, f.loginErr
}

func (f *fakeAPI) Me(context.Context) (models.User, error) { return f.me, f.meErr }

func (f *fakeAPI) Ping(context.Context) error { return f.pingErr }

func (f *fakeAPI) ScheduleLocations(context.Context) ([]models.Location, error) {
	return f.locations, nil
}

func (f *fakeAPI) MyShifts(context.Context, models.ShiftQuery) ([]models.Shift, error) {
	return f.shifts, nil
}

func (f *fakeAPI) CreateMyShifts(_ context.Context, items []models.ShiftInput) ([]models.Shift, error) {
	f.shiftItems = items
	return f.shifts, nil
}

func (f *fakeAPI) Availability(_ context.Context, q models.AvailabilityQuery) ([]models.Slot, error) {
	f.lastQuery = q
	return f.slots, nil
}

func (f *fakeAPI) CreateAppointment(_ context.Context, items []models.HoldPayloadItem) ([]models.Appointment, error) {
	f.appCalls++
	f.lastItems = items
	return f.apps, f.appErr
}

func (f *fakeAPI) Technicians(context.Context) ([]models.Technician, error) {
	return f.technicians, nil
}

func (f *fakeAPI) UpdateCustomerRole(_ context.Context, uid string, role models.Role) error {
	if f.roleUpdates == nil {
		f.roleUpdates = map[string]models.Role{}
	}
	f.roleUpdates[uid] = role
	return nil
}

var _ client.API = (*fakeAPI)(nil)
