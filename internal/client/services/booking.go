package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/bookit/internal/client/client"
	"github.com/dmitrijs2005/bookit/internal/client/holds"
	"github.com/dmitrijs2005/bookit/internal/client/models"
	"github.com/dmitrijs2005/bookit/internal/client/repositories/receipts"
	"github.com/dmitrijs2005/bookit/internal/dbx"
	"github.com/dmitrijs2005/bookit/internal/logging"
	"github.com/dmitrijs2005/bookit/internal/timex"
)

var (
	ErrEmptyCart        = errors.New("no active holds")
	ErrReceiptsNotSaved = errors.New("appointments created but receipts not saved")
)

// CartStatus is what the prompt badge shows.
type CartStatus struct {
	Count     int
	Remaining time.Duration
}

type BookingService interface {
	Locations(ctx context.Context) ([]models.Location, error)
	Availability(ctx context.Context, q models.AvailabilityQuery) ([]models.Slot, error)

	Hold(slot models.Slot, details map[string]string) string
	Unhold(id string)
	Holds() []holds.HoldEntry
	ClearHolds()
	Cart() CartStatus

	Checkout(ctx context.Context) ([]models.Appointment, error)
	Receipts(ctx context.Context) ([]models.Receipt, error)

	MyShifts(ctx context.Context, q models.ShiftQuery) ([]models.Shift, error)
	CreateMyShifts(ctx context.Context, items []models.ShiftInput) ([]models.Shift, error)
}

type bookingService struct {
	api         client.ScheduleAPI
	holds       *holds.Store
	db          *sql.DB
	newReceipts func(dbx.DBTX) receipts.Repository
	clock       timex.Clock
	log         logging.Logger
}

func NewBookingService(api client.ScheduleAPI, hs *holds.Store, db *sql.DB, clock timex.Clock, log logging.Logger) BookingService {
	return &bookingService{
		api:   api,
		holds: hs,
		db:    db,
		newReceipts: func(tx dbx.DBTX) receipts.Repository {
			return receipts.NewSQLiteRepository(tx)
		},
		clock: clock,
		log:   log,
	}
}

func (s *bookingService) Locations(ctx context.Context) ([]models.Location, error) {
	return s.api.ScheduleLocations(ctx)
}

func (s *bookingService) Availability(ctx context.Context, q models.AvailabilityQuery) ([]models.Slot, error) {
	return s.api.Availability(ctx, q)
}

// Hold puts slot into the cart for holds.HoldDuration and returns the hold ID.
func (s *bookingService) Hold(slot models.Slot, details map[string]string) string {
	return s.holds.Add(holds.HoldInput{
		TechnicianUID: slot.TechnicianUID,
		ResourceUID:   slot.ResourceUID,
		StartTime:     slot.StartTime,
		EndTime:       slot.EndTime,
		Details:       details,
	})
}

func (s *bookingService) Unhold(id string) {
	s.holds.Remove(id)
}

func (s *bookingService) Holds() []holds.HoldEntry {
	return s.holds.ActiveEntries()
}

func (s *bookingService) ClearHolds() {
	s.holds.Clear()
}

func (s *bookingService) Cart() CartStatus {
	return CartStatus{Count: s.holds.TotalCount(), Remaining: s.holds.MinRemaining()}
}

// Checkout books every active hold. On failure the cart is left as it was,
// so the user may retry while the holds last.
func (s *bookingService) Checkout(ctx context.Context) ([]models.Appointment, error) {
	payload := s.holds.HoldPayload()
	if len(payload) == 0 {
		return nil, ErrEmptyCart
	}

	apps, err := s.api.CreateAppointment(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("checkout error: %w", err)
	}
	s.holds.Clear()

	now := s.clock.Now()
	rs := make([]models.Receipt, 0, len(apps))
	for _, a := range apps {
		rs = append(rs, models.ReceiptFromAppointment(a, now))
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return s.newReceipts(tx).Save(ctx, rs...)
	})
	if err != nil {
		s.log.Error(ctx, "saving receipts failed", "appointments", len(apps), "error", err)
		return apps, fmt.Errorf("%w: %v", ErrReceiptsNotSaved, err)
	}

	s.log.Info(ctx, "checkout finished", "holds", len(payload), "appointments", len(apps))
	return apps, nil
}

func (s *bookingService) Receipts(ctx context.Context) ([]models.Receipt, error) {
	return s.newReceipts(s.db).List(ctx)
}

func (s *bookingService) MyShifts(ctx context.Context, q models.ShiftQuery) ([]models.Shift, error) {
	return s.api.MyShifts(ctx, q)
}

func (s *bookingService) CreateMyShifts(ctx context.Context, items []models.ShiftInput) ([]models.Shift, error) {
	return s.api.CreateMyShifts(ctx, items)
}
