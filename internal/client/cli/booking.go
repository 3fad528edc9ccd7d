package cli

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/bookit/internal/client/holds"
	"github.com/dmitrijs2005/bookit/internal/client/models"
	"github.com/dmitrijs2005/bookit/internal/client/services"
)

func (a *App) Locations(ctx context.Context, _ []string) error {
	locs, err := a.bookingService.Locations(ctx)
	if err != nil {
		return err
	}
	if len(locs) == 0 {
		a.printf("No locations\n")
		return nil
	}
	for _, l := range locs {
		a.printf("%s  %s  %s\n", l.UID, l.Name, l.Address)
	}
	return nil
}

// Availability lists bookable slots:
//
//	availability <location_uid> <service_uid> <yyyy-mm-dd> [technician_uid]
func (a *App) Availability(ctx context.Context, args []string) error {
	if len(args) < 3 {
		return usage("availability <location_uid> <service_uid> <yyyy-mm-dd> [technician_uid]")
	}
	q := models.AvailabilityQuery{LocationUID: args[0], ServiceUID: args[1], Date: args[2]}
	if len(args) > 3 {
		q.TechnicianUID = args[3]
	}

	slots, err := a.bookingService.Availability(ctx, q)
	if err != nil {
		return err
	}

	a.lastSlots = slots
	a.lastQuery = q
	if len(slots) == 0 {
		a.printf("No free slots\n")
		return nil
	}
	for i, s := range slots {
		a.printf("%2d. %s\n", i+1, s)
	}
	a.printf("Use 'hold <n>' to reserve a slot for %s\n", clockText(holds.HoldDuration))
	return nil
}

// Hold puts slot n of the last availability listing into the cart.
func (a *App) Hold(_ context.Context, args []string) error {
	if len(args) != 1 {
		return usage("hold <n>")
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 || n > len(a.lastSlots) {
		return usage("hold <n>, where n is a slot number from the last 'availability'")
	}

	s := a.lastSlots[n-1]
	details := map[string]string{
		"location_uid": a.lastQuery.LocationUID,
		"service_uid":  a.lastQuery.ServiceUID,
		"technician":   s.TechnicianName,
		"resource":     s.ResourceName,
	}
	id := a.bookingService.Hold(s, details)
	a.printf("Held %s (%s) for %s\n", s, id, clockText(holds.HoldDuration))
	return nil
}

func (a *App) Holds(_ context.Context, _ []string) error {
	entries := a.bookingService.Holds()
	a.lastHolds = a.lastHolds[:0]
	if len(entries) == 0 {
		a.printf("Cart is empty\n")
		return nil
	}
	cart := a.bookingService.Cart()
	for i, e := range entries {
		a.lastHolds = append(a.lastHolds, e.ID)
		a.printf("%2d. %s - %s  %s  [%s]\n", i+1, e.StartTime, e.EndTime, holdWho(e), e.ID)
	}
	a.printf("%d held, first expiry in %s\n", cart.Count, clockText(cart.Remaining))
	return nil
}

// Unhold drops a hold by its number in the last 'holds' listing or by its
// ID. Numbers keep pointing at what was listed even if holds expired since.
func (a *App) Unhold(_ context.Context, args []string) error {
	if len(args) != 1 {
		return usage("unhold <n|id>")
	}
	id := args[0]
	if n, err := strconv.Atoi(id); err == nil {
		if n < 1 || n > len(a.lastHolds) {
			return usage("unhold <n|id>, where n is a number from the last 'holds'")
		}
		id = a.lastHolds[n-1]
	}
	a.bookingService.Unhold(id)
	a.printf("Released %s\n", id)
	return nil
}

func (a *App) ClearHolds(_ context.Context, _ []string) error {
	a.bookingService.ClearHolds()
	a.printf("Cart cleared\n")
	return nil
}

func (a *App) Checkout(ctx context.Context, _ []string) error {
	apps, err := a.bookingService.Checkout(ctx)
	for _, ap := range apps {
		a.printf("Booked %s  %s - %s  %s\n", ap.UID, ap.StartTime, ap.EndTime, ap.Status)
	}
	if errors.Is(err, services.ErrReceiptsNotSaved) {
		a.printf("Warning: %v\n", err)
		return nil
	}
	return err
}

func (a *App) Receipts(ctx context.Context, _ []string) error {
	rs, err := a.bookingService.Receipts(ctx)
	if err != nil {
		return err
	}
	if len(rs) == 0 {
		a.printf("No appointments booked from this device\n")
		return nil
	}
	for _, r := range rs {
		a.printf("%s  %s - %s  %s  (booked %s)\n",
			r.AppointmentUID, r.StartTime, r.EndTime, r.Status, r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

// Shifts lists the technician's own shifts, or all shifts for admins:
//
//	shifts [start yyyy-mm-dd] [end yyyy-mm-dd]
func (a *App) Shifts(ctx context.Context, args []string) error {
	var q models.ShiftQuery
	if len(args) > 0 {
		q.StartDate = args[0]
	}
	if len(args) > 1 {
		q.EndDate = args[1]
	}

	var (
		shifts []models.Shift
		err    error
	)
	if a.session.UserRole() == models.RoleAdmin {
		shifts, err = a.adminService.Shifts(ctx, q)
	} else {
		shifts, err = a.bookingService.MyShifts(ctx, q)
	}
	if err != nil {
		return err
	}

	if len(shifts) == 0 {
		a.printf("No shifts\n")
		return nil
	}
	for _, s := range shifts {
		a.printf("%s  %s - %s  @%s  %s\n", s.UID, s.StartTime, s.EndTime, s.LocationUID, s.TechnicianUID)
	}
	return nil
}

// AddShift creates shifts. Technicians enter one
// "<location_uid> <start> <end>" per line; admins pass
// "<technician_uid> <location_uid> <start> <end>" as arguments.
// Times are RFC 3339, e.g. 2026-03-01T09:00:00+08:00.
func (a *App) AddShift(ctx context.Context, args []string) error {
	if a.session.UserRole() == models.RoleAdmin {
		if len(args) != 4 {
			return usage("addshift <technician_uid> <location_uid> <start> <end>")
		}
		s, err := a.adminService.CreateShift(ctx, models.ShiftInput{
			TechnicianUID: args[0], LocationUID: args[1], StartTime: args[2], EndTime: args[3],
		})
		if err != nil {
			return err
		}
		a.printf("Created shift %s\n", s.UID)
		return nil
	}

	var lines []string
	if len(args) == 3 {
		lines = []string{strings.Join(args, " ")}
	} else {
		var err error
		lines, err = GetLines(a.reader, "Enter shifts as '<location_uid> <start> <end>'", a.out)
		if err != nil {
			return err
		}
	}

	items := make([]models.ShiftInput, 0, len(lines))
	for _, l := range lines {
		f := strings.Fields(l)
		if len(f) != 3 {
			return usage("each shift is '<location_uid> <start> <end>'")
		}
		items = append(items, models.ShiftInput{LocationUID: f[0], StartTime: f[1], EndTime: f[2]})
	}

	created, err := a.bookingService.CreateMyShifts(ctx, items)
	if err != nil {
		return err
	}
	a.printf("Created %d shift(s)\n", len(created))
	return nil
}

func holdWho(e holds.HoldEntry) string {
	who := firstNonEmpty(e.Details["technician"], e.TechnicianUID, "any technician")
	if where := firstNonEmpty(e.Details["resource"], e.ResourceUID); where != "" {
		return who + " @ " + where
	}
	return who
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
