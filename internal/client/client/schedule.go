package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/bookit/internal/client/models"
	"github.com/dmitrijs2005/bookit/internal/common"
)

func (c *HTTPClient) ScheduleLocations(ctx context.Context) ([]models.Location, error) {
	var out []models.Location
	err := c.get(ctx, "/schedule/locations", nil, &out)
	return out, err
}

func (c *HTTPClient) MyShifts(ctx context.Context, q models.ShiftQuery) ([]models.Shift, error) {
	if err := c.check(q); err != nil {
		return nil, err
	}
	var out []models.Shift
	err := c.get(ctx, "/schedule/my-shifts", q.Values(), &out)
	return out, err
}

func (c *HTTPClient) CreateMyShifts(ctx context.Context, items []models.ShiftInput) ([]models.Shift, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no shifts given", common.ErrInvalidInput)
	}
	for _, it := range items {
		if err := c.check(it); err != nil {
			return nil, err
		}
	}
	var out []models.Shift
	err := c.send(ctx, http.MethodPost, "/schedule/my-shifts", map[string]any{"items": items}, &out)
	return out, err
}

func (c *HTTPClient) Availability(ctx context.Context, q models.AvailabilityQuery) ([]models.Slot, error) {
	if err := c.check(q); err != nil {
		return nil, err
	}
	var out []models.Slot
	err := c.get(ctx, "/schedule/availability", q.Values(), &out)
	return out, err
}

// CreateAppointment books the given held slots. The backend answers with the
// created appointments, either as a bare list or wrapped in {"items": [...]}.
func (c *HTTPClient) CreateAppointment(ctx context.Context, items []models.HoldPayloadItem) ([]models.Appointment, error) {
	var raw json.RawMessage
	err := c.send(ctx, http.MethodPost, "/schedule/appointments", models.CreateAppointmentRequest{Items: items}, &raw)
	if err != nil {
		return nil, err
	}
	return decodeAppointments(raw)
}

func decodeAppointments(raw json.RawMessage) ([]models.Appointment, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil, nil
	}

	var out []models.Appointment
	if raw[0] == '[' {
		if err := json.Unmarshal(raw, &out); err != nil {
			return nil, fmt.Errorf("failed to decode appointments: %w", err)
		}
		return out, nil
	}

	var wrapped struct {
		Items []models.Appointment `json:"items"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("failed to decode appointments: %w", err)
	}
	return wrapped.Items, nil
}
