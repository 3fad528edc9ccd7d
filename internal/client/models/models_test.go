package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{in: "customer", want: RoleCustomer},
		{in: " Technician ", want: RoleTechnician},
		{in: "ADMIN", want: RoleAdmin},
		{in: "owner", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRole(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUnknownRole)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHoldPayloadItem_NullReferences(t *testing.T) {
	tech := "tech-1"
	b, err := json.Marshal(CreateAppointmentRequest{Items: []HoldPayloadItem{
		{TechnicianUID: &tech, StartTime: "2025-03-01T10:00:00Z", EndTime: "2025-03-01T11:00:00Z"},
	}})
	require.NoError(t, err)
	assert.JSONEq(t, `{"items":[{"technician_uid":"tech-1","resource_uid":null,"start_time":"2025-03-01T10:00:00Z","end_time":"2025-03-01T11:00:00Z"}]}`, string(b))
}

func TestSlot_String(t *testing.T) {
	s := Slot{TechnicianName: "Lin", ResourceName: "Bed 2", StartTime: "10:00", EndTime: "11:00"}
	assert.Equal(t, "10:00 - 11:00  Lin @ Bed 2", s.String())

	s = Slot{StartTime: "10:00", EndTime: "11:00"}
	assert.Equal(t, "10:00 - 11:00  any technician", s.String())
}

func TestReceiptFromAppointment(t *testing.T) {
	at := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	r := ReceiptFromAppointment(Appointment{UID: "a1", ResourceUID: "bed-1", StartTime: "s", EndTime: "e", Status: "booked"}, at)
	assert.Equal(t, Receipt{AppointmentUID: "a1", ResourceUID: "bed-1", StartTime: "s", EndTime: "e", Status: "booked", CreatedAt: at}, r)
}

func TestQueries_Values(t *testing.T) {
	q := AvailabilityQuery{LocationUID: "loc", ServiceUID: "svc", Date: "2025-03-01"}
	assert.Equal(t, "date=2025-03-01&location_uid=loc&service_uid=svc", q.Values().Encode())

	sq := ShiftQuery{StartDate: "2025-03-01", EndDate: "2025-03-07"}
	assert.Equal(t, "end_date=2025-03-07&start_date=2025-03-01", sq.Values().Encode())
}
