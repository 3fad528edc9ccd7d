package client

import (
	"context"

	"github.com/dmitrijs2005/bookit/internal/client/models"
)

type AuthAPI interface {
	WxLogin(ctx context.Context, code string) (models.TokenResponse, error)
	AdminLogin(ctx context.Context, phone, password string) (models.TokenResponse, error)
	Me(ctx context.Context) (models.User, error)
	Ping(ctx context.Context) error
}

type ScheduleAPI interface {
	ScheduleLocations(ctx context.Context) ([]models.Location, error)
	MyShifts(ctx context.Context, q models.ShiftQuery) ([]models.Shift, error)
	CreateMyShifts(ctx context.Context, items []models.ShiftInput) ([]models.Shift, error)
	Availability(ctx context.Context, q models.AvailabilityQuery) ([]models.Slot, error)
	CreateAppointment(ctx context.Context, items []models.HoldPayloadItem) ([]models.Appointment, error)
}

type AdminAPI interface {
	Locations(ctx context.Context) ([]models.Location, error)
	CreateLocation(ctx context.Context, in models.LocationInput) (models.Location, error)
	UpdateLocation(ctx context.Context, uid string, in models.LocationInput) (models.Location, error)
	DeleteLocation(ctx context.Context, uid string) error

	Services(ctx context.Context) ([]models.Service, error)
	CreateService(ctx context.Context, in models.ServiceInput) (models.Service, error)
	UpdateService(ctx context.Context, uid string, in models.ServiceInput) (models.Service, error)
	DeleteService(ctx context.Context, uid string) error

	CreateResource(ctx context.Context, in models.ResourceInput) (models.Resource, error)
	ResourcesByLocation(ctx context.Context, locationUID string) ([]models.Resource, error)
	UpdateResource(ctx context.Context, uid string, in models.ResourceInput) (models.Resource, error)
	DeleteResource(ctx context.Context, uid string) error

	Technicians(ctx context.Context) ([]models.Technician, error)
	AssignService(ctx context.Context, technicianUID, serviceUID string) error
	RemoveService(ctx context.Context, technicianUID, serviceUID string) error

	Customers(ctx context.Context) ([]models.Customer, error)
	UpdateCustomerRole(ctx context.Context, userUID string, role models.Role) error

	Shifts(ctx context.Context, q models.ShiftQuery) ([]models.Shift, error)
	CreateShift(ctx context.Context, in models.ShiftInput) (models.Shift, error)
	DeleteShift(ctx context.Context, uid string) error
}

// API is everything the booking backend offers.
type API interface {
	AuthAPI
	ScheduleAPI
	AdminAPI
}

// TokenSource supplies the bearer token for outbound calls; "" means anonymous.
type TokenSource interface {
	Token() string
}
