package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/bookit/internal/client/client"
	"github.com/dmitrijs2005/bookit/internal/client/models"
	"github.com/dmitrijs2005/bookit/internal/client/session"
)

var ErrAdminOnly = errors.New("admin role required")

// AdminService exposes the administrative calls the CLI offers. Every call
// requires the session to act in the admin role.
type AdminService interface {
	Technicians(ctx context.Context) ([]models.Technician, error)
	AssignService(ctx context.Context, technicianUID, serviceUID string) error
	Customers(ctx context.Context) ([]models.Customer, error)
	SetCustomerRole(ctx context.Context, userUID string, role models.Role) error
	Services(ctx context.Context) ([]models.Service, error)
	Resources(ctx context.Context, locationUID string) ([]models.Resource, error)
	Shifts(ctx context.Context, q models.ShiftQuery) ([]models.Shift, error)
	CreateShift(ctx context.Context, in models.ShiftInput) (models.Shift, error)
	DeleteShift(ctx context.Context, uid string) error
}

type adminService struct {
	api     client.AdminAPI
	session *session.Store
}

func NewAdminService(api client.AdminAPI, sess *session.Store) AdminService {
	return &adminService{api: api, session: sess}
}

func (s *adminService) guard() error {
	if s.session.UserRole() != models.RoleAdmin {
		return ErrAdminOnly
	}
	return nil
}

func (s *adminService) Technicians(ctx context.Context) ([]models.Technician, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	return s.api.Technicians(ctx)
}

func (s *adminService) AssignService(ctx context.Context, technicianUID, serviceUID string) error {
	if err := s.guard(); err != nil {
		return err
	}
	return s.api.AssignService(ctx, technicianUID, serviceUID)
}

func (s *adminService) Customers(ctx context.Context) ([]models.Customer, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	return s.api.Customers(ctx)
}

func (s *adminService) SetCustomerRole(ctx context.Context, userUID string, role models.Role) error {
	if err := s.guard(); err != nil {
		return err
	}
	return s.api.UpdateCustomerRole(ctx, userUID, role)
}

func (s *adminService) Services(ctx context.Context) ([]models.Service, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	return s.api.Services(ctx)
}

func (s *adminService) Resources(ctx context.Context, locationUID string) ([]models.Resource, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	return s.api.ResourcesByLocation(ctx, locationUID)
}

func (s *adminService) Shifts(ctx context.Context, q models.ShiftQuery) ([]models.Shift, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}
	return s.api.Shifts(ctx, q)
}

func (s *adminService) CreateShift(ctx context.Context, in models.ShiftInput) (models.Shift, error) {
	if err := s.guard(); err != nil {
		return models.Shift{}, err
	}
	return s.api.CreateShift(ctx, in)
}

func (s *adminService) DeleteShift(ctx context.Context, uid string) error {
	if err := s.guard(); err != nil {
		return err
	}
	return s.api.DeleteShift(ctx, uid)
}
