package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/bookit/internal/client/models"
	"github.com/dmitrijs2005/bookit/internal/common"
)

func (c *HTTPClient) Locations(ctx context.Context) ([]models.Location, error) {
	var out []models.Location
	err := c.get(ctx, "/admin/locations", nil, &out)
	return out, err
}

func (c *HTTPClient) CreateLocation(ctx context.Context, in models.LocationInput) (models.Location, error) {
	var out models.Location
	if err := c.check(in); err != nil {
		return out, err
	}
	err := c.send(ctx, http.MethodPost, "/admin/locations", in, &out)
	return out, err
}

func (c *HTTPClient) UpdateLocation(ctx context.Context, uid string, in models.LocationInput) (models.Location, error) {
	var out models.Location
	if err := c.check(in); err != nil {
		return out, err
	}
	err := c.send(ctx, http.MethodPut, itemPath("/admin/locations", uid), in, &out)
	return out, err
}

func (c *HTTPClient) DeleteLocation(ctx context.Context, uid string) error {
	return c.send(ctx, http.MethodDelete, itemPath("/admin/locations", uid), nil, nil)
}

func (c *HTTPClient) Services(ctx context.Context) ([]models.Service, error) {
	var out []models.Service
	err := c.get(ctx, "/admin/services", nil, &out)
	return out, err
}

func (c *HTTPClient) CreateService(ctx context.Context, in models.ServiceInput) (models.Service, error) {
	var out models.Service
	if err := c.check(in); err != nil {
		return out, err
	}
	err := c.send(ctx, http.MethodPost, "/admin/services", in, &out)
	return out, err
}

func (c *HTTPClient) UpdateService(ctx context.Context, uid string, in models.ServiceInput) (models.Service, error) {
	var out models.Service
	if err := c.check(in); err != nil {
		return out, err
	}
	err := c.send(ctx, http.MethodPut, itemPath("/admin/services", uid), in, &out)
	return out, err
}

func (c *HTTPClient) DeleteService(ctx context.Context, uid string) error {
	return c.send(ctx, http.MethodDelete, itemPath("/admin/services", uid), nil, nil)
}

func (c *HTTPClient) CreateResource(ctx context.Context, in models.ResourceInput) (models.Resource, error) {
	var out models.Resource
	if err := c.check(in); err != nil {
		return out, err
	}
	err := c.send(ctx, http.MethodPost, "/admin/resources", in, &out)
	return out, err
}

func (c *HTTPClient) ResourcesByLocation(ctx context.Context, locationUID string) ([]models.Resource, error) {
	var out []models.Resource
	err := c.get(ctx, itemPath("/admin/locations", locationUID, "resources"), nil, &out)
	return out, err
}

func (c *HTTPClient) UpdateResource(ctx context.Context, uid string, in models.ResourceInput) (models.Resource, error) {
	var out models.Resource
	if err := c.check(in); err != nil {
		return out, err
	}
	err := c.send(ctx, http.MethodPut, itemPath("/admin/resources", uid), in, &out)
	return out, err
}

func (c *HTTPClient) DeleteResource(ctx context.Context, uid string) error {
	return c.send(ctx, http.MethodDelete, itemPath("/admin/resources", uid), nil, nil)
}

func (c *HTTPClient) Technicians(ctx context.Context) ([]models.Technician, error) {
	var out []models.Technician
	err := c.get(ctx, "/admin/technicians", nil, &out)
	return out, err
}

func (c *HTTPClient) AssignService(ctx context.Context, technicianUID, serviceUID string) error {
	body := map[string]string{"service_uid": serviceUID}
	return c.send(ctx, http.MethodPost, itemPath("/admin/technicians", technicianUID, "services"), body, nil)
}

func (c *HTTPClient) RemoveService(ctx context.Context, technicianUID, serviceUID string) error {
	return c.send(ctx, http.MethodDelete, itemPath("/admin/technicians", technicianUID, "services", serviceUID), nil, nil)
}

func (c *HTTPClient) Customers(ctx context.Context) ([]models.Customer, error) {
	var out []models.Customer
	err := c.get(ctx, "/admin/customers", nil, &out)
	return out, err
}

func (c *HTTPClient) UpdateCustomerRole(ctx context.Context, userUID string, role models.Role) error {
	if !role.Valid() {
		return fmt.Errorf("%w: %w", common.ErrInvalidInput, models.ErrUnknownRole)
	}
	return c.send(ctx, http.MethodPut, itemPath("/admin/customers", userUID, "role"), models.NewRoleUpdate(role), nil)
}

func (c *HTTPClient) Shifts(ctx context.Context, q models.ShiftQuery) ([]models.Shift, error) {
	if err := c.check(q); err != nil {
		return nil, err
	}
	var out []models.Shift
	err := c.get(ctx, "/admin/shifts", q.Values(), &out)
	return out, err
}

func (c *HTTPClient) CreateShift(ctx context.Context, in models.ShiftInput) (models.Shift, error) {
	var out models.Shift
	if err := c.check(in); err != nil {
		return out, err
	}
	if in.TechnicianUID == "" {
		return out, fmt.Errorf("%w: technician is required", common.ErrInvalidInput)
	}
	err := c.send(ctx, http.MethodPost, "/admin/shifts", in, &out)
	return out, err
}

func (c *HTTPClient) DeleteShift(ctx context.Context, uid string) error {
	return c.send(ctx, http.MethodDelete, itemPath("/admin/shifts", uid), nil, nil)
}

var _ API = (*HTTPClient)(nil)
