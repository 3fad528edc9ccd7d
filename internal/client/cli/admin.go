package cli

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/bookit/internal/client/models"
)

func (a *App) Technicians(ctx context.Context, _ []string) error {
	techs, err := a.adminService.Technicians(ctx)
	if err != nil {
		return err
	}
	for _, t := range techs {
		names := make([]string, 0, len(t.Services))
		for _, s := range t.Services {
			names = append(names, s.Name)
		}
		a.printf("%s  %s  [%s]\n", t.UID, t.Name, strings.Join(names, ", "))
	}
	return nil
}

func (a *App) Customers(ctx context.Context, _ []string) error {
	cs, err := a.adminService.Customers(ctx)
	if err != nil {
		return err
	}
	for _, c := range cs {
		a.printf("%s  %s  %s  %s\n", c.UID, c.Nickname, c.Phone, c.Role)
	}
	return nil
}

// SetRole changes another user's role: setrole <user_uid> <role>.
func (a *App) SetRole(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return usage("setrole <user_uid> <customer|technician|admin>")
	}
	role, err := models.ParseRole(args[1])
	if err != nil {
		return err
	}
	if err := a.adminService.SetCustomerRole(ctx, args[0], role); err != nil {
		return err
	}
	a.printf("%s is now %s\n", args[0], role)
	return nil
}
