package cli

import (
	"testing"

	"github.com/dmitrijs2005/bookit/internal/client/models"
	"github.com/stretchr/testify/assert"
)

func TestMenuFor_FallsBackToCustomer(t *testing.T) {
	assert.Equal(t, roleMenus[models.RoleCustomer], MenuFor(models.Role("owner")))
	assert.Equal(t, roleMenus[models.RoleCustomer], MenuFor(""))
	assert.Equal(t, "Dashboard", MenuFor(models.RoleAdmin)[0].Title)
}

func TestSectionFor(t *testing.T) {
	tests := []struct {
		name string
		role models.Role
		n    int
		want string
	}{
		{name: "own section", role: models.RoleTechnician, n: 1, want: "My shifts"},
		{name: "admin fourth", role: models.RoleAdmin, n: 4, want: "Me"},
		{name: "unknown role uses customer", role: "owner", n: 2, want: "My appointments"},
		{name: "out of range falls to customer first", role: models.RoleAdmin, n: 9, want: "Book"},
		{name: "zero", role: models.RoleCustomer, n: 0, want: "Book"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SectionFor(tt.role, tt.n).Title)
		})
	}
}

func TestMenuText(t *testing.T) {
	assert.Equal(t, "Available commands: login, codelogin, exit", menuText(false, models.RoleAdmin))

	txt := menuText(true, models.RoleCustomer)
	assert.Contains(t, txt, "1. Book: locations, availability, hold")
	assert.Contains(t, txt, "4. Coming soon: nothing here yet")
}
