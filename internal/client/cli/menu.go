package cli

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/bookit/internal/client/models"
)

// Section is one numbered page of the help menu.
type Section struct {
	Title    string
	Commands []string
}

var profileSection = Section{Title: "Profile", Commands: []string{"me", "role", "logout"}}

// roleMenus mirrors what each role sees, in order.
var roleMenus = map[models.Role][]Section{
	models.RoleCustomer: {
		{Title: "Book", Commands: []string{"locations", "availability", "hold", "holds", "unhold", "clearholds", "checkout"}},
		{Title: "My appointments", Commands: []string{"receipts"}},
		profileSection,
		{Title: "Coming soon"},
	},
	models.RoleTechnician: {
		{Title: "My shifts", Commands: []string{"shifts", "addshift", "locations"}},
		{Title: "Work appointments", Commands: []string{"receipts"}},
		profileSection,
		{Title: "Coming soon"},
	},
	models.RoleAdmin: {
		{Title: "Dashboard", Commands: []string{"technicians", "customers"}},
		{Title: "Manage", Commands: []string{"setrole", "locations"}},
		{Title: "Shifts", Commands: []string{"shifts", "addshift"}},
		{Title: "Me", Commands: profileSection.Commands},
	},
}

var anonymousCommands = []string{"login", "codelogin", "exit"}

// MenuFor returns the sections of role; unknown roles get the customer menu.
func MenuFor(role models.Role) []Section {
	if m, ok := roleMenus[role]; ok {
		return m
	}
	return roleMenus[models.RoleCustomer]
}

// SectionFor returns section n (1-based) of role's menu, falling back to the
// customer's section n and then to the customer's first section.
func SectionFor(role models.Role, n int) Section {
	if m := MenuFor(role); n >= 1 && n <= len(m) {
		return m[n-1]
	}
	customer := roleMenus[models.RoleCustomer]
	if n >= 1 && n <= len(customer) {
		return customer[n-1]
	}
	return customer[0]
}

func (s Section) String() string {
	if len(s.Commands) == 0 {
		return s.Title + ": nothing here yet"
	}
	return s.Title + ": " + strings.Join(s.Commands, ", ")
}

func menuText(loggedIn bool, role models.Role) string {
	if !loggedIn {
		return "Available commands: " + strings.Join(anonymousCommands, ", ")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Menu (%s), type 'help <n>' for one section:\n", role)
	for i, s := range MenuFor(role) {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, s)
	}
	b.WriteString("  exit")
	return b.String()
}
