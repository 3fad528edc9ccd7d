package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/bookit/internal/client/client"
	"github.com/dmitrijs2005/bookit/internal/client/models"
	"github.com/dmitrijs2005/bookit/internal/client/services"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. App satisfies
// it; tests use a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	role() models.Role
	expireSession(ctx context.Context)

	Login(ctx context.Context, args []string) error
	CodeLogin(ctx context.Context, args []string) error
	Me(ctx context.Context, args []string) error
	Role(ctx context.Context, args []string) error
	Logout(ctx context.Context, args []string) error

	Locations(ctx context.Context, args []string) error
	Availability(ctx context.Context, args []string) error
	Hold(ctx context.Context, args []string) error
	Holds(ctx context.Context, args []string) error
	Unhold(ctx context.Context, args []string) error
	ClearHolds(ctx context.Context, args []string) error
	Checkout(ctx context.Context, args []string) error
	Receipts(ctx context.Context, args []string) error

	Shifts(ctx context.Context, args []string) error
	AddShift(ctx context.Context, args []string) error

	Technicians(ctx context.Context, args []string) error
	Customers(ctx context.Context, args []string) error
	SetRole(ctx context.Context, args []string) error
}

type handler func(e execIface, ctx context.Context, args []string) error

// commands maps a command word to its handler. Only login, codelogin,
// help and exit work without a session.
var commands = map[string]handler{
	"login":        execIface.Login,
	"codelogin":    execIface.CodeLogin,
	"me":           execIface.Me,
	"role":         execIface.Role,
	"logout":       execIface.Logout,
	"locations":    execIface.Locations,
	"availability": execIface.Availability,
	"hold":         execIface.Hold,
	"holds":        execIface.Holds,
	"unhold":       execIface.Unhold,
	"clearholds":   execIface.ClearHolds,
	"checkout":     execIface.Checkout,
	"receipts":     execIface.Receipts,
	"shifts":       execIface.Shifts,
	"addshift":     execIface.AddShift,
	"technicians":  execIface.Technicians,
	"customers":    execIface.Customers,
	"setrole":      execIface.SetRole,
}

var anonymousAllowed = map[string]bool{"login": true, "codelogin": true}

// runREPL reads commands from scanner until EOF or "exit"/"quit".
//
// The prompt shows statusFn(), which includes the cart badge, so it is
// refreshed before every command. Handler errors are reported to the user;
// a 401 from the server ends the session.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("bookit %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			printlnFn(helpText(a, args))
			continue
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		h, ok := commands[cmd]
		if !ok {
			printlnFn("Unknown command:", cmd)
			continue
		}
		if !a.isLoggedIn() && !anonymousAllowed[cmd] {
			printlnFn("Please log in first (login or codelogin)")
			continue
		}

		if err := h(a, ctx, args); err != nil {
			if errors.Is(err, client.ErrUnauthorized) {
				a.expireSession(ctx)
			}
			printlnFn("Error:", describe(err))
		}
	}
}

func helpText(a execIface, args []string) string {
	if len(args) > 0 && a.isLoggedIn() {
		n, err := strconv.Atoi(args[0])
		if err == nil {
			return SectionFor(a.role(), n).String()
		}
	}
	return menuText(a.isLoggedIn(), a.role())
}

// describe turns an error into a message for the user.
func describe(err error) string {
	var apiErr *client.APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr.Detail
	case errors.Is(err, client.ErrUnauthorized):
		return "session expired, please log in again"
	case errors.Is(err, client.ErrUnavailable):
		return "server unavailable, try again later"
	case errors.Is(err, services.ErrEmptyCart):
		return "nothing to check out, your cart is empty or expired"
	default:
		return err.Error()
	}
}
