package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/dmitrijs2005/bookit/internal/client/client"
	"github.com/dmitrijs2005/bookit/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExec struct {
	loggedIn bool
	r        models.Role
	calls    []string
	args     map[string][]string
	errs     map[string]error
	expired  int
}

func (f *fakeExec) isLoggedIn() bool  { return f.loggedIn }
func (f *fakeExec) role() models.Role { return f.r }
func (f *fakeExec) expireSession(context.Context) {
	f.expired++
	f.loggedIn = false
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, name)
	if f.args == nil {
		f.args = map[string][]string{}
	}
	f.args[name] = args
	return f.errs[name]
}

func (f *fakeExec) Login(_ context.Context, a []string) error {
	f.loggedIn = true
	return f.record("login", a)
}
func (f *fakeExec) CodeLogin(_ context.Context, a []string) error {
	f.loggedIn = true
	return f.record("codelogin", a)
}
func (f *fakeExec) Me(_ context.Context, a []string) error   { return f.record("me", a) }
func (f *fakeExec) Role(_ context.Context, a []string) error { return f.record("role", a) }
func (f *fakeExec) Logout(_ context.Context, a []string) error {
	f.loggedIn = false
	return f.record("logout", a)
}
func (f *fakeExec) Locations(_ context.Context, a []string) error    { return f.record("locations", a) }
func (f *fakeExec) Availability(_ context.Context, a []string) error { return f.record("availability", a) }
func (f *fakeExec) Hold(_ context.Context, a []string) error         { return f.record("hold", a) }
func (f *fakeExec) Holds(_ context.Context, a []string) error        { return f.record("holds", a) }
func (f *fakeExec) Unhold(_ context.Context, a []string) error       { return f.record("unhold", a) }
func (f *fakeExec) ClearHolds(_ context.Context, a []string) error   { return f.record("clearholds", a) }
func (f *fakeExec) Checkout(_ context.Context, a []string) error     { return f.record("checkout", a) }
func (f *fakeExec) Receipts(_ context.Context, a []string) error     { return f.record("receipts", a) }
func (f *fakeExec) Shifts(_ context.Context, a []string) error       { return f.record("shifts", a) }
func (f *fakeExec) AddShift(_ context.Context, a []string) error     { return f.record("addshift", a) }
func (f *fakeExec) Technicians(_ context.Context, a []string) error  { return f.record("technicians", a) }
func (f *fakeExec) Customers(_ context.Context, a []string) error    { return f.record("customers", a) }
func (f *fakeExec) SetRole(_ context.Context, a []string) error      { return f.record("setrole", a) }

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func run(exec execIface, input ...string) {
	sc := bufio.NewScanner(strings.NewReader(strings.Join(input, "\n")))
	runREPL(context.Background(), exec, func() string { return "(status)" }, sc)
}

func TestRunREPL_DispatchesWithArgs(t *testing.T) {
	captureOutput(t)
	exec := &fakeExec{}

	run(exec,
		"codelogin abc",
		"availability l1 s1 2026-03-01",
		"hold 2",
		"holds",
		"unhold 1",
		"checkout",
		"",
		"exit",
		"receipts",
	)

	assert.Equal(t, []string{"codelogin", "availability", "hold", "holds", "unhold", "checkout"}, exec.calls)
	assert.Equal(t, []string{"abc"}, exec.args["codelogin"])
	assert.Equal(t, []string{"l1", "s1", "2026-03-01"}, exec.args["availability"])
	assert.Equal(t, []string{"2"}, exec.args["hold"])
}

func TestRunREPL_RequiresLogin(t *testing.T) {
	out := captureOutput(t)
	exec := &fakeExec{}

	run(exec, "holds", "checkout", "quit")

	assert.Empty(t, exec.calls)
	assert.Contains(t, *out, "Please log in first (login or codelogin)")
	assert.Contains(t, *out, "Bye!")
}

func TestRunREPL_UnknownCommand(t *testing.T) {
	out := captureOutput(t)
	run(&fakeExec{loggedIn: true}, "foobar")
	assert.Contains(t, *out, "Unknown command: foobar")
}

func TestRunREPL_PromptShowsStatus(t *testing.T) {
	out := captureOutput(t)
	run(&fakeExec{}, "exit")
	require.NotEmpty(t, *out)
	assert.Equal(t, "bookit (status)> ", (*out)[0])
}

func TestRunREPL_UnauthorizedEndsSession(t *testing.T) {
	out := captureOutput(t)
	exec := &fakeExec{loggedIn: true, errs: map[string]error{"checkout": fmt.Errorf("checkout error: %w", client.ErrUnauthorized)}}

	run(exec, "checkout", "holds")

	assert.Equal(t, 1, exec.expired)
	assert.Equal(t, []string{"checkout"}, exec.calls, "holds needs a session again")
	assert.Contains(t, *out, "Error: session expired, please log in again")
}

func TestRunREPL_ReportsAPIErrorDetail(t *testing.T) {
	out := captureOutput(t)
	exec := &fakeExec{loggedIn: true, errs: map[string]error{"checkout": &client.APIError{Status: 409, Detail: "slot already taken"}}}

	run(exec, "checkout")

	assert.Contains(t, *out, "Error: slot already taken")
	assert.Zero(t, exec.expired)
}

func TestRunREPL_Help(t *testing.T) {
	out := captureOutput(t)

	run(&fakeExec{}, "help")
	assert.Contains(t, *out, "Available commands: login, codelogin, exit")

	*out = nil
	run(&fakeExec{loggedIn: true, r: models.RoleTechnician}, "help 1", "help 7", "help x")
	assert.Contains(t, *out, "My shifts: shifts, addshift, locations")
	assert.Contains(t, *out, "Book: locations, availability, hold, holds, unhold, clearholds, checkout")

	found := false
	for _, l := range *out {
		if strings.HasPrefix(l, "Menu (technician)") {
			found = true
		}
	}
	assert.True(t, found, "non numeric section prints the whole menu")
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "server unavailable, try again later", describe(fmt.Errorf("x: %w", client.ErrUnavailable)))
	assert.Equal(t, "usage: hold <n>", describe(usage("hold <n>")))
}
