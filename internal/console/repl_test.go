package console

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	shows [][3]string
}

func (f *fakeExec) isLoggedIn() bool  { return f.loggedIn }
func (f *fakeExec) getStatus() string { return "(test)" }
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Whoami(ctx context.Context) error {
	f.calls = append(f.calls, "whoami")
	return nil
}
func (f *fakeExec) Show(ctx context.Context, entity, term, filter string) error {
	f.calls = append(f.calls, "show")
	f.shows = append(f.shows, [3]string{entity, term, filter})
	return nil
}
func (f *fakeExec) Watch(ctx context.Context, entity, term, filter string) error {
	f.calls = append(f.calls, "watch")
	f.shows = append(f.shows, [3]string{entity, term, filter})
	return nil
}

func muteOutput(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	muteOutput(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"whoami",
		"list users",
		"search equipments Grader Normal",
		"watch users admin",
		"foobar",
		"logout",
		"exit",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, bufio.NewScanner(input))

	assert.Equal(t, []string{"login", "whoami", "show", "show", "watch", "logout"}, exec.calls)
	assert.Equal(t, [][3]string{
		{"users", "", ""},
		{"equipments", "Grader", "Normal"},
		{"users", "admin", ""},
	}, exec.shows)
}

func TestRunREPL_UsageErrorsDoNotDispatch(t *testing.T) {
	muteOutput(t)

	input := strings.NewReader(strings.Join([]string{
		"list",
		"search users",
		"watch",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, bufio.NewScanner(input))

	assert.Empty(t, exec.calls)
}

func TestRunREPL_ExitsOnEOF(t *testing.T) {
	muteOutput(t)

	exec := &fakeExec{}
	runREPL(context.Background(), exec, bufio.NewScanner(strings.NewReader("help\n")))

	assert.Empty(t, exec.calls)
}
