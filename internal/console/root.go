package console

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to
// operate. The real App type satisfies this interface; tests can provide
// a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	getStatus() string
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Show(ctx context.Context, entity, term, filter string) error
	Watch(ctx context.Context, entity, term, filter string) error
}

// Root starts the interactive shell on stdin.
func (a *App) Root(ctx context.Context) {
	fmt.Println("FleetDesk console (type 'help' for commands)")
	runREPL(ctx, a, bufio.NewScanner(os.Stdin))
}

// runREPL reads a line from the scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are
// reported back to the user. The loop exits on scanner EOF or when the
// user types "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers
// print or log their own errors. This keeps the loop focused on I/O.
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("fleetdesk %s> ", a.getStatus()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		arg := func(i int) string {
			if i < len(args) {
				return args[i]
			}
			return ""
		}

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: list <entity> [filter], search <entity> <term> [filter], watch <entity> [term] [filter], whoami, logout, exit")
				printlnFn("Entities: users, roles, equipments, maintenance, timesheet, vendors, logs")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "l", "list":
			if len(args) == 0 {
				printlnFn("Usage: list <entity> [filter]")
				continue
			}
			_ = a.Show(ctx, arg(0), "", arg(1))

		case "search":
			if len(args) < 2 {
				printlnFn("Usage: search <entity> <term> [filter]")
				continue
			}
			_ = a.Show(ctx, arg(0), arg(1), arg(2))

		case "watch":
			if len(args) == 0 {
				printlnFn("Usage: watch <entity> [term] [filter]")
				continue
			}
			_ = a.Watch(ctx, arg(0), arg(1), arg(2))

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
