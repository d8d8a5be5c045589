package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for REPL output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface is the command surface the REPL needs. App satisfies it; tests
// use a stub.
type execIface interface {
	Plots(ctx context.Context) error
	Refresh(ctx context.Context) error
	Log(ctx context.Context, args []string) error
	Queue(ctx context.Context) error
	Sync(ctx context.Context) error
	Retry(ctx context.Context) error
	Purge(ctx context.Context, args []string) error
	History(ctx context.Context) error
	Status(ctx context.Context) error
}

const helpText = "Available commands: plots, refresh, log <plot> <type> [-image path] [notes...], " +
	"queue, sync, retry, purge <local-id>, history, status, exit"

// runREPL reads commands from scanner and dispatches them to a until EOF,
// "exit" or "quit". Command errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("farmsync %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			printlnFn(helpText)
		case "plots":
			err = a.Plots(ctx)
		case "refresh":
			err = a.Refresh(ctx)
		case "log":
			err = a.Log(ctx, args)
		case "queue", "q":
			err = a.Queue(ctx)
		case "sync":
			err = a.Sync(ctx)
		case "retry":
			err = a.Retry(ctx)
		case "purge":
			err = a.Purge(ctx, args)
		case "history":
			err = a.History(ctx)
		case "status":
			err = a.Status(ctx)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			printlnFn("Error:", err)
		}
	}
}
