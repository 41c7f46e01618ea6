package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	ShowProfile(ctx context.Context) error
	EditProfile(ctx context.Context) error
	SetAvatar(ctx context.Context) error
	SetBanner(ctx context.Context) error
	ResetProfile(ctx context.Context) error
	ShowCreator(ctx context.Context, id string) error
	Publish(ctx context.Context) error
	ListWorks(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the PensUp CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Signed out:
//	  - help           — show available commands
//	  - register       — create an account and sign in
//	  - login          — sign in
//	  - creator <id>   — view a creator's page
//	  - exit | quit    — leave the program
//
//	Signed in:
//	  - help           — show available commands
//	  - whoami         — show the current user
//	  - profile        — show your profile
//	  - edit           — edit name, tags and bio
//	  - avatar         — set the avatar from an image file
//	  - banner         — set the background from an image file
//	  - reset          — restore the default profile
//	  - creator <id>   — view a creator's page
//	  - publish        — publish a work
//	  - works          — list your published works
//	  - logout         — sign out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("pensup> %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: whoami, profile, edit, avatar, banner, reset, creator <id>, publish, works, logout, exit")
			} else {
				printlnFn("Available commands: register, login, creator <id>, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "profile":
			_ = a.ShowProfile(ctx)

		case "edit":
			_ = a.EditProfile(ctx)

		case "avatar":
			_ = a.SetAvatar(ctx)

		case "banner":
			_ = a.SetBanner(ctx)

		case "reset":
			_ = a.ResetProfile(ctx)

		case "creator":
			if len(args) == 0 {
				printlnFn("Usage: creator <id>")
				continue
			}
			_ = a.ShowCreator(ctx, args[0])

		case "publish":
			_ = a.Publish(ctx)

		case "works":
			_ = a.ListWorks(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
