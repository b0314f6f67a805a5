package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
)

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s) ", a.userName)
}

// runREPL reads one command per line until EOF, "exit" or "quit". Command
// errors are printed and the loop keeps going.
func (a *App) runREPL(ctx context.Context) {
	for {
		a.printf("tetris %s> ", a.getStatus())

		line, err := a.reader.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			a.printf("\n")
			return
		}

		cmd, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
		rest = strings.TrimSpace(rest)
		if cmd == "" {
			continue
		}

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				a.printf("Available commands: save <json>, load [username], top, ping, logout, exit\n")
			} else {
				a.printf("Available commands: register, login, load <username>, top, ping, exit\n")
			}
		case "register":
			cmdErr = a.Register(ctx)
		case "login":
			cmdErr = a.Login(ctx)
		case "logout":
			a.Logout()
		case "save":
			cmdErr = a.Save(ctx, rest)
		case "load":
			cmdErr = a.Load(ctx, rest)
		case "top", "leaderboard":
			cmdErr = a.Top(ctx)
		case "ping":
			cmdErr = a.Ping(ctx)
		case "exit", "quit":
			a.printf("Bye!\n")
			return
		default:
			a.printf("Unknown command: %s\n", cmd)
		}

		if cmdErr != nil {
			a.printf("Error: %v\n", cmdErr)
		}
	}
}
