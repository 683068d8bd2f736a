package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	List(ctx context.Context, args []string) error
	Search(ctx context.Context, args []string) error
	Stats(ctx context.Context) error
	Add(ctx context.Context) error
	Edit(ctx context.Context, args []string) error
	Delete(ctx context.Context, args []string) error
	Show(ctx context.Context, args []string) error
	Remind(ctx context.Context, args []string) error
	Call(ctx context.Context, args []string) error
	Export(ctx context.Context, args []string) error
	Backup(ctx context.Context) error
	Import(ctx context.Context, args []string) error
	Share(ctx context.Context, args []string) error
	Lang(ctx context.Context, args []string) error
	ExportPassword(ctx context.Context, args []string) error
	Notify(ctx context.Context, args []string) error
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Passwd(ctx context.Context) error
}

const (
	helpSignedOut = "Available commands: register, login, help, exit"
	helpSignedIn  = "Available commands: list [all|15|7|2|expired] [query], search <query>, stats, " +
		"add, edit <id>, delete <id>, show <id>, remind <id>, call <id>, " +
		"export csv|xlsx, backup, import <file>, share csv|xlsx, " +
		"lang en|hi, exportpw set|remove, notify on|off, " +
		"register, login, logout, passwd, help, exit"
)

// openCommands work without a signed-in account.
var openCommands = map[string]bool{
	"help": true, "register": true, "login": true, "exit": true, "quit": true,
}

// runREPL reads commands from reader and dispatches them to a until EOF or
// "exit"/"quit". When isLoggedIn reports false only openCommands run.
// Command errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("pk %s> ", statusFn()))
		line, err := readLine(reader)
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		if !a.isLoggedIn() && !openCommands[cmd] {
			printlnFn("Please register or login first.")
			continue
		}

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpSignedIn)
			} else {
				printlnFn(helpSignedOut)
			}
		case "l", "list":
			cmdErr = a.List(ctx, args)
		case "search":
			cmdErr = a.Search(ctx, args)
		case "stats":
			cmdErr = a.Stats(ctx)
		case "add":
			cmdErr = a.Add(ctx)
		case "edit":
			cmdErr = a.Edit(ctx, args)
		case "delete", "rm":
			cmdErr = a.Delete(ctx, args)
		case "show":
			cmdErr = a.Show(ctx, args)
		case "remind":
			cmdErr = a.Remind(ctx, args)
		case "call":
			cmdErr = a.Call(ctx, args)
		case "export":
			cmdErr = a.Export(ctx, args)
		case "backup":
			cmdErr = a.Backup(ctx)
		case "import", "restore":
			cmdErr = a.Import(ctx, args)
		case "share":
			cmdErr = a.Share(ctx, args)
		case "lang":
			cmdErr = a.Lang(ctx, args)
		case "exportpw":
			cmdErr = a.ExportPassword(ctx, args)
		case "notify":
			cmdErr = a.Notify(ctx, args)
		case "register":
			cmdErr = a.Register(ctx)
		case "login":
			cmdErr = a.Login(ctx)
		case "logout":
			cmdErr = a.Logout(ctx)
		case "passwd":
			cmdErr = a.Passwd(ctx)
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			if errors.Is(cmdErr, io.EOF) {
				return
			}
			printlnFn("Error:", describe(cmdErr))
		}
	}
}
