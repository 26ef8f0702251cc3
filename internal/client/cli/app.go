// Package cli implements the interactive command loop of the client:
// account registration and login, listing questions, asking, updating and
// deleting them, and posting answers.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"qanda-service/internal/client/api"
	"qanda-service/internal/client/config"
)

type App struct {
	config *config.Config
	api    *api.Client
	reader *bufio.Reader
	out    io.Writer
}

func NewApp(c *config.Config) *App {
	return &App{
		config: c,
		api:    api.NewClient(c.ServerEndpointAddr),
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}
}

func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to the Q&A CLI (type 'help' for commands)")

	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprint(a.out, a.prompt())
		if !scanner.Scan() {
			break
		}

		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			a.printHelp()
		case "register":
			a.register(ctx)
		case "login":
			a.login(ctx)
		case "logout":
			a.api.Logout()
			fmt.Fprintln(a.out, "Logged out")
		case "list":
			a.listQuestions(ctx, args)
		case "ask":
			a.askQuestion(ctx)
		case "update":
			a.updateQuestion(ctx, args)
		case "delete":
			a.deleteQuestion(ctx, args)
		case "answer":
			a.addAnswer(ctx, args)
		case "answers":
			a.listAnswers(ctx, args)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}

func (a *App) prompt() string {
	if a.api.IsLoggedIn() {
		return "qa (logged in)> "
	}
	return "qa> "
}

func (a *App) printHelp() {
	if a.api.IsLoggedIn() {
		fmt.Fprintln(a.out, "Available commands: list [limit offset], ask, update <id>, delete <id>, answer <question-id>, answers <question-id>, logout, exit")
	} else {
		fmt.Fprintln(a.out, "Available commands: register, login, list [limit offset], answers <question-id>, exit")
	}
}
