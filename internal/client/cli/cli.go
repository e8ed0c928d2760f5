package cli

import (
	"context"
	"fmt"

	"github.com/finkeeper/finkeeper/internal/client/api"
	"github.com/finkeeper/finkeeper/internal/client/iocli"
	"github.com/finkeeper/finkeeper/internal/client/storage"
)

type Cli struct {
	io          iocli.IO
	apiClient   *api.Client
	authStorage storage.AuthStorage
}

func New(io iocli.IO, apiClient *api.Client, authStorage storage.AuthStorage) *Cli {
	return &Cli{
		io:          io,
		apiClient:   apiClient,
		authStorage: authStorage,
	}
}

// Run выполняет команду и возвращает ошибку для обработки в main
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register":
		return c.runRegister(ctx)
	case "login":
		return c.runLogin(ctx)
	case "logout":
		return c.runLogout(ctx)
	case "status":
		return c.runStatus(ctx)
	case "add":
		return c.runAdd(ctx)
	case "list":
		return c.runList(ctx)
	case "delete":
		return c.runDelete(ctx, args)
	default:
		return fmt.Errorf("unknown command: %s", command)
	}
}

func PrintUsage() {
	fmt.Println("FinKeeper Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  finkeeper [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version     Show version information")
	fmt.Println("  --server URL  Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH     Path to local database (default: finkeeper-client.db)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register      Register new user")
	fmt.Println("  login         Login to server")
	fmt.Println("  logout        Forget saved session")
	fmt.Println("  status        Show authentication status")
	fmt.Println("  add           Add new expense")
	fmt.Println("  list          List expenses and total")
	fmt.Println("  delete <id>   Delete expense by id")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  finkeeper register")
	fmt.Println("  finkeeper login")
	fmt.Println("  finkeeper add")
	fmt.Println("  finkeeper list")
	fmt.Println("  finkeeper delete 42")
	fmt.Println("  finkeeper --server https://example.com login")
}
