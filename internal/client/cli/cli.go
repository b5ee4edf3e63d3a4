package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/favkeeper/internal/client/api"
	"github.com/iudanet/favkeeper/internal/client/iocli"
	"github.com/iudanet/favkeeper/internal/client/storage"
)

// Cli связывает терминал, API клиент и локальное хранилище сессии
type Cli struct {
	io       iocli.IO
	api      *api.Client
	sessions storage.SessionStorage
}

// New создает CLI с внедренными зависимостями
func New(io iocli.IO, apiClient *api.Client, sessions storage.SessionStorage) *Cli {
	return &Cli{
		io:       io,
		api:      apiClient,
		sessions: sessions,
	}
}

// Run выполняет одну команду
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
	case "list":
		return c.runList(ctx)
	case "add":
		return c.runAdd(ctx, args)
	case "remove":
		return c.runRemove(ctx, args)
	default:
		c.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

// PrintUsage печатает справку по командам
func (c *Cli) PrintUsage() {
	c.io.Println("Usage: favkeeper [flags] <command>")
	c.io.Println("")
	c.io.Println("Commands:")
	c.io.Println("  register        Create a new account")
	c.io.Println("  login           Authenticate and store session")
	c.io.Println("  logout          Remove stored session")
	c.io.Println("  status          Show session status")
	c.io.Println("  list            List favorites")
	c.io.Println("  add <id>        Add favorite")
	c.io.Println("  remove <id>     Remove favorite")
	c.io.Println("")
	c.io.Println("Flags:")
	c.io.Println("  -server URL     Server URL (default http://localhost:8080)")
	c.io.Println("  -db PATH        Path to local session database")
}

// requireSession возвращает действующую сессию или понятную ошибку
func (c *Cli) requireSession(ctx context.Context) (*storage.SessionData, error) {
	session, err := c.sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil, fmt.Errorf("not authenticated. Please run 'favkeeper login' first")
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if time.Now().Unix() >= session.ExpiresAt {
		return nil, fmt.Errorf("session expired. Please run 'favkeeper login' again")
	}

	return session, nil
}
