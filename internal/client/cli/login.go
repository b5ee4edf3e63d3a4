package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/favkeeper/internal/client/api"
	"github.com/iudanet/favkeeper/internal/client/storage"
)

func (c *Cli) runLogin(ctx context.Context) error {
	c.io.Println("=== Login ===")
	c.io.Println("")

	username, err := c.io.ReadInput("Username: ")
	if err != nil {
		return fmt.Errorf("failed to read username: %w", err)
	}

	password, err := c.io.ReadPassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	token, err := c.api.Login(ctx, username, password)
	if err != nil {
		return err
	}

	// Срок сессии берем из самого токена
	expiresAt, err := api.TokenExpiry(token)
	if err != nil {
		return fmt.Errorf("failed to read token expiry: %w", err)
	}

	session := &storage.SessionData{
		Username:  username,
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
	}

	if err := c.sessions.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	c.io.Println("")
	c.io.Println("Login successful!")
	c.io.Printf("Username: %s\n", username)
	c.io.Printf("Token expires: %s\n", expiresAt.Format(time.RFC3339))

	return nil
}
