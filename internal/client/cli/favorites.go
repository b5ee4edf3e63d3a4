package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runList(ctx context.Context) error {
	session, err := c.requireSession(ctx)
	if err != nil {
		return err
	}

	favs, err := c.api.ListFavorites(ctx, session.Token)
	if err != nil {
		return err
	}

	c.io.Println("=== Favorites ===")
	c.io.Println("")

	if len(favs) == 0 {
		c.io.Println("(no favorites yet)")
		return nil
	}

	for _, id := range favs {
		c.io.Printf("  %s\n", id)
	}
	c.io.Println("")
	c.io.Printf("Total: %d\n", len(favs))

	return nil
}

func (c *Cli) runAdd(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing id. Usage: favkeeper add <id>")
	}
	id := args[0]

	session, err := c.requireSession(ctx)
	if err != nil {
		return err
	}

	if err := c.api.AddFavorite(ctx, session.Token, id); err != nil {
		return err
	}

	c.io.Printf("Added %q to favorites.\n", id)
	return nil
}

func (c *Cli) runRemove(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing id. Usage: favkeeper remove <id>")
	}
	id := args[0]

	session, err := c.requireSession(ctx)
	if err != nil {
		return err
	}

	if err := c.api.RemoveFavorite(ctx, session.Token, id); err != nil {
		return err
	}

	c.io.Printf("Removed %q from favorites.\n", id)
	return nil
}
