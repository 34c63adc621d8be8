package cli

import (
	"context"
	"fmt"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Authentication Status ===")
	c.io.Println()

	sess, ok, err := c.sessions.Restore(ctx)
	if err != nil {
		return fmt.Errorf("failed to check authentication: %w", err)
	}

	if !ok {
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'chemexplorer login' to authenticate.")
		return nil
	}

	c.io.Println("Status: Authenticated")
	c.io.Printf("Username: %s\n", sess.Username)
	c.io.Println()
	c.io.Println("Note: the stored token is trusted without contacting the server.")
	c.io.Println("If it has expired, the next search will ask you to log in again.")

	return nil
}
