package cli

import (
	"context"
	"fmt"
)

// RunDelete deletes a game: statsync delete <id>
func RunDelete(ctx context.Context, deps Deps, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing game id. Usage: statsync delete <id>")
	}

	if err := deps.Repo.Delete(ctx, args[0]); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	fmt.Fprintf(deps.Out, "Deleted game %s\n", args[0])
	return nil
}
