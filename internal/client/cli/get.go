package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/courtside/statsync/internal/client/repo"
)

// RunGet shows one game: statsync get <id>
func RunGet(ctx context.Context, deps Deps, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing game id. Usage: statsync get <id>")
	}

	game, err := deps.Repo.Get(ctx, args[0])
	if err != nil {
		if errors.Is(err, repo.ErrNotFoundOffline) {
			return fmt.Errorf("game %s is not available offline", args[0])
		}
		return fmt.Errorf("failed to get game: %w", err)
	}

	printGame(deps.Out, game)
	return nil
}
