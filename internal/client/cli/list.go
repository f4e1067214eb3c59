package cli

import (
	"context"
	"fmt"
)

// RunList lists the owner's games: statsync list
func RunList(ctx context.Context, deps Deps, args []string) error {
	games, err := deps.Repo.ListByOwner(ctx, deps.OwnerID)
	if err != nil {
		return fmt.Errorf("failed to list games: %w", err)
	}

	if len(games) == 0 {
		fmt.Fprintln(deps.Out, "No games found.")
		return nil
	}

	fmt.Fprintf(deps.Out, "Found %d game(s):\n\n", len(games))
	for _, game := range games {
		printGame(deps.Out, game)
		fmt.Fprintln(deps.Out)
	}
	return nil
}
