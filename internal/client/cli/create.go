package cli

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/courtside/statsync/internal/client/repo"
	"github.com/courtside/statsync/internal/models"
)

// RunCreate creates a new game: statsync create --home NAME --away NAME [--date RFC3339]
func RunCreate(ctx context.Context, deps Deps, args []string) error {
	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	fs.SetOutput(deps.Out)
	home := fs.String("home", "", "Home team name")
	away := fs.String("away", "", "Away team name")
	date := fs.String("date", "", "Game date (RFC3339, defaults to now)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *home == "" || *away == "" {
		return fmt.Errorf("both --home and --away are required")
	}

	gameDate := time.Now()
	if *date != "" {
		parsed, err := time.Parse(time.RFC3339, *date)
		if err != nil {
			return fmt.Errorf("invalid --date: %w", err)
		}
		gameDate = parsed
	}

	id, err := deps.Repo.Create(ctx, repo.CreateGameParams{
		OwnerID:  deps.OwnerID,
		Date:     gameDate,
		HomeTeam: models.TeamState{Name: *home},
		AwayTeam: models.TeamState{Name: *away},
	})
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}

	fmt.Fprintf(deps.Out, "Created game %s\n", id)
	return nil
}
