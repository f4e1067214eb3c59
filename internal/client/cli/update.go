package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"

	"github.com/courtside/statsync/internal/client/repo"
	"github.com/courtside/statsync/internal/models"
)

// RunUpdate applies a partial update:
// statsync update <id> [--home-score N] [--away-score N] [--quarter N] [--time-remaining N] [--status S]
func RunUpdate(ctx context.Context, deps Deps, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing game id. Usage: statsync update <id> [flags]")
	}
	id := args[0]

	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	fs.SetOutput(deps.Out)
	homeScore := fs.Int("home-score", -1, "Home team score")
	awayScore := fs.Int("away-score", -1, "Away team score")
	quarter := fs.Int("quarter", 0, "Current quarter")
	timeRemaining := fs.Int("time-remaining", -1, "Seconds remaining in the quarter")
	status := fs.String("status", "", "Game status (scheduled|in_progress|completed|overtime)")
	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	var update repo.GameUpdate
	changed := false

	if *homeScore >= 0 {
		update.HomeScore = homeScore
		changed = true
	}
	if *awayScore >= 0 {
		update.AwayScore = awayScore
		changed = true
	}
	if *quarter > 0 {
		update.Quarter = quarter
		changed = true
	}
	if *timeRemaining >= 0 {
		update.TimeRemaining = timeRemaining
		changed = true
	}
	if *status != "" {
		gameStatus, err := parseStatus(*status)
		if err != nil {
			return err
		}
		update.Status = &gameStatus
		changed = true
	}

	if !changed {
		return fmt.Errorf("nothing to update; pass at least one flag")
	}

	if err := deps.Repo.Update(ctx, id, update); err != nil {
		if errors.Is(err, repo.ErrNotFoundOffline) {
			return fmt.Errorf("game %s is not available offline", id)
		}
		return fmt.Errorf("failed to update game: %w", err)
	}

	fmt.Fprintf(deps.Out, "Updated game %s\n", id)
	return nil
}

func parseStatus(s string) (models.GameStatus, error) {
	switch models.GameStatus(s) {
	case models.StatusScheduled, models.StatusInProgress, models.StatusCompleted, models.StatusOvertime:
		return models.GameStatus(s), nil
	default:
		return "", fmt.Errorf("unknown status: %s", s)
	}
}
