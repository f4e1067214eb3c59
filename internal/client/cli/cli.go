// Package cli implements the client commands.
package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/courtside/statsync/internal/client/connectivity"
	"github.com/courtside/statsync/internal/client/repo"
	"github.com/courtside/statsync/internal/client/sync"
	"github.com/courtside/statsync/internal/models"
)

// Deps carries what commands need; Out is injected so tests can capture
// output. Watcher and Prober are only set for the watch command.
type Deps struct {
	Out     io.Writer
	Repo    repo.Repository
	Manager *sync.Manager
	Watcher *sync.Watcher
	Prober  *connectivity.Prober
	OwnerID string
}

// PrintUsage writes the top-level usage text
func PrintUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: statsync [flags] <command> [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  create   Create a new game")
	fmt.Fprintln(w, "  get      Show a game")
	fmt.Fprintln(w, "  list     List your games")
	fmt.Fprintln(w, "  update   Update a game's score, clock or status")
	fmt.Fprintln(w, "  delete   Delete a game")
	fmt.Fprintln(w, "  sync     Force a sync pass")
	fmt.Fprintln(w, "  watch    Keep running and sync automatically")
	fmt.Fprintln(w, "  status   Show pending changes and last sync time")
}

// printGame writes a one-game summary
func printGame(w io.Writer, game *models.Game) {
	fmt.Fprintf(w, "%s\n", game.ID)
	fmt.Fprintf(w, "  %s %d : %d %s\n", game.HomeTeam.Name, game.HomeTeam.Score, game.AwayTeam.Score, game.AwayTeam.Name)
	fmt.Fprintf(w, "  status: %s, quarter %d, %ds remaining\n", game.Status, game.Quarter, game.TimeRemaining)
	fmt.Fprintf(w, "  date: %s, version: %d\n", game.Date.Format(time.RFC3339), game.Version)
}
