package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/courtside/statsync/internal/client/sync"
)

// RunSync forces a drain pass: statsync sync
func RunSync(ctx context.Context, deps Deps, args []string) error {
	result, err := deps.Manager.Drain(ctx)
	if err != nil {
		if errors.Is(err, sync.ErrDrainInProgress) {
			fmt.Fprintln(deps.Out, "A sync pass is already running.")
			return nil
		}
		return fmt.Errorf("sync failed: %w", err)
	}

	fmt.Fprintln(deps.Out, "Sync complete:")
	fmt.Fprintf(deps.Out, "  attempted: %d\n", result.Attempted)
	fmt.Fprintf(deps.Out, "  applied:   %d\n", result.Applied)
	fmt.Fprintf(deps.Out, "  deleted:   %d\n", result.Deleted)
	fmt.Fprintf(deps.Out, "  discarded: %d\n", result.Discarded)
	fmt.Fprintf(deps.Out, "  failed:    %d\n", result.Failed)
	return nil
}
