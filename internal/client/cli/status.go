package cli

import (
	"context"
	"fmt"
	"time"
)

// RunStatus shows sync bookkeeping: statsync status
func RunStatus(ctx context.Context, deps Deps, args []string) error {
	pending, err := deps.Manager.PendingCount(ctx)
	if err != nil {
		return fmt.Errorf("failed to count pending changes: %w", err)
	}

	lastSync, err := deps.Manager.LastSyncTime(ctx)
	if err != nil {
		return fmt.Errorf("failed to read last sync time: %w", err)
	}

	fmt.Fprintf(deps.Out, "Pending changes: %d\n", pending)
	if lastSync.IsZero() {
		fmt.Fprintln(deps.Out, "Last synced: never")
	} else {
		fmt.Fprintf(deps.Out, "Last synced: %s ago\n", time.Since(lastSync).Round(time.Second))
	}
	return nil
}
