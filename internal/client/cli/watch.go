package cli

import (
	"context"
	"errors"
	"fmt"
)

// RunWatch keeps the client running until the context is cancelled:
// statsync watch
//
// The prober feeds connectivity transitions into the tracker and the watcher
// drains pending changes on recovery and on the periodic check. Stopping via
// the context is the normal exit, not an error.
func RunWatch(ctx context.Context, deps Deps, args []string) error {
	fmt.Fprintln(deps.Out, "Watching for connectivity; press Ctrl+C to stop.")

	go func() {
		_ = deps.Prober.Run(ctx)
	}()

	if err := deps.Watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("watch failed: %w", err)
	}
	return nil
}
