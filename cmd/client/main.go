package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/courtside/statsync/internal/client/cli"
	"github.com/courtside/statsync/internal/client/connectivity"
	"github.com/courtside/statsync/internal/client/remote"
	"github.com/courtside/statsync/internal/client/repo"
	"github.com/courtside/statsync/internal/client/storage/boltdb"
	"github.com/courtside/statsync/internal/client/sync"
	"github.com/courtside/statsync/internal/config"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	offline := flag.Bool("offline", false, "Force offline mode")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage(os.Stderr)
		os.Exit(1)
	}

	if err := run(args, *offline); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, forceOffline bool) error {
	ctx := context.Background()

	cfg, err := config.LoadClient()
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	clock := clockwork.NewRealClock()

	boltStorage, err := boltdb.New(ctx, cfg.DBPath, clock, logger)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	store := remote.NewHTTPStore(cfg.ServerURL)

	online := !forceOffline && serverReachable(ctx, cfg.ServerURL)
	tracker := connectivity.NewTracker(online)

	repository := repo.NewRepository(store, boltStorage, boltStorage, boltStorage, tracker, clock, logger)
	manager := sync.NewManager(store, boltStorage, boltStorage, boltStorage, clock, logger)

	deps := cli.Deps{
		Out:     os.Stdout,
		Repo:    repository,
		Manager: manager,
		OwnerID: cfg.OwnerID,
	}

	command := args[0]
	rest := args[1:]

	switch command {
	case "create":
		return cli.RunCreate(ctx, deps, rest)
	case "get":
		return cli.RunGet(ctx, deps, rest)
	case "list":
		return cli.RunList(ctx, deps, rest)
	case "update":
		return cli.RunUpdate(ctx, deps, rest)
	case "delete":
		return cli.RunDelete(ctx, deps, rest)
	case "sync":
		if !online {
			return fmt.Errorf("cannot sync while offline")
		}
		return cli.RunSync(ctx, deps, rest)
	case "watch":
		watchCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()
		deps.Prober = connectivity.NewProber(func(ctx context.Context) bool {
			return serverReachable(ctx, cfg.ServerURL)
		}, tracker, clock, logger)
		deps.Watcher = sync.NewWatcher(manager, tracker, clock, logger)
		return cli.RunWatch(watchCtx, deps, rest)
	case "status":
		return cli.RunStatus(ctx, deps, rest)
	default:
		cli.PrintUsage(os.Stderr)
		return fmt.Errorf("unknown command: %s", command)
	}
}

// serverReachable probes the health endpoint to decide the starting
// connectivity state
func serverReachable(ctx context.Context, baseURL string) bool {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/api/v1/health", nil)
	if err != nil {
		return false
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return false
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	return resp.StatusCode == http.StatusOK
}

func printVersion() {
	fmt.Printf("statsync client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
