// Command portalctl drives the college portal from a terminal: sign in, browse
// rosters and announcements, and manage them as an administrator.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/noah-isme/college-portal/internal/apiclient"
	"github.com/noah-isme/college-portal/pkg/config"
	"github.com/noah-isme/college-portal/pkg/logger"
	"github.com/noah-isme/college-portal/pkg/tokenstore"
)

func main() {
	os.Exit(realMain())
}

func realMain() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		return 1
	}

	logr, err := logger.ForCLI(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		return 1
	}
	defer logr.Sync() //nolint:errcheck

	store, closeStore, err := tokenstore.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open token store: %v\n", err)
		return 1
	}
	defer closeStore() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{
		api:         apiclient.NewFromConfig(cfg.API, store, logr, nil),
		store:       store,
		logger:      logr,
		flash:       cfg.Portal.FlashDuration,
		noticeLimit: cfg.Portal.AnnouncementsLimit,
		stdin:       os.Stdin,
		stdout:      os.Stdout,
		stderr:      os.Stderr,
	}
	return a.run(ctx, os.Args[1:])
}
