package cli

import (
	"bufio"
	"context"
	"errors"

	"github.com/dmitrijs2005/bookit/internal/client/client"
	"github.com/dmitrijs2005/bookit/internal/client/session"
)

// Root runs the interactive session until the user exits or stdin closes.
func (a *App) Root(ctx context.Context) {
	a.printf("Welcome to bookit (type 'help' for commands)\n")

	a.checkOnline(ctx)
	if a.isLoggedIn() {
		if _, err := a.authService.Refresh(ctx); err != nil && !errors.Is(err, session.ErrNotLoggedIn) {
			if errors.Is(err, client.ErrUnauthorized) {
				a.printf("Your session has expired, please log in again\n")
			} else {
				a.log.Warn(ctx, "profile refresh failed, using cached profile", "error", err)
			}
		}
	}

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.StartOnlineStatusWatcher(watchCtx, a.config.OnlineCheckInterval)

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(a.reader))
}

// Run starts the REPL and releases local resources afterwards.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.Close(); err != nil {
			a.log.Error(ctx, "closing database", "error", err)
		}
	}()
	a.Root(ctx)
}
