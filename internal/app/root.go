package app

import (
	"context"

	"github.com/oshokin/tracefetch/internal/config"
	"github.com/oshokin/tracefetch/internal/engine"
	"github.com/oshokin/tracefetch/internal/logger"
	"github.com/oshokin/tracefetch/internal/service/fetch"
)

// ExecuteRootCommand is the entry point for the application.
// It builds the fetch service on top of the HTTP transfer engine
// and runs one traced transfer per URL.
func ExecuteRootCommand(ctx context.Context, cfg *config.Config, urls []string) {
	s := fetch.NewService(cfg, engine.NewHTTPEngine)

	// Ensure statistics are ALWAYS printed, even on panic.
	defer func() {
		if r := recover(); r != nil {
			logger.Errorf(ctx, "Panic recovered: %v", r)
		}

		s.PrintTransferSummary(ctx)
	}()

	s.FetchURLs(ctx, urls)
}
