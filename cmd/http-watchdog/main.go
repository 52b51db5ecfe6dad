// http-watchdog announces a route to exabgp while an HTTP endpoint answers,
// and withdraws it when the endpoint stops answering.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/hamed0406/bgpwatchdog/internal/config"
	"github.com/hamed0406/bgpwatchdog/internal/logging"
	"github.com/hamed0406/bgpwatchdog/internal/probe"
	"github.com/hamed0406/bgpwatchdog/internal/watchdog"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:]))
}

// run returns the process exit code. It only returns once ctx is done or
// startup fails; normal termination goes through the shutdown hook.
func run(ctx context.Context, args []string) int {
	cfg, err := config.ParseHTTP(args, os.Stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 2
	}

	logger, err := logging.NewLogger(cfg.LogDir, cfg.Name, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	defer logger.Sync()

	chk, err := probe.NewHTTPChecker(logger, cfg.URI, cfg.Timeout, cfg.CheckStatus)
	if err != nil {
		logger.Error("http_client_init_failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "error: fail to init client: %v\n", err)
		return 1
	}
	logger.Info("http_probe_configured",
		zap.String("url", chk.URL),
		zap.Duration("timeout", cfg.Timeout),
		zap.Bool("check_status", cfg.CheckStatus),
	)

	if err := watchdog.Serve(ctx, logger, cfg.Watchdog, chk); err != nil {
		logger.Error("watchdog_exited", zap.Error(err))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
