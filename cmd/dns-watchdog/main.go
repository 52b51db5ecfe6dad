// dns-watchdog announces a route to exabgp while a DNS server answers a
// query, and withdraws it when the server stops answering.
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

func run(ctx context.Context, args []string) int {
	cfg, err := config.ParseDNS(args, os.Stderr)
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

	chk, err := probe.NewDNSChecker(cfg.Server, cfg.Port, cfg.Record, cfg.QueryType, cfg.Timeout)
	if err != nil {
		logger.Error("dns_client_init_failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "error: fail to init client: %v\n", err)
		return 1
	}
	logger.Info("dns_probe_configured",
		zap.String("server", chk.Server),
		zap.String("record", chk.Record),
		zap.String("query_type", cfg.QueryType),
		zap.Duration("timeout", cfg.Timeout),
		zap.Int("attempts", cfg.Attempts),
	)

	err = watchdog.Serve(ctx, logger, cfg.Watchdog, &probe.RetryChecker{
		Inner:    chk,
		Attempts: cfg.Attempts,
	})
	if err != nil {
		logger.Error("watchdog_exited", zap.Error(err))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
