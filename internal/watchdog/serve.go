package watchdog

import (
	"context"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/hamed0406/bgpwatchdog/internal/config"
	"github.com/hamed0406/bgpwatchdog/internal/notify"
	"github.com/hamed0406/bgpwatchdog/internal/probe"
	"github.com/hamed0406/bgpwatchdog/internal/script"
	"github.com/hamed0406/bgpwatchdog/internal/shutdown"
)

// Serve wires a checker to stdout directives, hook scripts and the
// termination hook, then polls until ctx is cancelled. In practice the
// process ends from a signal before that.
func Serve(ctx context.Context, logger *zap.Logger, cfg config.Watchdog, checker probe.Checker) error {
	return serve(ctx, logger, cfg, checker, os.Stdout)
}

func serve(ctx context.Context, logger *zap.Logger, cfg config.Watchdog, checker probe.Checker, stdout io.Writer) error {
	scripts := script.NewRunner(logger)

	hook := shutdown.Register(logger, scripts, cfg.StopScript)
	defer hook.Stop()

	e := NewEngine(logger, checker, notify.NewLines(stdout), scripts, Config{
		Name:        cfg.Name,
		Interval:    cfg.Delay,
		StartScript: cfg.StartScript,
		StopScript:  cfg.StopScript,
	})
	return e.Run(ctx)
}
