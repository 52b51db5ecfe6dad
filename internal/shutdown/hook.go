// Package shutdown runs the stop hook when the process is asked to terminate.
//
// Termination is treated as a down transition for hook purposes only: the
// stop script runs whatever the last probe said, and no withdraw line is
// printed, since that line belongs to the polling loop's own edge detection.
package shutdown

import (
	"os"
	"os/signal"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"

	"github.com/hamed0406/bgpwatchdog/internal/script"
)

// Hook fires at most once, however many signals arrive.
type Hook struct {
	Logger  *zap.Logger
	Scripts script.Launcher
	Script  string
	Exit    func(code int)

	once sync.Once
	sigs chan os.Signal
	stop chan struct{}
}

// New returns nil when stopScript is empty: with nothing to run, the
// runtime's default signal handling applies.
func New(logger *zap.Logger, scripts script.Launcher, stopScript string) *Hook {
	if stopScript == "" {
		return nil
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hook{
		Logger:  logger,
		Scripts: scripts,
		Script:  stopScript,
		Exit:    os.Exit,
	}
}

// Register installs a hook for SIGINT and SIGTERM. It returns nil, and
// installs nothing, when stopScript is empty.
func Register(logger *zap.Logger, scripts script.Launcher, stopScript string) *Hook {
	h := New(logger, scripts, stopScript)
	if h != nil {
		h.Listen(unix.SIGINT, unix.SIGTERM)
	}
	return h
}

// Listen starts relaying the given signals to Fire.
func (h *Hook) Listen(sigs ...os.Signal) {
	h.sigs = make(chan os.Signal, 1)
	h.stop = make(chan struct{})
	signal.Notify(h.sigs, sigs...)
	go func() {
		select {
		case sig := <-h.sigs:
			h.Fire(sig)
		case <-h.stop:
		}
	}()
}

// Fire launches the stop script, flushes the logger and exits 0. Calls after
// the first are no-ops.
func (h *Hook) Fire(sig os.Signal) {
	h.once.Do(func() {
		h.Logger.Info("shutdown_signal", zap.Stringer("signal", sig), zap.String("script", h.Script))
		// launch errors are already on stderr; exit status stays 0
		_ = h.Scripts.Launch(h.Script)
		_ = h.Logger.Sync()
		h.Exit(0)
	})
}

// Stop uninstalls the signal relay. Safe on a nil Hook.
func (h *Hook) Stop() {
	if h == nil || h.sigs == nil {
		return
	}
	signal.Stop(h.sigs)
	select {
	case <-h.stop:
	default:
		close(h.stop)
	}
}
