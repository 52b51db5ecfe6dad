// Package script launches user hook executables without waiting for them.
package script

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"

	"go.uber.org/zap"
)

// Launcher starts a hook. Only the launch step can fail; the hook's own exit
// status is never reported back.
type Launcher interface {
	Launch(path string) error
}

type Runner struct {
	Logger *zap.Logger
	Stderr io.Writer // receives the "Error when launching" line
}

func NewRunner(logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{Logger: logger, Stderr: os.Stderr}
}

// Launch starts path with no arguments and returns as soon as the process
// exists. An empty path is a no-op. Launch failures are reported on Stderr
// and returned, and are otherwise harmless to the caller.
func (r *Runner) Launch(path string) error {
	if path == "" {
		return nil
	}
	cmd := exec.Command(path)
	// nil Stdout goes to the null device; stderr stays visible.
	cmd.Stdout = nil
	cmd.Stderr = os.Stderr
	// Own process group, so a terminal interrupt aimed at the watchdog does
	// not also reach the hook it is about to start.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	if err := cmd.Start(); err != nil {
		fmt.Fprintf(r.Stderr, "Error when launching \"%s\": %s\n", path, err)
		r.Logger.Warn("script_launch_failed", zap.String("path", path), zap.Error(err))
		return err
	}
	pid := cmd.Process.Pid
	r.Logger.Info("script_launched", zap.String("path", path), zap.Int("pid", pid))

	// reap in the background
	go func() {
		err := cmd.Wait()
		r.Logger.Debug("script_exited",
			zap.String("path", path),
			zap.Int("pid", pid),
			zap.Int("exit_code", cmd.ProcessState.ExitCode()),
			zap.Error(err),
		)
	}()
	return nil
}
