package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/multierr"
)

// Watchdog holds the settings every watchdog variant shares.
type Watchdog struct {
	Name        string        // label printed in announce/withdraw lines
	Timeout     time.Duration // per-probe timeout
	Delay       time.Duration // sleep between probes
	StartScript string        // run on a down->up edge
	StopScript  string        // run on an up->down edge and on termination
	LogDir      string        // empty means stderr
	LogLevel    string

	timeoutSec float64
	delaySec   float64
}

// AddFlags binds the shared flags to fs.
func (w *Watchdog) AddFlags(fs *pflag.FlagSet, defaultName string) {
	fs.StringVarP(&w.Name, "name", "n", defaultName, "watchdog name to print in messages")
	fs.Float64VarP(&w.timeoutSec, "timeout", "t", 1, "probe timeout in seconds")
	fs.Float64Var(&w.delaySec, "delay", 1, "delay between tests in seconds")
	fs.StringVar(&w.StartScript, "start-script", "", "script to trigger when announcement starts")
	fs.StringVar(&w.StopScript, "stop-script", "", "script to trigger when announcement stops")
	fs.StringVar(&w.LogDir, "log-dir", "", "write rotated JSON logs to this directory instead of stderr")
	fs.StringVar(&w.LogLevel, "log-level", "info", "log level (debug, info, warn, error)")
}

func (w *Watchdog) finish() error {
	var err error
	if w.Name == "" {
		err = multierr.Append(err, errors.New("--name must not be empty"))
	}
	if w.timeoutSec <= 0 {
		err = multierr.Append(err, fmt.Errorf("--timeout must be > 0, got %v", w.timeoutSec))
	}
	if w.delaySec <= 0 {
		err = multierr.Append(err, fmt.Errorf("--delay must be > 0, got %v", w.delaySec))
	}
	w.Timeout = Seconds(w.timeoutSec)
	w.Delay = Seconds(w.delaySec)
	return err
}

// Seconds converts fractional seconds to a Duration.
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func newFlagSet(name, args, about string, out io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SortFlags = false
	if out == nil {
		out = os.Stderr
	}
	fs.SetOutput(out)
	fs.Usage = func() {
		fmt.Fprintf(out, "%s\n\nUsage: %s [flags] %s\n\nFlags:\n", about, name, args)
		fs.PrintDefaults()
	}
	return fs
}
