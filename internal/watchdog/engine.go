package watchdog

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/hamed0406/bgpwatchdog/internal/notify"
	"github.com/hamed0406/bgpwatchdog/internal/probe"
	"github.com/hamed0406/bgpwatchdog/internal/script"
)

// State is the latched health of the watched resource.
type State bool

const (
	Down State = false
	Up   State = true
)

func (s State) String() string {
	if s {
		return "up"
	}
	return "down"
}

// Transition is what a single poll cycle did.
type Transition int

const (
	Steady Transition = iota
	Announced
	Withdrawn
)

func (t Transition) String() string {
	switch t {
	case Announced:
		return "announced"
	case Withdrawn:
		return "withdrawn"
	}
	return "steady"
}

type Config struct {
	Name        string
	Interval    time.Duration
	StartScript string
	StopScript  string
}

// Engine polls one Checker and turns edges of its boolean outcome into
// directives and hook launches. It is not safe for concurrent use; the
// shutdown path never touches it.
type Engine struct {
	Logger   *zap.Logger
	Checker  probe.Checker
	Notifier notify.Notifier
	Scripts  script.Launcher
	Config   Config

	state State
}

func NewEngine(
	logger *zap.Logger,
	checker probe.Checker,
	notifier notify.Notifier,
	scripts script.Launcher,
	cfg Config,
) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Interval <= 0 {
		cfg.Interval = time.Second
	}
	return &Engine{
		Logger:   logger,
		Checker:  checker,
		Notifier: notifier,
		Scripts:  scripts,
		Config:   cfg,
		state:    Down,
	}
}

// State returns the outcome of the last completed cycle, Down before the
// first one.
func (e *Engine) State() State { return e.state }

// Run probes immediately, then once per Interval after each probe returns,
// until ctx is cancelled.
func (e *Engine) Run(ctx context.Context) error {
	e.Logger.Info("watchdog_started",
		zap.String("name", e.Config.Name),
		zap.Duration("interval", e.Config.Interval),
	)
	timer := time.NewTimer(e.Config.Interval)
	defer timer.Stop()

	for {
		if err := ctx.Err(); err != nil {
			e.Logger.Info("watchdog_stopped", zap.Stringer("state", e.state))
			return err
		}
		e.Step(ctx)

		timer.Reset(e.Config.Interval)
		select {
		case <-ctx.Done():
			e.Logger.Info("watchdog_stopped", zap.Stringer("state", e.state))
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// Step runs one probe and applies the transition rule.
func (e *Engine) Step(ctx context.Context) Transition {
	out := e.Checker.Check(ctx)
	e.Logger.Debug("watchdog_checked",
		zap.Bool("up", out.Success),
		zap.Int("status", out.StatusCode),
		zap.Float64("latency_ms", out.LatencyMS),
		zap.String("reason", out.Message),
	)

	switch {
	case out.Success && e.state == Down:
		e.edge(ctx, notify.Announce, e.Config.StartScript, out)
		e.state = Up
		return Announced
	case !out.Success && e.state == Up:
		e.edge(ctx, notify.Withdraw, e.Config.StopScript, out)
		e.state = Down
		return Withdrawn
	}
	return Steady
}

// edge emits the directive and launches the hook. Neither failure affects
// the state change that follows.
func (e *Engine) edge(ctx context.Context, d notify.Directive, hook string, out probe.CheckResult) {
	e.Logger.Info("watchdog_transition",
		zap.String("name", e.Config.Name),
		zap.String("directive", string(d)),
		zap.String("reason", out.Message),
	)
	if err := e.Notifier.Send(ctx, d, e.Config.Name); err != nil {
		e.Logger.Error("directive_write_failed", zap.String("directive", string(d)), zap.Error(err))
	}
	// already reported by the launcher
	_ = e.Scripts.Launch(hook)
}
