package probe

import "context"

// CheckResult is the unified result of a single probe.
//
// Only Success drives the watchdog. The rest is diagnostics:
//   - StatusCode: HTTP status code when available; 0 for transport/DNS errors.
//   - Message: HTTP status line, DNS outcome class or transport error text.
//   - Transient: the failure may clear on an immediate retry (timeouts, network
//     errors, SERVFAIL). Definitive answers such as NXDOMAIN leave it false.
type CheckResult struct {
	Name       string
	Success    bool
	Message    string
	LatencyMS  float64
	StatusCode int
	Transient  bool
}

// Checker probes one preconfigured target. Implementations never return an
// error: every failure is folded into a CheckResult with Success == false,
// and Check must return within the checker's own timeout.
type Checker interface {
	Check(ctx context.Context) CheckResult
}
