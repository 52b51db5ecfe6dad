package probe

import (
	"context"
	"errors"
	"net"

	"github.com/miekg/dns"
)

// Outcome classes reported in CheckResult.Message for DNS probes.
const (
	ClassResolves = "RESOLVES"
	ClassNoRecord = "NO_RECORD"
	ClassNXDomain = "NXDOMAIN"
	ClassServFail = "SERVFAIL"
	ClassRefused  = "REFUSED"
	ClassTimeout  = "TIMEOUT"
	ClassNetwork  = "NETWORK_ERROR"
)

// classify maps one exchange to an outcome class. transient reports whether
// the same query is worth repeating right away.
func classify(resp *dns.Msg, err error) (class string, transient bool) {
	if err != nil {
		var ne net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
			return ClassTimeout, true
		}
		return ClassNetwork, true
	}
	switch resp.Rcode {
	case dns.RcodeSuccess:
		if len(resp.Answer) > 0 {
			return ClassResolves, false
		}
		return ClassNoRecord, false
	case dns.RcodeNameError:
		return ClassNXDomain, false
	case dns.RcodeServerFailure:
		return ClassServFail, true
	case dns.RcodeRefused:
		return ClassRefused, false
	}
	if s, ok := dns.RcodeToString[resp.Rcode]; ok {
		return s, false
	}
	return "RCODE_UNKNOWN", false
}
