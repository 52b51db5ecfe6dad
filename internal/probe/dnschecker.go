package probe

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/miekg/dns"
)

// DNSChecker sends a single query for Record/QType straight to Server,
// bypassing the system resolver, hosts file and any cache. Attempts are
// layered on top with RetryChecker. Timeout bounds one attempt as a whole,
// including the TCP retry of a truncated UDP answer.
type DNSChecker struct {
	Server  string // host:port
	Record  string // fully qualified
	QType   uint16
	Timeout time.Duration

	udp *dns.Client
}

// NewDNSChecker validates the server address and query type up front; a bad
// value here would otherwise surface as a permanently failing probe.
func NewDNSChecker(server string, port uint16, record, qtype string, timeout time.Duration) (*DNSChecker, error) {
	ip := net.ParseIP(server)
	if ip == nil {
		return nil, fmt.Errorf("dns server %q is not an IP address", server)
	}
	t, err := ParseQueryType(qtype)
	if err != nil {
		return nil, err
	}
	if _, ok := dns.IsDomainName(record); !ok || record == "" {
		return nil, fmt.Errorf("invalid record name %q", record)
	}
	return &DNSChecker{
		Server:  net.JoinHostPort(ip.String(), strconv.Itoa(int(port))),
		Record:  dns.Fqdn(record),
		QType:   t,
		Timeout: timeout,
		udp:     &dns.Client{Net: "udp", Timeout: timeout},
	}, nil
}

// ParseQueryType resolves a mnemonic such as "A", "mx" or "ANY".
func ParseQueryType(s string) (uint16, error) {
	t, ok := dns.StringToType[strings.ToUpper(strings.TrimSpace(s))]
	if !ok || t == dns.TypeNone {
		return 0, fmt.Errorf("unknown query type %q", s)
	}
	return t, nil
}

func (d *DNSChecker) Check(ctx context.Context) CheckResult {
	start := time.Now()
	deadline := start.Add(d.Timeout)
	ctx, cancel := context.WithDeadline(ctx, deadline)
	defer cancel()

	m := new(dns.Msg)
	m.SetQuestion(d.Record, d.QType)
	m.RecursionDesired = true

	resp, _, err := d.udp.ExchangeContext(ctx, m, d.Server)
	if err == nil && resp.Truncated {
		// TCP only gets what is left of the attempt's budget
		if left := time.Until(deadline); left > 0 {
			tcp := &dns.Client{Net: "tcp", Timeout: left}
			resp, _, err = tcp.ExchangeContext(ctx, m, d.Server)
		} else {
			resp, err = nil, context.DeadlineExceeded
		}
	}
	latency := time.Since(start).Seconds() * 1000

	class, transient := classify(resp, err)
	msg := class
	if err != nil {
		msg = class + ": " + err.Error()
	}
	return CheckResult{
		Name:      dns.TypeToString[d.QType],
		Success:   class == ClassResolves,
		Message:   msg,
		LatencyMS: latency,
		Transient: transient,
	}
}
