package config

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/multierr"
)

// DNS configures dns-watchdog.
type DNS struct {
	Watchdog
	Server    string // IP address of the server to query
	Record    string // resource record to look up
	QueryType string
	Port      uint16
	Attempts  int
}

// ParseDNS parses dns-watchdog arguments (without the program name).
// Usage and parse errors are written to out; pflag.ErrHelp is returned
// for -h/--help.
func ParseDNS(args []string, out io.Writer) (DNS, error) {
	var c DNS
	fs := newFlagSet("dns-watchdog", "SERVER NAME [QUERY_TYPE]", "DNS watchdog for exabgp", out)
	c.AddFlags(fs, "dns")
	fs.Uint16Var(&c.Port, "port", 53, "dns server port")
	fs.IntVar(&c.Attempts, "attempts", 2, "number of attempts before considering the DNS server down")
	if err := fs.Parse(args); err != nil {
		return c, err
	}

	err := c.finish()
	pos := fs.Args()
	switch {
	case len(pos) < 2:
		err = multierr.Append(err, errors.New("SERVER and NAME are required"))
	case len(pos) > 3:
		err = multierr.Append(err, fmt.Errorf("unexpected arguments: %v", pos[3:]))
	default:
		c.Server, c.Record = pos[0], pos[1]
		c.QueryType = "A"
		if len(pos) == 3 {
			c.QueryType = pos[2]
		}
	}
	if c.Port == 0 {
		err = multierr.Append(err, errors.New("--port must be between 1 and 65535"))
	}
	if c.Attempts < 1 {
		err = multierr.Append(err, fmt.Errorf("--attempts must be >= 1, got %d", c.Attempts))
	}
	return c, err
}
