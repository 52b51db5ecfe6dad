package config

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/multierr"
)

// HTTP configures http-watchdog.
type HTTP struct {
	Watchdog
	URI         string
	CheckStatus bool
}

// ParseHTTP parses http-watchdog arguments (without the program name).
func ParseHTTP(args []string, out io.Writer) (HTTP, error) {
	var c HTTP
	fs := newFlagSet("http-watchdog", "URI", "HTTP watchdog for exabgp", out)
	c.AddFlags(fs, "http")
	fs.BoolVar(&c.CheckStatus, "check-status", false, "also require an HTTP status below 400")
	if err := fs.Parse(args); err != nil {
		return c, err
	}

	err := c.finish()
	switch pos := fs.Args(); len(pos) {
	case 0:
		err = multierr.Append(err, errors.New("URI is required"))
	case 1:
		c.URI = pos[0]
	default:
		err = multierr.Append(err, fmt.Errorf("unexpected arguments: %v", pos[1:]))
	}
	return c, err
}
