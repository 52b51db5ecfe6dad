package config

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/multierr"
)

func TestParseDNS_ParsesAndDefaults(t *testing.T) {
	cfg, err := ParseDNS([]string{"192.0.2.53", "www.example.com"}, io.Discard)
	if err != nil {
		t.Fatalf("ParseDNS: %v", err)
	}
	if cfg.Server != "192.0.2.53" || cfg.Record != "www.example.com" {
		t.Fatalf("positionals wrong: %+v", cfg)
	}
	if cfg.QueryType != "A" || cfg.Port != 53 || cfg.Attempts != 2 {
		t.Fatalf("dns defaults wrong: %+v", cfg)
	}
	if cfg.Name != "dns" || cfg.Timeout != time.Second || cfg.Delay != time.Second {
		t.Fatalf("shared defaults wrong: %+v", cfg.Watchdog)
	}
	if cfg.StartScript != "" || cfg.StopScript != "" || cfg.LogDir != "" || cfg.LogLevel != "info" {
		t.Fatalf("optional defaults wrong: %+v", cfg.Watchdog)
	}
}

func TestParseDNS_AllFlags(t *testing.T) {
	cfg, err := ParseDNS([]string{
		"-n", "resolver1", "-t", "0.25", "--delay", "2.5",
		"--port", "5353", "--attempts", "4",
		"--start-script", "/etc/wd/up.sh", "--stop-script", "/etc/wd/down.sh",
		"--log-dir", "/var/log/wd", "--log-level", "debug",
		"2001:db8::53", "example.org", "MX",
	}, io.Discard)
	if err != nil {
		t.Fatalf("ParseDNS: %v", err)
	}
	if cfg.Name != "resolver1" || cfg.Timeout != 250*time.Millisecond || cfg.Delay != 2500*time.Millisecond {
		t.Fatalf("shared flags wrong: %+v", cfg.Watchdog)
	}
	if cfg.Port != 5353 || cfg.Attempts != 4 || cfg.QueryType != "MX" || cfg.Server != "2001:db8::53" {
		t.Fatalf("dns flags wrong: %+v", cfg)
	}
	if cfg.StartScript != "/etc/wd/up.sh" || cfg.StopScript != "/etc/wd/down.sh" {
		t.Fatalf("scripts wrong: %+v", cfg.Watchdog)
	}
	if cfg.LogDir != "/var/log/wd" || cfg.LogLevel != "debug" {
		t.Fatalf("logging flags wrong: %+v", cfg.Watchdog)
	}
}

func TestParseDNS_CollectsAllErrors(t *testing.T) {
	_, err := ParseDNS([]string{"--delay", "0", "--timeout=-1", "--attempts", "0", "--port", "0", "192.0.2.1"}, io.Discard)
	if err == nil {
		t.Fatalf("want error")
	}
	if n := len(multierr.Errors(err)); n != 5 {
		t.Fatalf("want 5 errors, got %d: %v", n, err)
	}
}

func TestParseDNS_TooManyArgs(t *testing.T) {
	if _, err := ParseDNS([]string{"192.0.2.1", "a.example", "A", "extra"}, io.Discard); err == nil {
		t.Fatalf("want error for extra positional")
	}
}

func TestParseHTTP_ParsesAndDefaults(t *testing.T) {
	cfg, err := ParseHTTP([]string{"example.com/health"}, io.Discard)
	if err != nil {
		t.Fatalf("ParseHTTP: %v", err)
	}
	if cfg.URI != "example.com/health" || cfg.CheckStatus {
		t.Fatalf("http fields wrong: %+v", cfg)
	}
	if cfg.Name != "http" || cfg.Delay != time.Second || cfg.Timeout != time.Second {
		t.Fatalf("shared defaults wrong: %+v", cfg.Watchdog)
	}
}

func TestParseHTTP_Flags(t *testing.T) {
	cfg, err := ParseHTTP([]string{"--check-status", "--name", "web", "--delay", "0.5", "https://example.com"}, io.Discard)
	if err != nil {
		t.Fatalf("ParseHTTP: %v", err)
	}
	if !cfg.CheckStatus || cfg.Name != "web" || cfg.Delay != 500*time.Millisecond {
		t.Fatalf("flags wrong: %+v", cfg)
	}
}

func TestParseHTTP_Errors(t *testing.T) {
	cases := [][]string{
		{},
		{"a", "b"},
		{"--name", "", "example.com"},
	}
	for _, args := range cases {
		if _, err := ParseHTTP(args, io.Discard); err == nil {
			t.Errorf("ParseHTTP(%q) want error", args)
		}
	}
}

func TestParse_HelpAndUnknownFlag(t *testing.T) {
	var buf bytes.Buffer
	_, err := ParseHTTP([]string{"--help"}, &buf)
	if !errors.Is(err, pflag.ErrHelp) {
		t.Fatalf("want ErrHelp, got %v", err)
	}
	if !strings.Contains(buf.String(), "Usage: http-watchdog [flags] URI") || !strings.Contains(buf.String(), "--check-status") {
		t.Fatalf("usage text missing: %s", buf.String())
	}

	buf.Reset()
	if _, err := ParseDNS([]string{"--bogus"}, &buf); err == nil || errors.Is(err, pflag.ErrHelp) {
		t.Fatalf("want parse error, got %v", err)
	}
}

func TestSeconds(t *testing.T) {
	if got := Seconds(1.5); got != 1500*time.Millisecond {
		t.Fatalf("Seconds(1.5) = %s", got)
	}
}
