package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRun_ExitCodes(t *testing.T) {
	if code := run(context.Background(), []string{"--help"}); code != 0 {
		t.Fatalf("--help exit %d, want 0", code)
	}
	if code := run(context.Background(), []string{}); code != 2 {
		t.Fatalf("missing URI exit %d, want 2", code)
	}
	if code := run(context.Background(), []string{"--log-dir", t.TempDir(), "http://"}); code != 1 {
		t.Fatalf("bad URI exit %d, want 1", code)
	}
}

func TestRun_StoppedLoopIsAnError(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if code := run(ctx, []string{"--log-dir", dir, "--name", "web", "127.0.0.1:1"}); code != 1 {
		t.Fatalf("exit %d, want 1 when the loop ends", code)
	}
	b, err := os.ReadFile(filepath.Join(dir, "web.log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(b), "watchdog_exited") {
		t.Fatalf("loop exit not logged: %s", b)
	}
}
