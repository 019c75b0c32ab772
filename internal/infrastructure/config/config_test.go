package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.HTTP.Addr != ":8080" {
		t.Fatalf("unexpected addr %q", c.HTTP.Addr)
	}
	if c.Queue.Path != "pending_scans.db" {
		t.Fatalf("unexpected queue path %q", c.Queue.Path)
	}
	if c.Sync.Interval != 15*time.Second || c.Commit.Timeout != 10*time.Second {
		t.Fatalf("unexpected durations: %+v", c)
	}
	if !c.Camera.SingleShot {
		t.Fatalf("single shot must default on")
	}
}

func TestLoad_MissingFileIgnored(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file must not fail: %v", err)
	}
	if c.HTTP.Addr != ":8080" {
		t.Fatalf("defaults not applied: %+v", c)
	}
}

func TestLoad_FileOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("http:\n  addr: \":9090\"\nqueue:\n  path: /tmp/scans.db\nsync:\n  interval: 1m\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	c, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.HTTP.Addr != ":9090" || c.Queue.Path != "/tmp/scans.db" {
		t.Fatalf("overrides not applied: %+v", c)
	}
	if c.Sync.Interval != time.Minute {
		t.Fatalf("duration not parsed: %v", c.Sync.Interval)
	}
	// Untouched keys keep their defaults.
	if c.Commit.Timeout != 10*time.Second {
		t.Fatalf("default lost: %v", c.Commit.Timeout)
	}
}

func TestLoad_BrokenFileFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(":::"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}
