package config

import (
	"errors"
	"flag"
	"strings"
	"testing"
	"time"
)

func TestLoadArgsDerivesWebSocketURLs(t *testing.T) {
	cfg, err := LoadArgs([]string{
		"-api", "https://shop.example.com/",
		"-db", t.TempDir() + "/archive.db",
	})
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}

	if cfg.APIBaseURL != "https://shop.example.com" {
		t.Fatalf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.ChatWSURL != "wss://shop.example.com/ws/chat" {
		t.Fatalf("ChatWSURL = %q", cfg.ChatWSURL)
	}
	if cfg.NotificationsWSURL != "wss://shop.example.com/ws/notifications" {
		t.Fatalf("NotificationsWSURL = %q", cfg.NotificationsWSURL)
	}
	if cfg.HeartbeatInterval != 30*time.Second || cfg.ReconnectMaxDelay != 30*time.Second {
		t.Fatalf("unexpected timing defaults: %+v", cfg)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
}

func TestLoadArgsKeepsExplicitWebSocketURL(t *testing.T) {
	cfg, err := LoadArgs([]string{
		"-api", "http://localhost:8000",
		"-chat-ws", "ws://push.local:9000/chat",
		"-db", t.TempDir() + "/archive.db",
	})
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}

	if cfg.ChatWSURL != "ws://push.local:9000/chat" {
		t.Fatalf("ChatWSURL = %q", cfg.ChatWSURL)
	}
	if cfg.NotificationsWSURL != "ws://localhost:8000/ws/notifications" {
		t.Fatalf("NotificationsWSURL = %q", cfg.NotificationsWSURL)
	}
}

func TestValidateReportsFields(t *testing.T) {
	cfg, err := LoadArgs([]string{"-db", t.TempDir() + "/archive.db"})
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	cfg.Mode = "daemon"
	cfg.Role = "guest"
	cfg.ReconnectMaxDelay = 10 * time.Millisecond

	err = cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"Mode", "Role", "ReconnectMaxDelay"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestLoadArgsRejectsBadFlags(t *testing.T) {
	cases := []struct {
		name string
		args []string
	}{
		{"misspelled flag", []string{"-mdoe", "headless"}},
		{"bad duration", []string{"-heartbeat", "soon"}},
		{"stray argument", []string{"-mode", "headless", "extra"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := LoadArgs(tc.args)
			if err == nil {
				t.Fatalf("LoadArgs(%v) = %+v, want error", tc.args, cfg)
			}
			if cfg != nil {
				t.Fatalf("LoadArgs returned a config alongside %v", err)
			}
		})
	}
}

func TestLoadArgsHelp(t *testing.T) {
	_, err := LoadArgs([]string{"-h"})
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("LoadArgs(-h) error = %v, want flag.ErrHelp", err)
	}
}
