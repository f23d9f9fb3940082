package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/clippy-oss/homie/storefront-realtime/internal/service/servicetest"
)

func TestInteractiveSession(t *testing.T) {
	h, harness := newHandler(t, servicetest.Admin)
	harness.Start(t, servicetest.Admin)

	in := "/status\n/rooms\n/select r2\n/unread\n/nstats\n/bogus\n/quit\n/rooms\n"
	var out bytes.Buffer
	cli := NewInteractiveCLI(h, strings.NewReader(in), &out)
	if err := cli.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	got := out.String()
	for _, want := range []string{
		"Status: connected as Support (admin)",
		"Channel chat: connected",
		"Found 2 room(s)",
		"Linus (waiting) [2 unread]",
		"Room r2, 0 message(s)",
		"Unread messages: 0",
		"Notifications: 2 total, 1 unread, 1 high priority unread",
		"Error: unknown command: bogus",
		"Goodbye!",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	if strings.Count(got, "Found 2 room(s)") != 1 {
		t.Error("commands after /quit must not run")
	}
}

func TestInteractiveEOF(t *testing.T) {
	h, _ := newHandler(t, servicetest.Customer)

	var out bytes.Buffer
	cli := NewInteractiveCLI(h, strings.NewReader("/status"), &out)
	if err := cli.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "User: not logged in") {
		t.Fatalf("output:\n%s", out.String())
	}
}
