package cli

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/clippy-oss/homie/storefront-realtime/internal/domain"
	"github.com/clippy-oss/homie/storefront-realtime/internal/service"
	"github.com/clippy-oss/homie/storefront-realtime/internal/service/servicetest"
)

func newHandler(t *testing.T, viewer domain.AuthContext) (*CommandHandler, *servicetest.Harness) {
	t.Helper()
	h := servicetest.NewHarness(t, viewer, time.Hour)
	chat := service.NewChatService(h.Session, nil, nil)
	notes := service.NewNotificationService(h.Session, nil)
	return NewCommandHandler(h.Session, chat, notes), h
}

func run(t *testing.T, h *CommandHandler, input string) (interface{}, error) {
	t.Helper()
	cmd, err := ParseCommand(input)
	if err != nil {
		t.Fatalf("ParseCommand(%q): %v", input, err)
	}
	return h.Execute(context.Background(), cmd)
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		input   string
		name    string
		args    int
		wantErr bool
	}{
		{input: "/send where is my order", name: "send", args: 4},
		{input: "  /rooms  ", name: "rooms"},
		{input: "/ndelete n1 n2", name: "ndelete", args: 2},
		{input: "send hi", wantErr: true},
		{input: "   ", wantErr: true},
	}

	for _, tt := range tests {
		cmd, err := ParseCommand(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseCommand(%q) expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseCommand(%q): %v", tt.input, err)
			continue
		}
		if cmd.Name != tt.name || len(cmd.Args) != tt.args {
			t.Errorf("ParseCommand(%q) = %+v", tt.input, cmd)
		}
	}
}

func TestLoginWithToken(t *testing.T) {
	h, harness := newHandler(t, servicetest.Customer)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": "cust-1",
		"name":    "Ada",
		"role":    "customer",
	}).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := run(t, h, "/login"); err == nil {
		t.Fatal("login without token must fail")
	}
	res, err := run(t, h, "/login "+token)
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if msg := res.(map[string]string)["message"]; msg != "Logged in as Ada (customer)" {
		t.Fatalf("login message = %q", msg)
	}
	if harness.Transport(service.ChannelChat) == nil {
		t.Fatal("login should open the push channels")
	}

	res, _ = run(t, h, "/status")
	status := res.(ConnectionStatus)
	if !status.LoggedIn || status.UserID != "cust-1" || status.Channels[service.ChannelNotifications] != "connected" {
		t.Fatalf("status = %+v", status)
	}

	run(t, h, "/logout")
	if _, err := run(t, h, "/connect"); err == nil || !strings.Contains(err.Error(), "not logged in") {
		t.Fatalf("connect after logout = %v", err)
	}
}

func TestCustomerChatCommands(t *testing.T) {
	h, harness := newHandler(t, servicetest.Customer)
	harness.Start(t, servicetest.Customer)

	res, err := run(t, h, "/open")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if room := res.(RoomInfo); room.ID != "r-own" || !room.Selected {
		t.Fatalf("open = %+v", room)
	}

	res, err = run(t, h, "/send where is my order")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	sent := res.(MessageInfo)
	if sent.ID != "srv-1" || sent.Text != "where is my order" || !sent.IsFromMe {
		t.Fatalf("send = %+v", sent)
	}

	res, _ = run(t, h, "/messages")
	m := res.(map[string]interface{})
	if m["room_id"] != "r-own" || m["count"] != 1 {
		t.Fatalf("messages = %+v", m)
	}

	if _, err := run(t, h, "/send"); err == nil {
		t.Fatal("send without text must fail")
	}
	if _, err := run(t, h, "/bogus"); err == nil {
		t.Fatal("unknown command must fail")
	}
	if _, err := run(t, h, "/quit"); err != errQuit {
		t.Fatalf("quit = %v", err)
	}
}

func TestNotificationCommands(t *testing.T) {
	h, harness := newHandler(t, servicetest.Customer)
	harness.Start(t, servicetest.Customer)

	res, err := run(t, h, "/notifications unread")
	if err != nil {
		t.Fatalf("notifications: %v", err)
	}
	if count := res.(map[string]interface{})["count"]; count != 1 {
		t.Fatalf("unread notifications = %v", count)
	}

	res, err = run(t, h, "/qr n1")
	if err != nil {
		t.Fatalf("qr: %v", err)
	}
	qr := res.(QRInfo)
	if qr.URL != "https://shop.example/orders/1" || qr.QRCode == "" {
		t.Fatalf("qr = %+v", qr)
	}
	if _, err := run(t, h, "/qr n2"); err == nil {
		t.Fatal("qr for a notification without a link must fail")
	}

	if _, err := run(t, h, "/nread n1"); err != nil {
		t.Fatalf("nread: %v", err)
	}
	res, _ = run(t, h, "/nstats")
	if stats := res.(domain.NotificationStats); stats.UnreadCount != 0 || stats.HighPriorityUnread != 0 {
		t.Fatalf("stats after nread = %+v", stats)
	}

	res, err = run(t, h, "/prefs promotions on")
	if err != nil {
		t.Fatalf("prefs: %v", err)
	}
	if prefs := res.(*domain.NotificationPreferences); !prefs.Promotions || !prefs.OrderUpdates {
		t.Fatalf("prefs = %+v", prefs)
	}
	if _, err := run(t, h, "/prefs colour on"); err == nil {
		t.Fatal("unknown preference must fail")
	}

	if _, err := run(t, h, "/ndelete n1 n2"); err != nil {
		t.Fatalf("ndelete: %v", err)
	}
	if bulk := harness.NotifAPI.Bulk(); len(bulk) != 1 {
		t.Fatalf("bulk patches = %+v", bulk)
	}
}

func TestSubscribeEventsConverts(t *testing.T) {
	h, harness := newHandler(t, servicetest.Admin)

	events, unsubscribe := h.SubscribeEvents([]domain.EventType{domain.EventTypeNotificationReceived})
	harness.Bus.Publish(domain.NotificationReceivedEvent{
		Notification: &domain.Notification{ID: "n9", Title: "Back in stock", Type: domain.NotificationTypeFavorite},
		EventTime:    time.Now(),
	})

	select {
	case evt := <-events:
		n, ok := evt.Data.(NotificationInfo)
		if evt.Type != "notification_received" || !ok || n.ID != "n9" {
			t.Fatalf("event = %+v", evt)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event")
	}

	unsubscribe()
	for range events {
	}
}
