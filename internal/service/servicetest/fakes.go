// Package servicetest provides in-memory fakes of the push channels and REST endpoints a
// SessionService depends on, for tests of the service layer and the presentation adapters.
package servicetest

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/clippy-oss/homie/storefront-realtime/internal/api"
	"github.com/clippy-oss/homie/storefront-realtime/internal/domain"
	"github.com/clippy-oss/homie/storefront-realtime/internal/realtime"
	"github.com/clippy-oss/homie/storefront-realtime/internal/service"
	"github.com/clippy-oss/homie/storefront-realtime/internal/store"
)

var (
	Customer = domain.AuthContext{Token: "t", UserID: "cust-1", UserName: "Ada", Role: domain.RoleCustomer}
	Admin    = domain.AuthContext{Token: "t", UserID: "admin-1", UserName: "Support", Role: domain.RoleAdmin}
)

// Transport is a push channel driven by the test: write to Events and Status to simulate the server.
type Transport struct {
	Channel string
	Events  chan realtime.Event
	Status  chan realtime.StatusEvent

	mu          sync.Mutex
	state       realtime.State
	connects    int
	disconnects int
	frames      []realtime.Frame
}

func NewTransport(channel string) *Transport {
	return &Transport{
		Channel: channel,
		Events:  make(chan realtime.Event, 16),
		Status:  make(chan realtime.StatusEvent, 16),
	}
}

func (f *Transport) Connect(auth domain.AuthContext) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.connects++
	f.state = realtime.StateConnected
}

func (f *Transport) Disconnect() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.disconnects++
	f.state = realtime.StateDisconnected
}

func (f *Transport) Send(frame realtime.Frame) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != realtime.StateConnected {
		return false
	}
	f.frames = append(f.frames, frame)
	return true
}

func (f *Transport) State() realtime.State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Transport) Subscribe() (<-chan realtime.Event, func()) {
	return f.Events, func() {}
}

func (f *Transport) StatusChanges() (<-chan realtime.StatusEvent, func()) {
	return f.Status, func() {}
}

func (f *Transport) Counts() (connects, disconnects int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.connects, f.disconnects
}

func (f *Transport) Sent() []realtime.Frame {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]realtime.Frame(nil), f.frames...)
}

// ChatAPI serves a fixed room list. Sent messages get ids srv-1, srv-2, ...
type ChatAPI struct {
	mu        sync.Mutex
	Sender    domain.AuthContext
	Rooms     []*domain.ChatRoom
	UserRoom  *domain.ChatRoom
	Messages  map[string][]*domain.ChatMessage
	Stats     domain.ChatStats
	SendErr   error
	listCalls int
	sent      []string
	nextID    int
}

func (f *ChatAPI) ListRooms(ctx context.Context) ([]*domain.ChatRoom, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	out := make([]*domain.ChatRoom, len(f.Rooms))
	for i, r := range f.Rooms {
		out[i] = r.Clone()
	}
	return out, nil
}

func (f *ChatAPI) GetOrCreateUserRoom(ctx context.Context) (*domain.ChatRoom, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.UserRoom.Clone(), nil
}

func (f *ChatAPI) ListMessages(ctx context.Context, roomID string) ([]*domain.ChatMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*domain.ChatMessage, 0, len(f.Messages[roomID]))
	for _, m := range f.Messages[roomID] {
		out = append(out, m.Clone())
	}
	return out, nil
}

func (f *ChatAPI) SendMessage(ctx context.Context, roomID string, req api.SendMessageRequest) (*domain.ChatMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, req.Message)
	if f.SendErr != nil {
		return nil, f.SendErr
	}
	f.nextID++
	return domain.NewTextMessage(fmt.Sprintf("srv-%d", f.nextID), roomID, f.Sender, req.Message, time.Now()), nil
}

func (f *ChatAPI) MarkRoomRead(ctx context.Context, roomID string) error {
	return nil
}

func (f *ChatAPI) ChatStats(ctx context.Context) (*domain.ChatStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := f.Stats
	return &s, nil
}

func (f *ChatAPI) ListRoomsCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls
}

func (f *ChatAPI) SentTexts() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.sent...)
}

// NotificationAPI serves a fixed feed and records every mutation.
type NotificationAPI struct {
	mu        sync.Mutex
	Items     []*domain.Notification
	Stats     domain.NotificationStats
	Prefs     domain.NotificationPreferences
	listCalls int
	deleted   []string
	bulk      []api.BulkNotificationPatch
	updates   []api.NotificationPatch
}

func (f *NotificationAPI) ListNotifications(ctx context.Context, filter domain.NotificationFilter) (*domain.NotificationPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	out := make([]*domain.Notification, len(f.Items))
	for i, n := range f.Items {
		out[i] = n.Clone()
	}
	return &domain.NotificationPage{Notifications: out, TotalCount: len(out)}, nil
}

func (f *NotificationAPI) NotificationStats(ctx context.Context) (*domain.NotificationStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := f.Stats
	return &s, nil
}

func (f *NotificationAPI) UpdateNotification(ctx context.Context, id string, patch api.NotificationPatch) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, patch)
	return nil
}

func (f *NotificationAPI) DeleteNotification(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *NotificationAPI) BulkUpdateNotifications(ctx context.Context, patch api.BulkNotificationPatch) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bulk = append(f.bulk, patch)
	return nil
}

func (f *NotificationAPI) MarkAllNotificationsRead(ctx context.Context) error {
	return nil
}

func (f *NotificationAPI) GetPreferences(ctx context.Context) (*domain.NotificationPreferences, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p := f.Prefs
	return &p, nil
}

func (f *NotificationAPI) UpdatePreferences(ctx context.Context, prefs domain.NotificationPreferences) (*domain.NotificationPreferences, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Prefs = prefs
	return &prefs, nil
}

func (f *NotificationAPI) ListCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.listCalls
}

func (f *NotificationAPI) Deleted() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.deleted...)
}

func (f *NotificationAPI) Bulk() []api.BulkNotificationPatch {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]api.BulkNotificationPatch(nil), f.bulk...)
}

func (f *NotificationAPI) Updates() []api.NotificationPatch {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]api.NotificationPatch(nil), f.updates...)
}

// Harness wires a SessionService to the fakes above. Every Start builds fresh transports.
type Harness struct {
	Session  *service.SessionService
	Bus      *domain.SimpleEventBus
	ChatAPI  *ChatAPI
	NotifAPI *NotificationAPI

	mu         sync.Mutex
	transports map[string]*Transport
}

// NewHarness seeds two rooms (r1 read, r2 with two unread), a customer room r-own and two
// notifications (n1 unread high priority, n2 read). The session is stopped on cleanup.
func NewHarness(t testing.TB, viewer domain.AuthContext, poll time.Duration) *Harness {
	t.Helper()
	h := &Harness{
		Bus: domain.NewEventBus(),
		ChatAPI: &ChatAPI{
			Sender: viewer,
			Rooms: []*domain.ChatRoom{
				{ID: "r1", UserID: "cust-9", Name: "Grace", Status: domain.RoomStatusActive},
				{ID: "r2", UserID: "cust-8", Name: "Linus", Status: domain.RoomStatusWaiting, UnreadCount: 2},
			},
			UserRoom: &domain.ChatRoom{ID: "r-own", UserID: viewer.UserID, Name: viewer.UserName, Status: domain.RoomStatusWaiting},
			Messages: make(map[string][]*domain.ChatMessage),
			Stats:    domain.ChatStats{TotalRooms: 2, ActiveRooms: 1, WaitingRooms: 1, TotalUnread: 2},
		},
		NotifAPI: &NotificationAPI{
			Items: []*domain.Notification{
				{ID: "n1", Title: "Order shipped", Type: domain.NotificationTypeOrder, Priority: domain.PriorityHigh, ActionURL: "https://shop.example/orders/1", CreatedAt: time.Now()},
				{ID: "n2", Title: "Price drop", Type: domain.NotificationTypeFavorite, Priority: domain.PriorityNormal, IsRead: true, CreatedAt: time.Now()},
			},
			Stats: domain.NotificationStats{TotalCount: 2, UnreadCount: 1, HighPriorityUnread: 1},
			Prefs: domain.NotificationPreferences{PushNotifications: true, OrderUpdates: true},
		},
		transports: make(map[string]*Transport),
	}

	newAPI := func(auth domain.AuthContext) (store.ChatAPI, store.NotificationAPI) {
		return h.ChatAPI, h.NotifAPI
	}
	newTransport := func(channel string) service.Transport {
		tx := NewTransport(channel)
		h.mu.Lock()
		h.transports[channel] = tx
		h.mu.Unlock()
		return tx
	}
	h.Session = service.NewSessionService(service.SessionServiceConfig{AdminPollInterval: poll}, newAPI, newTransport, h.Bus, zerolog.Nop())
	t.Cleanup(h.Session.Stop)
	return h
}

// Transport returns the most recent push channel built for channel.
func (h *Harness) Transport(channel string) *Transport {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.transports[channel]
}

func (h *Harness) Start(t testing.TB, viewer domain.AuthContext) {
	t.Helper()
	if err := h.Session.Start(context.Background(), viewer); err != nil {
		t.Fatalf("Start: %v", err)
	}
}

// WaitFor polls cond for up to two seconds.
func WaitFor(t testing.TB, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

// WaitEvent reads ch until an event of type want arrives.
func WaitEvent(t testing.TB, ch <-chan domain.Event, want domain.EventType) domain.Event {
	t.Helper()
	timeout := time.After(2 * time.Second)
	for {
		select {
		case evt := <-ch:
			if evt.Type() == want {
				return evt
			}
		case <-timeout:
			t.Fatalf("no %s event", want)
			return nil
		}
	}
}
