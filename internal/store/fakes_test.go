package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/clippy-oss/homie/storefront-realtime/internal/api"
	"github.com/clippy-oss/homie/storefront-realtime/internal/domain"
	"github.com/clippy-oss/homie/storefront-realtime/internal/realtime"
)

var (
	customer = domain.AuthContext{Token: "t", UserID: "cust-1", UserName: "Ada", Role: domain.RoleCustomer}
	admin    = domain.AuthContext{Token: "t", UserID: "admin-1", UserName: "Support", Role: domain.RoleAdmin}

	errServer = &api.Error{StatusCode: 500, Message: "boom"}
)

type fakeChatAPI struct {
	mu       sync.Mutex
	sender   domain.AuthContext
	rooms    []*domain.ChatRoom
	userRoom *domain.ChatRoom
	messages map[string][]*domain.ChatMessage
	stats    *domain.ChatStats

	sendErr error
	markErr error
	onSend  func(msg *domain.ChatMessage)

	sent      []api.SendMessageRequest
	markCalls []string
	nextID    int
}

func newFakeChatAPI(sender domain.AuthContext) *fakeChatAPI {
	return &fakeChatAPI{sender: sender, messages: make(map[string][]*domain.ChatMessage)}
}

func (f *fakeChatAPI) ListRooms(ctx context.Context) ([]*domain.ChatRoom, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return cloneRooms(f.rooms), nil
}

func (f *fakeChatAPI) GetOrCreateUserRoom(ctx context.Context) (*domain.ChatRoom, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.userRoom.Clone(), nil
}

func (f *fakeChatAPI) ListMessages(ctx context.Context, roomID string) ([]*domain.ChatMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return cloneMessages(f.messages[roomID]), nil
}

func (f *fakeChatAPI) SendMessage(ctx context.Context, roomID string, req api.SendMessageRequest) (*domain.ChatMessage, error) {
	f.mu.Lock()
	f.sent = append(f.sent, req)
	if f.sendErr != nil {
		f.mu.Unlock()
		return nil, f.sendErr
	}
	f.nextID++
	msg := domain.NewTextMessage(fmt.Sprintf("srv-%d", f.nextID), roomID, f.sender, req.Message, time.Now())
	hook := f.onSend
	f.mu.Unlock()

	if hook != nil {
		hook(msg.Clone())
	}
	return msg, nil
}

func (f *fakeChatAPI) MarkRoomRead(ctx context.Context, roomID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.markCalls = append(f.markCalls, roomID)
	return f.markErr
}

func (f *fakeChatAPI) ChatStats(ctx context.Context) (*domain.ChatStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.stats == nil {
		return &domain.ChatStats{}, nil
	}
	s := *f.stats
	return &s, nil
}

type fakeSender struct {
	mu     sync.Mutex
	frames []realtime.Frame
	down   bool
}

func (f *fakeSender) Send(frame realtime.Frame) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.down {
		return false
	}
	f.frames = append(f.frames, frame)
	return true
}

func (f *fakeSender) sent() []realtime.Frame {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]realtime.Frame(nil), f.frames...)
}

type fakeNotificationAPI struct {
	mu         sync.Mutex
	page       *domain.NotificationPage
	stats      domain.NotificationStats
	prefs      domain.NotificationPreferences
	err        error
	lastFilter domain.NotificationFilter
	updates    []api.NotificationPatch
	bulk       []api.BulkNotificationPatch
	deleted    []string
	markAll    int
}

func (f *fakeNotificationAPI) ListNotifications(ctx context.Context, filter domain.NotificationFilter) (*domain.NotificationPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastFilter = filter
	if f.err != nil {
		return nil, f.err
	}
	if f.page == nil {
		return &domain.NotificationPage{}, nil
	}
	page := *f.page
	page.Notifications = cloneNotifications(f.page.Notifications)
	return &page, nil
}

func (f *fakeNotificationAPI) NotificationStats(ctx context.Context) (*domain.NotificationStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	s := f.stats
	return &s, nil
}

func (f *fakeNotificationAPI) UpdateNotification(ctx context.Context, id string, patch api.NotificationPatch) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, patch)
	return f.err
}

func (f *fakeNotificationAPI) DeleteNotification(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, id)
	return f.err
}

func (f *fakeNotificationAPI) BulkUpdateNotifications(ctx context.Context, patch api.BulkNotificationPatch) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bulk = append(f.bulk, patch)
	return f.err
}

func (f *fakeNotificationAPI) MarkAllNotificationsRead(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.markAll++
	return f.err
}

func (f *fakeNotificationAPI) GetPreferences(ctx context.Context) (*domain.NotificationPreferences, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	p := f.prefs
	return &p, nil
}

func (f *fakeNotificationAPI) UpdatePreferences(ctx context.Context, prefs domain.NotificationPreferences) (*domain.NotificationPreferences, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.prefs = prefs
	return &prefs, nil
}
