package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/clippy-oss/homie/storefront-realtime/internal/domain"
	"github.com/clippy-oss/homie/storefront-realtime/internal/realtime"
	"github.com/clippy-oss/homie/storefront-realtime/internal/service"
	"github.com/clippy-oss/homie/storefront-realtime/internal/service/servicetest"
)

func TestStartLoadsAdminSnapshots(t *testing.T) {
	h := servicetest.NewHarness(t, servicetest.Admin, time.Hour)
	h.Start(t, servicetest.Admin)

	rooms, err := h.Session.ChatStore()
	if err != nil {
		t.Fatalf("ChatStore: %v", err)
	}
	if got := len(rooms.Rooms()); got != 2 {
		t.Fatalf("want 2 rooms, got %d", got)
	}
	if rooms.UnreadCount() != 2 {
		t.Fatalf("unread = %d, want 2", rooms.UnreadCount())
	}
	if stats, ok := rooms.Stats(); !ok || stats.TotalRooms != 2 {
		t.Fatalf("chat stats not loaded: %+v %v", stats, ok)
	}

	notes, _ := h.Session.NotificationStore()
	if len(notes.Notifications()) != 2 || notes.Stats().UnreadCount != 1 {
		t.Fatalf("notifications not loaded: %d items, stats %+v", len(notes.Notifications()), notes.Stats())
	}

	for _, ch := range []string{service.ChannelChat, service.ChannelNotifications} {
		if c, _ := h.Transport(ch).Counts(); c != 1 {
			t.Fatalf("%s connected %d times", ch, c)
		}
	}
	if h.Session.State() != service.SessionConnected {
		t.Fatalf("state = %s", h.Session.State())
	}
	if auth, ok := h.Session.Auth(); !ok || auth.UserID != servicetest.Admin.UserID {
		t.Fatalf("Auth() = %+v %v", auth, ok)
	}
}

func TestStartCustomerSkipsRoomList(t *testing.T) {
	h := servicetest.NewHarness(t, servicetest.Customer, 10*time.Millisecond)
	h.Start(t, servicetest.Customer)

	time.Sleep(50 * time.Millisecond)
	if n := h.ChatAPI.ListRoomsCalls(); n != 0 {
		t.Fatalf("customer listed rooms %d times", n)
	}
	notes, _ := h.Session.NotificationStore()
	if len(notes.Notifications()) != 2 {
		t.Fatal("customer notifications not loaded")
	}
}

func TestStartRejectsMissingCredentials(t *testing.T) {
	h := servicetest.NewHarness(t, servicetest.Admin, time.Hour)
	err := h.Session.Start(context.Background(), domain.AuthContext{UserID: "x", Role: domain.RoleAdmin})
	if !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("want ErrNotAuthenticated, got %v", err)
	}
	if h.Session.State() != service.SessionDisconnected {
		t.Fatalf("state = %s", h.Session.State())
	}
	if _, err := h.Session.ChatStore(); !errors.Is(err, domain.ErrSessionTornDown) {
		t.Fatalf("ChatStore without a session: %v", err)
	}
}

func TestStartIsIdempotent(t *testing.T) {
	h := servicetest.NewHarness(t, servicetest.Admin, time.Hour)
	h.Start(t, servicetest.Admin)
	first := h.Transport(service.ChannelChat)
	h.Start(t, servicetest.Admin)

	if h.Transport(service.ChannelChat) != first {
		t.Fatal("second Start must not build new transports")
	}
	if c, _ := first.Counts(); c != 1 {
		t.Fatalf("connected %d times", c)
	}
}

func TestPushEventsRouteToStores(t *testing.T) {
	h := servicetest.NewHarness(t, servicetest.Admin, time.Hour)
	h.Start(t, servicetest.Admin)
	rooms, _ := h.Session.ChatStore()
	notes, _ := h.Session.NotificationStore()

	h.Transport(service.ChannelChat).Events <- realtime.ChatMessageEvent{
		FrameKind: realtime.KindUserMessage,
		Message: domain.ChatMessage{
			ID: "m1", RoomID: "r1", SenderID: "cust-9", SenderName: "Grace",
			SenderRole: domain.RoleCustomer, Message: "is it in stock?", Timestamp: time.Now(),
		},
	}
	servicetest.WaitFor(t, "pushed message counted unread", func() bool { return rooms.UnreadCount() == 3 })
	if got := rooms.MessagesFor("r1"); len(got) != 1 || got[0].ID != "m1" {
		t.Fatalf("message not appended: %+v", got)
	}

	notifTx := h.Transport(service.ChannelNotifications)
	notifTx.Events <- realtime.NotificationCreated{Notification: domain.Notification{ID: "n3", Title: "Cart reminder", Priority: domain.PriorityLow}}
	servicetest.WaitFor(t, "new notification", func() bool {
		list := notes.Notifications()
		return len(list) == 3 && list[0].ID == "n3"
	})

	notifTx.Events <- realtime.NotificationStatsUpdate{Stats: domain.NotificationStats{TotalCount: 3, UnreadCount: 2, HighPriorityUnread: 1}}
	servicetest.WaitFor(t, "pushed stats", func() bool { return notes.Stats().UnreadCount == 2 })

	h.Transport(service.ChannelChat).Events <- realtime.RoomUpdate{Patch: domain.RoomPatch{RoomID: "r2", Status: domain.RoomStatusClosed}}
	servicetest.WaitFor(t, "room patch", func() bool {
		r, err := rooms.Room("r2")
		return err == nil && r.Status == domain.RoomStatusClosed
	})
}

func TestAdminReloadsRoomsForUnknownRoom(t *testing.T) {
	h := servicetest.NewHarness(t, servicetest.Admin, time.Hour)
	h.Start(t, servicetest.Admin)
	before := h.ChatAPI.ListRoomsCalls()

	h.Transport(service.ChannelChat).Events <- realtime.ChatMessageEvent{
		FrameKind: realtime.KindUserMessage,
		Message:   domain.ChatMessage{ID: "m9", RoomID: "r-new", SenderRole: domain.RoleCustomer, Message: "hello", Timestamp: time.Now()},
	}
	servicetest.WaitFor(t, "room reload", func() bool { return h.ChatAPI.ListRoomsCalls() > before })
}

func TestReconnectResyncsChannel(t *testing.T) {
	h := servicetest.NewHarness(t, servicetest.Admin, time.Hour)
	h.Start(t, servicetest.Admin)
	events := h.Bus.Subscribe([]domain.EventType{domain.EventTypeConnectionStatus})
	defer h.Bus.Unsubscribe(events)

	roomsBefore := h.ChatAPI.ListRoomsCalls()
	h.Transport(service.ChannelChat).Status <- realtime.StatusEvent{Channel: service.ChannelChat, State: realtime.StateConnected, Reconnected: true}
	servicetest.WaitFor(t, "chat resync", func() bool { return h.ChatAPI.ListRoomsCalls() > roomsBefore })

	evt := servicetest.WaitEvent(t, events, domain.EventTypeConnectionStatus).(domain.ConnectionStatusEvent)
	if evt.Channel != service.ChannelChat || !evt.Connected {
		t.Fatalf("unexpected status event %+v", evt)
	}

	notesBefore := h.NotifAPI.ListCalls()
	h.Transport(service.ChannelNotifications).Status <- realtime.StatusEvent{Channel: service.ChannelNotifications, State: realtime.StateConnected, Reconnected: true}
	servicetest.WaitFor(t, "notification resync", func() bool { return h.NotifAPI.ListCalls() > notesBefore })
}

func TestFirstOpenDoesNotResync(t *testing.T) {
	h := servicetest.NewHarness(t, servicetest.Admin, time.Hour)
	h.Start(t, servicetest.Admin)
	before := h.ChatAPI.ListRoomsCalls()

	h.Transport(service.ChannelChat).Status <- realtime.StatusEvent{Channel: service.ChannelChat, State: realtime.StateConnected}
	time.Sleep(50 * time.Millisecond)
	if h.ChatAPI.ListRoomsCalls() != before {
		t.Fatal("an initial open must not trigger a resync")
	}
}

func TestAdminPollsRoomList(t *testing.T) {
	h := servicetest.NewHarness(t, servicetest.Admin, 10*time.Millisecond)
	h.Start(t, servicetest.Admin)
	before := h.ChatAPI.ListRoomsCalls()
	servicetest.WaitFor(t, "admin poll", func() bool { return h.ChatAPI.ListRoomsCalls() >= before+3 })
}

func TestStopTearsDownSession(t *testing.T) {
	h := servicetest.NewHarness(t, servicetest.Admin, 10*time.Millisecond)
	h.Start(t, servicetest.Admin)
	rooms, _ := h.Session.ChatStore()
	chatTx := h.Transport(service.ChannelChat)

	events := h.Bus.Subscribe([]domain.EventType{domain.EventTypeSessionCleared})
	defer h.Bus.Unsubscribe(events)

	h.Session.Stop()
	servicetest.WaitEvent(t, events, domain.EventTypeSessionCleared)

	if h.Session.State() != service.SessionTornDown {
		t.Fatalf("state = %s", h.Session.State())
	}
	if _, d := chatTx.Counts(); d != 1 {
		t.Fatalf("chat transport disconnected %d times", d)
	}
	if !errors.Is(rooms.LoadRooms(context.Background()), domain.ErrStoreClosed) {
		t.Fatal("stores must be closed after Stop")
	}
	if rooms.UnreadCount() != 0 || len(rooms.Rooms()) != 0 {
		t.Fatal("closed store must be empty")
	}
	if _, err := h.Session.SendMessage(context.Background(), "hi"); !errors.Is(err, domain.ErrSessionTornDown) {
		t.Fatalf("SendMessage after Stop: %v", err)
	}

	calls := h.ChatAPI.ListRoomsCalls()
	time.Sleep(40 * time.Millisecond)
	if h.ChatAPI.ListRoomsCalls() != calls {
		t.Fatal("poller kept running after Stop")
	}

	h.Session.Stop()

	h.Start(t, servicetest.Customer)
	if h.Transport(service.ChannelChat) == chatTx {
		t.Fatal("a new login must get fresh transports")
	}
	if h.Session.State() != service.SessionConnected {
		t.Fatalf("state after re-login = %s", h.Session.State())
	}
}

func TestStopDeliversClearedToBackedUpSubscriber(t *testing.T) {
	h := servicetest.NewHarness(t, servicetest.Admin, time.Hour)
	h.Start(t, servicetest.Admin)

	events := h.Bus.Subscribe([]domain.EventType{domain.EventTypeSessionCleared})
	defer h.Bus.Unsubscribe(events)
	for len(events) < cap(events) {
		h.Bus.Publish(domain.SessionClearedEvent{})
	}

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		h.Session.Stop()
	}()

	for i := cap(events); i > 0; i-- {
		<-events
	}
	select {
	case evt := <-events:
		if evt.Timestamp().IsZero() {
			t.Fatal("expected the cleared event from Stop, got a filler")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Stop dropped the cleared event for a full subscriber")
	}
	<-stopped
}

func TestCustomerSendOpensRoom(t *testing.T) {
	h := servicetest.NewHarness(t, servicetest.Customer, time.Hour)
	h.Start(t, servicetest.Customer)

	msg, err := h.Session.SendMessage(context.Background(), "where is my parcel?")
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if msg.ID != "srv-1" || msg.RoomID != "r-own" {
		t.Fatalf("unexpected message %+v", msg)
	}

	rooms, _ := h.Session.ChatStore()
	if rooms.CurrentRoomID() != "r-own" {
		t.Fatalf("current room = %q", rooms.CurrentRoomID())
	}
	if got := rooms.Messages(); len(got) != 1 || got[0].ID != "srv-1" {
		t.Fatalf("messages = %+v", got)
	}

	frames := h.Transport(service.ChannelChat).Sent()
	if len(frames) != 1 || frames[0].FrameType() != realtime.KindUserMessage {
		t.Fatalf("frames = %+v", frames)
	}
}

func TestDisconnectKeepsStores(t *testing.T) {
	h := servicetest.NewHarness(t, servicetest.Admin, time.Hour)
	h.Start(t, servicetest.Admin)

	if err := h.Session.Disconnect(); err != nil {
		t.Fatalf("Disconnect: %v", err)
	}
	if h.Session.State() != service.SessionDisconnected {
		t.Fatalf("state = %s", h.Session.State())
	}
	if st := h.Session.ChannelStates(); st[service.ChannelChat] != realtime.StateDisconnected {
		t.Fatalf("channel states = %v", st)
	}

	chat := service.NewChatService(h.Session, nil, nil)
	rooms, err := chat.GetRooms()
	if err != nil || len(rooms) != 2 {
		t.Fatalf("GetRooms while disconnected: %d %v", len(rooms), err)
	}
	if _, err := chat.SendMessageTo(context.Background(), "r1", "still there?"); err != nil {
		t.Fatalf("REST send while disconnected: %v", err)
	}

	if err := h.Session.Connect(); err != nil {
		t.Fatalf("Connect: %v", err)
	}
	if h.Session.State() != service.SessionConnected {
		t.Fatalf("state after reconnect = %s", h.Session.State())
	}
}

func TestSessionStateString(t *testing.T) {
	cases := map[service.SessionState]string{
		service.SessionDisconnected: "disconnected",
		service.SessionConnecting:   "connecting",
		service.SessionConnected:    "connected",
		service.SessionTornDown:     "torn_down",
	}
	for st, want := range cases {
		if st.String() != want {
			t.Errorf("%d.String() = %q, want %q", st, st.String(), want)
		}
	}
}
