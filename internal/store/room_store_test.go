package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/clippy-oss/homie/storefront-realtime/internal/domain"
	"github.com/clippy-oss/homie/storefront-realtime/internal/realtime"
)

func inbound(id, roomID, text string) *domain.ChatMessage {
	return &domain.ChatMessage{
		ID:          id,
		RoomID:      roomID,
		SenderID:    "cust-9",
		SenderName:  "Grace",
		SenderRole:  domain.RoleCustomer,
		Message:     text,
		MessageType: domain.MessageTypeText,
		Timestamp:   time.Now(),
	}
}

func sumUnread(rooms []*domain.ChatRoom) int {
	total := 0
	for _, r := range rooms {
		total += r.UnreadCount
	}
	return total
}

func newAdminStore(t *testing.T, rooms ...*domain.ChatRoom) (*RoomStore, *fakeChatAPI) {
	t.Helper()
	fake := newFakeChatAPI(admin)
	fake.rooms = rooms
	s := NewRoomStore(fake, &fakeSender{}, admin, nil, zerolog.Nop())
	if err := s.LoadRooms(context.Background()); err != nil {
		t.Fatalf("LoadRooms: %v", err)
	}
	return s, fake
}

func TestAppendIncomingMessageIsIdempotent(t *testing.T) {
	s, _ := newAdminStore(t, &domain.ChatRoom{ID: "r1"})
	msg := inbound("m1", "r1", "where is my order?")

	if ok, err := s.AppendIncomingMessage("r1", msg); !ok || err != nil {
		t.Fatalf("first append: ok=%v err=%v", ok, err)
	}
	once := s.MessagesFor("r1")
	unreadOnce := s.UnreadCount()

	if ok, _ := s.AppendIncomingMessage("r1", msg); ok {
		t.Fatal("second append of the same id must be ignored")
	}
	twice := s.MessagesFor("r1")

	if len(once) != 1 || len(twice) != 1 || *once[0] != *twice[0] {
		t.Fatalf("message list changed on duplicate append: %v vs %v", once, twice)
	}
	if s.UnreadCount() != unreadOnce {
		t.Fatalf("duplicate append changed unread: %d -> %d", unreadOnce, s.UnreadCount())
	}
}

func TestUnreadCountEqualsSumOfRooms(t *testing.T) {
	ctx := context.Background()
	s, fake := newAdminStore(t,
		&domain.ChatRoom{ID: "r1", UnreadCount: 1},
		&domain.ChatRoom{ID: "r2", UnreadCount: 4},
		&domain.ChatRoom{ID: "r3"},
	)

	check := func(step string) {
		t.Helper()
		if got, want := s.UnreadCount(), sumUnread(s.Rooms()); got != want {
			t.Fatalf("%s: UnreadCount() = %d, sum of rooms = %d", step, got, want)
		}
	}

	check("load")
	s.AppendIncomingMessage("r1", inbound("a", "r1", "hi"))
	s.AppendIncomingMessage("r3", inbound("b", "r3", "hello"))
	s.AppendIncomingMessage("r3", inbound("b", "r3", "hello"))
	s.AppendIncomingMessage("unknown", inbound("c", "unknown", "?"))
	check("append")
	if got := s.UnreadCount(); got != 7 {
		t.Fatalf("UnreadCount() = %d, want 7", got)
	}

	if err := s.MarkAsRead(ctx, "r2"); err != nil {
		t.Fatalf("MarkAsRead: %v", err)
	}
	check("mark read")

	fake.mu.Lock()
	fake.rooms = []*domain.ChatRoom{{ID: "r1", UnreadCount: 9}}
	fake.mu.Unlock()
	if err := s.LoadRooms(ctx); err != nil {
		t.Fatalf("LoadRooms: %v", err)
	}
	check("reload")
	if got := s.UnreadCount(); got != 9 {
		t.Fatalf("wholesale replace should leave 9 unread, got %d", got)
	}
}

func TestMarkAsReadConverges(t *testing.T) {
	ctx := context.Background()
	s, fake := newAdminStore(t, &domain.ChatRoom{ID: "r1", UnreadCount: 2}, &domain.ChatRoom{ID: "r2"})
	fake.messages["r1"] = []*domain.ChatMessage{inbound("m1", "r1", "one"), inbound("m2", "r1", "two")}

	if err := s.LoadMessages(ctx, "r1"); err != nil {
		t.Fatalf("LoadMessages: %v", err)
	}
	s.AppendIncomingMessage("r1", inbound("m3", "r1", "three"))

	if err := s.MarkAsRead(ctx, "r1"); err != nil {
		t.Fatalf("MarkAsRead: %v", err)
	}
	room, _ := s.Room("r1")
	if room.UnreadCount != 0 {
		t.Fatalf("unread_count = %d after mark read", room.UnreadCount)
	}
	for _, m := range s.MessagesFor("r1") {
		if !m.IsRead {
			t.Fatalf("message %s still unread", m.ID)
		}
	}
}

func TestMarkAsReadFailureLeavesLocalState(t *testing.T) {
	s, fake := newAdminStore(t, &domain.ChatRoom{ID: "r1", UnreadCount: 3})
	fake.markErr = errServer

	err := s.MarkAsRead(context.Background(), "r1")
	if !errors.Is(err, errServer) {
		t.Fatalf("MarkAsRead error = %v, want the REST error", err)
	}
	if got := s.UnreadCount(); got != 3 {
		t.Fatalf("failed mark read must not touch local unread, got %d", got)
	}
}

func TestCustomerChatRoundTrip(t *testing.T) {
	ctx := context.Background()
	fake := newFakeChatAPI(customer)
	fake.userRoom = &domain.ChatRoom{ID: "r1", UserID: customer.UserID, Status: domain.RoomStatusActive}
	push := &fakeSender{}
	s := NewRoomStore(fake, push, customer, nil, zerolog.Nop())

	room, err := s.CreateUserRoom(ctx)
	if err != nil {
		t.Fatalf("CreateUserRoom: %v", err)
	}
	if room.ID != "r1" {
		t.Fatalf("room id = %q", room.ID)
	}

	if _, err := s.SendOutgoingMessage(ctx, s.CurrentRoomID(), "hello"); err != nil {
		t.Fatalf("SendOutgoingMessage: %v", err)
	}

	msgs := s.Messages()
	if len(msgs) != 1 {
		t.Fatalf("Messages() has %d entries, want 1: %+v", len(msgs), msgs)
	}
	if msgs[0].Message != "hello" || msgs[0].SenderRole != domain.RoleCustomer {
		t.Fatalf("unexpected message %+v", msgs[0])
	}
	if msgs[0].ID != "srv-1" {
		t.Fatalf("optimistic message should be reconciled to the server id, got %q", msgs[0].ID)
	}
	if cur := s.CurrentRoom(); cur == nil || cur.ID != "r1" {
		t.Fatalf("CurrentRoom() = %+v", cur)
	}

	frames := push.sent()
	if len(frames) != 1 || frames[0].FrameType() != realtime.KindUserMessage {
		t.Fatalf("expected one user_message frame, got %+v", frames)
	}
}

func TestCustomerEchoDuringSendIsNotDuplicated(t *testing.T) {
	ctx := context.Background()
	fake := newFakeChatAPI(customer)
	fake.userRoom = &domain.ChatRoom{ID: "r1"}
	s := NewRoomStore(fake, &fakeSender{}, customer, nil, zerolog.Nop())
	if _, err := s.CreateUserRoom(ctx); err != nil {
		t.Fatalf("CreateUserRoom: %v", err)
	}

	// the server pushes the stored message back before the POST returns
	fake.onSend = func(msg *domain.ChatMessage) {
		s.AppendIncomingMessage(msg.RoomID, msg)
	}
	if _, err := s.SendOutgoingMessage(ctx, "r1", "ping"); err != nil {
		t.Fatalf("SendOutgoingMessage: %v", err)
	}

	msgs := s.Messages()
	if len(msgs) != 1 || msgs[0].ID != "srv-1" {
		t.Fatalf("want exactly the server message, got %+v", msgs)
	}
	if s.UnreadCount() != 0 {
		t.Fatal("own echo must not count as unread")
	}
}

func TestCustomerSendFailureKeepsOptimisticMessage(t *testing.T) {
	ctx := context.Background()
	fake := newFakeChatAPI(customer)
	fake.userRoom = &domain.ChatRoom{ID: "r1"}
	push := &fakeSender{}
	s := NewRoomStore(fake, push, customer, nil, zerolog.Nop())
	if _, err := s.CreateUserRoom(ctx); err != nil {
		t.Fatalf("CreateUserRoom: %v", err)
	}
	fake.sendErr = errServer

	if _, err := s.SendOutgoingMessage(ctx, "r1", "hello"); !errors.Is(err, errServer) {
		t.Fatalf("SendOutgoingMessage error = %v", err)
	}
	msgs := s.Messages()
	if len(msgs) != 1 || !domain.IsSynthesizedID(msgs[0].ID) {
		t.Fatalf("optimistic message should stay with its local id, got %+v", msgs)
	}
	if len(push.sent()) != 0 {
		t.Fatal("nothing may be relayed when the server rejected the message")
	}
}

func TestAdminSendAppendsOnlyAfterServerAccepts(t *testing.T) {
	ctx := context.Background()
	s, fake := newAdminStore(t, &domain.ChatRoom{ID: "r1"})
	fake.sendErr = errServer

	if _, err := s.SendOutgoingMessage(ctx, "r1", "on it"); err == nil {
		t.Fatal("expected send error")
	}
	if n := len(s.MessagesFor("r1")); n != 0 {
		t.Fatalf("admin send must not append before the server accepts, got %d", n)
	}

	fake.sendErr = nil
	sent, err := s.SendOutgoingMessage(ctx, "r1", "on it")
	if err != nil {
		t.Fatalf("SendOutgoingMessage: %v", err)
	}
	msgs := s.MessagesFor("r1")
	if len(msgs) != 1 || msgs[0].ID != sent.ID || msgs[0].SenderRole != domain.RoleAdmin {
		t.Fatalf("unexpected messages %+v", msgs)
	}
	if room, _ := s.Room("r1"); room.LastMessage != "on it" {
		t.Fatalf("room last message = %q", room.LastMessage)
	}
}

func TestSendValidation(t *testing.T) {
	s, _ := newAdminStore(t, &domain.ChatRoom{ID: "r1"})

	if _, err := s.SendOutgoingMessage(context.Background(), "", "x"); !errors.Is(err, domain.ErrNoActiveRoom) {
		t.Fatalf("empty room: err = %v", err)
	}
	if _, err := s.SendOutgoingMessage(context.Background(), "r1", ""); err == nil {
		t.Fatal("empty text must be rejected")
	}
}

func TestAdminUnreadAccounting(t *testing.T) {
	s, _ := newAdminStore(t,
		&domain.ChatRoom{ID: "first", UnreadCount: 2},
		&domain.ChatRoom{ID: "second", UnreadCount: 5},
	)

	if got := s.UnreadCount(); got != 7 {
		t.Fatalf("UnreadCount() = %d, want 7", got)
	}
	if err := s.MarkAsRead(context.Background(), "first"); err != nil {
		t.Fatalf("MarkAsRead: %v", err)
	}
	if got := s.UnreadCount(); got != 5 {
		t.Fatalf("UnreadCount() = %d, want 5", got)
	}
}

func TestSelectedRoomAndOwnMessagesDoNotCountUnread(t *testing.T) {
	ctx := context.Background()
	s, fake := newAdminStore(t, &domain.ChatRoom{ID: "r1"}, &domain.ChatRoom{ID: "r2"})

	if err := s.SelectRoom(ctx, "r1"); err != nil {
		t.Fatalf("SelectRoom: %v", err)
	}
	if len(fake.markCalls) != 1 || fake.markCalls[0] != "r1" {
		t.Fatalf("selecting a room must mark it read, calls = %v", fake.markCalls)
	}

	s.AppendIncomingMessage("r1", inbound("a", "r1", "in selected room"))
	own := inbound("b", "r2", "from another agent")
	own.SenderRole = domain.RoleAdmin
	s.AppendIncomingMessage("r2", own)

	if got := s.UnreadCount(); got != 0 {
		t.Fatalf("UnreadCount() = %d, want 0", got)
	}

	s.AppendIncomingMessage("r2", inbound("c", "r2", "customer message"))
	if got := s.UnreadCount(); got != 1 {
		t.Fatalf("UnreadCount() = %d, want 1", got)
	}
}

func TestViewerEchoWithoutRoleDoesNotCountUnread(t *testing.T) {
	ctx := context.Background()
	s, _ := newAdminStore(t, &domain.ChatRoom{ID: "r1"}, &domain.ChatRoom{ID: "r2"})
	if err := s.SelectRoom(ctx, "r1"); err != nil {
		t.Fatalf("SelectRoom: %v", err)
	}

	s.AppendIncomingMessage("r2", &domain.ChatMessage{ID: "m9", RoomID: "r2", SenderID: admin.UserID, Message: "on it"})
	if got := s.UnreadCount(); got != 0 {
		t.Fatalf("UnreadCount() = %d, want 0 for the viewer's own message", got)
	}

	s.AppendIncomingMessage("r2", &domain.ChatMessage{ID: "m10", RoomID: "r2", SenderID: "cust-9", Message: "thanks"})
	if got := s.UnreadCount(); got != 1 {
		t.Fatalf("UnreadCount() = %d, want 1 for a roleless customer message", got)
	}
}

func TestSynthesizedMessageReplacedByServerCopy(t *testing.T) {
	s, _ := newAdminStore(t, &domain.ChatRoom{ID: "r1"})
	ts := time.Now()

	noID := inbound("", "r1", "is this in stock?")
	noID.Timestamp = ts
	s.AppendIncomingMessage("r1", noID)
	s.AppendIncomingMessage("r1", noID)

	msgs := s.MessagesFor("r1")
	if len(msgs) != 1 || !domain.IsSynthesizedID(msgs[0].ID) {
		t.Fatalf("identical id-less frames should collapse onto one synthesized id: %+v", msgs)
	}

	server := inbound("srv-42", "r1", "is this in stock?")
	server.Timestamp = ts.Add(2 * time.Second)
	if grew, _ := s.AppendIncomingMessage("r1", server); grew {
		t.Fatal("server copy should replace the synthesized message, not append")
	}

	msgs = s.MessagesFor("r1")
	if len(msgs) != 1 || msgs[0].ID != "srv-42" {
		t.Fatalf("expected the server id to win, got %+v", msgs)
	}
	if got := s.UnreadCount(); got != 1 {
		t.Fatalf("replacement must not double count unread, got %d", got)
	}

	late := inbound("srv-43", "r1", "is this in stock?")
	late.Timestamp = ts.Add(time.Minute)
	if grew, _ := s.AppendIncomingMessage("r1", late); !grew {
		t.Fatal("same text outside the window is a new message")
	}
}

func TestApplyRoomUpdate(t *testing.T) {
	s, _ := newAdminStore(t, &domain.ChatRoom{ID: "r1", UnreadCount: 1})

	unread := 4
	ok, err := s.ApplyRoomUpdate(domain.RoomPatch{RoomID: "r1", UnreadCount: &unread, Status: domain.RoomStatusWaiting})
	if !ok || err != nil {
		t.Fatalf("ApplyRoomUpdate: ok=%v err=%v", ok, err)
	}
	room, _ := s.Room("r1")
	if room.UnreadCount != 4 || room.Status != domain.RoomStatusWaiting {
		t.Fatalf("unexpected room %+v", room)
	}
	if ok, _ := s.ApplyRoomUpdate(domain.RoomPatch{RoomID: "nope"}); ok {
		t.Fatal("patch for an unknown room must report false")
	}
}

func TestCreateUserRoomRequiresCustomer(t *testing.T) {
	s, _ := newAdminStore(t)
	if _, err := s.CreateUserRoom(context.Background()); !errors.Is(err, domain.ErrWrongRole) {
		t.Fatalf("CreateUserRoom as admin: err = %v", err)
	}
}

func TestClosedRoomStoreIsNoop(t *testing.T) {
	ctx := context.Background()
	s, _ := newAdminStore(t, &domain.ChatRoom{ID: "r1", UnreadCount: 2})
	s.Close()

	if s.UnreadCount() != 0 || len(s.Rooms()) != 0 {
		t.Fatal("closed store must expose empty views")
	}
	if _, err := s.AppendIncomingMessage("r1", inbound("m", "r1", "x")); !errors.Is(err, domain.ErrStoreClosed) {
		t.Fatalf("append after close: %v", err)
	}
	if err := s.LoadRooms(ctx); !errors.Is(err, domain.ErrStoreClosed) {
		t.Fatalf("load after close: %v", err)
	}
	if err := s.MarkAsRead(ctx, "r1"); !errors.Is(err, domain.ErrStoreClosed) {
		t.Fatalf("mark read after close: %v", err)
	}
}

func TestStorePublishesEvents(t *testing.T) {
	bus := domain.NewEventBus()
	defer bus.Close()
	events := bus.Subscribe([]domain.EventType{domain.EventTypeMessageReceived, domain.EventTypeRoomRead})

	fake := newFakeChatAPI(admin)
	fake.rooms = []*domain.ChatRoom{{ID: "r1"}}
	s := NewRoomStore(fake, nil, admin, bus, zerolog.Nop())
	s.LoadRooms(context.Background())

	s.AppendIncomingMessage("r1", inbound("m1", "r1", "hi"))
	s.MarkAsRead(context.Background(), "r1")

	first := <-events
	if evt, ok := first.(domain.MessageReceivedEvent); !ok || evt.TotalUnread != 1 {
		t.Fatalf("first event = %#v", first)
	}
	second := <-events
	if evt, ok := second.(domain.RoomReadEvent); !ok || evt.TotalUnread != 0 {
		t.Fatalf("second event = %#v", second)
	}
}
