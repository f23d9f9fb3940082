package realtime

import (
	"errors"
	"testing"
	"time"

	"github.com/clippy-oss/homie/storefront-realtime/internal/domain"
)

func TestDecodeChatMessageFrames(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

	evt, err := Decode([]byte(`{"type":"user_message","id":"m1","room_id":"r1","sender_id":"u1","message":"hi"}`), now)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	msg, ok := evt.(ChatMessageEvent)
	if !ok {
		t.Fatalf("got %T, want ChatMessageEvent", evt)
	}
	if msg.Kind() != KindUserMessage {
		t.Fatalf("Kind() = %s", msg.Kind())
	}
	if msg.Message.SenderRole != domain.RoleCustomer || msg.Message.MessageType != domain.MessageTypeText {
		t.Fatalf("defaults not applied: %+v", msg.Message)
	}
	if !msg.Message.Timestamp.Equal(now) {
		t.Fatalf("missing timestamp should fall back to receive time, got %v", msg.Message.Timestamp)
	}

	evt, err = Decode([]byte(`{"type":"admin_message","room_id":"r1","sender_id":"a1","message":"hello","timestamp":"2026-05-01T11:59:00Z"}`), now)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	msg = evt.(ChatMessageEvent)
	if msg.Message.SenderRole != domain.RoleAdmin || msg.Message.Timestamp.Equal(now) {
		t.Fatalf("unexpected admin message: %+v", msg.Message)
	}
}

func TestDecodeNotificationFrames(t *testing.T) {
	now := time.Now()

	evt, err := Decode([]byte(`{"type":"new_notification","notification":{"id":"n1","type":"order","title":"Shipped","priority":"high"}}`), now)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	created, ok := evt.(NotificationCreated)
	if !ok || created.Notification.ID != "n1" || created.Notification.Type != domain.NotificationTypeOrder {
		t.Fatalf("unexpected event %#v", evt)
	}

	evt, err = Decode([]byte(`{"type":"notification_updated","data":{"id":"n1","is_read":true}}`), now)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	changed, ok := evt.(NotificationChanged)
	if !ok || changed.Update.IsRead == nil || !*changed.Update.IsRead || changed.Update.IsDeleted != nil {
		t.Fatalf("unexpected event %#v", evt)
	}

	evt, err = Decode([]byte(`{"type":"notification_updated","notification":{"id":"n1","title":"Order n1 shipped"}}`), now)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	changed = evt.(NotificationChanged)
	if changed.Update.IsRead != nil || changed.Update.Notification.Title != "Order n1 shipped" {
		t.Fatalf("absent is_read must stay unset: %#v", changed.Update)
	}

	evt, err = Decode([]byte(`{"type":"stats_updated","stats":{"total_count":4,"unread_count":2,"high_priority_unread":1}}`), now)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	want := domain.NotificationStats{TotalCount: 4, UnreadCount: 2, HighPriorityUnread: 1}
	if got := evt.(NotificationStatsUpdate).Stats; got != want {
		t.Fatalf("stats = %+v, want %+v", got, want)
	}
}

func TestDecodeRoomAndChatStats(t *testing.T) {
	evt, err := Decode([]byte(`{"type":"room_update","room_id":"r9","unread_count":3,"status":"closed"}`), time.Now())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	patch := evt.(RoomUpdate).Patch
	if patch.RoomID != "r9" || patch.UnreadCount == nil || *patch.UnreadCount != 3 || patch.Status != domain.RoomStatusClosed {
		t.Fatalf("unexpected patch: %+v", patch)
	}
	if patch.LastMessage != nil {
		t.Fatal("absent last_message must stay nil")
	}

	evt, err = Decode([]byte(`{"type":"stats_update","total_rooms":5,"waiting_rooms":2,"total_unread":9}`), time.Now())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if s := evt.(ChatStatsUpdate).Stats; s.TotalRooms != 5 || s.TotalUnread != 9 {
		t.Fatalf("unexpected chat stats: %+v", s)
	}
}

func TestDecodeRejectsBadFrames(t *testing.T) {
	tests := []struct {
		name    string
		frame   string
		wantErr error
	}{
		{"not json", `{"type":`, ErrMalformedFrame},
		{"missing type", `{"room_id":"r1"}`, ErrMalformedFrame},
		{"message without room", `{"type":"message","message":"x"}`, ErrMalformedFrame},
		{"notification without id", `{"type":"new_notification","notification":{"title":"x"}}`, ErrMalformedFrame},
		{"unknown type", `{"type":"typing","room_id":"r1"}`, ErrUnknownKind},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.frame), time.Now())
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Decode error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestBackoffSchedule(t *testing.T) {
	b := NewBackoff(time.Second, 30*time.Second)

	for n := 0; n < 10; n++ {
		want := time.Duration(1000*(1<<n)) * time.Millisecond
		if want > 30*time.Second {
			want = 30 * time.Second
		}
		if got := b.Next(); got != want {
			t.Fatalf("attempt %d: delay %v, want %v", n, got, want)
		}
	}

	b.Reset()
	if got := b.Next(); got != time.Second {
		t.Fatalf("after reset: delay %v, want 1s", got)
	}
}

func TestOutboxEvictsOldest(t *testing.T) {
	o := newOutbox(2)
	o.push(NewPingFrame())
	o.push(NewPongFrame())
	kept, evicted := o.push(NewAuthFrame(domain.AuthContext{UserID: "u1"}))
	if !kept || !evicted {
		t.Fatalf("push on full outbox: kept=%v evicted=%v", kept, evicted)
	}

	frames := o.drain()
	if len(frames) != 2 || frames[0].FrameType() != KindPong || frames[1].FrameType() != KindAuth {
		t.Fatalf("unexpected drain order: %+v", frames)
	}
	if o.len() != 0 {
		t.Fatal("drain must empty the outbox")
	}

	if kept, _ := newOutbox(0).push(NewPingFrame()); kept {
		t.Fatal("zero-capacity outbox must drop")
	}
}
