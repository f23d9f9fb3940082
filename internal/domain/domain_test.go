package domain

import (
	"context"
	"testing"
	"time"
)

func TestSynthesizeMessageIDIsStable(t *testing.T) {
	ts := time.Date(2026, 3, 1, 10, 0, 0, 400, time.UTC)

	a := SynthesizeMessageID("r1", "u1", "hello", ts)
	b := SynthesizeMessageID("r1", "u1", "hello", ts.Add(300*time.Millisecond))
	if a != b {
		t.Fatalf("same frame within a second produced different ids: %s vs %s", a, b)
	}
	if !IsSynthesizedID(a) {
		t.Fatalf("expected %s to carry the synthesized prefix", a)
	}

	c := SynthesizeMessageID("r1", "u1", "hello again", ts)
	if a == c {
		t.Fatal("different text must produce a different id")
	}
}

func TestComputeStatsSkipsDeleted(t *testing.T) {
	items := []*Notification{
		{ID: "1", Priority: PriorityHigh},
		{ID: "2", Priority: PriorityNormal, IsRead: true},
		{ID: "3", Priority: PriorityHigh, IsDeleted: true},
		{ID: "4", Priority: PriorityLow},
	}

	got := ComputeStats(items)
	want := NotificationStats{TotalCount: 3, UnreadCount: 2, HighPriorityUnread: 1}
	if got != want {
		t.Fatalf("ComputeStats() = %+v, want %+v", got, want)
	}
}

func TestRoomPatchApply(t *testing.T) {
	room := &ChatRoom{ID: "r1", Name: "Ada", UnreadCount: 3, Status: RoomStatusWaiting}
	text := "on my way"
	unread := 0

	RoomPatch{RoomID: "r1", LastMessage: &text, UnreadCount: &unread, Status: RoomStatusActive}.Apply(room)

	if room.LastMessage != text || room.UnreadCount != 0 || room.Status != RoomStatusActive {
		t.Fatalf("unexpected room after patch: %+v", room)
	}
	if room.Name != "Ada" {
		t.Fatalf("empty name in patch must not overwrite, got %q", room.Name)
	}
}

func TestAuthContextValidate(t *testing.T) {
	tests := []struct {
		name    string
		auth    AuthContext
		wantErr bool
	}{
		{"customer", AuthContext{Token: "t", UserID: "u", Role: RoleCustomer}, false},
		{"admin", AuthContext{Token: "t", UserID: "u", Role: RoleAdmin}, false},
		{"missing token", AuthContext{UserID: "u", Role: RoleAdmin}, true},
		{"unknown role", AuthContext{Token: "t", UserID: "u", Role: "guest"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.auth.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEventBusFiltersByType(t *testing.T) {
	bus := NewEventBus()
	defer bus.Close()

	rooms := bus.Subscribe([]EventType{EventTypeRoomsLoaded})
	all := bus.Subscribe(nil)

	bus.Publish(RoomsLoadedEvent{EventTime: time.Now()})
	bus.Publish(SessionClearedEvent{EventTime: time.Now()})

	if got := len(rooms); got != 1 {
		t.Fatalf("filtered subscriber got %d events, want 1", got)
	}
	if got := len(all); got != 2 {
		t.Fatalf("unfiltered subscriber got %d events, want 2", got)
	}

	bus.Unsubscribe(rooms)
	if _, ok := <-rooms; !ok {
		return
	}
	if _, ok := <-rooms; ok {
		t.Fatal("channel should be closed after Unsubscribe")
	}
}

func TestPublishWaitReachesFullSubscriber(t *testing.T) {
	bus := NewEventBusWithBuffer(1)
	defer bus.Close()

	ch := bus.Subscribe([]EventType{EventTypeRoomsLoaded, EventTypeSessionCleared})
	bus.Publish(RoomsLoadedEvent{EventTime: time.Now()})
	bus.Publish(SessionClearedEvent{EventTime: time.Now()})
	if got := len(ch); got != 1 {
		t.Fatalf("buffered events = %d, want 1", got)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		bus.PublishWait(context.Background(), SessionClearedEvent{EventTime: time.Now()})
	}()

	if evt := <-ch; evt.Type() != EventTypeRoomsLoaded {
		t.Fatalf("first event = %s", evt.Type())
	}
	select {
	case evt := <-ch:
		if evt.Type() != EventTypeSessionCleared {
			t.Fatalf("second event = %s, want %s", evt.Type(), EventTypeSessionCleared)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("PublishWait never delivered to the full subscriber")
	}
	<-done
}

func TestPublishWaitGivesUpWithContext(t *testing.T) {
	bus := NewEventBusWithBuffer(1)
	defer bus.Close()

	ch := bus.Subscribe(nil)
	bus.Publish(RoomsLoadedEvent{EventTime: time.Now()})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	bus.PublishWait(ctx, SessionClearedEvent{EventTime: time.Now()})

	if got := len(ch); got != 1 {
		t.Fatalf("buffered events = %d, want the original 1", got)
	}
}

func TestInboundFor(t *testing.T) {
	viewer := AuthContext{Token: "t", UserID: "admin-1", Role: RoleAdmin}
	cases := []struct {
		name string
		msg  ChatMessage
		want bool
	}{
		{"customer", ChatMessage{SenderID: "cust-1", SenderRole: RoleCustomer}, true},
		{"other admin", ChatMessage{SenderID: "admin-2", SenderRole: RoleAdmin}, false},
		{"own echo without role", ChatMessage{SenderID: "admin-1"}, false},
		{"unknown sender without role", ChatMessage{SenderID: "cust-1"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.msg.InboundFor(viewer); got != tc.want {
				t.Fatalf("InboundFor() = %v, want %v", got, tc.want)
			}
		})
	}
}
