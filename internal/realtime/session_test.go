package realtime

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/clippy-oss/homie/storefront-realtime/internal/domain"
)

var testAuth = domain.AuthContext{Token: "tok", UserID: "u1", UserName: "Ada", Role: domain.RoleCustomer}

func newPushServer(t *testing.T, handle func(c *websocket.Conn)) (*httptest.Server, string) {
	t.Helper()
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer c.Close()
		handle(c)
	}))
	t.Cleanup(srv.Close)
	return srv, "ws" + strings.TrimPrefix(srv.URL, "http")
}

func drain(c *websocket.Conn) {
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}

// readFrame returns nil when the client goes away; handlers can outlive the test.
func readFrame(c *websocket.Conn) map[string]interface{} {
	c.SetReadDeadline(time.Now().Add(2 * time.Second))
	var frame map[string]interface{}
	if err := c.ReadJSON(&frame); err != nil {
		return nil
	}
	return frame
}

func waitEvent(t *testing.T, ch <-chan Event) Event {
	t.Helper()
	select {
	case evt := <-ch:
		return evt
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

func waitStatus(t *testing.T, ch <-chan StatusEvent, want State) StatusEvent {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case st := <-ch:
			if st.State == want {
				return st
			}
		case <-deadline:
			t.Fatalf("timed out waiting for state %s", want)
			return StatusEvent{}
		}
	}
}

type fakeTimer struct {
	stopped atomic.Bool
}

func (f *fakeTimer) Stop() bool {
	f.stopped.Store(true)
	return true
}

// recordingScheduler records every scheduled delay and fires the first `fire` callbacks.
type recordingScheduler struct {
	mu      sync.Mutex
	delays  []time.Duration
	pending []func()
	timers  []*fakeTimer
	fire    int
	done    chan struct{}
	want    int
}

func newRecordingScheduler(fire, want int) *recordingScheduler {
	return &recordingScheduler{fire: fire, want: want, done: make(chan struct{})}
}

func (r *recordingScheduler) after(d time.Duration, f func()) stopper {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.delays = append(r.delays, d)
	r.pending = append(r.pending, f)
	timer := &fakeTimer{}
	r.timers = append(r.timers, timer)
	if len(r.delays) <= r.fire {
		go f()
	}
	if len(r.delays) == r.want {
		close(r.done)
	}
	return timer
}

func (r *recordingScheduler) wait(t *testing.T) []time.Duration {
	t.Helper()
	select {
	case <-r.done:
	case <-time.After(3 * time.Second):
		t.Fatal("timed out waiting for reconnect scheduling")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]time.Duration(nil), r.delays...)
}

func TestConnectSendsAuthFrameAndDeliversTypedEvents(t *testing.T) {
	authFrames := make(chan map[string]interface{}, 1)
	_, url := newPushServer(t, func(c *websocket.Conn) {
		authFrames <- readFrame(c)
		c.WriteMessage(websocket.TextMessage, []byte(`{"type":"user_message","id":"m1","room_id":"r1","sender_id":"u2","message":"hi"}`))
		c.WriteMessage(websocket.TextMessage, []byte(`this is not json`))
		c.WriteMessage(websocket.TextMessage, []byte(`{"type":"room_update","room_id":"r1","unread_count":1}`))
		drain(c)
	})

	s := NewSession(Config{Name: "chat", URL: url}, zerolog.Nop())
	events, cancel := s.Subscribe()
	defer cancel()

	s.Connect(testAuth)
	defer s.Disconnect()

	select {
	case auth := <-authFrames:
		if auth["type"] != "auth" || auth["user_id"] != "u1" || auth["role"] != "customer" {
			t.Fatalf("unexpected auth frame: %v", auth)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("server never received the auth frame")
	}

	if evt, ok := waitEvent(t, events).(ChatMessageEvent); !ok || evt.Message.ID != "m1" {
		t.Fatalf("first event = %#v, want chat message m1", evt)
	}
	if _, ok := waitEvent(t, events).(RoomUpdate); !ok {
		t.Fatal("malformed frame should be skipped and the room update delivered next")
	}
	if s.State() != StateConnected {
		t.Fatalf("State() = %s", s.State())
	}
}

func TestConnectIsIdempotent(t *testing.T) {
	var upgrades atomic.Int32
	_, url := newPushServer(t, func(c *websocket.Conn) {
		upgrades.Add(1)
		drain(c)
	})

	s := NewSession(Config{Name: "chat", URL: url}, zerolog.Nop())
	status, cancel := s.StatusChanges()
	defer cancel()

	s.Connect(testAuth)
	s.Connect(testAuth)
	waitStatus(t, status, StateConnected)
	s.Connect(testAuth)
	time.Sleep(50 * time.Millisecond)

	if got := upgrades.Load(); got != 1 {
		t.Fatalf("server saw %d connections, want 1", got)
	}
	s.Disconnect()
	s.Disconnect()
	if s.State() != StateDisconnected {
		t.Fatalf("State() = %s after Disconnect", s.State())
	}
}

func TestSendWhileDisconnectedDrops(t *testing.T) {
	s := NewSession(Config{Name: "chat", URL: "ws://127.0.0.1:1/ws/chat"}, zerolog.Nop())
	if s.Send(NewPingFrame()) {
		t.Fatal("Send on a closed channel without an outbox must report a drop")
	}
}

func TestOutboxFlushedAfterAuth(t *testing.T) {
	frames := make(chan map[string]interface{}, 8)
	_, url := newPushServer(t, func(c *websocket.Conn) {
		for i := 0; i < 3; i++ {
			f := readFrame(c)
			if f == nil {
				return
			}
			frames <- f
		}
		drain(c)
	})

	s := NewSession(Config{Name: "chat", URL: url, OutboxSize: 2}, zerolog.Nop())
	msg := func(text string) Frame {
		return NewChatFrame(&domain.ChatMessage{RoomID: "r1", SenderID: "u1", SenderRole: domain.RoleCustomer, Message: text})
	}
	for _, text := range []string{"one", "two", "three"} {
		if !s.Send(msg(text)) {
			t.Fatalf("Send(%q) should have been queued", text)
		}
	}

	s.Connect(testAuth)
	defer s.Disconnect()

	var got []string
	for i := 0; i < 3; i++ {
		select {
		case f := <-frames:
			if i == 0 {
				got = append(got, f["type"].(string))
			} else {
				got = append(got, f["message"].(string))
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out after %v", got)
		}
	}
	want := []string{"auth", "two", "three"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("server received %v, want %v", got, want)
		}
	}
}

func TestAuthPrecedesConcurrentSends(t *testing.T) {
	frames := make(chan map[string]interface{}, 8)
	_, url := newPushServer(t, func(c *websocket.Conn) {
		for i := 0; i < 3; i++ {
			f := readFrame(c)
			if f == nil {
				return
			}
			frames <- f
		}
		drain(c)
	})

	s := NewSession(Config{Name: "chat", URL: url}, zerolog.Nop())
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		live := NewChatFrame(&domain.ChatMessage{RoomID: "r1", SenderID: "u1", SenderRole: domain.RoleCustomer, Message: "live"})
		for {
			select {
			case <-stop:
				return
			default:
				s.Send(live)
			}
		}
	}()
	defer func() {
		close(stop)
		wg.Wait()
		s.Disconnect()
	}()

	s.Connect(testAuth)

	for i := 0; i < 3; i++ {
		select {
		case f := <-frames:
			if i == 0 && f["type"] != "auth" {
				t.Fatalf("first frame = %v, want auth", f)
			}
			if i > 0 && f["message"] != "live" {
				t.Fatalf("frame %d = %v, want a live chat frame", i, f)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for frame %d", i)
		}
	}
}

func TestReconnectBackoffGrowsToCap(t *testing.T) {
	srv, url := newPushServer(t, func(c *websocket.Conn) {})
	srv.Close()

	sched := newRecordingScheduler(6, 7)
	s := NewSession(Config{Name: "chat", URL: url}, zerolog.Nop(), withAfterFunc(sched.after))
	s.Connect(testAuth)
	defer s.Disconnect()

	delays := sched.wait(t)
	want := []time.Duration{
		1 * time.Second, 2 * time.Second, 4 * time.Second, 8 * time.Second,
		16 * time.Second, 30 * time.Second, 30 * time.Second,
	}
	for i := range want {
		if delays[i] != want[i] {
			t.Fatalf("delay %d = %v, want %v (all: %v)", i, delays[i], want[i], delays)
		}
	}
}

func TestSuccessfulOpenResetsBackoff(t *testing.T) {
	var opens atomic.Int32
	_, url := newPushServer(t, func(c *websocket.Conn) {
		opens.Add(1)
		readFrame(c)
	})

	sched := newRecordingScheduler(2, 3)
	s := NewSession(Config{Name: "chat", URL: url}, zerolog.Nop(), withAfterFunc(sched.after))
	status, cancel := s.StatusChanges()
	defer cancel()

	s.Connect(testAuth)
	defer s.Disconnect()

	if st := waitStatus(t, status, StateConnected); st.Reconnected {
		t.Fatal("first open must not be flagged as a reconnect")
	}
	if st := waitStatus(t, status, StateConnected); !st.Reconnected {
		t.Fatal("open after an unexpected close must be flagged as a reconnect")
	}

	for i, d := range sched.wait(t) {
		if d != time.Second {
			t.Fatalf("delay %d = %v, want base delay after each successful open", i, d)
		}
	}
	if opens.Load() < 3 {
		t.Fatalf("expected at least 3 opens, got %d", opens.Load())
	}
}

func TestDisconnectCancelsPendingReconnect(t *testing.T) {
	srv, url := newPushServer(t, func(c *websocket.Conn) {})
	srv.Close()

	sched := newRecordingScheduler(0, 1)
	s := NewSession(Config{Name: "chat", URL: url}, zerolog.Nop(), withAfterFunc(sched.after))
	s.Connect(testAuth)
	sched.wait(t)

	s.Disconnect()

	sched.mu.Lock()
	timer, fire := sched.timers[0], sched.pending[0]
	sched.mu.Unlock()
	if !timer.stopped.Load() {
		t.Fatal("Disconnect must stop the pending reconnect timer")
	}

	fire()
	if s.State() != StateDisconnected {
		t.Fatalf("stale timer from a previous generation reconnected: state %s", s.State())
	}
	if s.Attempt() != 0 {
		t.Fatalf("Disconnect must reset backoff, attempt = %d", s.Attempt())
	}
}

func TestHeartbeatAndServerPing(t *testing.T) {
	frames := make(chan string, 8)
	_, url := newPushServer(t, func(c *websocket.Conn) {
		readFrame(c)
		c.WriteMessage(websocket.TextMessage, []byte(`{"type":"ping"}`))
		for i := 0; i < 3; i++ {
			f := readFrame(c)
			if f == nil {
				return
			}
			frames <- f["type"].(string)
		}
		drain(c)
	})

	s := NewSession(Config{Name: "notifications", URL: url, HeartbeatInterval: 20 * time.Millisecond}, zerolog.Nop())
	s.Connect(testAuth)
	defer s.Disconnect()

	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		select {
		case typ := <-frames:
			seen[typ] = true
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out, saw %v", seen)
		}
	}
	if !seen["ping"] || !seen["pong"] {
		t.Fatalf("expected heartbeat ping and pong reply, saw %v", seen)
	}
}

func TestChatFrameEncoding(t *testing.T) {
	f := NewChatFrame(&domain.ChatMessage{
		ID: "m1", RoomID: "r1", SenderID: "a1", SenderRole: domain.RoleAdmin,
		Message: "on it", MessageType: domain.MessageTypeText,
	})
	raw, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var got map[string]interface{}
	json.Unmarshal(raw, &got)
	if got["type"] != "admin_message" || got["room_id"] != "r1" || got["message"] != "on it" {
		t.Fatalf("unexpected frame %s", raw)
	}
}
