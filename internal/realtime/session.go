// Package realtime owns the push channel: one WebSocket per session with
// auth handshake, heartbeat and capped exponential-backoff reconnect.
package realtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/clippy-oss/homie/storefront-realtime/internal/domain"
	"github.com/clippy-oss/homie/storefront-realtime/internal/metrics"
)

const (
	DefaultHeartbeatInterval = 30 * time.Second

	writeWait        = 10 * time.Second
	handshakeTimeout = 15 * time.Second
	subscriberBuffer = 100
)

type State int

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	default:
		return "disconnected"
	}
}

// StatusEvent reports a channel state change. Reconnected is set on an open that
// follows an unexpected close, which is the cue for consumers to resync.
type StatusEvent struct {
	Channel     string
	State       State
	Reconnected bool
	Reason      string
}

type Config struct {
	Name               string
	URL                string
	HeartbeatInterval  time.Duration
	ReconnectBaseDelay time.Duration
	ReconnectMaxDelay  time.Duration
	OutboxSize         int
}

type stopper interface {
	Stop() bool
}

type afterFunc func(d time.Duration, f func()) stopper

type Option func(*Session)

func WithDialer(d *websocket.Dialer) Option {
	return func(s *Session) { s.dialer = d }
}

func withAfterFunc(f afterFunc) Option {
	return func(s *Session) { s.afterFunc = f }
}

func withClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// Session maintains one logical push connection. Every state transition happens
// under mu; gen identifies the current connection generation so that callbacks
// from a superseded dial, read loop or timer are ignored.
type Session struct {
	cfg       Config
	dialer    *websocket.Dialer
	log       zerolog.Logger
	afterFunc afterFunc
	now       func() time.Time

	mu            sync.Mutex
	state         State
	auth          domain.AuthContext
	conn          *websocket.Conn
	gen           uint64
	timer         stopper
	backoff       *Backoff
	everConnected bool
	stopHeartbeat context.CancelFunc
	outbox        *outbox

	writeMu sync.Mutex

	subMu      sync.RWMutex
	subs       map[chan Event]struct{}
	statusSubs map[chan StatusEvent]struct{}
}

func NewSession(cfg Config, log zerolog.Logger, opts ...Option) *Session {
	if cfg.HeartbeatInterval <= 0 {
		cfg.HeartbeatInterval = DefaultHeartbeatInterval
	}
	if cfg.ReconnectBaseDelay <= 0 {
		cfg.ReconnectBaseDelay = DefaultReconnectBaseDelay
	}
	if cfg.ReconnectMaxDelay <= 0 {
		cfg.ReconnectMaxDelay = DefaultReconnectMaxDelay
	}
	s := &Session{
		cfg:    cfg,
		dialer: &websocket.Dialer{HandshakeTimeout: handshakeTimeout, Proxy: http.ProxyFromEnvironment},
		log:    log.With().Str("channel", cfg.Name).Logger(),
		afterFunc: func(d time.Duration, f func()) stopper {
			return time.AfterFunc(d, f)
		},
		now:        time.Now,
		backoff:    NewBackoff(cfg.ReconnectBaseDelay, cfg.ReconnectMaxDelay),
		outbox:     newOutbox(cfg.OutboxSize),
		subs:       make(map[chan Event]struct{}),
		statusSubs: make(map[chan StatusEvent]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	metrics.ConnectionState.WithLabelValues(cfg.Name).Set(0)
	return s
}

func (s *Session) Name() string { return s.cfg.Name }

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Attempt is the number of reconnects scheduled since the last successful open.
func (s *Session) Attempt() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.backoff.Attempt()
}

// Connect opens the channel. It is a no-op while connected, connecting, or waiting to reconnect.
func (s *Session) Connect(auth domain.AuthContext) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateDisconnected || s.timer != nil {
		return
	}
	s.auth = auth
	s.dialLocked()
}

// Disconnect closes the channel, cancels any pending reconnect and resets backoff. Idempotent.
func (s *Session) Disconnect() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.stopHeartbeat != nil {
		s.stopHeartbeat()
		s.stopHeartbeat = nil
	}
	s.backoff.Reset()
	s.everConnected = false
	s.outbox.drain()

	wasOpen := s.state != StateDisconnected
	if s.conn != nil {
		s.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, "client disconnect"),
			time.Now().Add(time.Second))
		s.conn.Close()
		s.conn = nil
	}
	s.setStateLocked(StateDisconnected)
	if wasOpen {
		s.log.Info().Msg("disconnected")
		s.publishStatus(StatusEvent{Channel: s.cfg.Name, State: StateDisconnected, Reason: "client disconnect"})
	}
}

// Send transmits f if the channel is open. Otherwise f goes to the outbox when one is
// configured, or is dropped. It reports whether f was written or queued.
func (s *Session) Send(f Frame) bool {
	s.mu.Lock()
	conn := s.conn
	if conn == nil {
		kept, evicted := s.outbox.push(f)
		s.mu.Unlock()
		if evicted || !kept {
			metrics.DroppedFrames.WithLabelValues(s.cfg.Name).Inc()
		}
		if !kept {
			s.log.Debug().Str("type", string(f.FrameType())).Msg("channel not open, dropping frame")
		}
		return kept
	}
	s.mu.Unlock()

	return s.write(conn, f) == nil
}

// Subscribe returns a stream of decoded inbound events and a cancel func.
// A subscriber that falls behind misses events; it never blocks the read loop.
func (s *Session) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)
	s.subMu.Lock()
	s.subs[ch] = struct{}{}
	s.subMu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.subs, ch)
			s.subMu.Unlock()
		})
	}
}

func (s *Session) StatusChanges() (<-chan StatusEvent, func()) {
	ch := make(chan StatusEvent, subscriberBuffer)
	s.subMu.Lock()
	s.statusSubs[ch] = struct{}{}
	s.subMu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.subMu.Lock()
			delete(s.statusSubs, ch)
			s.subMu.Unlock()
		})
	}
}

func (s *Session) dialLocked() {
	s.setStateLocked(StateConnecting)
	go s.dial(s.gen)
}

func (s *Session) dial(gen uint64) {
	s.mu.Lock()
	auth := s.auth
	s.mu.Unlock()

	header := http.Header{}
	if auth.Token != "" {
		header.Set("Authorization", "Bearer "+auth.Token)
	}

	ctx, cancel := context.WithTimeout(context.Background(), handshakeTimeout)
	conn, _, err := s.dialer.DialContext(ctx, s.cfg.URL, header)
	cancel()
	if err != nil {
		s.handleClose(gen, fmt.Errorf("dial: %w", err))
		return
	}

	// writeMu is held from the moment conn becomes visible to Send until auth and
	// the outbox are on the wire, so no caller frame can overtake them.
	s.writeMu.Lock()
	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		s.writeMu.Unlock()
		conn.Close()
		return
	}
	s.conn = conn
	s.timer = nil
	reconnected := s.everConnected
	s.everConnected = true
	s.backoff.Reset()
	hbCtx, stop := context.WithCancel(context.Background())
	s.stopHeartbeat = stop
	pending := s.outbox.drain()
	s.setStateLocked(StateConnected)
	s.mu.Unlock()

	s.log.Info().Bool("reconnected", reconnected).Msg("connected")

	err = s.writeLocked(conn, NewAuthFrame(auth))
	if err == nil {
		for _, f := range pending {
			s.writeLocked(conn, f)
		}
	}
	s.writeMu.Unlock()
	if err != nil {
		s.handleClose(gen, err)
		return
	}

	s.publishStatus(StatusEvent{Channel: s.cfg.Name, State: StateConnected, Reconnected: reconnected})

	go s.heartbeat(hbCtx, conn)
	s.readLoop(gen, conn)
}

func (s *Session) readLoop(gen uint64, conn *websocket.Conn) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			s.handleClose(gen, err)
			return
		}

		evt, err := Decode(data, s.now())
		if err != nil {
			metrics.MalformedFrames.WithLabelValues(s.cfg.Name).Inc()
			s.log.Warn().Err(err).Int("bytes", len(data)).Msg("dropping push frame")
			continue
		}
		metrics.FramesReceived.WithLabelValues(s.cfg.Name, string(evt.Kind())).Inc()

		if _, ok := evt.(Ping); ok {
			s.write(conn, NewPongFrame())
		}
		s.dispatch(evt)
	}
}

func (s *Session) heartbeat(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(s.cfg.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.write(conn, NewPingFrame()); err != nil {
				return
			}
		}
	}
}

// handleClose moves an unexpectedly closed generation into reconnect wait.
func (s *Session) handleClose(gen uint64, cause error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		return
	}
	if s.conn != nil {
		s.conn.Close()
		s.conn = nil
	}
	if s.stopHeartbeat != nil {
		s.stopHeartbeat()
		s.stopHeartbeat = nil
	}
	wasConnected := s.state == StateConnected
	s.setStateLocked(StateDisconnected)

	delay := s.backoff.Next()
	metrics.Reconnects.WithLabelValues(s.cfg.Name).Inc()
	s.log.Info().Err(cause).Int("attempt", s.backoff.Attempt()).Dur("delay", delay).Msg("scheduling reconnect")
	s.timer = s.afterFunc(delay, func() { s.reconnect(gen) })

	if wasConnected {
		reason := "connection lost"
		if cause != nil {
			reason = cause.Error()
		}
		var closeErr *websocket.CloseError
		if errors.As(cause, &closeErr) && closeErr.Text != "" {
			reason = closeErr.Text
		}
		s.publishStatus(StatusEvent{Channel: s.cfg.Name, State: StateDisconnected, Reason: reason})
	}
}

func (s *Session) reconnect(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen || s.state != StateDisconnected {
		return
	}
	s.timer = nil
	s.dialLocked()
}

func (s *Session) write(conn *websocket.Conn, f Frame) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.writeLocked(conn, f)
}

// writeLocked requires writeMu.
func (s *Session) writeLocked(conn *websocket.Conn, f Frame) error {
	data, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("encode %s frame: %w", f.FrameType(), err)
	}

	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		s.log.Debug().Err(err).Str("type", string(f.FrameType())).Msg("write failed")
		return err
	}
	metrics.FramesSent.WithLabelValues(s.cfg.Name, string(f.FrameType())).Inc()
	return nil
}

func (s *Session) dispatch(evt Event) {
	s.subMu.RLock()
	defer s.subMu.RUnlock()

	for ch := range s.subs {
		select {
		case ch <- evt:
		default:
			s.log.Warn().Str("type", string(evt.Kind())).Msg("subscriber full, event skipped")
		}
	}
}

func (s *Session) publishStatus(st StatusEvent) {
	s.subMu.RLock()
	defer s.subMu.RUnlock()

	for ch := range s.statusSubs {
		select {
		case ch <- st:
		default:
		}
	}
}

func (s *Session) setStateLocked(st State) {
	s.state = st
	metrics.ConnectionState.WithLabelValues(s.cfg.Name).Set(float64(st))
}
