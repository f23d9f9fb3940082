package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/clippy-oss/homie/storefront-realtime/internal/domain"
	"github.com/clippy-oss/homie/storefront-realtime/internal/realtime"
	"github.com/clippy-oss/homie/storefront-realtime/internal/store"
)

const (
	ChannelChat          = "chat"
	ChannelNotifications = "notifications"

	DefaultAdminPollInterval = 30 * time.Second

	clearedDeliveryTimeout = 5 * time.Second
)

// Transport is the push channel as seen by the orchestrator. *realtime.Session implements it.
type Transport interface {
	Connect(auth domain.AuthContext)
	Disconnect()
	Send(f realtime.Frame) bool
	State() realtime.State
	Subscribe() (<-chan realtime.Event, func())
	StatusChanges() (<-chan realtime.StatusEvent, func())
}

// TransportFactory builds the push channel for one of ChannelChat or ChannelNotifications.
type TransportFactory func(channel string) Transport

// APIFactory builds REST clients bound to the session's credentials.
type APIFactory func(auth domain.AuthContext) (store.ChatAPI, store.NotificationAPI)

type SessionState int

const (
	SessionDisconnected SessionState = iota
	SessionConnecting
	SessionConnected
	SessionTornDown
)

func (s SessionState) String() string {
	switch s {
	case SessionConnecting:
		return "connecting"
	case SessionConnected:
		return "connected"
	case SessionTornDown:
		return "torn_down"
	default:
		return "disconnected"
	}
}

type SessionServiceConfig struct {
	AdminPollInterval time.Duration
}

// session is everything built for one authenticated login.
type session struct {
	auth    domain.AuthContext
	rooms   *store.RoomStore
	notes   *store.NotificationStore
	chatTx  Transport
	notifTx Transport
	cancel  context.CancelFunc
	unsub   []func()
}

// SessionService owns the lifecycle of one viewer's session: it builds the stores and push
// channels on Start, routes push events into the stores, resyncs after a reconnect, polls the
// room list for admins, and tears everything down on Stop.
type SessionService struct {
	cfg          SessionServiceConfig
	newAPI       APIFactory
	newTransport TransportFactory
	eventBus     domain.EventBus
	log          zerolog.Logger

	mu       sync.RWMutex
	current  *session
	tornDown bool
	wg       sync.WaitGroup
}

func NewSessionService(
	cfg SessionServiceConfig,
	newAPI APIFactory,
	newTransport TransportFactory,
	eventBus domain.EventBus,
	log zerolog.Logger,
) *SessionService {
	if cfg.AdminPollInterval <= 0 {
		cfg.AdminPollInterval = DefaultAdminPollInterval
	}
	return &SessionService{
		cfg:          cfg,
		newAPI:       newAPI,
		newTransport: newTransport,
		eventBus:     eventBus,
		log:          log,
	}
}

// Start builds a fresh session for auth, opens both push channels and fires the initial REST
// loads in parallel. Load errors are returned but leave the session running. Calling Start on
// a running session is a no-op.
func (s *SessionService) Start(ctx context.Context, auth domain.AuthContext) error {
	if err := auth.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	if s.current != nil {
		s.mu.Unlock()
		return nil
	}

	chatAPI, notifAPI := s.newAPI(auth)
	chatTx := s.newTransport(ChannelChat)
	notifTx := s.newTransport(ChannelNotifications)

	sess := &session{
		auth:    auth,
		rooms:   store.NewRoomStore(chatAPI, chatTx, auth, s.eventBus, s.log.With().Str("store", "rooms").Logger()),
		notes:   store.NewNotificationStore(notifAPI, s.eventBus, s.log.With().Str("store", "notifications").Logger()),
		chatTx:  chatTx,
		notifTx: notifTx,
	}
	runCtx, cancel := context.WithCancel(context.Background())
	sess.cancel = cancel

	chatEvents, unsubChat := chatTx.Subscribe()
	chatStatus, unsubChatStatus := chatTx.StatusChanges()
	notifEvents, unsubNotif := notifTx.Subscribe()
	notifStatus, unsubNotifStatus := notifTx.StatusChanges()
	sess.unsub = []func(){unsubChat, unsubChatStatus, unsubNotif, unsubNotifStatus}

	s.wg.Add(4)
	go s.pumpEvents(runCtx, sess, ChannelChat, chatEvents)
	go s.pumpEvents(runCtx, sess, ChannelNotifications, notifEvents)
	go s.pumpStatus(runCtx, sess, chatStatus)
	go s.pumpStatus(runCtx, sess, notifStatus)

	if auth.Role == domain.RoleAdmin {
		s.wg.Add(1)
		go s.pollRooms(runCtx, sess)
	}

	s.current = sess
	s.tornDown = false
	s.mu.Unlock()

	s.log.Info().Str("user_id", auth.UserID).Str("role", string(auth.Role)).Msg("session started")

	chatTx.Connect(auth)
	notifTx.Connect(auth)

	return s.load(ctx, sess)
}

// Stop disconnects both channels, clears every store and signals the archive to purge.
// The cleared event waits up to five seconds for a full subscriber.
// It is safe to call more than once.
func (s *SessionService) Stop() {
	s.mu.Lock()
	sess := s.current
	s.current = nil
	s.tornDown = true
	s.mu.Unlock()

	if sess == nil {
		return
	}

	sess.cancel()
	for _, unsub := range sess.unsub {
		unsub()
	}
	sess.chatTx.Disconnect()
	sess.notifTx.Disconnect()
	sess.rooms.Close()
	sess.notes.Close()
	s.wg.Wait()

	now := time.Now()
	s.eventBus.Publish(domain.ConnectionStatusEvent{Channel: ChannelChat, Connected: false, Reason: "logout", EventTime: now})
	s.eventBus.Publish(domain.ConnectionStatusEvent{Channel: ChannelNotifications, Connected: false, Reason: "logout", EventTime: now})
	// the archive purges on this event, so wait for subscribers with full buffers
	ctx, cancel := context.WithTimeout(context.Background(), clearedDeliveryTimeout)
	s.eventBus.PublishWait(ctx, domain.SessionClearedEvent{EventTime: now})
	cancel()

	s.log.Info().Str("user_id", sess.auth.UserID).Msg("session torn down")
}

// Connect reopens the push channels of a running session.
func (s *SessionService) Connect() error {
	sess, err := s.session()
	if err != nil {
		return err
	}
	sess.chatTx.Connect(sess.auth)
	sess.notifTx.Connect(sess.auth)
	return nil
}

// Disconnect closes the push channels but keeps the stores. REST operations keep working.
func (s *SessionService) Disconnect() error {
	sess, err := s.session()
	if err != nil {
		return err
	}
	sess.chatTx.Disconnect()
	sess.notifTx.Disconnect()
	return nil
}

func (s *SessionService) State() SessionState {
	s.mu.RLock()
	sess, tornDown := s.current, s.tornDown
	s.mu.RUnlock()

	if sess == nil {
		if tornDown {
			return SessionTornDown
		}
		return SessionDisconnected
	}

	chat, notif := sess.chatTx.State(), sess.notifTx.State()
	switch {
	case chat == realtime.StateConnected && notif == realtime.StateConnected:
		return SessionConnected
	case chat == realtime.StateConnecting || notif == realtime.StateConnecting:
		return SessionConnecting
	default:
		return SessionDisconnected
	}
}

// ChannelStates reports each push channel's state by name.
func (s *SessionService) ChannelStates() map[string]realtime.State {
	sess, err := s.session()
	if err != nil {
		return map[string]realtime.State{ChannelChat: realtime.StateDisconnected, ChannelNotifications: realtime.StateDisconnected}
	}
	return map[string]realtime.State{
		ChannelChat:          sess.chatTx.State(),
		ChannelNotifications: sess.notifTx.State(),
	}
}

func (s *SessionService) Auth() (domain.AuthContext, bool) {
	sess, err := s.session()
	if err != nil {
		return domain.AuthContext{}, false
	}
	return sess.auth, true
}

func (s *SessionService) ChatStore() (*store.RoomStore, error) {
	sess, err := s.session()
	if err != nil {
		return nil, err
	}
	return sess.rooms, nil
}

func (s *SessionService) NotificationStore() (*store.NotificationStore, error) {
	sess, err := s.session()
	if err != nil {
		return nil, err
	}
	return sess.notes, nil
}

// OpenChat is the customer's chat-open intent: get or create the support room and select it.
func (s *SessionService) OpenChat(ctx context.Context) (*domain.ChatRoom, error) {
	sess, err := s.session()
	if err != nil {
		return nil, err
	}
	return sess.rooms.CreateUserRoom(ctx)
}

func (s *SessionService) SelectRoom(ctx context.Context, roomID string) error {
	sess, err := s.session()
	if err != nil {
		return err
	}
	return sess.rooms.SelectRoom(ctx, roomID)
}

// SendMessage sends text to the selected room. A customer without a room opens one first.
func (s *SessionService) SendMessage(ctx context.Context, text string) (*domain.ChatMessage, error) {
	sess, err := s.session()
	if err != nil {
		return nil, err
	}
	roomID := sess.rooms.CurrentRoomID()
	if roomID == "" && sess.auth.Role == domain.RoleCustomer {
		room, err := sess.rooms.CreateUserRoom(ctx)
		if err != nil {
			return nil, err
		}
		roomID = room.ID
	}
	return sess.rooms.SendOutgoingMessage(ctx, roomID, text)
}

// Refresh reloads every snapshot the session holds.
func (s *SessionService) Refresh(ctx context.Context) error {
	sess, err := s.session()
	if err != nil {
		return err
	}
	if err := s.load(ctx, sess); err != nil {
		return err
	}
	if roomID := sess.rooms.CurrentRoomID(); roomID != "" {
		return sess.rooms.LoadMessages(ctx, roomID)
	}
	return nil
}

func (s *SessionService) session() (*session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil, domain.ErrSessionTornDown
	}
	return s.current, nil
}

func (s *SessionService) load(ctx context.Context, sess *session) error {
	g, gctx := errgroup.WithContext(ctx)
	if sess.auth.Role == domain.RoleAdmin {
		g.Go(func() error { return sess.rooms.LoadRooms(gctx) })
		g.Go(func() error { return sess.rooms.LoadStats(gctx) })
	}
	g.Go(func() error { return sess.notes.LoadNotifications(gctx, domain.NotificationFilter{}) })
	g.Go(func() error { return sess.notes.LoadStats(gctx) })

	if err := g.Wait(); err != nil {
		return fmt.Errorf("initial load: %w", err)
	}
	return nil
}

func (s *SessionService) pumpEvents(ctx context.Context, sess *session, channel string, events <-chan realtime.Event) {
	defer s.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case evt, ok := <-events:
			if !ok {
				return
			}
			s.handlePushEvent(ctx, sess, channel, evt)
		}
	}
}

func (s *SessionService) handlePushEvent(ctx context.Context, sess *session, channel string, evt realtime.Event) {
	var err error
	switch e := evt.(type) {
	case realtime.ChatMessageEvent:
		msg := e.Message
		known := sess.rooms.HasRoom(msg.RoomID)
		_, err = sess.rooms.AppendIncomingMessage(msg.RoomID, &msg)
		if !known && sess.auth.Role == domain.RoleAdmin {
			s.reloadRooms(ctx, sess, "message for unknown room")
		}

	case realtime.RoomUpdate:
		var applied bool
		applied, err = sess.rooms.ApplyRoomUpdate(e.Patch)
		if err == nil && !applied && sess.auth.Role == domain.RoleAdmin {
			s.reloadRooms(ctx, sess, "update for unknown room")
		}

	case realtime.ChatStatsUpdate:
		err = sess.rooms.ApplyStats(e.Stats)

	case realtime.NotificationCreated:
		n := e.Notification
		err = sess.notes.ApplyNew(&n)

	case realtime.NotificationChanged:
		err = sess.notes.ApplyUpdated(e.Update)

	case realtime.NotificationStatsUpdate:
		err = sess.notes.ApplyStats(e.Stats)

	case realtime.AuthResult:
		if !e.Success {
			s.log.Warn().Str("channel", channel).Str("reason", e.Message).Msg("push channel rejected credentials")
		}

	case realtime.Ping, realtime.Pong:

	default:
		s.log.Debug().Str("channel", channel).Str("kind", string(evt.Kind())).Msg("unhandled push event")
	}

	if err != nil && !errors.Is(err, domain.ErrStoreClosed) {
		s.log.Warn().Err(err).Str("channel", channel).Str("kind", string(evt.Kind())).Msg("failed to apply push event")
	}
}

func (s *SessionService) pumpStatus(ctx context.Context, sess *session, status <-chan realtime.StatusEvent) {
	defer s.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case st, ok := <-status:
			if !ok {
				return
			}
			s.eventBus.Publish(domain.ConnectionStatusEvent{
				Channel:   st.Channel,
				Connected: st.State == realtime.StateConnected,
				Reason:    st.Reason,
				EventTime: time.Now(),
			})
			if st.State == realtime.StateConnected && st.Reconnected {
				s.resync(ctx, sess, st.Channel)
			}
		}
	}
}

// resync reloads the snapshots a channel feeds after it recovers from an unexpected close.
func (s *SessionService) resync(ctx context.Context, sess *session, channel string) {
	s.log.Info().Str("channel", channel).Msg("push channel reconnected, resyncing")

	var err error
	switch channel {
	case ChannelChat:
		if sess.auth.Role == domain.RoleAdmin {
			err = sess.rooms.LoadRooms(ctx)
		}
		if roomID := sess.rooms.CurrentRoomID(); roomID != "" && err == nil {
			err = sess.rooms.LoadMessages(ctx, roomID)
		}
	case ChannelNotifications:
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error { return sess.notes.LoadNotifications(gctx, domain.NotificationFilter{}) })
		g.Go(func() error { return sess.notes.LoadStats(gctx) })
		err = g.Wait()
	}

	if err != nil && !errors.Is(err, domain.ErrStoreClosed) && ctx.Err() == nil {
		s.log.Warn().Err(err).Str("channel", channel).Msg("resync failed")
	}
}

func (s *SessionService) reloadRooms(ctx context.Context, sess *session, reason string) {
	if err := sess.rooms.LoadRooms(ctx); err != nil && !errors.Is(err, domain.ErrStoreClosed) && ctx.Err() == nil {
		s.log.Warn().Err(err).Str("reason", reason).Msg("room reload failed")
	}
}

// pollRooms is the admin's REST fallback next to the push channel. Failures wait for the next tick.
func (s *SessionService) pollRooms(ctx context.Context, sess *session) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cfg.AdminPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.reloadRooms(ctx, sess, "poll")
		}
	}
}

func (s *SessionService) GetEventBus() domain.EventBus {
	return s.eventBus
}
