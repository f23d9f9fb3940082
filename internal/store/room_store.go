// Package store holds the per-session view of chat rooms, messages and notifications.
// Stores are built once per authenticated session and dropped on logout.
package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/clippy-oss/homie/storefront-realtime/internal/api"
	"github.com/clippy-oss/homie/storefront-realtime/internal/domain"
	"github.com/clippy-oss/homie/storefront-realtime/internal/metrics"
	"github.com/clippy-oss/homie/storefront-realtime/internal/realtime"
)

// DuplicateWindow bounds the secondary-key match between a client-synthesized
// message and its server-assigned counterpart.
const DuplicateWindow = 10 * time.Second

type ChatAPI interface {
	ListRooms(ctx context.Context) ([]*domain.ChatRoom, error)
	GetOrCreateUserRoom(ctx context.Context) (*domain.ChatRoom, error)
	ListMessages(ctx context.Context, roomID string) ([]*domain.ChatMessage, error)
	SendMessage(ctx context.Context, roomID string, req api.SendMessageRequest) (*domain.ChatMessage, error)
	MarkRoomRead(ctx context.Context, roomID string) error
	ChatStats(ctx context.Context) (*domain.ChatStats, error)
}

// Sender is the best-effort push path for outgoing chat frames.
type Sender interface {
	Send(f realtime.Frame) bool
}

type RoomStore struct {
	api    ChatAPI
	push   Sender
	viewer domain.AuthContext
	bus    domain.EventBus
	log    zerolog.Logger
	now    func() time.Time

	mu       sync.RWMutex
	closed   bool
	rooms    []*domain.ChatRoom
	messages map[string][]*domain.ChatMessage
	current  string
	stats    *domain.ChatStats
}

func NewRoomStore(chatAPI ChatAPI, push Sender, viewer domain.AuthContext, bus domain.EventBus, log zerolog.Logger) *RoomStore {
	return &RoomStore{
		api:      chatAPI,
		push:     push,
		viewer:   viewer,
		bus:      bus,
		log:      log,
		now:      time.Now,
		messages: make(map[string][]*domain.ChatMessage),
	}
}

func (s *RoomStore) Viewer() domain.AuthContext { return s.viewer }

// LoadRooms replaces the room list with the server snapshot.
func (s *RoomStore) LoadRooms(ctx context.Context) error {
	if s.isClosed() {
		return domain.ErrStoreClosed
	}
	rooms, err := s.api.ListRooms(ctx)
	if err != nil {
		return fmt.Errorf("load rooms: %w", err)
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return domain.ErrStoreClosed
	}
	fresh := make([]*domain.ChatRoom, 0, len(rooms))
	for _, r := range rooms {
		if r == nil || r.ID == "" {
			continue
		}
		fresh = append(fresh, r.Clone())
	}
	s.rooms = fresh
	snapshot := cloneRooms(s.rooms)
	total := s.unreadLocked()
	s.mu.Unlock()

	s.log.Debug().Int("rooms", len(snapshot)).Int("unread", total).Msg("rooms loaded")
	metrics.UnreadMessages.Set(float64(total))
	s.publish(domain.RoomsLoadedEvent{Rooms: snapshot, EventTime: s.now()})
	return nil
}

// LoadMessages replaces one room's messages with the server snapshot and marks the room read.
func (s *RoomStore) LoadMessages(ctx context.Context, roomID string) error {
	if s.isClosed() {
		return domain.ErrStoreClosed
	}
	msgs, err := s.api.ListMessages(ctx, roomID)
	if err != nil {
		return fmt.Errorf("load messages for room %s: %w", roomID, err)
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return domain.ErrStoreClosed
	}
	list := make([]*domain.ChatMessage, 0, len(msgs))
	seen := make(map[string]struct{}, len(msgs))
	for _, m := range msgs {
		if m == nil {
			continue
		}
		c := s.normalize(roomID, m)
		if _, dup := seen[c.ID]; dup {
			continue
		}
		seen[c.ID] = struct{}{}
		list = append(list, c)
	}
	s.messages[roomID] = list
	snapshot := cloneMessages(list)
	s.mu.Unlock()

	s.publish(domain.MessagesLoadedEvent{RoomID: roomID, Messages: snapshot, EventTime: s.now()})
	return s.MarkAsRead(ctx, roomID)
}

// SelectRoom makes roomID the active room and loads its messages.
func (s *RoomStore) SelectRoom(ctx context.Context, roomID string) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return domain.ErrStoreClosed
	}
	room := s.findLocked(roomID)
	if room == nil {
		s.mu.Unlock()
		return fmt.Errorf("select %s: %w", roomID, domain.ErrRoomNotFound)
	}
	s.current = roomID
	selected := room.Clone()
	s.mu.Unlock()

	s.publish(domain.RoomSelectedEvent{Room: selected, EventTime: s.now()})
	return s.LoadMessages(ctx, roomID)
}

// CreateUserRoom fetches (or creates) the customer's own support room and selects it.
func (s *RoomStore) CreateUserRoom(ctx context.Context) (*domain.ChatRoom, error) {
	if s.viewer.Role != domain.RoleCustomer {
		return nil, domain.ErrWrongRole
	}
	if s.isClosed() {
		return nil, domain.ErrStoreClosed
	}
	room, err := s.api.GetOrCreateUserRoom(ctx)
	if err != nil {
		return nil, fmt.Errorf("get or create room: %w", err)
	}
	if room == nil || room.ID == "" {
		return nil, fmt.Errorf("get or create room: %w", domain.ErrRoomNotFound)
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, domain.ErrStoreClosed
	}
	if existing := s.findLocked(room.ID); existing != nil {
		*existing = *room.Clone()
	} else {
		s.rooms = append(s.rooms, room.Clone())
	}
	s.mu.Unlock()

	if err := s.SelectRoom(ctx, room.ID); err != nil {
		return room.Clone(), err
	}
	return s.Room(room.ID)
}

// AppendIncomingMessage merges a pushed message into roomID's list. A message whose id is
// already present is ignored. Messages without an id get a synthesized one, and a server
// message replaces a synthesized message with the same content inside DuplicateWindow.
// It reports whether the list grew.
func (s *RoomStore) AppendIncomingMessage(roomID string, msg *domain.ChatMessage) (bool, error) {
	if msg == nil {
		return false, nil
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return false, domain.ErrStoreClosed
	}

	m := s.normalize(roomID, msg)
	list := s.messages[roomID]
	for _, existing := range list {
		if existing.ID == m.ID {
			s.mu.Unlock()
			return false, nil
		}
	}

	if domain.IsSynthesizedID(m.ID) {
		for _, existing := range list {
			if existing.SameContent(m, DuplicateWindow) {
				s.mu.Unlock()
				s.log.Debug().Str("room_id", roomID).Str("id", m.ID).Msg("dropping synthesized duplicate")
				return false, nil
			}
		}
	} else {
		for i, existing := range list {
			if domain.IsSynthesizedID(existing.ID) && existing.SameContent(m, DuplicateWindow) {
				m.IsRead = m.IsRead || existing.IsRead
				list[i] = m
				received := m.Clone()
				total := s.unreadLocked()
				s.mu.Unlock()
				s.log.Debug().Str("room_id", roomID).Str("local_id", existing.ID).Str("id", m.ID).Msg("replaced synthesized message")
				s.publish(domain.MessageReceivedEvent{Message: received, TotalUnread: total, EventTime: s.now()})
				return false, nil
			}
		}
	}

	s.messages[roomID] = append(list, m)

	var updated *domain.ChatRoom
	if room := s.findLocked(roomID); room != nil {
		s.touchLocked(room, m)
		if m.InboundFor(s.viewer) && !m.IsRead && roomID != s.current {
			room.UnreadCount++
		}
		updated = room.Clone()
	}
	received := m.Clone()
	total := s.unreadLocked()
	s.mu.Unlock()

	metrics.UnreadMessages.Set(float64(total))
	s.publish(domain.MessageReceivedEvent{Message: received, TotalUnread: total, EventTime: s.now()})
	if updated != nil {
		s.publish(domain.RoomUpdatedEvent{Room: updated, EventTime: s.now()})
	}
	return true, nil
}

// SendOutgoingMessage posts text to roomID and relays it over the push channel.
//
// Customers append an optimistic local copy before the POST and reconcile it to the server
// id afterwards; the local copy is kept if the POST fails. Admins append only after the
// POST succeeds. The push frame is sent only once the server has accepted the message.
func (s *RoomStore) SendOutgoingMessage(ctx context.Context, roomID, text string) (*domain.ChatMessage, error) {
	if roomID == "" {
		return nil, domain.ErrNoActiveRoom
	}
	req := api.SendMessageRequest{Message: text, MessageType: domain.MessageTypeText}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if s.isClosed() {
		return nil, domain.ErrStoreClosed
	}

	var localID string
	if s.viewer.Role == domain.RoleCustomer {
		local := domain.NewTextMessage(domain.NewLocalID(), roomID, s.viewer, text, s.now())
		local.IsRead = true
		localID = local.ID
		if err := s.appendOwn(local, ""); err != nil {
			return nil, err
		}
		s.publish(domain.MessageSentEvent{Message: local.Clone(), Pending: true, EventTime: s.now()})
	}

	sent, err := s.api.SendMessage(ctx, roomID, req)
	if err != nil {
		s.log.Warn().Err(err).Str("room_id", roomID).Bool("optimistic", localID != "").Msg("send message failed")
		return nil, fmt.Errorf("send message: %w", err)
	}
	if sent == nil {
		sent = domain.NewTextMessage(domain.NewLocalID(), roomID, s.viewer, text, s.now())
	}

	confirmed := s.normalize(roomID, sent)
	if confirmed.SenderID == "" {
		confirmed.SenderID = s.viewer.UserID
	}
	if !confirmed.SenderRole.Valid() {
		confirmed.SenderRole = s.viewer.Role
	}
	if confirmed.SenderName == "" {
		confirmed.SenderName = s.viewer.DisplayName()
	}
	confirmed.IsRead = true

	if err := s.appendOwn(confirmed, localID); err != nil {
		return nil, err
	}
	s.publish(domain.MessageSentEvent{Message: confirmed.Clone(), Pending: false, EventTime: s.now()})

	if s.push != nil && !s.push.Send(realtime.NewChatFrame(confirmed)) {
		s.log.Debug().Str("room_id", roomID).Str("id", confirmed.ID).Msg("push channel down, relay skipped")
	}
	return confirmed.Clone(), nil
}

// MarkAsRead asks the server to mark roomID read. Only on success is the room's unread count
// zeroed and every loaded message flagged read.
func (s *RoomStore) MarkAsRead(ctx context.Context, roomID string) error {
	if s.isClosed() {
		return domain.ErrStoreClosed
	}
	if err := s.api.MarkRoomRead(ctx, roomID); err != nil {
		return fmt.Errorf("mark room %s read: %w", roomID, err)
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return domain.ErrStoreClosed
	}
	var updated *domain.ChatRoom
	if room := s.findLocked(roomID); room != nil {
		room.UnreadCount = 0
		updated = room.Clone()
	}
	for _, m := range s.messages[roomID] {
		m.IsRead = true
	}
	total := s.unreadLocked()
	s.mu.Unlock()

	metrics.UnreadMessages.Set(float64(total))
	s.publish(domain.RoomReadEvent{RoomID: roomID, TotalUnread: total, EventTime: s.now()})
	if updated != nil {
		s.publish(domain.RoomUpdatedEvent{Room: updated, EventTime: s.now()})
	}
	return nil
}

// ApplyRoomUpdate merges a pushed room patch. It reports false when the room is not loaded.
func (s *RoomStore) ApplyRoomUpdate(patch domain.RoomPatch) (bool, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return false, domain.ErrStoreClosed
	}
	room := s.findLocked(patch.RoomID)
	if room == nil {
		s.mu.Unlock()
		return false, nil
	}
	patch.Apply(room)
	updated := room.Clone()
	total := s.unreadLocked()
	s.mu.Unlock()

	metrics.UnreadMessages.Set(float64(total))
	s.publish(domain.RoomUpdatedEvent{Room: updated, EventTime: s.now()})
	return true, nil
}

func (s *RoomStore) LoadStats(ctx context.Context) error {
	if s.isClosed() {
		return domain.ErrStoreClosed
	}
	stats, err := s.api.ChatStats(ctx)
	if err != nil {
		return fmt.Errorf("load chat stats: %w", err)
	}
	if stats == nil {
		stats = &domain.ChatStats{}
	}
	return s.ApplyStats(*stats)
}

func (s *RoomStore) ApplyStats(stats domain.ChatStats) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return domain.ErrStoreClosed
	}
	s.stats = &stats
	s.mu.Unlock()

	s.publish(domain.ChatStatsEvent{Stats: stats, EventTime: s.now()})
	return nil
}

// Stats returns the last server aggregate, if one was loaded.
func (s *RoomStore) Stats() (domain.ChatStats, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.stats == nil {
		return domain.ChatStats{}, false
	}
	return *s.stats, true
}

// UnreadCount is the sum of unread_count across loaded rooms.
func (s *RoomStore) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unreadLocked()
}

func (s *RoomStore) Rooms() []*domain.ChatRoom {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneRooms(s.rooms)
}

func (s *RoomStore) Room(roomID string) (*domain.ChatRoom, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if room := s.findLocked(roomID); room != nil {
		return room.Clone(), nil
	}
	return nil, domain.ErrRoomNotFound
}

func (s *RoomStore) HasRoom(roomID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findLocked(roomID) != nil
}

// CurrentRoom returns the selected room, or nil.
func (s *RoomStore) CurrentRoom() *domain.ChatRoom {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == "" {
		return nil
	}
	return s.findLocked(s.current).Clone()
}

func (s *RoomStore) CurrentRoomID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Messages returns the selected room's messages.
func (s *RoomStore) Messages() []*domain.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == "" {
		return nil
	}
	return cloneMessages(s.messages[s.current])
}

func (s *RoomStore) MessagesFor(roomID string) []*domain.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneMessages(s.messages[roomID])
}

// Close tears the store down. Later mutations return ErrStoreClosed; queries return empty views.
func (s *RoomStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.rooms = nil
	s.messages = make(map[string][]*domain.ChatMessage)
	s.current = ""
	s.stats = nil
	metrics.UnreadMessages.Set(0)
}

func (s *RoomStore) isClosed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}

// appendOwn adds one of the viewer's messages. When replaceID names a pending local message
// it is swapped for msg; if msg's id is already present the local copy is dropped instead.
func (s *RoomStore) appendOwn(msg *domain.ChatMessage, replaceID string) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return domain.ErrStoreClosed
	}

	roomID := msg.RoomID
	list := s.messages[roomID]
	localIdx, existingIdx := -1, -1
	for i, m := range list {
		if replaceID != "" && m.ID == replaceID {
			localIdx = i
		}
		if m.ID == msg.ID {
			existingIdx = i
		}
	}

	switch {
	case existingIdx >= 0 && localIdx >= 0:
		list = append(list[:localIdx], list[localIdx+1:]...)
	case existingIdx >= 0:
	case localIdx >= 0:
		list[localIdx] = msg.Clone()
	default:
		list = append(list, msg.Clone())
	}
	s.messages[roomID] = list

	var updated *domain.ChatRoom
	if room := s.findLocked(roomID); room != nil {
		s.touchLocked(room, msg)
		updated = room.Clone()
	}
	s.mu.Unlock()

	if updated != nil {
		s.publish(domain.RoomUpdatedEvent{Room: updated, EventTime: s.now()})
	}
	return nil
}

// normalize copies m into roomID, filling defaults.
func (s *RoomStore) normalize(roomID string, m *domain.ChatMessage) *domain.ChatMessage {
	c := m.Clone()
	if c.RoomID == "" {
		c.RoomID = roomID
	}
	if c.MessageType == "" {
		c.MessageType = domain.MessageTypeText
	}
	if c.Timestamp.IsZero() {
		c.Timestamp = s.now()
	}
	if c.ID == "" {
		c.ID = domain.SynthesizeMessageID(c.RoomID, c.SenderID, c.Message, c.Timestamp)
	}
	return c
}

func (s *RoomStore) touchLocked(room *domain.ChatRoom, m *domain.ChatMessage) {
	if room.LastMessageTime != nil && m.Timestamp.Before(*room.LastMessageTime) {
		return
	}
	room.LastMessage = m.Message
	ts := m.Timestamp
	room.LastMessageTime = &ts
}

func (s *RoomStore) findLocked(roomID string) *domain.ChatRoom {
	for _, r := range s.rooms {
		if r.ID == roomID {
			return r
		}
	}
	return nil
}

func (s *RoomStore) unreadLocked() int {
	total := 0
	for _, r := range s.rooms {
		total += r.UnreadCount
	}
	return total
}

func (s *RoomStore) publish(evt domain.Event) {
	if s.bus != nil {
		s.bus.Publish(evt)
	}
}

func cloneRooms(in []*domain.ChatRoom) []*domain.ChatRoom {
	out := make([]*domain.ChatRoom, 0, len(in))
	for _, r := range in {
		out = append(out, r.Clone())
	}
	return out
}

func cloneMessages(in []*domain.ChatMessage) []*domain.ChatMessage {
	out := make([]*domain.ChatMessage, 0, len(in))
	for _, m := range in {
		out = append(out, m.Clone())
	}
	return out
}
