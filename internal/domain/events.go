package domain

import (
	"context"
	"sync"
	"time"
)

type EventType string

const (
	EventTypeRoomsLoaded          EventType = "rooms.loaded"
	EventTypeRoomUpdated          EventType = "room.updated"
	EventTypeRoomSelected         EventType = "room.selected"
	EventTypeRoomRead             EventType = "room.read"
	EventTypeMessagesLoaded       EventType = "messages.loaded"
	EventTypeMessageReceived      EventType = "message.received"
	EventTypeMessageSent          EventType = "message.sent"
	EventTypeChatStats            EventType = "chat.stats"
	EventTypeNotificationsLoaded  EventType = "notifications.loaded"
	EventTypeNotificationReceived EventType = "notification.received"
	EventTypeNotificationUpdated  EventType = "notification.updated"
	EventTypeNotificationRemoved  EventType = "notification.removed"
	EventTypeNotificationStats    EventType = "notification.stats"
	EventTypeConnectionStatus     EventType = "connection.status"
	EventTypeSessionCleared       EventType = "session.cleared"
)

type Event interface {
	Type() EventType
	Timestamp() time.Time
}

type RoomsLoadedEvent struct {
	Rooms     []*ChatRoom
	EventTime time.Time
}

func (e RoomsLoadedEvent) Type() EventType      { return EventTypeRoomsLoaded }
func (e RoomsLoadedEvent) Timestamp() time.Time { return e.EventTime }

type RoomUpdatedEvent struct {
	Room      *ChatRoom
	EventTime time.Time
}

func (e RoomUpdatedEvent) Type() EventType      { return EventTypeRoomUpdated }
func (e RoomUpdatedEvent) Timestamp() time.Time { return e.EventTime }

type RoomSelectedEvent struct {
	Room      *ChatRoom
	EventTime time.Time
}

func (e RoomSelectedEvent) Type() EventType      { return EventTypeRoomSelected }
func (e RoomSelectedEvent) Timestamp() time.Time { return e.EventTime }

type RoomReadEvent struct {
	RoomID      string
	TotalUnread int
	EventTime   time.Time
}

func (e RoomReadEvent) Type() EventType      { return EventTypeRoomRead }
func (e RoomReadEvent) Timestamp() time.Time { return e.EventTime }

type MessagesLoadedEvent struct {
	RoomID    string
	Messages  []*ChatMessage
	EventTime time.Time
}

func (e MessagesLoadedEvent) Type() EventType      { return EventTypeMessagesLoaded }
func (e MessagesLoadedEvent) Timestamp() time.Time { return e.EventTime }

type MessageReceivedEvent struct {
	Message     *ChatMessage
	TotalUnread int
	EventTime   time.Time
}

func (e MessageReceivedEvent) Type() EventType      { return EventTypeMessageReceived }
func (e MessageReceivedEvent) Timestamp() time.Time { return e.EventTime }

// MessageSentEvent is published for the optimistic local copy (Pending) and again once the server confirms it.
type MessageSentEvent struct {
	Message   *ChatMessage
	Pending   bool
	EventTime time.Time
}

func (e MessageSentEvent) Type() EventType      { return EventTypeMessageSent }
func (e MessageSentEvent) Timestamp() time.Time { return e.EventTime }

type ChatStatsEvent struct {
	Stats     ChatStats
	EventTime time.Time
}

func (e ChatStatsEvent) Type() EventType      { return EventTypeChatStats }
func (e ChatStatsEvent) Timestamp() time.Time { return e.EventTime }

type NotificationsLoadedEvent struct {
	Notifications []*Notification
	EventTime     time.Time
}

func (e NotificationsLoadedEvent) Type() EventType      { return EventTypeNotificationsLoaded }
func (e NotificationsLoadedEvent) Timestamp() time.Time { return e.EventTime }

type NotificationReceivedEvent struct {
	Notification *Notification
	EventTime    time.Time
}

func (e NotificationReceivedEvent) Type() EventType      { return EventTypeNotificationReceived }
func (e NotificationReceivedEvent) Timestamp() time.Time { return e.EventTime }

type NotificationUpdatedEvent struct {
	Notification *Notification
	EventTime    time.Time
}

func (e NotificationUpdatedEvent) Type() EventType      { return EventTypeNotificationUpdated }
func (e NotificationUpdatedEvent) Timestamp() time.Time { return e.EventTime }

type NotificationRemovedEvent struct {
	IDs       []string
	EventTime time.Time
}

func (e NotificationRemovedEvent) Type() EventType      { return EventTypeNotificationRemoved }
func (e NotificationRemovedEvent) Timestamp() time.Time { return e.EventTime }

type NotificationStatsEvent struct {
	Stats     NotificationStats
	EventTime time.Time
}

func (e NotificationStatsEvent) Type() EventType      { return EventTypeNotificationStats }
func (e NotificationStatsEvent) Timestamp() time.Time { return e.EventTime }

type ConnectionStatusEvent struct {
	Channel   string
	Connected bool
	Reason    string
	EventTime time.Time
}

func (e ConnectionStatusEvent) Type() EventType      { return EventTypeConnectionStatus }
func (e ConnectionStatusEvent) Timestamp() time.Time { return e.EventTime }

type SessionClearedEvent struct {
	EventTime time.Time
}

func (e SessionClearedEvent) Type() EventType      { return EventTypeSessionCleared }
func (e SessionClearedEvent) Timestamp() time.Time { return e.EventTime }

// EventBus provides pub/sub for domain events
type EventBus interface {
	Publish(event Event)
	PublishWait(ctx context.Context, event Event)
	Subscribe(eventTypes []EventType) <-chan Event
	Unsubscribe(ch <-chan Event)
}

const defaultSubscriberBuffer = 100

// SimpleEventBus is a basic in-memory implementation of EventBus.
// Slow subscribers lose events rather than stall publishers.
type SimpleEventBus struct {
	mu          sync.RWMutex
	subscribers map[<-chan Event]subscription
	buffer      int
}

type subscription struct {
	ch         chan Event
	eventTypes map[EventType]bool
}

func NewEventBus() *SimpleEventBus {
	return NewEventBusWithBuffer(defaultSubscriberBuffer)
}

func NewEventBusWithBuffer(buffer int) *SimpleEventBus {
	if buffer <= 0 {
		buffer = defaultSubscriberBuffer
	}
	return &SimpleEventBus{
		subscribers: make(map[<-chan Event]subscription),
		buffer:      buffer,
	}
}

func (b *SimpleEventBus) Publish(event Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, sub := range b.subscribers {
		if len(sub.eventTypes) == 0 || sub.eventTypes[event.Type()] {
			select {
			case sub.ch <- event:
			default:
			}
		}
	}
}

// PublishWait delivers event like Publish but waits for room in full subscriber buffers
// until ctx is done. Used for events a subscriber must not miss.
func (b *SimpleEventBus) PublishWait(ctx context.Context, event Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, sub := range b.subscribers {
		if len(sub.eventTypes) == 0 || sub.eventTypes[event.Type()] {
			select {
			case sub.ch <- event:
			case <-ctx.Done():
			}
		}
	}
}

func (b *SimpleEventBus) Subscribe(eventTypes []EventType) <-chan Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, b.buffer)
	typeMap := make(map[EventType]bool, len(eventTypes))
	for _, t := range eventTypes {
		typeMap[t] = true
	}

	b.subscribers[ch] = subscription{
		ch:         ch,
		eventTypes: typeMap,
	}

	return ch
}

func (b *SimpleEventBus) Unsubscribe(ch <-chan Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if sub, ok := b.subscribers[ch]; ok {
		close(sub.ch)
		delete(b.subscribers, ch)
	}
}

// Close unsubscribes everyone, closing their channels.
func (b *SimpleEventBus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for key, sub := range b.subscribers {
		close(sub.ch)
		delete(b.subscribers, key)
	}
}
