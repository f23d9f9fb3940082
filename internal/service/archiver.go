package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/clippy-oss/homie/storefront-realtime/internal/domain"
	"github.com/clippy-oss/homie/storefront-realtime/internal/metrics"
	"github.com/clippy-oss/homie/storefront-realtime/internal/repository"
)

const archiveWriteTimeout = 5 * time.Second

var archivedEventTypes = []domain.EventType{
	domain.EventTypeRoomsLoaded,
	domain.EventTypeRoomUpdated,
	domain.EventTypeRoomRead,
	domain.EventTypeMessagesLoaded,
	domain.EventTypeMessageReceived,
	domain.EventTypeMessageSent,
	domain.EventTypeNotificationsLoaded,
	domain.EventTypeNotificationReceived,
	domain.EventTypeNotificationUpdated,
	domain.EventTypeNotificationRemoved,
	domain.EventTypeSessionCleared,
}

// Archiver mirrors store events into the local database so history and search survive
// past what the stores keep in memory. Messages that only carry a client-side id are
// not archived. A SessionClearedEvent wipes everything.
type Archiver struct {
	eventBus domain.EventBus
	msgRepo  repository.MessageRepository
	roomRepo repository.RoomRepository
	noteRepo repository.NotificationRepository
	log      zerolog.Logger

	mu     sync.Mutex
	events <-chan domain.Event
	done   chan struct{}
}

func NewArchiver(
	eventBus domain.EventBus,
	msgRepo repository.MessageRepository,
	roomRepo repository.RoomRepository,
	noteRepo repository.NotificationRepository,
	log zerolog.Logger,
) *Archiver {
	return &Archiver{
		eventBus: eventBus,
		msgRepo:  msgRepo,
		roomRepo: roomRepo,
		noteRepo: noteRepo,
		log:      log,
	}
}

// Start subscribes to the bus. Calling it twice is a no-op.
func (a *Archiver) Start(ctx context.Context) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.events != nil {
		return
	}
	a.events = a.eventBus.Subscribe(archivedEventTypes)
	a.done = make(chan struct{})
	go a.run(ctx, a.events, a.done)
}

// Stop unsubscribes and waits for the in-flight event to be written.
func (a *Archiver) Stop() {
	a.mu.Lock()
	events, done := a.events, a.done
	a.events, a.done = nil, nil
	a.mu.Unlock()

	if events == nil {
		return
	}
	a.eventBus.Unsubscribe(events)
	<-done
}

func (a *Archiver) run(ctx context.Context, events <-chan domain.Event, done chan struct{}) {
	defer close(done)
	for {
		select {
		case <-ctx.Done():
			return
		case evt, ok := <-events:
			if !ok {
				return
			}
			a.handle(ctx, evt)
		}
	}
}

func (a *Archiver) handle(ctx context.Context, evt domain.Event) {
	ctx, cancel := context.WithTimeout(ctx, archiveWriteTimeout)
	defer cancel()

	switch e := evt.(type) {
	case domain.RoomsLoadedEvent:
		for _, room := range e.Rooms {
			a.saveRoom(ctx, room)
		}

	case domain.RoomUpdatedEvent:
		a.saveRoom(ctx, e.Room)

	case domain.RoomReadEvent:
		a.record("message", a.msgRepo.MarkRoomRead(ctx, e.RoomID), "failed to mark archived room read")
		a.record("room", a.roomRepo.UpdateUnreadCount(ctx, e.RoomID, 0), "failed to reset archived unread count")

	case domain.MessagesLoadedEvent:
		for _, msg := range e.Messages {
			a.saveMessage(ctx, msg)
		}

	case domain.MessageReceivedEvent:
		a.saveMessage(ctx, e.Message)

	case domain.MessageSentEvent:
		if !e.Pending {
			a.saveMessage(ctx, e.Message)
		}

	case domain.NotificationsLoadedEvent:
		for _, n := range e.Notifications {
			a.saveNotification(ctx, n)
		}

	case domain.NotificationReceivedEvent:
		a.saveNotification(ctx, e.Notification)

	case domain.NotificationUpdatedEvent:
		a.saveNotification(ctx, e.Notification)

	case domain.NotificationRemovedEvent:
		a.record("notification", a.noteRepo.MarkDeleted(ctx, e.IDs), "failed to mark archived notifications deleted")

	case domain.SessionClearedEvent:
		if err := a.Purge(ctx); err != nil {
			a.log.Error().Err(err).Msg("failed to purge archive")
			return
		}
		a.log.Info().Msg("archive purged")
	}
}

// Purge removes every archived record.
func (a *Archiver) Purge(ctx context.Context) error {
	if err := a.msgRepo.Purge(ctx); err != nil {
		return err
	}
	if err := a.roomRepo.Purge(ctx); err != nil {
		return err
	}
	return a.noteRepo.Purge(ctx)
}

func (a *Archiver) saveRoom(ctx context.Context, room *domain.ChatRoom) {
	if room == nil || room.ID == "" {
		return
	}
	a.record("room", a.roomRepo.Upsert(ctx, room), "failed to archive room")
}

func (a *Archiver) saveMessage(ctx context.Context, msg *domain.ChatMessage) {
	if msg == nil || msg.ID == "" || domain.IsSynthesizedID(msg.ID) {
		return
	}
	a.record("message", a.msgRepo.CreateOrIgnore(ctx, msg), "failed to archive message")
	a.record("room", a.roomRepo.UpdateLastMessage(ctx, msg.RoomID, msg.Message, msg.Timestamp), "failed to update archived room preview")
}

func (a *Archiver) saveNotification(ctx context.Context, n *domain.Notification) {
	if n == nil || n.ID == "" {
		return
	}
	a.record("notification", a.noteRepo.Upsert(ctx, n), "failed to archive notification")
}

func (a *Archiver) record(entity string, err error, msg string) {
	if err != nil {
		metrics.ArchiveWrites.WithLabelValues(entity, "error").Inc()
		a.log.Warn().Err(err).Str("entity", entity).Msg(msg)
		return
	}
	metrics.ArchiveWrites.WithLabelValues(entity, "ok").Inc()
}
