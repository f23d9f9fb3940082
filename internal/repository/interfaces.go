package repository

import (
	"context"
	"time"

	"github.com/clippy-oss/homie/storefront-realtime/internal/domain"
)

type MessageRepository interface {
	Create(ctx context.Context, msg *domain.ChatMessage) error
	CreateOrIgnore(ctx context.Context, msg *domain.ChatMessage) error
	GetByID(ctx context.Context, id string) (*domain.ChatMessage, error)
	GetByRoomID(ctx context.Context, roomID string, limit, offset int) ([]*domain.ChatMessage, error)
	GetByRoomIDSince(ctx context.Context, roomID string, since time.Time, limit int) ([]*domain.ChatMessage, error)
	MarkRoomRead(ctx context.Context, roomID string) error
	Search(ctx context.Context, query string, limit int) ([]*domain.ChatMessage, error)
	Purge(ctx context.Context) error
}

type RoomRepository interface {
	Upsert(ctx context.Context, room *domain.ChatRoom) error
	GetByID(ctx context.Context, id string) (*domain.ChatRoom, error)
	GetAll(ctx context.Context, limit, offset int) ([]*domain.ChatRoom, error)
	UpdateLastMessage(ctx context.Context, id, text string, timestamp time.Time) error
	UpdateUnreadCount(ctx context.Context, id string, count int) error
	Purge(ctx context.Context) error
}

type NotificationRepository interface {
	Upsert(ctx context.Context, n *domain.Notification) error
	GetByID(ctx context.Context, id string) (*domain.Notification, error)
	GetRecent(ctx context.Context, limit int) ([]*domain.Notification, error)
	MarkDeleted(ctx context.Context, ids []string) error
	Purge(ctx context.Context) error
}
