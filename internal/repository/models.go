package repository

import (
	"time"

	"github.com/clippy-oss/homie/storefront-realtime/internal/domain"
)

type MessageModel struct {
	ID         string    `gorm:"primaryKey;column:id"`
	RoomID     string    `gorm:"column:room_id;index:idx_room_timestamp"`
	SenderID   string    `gorm:"column:sender_id"`
	SenderName string    `gorm:"column:sender_name"`
	SenderRole string    `gorm:"column:sender_role"`
	Type       string    `gorm:"column:type"`
	Text       string    `gorm:"column:text"`
	Timestamp  time.Time `gorm:"column:timestamp;index:idx_room_timestamp"`
	IsRead     bool      `gorm:"column:is_read;index"`
	CreatedAt  time.Time `gorm:"column:created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at"`
}

func (MessageModel) TableName() string { return "messages" }

type RoomModel struct {
	ID              string     `gorm:"primaryKey;column:id"`
	UserID          string     `gorm:"column:user_id;index"`
	Name            string     `gorm:"column:name"`
	Status          string     `gorm:"column:status"`
	LastMessageText string     `gorm:"column:last_message_text"`
	LastMessageTime *time.Time `gorm:"column:last_message_time;index"`
	UnreadCount     int        `gorm:"column:unread_count"`
	CreatedAt       time.Time  `gorm:"column:created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at"`
}

func (RoomModel) TableName() string { return "rooms" }

type NotificationModel struct {
	ID        string    `gorm:"primaryKey;column:id"`
	UserID    string    `gorm:"column:user_id"`
	Title     string    `gorm:"column:title"`
	Message   string    `gorm:"column:message"`
	Type      string    `gorm:"column:type;index"`
	Priority  string    `gorm:"column:priority"`
	ActionURL string    `gorm:"column:action_url"`
	IsRead    bool      `gorm:"column:is_read"`
	IsDeleted bool      `gorm:"column:is_deleted;index"`
	CreatedAt time.Time `gorm:"column:created_at;index"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (NotificationModel) TableName() string { return "notifications" }

// Models lists every archive table for AutoMigrate.
func Models() []interface{} {
	return []interface{}{&MessageModel{}, &RoomModel{}, &NotificationModel{}}
}

func MessageModelToDomain(m *MessageModel) *domain.ChatMessage {
	if m == nil {
		return nil
	}
	return &domain.ChatMessage{
		ID:          m.ID,
		RoomID:      m.RoomID,
		SenderID:    m.SenderID,
		SenderName:  m.SenderName,
		SenderRole:  domain.Role(m.SenderRole),
		Message:     m.Text,
		MessageType: domain.MessageType(m.Type),
		Timestamp:   m.Timestamp,
		IsRead:      m.IsRead,
	}
}

func MessageDomainToModel(msg *domain.ChatMessage) *MessageModel {
	if msg == nil {
		return nil
	}
	return &MessageModel{
		ID:         msg.ID,
		RoomID:     msg.RoomID,
		SenderID:   msg.SenderID,
		SenderName: msg.SenderName,
		SenderRole: string(msg.SenderRole),
		Type:       string(msg.MessageType),
		Text:       msg.Message,
		Timestamp:  msg.Timestamp,
		IsRead:     msg.IsRead,
	}
}

func RoomModelToDomain(m *RoomModel) *domain.ChatRoom {
	if m == nil {
		return nil
	}
	return &domain.ChatRoom{
		ID:              m.ID,
		UserID:          m.UserID,
		Name:            m.Name,
		LastMessage:     m.LastMessageText,
		LastMessageTime: m.LastMessageTime,
		UnreadCount:     m.UnreadCount,
		Status:          domain.RoomStatus(m.Status),
	}
}

func RoomDomainToModel(room *domain.ChatRoom) *RoomModel {
	if room == nil {
		return nil
	}
	return &RoomModel{
		ID:              room.ID,
		UserID:          room.UserID,
		Name:            room.Name,
		Status:          string(room.Status),
		LastMessageText: room.LastMessage,
		LastMessageTime: room.LastMessageTime,
		UnreadCount:     room.UnreadCount,
	}
}

func NotificationModelToDomain(m *NotificationModel) *domain.Notification {
	if m == nil {
		return nil
	}
	return &domain.Notification{
		ID:        m.ID,
		UserID:    m.UserID,
		Title:     m.Title,
		Message:   m.Message,
		Type:      domain.NotificationType(m.Type),
		Priority:  domain.Priority(m.Priority),
		IsRead:    m.IsRead,
		IsDeleted: m.IsDeleted,
		ActionURL: m.ActionURL,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func NotificationDomainToModel(n *domain.Notification) *NotificationModel {
	if n == nil {
		return nil
	}
	return &NotificationModel{
		ID:        n.ID,
		UserID:    n.UserID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      string(n.Type),
		Priority:  string(n.Priority),
		ActionURL: n.ActionURL,
		IsRead:    n.IsRead,
		IsDeleted: n.IsDeleted,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}
