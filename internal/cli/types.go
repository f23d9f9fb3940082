package cli

import (
	"time"

	"github.com/clippy-oss/homie/storefront-realtime/internal/domain"
)

// Mode represents the CLI operation mode
type Mode string

const (
	ModeInteractive Mode = "interactive"
	ModeHeadless    Mode = "headless"
)

// Request represents a JSON request in headless mode
type Request struct {
	ID      string                 `json:"id,omitempty"`
	Command string                 `json:"command"`
	Params  map[string]interface{} `json:"params,omitempty"`
}

// Response represents a JSON response in headless mode
type Response struct {
	ID      string      `json:"id,omitempty"`
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Event represents a real-time event in headless mode
type Event struct {
	Type      string      `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data"`
}

type RoomInfo struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Status          string     `json:"status"`
	UnreadCount     int        `json:"unread_count"`
	LastMessage     string     `json:"last_message,omitempty"`
	LastMessageTime *time.Time `json:"last_message_time,omitempty"`
	Selected        bool       `json:"selected,omitempty"`
}

type MessageInfo struct {
	ID         string    `json:"id"`
	RoomID     string    `json:"room_id"`
	SenderID   string    `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	SenderRole string    `json:"sender_role"`
	Type       string    `json:"type"`
	Text       string    `json:"text"`
	Timestamp  time.Time `json:"timestamp"`
	IsFromMe   bool      `json:"is_from_me"`
	IsRead     bool      `json:"is_read"`
	Pending    bool      `json:"pending,omitempty"`
}

type NotificationInfo struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message,omitempty"`
	Type      string    `json:"type"`
	Priority  string    `json:"priority"`
	IsRead    bool      `json:"is_read"`
	ActionURL string    `json:"action_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ConnectionStatus represents connection status for responses
type ConnectionStatus struct {
	State    string            `json:"state"`
	LoggedIn bool              `json:"logged_in"`
	UserID   string            `json:"user_id,omitempty"`
	UserName string            `json:"user_name,omitempty"`
	Role     string            `json:"role,omitempty"`
	Channels map[string]string `json:"channels"`
}

// QRInfo carries a notification link rendered as a terminal QR code.
type QRInfo struct {
	NotificationID string `json:"notification_id"`
	URL            string `json:"url"`
	QRCode         string `json:"qr_code"`
}

func toRoomInfo(r *domain.ChatRoom, currentID string) RoomInfo {
	return RoomInfo{
		ID:              r.ID,
		Name:            r.Name,
		Status:          string(r.Status),
		UnreadCount:     r.UnreadCount,
		LastMessage:     r.LastMessage,
		LastMessageTime: r.LastMessageTime,
		Selected:        r.ID == currentID,
	}
}

func toMessageInfo(m *domain.ChatMessage, viewerID string) MessageInfo {
	return MessageInfo{
		ID:         m.ID,
		RoomID:     m.RoomID,
		SenderID:   m.SenderID,
		SenderName: m.SenderName,
		SenderRole: string(m.SenderRole),
		Type:       string(m.MessageType),
		Text:       m.Message,
		Timestamp:  m.Timestamp,
		IsFromMe:   viewerID != "" && m.SenderID == viewerID,
		IsRead:     m.IsRead,
	}
}

func toNotificationInfo(n *domain.Notification) NotificationInfo {
	return NotificationInfo{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      string(n.Type),
		Priority:  string(n.Priority),
		IsRead:    n.IsRead,
		ActionURL: n.ActionURL,
		CreatedAt: n.CreatedAt,
	}
}
