package domain

import "time"

type MessageType string

const (
	MessageTypeText  MessageType = "text"
	MessageTypeImage MessageType = "image"
	MessageTypeFile  MessageType = "file"
)

type ChatMessage struct {
	ID          string      `json:"id"`
	RoomID      string      `json:"room_id"`
	SenderID    string      `json:"sender_id"`
	SenderName  string      `json:"sender_name"`
	SenderRole  Role        `json:"sender_role"`
	Message     string      `json:"message"`
	MessageType MessageType `json:"message_type"`
	Timestamp   time.Time   `json:"timestamp"`
	IsRead      bool        `json:"is_read"`
}

func NewTextMessage(id, roomID string, sender AuthContext, text string, timestamp time.Time) *ChatMessage {
	return &ChatMessage{
		ID:          id,
		RoomID:      roomID,
		SenderID:    sender.UserID,
		SenderName:  sender.DisplayName(),
		SenderRole:  sender.Role,
		Message:     text,
		MessageType: MessageTypeText,
		Timestamp:   timestamp,
	}
}

func (m *ChatMessage) Clone() *ChatMessage {
	if m == nil {
		return nil
	}
	c := *m
	return &c
}

// InboundFor reports whether the message was sent by the other side of the conversation.
// The viewer's own messages are outbound even when the frame omits sender_role.
func (m *ChatMessage) InboundFor(viewer AuthContext) bool {
	if m.SenderID != "" && m.SenderID == viewer.UserID {
		return false
	}
	return m.SenderRole != viewer.Role
}

// SameContent reports whether two messages carry the same sender and text within window.
func (m *ChatMessage) SameContent(o *ChatMessage, window time.Duration) bool {
	if m.RoomID != o.RoomID || m.SenderID != o.SenderID || m.Message != o.Message {
		return false
	}
	d := m.Timestamp.Sub(o.Timestamp)
	if d < 0 {
		d = -d
	}
	return d <= window
}
