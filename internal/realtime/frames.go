package realtime

import (
	"time"

	"github.com/clippy-oss/homie/storefront-realtime/internal/domain"
)

// Frame is an outbound push frame.
type Frame interface {
	FrameType() Kind
}

type AuthFrame struct {
	Type   Kind        `json:"type"`
	UserID string      `json:"user_id"`
	Role   domain.Role `json:"role"`
}

func NewAuthFrame(auth domain.AuthContext) AuthFrame {
	return AuthFrame{Type: KindAuth, UserID: auth.UserID, Role: auth.Role}
}

func (f AuthFrame) FrameType() Kind { return KindAuth }

type PingFrame struct {
	Type Kind `json:"type"`
}

func NewPingFrame() PingFrame { return PingFrame{Type: KindPing} }

func (f PingFrame) FrameType() Kind { return KindPing }

type PongFrame struct {
	Type Kind `json:"type"`
}

func NewPongFrame() PongFrame { return PongFrame{Type: KindPong} }

func (f PongFrame) FrameType() Kind { return KindPong }

// ChatFrame relays a chat message to the counterpart. Customers send user_message, admins admin_message.
type ChatFrame struct {
	Type        Kind               `json:"type"`
	ID          string             `json:"id,omitempty"`
	RoomID      string             `json:"room_id"`
	SenderID    string             `json:"sender_id"`
	SenderName  string             `json:"sender_name,omitempty"`
	SenderRole  domain.Role        `json:"sender_role"`
	Message     string             `json:"message"`
	MessageType domain.MessageType `json:"message_type"`
	Timestamp   time.Time          `json:"timestamp"`
}

func NewChatFrame(msg *domain.ChatMessage) ChatFrame {
	kind := KindUserMessage
	if msg.SenderRole == domain.RoleAdmin {
		kind = KindAdminMessage
	}
	return ChatFrame{
		Type:        kind,
		ID:          msg.ID,
		RoomID:      msg.RoomID,
		SenderID:    msg.SenderID,
		SenderName:  msg.SenderName,
		SenderRole:  msg.SenderRole,
		Message:     msg.Message,
		MessageType: msg.MessageType,
		Timestamp:   msg.Timestamp,
	}
}

func (f ChatFrame) FrameType() Kind { return f.Type }
