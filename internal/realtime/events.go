package realtime

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/clippy-oss/homie/storefront-realtime/internal/domain"
)

// Kind is the "type" discriminant of a push frame.
type Kind string

const (
	KindAuth                Kind = "auth"
	KindPing                Kind = "ping"
	KindPong                Kind = "pong"
	KindUserMessage         Kind = "user_message"
	KindAdminMessage        Kind = "admin_message"
	KindMessage             Kind = "message"
	KindRoomUpdate          Kind = "room_update"
	KindStatsUpdate         Kind = "stats_update"
	KindNewNotification     Kind = "new_notification"
	KindNotificationUpdated Kind = "notification_updated"
	KindStatsUpdated        Kind = "stats_updated"
)

var (
	ErrMalformedFrame = errors.New("malformed push frame")
	ErrUnknownKind    = errors.New("unknown push frame type")
)

// Event is an inbound push frame. The set of implementations is closed.
type Event interface {
	Kind() Kind
	isEvent()
}

type AuthResult struct {
	Success bool
	Message string
}

type Ping struct{}

type Pong struct{}

type ChatMessageEvent struct {
	FrameKind Kind
	Message   domain.ChatMessage
}

type RoomUpdate struct {
	Patch domain.RoomPatch
}

type ChatStatsUpdate struct {
	Stats domain.ChatStats
}

type NotificationCreated struct {
	Notification domain.Notification
}

type NotificationChanged struct {
	Update domain.NotificationUpdate
}

type NotificationStatsUpdate struct {
	Stats domain.NotificationStats
}

func (AuthResult) Kind() Kind              { return KindAuth }
func (Ping) Kind() Kind                    { return KindPing }
func (Pong) Kind() Kind                    { return KindPong }
func (e ChatMessageEvent) Kind() Kind      { return e.FrameKind }
func (RoomUpdate) Kind() Kind              { return KindRoomUpdate }
func (ChatStatsUpdate) Kind() Kind         { return KindStatsUpdate }
func (NotificationCreated) Kind() Kind     { return KindNewNotification }
func (NotificationChanged) Kind() Kind     { return KindNotificationUpdated }
func (NotificationStatsUpdate) Kind() Kind { return KindStatsUpdated }

func (AuthResult) isEvent()              {}
func (Ping) isEvent()                    {}
func (Pong) isEvent()                    {}
func (ChatMessageEvent) isEvent()        {}
func (RoomUpdate) isEvent()              {}
func (ChatStatsUpdate) isEvent()         {}
func (NotificationCreated) isEvent()     {}
func (NotificationChanged) isEvent()     {}
func (NotificationStatsUpdate) isEvent() {}

type envelope struct {
	Type         Kind            `json:"type"`
	Notification json.RawMessage `json:"notification"`
	Stats        json.RawMessage `json:"stats"`
	Data         json.RawMessage `json:"data"`
}

type chatFrame struct {
	ID          string             `json:"id"`
	RoomID      string             `json:"room_id"`
	SenderID    string             `json:"sender_id"`
	SenderName  string             `json:"sender_name"`
	SenderRole  domain.Role        `json:"sender_role"`
	Message     string             `json:"message"`
	MessageType domain.MessageType `json:"message_type"`
	Timestamp   *time.Time         `json:"timestamp"`
	IsRead      bool               `json:"is_read"`
}

type roomFrame struct {
	RoomID          string            `json:"room_id"`
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	LastMessage     *string           `json:"last_message"`
	LastMessageTime *time.Time        `json:"last_message_time"`
	UnreadCount     *int              `json:"unread_count"`
	Status          domain.RoomStatus `json:"status"`
}

type authFrame struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
}

// nested returns the first populated candidate, or the frame itself when the payload is flat.
func nested(frame []byte, candidates ...json.RawMessage) []byte {
	for _, c := range candidates {
		if len(c) > 0 && string(c) != "null" {
			return c
		}
	}
	return frame
}

// Decode parses one text frame. now stamps chat messages that arrive without a timestamp.
func Decode(data []byte, now time.Time) (Event, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedFrame, err)
	}
	if env.Type == "" {
		return nil, fmt.Errorf("%w: missing type", ErrMalformedFrame)
	}

	switch env.Type {
	case KindAuth:
		var f authFrame
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedFrame, err)
		}
		return AuthResult{Success: f.Success == nil || *f.Success, Message: f.Message}, nil

	case KindPing:
		return Ping{}, nil

	case KindPong:
		return Pong{}, nil

	case KindUserMessage, KindAdminMessage, KindMessage:
		var f chatFrame
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedFrame, err)
		}
		if f.RoomID == "" {
			return nil, fmt.Errorf("%w: %s without room_id", ErrMalformedFrame, env.Type)
		}
		return ChatMessageEvent{FrameKind: env.Type, Message: f.toDomain(env.Type, now)}, nil

	case KindRoomUpdate:
		var f roomFrame
		if err := json.Unmarshal(nested(data, env.Data), &f); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedFrame, err)
		}
		id := f.RoomID
		if id == "" {
			id = f.ID
		}
		if id == "" {
			return nil, fmt.Errorf("%w: room_update without room id", ErrMalformedFrame)
		}
		return RoomUpdate{Patch: domain.RoomPatch{
			RoomID:          id,
			Name:            f.Name,
			LastMessage:     f.LastMessage,
			LastMessageTime: f.LastMessageTime,
			UnreadCount:     f.UnreadCount,
			Status:          f.Status,
		}}, nil

	case KindStatsUpdate:
		var s domain.ChatStats
		if err := json.Unmarshal(nested(data, env.Stats, env.Data), &s); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedFrame, err)
		}
		return ChatStatsUpdate{Stats: s}, nil

	case KindNewNotification, KindNotificationUpdated:
		var n domain.Notification
		if err := json.Unmarshal(nested(data, env.Notification, env.Data), &n); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedFrame, err)
		}
		if n.ID == "" {
			return nil, fmt.Errorf("%w: %s without notification id", ErrMalformedFrame, env.Type)
		}
		if env.Type == KindNewNotification {
			return NotificationCreated{Notification: n}, nil
		}
		var flags struct {
			IsRead    *bool `json:"is_read"`
			IsDeleted *bool `json:"is_deleted"`
		}
		if err := json.Unmarshal(nested(data, env.Notification, env.Data), &flags); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedFrame, err)
		}
		return NotificationChanged{Update: domain.NotificationUpdate{Notification: n, IsRead: flags.IsRead, IsDeleted: flags.IsDeleted}}, nil

	case KindStatsUpdated:
		var s domain.NotificationStats
		if err := json.Unmarshal(nested(data, env.Stats, env.Data), &s); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedFrame, err)
		}
		return NotificationStatsUpdate{Stats: s}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, env.Type)
	}
}

func (f chatFrame) toDomain(kind Kind, now time.Time) domain.ChatMessage {
	role := f.SenderRole
	if role == "" {
		switch kind {
		case KindUserMessage:
			role = domain.RoleCustomer
		case KindAdminMessage:
			role = domain.RoleAdmin
		}
	}
	msgType := f.MessageType
	if msgType == "" {
		msgType = domain.MessageTypeText
	}
	ts := now
	if f.Timestamp != nil && !f.Timestamp.IsZero() {
		ts = *f.Timestamp
	}
	return domain.ChatMessage{
		ID:          f.ID,
		RoomID:      f.RoomID,
		SenderID:    f.SenderID,
		SenderName:  f.SenderName,
		SenderRole:  role,
		Message:     f.Message,
		MessageType: msgType,
		Timestamp:   ts,
		IsRead:      f.IsRead,
	}
}
