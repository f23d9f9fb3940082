package domain

import "time"

type RoomStatus string

const (
	RoomStatusActive  RoomStatus = "active"
	RoomStatusWaiting RoomStatus = "waiting"
	RoomStatusClosed  RoomStatus = "closed"
)

// ChatRoom is a support conversation between one customer and the admin pool.
type ChatRoom struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	Name            string     `json:"name"`
	LastMessage     string     `json:"last_message,omitempty"`
	LastMessageTime *time.Time `json:"last_message_time,omitempty"`
	UnreadCount     int        `json:"unread_count"`
	Status          RoomStatus `json:"status"`
}

func (r *ChatRoom) Clone() *ChatRoom {
	if r == nil {
		return nil
	}
	c := *r
	if r.LastMessageTime != nil {
		t := *r.LastMessageTime
		c.LastMessageTime = &t
	}
	return &c
}

// RoomPatch carries a partial room update pushed by the server. Zero fields are left untouched.
type RoomPatch struct {
	RoomID          string
	Name            string
	LastMessage     *string
	LastMessageTime *time.Time
	UnreadCount     *int
	Status          RoomStatus
}

func (p RoomPatch) Apply(r *ChatRoom) {
	if p.Name != "" {
		r.Name = p.Name
	}
	if p.LastMessage != nil {
		r.LastMessage = *p.LastMessage
	}
	if p.LastMessageTime != nil {
		t := *p.LastMessageTime
		r.LastMessageTime = &t
	}
	if p.UnreadCount != nil && *p.UnreadCount >= 0 {
		r.UnreadCount = *p.UnreadCount
	}
	if p.Status != "" {
		r.Status = p.Status
	}
}

// ChatStats is the aggregate served by GET /chat/stats.
type ChatStats struct {
	TotalRooms   int `json:"total_rooms"`
	ActiveRooms  int `json:"active_rooms"`
	WaitingRooms int `json:"waiting_rooms"`
	TotalUnread  int `json:"total_unread"`
}
