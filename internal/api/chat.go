package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/go-playground/validator/v10"

	"github.com/clippy-oss/homie/storefront-realtime/internal/domain"
)

var validate = validator.New()

type SendMessageRequest struct {
	Message     string             `json:"message" validate:"required,max=4000"`
	MessageType domain.MessageType `json:"message_type" validate:"oneof=text image file"`
}

func (r SendMessageRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("invalid message: %w", err)
	}
	return nil
}

func roomPath(roomID string, suffix string) string {
	return "/chat/rooms/" + url.PathEscape(roomID) + suffix
}

func (c *Client) ListRooms(ctx context.Context) ([]*domain.ChatRoom, error) {
	var rooms []*domain.ChatRoom
	if err := c.do(ctx, http.MethodGet, "/chat/rooms", nil, nil, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

// GetOrCreateUserRoom returns the caller's support room, creating it on first use.
func (c *Client) GetOrCreateUserRoom(ctx context.Context) (*domain.ChatRoom, error) {
	var room domain.ChatRoom
	if err := c.do(ctx, http.MethodPost, "/chat/user-room", nil, struct{}{}, &room); err != nil {
		return nil, err
	}
	if room.ID == "" {
		return nil, fmt.Errorf("user room response carried no id")
	}
	return &room, nil
}

func (c *Client) ListMessages(ctx context.Context, roomID string) ([]*domain.ChatMessage, error) {
	var msgs []*domain.ChatMessage
	if err := c.do(ctx, http.MethodGet, roomPath(roomID, "/messages"), nil, nil, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (c *Client) SendMessage(ctx context.Context, roomID string, req SendMessageRequest) (*domain.ChatMessage, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	var msg domain.ChatMessage
	if err := c.do(ctx, http.MethodPost, roomPath(roomID, "/messages"), nil, req, &msg); err != nil {
		return nil, err
	}
	if msg.RoomID == "" {
		msg.RoomID = roomID
	}
	return &msg, nil
}

func (c *Client) MarkRoomRead(ctx context.Context, roomID string) error {
	return c.do(ctx, http.MethodPut, roomPath(roomID, "/read"), nil, nil, nil)
}

func (c *Client) ChatStats(ctx context.Context) (*domain.ChatStats, error) {
	var stats domain.ChatStats
	if err := c.do(ctx, http.MethodGet, "/chat/stats", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
