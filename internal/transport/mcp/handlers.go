package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/clippy-oss/homie/storefront-realtime/internal/domain"
	"github.com/clippy-oss/homie/storefront-realtime/internal/service"
)

const timeLayout = "2006-01-02 15:04"

func clampLimit(v, def, max int) int {
	if v <= 0 {
		return def
	}
	if v > max {
		return max
	}
	return v
}

func preview(text string, n int) string {
	r := []rune(text)
	if len(r) <= n {
		return text
	}
	return string(r[:n]) + "..."
}

func (s *Server) handleListRooms(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var (
		rooms []*domain.ChatRoom
		err   error
	)
	if request.GetBool("reload", false) {
		rooms, err = s.chat.ReloadRooms(ctx)
	} else {
		rooms, err = s.chat.GetRooms()
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get rooms: %v", err)), nil
	}

	if len(rooms) == 0 {
		return mcp.NewToolResultText("No chat rooms loaded."), nil
	}

	currentID := ""
	if current, err := s.chat.CurrentRoom(); err == nil {
		currentID = current.ID
	}

	var result strings.Builder
	result.WriteString(fmt.Sprintf("Found %d room(s):\n\n", len(rooms)))

	for i, room := range rooms {
		marker := ""
		if room.ID == currentID {
			marker = " [selected]"
		}
		result.WriteString(fmt.Sprintf("%d. %s (%s)%s\n", i+1, room.Name, room.Status, marker))
		result.WriteString(fmt.Sprintf("   ID: %s\n", room.ID))

		if room.UnreadCount > 0 {
			result.WriteString(fmt.Sprintf("   Unread: %d message(s)\n", room.UnreadCount))
		}
		if room.LastMessage != "" {
			result.WriteString(fmt.Sprintf("   Last: %s\n", preview(room.LastMessage, 60)))
			if room.LastMessageTime != nil {
				result.WriteString(fmt.Sprintf("   Time: %s\n", room.LastMessageTime.Format(timeLayout)))
			}
		}
		result.WriteString("\n")
	}

	return mcp.NewToolResultText(result.String()), nil
}

func (s *Server) handleGetMessages(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	roomID := request.GetString("room_id", "")
	limit := clampLimit(request.GetInt("limit", 50), 50, 200)

	var (
		messages []*domain.ChatMessage
		err      error
	)
	if request.GetBool("archived", false) {
		if roomID == "" {
			return mcp.NewToolResultError("room_id is required for archived messages"), nil
		}
		messages, err = s.chat.GetArchivedMessages(ctx, roomID, limit, 0)
	} else {
		messages, err = s.chat.GetMessages(roomID)
		if len(messages) > limit {
			messages = messages[len(messages)-limit:]
		}
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get messages: %v", err)), nil
	}

	label := roomID
	if label == "" {
		label = "the selected room"
	}
	if len(messages) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No messages found in %s", label)), nil
	}

	var result strings.Builder
	result.WriteString(fmt.Sprintf("Messages from %s (%d):\n\n", label, len(messages)))

	for _, msg := range messages {
		readStatus := ""
		if msg.IsRead {
			readStatus = " [read]"
		}
		result.WriteString(fmt.Sprintf("[%s] %s (%s)%s:\n", msg.Timestamp.Format(timeLayout), msg.SenderName, msg.SenderRole, readStatus))

		switch msg.MessageType {
		case domain.MessageTypeImage:
			result.WriteString(fmt.Sprintf("  [Image] %s\n", msg.Message))
		case domain.MessageTypeFile:
			result.WriteString(fmt.Sprintf("  [File] %s\n", msg.Message))
		default:
			result.WriteString(fmt.Sprintf("  %s\n", msg.Message))
		}
		if domain.IsSynthesizedID(msg.ID) {
			result.WriteString("  (pending)\n\n")
			continue
		}
		result.WriteString(fmt.Sprintf("  ID: %s\n\n", msg.ID))
	}

	return mcp.NewToolResultText(result.String()), nil
}

func (s *Server) handleSendMessage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	text := request.GetString("text", "")
	if text == "" {
		return mcp.NewToolResultError("text is required"), nil
	}

	var (
		msg *domain.ChatMessage
		err error
	)
	if roomID := request.GetString("room_id", ""); roomID != "" {
		msg, err = s.chat.SendMessageTo(ctx, roomID, text)
	} else {
		msg, err = s.chat.SendMessage(ctx, text)
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to send message: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Message sent successfully!\nID: %s\nTimestamp: %s\nRoom: %s",
		msg.ID, msg.Timestamp.Format("2006-01-02 15:04:05"), msg.RoomID)), nil
}

func (s *Server) handleMarkRoomRead(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	roomID := request.GetString("room_id", "")
	if roomID == "" {
		return mcp.NewToolResultError("room_id is required"), nil
	}

	if err := s.chat.MarkRoomRead(ctx, roomID); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to mark as read: %v", err)), nil
	}

	total, _ := s.chat.UnreadCount()
	return mcp.NewToolResultText(fmt.Sprintf("Room %s marked as read. Unread messages left: %d", roomID, total)), nil
}

func (s *Server) handleUnreadCount(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	total, err := s.chat.UnreadCount()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get unread count: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Unread messages: %d", total)), nil
}

func (s *Server) handleListNotifications(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	list, err := s.notes.GetNotifications(request.GetBool("unread_only", false))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get notifications: %v", err)), nil
	}

	if len(list) == 0 {
		return mcp.NewToolResultText("No notifications."), nil
	}

	var result strings.Builder
	result.WriteString(fmt.Sprintf("Found %d notification(s):\n\n", len(list)))

	for i, n := range list {
		flags := []string{string(n.Type)}
		if !n.IsRead {
			flags = append(flags, "unread")
		}
		if n.IsHighPriority() {
			flags = append(flags, "high priority")
		}
		result.WriteString(fmt.Sprintf("%d. %s [%s]\n", i+1, n.Title, strings.Join(flags, ", ")))
		if n.Message != "" {
			result.WriteString(fmt.Sprintf("   %s\n", preview(n.Message, 100)))
		}
		if n.ActionURL != "" {
			result.WriteString(fmt.Sprintf("   Link: %s\n", n.ActionURL))
		}
		result.WriteString(fmt.Sprintf("   ID: %s\n   Time: %s\n\n", n.ID, n.CreatedAt.Format(timeLayout)))
	}

	return mcp.NewToolResultText(result.String()), nil
}

func (s *Server) handleNotificationStats(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats, err := s.notes.GetStats()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get notification stats: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Total: %d\nUnread: %d\nHigh priority unread: %d",
		stats.TotalCount, stats.UnreadCount, stats.HighPriorityUnread)), nil
}

func (s *Server) handleMarkNotification(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := request.GetString("id", "")
	if id == "" {
		return mcp.NewToolResultError("id is required"), nil
	}
	read := request.GetBool("read", true)

	if err := s.notes.MarkRead(ctx, id, read); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to update notification: %v", err)), nil
	}

	state := "read"
	if !read {
		state = "unread"
	}
	return mcp.NewToolResultText(fmt.Sprintf("Notification %s marked as %s", id, state)), nil
}

func (s *Server) handleDeleteNotifications(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw := request.GetString("ids", "")
	if raw == "" {
		return mcp.NewToolResultError("ids is required"), nil
	}

	var ids []string
	for _, id := range strings.Split(raw, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return mcp.NewToolResultError("ids is required"), nil
	}

	if err := s.notes.Delete(ctx, ids); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to delete notifications: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Deleted %d notification(s)", len(ids))), nil
}

func (s *Server) handleSearchMessages(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := request.GetString("query", "")
	if query == "" {
		return mcp.NewToolResultError("query is required"), nil
	}
	limit := clampLimit(request.GetInt("limit", 20), 20, 100)

	messages, err := s.chat.SearchMessages(ctx, query, limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Search failed: %v", err)), nil
	}

	if len(messages) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No messages found matching '%s'", query)), nil
	}

	var result strings.Builder
	result.WriteString(fmt.Sprintf("Search results for '%s' (%d found):\n\n", query, len(messages)))

	for i, msg := range messages {
		result.WriteString(fmt.Sprintf("%d. [%s] %s:\n", i+1, msg.Timestamp.Format(timeLayout), msg.SenderName))
		result.WriteString(fmt.Sprintf("   Room: %s\n", msg.RoomID))
		result.WriteString(fmt.Sprintf("   %s\n", preview(msg.Message, 100)))
		result.WriteString(fmt.Sprintf("   ID: %s\n\n", msg.ID))
	}

	return mcp.NewToolResultText(result.String()), nil
}

// parseSince accepts a lookback duration or an absolute RFC3339 time.
func parseSince(v string, now time.Time) (time.Time, error) {
	if d, err := time.ParseDuration(v); err == nil {
		return now.Add(-d), nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("since must be a duration like 2h or an RFC3339 time")
	}
	return t, nil
}

func (s *Server) handleArchive(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	roomID := request.GetString("room_id", "")
	limit := clampLimit(request.GetInt("limit", 50), 50, 200)

	if roomID == "" {
		rooms, err := s.chat.GetArchivedRooms(ctx, limit, 0)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to read archive: %v", err)), nil
		}
		if len(rooms) == 0 {
			return mcp.NewToolResultText("The archive has no rooms."), nil
		}

		var result strings.Builder
		result.WriteString(fmt.Sprintf("Archived rooms (%d):\n\n", len(rooms)))
		for i, room := range rooms {
			result.WriteString(fmt.Sprintf("%d. %s\n", i+1, room.Name))
			result.WriteString(fmt.Sprintf("   ID: %s\n", room.ID))
			if room.LastMessage != "" {
				result.WriteString(fmt.Sprintf("   Last: %s\n", preview(room.LastMessage, 60)))
			}
			if room.LastMessageTime != nil {
				result.WriteString(fmt.Sprintf("   Time: %s\n", room.LastMessageTime.Format(timeLayout)))
			}
			result.WriteString("\n")
		}
		return mcp.NewToolResultText(result.String()), nil
	}

	var (
		messages []*domain.ChatMessage
		err      error
	)
	if v := request.GetString("since", ""); v != "" {
		since, perr := parseSince(v, time.Now())
		if perr != nil {
			return mcp.NewToolResultError(perr.Error()), nil
		}
		messages, err = s.chat.GetArchivedMessagesSince(ctx, roomID, since, limit)
	} else {
		messages, err = s.chat.GetArchivedMessages(ctx, roomID, limit, 0)
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to read archive: %v", err)), nil
	}
	if len(messages) == 0 {
		return mcp.NewToolResultText(fmt.Sprintf("No archived messages in %s", roomID)), nil
	}

	var result strings.Builder
	result.WriteString(fmt.Sprintf("Archived messages from %s (%d):\n\n", roomID, len(messages)))
	for _, msg := range messages {
		result.WriteString(fmt.Sprintf("[%s] %s (%s):\n", msg.Timestamp.Format(timeLayout), msg.SenderName, msg.SenderRole))
		result.WriteString(fmt.Sprintf("  %s\n", msg.Message))
		result.WriteString(fmt.Sprintf("  ID: %s\n\n", msg.ID))
	}
	return mcp.NewToolResultText(result.String()), nil
}

func (s *Server) handleConnectionStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var result strings.Builder
	result.WriteString(fmt.Sprintf("Session: %s\n", s.session.State()))

	if auth, ok := s.session.Auth(); ok {
		result.WriteString(fmt.Sprintf("User: %s (%s)\n", auth.DisplayName(), auth.Role))
	} else {
		result.WriteString("User: not logged in\n")
	}

	channels := s.session.ChannelStates()
	names := make([]string, 0, len(channels))
	for name := range channels {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		result.WriteString(fmt.Sprintf("Channel %s: %s\n", name, channels[name]))
	}

	return mcp.NewToolResultText(result.String()), nil
}

func (s *Server) handleConnect(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := s.session.Connect(); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to connect: %v", err)), nil
	}
	return mcp.NewToolResultText("Push channels connecting"), nil
}

func (s *Server) handleDisconnect(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := s.session.Disconnect(); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to disconnect: %v", err)), nil
	}
	if s.session.State() == service.SessionTornDown {
		return mcp.NewToolResultText("Logged out"), nil
	}
	return mcp.NewToolResultText("Push channels closed"), nil
}
