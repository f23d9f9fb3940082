package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/skip2/go-qrcode"

	"github.com/clippy-oss/homie/storefront-realtime/internal/auth"
	"github.com/clippy-oss/homie/storefront-realtime/internal/domain"
	"github.com/clippy-oss/homie/storefront-realtime/internal/service"
)

// errQuit is returned by Execute for /quit so both front ends can stop their loop.
var errQuit = errors.New("quit")

// CommandHandler handles CLI commands
type CommandHandler struct {
	session *service.SessionService
	chat    *service.ChatService
	notes   *service.NotificationService
}

// NewCommandHandler creates a new command handler
func NewCommandHandler(session *service.SessionService, chat *service.ChatService, notes *service.NotificationService) *CommandHandler {
	return &CommandHandler{
		session: session,
		chat:    chat,
		notes:   notes,
	}
}

// Command represents a parsed command
type Command struct {
	Name string
	Args []string
}

// ParseCommand parses a command string (e.g., "/send where is my order?")
func ParseCommand(input string) (*Command, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, fmt.Errorf("empty command")
	}

	if !strings.HasPrefix(input, "/") {
		return nil, fmt.Errorf("commands must start with /")
	}

	parts := strings.Fields(input)
	if len(parts) == 0 {
		return nil, fmt.Errorf("empty command")
	}

	name := strings.TrimPrefix(parts[0], "/")
	args := parts[1:]

	return &Command{Name: name, Args: args}, nil
}

// Execute executes a command and returns the result
func (h *CommandHandler) Execute(ctx context.Context, cmd *Command) (interface{}, error) {
	switch cmd.Name {
	case "help", "h":
		return h.cmdHelp()
	case "status", "s":
		return h.cmdStatus()
	case "login":
		return h.cmdLogin(ctx, cmd.Args)
	case "connect", "c":
		return h.cmdConnect()
	case "disconnect", "d":
		return h.cmdDisconnect()
	case "logout":
		return h.cmdLogout()
	case "open":
		return h.cmdOpen(ctx)
	case "rooms", "ls":
		return h.cmdRooms(ctx, cmd.Args)
	case "select":
		return h.cmdSelect(ctx, cmd.Args)
	case "messages", "msg":
		return h.cmdMessages(cmd.Args)
	case "send":
		return h.cmdSend(ctx, cmd.Args)
	case "read":
		return h.cmdRead(ctx, cmd.Args)
	case "unread":
		return h.cmdUnread()
	case "stats":
		return h.cmdStats(ctx)
	case "notifications", "n":
		return h.cmdNotifications(cmd.Args)
	case "nread":
		return h.cmdMarkNotification(ctx, cmd.Args, true)
	case "nunread":
		return h.cmdMarkNotification(ctx, cmd.Args, false)
	case "ndelete":
		return h.cmdDeleteNotifications(ctx, cmd.Args)
	case "nreadall":
		return h.cmdMarkAllRead(ctx)
	case "nstats":
		return h.cmdNotificationStats()
	case "prefs":
		return h.cmdPrefs(ctx, cmd.Args)
	case "qr":
		return h.cmdQR(ctx, cmd.Args)
	case "search":
		return h.cmdSearch(ctx, cmd.Args)
	case "quit", "exit", "q":
		return nil, errQuit
	default:
		return nil, fmt.Errorf("unknown command: %s. Type /help for available commands", cmd.Name)
	}
}

func (h *CommandHandler) cmdHelp() (interface{}, error) {
	help := `Available commands:

Session:
  /status, /s              Show session and push channel status
  /login <token> [role]    Start a session (role: customer or admin)
  /connect, /c             Reopen the push channels
  /disconnect, /d          Close the push channels (REST keeps working)
  /logout                  End the session and clear local state

Chat:
  /open                    Open your support chat (customers)
  /rooms, /ls [reload]     List chat rooms
  /select <room>           Select a room and load its messages
  /messages, /msg [room]   Show messages (default: selected room)
  /send <text>             Send a message to the selected room
  /read <room>             Mark a room as read
  /unread                  Show the total unread message count
  /stats                   Show chat statistics
  /search <query> [limit]  Search archived messages

Notifications:
  /notifications, /n [unread]  List notifications
  /nread <id>              Mark a notification as read
  /nunread <id>            Mark a notification as unread
  /ndelete <id> [id...]    Delete notifications
  /nreadall                Mark every notification as read
  /nstats                  Show notification counts
  /prefs [name on|off]     Show or change notification preferences
  /qr <id>                 Show a notification's link as a QR code

Other:
  /help, /h                Show this help
  /quit, /exit, /q         Exit the CLI`

	return map[string]string{"help": help}, nil
}

func (h *CommandHandler) cmdStatus() (interface{}, error) {
	status := ConnectionStatus{
		State:    h.session.State().String(),
		Channels: make(map[string]string),
	}
	if a, ok := h.session.Auth(); ok {
		status.LoggedIn = true
		status.UserID = a.UserID
		status.UserName = a.DisplayName()
		status.Role = string(a.Role)
	}
	for name, st := range h.session.ChannelStates() {
		status.Channels[name] = st.String()
	}
	return status, nil
}

func (h *CommandHandler) cmdLogin(ctx context.Context, args []string) (interface{}, error) {
	if len(args) < 1 {
		return nil, fmt.Errorf("usage: /login <token> [customer|admin]")
	}
	role := ""
	if len(args) > 1 {
		role = args[1]
	}

	ac, err := auth.Resolve(args[0], "", "", role)
	if err != nil {
		return nil, fmt.Errorf("invalid credentials: %w", err)
	}
	if err := h.session.Start(ctx, ac); err != nil {
		return nil, fmt.Errorf("failed to start session: %w", err)
	}

	return map[string]string{"message": fmt.Sprintf("Logged in as %s (%s)", ac.DisplayName(), ac.Role)}, nil
}

func (h *CommandHandler) cmdConnect() (interface{}, error) {
	if _, ok := h.session.Auth(); !ok {
		return nil, fmt.Errorf("not logged in. Use /login <token> first")
	}
	if err := h.session.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}
	return map[string]string{"message": "Push channels connecting"}, nil
}

func (h *CommandHandler) cmdDisconnect() (interface{}, error) {
	if err := h.session.Disconnect(); err != nil {
		return nil, fmt.Errorf("failed to disconnect: %w", err)
	}
	return map[string]string{"message": "Push channels closed"}, nil
}

func (h *CommandHandler) cmdLogout() (interface{}, error) {
	h.session.Stop()
	return map[string]string{"message": "Logged out. Local chat and notification state cleared."}, nil
}

func (h *CommandHandler) cmdOpen(ctx context.Context) (interface{}, error) {
	room, err := h.chat.OpenChat(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open chat: %w", err)
	}
	return toRoomInfo(room, room.ID), nil
}

func (h *CommandHandler) cmdRooms(ctx context.Context, args []string) (interface{}, error) {
	var (
		rooms []*domain.ChatRoom
		err   error
	)
	if len(args) > 0 && args[0] == "reload" {
		rooms, err = h.chat.ReloadRooms(ctx)
	} else {
		rooms, err = h.chat.GetRooms()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get rooms: %w", err)
	}

	currentID := ""
	if current, err := h.chat.CurrentRoom(); err == nil {
		currentID = current.ID
	}

	result := make([]RoomInfo, len(rooms))
	for i, room := range rooms {
		result[i] = toRoomInfo(room, currentID)
	}

	return map[string]interface{}{"rooms": result, "count": len(result)}, nil
}

func (h *CommandHandler) cmdSelect(ctx context.Context, args []string) (interface{}, error) {
	if len(args) < 1 {
		return nil, fmt.Errorf("usage: /select <room_id>")
	}
	if err := h.chat.SelectRoom(ctx, args[0]); err != nil {
		return nil, fmt.Errorf("failed to select room: %w", err)
	}
	return h.cmdMessages(args[:1])
}

func (h *CommandHandler) cmdMessages(args []string) (interface{}, error) {
	roomID := ""
	if len(args) > 0 {
		roomID = args[0]
	}

	messages, err := h.chat.GetMessages(roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}
	if roomID == "" {
		if current, err := h.chat.CurrentRoom(); err == nil {
			roomID = current.ID
		}
	}

	viewerID := h.viewerID()
	result := make([]MessageInfo, len(messages))
	for i, msg := range messages {
		result[i] = toMessageInfo(msg, viewerID)
		result[i].Pending = domain.IsSynthesizedID(msg.ID)
	}

	return map[string]interface{}{"room_id": roomID, "messages": result, "count": len(result)}, nil
}

func (h *CommandHandler) cmdSend(ctx context.Context, args []string) (interface{}, error) {
	if len(args) < 1 {
		return nil, fmt.Errorf("usage: /send <text>")
	}

	text := strings.Join(args, " ")

	msg, err := h.chat.SendMessage(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}

	return toMessageInfo(msg, h.viewerID()), nil
}

func (h *CommandHandler) cmdRead(ctx context.Context, args []string) (interface{}, error) {
	roomID := ""
	if len(args) > 0 {
		roomID = args[0]
	} else if current, err := h.chat.CurrentRoom(); err == nil {
		roomID = current.ID
	}
	if roomID == "" {
		return nil, fmt.Errorf("usage: /read <room_id>")
	}

	if err := h.chat.MarkRoomRead(ctx, roomID); err != nil {
		return nil, fmt.Errorf("failed to mark as read: %w", err)
	}

	total, _ := h.chat.UnreadCount()
	return map[string]interface{}{
		"message":      "Room marked as read",
		"room_id":      roomID,
		"total_unread": total,
	}, nil
}

func (h *CommandHandler) cmdUnread() (interface{}, error) {
	total, err := h.chat.UnreadCount()
	if err != nil {
		return nil, err
	}
	return map[string]int{"unread": total}, nil
}

func (h *CommandHandler) cmdStats(ctx context.Context) (interface{}, error) {
	stats, err := h.chat.GetStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chat stats: %w", err)
	}
	return stats, nil
}

func (h *CommandHandler) cmdNotifications(args []string) (interface{}, error) {
	unreadOnly := len(args) > 0 && args[0] == "unread"

	list, err := h.notes.GetNotifications(unreadOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}

	result := make([]NotificationInfo, len(list))
	for i, n := range list {
		result[i] = toNotificationInfo(n)
	}

	return map[string]interface{}{"notifications": result, "count": len(result)}, nil
}

func (h *CommandHandler) cmdMarkNotification(ctx context.Context, args []string, read bool) (interface{}, error) {
	if len(args) < 1 {
		if read {
			return nil, fmt.Errorf("usage: /nread <notification_id>")
		}
		return nil, fmt.Errorf("usage: /nunread <notification_id>")
	}

	if err := h.notes.MarkRead(ctx, args[0], read); err != nil {
		return nil, fmt.Errorf("failed to update notification: %w", err)
	}

	state := "read"
	if !read {
		state = "unread"
	}
	return map[string]string{"message": fmt.Sprintf("Notification %s marked as %s", args[0], state)}, nil
}

func (h *CommandHandler) cmdDeleteNotifications(ctx context.Context, args []string) (interface{}, error) {
	if len(args) < 1 {
		return nil, fmt.Errorf("usage: /ndelete <notification_id> [notification_id...]")
	}

	if err := h.notes.Delete(ctx, args); err != nil {
		return nil, fmt.Errorf("failed to delete notifications: %w", err)
	}

	return map[string]interface{}{
		"message": "Notifications deleted",
		"ids":     args,
	}, nil
}

func (h *CommandHandler) cmdMarkAllRead(ctx context.Context) (interface{}, error) {
	if err := h.notes.MarkAllRead(ctx); err != nil {
		return nil, fmt.Errorf("failed to mark all as read: %w", err)
	}
	return map[string]string{"message": "All notifications marked as read"}, nil
}

func (h *CommandHandler) cmdNotificationStats() (interface{}, error) {
	stats, err := h.notes.GetStats()
	if err != nil {
		return nil, fmt.Errorf("failed to get notification stats: %w", err)
	}
	return stats, nil
}

var preferenceFields = map[string]func(p *domain.NotificationPreferences) *bool{
	"email":      func(p *domain.NotificationPreferences) *bool { return &p.EmailNotifications },
	"push":       func(p *domain.NotificationPreferences) *bool { return &p.PushNotifications },
	"orders":     func(p *domain.NotificationPreferences) *bool { return &p.OrderUpdates },
	"promotions": func(p *domain.NotificationPreferences) *bool { return &p.Promotions },
	"favorites":  func(p *domain.NotificationPreferences) *bool { return &p.Favorites },
	"chat":       func(p *domain.NotificationPreferences) *bool { return &p.ChatMessages },
	"system":     func(p *domain.NotificationPreferences) *bool { return &p.SystemAlerts },
}

func (h *CommandHandler) cmdPrefs(ctx context.Context, args []string) (interface{}, error) {
	prefs, err := h.notes.GetPreferences(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get preferences: %w", err)
	}
	if len(args) == 0 {
		return prefs, nil
	}
	if len(args) != 2 {
		return nil, fmt.Errorf("usage: /prefs [email|push|orders|promotions|favorites|chat|system on|off]")
	}

	field, ok := preferenceFields[args[0]]
	if !ok {
		return nil, fmt.Errorf("unknown preference: %s", args[0])
	}
	switch args[1] {
	case "on", "true":
		*field(prefs) = true
	case "off", "false":
		*field(prefs) = false
	default:
		return nil, fmt.Errorf("preference value must be on or off")
	}

	updated, err := h.notes.UpdatePreferences(ctx, *prefs)
	if err != nil {
		return nil, fmt.Errorf("failed to update preferences: %w", err)
	}
	return updated, nil
}

func (h *CommandHandler) cmdQR(ctx context.Context, args []string) (interface{}, error) {
	if len(args) < 1 {
		return nil, fmt.Errorf("usage: /qr <notification_id>")
	}

	n, err := h.notes.GetNotification(ctx, args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to get notification: %w", err)
	}
	if n.ActionURL == "" {
		return nil, fmt.Errorf("notification %s has no link", n.ID)
	}

	qr, err := qrcode.New(n.ActionURL, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to render QR code: %w", err)
	}

	return QRInfo{
		NotificationID: n.ID,
		URL:            n.ActionURL,
		QRCode:         qr.ToSmallString(false),
	}, nil
}

func (h *CommandHandler) cmdSearch(ctx context.Context, args []string) (interface{}, error) {
	if len(args) < 1 {
		return nil, fmt.Errorf("usage: /search <query> [limit]")
	}

	query := args[0]
	limit := 20

	// Check if last arg is a number (limit)
	if len(args) > 1 {
		if l, err := strconv.Atoi(args[len(args)-1]); err == nil && l > 0 {
			limit = l
			query = strings.Join(args[:len(args)-1], " ")
		} else {
			query = strings.Join(args, " ")
		}
	}

	messages, err := h.chat.SearchMessages(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	viewerID := h.viewerID()
	result := make([]MessageInfo, len(messages))
	for i, msg := range messages {
		result[i] = toMessageInfo(msg, viewerID)
	}

	return map[string]interface{}{
		"query":    query,
		"messages": result,
		"count":    len(result),
	}, nil
}

func (h *CommandHandler) viewerID() string {
	if a, ok := h.session.Auth(); ok {
		return a.UserID
	}
	return ""
}

var defaultEventTypes = []domain.EventType{
	domain.EventTypeMessageReceived,
	domain.EventTypeMessageSent,
	domain.EventTypeRoomUpdated,
	domain.EventTypeNotificationReceived,
	domain.EventTypeNotificationUpdated,
	domain.EventTypeNotificationRemoved,
	domain.EventTypeNotificationStats,
	domain.EventTypeConnectionStatus,
	domain.EventTypeSessionCleared,
}

// SubscribeEvents subscribes to session events. The returned func unsubscribes and
// closes the event channel.
func (h *CommandHandler) SubscribeEvents(eventTypes []domain.EventType) (<-chan Event, func()) {
	if len(eventTypes) == 0 {
		eventTypes = defaultEventTypes
	}

	eventBus := h.session.GetEventBus()
	domainChan := eventBus.Subscribe(eventTypes)

	resultChan := make(chan Event, 16)

	go func() {
		defer close(resultChan)
		for evt := range domainChan {
			eventType, data, ok := h.convertEvent(evt)
			if !ok {
				continue
			}
			resultChan <- Event{
				Type:      eventType,
				Timestamp: evt.Timestamp(),
				Data:      data,
			}
		}
	}()

	return resultChan, func() { eventBus.Unsubscribe(domainChan) }
}

func (h *CommandHandler) convertEvent(evt domain.Event) (string, interface{}, bool) {
	switch e := evt.(type) {
	case domain.MessageReceivedEvent:
		info := toMessageInfo(e.Message, h.viewerID())
		return "message_received", map[string]interface{}{"message": info, "total_unread": e.TotalUnread}, true
	case domain.MessageSentEvent:
		info := toMessageInfo(e.Message, h.viewerID())
		info.Pending = e.Pending
		return "message_sent", info, true
	case domain.RoomUpdatedEvent:
		return "room_updated", toRoomInfo(e.Room, ""), true
	case domain.NotificationReceivedEvent:
		return "notification_received", toNotificationInfo(e.Notification), true
	case domain.NotificationUpdatedEvent:
		return "notification_updated", toNotificationInfo(e.Notification), true
	case domain.NotificationRemovedEvent:
		return "notification_removed", map[string]interface{}{"ids": e.IDs}, true
	case domain.NotificationStatsEvent:
		return "notification_stats", e.Stats, true
	case domain.ConnectionStatusEvent:
		return "connection_status", map[string]interface{}{
			"channel":   e.Channel,
			"connected": e.Connected,
			"reason":    e.Reason,
		}, true
	case domain.SessionClearedEvent:
		return "session_cleared", map[string]interface{}{"at": e.EventTime.Format(time.RFC3339)}, true
	default:
		return "", nil, false
	}
}
