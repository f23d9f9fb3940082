package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/clippy-oss/homie/storefront-realtime/internal/domain"
)

// InteractiveCLI handles interactive command-line interface
type InteractiveCLI struct {
	handler *CommandHandler
	reader  *bufio.Reader
	writer  io.Writer
	mu      sync.Mutex
}

// NewInteractiveCLI creates an interactive CLI reading commands from r and printing to w.
func NewInteractiveCLI(handler *CommandHandler, r io.Reader, w io.Writer) *InteractiveCLI {
	return &InteractiveCLI{
		handler: handler,
		reader:  bufio.NewReader(r),
		writer:  w,
	}
}

// Run starts the interactive CLI loop
func (cli *InteractiveCLI) Run(ctx context.Context) error {
	cli.printWelcome()

	eventChan, unsubscribe := cli.handler.SubscribeEvents([]domain.EventType{
		domain.EventTypeMessageReceived,
		domain.EventTypeNotificationReceived,
		domain.EventTypeConnectionStatus,
		domain.EventTypeSessionCleared,
	})
	done := make(chan struct{})
	go func() {
		defer close(done)
		cli.handleEvents(eventChan)
	}()
	defer func() {
		unsubscribe()
		<-done
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			cli.print("\n> ")
			line, err := cli.reader.ReadString('\n')
			if err != nil && line == "" {
				if err == io.EOF {
					return nil
				}
				return err
			}

			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}

			if err := cli.processCommand(ctx, line); err != nil {
				if errors.Is(err, errQuit) {
					cli.println("Goodbye!")
					return nil
				}
				cli.printf("Error: %s\n", err)
			}
		}
	}
}

func (cli *InteractiveCLI) printWelcome() {
	cli.println("===========================================")
	cli.println("  Storefront Realtime CLI")
	cli.println("===========================================")
	cli.println("Type /help for available commands")
	cli.println("")

	status, _ := cli.handler.cmdStatus()
	if s, ok := status.(ConnectionStatus); ok {
		if s.LoggedIn {
			cli.printf("Status: %s as %s (%s)\n", s.State, s.UserName, s.Role)
		} else {
			cli.println("Status: not logged in. Use /login <token>")
		}
	}
}

func (cli *InteractiveCLI) processCommand(ctx context.Context, input string) error {
	cmd, err := ParseCommand(input)
	if err != nil {
		return err
	}

	result, err := cli.handler.Execute(ctx, cmd)
	if err != nil {
		return err
	}

	cli.displayResult(cmd.Name, result)
	return nil
}

func (cli *InteractiveCLI) displayResult(cmdName string, result interface{}) {
	switch cmdName {
	case "help", "h":
		if m, ok := result.(map[string]string); ok {
			cli.println(m["help"])
		}

	case "status", "s":
		if s, ok := result.(ConnectionStatus); ok {
			cli.printf("Session: %s\n", s.State)
			if s.LoggedIn {
				cli.printf("  User: %s (%s, %s)\n", s.UserName, s.UserID, s.Role)
			} else {
				cli.println("  User: not logged in")
			}
			names := make([]string, 0, len(s.Channels))
			for name := range s.Channels {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				cli.printf("  Channel %s: %s\n", name, s.Channels[name])
			}
		}

	case "rooms", "ls":
		if m, ok := result.(map[string]interface{}); ok {
			rooms, _ := m["rooms"].([]RoomInfo)
			cli.printf("Found %d room(s):\n\n", len(rooms))
			for i, room := range rooms {
				marker := ""
				if room.Selected {
					marker = " *"
				}
				unread := ""
				if room.UnreadCount > 0 {
					unread = fmt.Sprintf(" [%d unread]", room.UnreadCount)
				}
				cli.printf("%d. %s (%s)%s%s\n", i+1, room.Name, room.Status, unread, marker)
				cli.printf("   ID: %s\n", room.ID)
				if room.LastMessage != "" {
					cli.printf("   Last: %s\n", truncate(room.LastMessage, 50))
				}
			}
		}

	case "open":
		if room, ok := result.(RoomInfo); ok {
			cli.printf("Chat open: %s (%s)\n", room.ID, room.Status)
		}

	case "messages", "msg", "select":
		if m, ok := result.(map[string]interface{}); ok {
			roomID, _ := m["room_id"].(string)
			messages, _ := m["messages"].([]MessageInfo)
			cli.printf("Room %s, %d message(s):\n\n", roomID, len(messages))
			for _, msg := range messages {
				sender := "Me"
				if !msg.IsFromMe {
					sender = msg.SenderName
				}
				timestamp := msg.Timestamp.Format("2006-01-02 15:04")
				pending := ""
				if msg.Pending {
					pending = " (sending)"
				}
				cli.printf("[%s] %s%s:\n", timestamp, sender, pending)
				if msg.Type != "" && msg.Type != string(domain.MessageTypeText) {
					cli.printf("  [%s] %s\n", msg.Type, msg.Text)
				} else {
					cli.printf("  %s\n", msg.Text)
				}
			}
		}

	case "send":
		if msg, ok := result.(MessageInfo); ok {
			cli.printf("Message sent!\n")
			cli.printf("  ID: %s\n", msg.ID)
			cli.printf("  Room: %s\n", msg.RoomID)
			cli.printf("  Time: %s\n", msg.Timestamp.Format("2006-01-02 15:04:05"))
		}

	case "unread":
		if m, ok := result.(map[string]int); ok {
			cli.printf("Unread messages: %d\n", m["unread"])
		}

	case "stats":
		if s, ok := result.(domain.ChatStats); ok {
			cli.printf("Rooms: %d (active %d, waiting %d)\n", s.TotalRooms, s.ActiveRooms, s.WaitingRooms)
			cli.printf("Unread: %d\n", s.TotalUnread)
		}

	case "notifications", "n":
		if m, ok := result.(map[string]interface{}); ok {
			list, _ := m["notifications"].([]NotificationInfo)
			cli.printf("Found %d notification(s):\n\n", len(list))
			for i, n := range list {
				flag := " "
				if !n.IsRead {
					flag = "*"
				}
				if n.Priority == string(domain.PriorityHigh) {
					flag += "!"
				}
				cli.printf("%s %d. %s [%s]\n", flag, i+1, n.Title, n.Type)
				if n.Message != "" {
					cli.printf("     %s\n", truncate(n.Message, 80))
				}
				cli.printf("     ID: %s | %s\n", n.ID, n.CreatedAt.Format("2006-01-02 15:04"))
			}
		}

	case "nstats":
		if s, ok := result.(domain.NotificationStats); ok {
			cli.printf("Notifications: %d total, %d unread, %d high priority unread\n",
				s.TotalCount, s.UnreadCount, s.HighPriorityUnread)
		}

	case "qr":
		if info, ok := result.(QRInfo); ok {
			cli.println(info.QRCode)
			cli.printf("Link: %s\n", info.URL)
		}

	case "search":
		if m, ok := result.(map[string]interface{}); ok {
			query, _ := m["query"].(string)
			messages, _ := m["messages"].([]MessageInfo)
			cli.printf("Search results for '%s' (%d found):\n\n", query, len(messages))
			for i, msg := range messages {
				cli.printf("%d. [%s] %s:\n", i+1, msg.Timestamp.Format("2006-01-02 15:04"), msg.SenderName)
				cli.printf("   %s\n", truncate(msg.Text, 80))
				cli.printf("   Room: %s | ID: %s\n\n", msg.RoomID, msg.ID)
			}
		}

	default:
		// Generic JSON output for other commands
		if m, ok := result.(map[string]string); ok {
			if msg, exists := m["message"]; exists {
				cli.println(msg)
				return
			}
		}
		if m, ok := result.(map[string]interface{}); ok {
			if msg, exists := m["message"].(string); exists {
				cli.println(msg)
				return
			}
		}
		data, _ := json.MarshalIndent(result, "", "  ")
		cli.println(string(data))
	}
}

func (cli *InteractiveCLI) handleEvents(eventChan <-chan Event) {
	for event := range eventChan {
		switch event.Type {
		case "message_received":
			if data, ok := event.Data.(map[string]interface{}); ok {
				if msg, ok := data["message"].(MessageInfo); ok {
					cli.printf("\n[New Message] %s in %s:\n", msg.SenderName, msg.RoomID)
					cli.printf("  %s\n", msg.Text)
					cli.print("> ")
				}
			}
		case "notification_received":
			if n, ok := event.Data.(NotificationInfo); ok {
				cli.printf("\n[Notification] %s\n", n.Title)
				cli.print("> ")
			}
		case "connection_status":
			if data, ok := event.Data.(map[string]interface{}); ok {
				channel, _ := data["channel"].(string)
				connected, _ := data["connected"].(bool)
				if connected {
					cli.printf("\n[%s connected]\n", channel)
				} else {
					reason, _ := data["reason"].(string)
					cli.printf("\n[%s disconnected: %s]\n", channel, reason)
				}
				cli.print("> ")
			}
		case "session_cleared":
			cli.println("\n[Session ended]")
			cli.print("> ")
		}
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

func (cli *InteractiveCLI) print(s string) {
	cli.mu.Lock()
	defer cli.mu.Unlock()
	fmt.Fprint(cli.writer, s)
}

func (cli *InteractiveCLI) println(s string) {
	cli.mu.Lock()
	defer cli.mu.Unlock()
	fmt.Fprintln(cli.writer, s)
}

func (cli *InteractiveCLI) printf(format string, args ...interface{}) {
	cli.mu.Lock()
	defer cli.mu.Unlock()
	fmt.Fprintf(cli.writer, format, args...)
}
