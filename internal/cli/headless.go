package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// HeadlessCLI handles JSON-based headless operation
type HeadlessCLI struct {
	handler *CommandHandler
	reader  *bufio.Reader
	writer  io.Writer
	mu      sync.Mutex
}

// NewHeadlessCLI creates a headless CLI reading requests from r and writing JSON lines to w.
func NewHeadlessCLI(handler *CommandHandler, r io.Reader, w io.Writer) *HeadlessCLI {
	return &HeadlessCLI{
		handler: handler,
		reader:  bufio.NewReader(r),
		writer:  w,
	}
}

// Run starts the headless JSON processing loop
func (cli *HeadlessCLI) Run(ctx context.Context) error {
	cli.sendResponse(Response{
		Success: true,
		Data:    map[string]string{"status": "ready", "mode": string(ModeHeadless)},
	})

	eventChan, unsubscribe := cli.handler.SubscribeEvents(nil)
	done := make(chan struct{})
	go func() {
		defer close(done)
		cli.streamEvents(eventChan)
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
			line, err := cli.reader.ReadString('\n')
			if strings.TrimSpace(line) != "" {
				if quit := cli.processRequest(ctx, line); quit {
					return nil
				}
			}
			if err != nil {
				if err == io.EOF {
					return nil
				}
				return fmt.Errorf("read request: %w", err)
			}
		}
	}
}

// processRequest handles one request line and reports whether the client asked to quit.
func (cli *HeadlessCLI) processRequest(ctx context.Context, line string) bool {
	var req Request
	if err := json.Unmarshal([]byte(line), &req); err != nil {
		cli.sendError("", fmt.Sprintf("invalid JSON: %v", err))
		return false
	}

	if req.ID == "" {
		req.ID = uuid.NewString()
	}
	if req.Command == "" {
		cli.sendError(req.ID, "missing command field")
		return false
	}

	cmd := &Command{
		Name: req.Command,
		Args: cli.paramsToArgs(req.Command, req.Params),
	}

	if req.Command == "subscribe" {
		// events are streamed from startup
		cli.sendResponse(Response{
			ID:      req.ID,
			Success: true,
			Data:    map[string]string{"message": "subscribed to events"},
		})
		return false
	}

	result, err := cli.handler.Execute(ctx, cmd)
	if errors.Is(err, errQuit) {
		cli.sendResponse(Response{
			ID:      req.ID,
			Success: true,
			Data:    map[string]string{"message": "goodbye"},
		})
		return true
	}
	if err != nil {
		cli.sendError(req.ID, err.Error())
		return false
	}

	cli.sendResponse(Response{
		ID:      req.ID,
		Success: true,
		Data:    result,
	})
	return false
}

func (cli *HeadlessCLI) paramsToArgs(command string, params map[string]interface{}) []string {
	if params == nil {
		return nil
	}

	var args []string

	switch command {
	case "login":
		if token, ok := params["token"].(string); ok {
			args = append(args, token)
		}
		if role, ok := params["role"].(string); ok {
			args = append(args, role)
		}

	case "rooms", "ls":
		if reload, ok := params["reload"].(bool); ok && reload {
			args = append(args, "reload")
		}

	case "select", "messages", "msg", "read":
		if roomID, ok := params["room_id"].(string); ok {
			args = append(args, roomID)
		}

	case "send":
		if text, ok := params["text"].(string); ok {
			args = append(args, strings.Fields(text)...)
		}

	case "notifications", "n":
		if unread, ok := params["unread_only"].(bool); ok && unread {
			args = append(args, "unread")
		}

	case "nread", "nunread", "qr":
		if id, ok := params["id"].(string); ok {
			args = append(args, id)
		}

	case "ndelete":
		if id, ok := params["id"].(string); ok {
			args = append(args, id)
		}
		if ids, ok := params["ids"].([]interface{}); ok {
			for _, id := range ids {
				if s, ok := id.(string); ok {
					args = append(args, s)
				}
			}
		}

	case "prefs":
		name, hasName := params["name"].(string)
		enabled, hasValue := params["enabled"].(bool)
		if hasName && hasValue {
			value := "off"
			if enabled {
				value = "on"
			}
			args = append(args, name, value)
		}

	case "search":
		if query, ok := params["query"].(string); ok {
			args = append(args, strings.Fields(query)...)
		}
		if limit, ok := params["limit"].(float64); ok {
			args = append(args, fmt.Sprintf("%d", int(limit)))
		}
	}

	return args
}

func (cli *HeadlessCLI) streamEvents(eventChan <-chan Event) {
	for event := range eventChan {
		cli.sendEvent(event)
	}
}

func (cli *HeadlessCLI) sendResponse(resp Response) {
	cli.mu.Lock()
	defer cli.mu.Unlock()

	data, _ := json.Marshal(resp)
	fmt.Fprintln(cli.writer, string(data))
}

func (cli *HeadlessCLI) sendError(id, message string) {
	cli.sendResponse(Response{
		ID:      id,
		Success: false,
		Error:   message,
	})
}

func (cli *HeadlessCLI) sendEvent(event Event) {
	cli.mu.Lock()
	defer cli.mu.Unlock()

	data, _ := json.Marshal(map[string]interface{}{
		"type":      "event",
		"event":     event.Type,
		"timestamp": event.Timestamp,
		"data":      event.Data,
	})
	fmt.Fprintln(cli.writer, string(data))
}
