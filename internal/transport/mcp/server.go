package mcp

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/clippy-oss/homie/storefront-realtime/internal/metrics"
	"github.com/clippy-oss/homie/storefront-realtime/internal/service"
)

type ServerConfig struct {
	Address string
}

type Server struct {
	mcpServer  *server.MCPServer
	sseServer  *server.SSEServer
	httpServer *http.Server
	session    *service.SessionService
	chat       *service.ChatService
	notes      *service.NotificationService
	config     ServerConfig
	log        zerolog.Logger
}

func NewServer(
	session *service.SessionService,
	chat *service.ChatService,
	notes *service.NotificationService,
	config ServerConfig,
	log zerolog.Logger,
) *Server {
	s := &Server{
		session: session,
		chat:    chat,
		notes:   notes,
		config:  config,
		log:     log,
	}

	s.mcpServer = server.NewMCPServer(
		"storefront-realtime",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithToolHandlerMiddleware(s.observeTool),
	)

	s.registerTools()

	s.sseServer = server.NewSSEServer(s.mcpServer,
		server.WithKeepAliveInterval(30*time.Second),
	)

	return s
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(
		mcp.NewTool("storefront_list_rooms",
			mcp.WithDescription("List the support chat rooms of the current session with their unread counts"),
			mcp.WithBoolean("reload",
				mcp.Description("Fetch the room list from the server before answering"),
			),
		),
		s.handleListRooms,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("storefront_get_messages",
			mcp.WithDescription("Get the messages of a chat room. Without room_id the selected room is used."),
			mcp.WithString("room_id",
				mcp.Description("ID of the chat room"),
			),
			mcp.WithBoolean("archived",
				mcp.Description("Read from the local archive instead of the live session"),
			),
			mcp.WithNumber("limit",
				mcp.Description("Maximum number of messages to return (default 50, max 200)"),
			),
		),
		s.handleGetMessages,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("storefront_send_message",
			mcp.WithDescription("Send a chat message. Without room_id it goes to the selected room; a customer without a room gets one opened."),
			mcp.WithString("text",
				mcp.Required(),
				mcp.Description("Message text to send"),
			),
			mcp.WithString("room_id",
				mcp.Description("ID of the chat room"),
			),
		),
		s.handleSendMessage,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("storefront_mark_room_read",
			mcp.WithDescription("Mark every message of a chat room as read"),
			mcp.WithString("room_id",
				mcp.Required(),
				mcp.Description("ID of the chat room"),
			),
		),
		s.handleMarkRoomRead,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("storefront_unread_count",
			mcp.WithDescription("Get the total number of unread chat messages across loaded rooms"),
		),
		s.handleUnreadCount,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("storefront_list_notifications",
			mcp.WithDescription("List notifications, most recent first"),
			mcp.WithBoolean("unread_only",
				mcp.Description("Only return unread notifications"),
			),
		),
		s.handleListNotifications,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("storefront_notification_stats",
			mcp.WithDescription("Get total, unread and high-priority unread notification counts"),
		),
		s.handleNotificationStats,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("storefront_mark_notification",
			mcp.WithDescription("Mark a notification as read or unread"),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("ID of the notification"),
			),
			mcp.WithBoolean("read",
				mcp.Description("true to mark read (default), false to mark unread"),
			),
		),
		s.handleMarkNotification,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("storefront_delete_notifications",
			mcp.WithDescription("Delete one or more notifications"),
			mcp.WithString("ids",
				mcp.Required(),
				mcp.Description("Comma-separated list of notification IDs"),
			),
		),
		s.handleDeleteNotifications,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("storefront_search_messages",
			mcp.WithDescription("Search archived chat messages by text or sender name"),
			mcp.WithString("query",
				mcp.Required(),
				mcp.Description("Search query text"),
			),
			mcp.WithNumber("limit",
				mcp.Description("Maximum results to return (default 20, max 100)"),
			),
		),
		s.handleSearchMessages,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("storefront_archive",
			mcp.WithDescription("Browse the local archive. Without room_id it lists archived rooms; with room_id it returns that room's archived messages."),
			mcp.WithString("room_id",
				mcp.Description("ID of the archived chat room"),
			),
			mcp.WithString("since",
				mcp.Description("Only messages after this point: a duration such as 2h, or an RFC3339 time"),
			),
			mcp.WithNumber("limit",
				mcp.Description("Maximum number of rooms or messages to return (default 50, max 200)"),
			),
		),
		s.handleArchive,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("storefront_connection_status",
			mcp.WithDescription("Get the state of the session and of both push channels"),
		),
		s.handleConnectionStatus,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("storefront_connect",
			mcp.WithDescription("Reopen the push channels of the current session"),
		),
		s.handleConnect,
	)

	s.mcpServer.AddTool(
		mcp.NewTool("storefront_disconnect",
			mcp.WithDescription("Close the push channels. REST operations keep working."),
		),
		s.handleDisconnect,
	)
}

// observeTool logs and counts every tool call. Tool errors are results, not Go errors.
func (s *Server) observeTool(next server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		start := time.Now()
		res, err := next(ctx, request)

		outcome := "ok"
		switch {
		case err != nil:
			outcome = "failed"
		case res != nil && res.IsError:
			outcome = "tool_error"
		}
		metrics.AdapterRequests.WithLabelValues("mcp", request.Params.Name, outcome).Inc()
		s.log.Debug().Str("tool", request.Params.Name).Str("outcome", outcome).Dur("duration", time.Since(start)).Msg("mcp tool call")
		return res, err
	}
}

// Handler returns the HTTP routes: the MCP SSE transport, /health and /metrics.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Handle("/sse", s.sseServer.SSEHandler())
	r.Handle("/message", s.sseServer.MessageHandler())
	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.session.State() == service.SessionTornDown {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("logged out"))
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              s.config.Address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.log.Info().Str("address", s.config.Address).Msg("mcp server listening")
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
