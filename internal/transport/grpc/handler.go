package grpc

import (
	"context"
	"errors"
	"io"
	"net/http"
	"sort"

	"github.com/go-playground/validator/v10"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/clippy-oss/homie/storefront-realtime/internal/api"
	"github.com/clippy-oss/homie/storefront-realtime/internal/domain"
	"github.com/clippy-oss/homie/storefront-realtime/internal/service"
	pb "github.com/clippy-oss/homie/storefront-realtime/pkg/pb"
)

type Handler struct {
	pb.UnimplementedDashboardServiceServer
	session *service.SessionService
	chat    *service.ChatService
	notes   *service.NotificationService
}

func NewHandler(session *service.SessionService, chat *service.ChatService, notes *service.NotificationService) *Handler {
	return &Handler{
		session: session,
		chat:    chat,
		notes:   notes,
	}
}

func (h *Handler) GetStatus(ctx context.Context, req *pb.GetStatusRequest) (*pb.GetStatusResponse, error) {
	resp := &pb.GetStatusResponse{State: h.session.State().String()}
	for name, st := range h.session.ChannelStates() {
		resp.Channels = append(resp.Channels, &pb.ChannelState{Name: name, State: st.String()})
	}
	sort.Slice(resp.Channels, func(i, j int) bool { return resp.Channels[i].Name < resp.Channels[j].Name })
	if auth, ok := h.session.Auth(); ok {
		resp.LoggedIn = true
		resp.UserId = auth.UserID
		resp.UserName = auth.DisplayName()
		resp.Role = string(auth.Role)
	}
	return resp, nil
}

func (h *Handler) ListRooms(ctx context.Context, req *pb.ListRoomsRequest) (*pb.ListRoomsResponse, error) {
	var (
		rooms []*domain.ChatRoom
		err   error
	)
	if req.GetReload() {
		rooms, err = h.chat.ReloadRooms(ctx)
	} else {
		rooms, err = h.chat.GetRooms()
	}
	if err != nil {
		return nil, toStatus(err, "failed to list rooms")
	}

	resp := &pb.ListRoomsResponse{Rooms: roomsToProto(rooms)}
	if current, err := h.chat.CurrentRoom(); err == nil {
		resp.CurrentRoomId = current.ID
	}
	return resp, nil
}

func (h *Handler) SelectRoom(ctx context.Context, req *pb.SelectRoomRequest) (*pb.AckResponse, error) {
	if req.GetRoomId() == "" {
		return nil, status.Error(codes.InvalidArgument, "room_id is required")
	}
	if err := h.chat.SelectRoom(ctx, req.GetRoomId()); err != nil {
		return nil, toStatus(err, "failed to select room")
	}
	return &pb.AckResponse{Success: true}, nil
}

func (h *Handler) GetMessages(ctx context.Context, req *pb.GetMessagesRequest) (*pb.GetMessagesResponse, error) {
	var (
		messages []*domain.ChatMessage
		err      error
	)
	limit := int(req.GetLimit())
	if req.GetArchived() {
		if req.GetRoomId() == "" {
			return nil, status.Error(codes.InvalidArgument, "room_id is required for archived messages")
		}
		messages, err = h.chat.GetArchivedMessages(ctx, req.GetRoomId(), limit, 0)
	} else {
		messages, err = h.chat.GetMessages(req.GetRoomId())
	}
	if err != nil {
		return nil, toStatus(err, "failed to get messages")
	}

	if limit > 0 && !req.GetArchived() && len(messages) > limit {
		messages = messages[len(messages)-limit:]
	}
	return &pb.GetMessagesResponse{Messages: messagesToProto(messages)}, nil
}

func (h *Handler) SendMessage(ctx context.Context, req *pb.SendMessageRequest) (*pb.SendMessageResponse, error) {
	var (
		msg *domain.ChatMessage
		err error
	)
	if req.GetRoomId() != "" {
		msg, err = h.chat.SendMessageTo(ctx, req.GetRoomId(), req.GetText())
	} else {
		msg, err = h.chat.SendMessage(ctx, req.GetText())
	}
	if err != nil {
		return nil, toStatus(err, "failed to send message")
	}
	return &pb.SendMessageResponse{Message: messageToProto(msg, false)}, nil
}

func (h *Handler) MarkRoomRead(ctx context.Context, req *pb.MarkRoomReadRequest) (*pb.AckResponse, error) {
	roomID := req.GetRoomId()
	if roomID == "" {
		current, err := h.chat.CurrentRoom()
		if err != nil {
			return nil, toStatus(err, "failed to mark room read")
		}
		roomID = current.ID
	}
	if err := h.chat.MarkRoomRead(ctx, roomID); err != nil {
		return nil, toStatus(err, "failed to mark room read")
	}
	return &pb.AckResponse{Success: true}, nil
}

func (h *Handler) GetUnreadCount(ctx context.Context, req *pb.GetUnreadCountRequest) (*pb.GetUnreadCountResponse, error) {
	count, err := h.chat.UnreadCount()
	if err != nil {
		return nil, toStatus(err, "failed to get unread count")
	}
	return &pb.GetUnreadCountResponse{Count: int32(count)}, nil
}

func (h *Handler) ListNotifications(ctx context.Context, req *pb.ListNotificationsRequest) (*pb.ListNotificationsResponse, error) {
	list, err := h.notes.GetNotifications(req.GetUnreadOnly())
	if err != nil {
		return nil, toStatus(err, "failed to list notifications")
	}
	resp := &pb.ListNotificationsResponse{Notifications: notificationsToProto(list)}
	if store, err := h.session.NotificationStore(); err == nil {
		resp.HasMore = store.HasMore()
	}
	return resp, nil
}

func (h *Handler) GetNotificationStats(ctx context.Context, req *pb.GetNotificationStatsRequest) (*pb.GetNotificationStatsResponse, error) {
	stats, err := h.notes.GetStats()
	if err != nil {
		return nil, toStatus(err, "failed to get notification stats")
	}
	return &pb.GetNotificationStatsResponse{Stats: notificationStatsToProto(stats)}, nil
}

func (h *Handler) MarkNotification(ctx context.Context, req *pb.MarkNotificationRequest) (*pb.AckResponse, error) {
	if req.GetId() == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}
	if err := h.notes.MarkRead(ctx, req.GetId(), req.GetRead()); err != nil {
		return nil, toStatus(err, "failed to update notification")
	}
	return &pb.AckResponse{Success: true}, nil
}

func (h *Handler) DeleteNotifications(ctx context.Context, req *pb.DeleteNotificationsRequest) (*pb.AckResponse, error) {
	if len(req.GetIds()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "ids are required")
	}
	if err := h.notes.Delete(ctx, req.GetIds()); err != nil {
		return nil, toStatus(err, "failed to delete notifications")
	}
	return &pb.AckResponse{Success: true}, nil
}

var defaultStreamTypes = []domain.EventType{
	domain.EventTypeRoomsLoaded,
	domain.EventTypeRoomUpdated,
	domain.EventTypeMessageReceived,
	domain.EventTypeMessageSent,
	domain.EventTypeNotificationReceived,
	domain.EventTypeNotificationUpdated,
	domain.EventTypeNotificationRemoved,
	domain.EventTypeNotificationStats,
	domain.EventTypeConnectionStatus,
	domain.EventTypeSessionCleared,
}

func (h *Handler) StreamEvents(req *pb.StreamEventsRequest, stream grpc.ServerStreamingServer[pb.Event]) error {
	eventTypes := make([]domain.EventType, 0, len(req.GetEventTypes()))
	for _, t := range req.GetEventTypes() {
		eventTypes = append(eventTypes, domain.EventType(t))
	}
	if len(eventTypes) == 0 {
		eventTypes = defaultStreamTypes
	}

	eventCh := h.session.GetEventBus().Subscribe(eventTypes)
	defer h.session.GetEventBus().Unsubscribe(eventCh)

	for {
		select {
		case <-stream.Context().Done():
			return nil
		case event, ok := <-eventCh:
			if !ok {
				return nil
			}
			wire := eventToProto(event)
			if wire == nil {
				continue
			}
			if err := stream.Send(wire); err != nil {
				if err == io.EOF {
					return nil
				}
				return err
			}
		}
	}
}

// toStatus maps domain and REST failures onto gRPC codes.
func toStatus(err error, msg string) error {
	code := codes.Internal
	var (
		apiErr    *api.Error
		validErrs validator.ValidationErrors
	)
	switch {
	case errors.Is(err, domain.ErrNotAuthenticated):
		code = codes.Unauthenticated
	case errors.Is(err, domain.ErrSessionTornDown), errors.Is(err, domain.ErrStoreClosed):
		code = codes.Unavailable
	case errors.Is(err, domain.ErrNoActiveRoom):
		code = codes.FailedPrecondition
	case errors.Is(err, domain.ErrWrongRole):
		code = codes.PermissionDenied
	case errors.Is(err, domain.ErrRoomNotFound), errors.Is(err, domain.ErrNotificationNotFound), api.IsNotFound(err):
		code = codes.NotFound
	case errors.As(err, &validErrs):
		code = codes.InvalidArgument
	case errors.As(err, &apiErr):
		switch {
		case apiErr.StatusCode == http.StatusUnauthorized:
			code = codes.Unauthenticated
		case apiErr.StatusCode == http.StatusForbidden:
			code = codes.PermissionDenied
		case apiErr.StatusCode >= 400 && apiErr.StatusCode < 500:
			code = codes.InvalidArgument
		default:
			code = codes.Unavailable
		}
	}
	return status.Errorf(code, "%s: %v", msg, err)
}
