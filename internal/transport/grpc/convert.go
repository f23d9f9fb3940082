package grpc

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/clippy-oss/homie/storefront-realtime/internal/domain"
	pb "github.com/clippy-oss/homie/storefront-realtime/pkg/pb"
)

func toTimestamp(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func roomToProto(r *domain.ChatRoom) *pb.Room {
	if r == nil {
		return nil
	}
	room := &pb.Room{
		Id:          r.ID,
		UserId:      r.UserID,
		Name:        r.Name,
		Status:      string(r.Status),
		LastMessage: r.LastMessage,
		UnreadCount: int32(r.UnreadCount),
	}
	if r.LastMessageTime != nil {
		room.LastMessageTime = timestamppb.New(*r.LastMessageTime)
	}
	return room
}

func roomsToProto(rooms []*domain.ChatRoom) []*pb.Room {
	out := make([]*pb.Room, 0, len(rooms))
	for _, r := range rooms {
		if r != nil {
			out = append(out, roomToProto(r))
		}
	}
	return out
}

func messageToProto(m *domain.ChatMessage, pending bool) *pb.ChatMessage {
	if m == nil {
		return nil
	}
	return &pb.ChatMessage{
		Id:          m.ID,
		RoomId:      m.RoomID,
		SenderId:    m.SenderID,
		SenderName:  m.SenderName,
		SenderRole:  string(m.SenderRole),
		Message:     m.Message,
		MessageType: string(m.MessageType),
		Timestamp:   toTimestamp(m.Timestamp),
		IsRead:      m.IsRead,
		Pending:     pending || domain.IsSynthesizedID(m.ID),
	}
}

func messagesToProto(msgs []*domain.ChatMessage) []*pb.ChatMessage {
	out := make([]*pb.ChatMessage, 0, len(msgs))
	for _, m := range msgs {
		if m != nil {
			out = append(out, messageToProto(m, false))
		}
	}
	return out
}

func notificationToProto(n *domain.Notification) *pb.Notification {
	if n == nil {
		return nil
	}
	return &pb.Notification{
		Id:        n.ID,
		UserId:    n.UserID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      string(n.Type),
		Priority:  string(n.Priority),
		ActionUrl: n.ActionURL,
		IsRead:    n.IsRead,
		CreatedAt: toTimestamp(n.CreatedAt),
		UpdatedAt: toTimestamp(n.UpdatedAt),
	}
}

func notificationsToProto(list []*domain.Notification) []*pb.Notification {
	out := make([]*pb.Notification, 0, len(list))
	for _, n := range list {
		if n != nil {
			out = append(out, notificationToProto(n))
		}
	}
	return out
}

func notificationStatsToProto(s domain.NotificationStats) *pb.NotificationStats {
	return &pb.NotificationStats{
		TotalCount:         int32(s.TotalCount),
		UnreadCount:        int32(s.UnreadCount),
		HighPriorityUnread: int32(s.HighPriorityUnread),
	}
}

func chatStatsToProto(s domain.ChatStats) *pb.ChatStats {
	return &pb.ChatStats{
		TotalRooms:   int32(s.TotalRooms),
		ActiveRooms:  int32(s.ActiveRooms),
		WaitingRooms: int32(s.WaitingRooms),
		TotalUnread:  int32(s.TotalUnread),
	}
}

// eventToProto returns nil for events the dashboard does not stream.
func eventToProto(event domain.Event) *pb.Event {
	out := &pb.Event{Type: string(event.Type()), Timestamp: toTimestamp(event.Timestamp())}
	switch e := event.(type) {
	case domain.RoomsLoadedEvent:
		out.Rooms = roomsToProto(e.Rooms)
	case domain.RoomUpdatedEvent:
		out.Room = roomToProto(e.Room)
	case domain.RoomSelectedEvent:
		out.Room = roomToProto(e.Room)
	case domain.RoomReadEvent:
		out.RoomId = e.RoomID
		out.TotalUnread = int32(e.TotalUnread)
	case domain.MessagesLoadedEvent:
		out.RoomId = e.RoomID
		out.Messages = messagesToProto(e.Messages)
	case domain.MessageReceivedEvent:
		out.Message = messageToProto(e.Message, false)
		out.TotalUnread = int32(e.TotalUnread)
	case domain.MessageSentEvent:
		out.Message = messageToProto(e.Message, e.Pending)
		out.Pending = e.Pending
	case domain.ChatStatsEvent:
		out.ChatStats = chatStatsToProto(e.Stats)
	case domain.NotificationsLoadedEvent:
		out.Notifications = notificationsToProto(e.Notifications)
	case domain.NotificationReceivedEvent:
		out.Notification = notificationToProto(e.Notification)
	case domain.NotificationUpdatedEvent:
		out.Notification = notificationToProto(e.Notification)
	case domain.NotificationRemovedEvent:
		out.Ids = e.IDs
	case domain.NotificationStatsEvent:
		out.NotificationStats = notificationStatsToProto(e.Stats)
	case domain.ConnectionStatusEvent:
		out.Connection = &pb.ConnectionInfo{Channel: e.Channel, Connected: e.Connected, Reason: e.Reason}
	case domain.SessionClearedEvent:
	default:
		return nil
	}
	return out
}
