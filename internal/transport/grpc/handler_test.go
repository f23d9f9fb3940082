package grpc

import (
	"context"
	"errors"
	"fmt"
	"net"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/clippy-oss/homie/storefront-realtime/internal/api"
	"github.com/clippy-oss/homie/storefront-realtime/internal/domain"
	"github.com/clippy-oss/homie/storefront-realtime/internal/service"
	"github.com/clippy-oss/homie/storefront-realtime/internal/service/servicetest"
	pb "github.com/clippy-oss/homie/storefront-realtime/pkg/pb"
)

func newDashboard(t *testing.T, viewer domain.AuthContext) (pb.DashboardServiceClient, *servicetest.Harness) {
	t.Helper()
	h := servicetest.NewHarness(t, viewer, time.Hour)
	h.Start(t, viewer)

	chat := service.NewChatService(h.Session, nil, nil)
	notes := service.NewNotificationService(h.Session, nil)
	srv := NewServer(h.Session, chat, notes, ServerConfig{}, zerolog.Nop())

	lis := bufconn.Listen(1 << 20)
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return pb.NewDashboardServiceClient(conn), h
}

func TestDashboardStatusAndRooms(t *testing.T) {
	client, _ := newDashboard(t, servicetest.Admin)
	ctx := context.Background()

	st, err := client.GetStatus(ctx, &pb.GetStatusRequest{})
	if err != nil {
		t.Fatalf("GetStatus: %v", err)
	}
	if !st.GetLoggedIn() || st.GetRole() != string(domain.RoleAdmin) || st.GetState() != "connected" {
		t.Fatalf("unexpected status %v", st)
	}
	channels := make(map[string]string)
	for _, ch := range st.GetChannels() {
		channels[ch.GetName()] = ch.GetState()
	}
	if channels[service.ChannelChat] != "connected" {
		t.Fatalf("chat channel = %q", channels[service.ChannelChat])
	}

	rooms, err := client.ListRooms(ctx, &pb.ListRoomsRequest{})
	if err != nil || len(rooms.GetRooms()) != 2 {
		t.Fatalf("ListRooms = %v, %v", rooms, err)
	}

	if _, err := client.SelectRoom(ctx, &pb.SelectRoomRequest{RoomId: "r2"}); err != nil {
		t.Fatalf("SelectRoom: %v", err)
	}
	unread, err := client.GetUnreadCount(ctx, &pb.GetUnreadCountRequest{})
	if err != nil || unread.GetCount() != 0 {
		t.Fatalf("selecting r2 should mark it read: %v %v", unread, err)
	}

	sent, err := client.SendMessage(ctx, &pb.SendMessageRequest{Text: "on its way"})
	if err != nil {
		t.Fatalf("SendMessage: %v", err)
	}
	if sent.GetMessage().GetId() != "srv-1" || sent.GetMessage().GetRoomId() != "r2" || sent.GetMessage().GetTimestamp() == nil {
		t.Fatalf("sent = %v", sent.GetMessage())
	}
	msgs, err := client.GetMessages(ctx, &pb.GetMessagesRequest{})
	if err != nil || len(msgs.GetMessages()) != 1 {
		t.Fatalf("GetMessages = %v, %v", msgs, err)
	}
}

func TestDashboardErrorCodes(t *testing.T) {
	client, _ := newDashboard(t, servicetest.Admin)
	ctx := context.Background()

	_, err := client.SelectRoom(ctx, &pb.SelectRoomRequest{RoomId: "nope"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("unknown room: %v", err)
	}
	_, err = client.SendMessage(ctx, &pb.SendMessageRequest{Text: "hello"})
	if status.Code(err) != codes.FailedPrecondition {
		t.Fatalf("send without a room: %v", err)
	}
	_, err = client.SendMessage(ctx, &pb.SendMessageRequest{RoomId: "r1", Text: ""})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("empty message: %v", err)
	}
	_, err = client.MarkNotification(ctx, &pb.MarkNotificationRequest{})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("missing id: %v", err)
	}
}

func TestDashboardNotifications(t *testing.T) {
	client, h := newDashboard(t, servicetest.Customer)
	ctx := context.Background()

	list, err := client.ListNotifications(ctx, &pb.ListNotificationsRequest{UnreadOnly: true})
	if err != nil || len(list.GetNotifications()) != 1 || list.GetNotifications()[0].GetId() != "n1" {
		t.Fatalf("ListNotifications = %v, %v", list, err)
	}

	if _, err := client.MarkNotification(ctx, &pb.MarkNotificationRequest{Id: "n1", Read: true}); err != nil {
		t.Fatalf("MarkNotification: %v", err)
	}
	stats, err := client.GetNotificationStats(ctx, &pb.GetNotificationStatsRequest{})
	if err != nil || stats.GetStats().GetUnreadCount() != 0 || stats.GetStats().GetHighPriorityUnread() != 0 {
		t.Fatalf("stats = %v, %v", stats, err)
	}

	if _, err := client.DeleteNotifications(ctx, &pb.DeleteNotificationsRequest{Ids: []string{"n2"}}); err != nil {
		t.Fatalf("DeleteNotifications: %v", err)
	}
	if got := h.NotifAPI.Deleted(); len(got) != 1 || got[0] != "n2" {
		t.Fatalf("deleted = %v", got)
	}
}

func TestDashboardStreamEvents(t *testing.T) {
	client, h := newDashboard(t, servicetest.Admin)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	stream, err := client.StreamEvents(ctx, &pb.StreamEventsRequest{EventTypes: []string{string(domain.EventTypeConnectionStatus)}})
	if err != nil {
		t.Fatalf("StreamEvents: %v", err)
	}

	// the server subscribes asynchronously, so keep publishing until the stream delivers
	done := make(chan struct{})
	defer close(done)
	go func() {
		ticker := time.NewTicker(10 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				h.Bus.Publish(domain.ConnectionStatusEvent{Channel: service.ChannelChat, Connected: false, Reason: "reconnecting", EventTime: time.Now()})
			}
		}
	}()

	evt, err := stream.Recv()
	if err != nil {
		t.Fatalf("Recv: %v", err)
	}
	if evt.GetType() != string(domain.EventTypeConnectionStatus) || evt.GetConnection().GetReason() != "reconnecting" {
		t.Fatalf("unexpected event %v", evt)
	}
}

func TestToStatus(t *testing.T) {
	cases := []struct {
		err  error
		want codes.Code
	}{
		{domain.ErrSessionTornDown, codes.Unavailable},
		{domain.ErrWrongRole, codes.PermissionDenied},
		{domain.ErrNotAuthenticated, codes.Unauthenticated},
		{&api.Error{StatusCode: 404}, codes.NotFound},
		{fmt.Errorf("delete n-404: %w", &api.Error{StatusCode: 404}), codes.NotFound},
		{&api.Error{StatusCode: 422}, codes.InvalidArgument},
		{&api.Error{StatusCode: 503}, codes.Unavailable},
		{validator.ValidationErrors{}, codes.InvalidArgument},
		{errors.New("boom"), codes.Internal},
	}
	for _, tc := range cases {
		if got := status.Code(toStatus(tc.err, "op")); got != tc.want {
			t.Errorf("toStatus(%v) = %s, want %s", tc.err, got, tc.want)
		}
	}
}

func TestEventToProto(t *testing.T) {
	ts := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	msg := &domain.ChatMessage{ID: domain.NewLocalID(), RoomID: "r1", SenderRole: domain.RoleCustomer, Message: "hi", Timestamp: ts}

	got := eventToProto(domain.MessageReceivedEvent{Message: msg, TotalUnread: 3, EventTime: ts})
	if got.GetTotalUnread() != 3 || got.GetMessage().GetRoomId() != "r1" || !got.GetMessage().GetPending() {
		t.Fatalf("message event = %v", got)
	}
	if !got.GetMessage().GetTimestamp().AsTime().Equal(ts) || !got.GetTimestamp().AsTime().Equal(ts) {
		t.Fatalf("timestamps not carried: %v", got)
	}

	stats := eventToProto(domain.NotificationStatsEvent{Stats: domain.NotificationStats{TotalCount: 4, UnreadCount: 2, HighPriorityUnread: 1}})
	if stats.GetNotificationStats().GetUnreadCount() != 2 || stats.GetTimestamp() != nil {
		t.Fatalf("stats event = %v", stats)
	}

	if eventToProto(domain.RoomSelectedEvent{Room: &domain.ChatRoom{ID: "r9"}}).GetRoom().GetId() != "r9" {
		t.Fatal("room selected event lost the room")
	}
}
