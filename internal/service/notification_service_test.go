package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/clippy-oss/homie/storefront-realtime/internal/domain"
	"github.com/clippy-oss/homie/storefront-realtime/internal/service"
	"github.com/clippy-oss/homie/storefront-realtime/internal/service/servicetest"
)

func TestNotificationServiceDeleteRoutesBySize(t *testing.T) {
	h := servicetest.NewHarness(t, servicetest.Customer, time.Hour)
	h.Start(t, servicetest.Customer)
	svc := service.NewNotificationService(h.Session, nil)
	ctx := context.Background()

	if err := svc.Delete(ctx, nil); err != nil {
		t.Fatalf("Delete(nil): %v", err)
	}
	if err := svc.Delete(ctx, []string{"n1"}); err != nil {
		t.Fatalf("Delete single: %v", err)
	}
	if len(h.NotifAPI.Deleted()) != 1 || len(h.NotifAPI.Bulk()) != 0 {
		t.Fatalf("single delete should use the item endpoint: deleted=%v bulk=%v", h.NotifAPI.Deleted(), h.NotifAPI.Bulk())
	}
	stats, _ := svc.GetStats()
	if stats.TotalCount != 1 || stats.UnreadCount != 0 || stats.HighPriorityUnread != 0 {
		t.Fatalf("stats after deleting the unread high item: %+v", stats)
	}

	if err := svc.Delete(ctx, []string{"n2", "n3"}); err != nil {
		t.Fatalf("Delete multiple: %v", err)
	}
	bulk := h.NotifAPI.Bulk()
	if len(bulk) != 1 || bulk[0].IsDeleted == nil || !*bulk[0].IsDeleted {
		t.Fatalf("bulk delete patch = %+v", bulk)
	}
}

func TestNotificationServiceUnreadFilterAndToggle(t *testing.T) {
	h := servicetest.NewHarness(t, servicetest.Customer, time.Hour)
	h.Start(t, servicetest.Customer)
	svc := service.NewNotificationService(h.Session, nil)
	ctx := context.Background()

	unread, err := svc.GetNotifications(true)
	if err != nil || len(unread) != 1 || unread[0].ID != "n1" {
		t.Fatalf("unread = %+v, %v", unread, err)
	}

	if err := svc.MarkRead(ctx, "n1", true); err != nil {
		t.Fatalf("MarkRead: %v", err)
	}
	if unread, _ := svc.GetNotifications(true); len(unread) != 0 {
		t.Fatalf("still unread: %+v", unread)
	}
	if err := svc.MarkRead(ctx, "n2", false); err != nil {
		t.Fatalf("MarkRead(false): %v", err)
	}
	stats, _ := svc.GetStats()
	if stats.UnreadCount != 1 || stats.HighPriorityUnread != 0 {
		t.Fatalf("stats = %+v", stats)
	}

	prefs, err := svc.GetPreferences(ctx)
	if err != nil || !prefs.PushNotifications {
		t.Fatalf("GetPreferences = %+v, %v", prefs, err)
	}
}

func TestNotificationServiceWithoutSession(t *testing.T) {
	h := servicetest.NewHarness(t, servicetest.Customer, time.Hour)
	svc := service.NewNotificationService(h.Session, nil)

	if _, err := svc.GetNotifications(false); !errors.Is(err, domain.ErrSessionTornDown) {
		t.Fatalf("GetNotifications: %v", err)
	}
	if err := svc.MarkAllRead(context.Background()); !errors.Is(err, domain.ErrSessionTornDown) {
		t.Fatalf("MarkAllRead: %v", err)
	}
}
