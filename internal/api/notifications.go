package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/clippy-oss/homie/storefront-realtime/internal/domain"
)

type NotificationPatch struct {
	IsRead    *bool `json:"is_read,omitempty"`
	IsDeleted *bool `json:"is_deleted,omitempty"`
}

type BulkNotificationPatch struct {
	NotificationIDs []string `json:"notification_ids"`
	IsRead          *bool    `json:"is_read,omitempty"`
	IsDeleted       *bool    `json:"is_deleted,omitempty"`
}

// FilterQuery encodes only the fields that are set.
func FilterQuery(f domain.NotificationFilter) url.Values {
	q := url.Values{}
	if f.Type != "" {
		q.Set("type", string(f.Type))
	}
	if f.Priority != "" {
		q.Set("priority", string(f.Priority))
	}
	if f.IsRead != nil {
		q.Set("is_read", strconv.FormatBool(*f.IsRead))
	}
	if f.IsDeleted != nil {
		q.Set("is_deleted", strconv.FormatBool(*f.IsDeleted))
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Offset > 0 {
		q.Set("offset", strconv.Itoa(f.Offset))
	}
	return q
}

func notificationPath(id string) string {
	return "/notifications/" + url.PathEscape(id)
}

func (c *Client) ListNotifications(ctx context.Context, filter domain.NotificationFilter) (*domain.NotificationPage, error) {
	var page domain.NotificationPage
	if err := c.do(ctx, http.MethodGet, "/notifications", FilterQuery(filter), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) NotificationStats(ctx context.Context) (*domain.NotificationStats, error) {
	var stats domain.NotificationStats
	if err := c.do(ctx, http.MethodGet, "/notifications/stats", nil, nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) UpdateNotification(ctx context.Context, id string, patch NotificationPatch) error {
	return c.do(ctx, http.MethodPut, notificationPath(id), nil, patch, nil)
}

func (c *Client) DeleteNotification(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, notificationPath(id), nil, nil, nil)
}

func (c *Client) BulkUpdateNotifications(ctx context.Context, patch BulkNotificationPatch) error {
	return c.do(ctx, http.MethodPut, "/notifications/bulk", nil, patch, nil)
}

func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return c.do(ctx, http.MethodPut, "/notifications/mark-all-read", nil, nil, nil)
}

func (c *Client) GetPreferences(ctx context.Context) (*domain.NotificationPreferences, error) {
	var prefs domain.NotificationPreferences
	if err := c.do(ctx, http.MethodGet, "/notifications/preferences", nil, nil, &prefs); err != nil {
		return nil, err
	}
	return &prefs, nil
}

func (c *Client) UpdatePreferences(ctx context.Context, prefs domain.NotificationPreferences) (*domain.NotificationPreferences, error) {
	var saved domain.NotificationPreferences
	if err := c.do(ctx, http.MethodPut, "/notifications/preferences", nil, prefs, &saved); err != nil {
		return nil, err
	}
	return &saved, nil
}
