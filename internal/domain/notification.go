package domain

import "time"

type NotificationType string

const (
	NotificationTypeOrder    NotificationType = "order"
	NotificationTypeFavorite NotificationType = "favorite"
	NotificationTypeCart     NotificationType = "cart"
	NotificationTypePromo    NotificationType = "promo"
	NotificationTypeSystem   NotificationType = "system"
	NotificationTypeGeneral  NotificationType = "general"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityNormal Priority = "normal"
	PriorityLow    Priority = "low"
)

type Notification struct {
	ID        string           `json:"id"`
	UserID    string           `json:"user_id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	Priority  Priority         `json:"priority"`
	IsRead    bool             `json:"is_read"`
	IsDeleted bool             `json:"is_deleted"`
	ActionURL string           `json:"action_url,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

func (n *Notification) Clone() *Notification {
	if n == nil {
		return nil
	}
	c := *n
	return &c
}

func (n *Notification) IsHighPriority() bool {
	return n.Priority == PriorityHigh
}

// NotificationUpdate is a pushed change to a known notification. A nil flag was absent from
// the frame and keeps its local value.
type NotificationUpdate struct {
	Notification Notification
	IsRead       *bool
	IsDeleted    *bool
}

type NotificationStats struct {
	TotalCount         int `json:"total_count"`
	UnreadCount        int `json:"unread_count"`
	HighPriorityUnread int `json:"high_priority_unread"`
}

// ComputeStats folds a notification set into its aggregate. Deleted records are skipped.
func ComputeStats(items []*Notification) NotificationStats {
	var s NotificationStats
	for _, n := range items {
		if n == nil || n.IsDeleted {
			continue
		}
		s.TotalCount++
		if !n.IsRead {
			s.UnreadCount++
			if n.IsHighPriority() {
				s.HighPriorityUnread++
			}
		}
	}
	return s
}

// NotificationFilter narrows GET /notifications. Nil and zero fields are not sent.
type NotificationFilter struct {
	Type      NotificationType
	Priority  Priority
	IsRead    *bool
	IsDeleted *bool
	Limit     int
	Offset    int
}

type NotificationPage struct {
	Notifications []*Notification `json:"notifications"`
	TotalCount    int             `json:"total_count"`
	UnreadCount   int             `json:"unread_count"`
	HasMore       bool            `json:"has_more"`
}

type NotificationPreferences struct {
	EmailNotifications bool `json:"email_notifications"`
	PushNotifications  bool `json:"push_notifications"`
	OrderUpdates       bool `json:"order_updates"`
	Promotions         bool `json:"promotions"`
	Favorites          bool `json:"favorites"`
	ChatMessages       bool `json:"chat_messages"`
	SystemAlerts       bool `json:"system_alerts"`
}

func Bool(v bool) *bool { return &v }
