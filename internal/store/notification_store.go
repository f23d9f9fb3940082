package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/clippy-oss/homie/storefront-realtime/internal/api"
	"github.com/clippy-oss/homie/storefront-realtime/internal/domain"
	"github.com/clippy-oss/homie/storefront-realtime/internal/metrics"
)

type NotificationAPI interface {
	ListNotifications(ctx context.Context, filter domain.NotificationFilter) (*domain.NotificationPage, error)
	NotificationStats(ctx context.Context) (*domain.NotificationStats, error)
	UpdateNotification(ctx context.Context, id string, patch api.NotificationPatch) error
	DeleteNotification(ctx context.Context, id string) error
	BulkUpdateNotifications(ctx context.Context, patch api.BulkNotificationPatch) error
	MarkAllNotificationsRead(ctx context.Context) error
	GetPreferences(ctx context.Context) (*domain.NotificationPreferences, error)
	UpdatePreferences(ctx context.Context, prefs domain.NotificationPreferences) (*domain.NotificationPreferences, error)
}

// NotificationStore mirrors the notification feed (most recent first) and a cached copy of
// the server's stats aggregate. Single-item changes patch the cached stats by one, guarded
// on the prior local state; bulk changes reload the stats from the server.
type NotificationStore struct {
	api NotificationAPI
	bus domain.EventBus
	log zerolog.Logger
	now func() time.Time

	mu      sync.RWMutex
	closed  bool
	items   []*domain.Notification
	hasMore bool
	stats   domain.NotificationStats
	prefs   *domain.NotificationPreferences
}

func NewNotificationStore(notifAPI NotificationAPI, bus domain.EventBus, log zerolog.Logger) *NotificationStore {
	return &NotificationStore{
		api: notifAPI,
		bus: bus,
		log: log,
		now: time.Now,
	}
}

// LoadNotifications replaces the feed with the server snapshot. Deleted records are
// excluded unless the filter asks for them explicitly.
func (s *NotificationStore) LoadNotifications(ctx context.Context, filter domain.NotificationFilter) error {
	if s.isClosed() {
		return domain.ErrStoreClosed
	}
	if filter.IsDeleted == nil {
		filter.IsDeleted = domain.Bool(false)
	}
	page, err := s.api.ListNotifications(ctx, filter)
	if err != nil {
		return fmt.Errorf("load notifications: %w", err)
	}
	if page == nil {
		page = &domain.NotificationPage{}
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return domain.ErrStoreClosed
	}
	items := make([]*domain.Notification, 0, len(page.Notifications))
	for _, n := range page.Notifications {
		if n == nil || n.ID == "" {
			continue
		}
		if n.IsDeleted && !*filter.IsDeleted {
			continue
		}
		items = append(items, n.Clone())
	}
	s.items = items
	s.hasMore = page.HasMore
	snapshot := cloneNotifications(items)
	s.mu.Unlock()

	s.publish(domain.NotificationsLoadedEvent{Notifications: snapshot, EventTime: s.now()})
	return nil
}

// LoadStats replaces the cached aggregate with the server's.
func (s *NotificationStore) LoadStats(ctx context.Context) error {
	if s.isClosed() {
		return domain.ErrStoreClosed
	}
	stats, err := s.api.NotificationStats(ctx)
	if err != nil {
		return fmt.Errorf("load notification stats: %w", err)
	}
	if stats == nil {
		stats = &domain.NotificationStats{}
	}
	return s.ApplyStats(*stats)
}

func (s *NotificationStore) MarkAsRead(ctx context.Context, id string) error {
	return s.setRead(ctx, id, true)
}

func (s *NotificationStore) MarkAsUnread(ctx context.Context, id string) error {
	return s.setRead(ctx, id, false)
}

func (s *NotificationStore) setRead(ctx context.Context, id string, read bool) error {
	if s.isClosed() {
		return domain.ErrStoreClosed
	}
	if err := s.api.UpdateNotification(ctx, id, api.NotificationPatch{IsRead: domain.Bool(read)}); err != nil {
		return fmt.Errorf("update notification %s: %w", id, err)
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return domain.ErrStoreClosed
	}
	n := s.findLocked(id)
	if n == nil || n.IsRead == read {
		s.mu.Unlock()
		return nil
	}
	n.IsRead = read
	n.UpdatedAt = s.now()
	if read {
		s.stats.UnreadCount = decrement(s.stats.UnreadCount)
		if n.IsHighPriority() {
			s.stats.HighPriorityUnread = decrement(s.stats.HighPriorityUnread)
		}
	} else {
		s.stats.UnreadCount++
		if n.IsHighPriority() {
			s.stats.HighPriorityUnread++
		}
	}
	updated := n.Clone()
	stats := s.stats
	s.mu.Unlock()

	metrics.UnreadNotifications.Set(float64(stats.UnreadCount))
	s.publish(domain.NotificationUpdatedEvent{Notification: updated, EventTime: s.now()})
	s.publish(domain.NotificationStatsEvent{Stats: stats, EventTime: s.now()})
	return nil
}

// DeleteNotification soft-deletes id on the server and removes it from the feed.
func (s *NotificationStore) DeleteNotification(ctx context.Context, id string) error {
	if s.isClosed() {
		return domain.ErrStoreClosed
	}
	if err := s.api.DeleteNotification(ctx, id); err != nil {
		return fmt.Errorf("delete notification %s: %w", id, err)
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return domain.ErrStoreClosed
	}
	removed := s.removeLocked(id)
	if removed == nil {
		s.mu.Unlock()
		return nil
	}
	s.stats.TotalCount = decrement(s.stats.TotalCount)
	if !removed.IsRead {
		s.stats.UnreadCount = decrement(s.stats.UnreadCount)
		if removed.IsHighPriority() {
			s.stats.HighPriorityUnread = decrement(s.stats.HighPriorityUnread)
		}
	}
	stats := s.stats
	s.mu.Unlock()

	metrics.UnreadNotifications.Set(float64(stats.UnreadCount))
	s.publish(domain.NotificationRemovedEvent{IDs: []string{id}, EventTime: s.now()})
	s.publish(domain.NotificationStatsEvent{Stats: stats, EventTime: s.now()})
	return nil
}

func (s *NotificationStore) MarkMultipleAsRead(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if s.isClosed() {
		return domain.ErrStoreClosed
	}
	patch := api.BulkNotificationPatch{NotificationIDs: ids, IsRead: domain.Bool(true)}
	if err := s.api.BulkUpdateNotifications(ctx, patch); err != nil {
		return fmt.Errorf("bulk mark read: %w", err)
	}

	s.mu.Lock()
	var updated []*domain.Notification
	for _, id := range ids {
		if n := s.findLocked(id); n != nil && !n.IsRead {
			n.IsRead = true
			updated = append(updated, n.Clone())
		}
	}
	s.mu.Unlock()

	for _, n := range updated {
		s.publish(domain.NotificationUpdatedEvent{Notification: n, EventTime: s.now()})
	}
	return s.LoadStats(ctx)
}

func (s *NotificationStore) DeleteMultiple(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if s.isClosed() {
		return domain.ErrStoreClosed
	}
	patch := api.BulkNotificationPatch{NotificationIDs: ids, IsDeleted: domain.Bool(true)}
	if err := s.api.BulkUpdateNotifications(ctx, patch); err != nil {
		return fmt.Errorf("bulk delete: %w", err)
	}

	s.mu.Lock()
	var removed []string
	for _, id := range ids {
		if s.removeLocked(id) != nil {
			removed = append(removed, id)
		}
	}
	s.mu.Unlock()

	if len(removed) > 0 {
		s.publish(domain.NotificationRemovedEvent{IDs: removed, EventTime: s.now()})
	}
	return s.LoadStats(ctx)
}

func (s *NotificationStore) MarkAllAsRead(ctx context.Context) error {
	if s.isClosed() {
		return domain.ErrStoreClosed
	}
	if err := s.api.MarkAllNotificationsRead(ctx); err != nil {
		return fmt.Errorf("mark all read: %w", err)
	}

	s.mu.Lock()
	for _, n := range s.items {
		n.IsRead = true
	}
	snapshot := cloneNotifications(s.items)
	s.mu.Unlock()

	s.publish(domain.NotificationsLoadedEvent{Notifications: snapshot, EventTime: s.now()})
	return s.LoadStats(ctx)
}

// ApplyNew merges a pushed notification at the head of the feed. A known id is replaced in place.
// Stats are left to the server's stats_updated push.
func (s *NotificationStore) ApplyNew(n *domain.Notification) error {
	if n == nil || n.ID == "" || n.IsDeleted {
		return nil
	}
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return domain.ErrStoreClosed
	}
	c := n.Clone()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = s.now()
	}
	if existing := s.indexLocked(c.ID); existing >= 0 {
		s.items[existing] = c
	} else {
		s.items = append([]*domain.Notification{c}, s.items...)
	}
	s.mu.Unlock()

	s.publish(domain.NotificationReceivedEvent{Notification: c.Clone(), EventTime: s.now()})
	return nil
}

// ApplyUpdated merges a pushed change to a known notification. A deleted record leaves the feed.
// The cached stats follow the record's read and deleted state.
func (s *NotificationStore) ApplyUpdated(u domain.NotificationUpdate) error {
	if u.Notification.ID == "" {
		return nil
	}
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return domain.ErrStoreClosed
	}
	idx := s.indexLocked(u.Notification.ID)
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}
	local := s.items[idx]

	if u.IsDeleted != nil && *u.IsDeleted {
		s.removeLocked(local.ID)
		s.stats = patchStats(s.stats, local, nil)
		stats := s.stats
		s.mu.Unlock()

		metrics.UnreadNotifications.Set(float64(stats.UnreadCount))
		s.publish(domain.NotificationRemovedEvent{IDs: []string{local.ID}, EventTime: s.now()})
		s.publish(domain.NotificationStatsEvent{Stats: stats, EventTime: s.now()})
		return nil
	}

	merged := mergeNotification(local, &u.Notification)
	merged.IsRead = local.IsRead
	if u.IsRead != nil {
		merged.IsRead = *u.IsRead
	}
	merged.IsDeleted = false
	s.items[idx] = merged

	before := s.stats
	s.stats = patchStats(s.stats, local, merged)
	stats := s.stats
	s.mu.Unlock()

	s.publish(domain.NotificationUpdatedEvent{Notification: merged.Clone(), EventTime: s.now()})
	if stats != before {
		metrics.UnreadNotifications.Set(float64(stats.UnreadCount))
		s.publish(domain.NotificationStatsEvent{Stats: stats, EventTime: s.now()})
	}
	return nil
}

func (s *NotificationStore) ApplyStats(stats domain.NotificationStats) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return domain.ErrStoreClosed
	}
	s.stats = clampStats(stats)
	stats = s.stats
	s.mu.Unlock()

	metrics.UnreadNotifications.Set(float64(stats.UnreadCount))
	s.publish(domain.NotificationStatsEvent{Stats: stats, EventTime: s.now()})
	return nil
}

// Recompute folds the loaded feed into the cached stats. Only accurate when the whole feed is loaded.
func (s *NotificationStore) Recompute() (domain.NotificationStats, error) {
	s.mu.RLock()
	if s.closed {
		s.mu.RUnlock()
		return domain.NotificationStats{}, domain.ErrStoreClosed
	}
	stats := domain.ComputeStats(s.items)
	s.mu.RUnlock()

	return stats, s.ApplyStats(stats)
}

// Preferences returns the cached preferences, fetching them on first use.
func (s *NotificationStore) Preferences(ctx context.Context) (*domain.NotificationPreferences, error) {
	s.mu.RLock()
	closed, cached := s.closed, s.prefs
	s.mu.RUnlock()
	if closed {
		return nil, domain.ErrStoreClosed
	}
	if cached != nil {
		p := *cached
		return &p, nil
	}

	prefs, err := s.api.GetPreferences(ctx)
	if err != nil {
		return nil, fmt.Errorf("load preferences: %w", err)
	}
	return s.cachePreferences(prefs)
}

func (s *NotificationStore) UpdatePreferences(ctx context.Context, prefs domain.NotificationPreferences) (*domain.NotificationPreferences, error) {
	if s.isClosed() {
		return nil, domain.ErrStoreClosed
	}
	saved, err := s.api.UpdatePreferences(ctx, prefs)
	if err != nil {
		return nil, fmt.Errorf("update preferences: %w", err)
	}
	if saved == nil {
		saved = &prefs
	}
	return s.cachePreferences(saved)
}

func (s *NotificationStore) cachePreferences(prefs *domain.NotificationPreferences) (*domain.NotificationPreferences, error) {
	if prefs == nil {
		prefs = &domain.NotificationPreferences{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, domain.ErrStoreClosed
	}
	p := *prefs
	s.prefs = &p
	out := p
	return &out, nil
}

// Notifications returns the feed, most recent first.
func (s *NotificationStore) Notifications() []*domain.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneNotifications(s.items)
}

func (s *NotificationStore) Notification(id string) (*domain.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if n := s.findLocked(id); n != nil {
		return n.Clone(), nil
	}
	return nil, domain.ErrNotificationNotFound
}

func (s *NotificationStore) HasMore() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hasMore
}

func (s *NotificationStore) Stats() domain.NotificationStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

func (s *NotificationStore) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.items = nil
	s.hasMore = false
	s.stats = domain.NotificationStats{}
	s.prefs = nil
	metrics.UnreadNotifications.Set(0)
}

func (s *NotificationStore) isClosed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.closed
}

func (s *NotificationStore) indexLocked(id string) int {
	for i, n := range s.items {
		if n.ID == id {
			return i
		}
	}
	return -1
}

func (s *NotificationStore) findLocked(id string) *domain.Notification {
	if i := s.indexLocked(id); i >= 0 {
		return s.items[i]
	}
	return nil
}

func (s *NotificationStore) removeLocked(id string) *domain.Notification {
	i := s.indexLocked(id)
	if i < 0 {
		return nil
	}
	n := s.items[i]
	s.items = append(s.items[:i], s.items[i+1:]...)
	return n
}

func (s *NotificationStore) publish(evt domain.Event) {
	if s.bus != nil {
		s.bus.Publish(evt)
	}
}

// mergeNotification overlays the text fields of a pushed update on the local record. Empty
// fields keep their local values. Flags are resolved by the caller.
func mergeNotification(local, update *domain.Notification) *domain.Notification {
	merged := update.Clone()
	if merged.Title == "" {
		merged.Title = local.Title
	}
	if merged.Message == "" {
		merged.Message = local.Message
	}
	if merged.Type == "" {
		merged.Type = local.Type
	}
	if merged.Priority == "" {
		merged.Priority = local.Priority
	}
	if merged.ActionURL == "" {
		merged.ActionURL = local.ActionURL
	}
	if merged.UserID == "" {
		merged.UserID = local.UserID
	}
	if merged.CreatedAt.IsZero() {
		merged.CreatedAt = local.CreatedAt
	}
	return merged
}

// patchStats moves stats from before's contribution to after's. A nil record contributes nothing.
func patchStats(stats domain.NotificationStats, before, after *domain.Notification) domain.NotificationStats {
	sub, add := domain.ComputeStats([]*domain.Notification{before}), domain.ComputeStats([]*domain.Notification{after})
	stats.TotalCount += add.TotalCount - sub.TotalCount
	stats.UnreadCount += add.UnreadCount - sub.UnreadCount
	stats.HighPriorityUnread += add.HighPriorityUnread - sub.HighPriorityUnread
	return clampStats(stats)
}

func decrement(v int) int {
	if v > 0 {
		return v - 1
	}
	return 0
}

func clampStats(s domain.NotificationStats) domain.NotificationStats {
	if s.TotalCount < 0 {
		s.TotalCount = 0
	}
	if s.UnreadCount < 0 {
		s.UnreadCount = 0
	}
	if s.HighPriorityUnread < 0 {
		s.HighPriorityUnread = 0
	}
	return s
}

func cloneNotifications(in []*domain.Notification) []*domain.Notification {
	out := make([]*domain.Notification, 0, len(in))
	for _, n := range in {
		out = append(out, n.Clone())
	}
	return out
}
