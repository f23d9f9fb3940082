package service

import (
	"context"

	"github.com/clippy-oss/homie/storefront-realtime/internal/domain"
	"github.com/clippy-oss/homie/storefront-realtime/internal/repository"
)

type NotificationService struct {
	session *SessionService
	repo    repository.NotificationRepository
}

func NewNotificationService(session *SessionService, repo repository.NotificationRepository) *NotificationService {
	return &NotificationService{session: session, repo: repo}
}

// GetNotifications returns the loaded feed, optionally only the unread part.
func (s *NotificationService) GetNotifications(unreadOnly bool) ([]*domain.Notification, error) {
	notes, err := s.session.NotificationStore()
	if err != nil {
		return nil, err
	}
	all := notes.Notifications()
	if !unreadOnly {
		return all, nil
	}
	unread := make([]*domain.Notification, 0, len(all))
	for _, n := range all {
		if !n.IsRead {
			unread = append(unread, n)
		}
	}
	return unread, nil
}

func (s *NotificationService) GetNotification(ctx context.Context, id string) (*domain.Notification, error) {
	notes, err := s.session.NotificationStore()
	if err != nil {
		return nil, err
	}
	n, err := notes.Notification(id)
	if err == nil || s.repo == nil {
		return n, err
	}
	// fall back to the archive for records that scrolled out of the loaded page
	archived, repoErr := s.repo.GetByID(ctx, id)
	if repoErr != nil || archived == nil {
		return nil, domain.ErrNotificationNotFound
	}
	return archived, nil
}

// Reload replaces the feed using filter and refreshes the stats.
func (s *NotificationService) Reload(ctx context.Context, filter domain.NotificationFilter) ([]*domain.Notification, error) {
	notes, err := s.session.NotificationStore()
	if err != nil {
		return nil, err
	}
	if err := notes.LoadNotifications(ctx, filter); err != nil {
		return nil, err
	}
	if err := notes.LoadStats(ctx); err != nil {
		return nil, err
	}
	return notes.Notifications(), nil
}

func (s *NotificationService) GetStats() (domain.NotificationStats, error) {
	notes, err := s.session.NotificationStore()
	if err != nil {
		return domain.NotificationStats{}, err
	}
	return notes.Stats(), nil
}

func (s *NotificationService) RefreshStats(ctx context.Context) (domain.NotificationStats, error) {
	notes, err := s.session.NotificationStore()
	if err != nil {
		return domain.NotificationStats{}, err
	}
	if err := notes.LoadStats(ctx); err != nil {
		return domain.NotificationStats{}, err
	}
	return notes.Stats(), nil
}

func (s *NotificationService) MarkRead(ctx context.Context, id string, read bool) error {
	notes, err := s.session.NotificationStore()
	if err != nil {
		return err
	}
	if read {
		return notes.MarkAsRead(ctx, id)
	}
	return notes.MarkAsUnread(ctx, id)
}

func (s *NotificationService) MarkManyRead(ctx context.Context, ids []string) error {
	notes, err := s.session.NotificationStore()
	if err != nil {
		return err
	}
	return notes.MarkMultipleAsRead(ctx, ids)
}

func (s *NotificationService) MarkAllRead(ctx context.Context) error {
	notes, err := s.session.NotificationStore()
	if err != nil {
		return err
	}
	return notes.MarkAllAsRead(ctx)
}

// Delete removes one notification with an optimistic stats patch, or several with a stats reload.
func (s *NotificationService) Delete(ctx context.Context, ids []string) error {
	notes, err := s.session.NotificationStore()
	if err != nil {
		return err
	}
	switch len(ids) {
	case 0:
		return nil
	case 1:
		return notes.DeleteNotification(ctx, ids[0])
	default:
		return notes.DeleteMultiple(ctx, ids)
	}
}

func (s *NotificationService) GetPreferences(ctx context.Context) (*domain.NotificationPreferences, error) {
	notes, err := s.session.NotificationStore()
	if err != nil {
		return nil, err
	}
	return notes.Preferences(ctx)
}

func (s *NotificationService) UpdatePreferences(ctx context.Context, prefs domain.NotificationPreferences) (*domain.NotificationPreferences, error) {
	notes, err := s.session.NotificationStore()
	if err != nil {
		return nil, err
	}
	return notes.UpdatePreferences(ctx, prefs)
}

// GetArchived returns archived notifications that were not deleted, newest first.
func (s *NotificationService) GetArchived(ctx context.Context, limit int) ([]*domain.Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.repo.GetRecent(ctx, limit)
}
