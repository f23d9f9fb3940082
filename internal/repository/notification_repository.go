package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/clippy-oss/homie/storefront-realtime/internal/domain"
)

type gormNotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &gormNotificationRepository{db: db}
}

func (r *gormNotificationRepository) Upsert(ctx context.Context, n *domain.Notification) error {
	model := NotificationDomainToModel(n)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_id", "title", "message", "type", "priority", "action_url", "is_read", "updated_at"}),
	}).Create(model).Error
}

func (r *gormNotificationRepository) GetByID(ctx context.Context, id string) (*domain.Notification, error) {
	var model NotificationModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return NotificationModelToDomain(&model), nil
}

// GetRecent returns non-deleted notifications, newest first.
func (r *gormNotificationRepository) GetRecent(ctx context.Context, limit int) ([]*domain.Notification, error) {
	var models []NotificationModel
	query := r.db.WithContext(ctx).
		Where("is_deleted = ?", false).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	out := make([]*domain.Notification, len(models))
	for i := range models {
		out[i] = NotificationModelToDomain(&models[i])
	}
	return out, nil
}

func (r *gormNotificationRepository) MarkDeleted(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&NotificationModel{}).
		Where("id IN ?", ids).
		Update("is_deleted", true).Error
}

func (r *gormNotificationRepository) Purge(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&NotificationModel{}).Error
}
