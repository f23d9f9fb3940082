package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/clippy-oss/homie/storefront-realtime/internal/domain"
)

type gormRoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &gormRoomRepository{db: db}
}

func (r *gormRoomRepository) Upsert(ctx context.Context, room *domain.ChatRoom) error {
	model := RoomDomainToModel(room)
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_id", "name", "status", "last_message_text", "last_message_time", "unread_count", "updated_at"}),
	}).Create(model).Error
}

func (r *gormRoomRepository) GetByID(ctx context.Context, id string) (*domain.ChatRoom, error) {
	var model RoomModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return RoomModelToDomain(&model), nil
}

func (r *gormRoomRepository) GetAll(ctx context.Context, limit, offset int) ([]*domain.ChatRoom, error) {
	var models []RoomModel
	query := r.db.WithContext(ctx).Order("last_message_time DESC")

	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	rooms := make([]*domain.ChatRoom, len(models))
	for i := range models {
		rooms[i] = RoomModelToDomain(&models[i])
	}
	return rooms, nil
}

// UpdateLastMessage moves the room preview forward. Older messages never replace a newer preview.
func (r *gormRoomRepository) UpdateLastMessage(ctx context.Context, id, text string, timestamp time.Time) error {
	return r.db.WithContext(ctx).
		Model(&RoomModel{}).
		Where("id = ? AND (last_message_time IS NULL OR last_message_time <= ?)", id, timestamp).
		Updates(map[string]interface{}{
			"last_message_text": text,
			"last_message_time": timestamp,
		}).Error
}

func (r *gormRoomRepository) UpdateUnreadCount(ctx context.Context, id string, count int) error {
	return r.db.WithContext(ctx).
		Model(&RoomModel{}).
		Where("id = ?", id).
		Update("unread_count", count).Error
}

func (r *gormRoomRepository) Purge(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&RoomModel{}).Error
}
