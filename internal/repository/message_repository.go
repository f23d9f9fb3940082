package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/clippy-oss/homie/storefront-realtime/internal/domain"
)

type gormMessageRepository struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &gormMessageRepository{db: db}
}

func (r *gormMessageRepository) Create(ctx context.Context, msg *domain.ChatMessage) error {
	model := MessageDomainToModel(msg)
	return r.db.WithContext(ctx).Create(model).Error
}

func (r *gormMessageRepository) CreateOrIgnore(ctx context.Context, msg *domain.ChatMessage) error {
	model := MessageDomainToModel(msg)
	// INSERT OR IGNORE: the same server message can arrive over REST and push
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(model).Error
}

func (r *gormMessageRepository) GetByID(ctx context.Context, id string) (*domain.ChatMessage, error) {
	var model MessageModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return MessageModelToDomain(&model), nil
}

func (r *gormMessageRepository) GetByRoomID(ctx context.Context, roomID string, limit, offset int) ([]*domain.ChatMessage, error) {
	var models []MessageModel
	err := r.db.WithContext(ctx).
		Scopes(inRoom(roomID)).
		Order("timestamp DESC").
		Limit(limit).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return messagesToDomain(models), nil
}

func (r *gormMessageRepository) GetByRoomIDSince(ctx context.Context, roomID string, since time.Time, limit int) ([]*domain.ChatMessage, error) {
	var models []MessageModel
	err := r.db.WithContext(ctx).
		Scopes(inRoom(roomID)).
		Where("timestamp > ?", since).
		Order("timestamp ASC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return messagesToDomain(models), nil
}

func (r *gormMessageRepository) MarkRoomRead(ctx context.Context, roomID string) error {
	return r.db.WithContext(ctx).
		Model(&MessageModel{}).
		Scopes(inRoom(roomID)).
		Where("is_read = ?", false).
		Update("is_read", true).Error
}

func (r *gormMessageRepository) Search(ctx context.Context, query string, limit int) ([]*domain.ChatMessage, error) {
	// Escape LIKE special characters so user input is matched literally
	escapedQuery := strings.ReplaceAll(query, "\\", "\\\\")
	escapedQuery = strings.ReplaceAll(escapedQuery, "%", "\\%")
	escapedQuery = strings.ReplaceAll(escapedQuery, "_", "\\_")
	likePattern := "%" + escapedQuery + "%"

	var models []MessageModel
	err := r.db.WithContext(ctx).
		Where("text LIKE ? ESCAPE '\\' OR sender_name LIKE ? ESCAPE '\\'", likePattern, likePattern).
		Order("timestamp DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}
	return messagesToDomain(models), nil
}

func (r *gormMessageRepository) Purge(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&MessageModel{}).Error
}

func inRoom(roomID string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("room_id = ?", roomID)
	}
}

func messagesToDomain(models []MessageModel) []*domain.ChatMessage {
	messages := make([]*domain.ChatMessage, len(models))
	for i := range models {
		messages[i] = MessageModelToDomain(&models[i])
	}
	return messages
}
