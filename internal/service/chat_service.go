package service

import (
	"context"
	"time"

	"github.com/clippy-oss/homie/storefront-realtime/internal/domain"
	"github.com/clippy-oss/homie/storefront-realtime/internal/repository"
)

const defaultSearchLimit = 20

// ChatService is the chat surface shared by the presentation adapters. Live state comes
// from the session's RoomStore; history and search come from the local archive.
type ChatService struct {
	session  *SessionService
	msgRepo  repository.MessageRepository
	roomRepo repository.RoomRepository
}

func NewChatService(
	session *SessionService,
	msgRepo repository.MessageRepository,
	roomRepo repository.RoomRepository,
) *ChatService {
	return &ChatService{
		session:  session,
		msgRepo:  msgRepo,
		roomRepo: roomRepo,
	}
}

func (s *ChatService) GetRooms() ([]*domain.ChatRoom, error) {
	rooms, err := s.session.ChatStore()
	if err != nil {
		return nil, err
	}
	return rooms.Rooms(), nil
}

func (s *ChatService) GetRoom(roomID string) (*domain.ChatRoom, error) {
	rooms, err := s.session.ChatStore()
	if err != nil {
		return nil, err
	}
	return rooms.Room(roomID)
}

func (s *ChatService) CurrentRoom() (*domain.ChatRoom, error) {
	rooms, err := s.session.ChatStore()
	if err != nil {
		return nil, err
	}
	room := rooms.CurrentRoom()
	if room == nil {
		return nil, domain.ErrNoActiveRoom
	}
	return room, nil
}

// ReloadRooms fetches the room list again (admin) and returns it.
func (s *ChatService) ReloadRooms(ctx context.Context) ([]*domain.ChatRoom, error) {
	rooms, err := s.session.ChatStore()
	if err != nil {
		return nil, err
	}
	if err := rooms.LoadRooms(ctx); err != nil {
		return nil, err
	}
	return rooms.Rooms(), nil
}

func (s *ChatService) OpenChat(ctx context.Context) (*domain.ChatRoom, error) {
	return s.session.OpenChat(ctx)
}

func (s *ChatService) SelectRoom(ctx context.Context, roomID string) error {
	return s.session.SelectRoom(ctx, roomID)
}

// GetMessages returns the loaded messages of roomID, or of the selected room when roomID is empty.
func (s *ChatService) GetMessages(roomID string) ([]*domain.ChatMessage, error) {
	rooms, err := s.session.ChatStore()
	if err != nil {
		return nil, err
	}
	if roomID == "" {
		if rooms.CurrentRoomID() == "" {
			return nil, domain.ErrNoActiveRoom
		}
		return rooms.Messages(), nil
	}
	return rooms.MessagesFor(roomID), nil
}

func (s *ChatService) SendMessage(ctx context.Context, text string) (*domain.ChatMessage, error) {
	return s.session.SendMessage(ctx, text)
}

// SendMessageTo sends text to a specific room without changing the selection.
func (s *ChatService) SendMessageTo(ctx context.Context, roomID, text string) (*domain.ChatMessage, error) {
	rooms, err := s.session.ChatStore()
	if err != nil {
		return nil, err
	}
	return rooms.SendOutgoingMessage(ctx, roomID, text)
}

func (s *ChatService) MarkRoomRead(ctx context.Context, roomID string) error {
	rooms, err := s.session.ChatStore()
	if err != nil {
		return err
	}
	return rooms.MarkAsRead(ctx, roomID)
}

func (s *ChatService) UnreadCount() (int, error) {
	rooms, err := s.session.ChatStore()
	if err != nil {
		return 0, err
	}
	return rooms.UnreadCount(), nil
}

// GetStats returns the cached server aggregate, loading it on first use.
func (s *ChatService) GetStats(ctx context.Context) (domain.ChatStats, error) {
	rooms, err := s.session.ChatStore()
	if err != nil {
		return domain.ChatStats{}, err
	}
	if stats, ok := rooms.Stats(); ok {
		return stats, nil
	}
	if err := rooms.LoadStats(ctx); err != nil {
		return domain.ChatStats{}, err
	}
	stats, _ := rooms.Stats()
	return stats, nil
}

func (s *ChatService) SearchMessages(ctx context.Context, query string, limit int) ([]*domain.ChatMessage, error) {
	if limit <= 0 {
		limit = defaultSearchLimit
	}
	return s.msgRepo.Search(ctx, query, limit)
}

func (s *ChatService) GetArchivedMessages(ctx context.Context, roomID string, limit, offset int) ([]*domain.ChatMessage, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.msgRepo.GetByRoomID(ctx, roomID, limit, offset)
}

func (s *ChatService) GetArchivedMessagesSince(ctx context.Context, roomID string, since time.Time, limit int) ([]*domain.ChatMessage, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.msgRepo.GetByRoomIDSince(ctx, roomID, since, limit)
}

func (s *ChatService) GetArchivedRooms(ctx context.Context, limit, offset int) ([]*domain.ChatRoom, error) {
	return s.roomRepo.GetAll(ctx, limit, offset)
}
