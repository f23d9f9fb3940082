package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/clippy-oss/homie/storefront-realtime/internal/domain"
	"github.com/clippy-oss/homie/storefront-realtime/internal/logger"
	"github.com/clippy-oss/homie/storefront-realtime/internal/repository"
)

func main() {
	// Default to a dummy archive in the current directory
	dbPath := "dummy_storefront.db"
	if len(os.Args) > 1 {
		dbPath = os.Args[1]
	}

	fmt.Printf("Using database at: %s\n", dbPath)

	logger.Init("warn")
	db, err := initDatabase(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	ctx := context.Background()
	msgRepo := repository.NewMessageRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	noteRepo := repository.NewNotificationRepository(db)

	for _, purge := range []func(context.Context) error{msgRepo.Purge, roomRepo.Purge, noteRepo.Purge} {
		if err := purge(ctx); err != nil {
			log.Fatalf("Failed to clear archive: %v", err)
		}
	}
	fmt.Println("Cleared the archive")

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	if err := seedChat(ctx, rng, msgRepo, roomRepo); err != nil {
		log.Fatalf("Failed to seed chat: %v", err)
	}
	if err := seedNotifications(ctx, rng, noteRepo); err != nil {
		log.Fatalf("Failed to seed notifications: %v", err)
	}

	fmt.Println("Successfully seeded rooms, messages and notifications")
	fmt.Printf("Database location: %s\n", dbPath)
}

func initDatabase(dbPath string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.NewGormLogger("seed"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for better concurrency
	db.Exec("PRAGMA journal_mode=WAL")

	if err := db.AutoMigrate(repository.Models()...); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

var customerNames = []string{
	"Alice Johnson",
	"Bob Smith",
	"Charlie Brown",
	"Diana Prince",
	"Eve Wilson",
	"Frank Miller",
	"Grace Lee",
	"Henry Davis",
}

var customerTexts = []string{
	"Hi, where is my order?",
	"Do you ship to Canada?",
	"The jacket I got is a size too small",
	"Can I change the delivery address?",
	"Is this item coming back in stock?",
	"My discount code doesn't work",
	"Thanks, that helps!",
	"How long does a refund take?",
}

var supportTexts = []string{
	"Hello! Let me check that for you.",
	"Your order left our warehouse this morning.",
	"You can exchange it free of charge within 30 days.",
	"I've updated the address on your order.",
	"We expect it back next week.",
	"I've applied the discount manually.",
	"Refunds take 3-5 business days.",
	"Anything else I can help with?",
}

var supportAgent = domain.AuthContext{UserID: "admin-1", UserName: "Support", Role: domain.RoleAdmin}

func seedChat(ctx context.Context, rng *rand.Rand, msgRepo repository.MessageRepository, roomRepo repository.RoomRepository) error {
	now := time.Now()
	statuses := []domain.RoomStatus{domain.RoomStatusActive, domain.RoomStatusWaiting, domain.RoomStatusClosed}

	for i, name := range customerNames {
		customer := domain.AuthContext{UserID: fmt.Sprintf("cust-%d", i+1), UserName: name, Role: domain.RoleCustomer}
		room := &domain.ChatRoom{
			ID:     uuid.NewString(),
			UserID: customer.UserID,
			Name:   name,
			Status: statuses[rng.Intn(len(statuses))],
		}

		// 6-12 messages, alternating sides, starting 1-3 days ago with 5-45 minute gaps
		numMessages := 6 + rng.Intn(7)
		messageTime := now.Add(-time.Duration(1+rng.Intn(3)) * 24 * time.Hour)
		var last *domain.ChatMessage
		for j := 0; j < numMessages; j++ {
			if j > 0 {
				messageTime = messageTime.Add(time.Duration(5+rng.Intn(40)) * time.Minute)
			}
			sender, texts := customer, customerTexts
			if j%2 == 1 {
				sender, texts = supportAgent, supportTexts
			}
			msg := domain.NewTextMessage(uuid.NewString(), room.ID, sender, texts[rng.Intn(len(texts))], messageTime)
			msg.IsRead = j < numMessages-2 || sender.Role == domain.RoleAdmin
			if err := msgRepo.Create(ctx, msg); err != nil {
				return fmt.Errorf("failed to create message in room %s: %w", room.ID, err)
			}
			if !msg.IsRead {
				room.UnreadCount++
			}
			last = msg
		}

		if last != nil {
			room.LastMessage = last.Message
			t := last.Timestamp
			room.LastMessageTime = &t
		}
		if err := roomRepo.Upsert(ctx, room); err != nil {
			return fmt.Errorf("failed to create room %s: %w", room.ID, err)
		}
		fmt.Printf("  %s: %d messages, %d unread\n", name, numMessages, room.UnreadCount)
	}
	return nil
}

func seedNotifications(ctx context.Context, rng *rand.Rand, repo repository.NotificationRepository) error {
	templates := []struct {
		title    string
		message  string
		kind     domain.NotificationType
		priority domain.Priority
		url      string
	}{
		{"Order shipped", "Your order is on its way.", domain.NotificationTypeOrder, domain.PriorityHigh, "https://shop.example/orders/%d"},
		{"Order delivered", "Your package was delivered.", domain.NotificationTypeOrder, domain.PriorityNormal, "https://shop.example/orders/%d"},
		{"Price drop", "An item on your wishlist is cheaper now.", domain.NotificationTypeFavorite, domain.PriorityNormal, "https://shop.example/products/%d"},
		{"Weekend sale", "Up to 40% off selected items.", domain.NotificationTypePromo, domain.PriorityLow, ""},
		{"New message", "Support replied to your chat.", domain.NotificationTypeGeneral, domain.PriorityNormal, ""},
		{"Password changed", "Your password was changed.", domain.NotificationTypeSystem, domain.PriorityHigh, ""},
	}

	now := time.Now()
	for i := 0; i < 20; i++ {
		tpl := templates[rng.Intn(len(templates))]
		n := &domain.Notification{
			ID:        uuid.NewString(),
			UserID:    "cust-1",
			Title:     tpl.title,
			Message:   tpl.message,
			Type:      tpl.kind,
			Priority:  tpl.priority,
			IsRead:    rng.Float32() < 0.6,
			CreatedAt: now.Add(-time.Duration(i*3+rng.Intn(3)) * time.Hour),
		}
		if tpl.url != "" {
			n.ActionURL = fmt.Sprintf(tpl.url, 1000+rng.Intn(9000))
		}
		n.UpdatedAt = n.CreatedAt
		if err := repo.Upsert(ctx, n); err != nil {
			return fmt.Errorf("failed to create notification: %w", err)
		}
	}
	fmt.Println("  20 notifications")
	return nil
}
