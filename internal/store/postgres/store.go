package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/jwhitfield/careersite/backend/internal/model/session"
)

// Connect opens the Postgres connection with pooling defaults and migrates
// the session schema.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	if err := db.AutoMigrate(&session.Visitor{}, &session.Session{}, &session.Message{}); err != nil {
		return nil, fmt.Errorf("failed to migrate session schema: %w", err)
	}

	return db, nil
}

// Store persists sessions in Postgres via GORM.
type Store struct {
	db *gorm.DB
}

// New wraps an open GORM handle.
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) CreateSession(ctx context.Context, visitor session.Visitor) (session.Session, error) {
	if visitor.Name == "" {
		return session.Session{}, session.ErrVisitorNameRequired
	}

	now := time.Now().UTC()
	visitor.ID = uuid.NewString()
	visitor.CreatedAt = now

	sess := session.Session{
		ID:        uuid.NewString(),
		VisitorID: visitor.ID,
		Status:    session.StatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&visitor).Error; err != nil {
			return err
		}
		return tx.Create(&sess).Error
	})
	if err != nil {
		return session.Session{}, fmt.Errorf("failed to create session: %w", err)
	}
	return sess, nil
}

func (s *Store) GetSession(ctx context.Context, sessionID string) (session.Session, session.Visitor, error) {
	var sess session.Session
	if err := s.db.WithContext(ctx).First(&sess, "id = ?", sessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return session.Session{}, session.Visitor{}, session.ErrSessionNotFound
		}
		return session.Session{}, session.Visitor{}, fmt.Errorf("failed to load session: %w", err)
	}

	var visitor session.Visitor
	if err := s.db.WithContext(ctx).First(&visitor, "id = ?", sess.VisitorID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return session.Session{}, session.Visitor{}, session.ErrSessionNotFound
		}
		return session.Session{}, session.Visitor{}, fmt.Errorf("failed to load visitor: %w", err)
	}

	return sess, visitor, nil
}

func (s *Store) AppendExchange(ctx context.Context, sessionID string, userMsg, assistantMsg session.Message) error {
	now := time.Now().UTC()
	for _, msg := range []*session.Message{&userMsg, &assistantMsg} {
		msg.ID = uuid.NewString()
		msg.SessionID = sessionID
		if msg.CreatedAt.IsZero() {
			msg.CreatedAt = now
		}
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var sess session.Session
		if err := tx.First(&sess, "id = ?", sessionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return session.ErrSessionNotFound
			}
			return err
		}
		if err := tx.Create(&userMsg).Error; err != nil {
			return err
		}
		if err := tx.Create(&assistantMsg).Error; err != nil {
			return err
		}
		return tx.Model(&sess).Update("updated_at", now).Error
	})
}

func (s *Store) Transcript(ctx context.Context, sessionID string) ([]session.Message, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&session.Session{}).Where("id = ?", sessionID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check session: %w", err)
	}
	if count == 0 {
		return nil, session.ErrSessionNotFound
	}

	var messages []session.Message
	err := s.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at asc").
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load transcript: %w", err)
	}
	return messages, nil
}
