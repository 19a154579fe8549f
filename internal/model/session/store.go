package session

import (
	"context"
	"errors"
)

var (
	ErrVisitorNameRequired = errors.New("visitor name is required")
	ErrSessionNotFound     = errors.New("session not found")
)

// Store persists visitors, sessions, and their message logs.
type Store interface {
	// CreateSession stores the visitor and opens a session bound to them.
	CreateSession(ctx context.Context, visitor Visitor) (Session, error)
	// GetSession resolves a session and its visitor. Returns
	// ErrSessionNotFound when the id is unknown.
	GetSession(ctx context.Context, sessionID string) (Session, Visitor, error)
	// AppendExchange appends the user and assistant messages of one
	// completed exchange and bumps the session's UpdatedAt.
	AppendExchange(ctx context.Context, sessionID string, userMsg, assistantMsg Message) error
	// Transcript returns the session's messages in insertion order.
	Transcript(ctx context.Context, sessionID string) ([]Message, error)
}
