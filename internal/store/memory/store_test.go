package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jwhitfield/careersite/backend/internal/model/session"
	"github.com/jwhitfield/careersite/backend/internal/store/memory"
)

func TestCreateAndGetSession(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	sess, err := store.CreateSession(ctx, session.Visitor{Name: "Dana", Role: "recruiter", Purpose: "hiring"})
	if err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}

	got, visitor, err := store.GetSession(ctx, sess.ID)
	if err != nil {
		t.Fatalf("GetSession err: %v", err)
	}
	if got.ID != sess.ID {
		t.Fatalf("unexpected session ID: got %s want %s", got.ID, sess.ID)
	}
	if visitor.Name != "Dana" {
		t.Fatalf("unexpected visitor name: %s", visitor.Name)
	}
	if got.Status != session.StatusActive {
		t.Fatalf("unexpected status: %s", got.Status)
	}
}

func TestCreateSessionRequiresName(t *testing.T) {
	store := memory.New()

	_, err := store.CreateSession(context.Background(), session.Visitor{Role: "recruiter"})
	if !errors.Is(err, session.ErrVisitorNameRequired) {
		t.Fatalf("expected ErrVisitorNameRequired, got %v", err)
	}
}

func TestGetSessionNotFound(t *testing.T) {
	store := memory.New()

	_, _, err := store.GetSession(context.Background(), "missing")
	if !errors.Is(err, session.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestAppendExchangeBumpsUpdatedAt(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	sess, err := store.CreateSession(ctx, session.Visitor{Name: "Dana"})
	if err != nil {
		t.Fatalf("CreateSession err: %v", err)
	}

	err = store.AppendExchange(ctx, sess.ID,
		session.Message{Role: session.RoleUser, Content: "hi"},
		session.Message{Role: session.RoleAssistant, Content: "hello"},
	)
	if err != nil {
		t.Fatalf("AppendExchange err: %v", err)
	}

	got, _, err := store.GetSession(ctx, sess.ID)
	if err != nil {
		t.Fatalf("GetSession err: %v", err)
	}
	if got.UpdatedAt.Before(sess.UpdatedAt) {
		t.Fatal("expected UpdatedAt to advance")
	}

	messages, err := store.Transcript(ctx, sess.ID)
	if err != nil {
		t.Fatalf("Transcript err: %v", err)
	}
	if len(messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(messages))
	}
	if messages[0].ID == "" || messages[1].ID == "" {
		t.Fatal("expected message IDs to be assigned")
	}
}

func TestAppendExchangeUnknownSession(t *testing.T) {
	store := memory.New()

	err := store.AppendExchange(context.Background(), "missing",
		session.Message{Role: session.RoleUser, Content: "hi"},
		session.Message{Role: session.RoleAssistant, Content: "hello"},
	)
	if !errors.Is(err, session.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestTranscriptReturnsCopy(t *testing.T) {
	store := memory.New()
	ctx := context.Background()

	sess, _ := store.CreateSession(ctx, session.Visitor{Name: "Dana"})
	_ = store.AppendExchange(ctx, sess.ID,
		session.Message{Role: session.RoleUser, Content: "hi"},
		session.Message{Role: session.RoleAssistant, Content: "hello"},
	)

	first, _ := store.Transcript(ctx, sess.ID)
	first[0].Content = "mutated"

	second, _ := store.Transcript(ctx, sess.ID)
	if second[0].Content != "hi" {
		t.Fatal("transcript should not share backing storage with callers")
	}
}
