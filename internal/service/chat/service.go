package chat

import (
	"context"
	"log"

	"github.com/jwhitfield/careersite/backend/internal/model/profile"
	"github.com/jwhitfield/careersite/backend/internal/model/session"
)

// FallbackBiography is returned whenever the model is unreachable. Static
// text, not bundle-derived.
const FallbackBiography = "I'm having trouble reaching the AI service right now. In short: Jordan Whitfield is an engineering leader with 14 years across distributed systems, developer platforms, and applied machine learning, most recently leading a 30-person platform organization. For anything specific, please reach out directly at jordan@jwhitfield.dev."

// Completer is the single capability the chat service needs from the model
// layer. history carries the prior turns of the conversation in order.
type Completer interface {
	Complete(ctx context.Context, systemPrompt string, history []session.Message, userMessage string) (string, error)
}

// Reply is the outcome of one chat turn.
type Reply struct {
	Text     string
	Gated    bool
	Fallback bool
}

// Service implements the gated conversation flow: resolve the visitor,
// compose the prompt, invoke the model, persist the exchange.
type Service struct {
	bundle *profile.Bundle
	store  session.Store
	ai     Completer
}

// NewService wires the conversation service. ai may be nil when no provider
// is configured; every gated turn then answers with the fallback biography.
func NewService(bundle *profile.Bundle, store session.Store, ai Completer) *Service {
	return &Service{bundle: bundle, store: store, ai: ai}
}

// StartSession records the visitor captured by the gate form and opens their
// session.
func (s *Service) StartSession(ctx context.Context, visitor session.Visitor) (session.Session, error) {
	return s.store.CreateSession(ctx, visitor)
}

// Transcript returns the stored messages for a session.
func (s *Service) Transcript(ctx context.Context, sessionID string) ([]session.Message, error) {
	return s.store.Transcript(ctx, sessionID)
}

// Respond handles one chat turn.
//
// Without a session id the visitor is ungated: the canned gate prompt is
// returned and the model is never contacted. An unresolvable session id is an
// error the caller must surface as "invalid session". A resolvable session
// produces a model completion, with the exchange persisted only on success.
func (s *Service) Respond(ctx context.Context, sessionID, message string) (Reply, error) {
	if sessionID == "" {
		return Reply{Text: s.bundle.GatePrompt}, nil
	}

	sess, visitor, err := s.store.GetSession(ctx, sessionID)
	if err != nil {
		return Reply{}, err
	}

	if s.ai == nil {
		return Reply{Text: FallbackBiography, Gated: true, Fallback: true}, nil
	}

	systemPrompt := Compose(s.bundle, &visitor)
	history, err := s.store.Transcript(ctx, sess.ID)
	if err != nil {
		// Answer from the current message alone rather than fail the turn.
		log.Printf("[chat] failed to load history for session=%s: %v", sess.ID, err)
		history = nil
	}

	text, err := s.ai.Complete(ctx, systemPrompt, history, message)
	if err != nil {
		log.Printf("[chat] completion failed for session=%s: %v", sess.ID, err)
		return Reply{Text: FallbackBiography, Gated: true, Fallback: true}, nil
	}

	userMsg := session.Message{Role: session.RoleUser, Content: message}
	assistantMsg := session.Message{Role: session.RoleAssistant, Content: text}
	if err := s.store.AppendExchange(ctx, sess.ID, userMsg, assistantMsg); err != nil {
		// The visitor already has their answer; do not fail the request.
		log.Printf("[chat] failed to persist exchange for session=%s: %v", sess.ID, err)
	}

	return Reply{Text: text, Gated: true}, nil
}
