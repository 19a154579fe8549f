package ai

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/jwhitfield/careersite/backend/internal/model/session"
)

type fakeModel struct {
	calls    int
	content  string
	err      error
	received []*schema.Message
}

func (f *fakeModel) Generate(_ context.Context, messages []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	f.calls++
	f.received = messages
	if f.err != nil {
		return nil, f.err
	}
	return schema.AssistantMessage(f.content, nil), nil
}

func (f *fakeModel) Stream(_ context.Context, _ []*schema.Message, _ ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("streaming not supported")
}

func TestCompleteUsesFirstHealthyProvider(t *testing.T) {
	first := &fakeModel{content: "from first"}
	second := &fakeModel{content: "from second"}
	client := NewClientWithProviders(
		Provider{Name: "first", Model: first},
		Provider{Name: "second", Model: second},
	)

	text, err := client.Complete(context.Background(), "system", nil, "user")
	if err != nil {
		t.Fatalf("Complete err: %v", err)
	}
	if text != "from first" {
		t.Fatalf("unexpected text: %q", text)
	}
	if second.calls != 0 {
		t.Fatalf("expected second provider untouched, got %d calls", second.calls)
	}
}

func TestCompleteFallsThroughOnProviderError(t *testing.T) {
	first := &fakeModel{err: errors.New("rate limited")}
	second := &fakeModel{content: "from second"}
	client := NewClientWithProviders(
		Provider{Name: "first", Model: first},
		Provider{Name: "second", Model: second},
	)

	text, err := client.Complete(context.Background(), "system", nil, "user")
	if err != nil {
		t.Fatalf("Complete err: %v", err)
	}
	if text != "from second" {
		t.Fatalf("unexpected text: %q", text)
	}
	if first.calls != 1 || second.calls != 1 {
		t.Fatalf("unexpected call counts: first=%d second=%d", first.calls, second.calls)
	}
}

func TestCompleteSkipsEmptyContent(t *testing.T) {
	first := &fakeModel{content: ""}
	second := &fakeModel{content: "filled in"}
	client := NewClientWithProviders(
		Provider{Name: "first", Model: first},
		Provider{Name: "second", Model: second},
	)

	text, err := client.Complete(context.Background(), "system", nil, "user")
	if err != nil {
		t.Fatalf("Complete err: %v", err)
	}
	if text != "filled in" {
		t.Fatalf("unexpected text: %q", text)
	}
}

func TestCompleteAllProvidersFail(t *testing.T) {
	client := NewClientWithProviders(
		Provider{Name: "first", Model: &fakeModel{err: errors.New("down")}},
		Provider{Name: "second", Model: &fakeModel{err: errors.New("also down")}},
	)

	if _, err := client.Complete(context.Background(), "system", nil, "user"); err == nil {
		t.Fatal("expected error when every provider fails")
	}
}

func TestCompleteInterleavesHistory(t *testing.T) {
	only := &fakeModel{content: "answer"}
	client := NewClientWithProviders(Provider{Name: "only", Model: only})

	history := []session.Message{
		{Role: session.RoleUser, Content: "first question"},
		{Role: session.RoleAssistant, Content: "first answer"},
	}
	if _, err := client.Complete(context.Background(), "system", history, "second question"); err != nil {
		t.Fatalf("Complete err: %v", err)
	}

	if len(only.received) != 4 {
		t.Fatalf("expected 4 messages, got %d", len(only.received))
	}
	if only.received[0].Role != schema.System {
		t.Fatalf("expected system message first, got %s", only.received[0].Role)
	}
	if only.received[1].Role != schema.User || only.received[1].Content != "first question" {
		t.Fatalf("unexpected history message: %+v", only.received[1])
	}
	if only.received[2].Role != schema.Assistant || only.received[2].Content != "first answer" {
		t.Fatalf("unexpected history message: %+v", only.received[2])
	}
	if only.received[3].Role != schema.User || only.received[3].Content != "second question" {
		t.Fatalf("unexpected current message: %+v", only.received[3])
	}
}

func TestCompleteCapsHistory(t *testing.T) {
	only := &fakeModel{content: "answer"}
	client := NewClientWithProviders(Provider{Name: "only", Model: only})

	history := make([]session.Message, 0, 14)
	for i := 0; i < 14; i++ {
		history = append(history, session.Message{Role: session.RoleUser, Content: fmt.Sprintf("msg-%d", i)})
	}
	if _, err := client.Complete(context.Background(), "system", history, "current"); err != nil {
		t.Fatalf("Complete err: %v", err)
	}

	// system + last 10 history messages + current.
	if len(only.received) != 12 {
		t.Fatalf("expected 12 messages, got %d", len(only.received))
	}
	if only.received[1].Content != "msg-4" {
		t.Fatalf("expected oldest retained message msg-4, got %q", only.received[1].Content)
	}
	if only.received[10].Content != "msg-13" {
		t.Fatalf("expected newest history message msg-13, got %q", only.received[10].Content)
	}
}

func TestCompleteJSONDecodesChainOutput(t *testing.T) {
	client := NewClientWithProviders(
		Provider{Name: "only", Model: &fakeModel{content: `{"score": 91}`}},
	)

	var out struct {
		Score int `json:"score"`
	}
	if err := client.CompleteJSON(context.Background(), "system", "user", &out); err != nil {
		t.Fatalf("CompleteJSON err: %v", err)
	}
	if out.Score != 91 {
		t.Fatalf("unexpected score: %d", out.Score)
	}
}
