package agent

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// stubModel returns canned responses in order, then repeats the last one.
type stubModel struct {
	responses []string
	err       error
	calls     int
	prompts   []string
}

func (s *stubModel) Generate(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if s.err != nil {
		return "", s.err
	}
	i := s.calls
	if i >= len(s.responses) {
		i = len(s.responses) - 1
	}
	s.calls++
	return s.responses[i], nil
}

func newTestAgent(t *testing.T, model *stubModel, catalog *Catalog) *Agent {
	t.Helper()
	a, err := New(Options{
		Name:         "Test Agent",
		Description:  "agent under test",
		Instructions: "You are a test agent.",
		Model:        model,
		Catalog:      catalog,
	})
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func TestNewRequiresModelAndName(t *testing.T) {
	if _, err := New(Options{Name: "x"}); err == nil {
		t.Fatal("want error without model")
	}
	if _, err := New(Options{Model: &stubModel{responses: []string{""}}}); err == nil {
		t.Fatal("want error without name")
	}
}

func TestChatWithoutToolsIsPlainGeneration(t *testing.T) {
	model := &stubModel{responses: []string{"Hello there!"}}
	a := newTestAgent(t, model, nil)

	got, err := a.Chat(context.Background(), "hi", nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != "Hello there!" {
		t.Fatalf("got %q", got)
	}
	if strings.Contains(model.prompts[0], "USE_TOOL") {
		t.Fatal("tool-less prompt should not mention the tool convention")
	}
}

func TestChatNoCallReturnsModelTextVerbatim(t *testing.T) {
	catalog := NewCatalog()
	catalog.MustRegister(ToolSpec{Name: "noop", Description: "does nothing"}, okHandler)
	model := &stubModel{responses: []string{"Just chatting, no tools needed."}}
	a := newTestAgent(t, model, catalog)

	got, err := a.Chat(context.Background(), "hello", nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != "Just chatting, no tools needed." {
		t.Fatalf("got %q", got)
	}
}

func TestChatExecutesParsedToolCall(t *testing.T) {
	var seen map[string]any
	catalog := NewCatalog()
	catalog.MustRegister(ToolSpec{Name: "echo", Description: "echoes"}, func(_ context.Context, params map[string]any) Result {
		seen = params
		return Text("echoed %v", params["value"])
	})

	model := &stubModel{responses: []string{"USE_TOOL: echo\nPARAMETERS: {\"value\": \"ping\"}"}}
	a := newTestAgent(t, model, catalog)

	got, err := a.Chat(context.Background(), "echo ping", nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != "echoed ping" {
		t.Fatalf("got %q", got)
	}
	if seen["value"] != "ping" {
		t.Fatalf("handler params = %v", seen)
	}
}

func TestChatUnknownToolBecomesErrorText(t *testing.T) {
	catalog := NewCatalog()
	catalog.MustRegister(ToolSpec{Name: "real", Description: "exists"}, okHandler)
	model := &stubModel{responses: []string{"USE_TOOL: imaginary\nPARAMETERS: {}"}}
	a := newTestAgent(t, model, catalog)

	got, err := a.Chat(context.Background(), "do it", nil)
	if err != nil {
		t.Fatal(err)
	}
	if got != "Error: Unknown tool: imaginary" {
		t.Fatalf("got %q", got)
	}
}

func TestChatModelFailureBecomesText(t *testing.T) {
	model := &stubModel{err: errors.New("quota exhausted")}
	a := newTestAgent(t, model, nil)

	got, err := a.Chat(context.Background(), "hi", nil)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, "Error processing request") || !strings.Contains(got, "quota exhausted") {
		t.Fatalf("got %q", got)
	}
}

func TestChatPromptListsTools(t *testing.T) {
	catalog := NewCatalog()
	catalog.MustRegister(ToolSpec{Name: "list_events", Description: "Browse events"}, okHandler)
	model := &stubModel{responses: []string{"ok"}}
	a := newTestAgent(t, model, catalog)

	if _, err := a.Chat(context.Background(), "hi", nil); err != nil {
		t.Fatal(err)
	}
	prompt := model.prompts[0]
	for _, want := range []string{"- list_events: Browse events", "USE_TOOL: tool_name", "User message: hi"} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestCardCarriesToolsAndMetadata(t *testing.T) {
	catalog := NewCatalog()
	catalog.MustRegister(ToolSpec{Name: "one", Description: "first"}, okHandler)
	a, err := New(Options{
		Name:        "Carded",
		Description: "has a card",
		AgentType:   "CardedAgent",
		Model:       &stubModel{responses: []string{"ok"}},
		Catalog:     catalog,
	})
	if err != nil {
		t.Fatal(err)
	}

	card := a.Card()
	if card.Name != "Carded" || card.Description != "has a card" {
		t.Fatalf("card = %+v", card)
	}
	if len(card.Capabilities.Tools) != 1 || card.Capabilities.Tools[0].Name != "one" {
		t.Fatalf("tools = %+v", card.Capabilities.Tools)
	}
	if card.Metadata["agent_type"] != "CardedAgent" || card.Metadata["version"] != "1.0.0" {
		t.Fatalf("metadata = %v", card.Metadata)
	}
}

func TestSessionContext(t *testing.T) {
	if got := SessionFrom(context.Background()); got != DefaultSession {
		t.Fatalf("default session = %q", got)
	}
	ctx := WithSession(context.Background(), "user-42")
	if got := SessionFrom(ctx); got != "user-42" {
		t.Fatalf("session = %q", got)
	}
}
