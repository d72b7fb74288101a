package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"elanbot/model"
	"elanbot/types"
)

type mockEmbedder struct {
	vec []float32
	err error
}

func (m *mockEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.vec != nil {
		return m.vec, nil
	}
	return []float32{0.1, 0.2, 0.3}, nil
}

type mockStore struct {
	hits []types.ScoredChunk
	err  error
}

func (m *mockStore) CreateCollection(ctx context.Context, dim int) error { return nil }
func (m *mockStore) Upsert(ctx context.Context, id int64, vec []float32, chunk types.Chunk) error {
	return nil
}
func (m *mockStore) Count(ctx context.Context) (int64, error) { return int64(len(m.hits)), nil }
func (m *mockStore) Search(ctx context.Context, vec []float32, k int) ([]types.ScoredChunk, error) {
	if m.err != nil {
		return nil, m.err
	}
	if k < len(m.hits) {
		return m.hits[:k], nil
	}
	return m.hits, nil
}

type mockLLM struct {
	response string
	err      error

	gotMessages    []model.ChatMessage
	gotTemperature float32
	gotMaxTokens   int
	calls          int
}

func (m *mockLLM) Complete(ctx context.Context, messages []model.ChatMessage, temperature float32, maxTokens int) (string, error) {
	m.calls++
	m.gotMessages = messages
	m.gotTemperature = temperature
	m.gotMaxTokens = maxTokens
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func newTestAssistant(emb *mockEmbedder, st *mockStore, llm *mockLLM) *Assistant {
	return NewAssistant(emb, st, llm, 3)
}

func TestAnswer_GroundedInRetrievedChunk(t *testing.T) {
	st := &mockStore{hits: []types.ScoredChunk{
		{ID: 0, Title: "Add tier", Content: "To add a tier, go to Tier > Add New Tier.", Score: 0.91},
	}}
	llm := &mockLLM{response: "Go to Tier > Add New Tier."}
	a := newTestAssistant(&mockEmbedder{}, st, llm)

	answer := a.Answer(context.Background(), "How do I add a tier?")

	if answer != "Go to Tier > Add New Tier." {
		t.Errorf("unexpected answer: %s", answer)
	}
	if len(llm.gotMessages) != 3 {
		t.Fatalf("expected system+user+assistant messages, got %d", len(llm.gotMessages))
	}
	user := llm.gotMessages[1].Content
	if !strings.Contains(user, "To add a tier, go to Tier > Add New Tier.") {
		t.Error("user prompt should embed the retrieved chunk content")
	}
	if !strings.Contains(user, "How do I add a tier?") {
		t.Error("user prompt should embed the question")
	}
	if llm.gotTemperature != 0.1 {
		t.Errorf("answer path should use temperature 0.1, got %v", llm.gotTemperature)
	}
	if llm.gotMaxTokens != 500 {
		t.Errorf("answer path should cap output at 500 tokens, got %d", llm.gotMaxTokens)
	}
}

func TestAnswer_JoinsTopChunksWithNewlines(t *testing.T) {
	st := &mockStore{hits: []types.ScoredChunk{
		{Content: "first", Score: 0.9},
		{Content: "second", Score: 0.8},
		{Content: "third", Score: 0.7},
	}}
	llm := &mockLLM{response: "ok"}
	a := newTestAssistant(&mockEmbedder{}, st, llm)

	a.Answer(context.Background(), "question")

	if !strings.Contains(llm.gotMessages[1].Content, "first\nsecond\nthird") {
		t.Error("context should be the chunk contents joined with newlines")
	}
}

func TestAnswer_EmbeddingFailureDegradesContext(t *testing.T) {
	llm := &mockLLM{response: "still answered"}
	a := newTestAssistant(&mockEmbedder{err: errors.New("model down")}, &mockStore{}, llm)

	answer := a.Answer(context.Background(), "test")

	if answer != "still answered" {
		t.Errorf("retrieval failure must not fail the request, got %q", answer)
	}
	if !strings.Contains(llm.gotMessages[1].Content, FallbackNoContext) {
		t.Error("context should degrade to the no-information sentence")
	}
}

func TestAnswer_SearchFailureDegradesContext(t *testing.T) {
	llm := &mockLLM{response: "ok"}
	a := newTestAssistant(&mockEmbedder{}, &mockStore{err: errors.New("db down")}, llm)

	a.Answer(context.Background(), "test")

	if !strings.Contains(llm.gotMessages[1].Content, FallbackNoContext) {
		t.Error("context should degrade to the no-information sentence")
	}
}

func TestAnswer_GenerationFailureReturnsFallback(t *testing.T) {
	llm := &mockLLM{err: errors.New("provider 503")}
	a := newTestAssistant(&mockEmbedder{}, &mockStore{}, llm)

	answer := a.Answer(context.Background(), "test")

	if answer != FallbackGeneration {
		t.Errorf("expected the exact generation fallback, got %q", answer)
	}
}

func TestAnswer_EmptyQueryDoesNotPanic(t *testing.T) {
	a := newTestAssistant(&mockEmbedder{}, &mockStore{}, &mockLLM{response: "ok"})
	if got := a.Answer(context.Background(), ""); got != "ok" {
		t.Errorf("unexpected answer: %q", got)
	}
}

func TestEditDocument_ReturnsModelOutputVerbatim(t *testing.T) {
	llm := &mockLLM{response: "<ANNOTATION_DOCUMENT>edited</ANNOTATION_DOCUMENT>"}
	a := newTestAssistant(&mockEmbedder{}, &mockStore{}, llm)

	input := `<?xml version="1.0"?><ANNOTATION_DOCUMENT></ANNOTATION_DOCUMENT> remove tier X`
	output := a.EditDocument(context.Background(), input)

	if output != "<ANNOTATION_DOCUMENT>edited</ANNOTATION_DOCUMENT>" {
		t.Errorf("unexpected output: %s", output)
	}
	user := llm.gotMessages[1].Content
	if !strings.Contains(user, input) {
		t.Error("user prompt should carry the raw input")
	}
	if !strings.Contains(user, "Example eaf file:") {
		t.Error("user prompt should carry the worked example")
	}
	if llm.gotTemperature != 0.7 {
		t.Errorf("edit path should use temperature 0.7, got %v", llm.gotTemperature)
	}
	if llm.gotMaxTokens != 0 {
		t.Errorf("edit path should leave the output cap to the provider, got %d", llm.gotMaxTokens)
	}
}

func TestEditDocument_FailureReturnsFallback(t *testing.T) {
	llm := &mockLLM{err: errors.New("provider down")}
	a := newTestAssistant(&mockEmbedder{}, &mockStore{}, llm)

	output := a.EditDocument(context.Background(), "not even xml garbage")

	if output != FallbackEdit {
		t.Errorf("expected the exact edit fallback, got %q", output)
	}
}

func TestHandleMessage_DispatchesToEditor(t *testing.T) {
	llm := &mockLLM{response: "edited"}
	a := newTestAssistant(&mockEmbedder{}, &mockStore{}, llm)

	a.HandleMessage(context.Background(), `<?xml version="1.0"?> remove tier X`, nil)

	if llm.gotMessages[0].Content != editorSystemPrompt {
		t.Error("xml input should go through the editor system prompt")
	}
	if llm.calls != 1 {
		t.Errorf("expected exactly one completion call, got %d", llm.calls)
	}
}

func TestHandleMessage_DispatchesToAnswerer(t *testing.T) {
	llm := &mockLLM{response: "answered"}
	a := newTestAssistant(&mockEmbedder{}, &mockStore{}, llm)

	a.HandleMessage(context.Background(), "How do I export annotations?", []string{"old turn"})

	if llm.gotMessages[0].Content != answerSystemPrompt {
		t.Error("plain question should go through the answer system prompt")
	}
}
