package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"elanbot/model"
	"elanbot/store"

	"github.com/pkoukk/tiktoken-go"
)

// User-facing fallback strings. Nothing from the external calls ever reaches
// the user as a raw error; every failure degrades to one of these.
const (
	FallbackNoContext  = "I'm sorry, it was not possible to find any relevant information."
	FallbackGeneration = "I'm sorry, an error occurred while generating the response."
	FallbackEdit       = "I'm sorry, an error occurred while modifying the eaf file."
)

const searchTimeout = 10 * time.Second

// Assistant is the stateless message pipeline: route, retrieve, generate.
// All clients are injected once at startup and shared across requests.
type Assistant struct {
	embedder model.EmbedderInterface
	store    store.VectorStorer
	llm      model.CompleterInterface
	topK     int
	logger   *slog.Logger
}

func NewAssistant(embedder model.EmbedderInterface, storer store.VectorStorer, llm model.CompleterInterface, topK int) *Assistant {
	if topK <= 0 {
		topK = 3
	}
	return &Assistant{
		embedder: embedder,
		store:    storer,
		llm:      llm,
		topK:     topK,
		logger:   slog.Default(),
	}
}

// HandleMessage dispatches one user turn to exactly one handler and returns
// its text. History is accepted for interface compatibility but unused;
// every turn stands on its own.
func (a *Assistant) HandleMessage(ctx context.Context, message string, history []string) string {
	switch Route(message) {
	case RouteEdit:
		return a.EditDocument(ctx, message)
	default:
		return a.Answer(ctx, message)
	}
}

// Answer runs the retrieval-augmented path. It never returns an error to the
// caller: retrieval failures degrade the context to an explanatory sentence,
// generation failures degrade the whole answer to a fixed apology.
func (a *Assistant) Answer(ctx context.Context, query string) string {
	docContext := a.retrieveContext(ctx, query)

	messages := []model.ChatMessage{
		{Role: "system", Content: answerSystemPrompt},
		{Role: "user", Content: fmt.Sprintf(answerPromptTemplate, docContext, query)},
		{Role: "assistant", Content: answerPrefix},
	}

	a.logPromptSize("answer", messages)

	answer, err := a.llm.Complete(ctx, messages, 0.1, 500)
	if err != nil {
		a.logger.Error("error in response generation", "error", err.Error())
		return FallbackGeneration
	}
	return answer
}

// retrieveContext embeds the query and joins the top-k chunk contents.
// Any failure collapses the context to the no-information sentence, which is
// then handed to the model like ordinary context.
func (a *Assistant) retrieveContext(ctx context.Context, query string) string {
	vec, err := a.embedder.Embed(ctx, query)
	if err != nil {
		a.logger.Error("error in vector search", "error", err.Error())
		return FallbackNoContext
	}

	searchCtx, cancel := context.WithTimeout(ctx, searchTimeout)
	defer cancel()
	hits, err := a.store.Search(searchCtx, vec, a.topK)
	if err != nil {
		a.logger.Error("error in vector search", "error", err.Error())
		return FallbackNoContext
	}

	contents := make([]string, len(hits))
	for i, hit := range hits {
		contents[i] = hit.Content
	}
	return strings.Join(contents, "\n")
}

var (
	tokenEncoderOnce sync.Once
	tokenEncoder     *tiktoken.Tiktoken
)

// logPromptSize reports the token footprint of an outgoing prompt.
// Best effort only; a missing encoding must never block a request, and the
// encoder is resolved once per process.
func (a *Assistant) logPromptSize(kind string, messages []model.ChatMessage) {
	tokenEncoderOnce.Do(func() {
		tokenEncoder, _ = tiktoken.EncodingForModel("gpt-3.5-turbo")
	})
	enc := tokenEncoder
	if enc == nil {
		return
	}
	total := 0
	for _, m := range messages {
		total += len(enc.Encode(m.Content, nil, nil))
	}
	a.logger.Info("prompt built", "kind", kind, "tokens", total)
}
