package knowledge

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"cryptoamy-backend/internal/content"
)

// ChatCompleter is the slice of the OpenAI client the resolver needs.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// Resolver answers free-text questions from the FAQ and site corpora, with
// the generative backend doing the phrasing. An empty reply means the
// resolver has nothing to say; callers decide what that means for them.
type Resolver struct {
	spec   Spec
	store  *content.Store
	client ChatCompleter
	model  string
}

func NewResolver(spec Spec, store *content.Store, client ChatCompleter, model string) *Resolver {
	return &Resolver{spec: spec, store: store, client: client, model: model}
}

// Resolve returns the assistant's answer, or "" when there is none.
func (r *Resolver) Resolve(ctx context.Context, message string) string {
	lower := strings.ToLower(message)
	for _, trigger := range r.spec.Smalltalk {
		if strings.Contains(lower, trigger) {
			return r.spec.SmalltalkReply
		}
	}

	prompt := r.buildPrompt(message)

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	resp, err := r.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       r.model,
		Temperature: r.spec.Style.Temperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: r.spec.System},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		log.Println("[knowledge] completion failed:", err)
		return ""
	}
	if len(resp.Choices) == 0 {
		return ""
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content)
}

// buildPrompt renders the expanded FAQ and the topic-filtered site corpus
// around the literal user question. Topic filtering bounds prompt size; the
// in-prompt instruction is what keeps answers inside the corpus.
func (r *Resolver) buildPrompt(message string) string {
	faq := r.store.ExpandedFaq()
	topics := content.MatchTopics(message)
	pages := r.store.FilterByTopics(topics)

	var faqText strings.Builder
	for i, item := range faq {
		if i > 0 {
			faqText.WriteString("\n\n")
		}
		fmt.Fprintf(&faqText, "Q%d: %s\nA: %s", i+1, item.Question, item.Answer)
	}

	var siteText strings.Builder
	for i, page := range pages {
		if i > 0 {
			siteText.WriteString("\n\n")
		}
		fmt.Fprintf(&siteText, "Source: %s\n%s", page.URL, page.Content)
	}

	var b strings.Builder
	b.WriteString(r.spec.PromptHeader)
	b.WriteString("\n\nFAQ:\n")
	b.WriteString(faqText.String())
	b.WriteString("\n\nWebsite:\n")
	b.WriteString(siteText.String())
	fmt.Fprintf(&b, "\n\nUser question: %q\n", message)
	return b.String()
}
