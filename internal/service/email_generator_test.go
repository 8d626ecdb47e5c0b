package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	appErrors "github.com/clientforge/agencymail-backend/internal/errors"
	"github.com/clientforge/agencymail-backend/internal/llm"
	"github.com/clientforge/agencymail-backend/internal/model"
	"github.com/clientforge/agencymail-backend/internal/service"
)

type fakeLLM struct {
	content      string
	err          error
	lastMessages []llm.Message
	lastFormat   *llm.SchemaFormat
}

func (f *fakeLLM) Complete(_ context.Context, messages []llm.Message, format *llm.SchemaFormat) (string, error) {
	f.lastMessages = messages
	f.lastFormat = format
	return f.content, f.err
}

func sequencePayload(count int) string {
	emails := make([]map[string]any, count)
	for i := range emails {
		emails[i] = map[string]any{
			"sequenceNumber": i + 1,
			"subject":        fmt.Sprintf("Subject %d", i+1),
			"previewText":    "preview",
			"bodyText":       "body text",
			"bodyHtml":       "<p>body</p>",
		}
	}
	payload, _ := json.Marshal(map[string]any{"emails": emails})
	return string(payload)
}

func TestGenerateSequence(t *testing.T) {
	client := &fakeLLM{content: sequencePayload(10)}
	gen := service.NewEmailGenerator(client)

	emails, err := gen.GenerateSequence(context.Background(), &model.KnowledgeBase{}, "Launch")
	if err != nil {
		t.Fatalf("GenerateSequence error: %v", err)
	}
	if len(emails) != 10 {
		t.Fatalf("expected 10 emails, got %d", len(emails))
	}
	for i, e := range emails {
		if e.SequenceNumber != i+1 {
			t.Errorf("email %d has sequence number %d", i, e.SequenceNumber)
		}
	}

	if client.lastFormat == nil || client.lastFormat.Name != "email_sequence" {
		t.Error("expected the email_sequence schema format")
	}
	if len(client.lastMessages) != 2 || client.lastMessages[0].Role != "system" {
		t.Error("expected a system + user message pair")
	}
}

func TestGenerateSequenceEmptyContent(t *testing.T) {
	gen := service.NewEmailGenerator(&fakeLLM{content: ""})

	_, err := gen.GenerateSequence(context.Background(), &model.KnowledgeBase{}, "Launch")
	var genErr *appErrors.ErrGeneration
	if !errors.As(err, &genErr) {
		t.Fatalf("expected generation error, got %v", err)
	}
}

func TestGenerateSequenceMalformedJSON(t *testing.T) {
	gen := service.NewEmailGenerator(&fakeLLM{content: "not json at all"})

	_, err := gen.GenerateSequence(context.Background(), &model.KnowledgeBase{}, "Launch")
	var genErr *appErrors.ErrGeneration
	if !errors.As(err, &genErr) {
		t.Fatalf("expected generation error, got %v", err)
	}
}

func TestGenerateSequenceWrongCount(t *testing.T) {
	gen := service.NewEmailGenerator(&fakeLLM{content: sequencePayload(7)})

	_, err := gen.GenerateSequence(context.Background(), &model.KnowledgeBase{}, "Launch")
	var genErr *appErrors.ErrGeneration
	if !errors.As(err, &genErr) {
		t.Fatalf("expected generation error for short sequence, got %v", err)
	}
}

func TestGenerateSequenceDuplicateNumbers(t *testing.T) {
	payload := sequencePayload(10)
	// Turn position 10 into a duplicate of position 1.
	var result struct {
		Emails []service.GeneratedEmail `json:"emails"`
	}
	json.Unmarshal([]byte(payload), &result)
	result.Emails[9].SequenceNumber = 1
	raw, _ := json.Marshal(result)

	gen := service.NewEmailGenerator(&fakeLLM{content: string(raw)})
	_, err := gen.GenerateSequence(context.Background(), &model.KnowledgeBase{}, "Launch")
	var genErr *appErrors.ErrGeneration
	if !errors.As(err, &genErr) {
		t.Fatalf("expected generation error for duplicate numbers, got %v", err)
	}
}

func TestGenerateSequenceClientFailure(t *testing.T) {
	gen := service.NewEmailGenerator(&fakeLLM{err: errors.New("connection refused")})

	_, err := gen.GenerateSequence(context.Background(), &model.KnowledgeBase{}, "Launch")
	var genErr *appErrors.ErrGeneration
	if !errors.As(err, &genErr) {
		t.Fatalf("expected generation error, got %v", err)
	}
}

func TestRegenerateSingle(t *testing.T) {
	payload, _ := json.Marshal(service.GeneratedEmail{
		SequenceNumber: 5,
		Subject:        "Fresh subject",
		PreviewText:    "preview",
		BodyText:       "fresh body",
		BodyHTML:       "<p>fresh</p>",
	})
	client := &fakeLLM{content: string(payload)}
	gen := service.NewEmailGenerator(client)

	email, err := gen.RegenerateSingle(context.Background(), &model.KnowledgeBase{}, 5, "prev", "next")
	if err != nil {
		t.Fatalf("RegenerateSingle error: %v", err)
	}
	if email.SequenceNumber != 5 || email.Subject != "Fresh subject" {
		t.Errorf("unexpected regenerated email: %+v", email)
	}
	if client.lastFormat == nil || client.lastFormat.Name != "single_email" {
		t.Error("expected the single_email schema format")
	}
}
