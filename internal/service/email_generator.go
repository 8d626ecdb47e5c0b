package service

import (
	"context"
	"encoding/json"

	appErrors "github.com/clientforge/agencymail-backend/internal/errors"
	"github.com/clientforge/agencymail-backend/internal/llm"
	"github.com/clientforge/agencymail-backend/internal/model"
)

// SequenceLength is the fixed number of emails in a generated campaign.
const SequenceLength = 10

// GeneratedEmail is the shape the generative model must return for each
// email in a sequence.
type GeneratedEmail struct {
	SequenceNumber int    `json:"sequenceNumber"`
	Subject        string `json:"subject"`
	PreviewText    string `json:"previewText"`
	BodyText       string `json:"bodyText"`
	BodyHTML       string `json:"bodyHtml"`
}

// LLMClient is the narrow slice of the llm package the generator needs.
type LLMClient interface {
	Complete(ctx context.Context, messages []llm.Message, format *llm.SchemaFormat) (string, error)
}

const sequenceSystemPrompt = "You are an expert email marketing copywriter specialized in creating high-converting email sequences for businesses. You understand the importance of storytelling, value delivery, and building relationships through email."

const regenerateSystemPrompt = "You are an expert email marketing copywriter."

// emailSequenceSchema is the strict response schema for a full sequence: an
// object with an `emails` array whose items carry the five generated fields.
var emailSequenceSchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "emails": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "sequenceNumber": {"type": "integer", "description": "Email number in sequence (1-10)"},
          "subject": {"type": "string", "description": "Email subject line"},
          "previewText": {"type": "string", "description": "Preview text shown in inbox"},
          "bodyText": {"type": "string", "description": "Plain text version of email body"},
          "bodyHtml": {"type": "string", "description": "HTML version of email body with proper formatting"}
        },
        "required": ["sequenceNumber", "subject", "previewText", "bodyText", "bodyHtml"],
        "additionalProperties": false
      }
    }
  },
  "required": ["emails"],
  "additionalProperties": false
}`)

var singleEmailSchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "sequenceNumber": {"type": "integer"},
    "subject": {"type": "string"},
    "previewText": {"type": "string"},
    "bodyText": {"type": "string"},
    "bodyHtml": {"type": "string"}
  },
  "required": ["sequenceNumber", "subject", "previewText", "bodyText", "bodyHtml"],
  "additionalProperties": false
}`)

// EmailGenerator turns a knowledge base into generated email content via one
// model call per operation. It performs no persistence.
type EmailGenerator struct {
	Client LLMClient
}

func NewEmailGenerator(client LLMClient) *EmailGenerator {
	return &EmailGenerator{Client: client}
}

// GenerateSequence produces the full ten-email sequence for a campaign. The
// model's output is parsed and then validated: exactly ten emails numbered
// 1..10 with no duplicates, otherwise the whole generation is rejected.
func (g *EmailGenerator) GenerateSequence(ctx context.Context, kb *model.KnowledgeBase, campaignName string) ([]GeneratedEmail, error) {
	prompt := BuildSequencePrompt(kb, campaignName)

	content, err := g.Client.Complete(ctx,
		[]llm.Message{
			{Role: "system", Content: sequenceSystemPrompt},
			{Role: "user", Content: prompt},
		},
		&llm.SchemaFormat{Name: "email_sequence", Schema: emailSequenceSchema},
	)
	if err != nil {
		return nil, appErrors.NewGenerationError("model call failed", err)
	}
	if content == "" {
		return nil, appErrors.NewGenerationError("no content generated from model", nil)
	}

	var result struct {
		Emails []GeneratedEmail `json:"emails"`
	}
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, appErrors.NewGenerationError("response is not valid JSON", err)
	}

	if err := validateSequence(result.Emails); err != nil {
		return nil, err
	}
	return result.Emails, nil
}

// RegenerateSingle produces a replacement for one sequence position, with the
// neighboring emails' plain-text bodies as optional context.
func (g *EmailGenerator) RegenerateSingle(ctx context.Context, kb *model.KnowledgeBase, sequenceNumber int, previousBody, nextBody string) (*GeneratedEmail, error) {
	prompt := BuildRegenerationPrompt(kb, sequenceNumber, previousBody, nextBody)

	content, err := g.Client.Complete(ctx,
		[]llm.Message{
			{Role: "system", Content: regenerateSystemPrompt},
			{Role: "user", Content: prompt},
		},
		&llm.SchemaFormat{Name: "single_email", Schema: singleEmailSchema},
	)
	if err != nil {
		return nil, appErrors.NewGenerationError("model call failed", err)
	}
	if content == "" {
		return nil, appErrors.NewGenerationError("no content generated from model", nil)
	}

	var email GeneratedEmail
	if err := json.Unmarshal([]byte(content), &email); err != nil {
		return nil, appErrors.NewGenerationError("response is not valid JSON", err)
	}
	return &email, nil
}

// validateSequence rejects a generated set that is not exactly the positions
// 1..SequenceLength, each present once.
func validateSequence(emails []GeneratedEmail) error {
	if len(emails) != SequenceLength {
		return appErrors.NewGenerationError("model returned wrong number of emails", nil)
	}
	seen := make(map[int]bool, SequenceLength)
	for _, e := range emails {
		if e.SequenceNumber < 1 || e.SequenceNumber > SequenceLength {
			return appErrors.NewGenerationError("sequence number out of range", nil)
		}
		if seen[e.SequenceNumber] {
			return appErrors.NewGenerationError("duplicate sequence number in generated set", nil)
		}
		seen[e.SequenceNumber] = true
	}
	return nil
}
