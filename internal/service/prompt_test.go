package service_test

import (
	"strings"
	"testing"

	"github.com/clientforge/agencymail-backend/internal/model"
	"github.com/clientforge/agencymail-backend/internal/service"
)

func TestBuildSequencePromptSubstitutesFields(t *testing.T) {
	kb := &model.KnowledgeBase{
		BusinessContext: "Sells handmade pottery",
		Products:        "Mugs and bowls",
		TargetAudience:  "Home decor enthusiasts",
		ToneOfVoice:     "Warm and artisanal",
	}

	prompt := service.BuildSequencePrompt(kb, "Spring Launch")

	for _, want := range []string{
		`"Spring Launch"`,
		"Sells handmade pottery",
		"Mugs and bowls",
		"Home decor enthusiasts",
		"Warm and artisanal",
		"Email 1: Introduction and value proposition",
		"Email 10: Final call-to-action",
		"under 60 characters",
		"150-300 words",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestBuildSequencePromptFallbacks(t *testing.T) {
	prompt := service.BuildSequencePrompt(&model.KnowledgeBase{}, "Empty KB")

	if !strings.Contains(prompt, "Not provided") {
		t.Error("expected 'Not provided' fallback for empty fields")
	}
	if !strings.Contains(prompt, "Professional and friendly") {
		t.Error("expected tone fallback 'Professional and friendly'")
	}
	if !strings.Contains(prompt, "None") {
		t.Error("expected 'None' fallback for additional context")
	}
}

func TestBuildSequencePromptDeterministic(t *testing.T) {
	kb := &model.KnowledgeBase{BusinessContext: "ctx", CampaignGoals: "goals"}
	if service.BuildSequencePrompt(kb, "X") != service.BuildSequencePrompt(kb, "X") {
		t.Fatal("same inputs must render the same prompt")
	}
}

func TestBuildRegenerationPromptNeighborContext(t *testing.T) {
	kb := &model.KnowledgeBase{BusinessContext: "ctx"}

	both := service.BuildRegenerationPrompt(kb, 5, "body of email four", "body of email six")
	if !strings.Contains(both, "Regenerate email #5") {
		t.Error("expected sequence position in prompt")
	}
	if !strings.Contains(both, "**Previous Email (for context):**\nbody of email four") {
		t.Error("expected previous email context block")
	}
	if !strings.Contains(both, "**Next Email (for context):**\nbody of email six") {
		t.Error("expected next email context block")
	}
}

func TestBuildRegenerationPromptOmitsAbsentNeighbors(t *testing.T) {
	kb := &model.KnowledgeBase{}

	first := service.BuildRegenerationPrompt(kb, 1, "", "second body")
	if strings.Contains(first, "Previous Email") {
		t.Error("position 1 must not render a previous-email section")
	}
	if !strings.Contains(first, "second body") {
		t.Error("position 1 should still carry next-email context")
	}

	last := service.BuildRegenerationPrompt(kb, 10, "ninth body", "")
	if strings.Contains(last, "Next Email") {
		t.Error("position 10 must not render a next-email section")
	}
	if !strings.Contains(last, "ninth body") {
		t.Error("position 10 should still carry previous-email context")
	}
}
