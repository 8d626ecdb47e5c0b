package service

import (
	"fmt"
	"strings"

	"github.com/clientforge/agencymail-backend/internal/model"
)

// Fallbacks rendered into prompts when a knowledge-base field is empty.
const (
	fallbackNotProvided = "Not provided"
	fallbackTone        = "Professional and friendly"
	fallbackNone        = "None"
)

func orFallback(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

// BuildSequencePrompt renders the instruction set for generating a full
// ten-email sequence from the workspace's knowledge base. Rendering is
// deterministic: same inputs, same prompt.
func BuildSequencePrompt(kb *model.KnowledgeBase, campaignName string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Generate a sequence of 10 marketing emails for a campaign called %q.\n\n", campaignName)

	sb.WriteString("**Business Information:**\n")
	sb.WriteString(orFallback(kb.BusinessContext, fallbackNotProvided) + "\n\n")

	sb.WriteString("**Products/Services:**\n")
	sb.WriteString(orFallback(kb.Products, fallbackNotProvided) + "\n")
	sb.WriteString(orFallback(kb.Services, fallbackNotProvided) + "\n\n")

	sb.WriteString("**Target Audience:**\n")
	sb.WriteString(orFallback(kb.TargetAudience, fallbackNotProvided) + "\n\n")

	sb.WriteString("**Campaign Goals:**\n")
	sb.WriteString(orFallback(kb.CampaignGoals, fallbackNotProvided) + "\n\n")

	sb.WriteString("**Tone of Voice:**\n")
	sb.WriteString(orFallback(kb.ToneOfVoice, fallbackTone) + "\n\n")

	sb.WriteString("**Additional Context:**\n")
	sb.WriteString(orFallback(kb.AdditionalInfo, fallbackNone) + "\n\n")

	sb.WriteString(`**Requirements:**
1. Create a cohesive 10-email sequence that builds a relationship with the audience
2. Each email should provide value and move the reader closer to the campaign goal
3. Use the specified tone of voice consistently
4. Include clear calls-to-action in each email
5. Make each email engaging and personalized
6. Follow this general structure:
   - Email 1: Introduction and value proposition
   - Email 2-3: Education and problem awareness
   - Email 4-5: Solution presentation
   - Email 6-7: Social proof and testimonials
   - Email 8-9: Urgency and special offers
   - Email 10: Final call-to-action

**Format:**
- Subject lines should be compelling and under 60 characters
- Preview text should complement the subject line
- Body text should be conversational and scannable
- HTML should include proper formatting with headings, paragraphs, and links
- Each email should be 150-300 words

Generate the complete sequence now.`)

	return sb.String()
}

// BuildRegenerationPrompt renders the instruction set for replacing a single
// email at the given sequence position. Neighbor bodies are included as
// context only when present; an absent neighbor contributes no section at all.
func BuildRegenerationPrompt(kb *model.KnowledgeBase, sequenceNumber int, previousBody, nextBody string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Regenerate email #%d in a 10-email marketing sequence.\n\n", sequenceNumber)

	sb.WriteString("**Business Information:**\n")
	sb.WriteString(orFallback(kb.BusinessContext, fallbackNotProvided) + "\n\n")

	sb.WriteString("**Products/Services:**\n")
	sb.WriteString(orFallback(kb.Products, fallbackNotProvided) + "\n")
	sb.WriteString(orFallback(kb.Services, fallbackNotProvided) + "\n\n")

	sb.WriteString("**Target Audience:**\n")
	sb.WriteString(orFallback(kb.TargetAudience, fallbackNotProvided) + "\n\n")

	sb.WriteString("**Campaign Goals:**\n")
	sb.WriteString(orFallback(kb.CampaignGoals, fallbackNotProvided) + "\n\n")

	sb.WriteString("**Tone of Voice:**\n")
	sb.WriteString(orFallback(kb.ToneOfVoice, fallbackTone) + "\n\n")

	if previousBody != "" {
		sb.WriteString("**Previous Email (for context):**\n")
		sb.WriteString(previousBody + "\n\n")
	}
	if nextBody != "" {
		sb.WriteString("**Next Email (for context):**\n")
		sb.WriteString(nextBody + "\n\n")
	}

	fmt.Fprintf(&sb, "Generate a fresh version of email #%d that fits well in the sequence.", sequenceNumber)

	return sb.String()
}
