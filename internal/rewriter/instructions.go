package rewriter

import (
	"strings"

	"github.com/heartmarshall/promptcraft-backend/internal/domain"
)

type instructions struct {
	tone map[domain.Tone]string
	typ  map[domain.PromptType]string
}

func newInstructions() instructions {
	return instructions{
		tone: map[domain.Tone]string{
			domain.ToneFormal:       "Use a formal, respectful tone with complete sentences and no contractions or slang.",
			domain.ToneCasual:       "Use a relaxed, conversational tone as if writing to a colleague you know well.",
			domain.ToneFriendly:     "Use a warm, approachable tone that sounds helpful and positive.",
			domain.ToneProfessional: "Use a clear, confident professional tone suitable for workplace communication.",
			domain.ToneCreative:     "Use vivid, engaging language and feel free to restructure the text for impact.",
			domain.ToneConcise:      "Be as brief as possible. Remove filler and keep only what carries meaning.",
		},
		typ: map[domain.PromptType]string{
			domain.PromptTypeEmail:       "Format the result as an email with a subject line, greeting, body and sign-off.",
			domain.PromptTypeMessage:     "Format the result as a short chat or text message.",
			domain.PromptTypeExplanation: "Structure the result as a clear explanation that builds from context to detail.",
			domain.PromptTypeSummary:     "Structure the result as a summary that leads with the key point.",
			domain.PromptTypeProposal:    "Structure the result as a proposal stating the problem, the suggestion and the expected benefit.",
			domain.PromptTypeReport:      "Structure the result as a report with findings stated plainly.",
			domain.PromptTypeOther:       "Keep the original structure of the text.",
		},
	}
}

// system composes the system instruction for one rewrite call.
func (in instructions) system(tone domain.Tone, typ domain.PromptType) string {
	var b strings.Builder
	b.WriteString("You are an expert writing assistant. Rewrite the user's text so it is clearer and better written while preserving its meaning.\n")
	if s, ok := in.tone[tone]; ok {
		b.WriteString("Tone: ")
		b.WriteString(s)
		b.WriteString("\n")
	}
	if s, ok := in.typ[typ]; ok {
		b.WriteString("Format: ")
		b.WriteString(s)
		b.WriteString("\n")
	}
	b.WriteString("Return only the rewritten text without any preamble, quotes or commentary.")
	return b.String()
}
