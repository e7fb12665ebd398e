package rewriter

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/heartmarshall/promptcraft-backend/internal/domain"
)

var (
	reWhitespace = regexp.MustCompile(`\s+`)
	rePronounI   = regexp.MustCompile(`\bi\b`)
	reShortYou   = regexp.MustCompile(`\bu\b`)
)

const (
	formalPrefix   = "I would like to formally request assistance with the following: "
	friendlyPrefix = "Hi there! "
	friendlySuffix = " Hope this helps!"
	casualPrefix   = "Hey, "

	emailSubject   = "Subject: Request for Assistance"
	emailGreeting  = "Dear Recipient,"
	emailSignature = "Best regards,\n[Your Name]."
)

// Fallback produces an offline rewrite of text. It is deterministic and the
// result always ends in terminal punctuation.
func Fallback(text string, tone domain.Tone, typ domain.PromptType) string {
	s := strings.TrimSpace(reWhitespace.ReplaceAllString(text, " "))
	s = rePronounI.ReplaceAllString(s, "I")
	s = reShortYou.ReplaceAllString(s, "you")
	s = capitalizeFirst(s)

	if !endsWithTerminal(s) {
		s += "."
	}

	switch tone {
	case domain.ToneFormal:
		s = formalPrefix + s
	case domain.ToneFriendly:
		s = friendlyPrefix + s + friendlySuffix
	case domain.ToneCasual:
		s = casualPrefix + s
	}

	if typ == domain.PromptTypeEmail {
		s = emailSubject + "\n\n" + emailGreeting + "\n\n" + s + "\n\n" + emailSignature
	}

	return s
}

func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || !unicode.IsLower(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func endsWithTerminal(s string) bool {
	return strings.HasSuffix(s, ".") || strings.HasSuffix(s, "!") || strings.HasSuffix(s, "?")
}
