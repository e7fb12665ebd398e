package rewriter

import (
	"strings"

	"github.com/heartmarshall/promptcraft-backend/internal/domain"
)

var classifyRules = []struct {
	kind    domain.FailureKind
	needles []string
}{
	{domain.FailureTimeout, []string{"timeout", "timed out", "deadline exceeded"}},
	{domain.FailureAuth, []string{"api key", "api_key", "apikey", "unauthorized", "unauthenticated", "authentication", "permission denied", "forbidden", "401", "403"}},
	{domain.FailureNetwork, []string{"network", "connection", "econnrefused", "enotfound", "no such host", "dial tcp", "unexpected eof"}},
}

// classify maps a provider failure message to a failure kind.
// Rules are checked in order; the first match wins.
func classify(msg string) domain.FailureKind {
	lower := strings.ToLower(msg)
	for _, rule := range classifyRules {
		for _, n := range rule.needles {
			if strings.Contains(lower, n) {
				return rule.kind
			}
		}
	}
	return domain.FailureUnknown
}

func failureMessage(kind domain.FailureKind) string {
	switch kind {
	case domain.FailureNetwork:
		return "Unable to connect to AI service"
	case domain.FailureTimeout:
		return "AI service request timeout"
	case domain.FailureAuth:
		return "AI service authentication failed"
	default:
		return "AI service error"
	}
}
