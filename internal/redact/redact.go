// Package redact removes sensitive information from strings before they are
// logged or returned in error responses: API keys for the generative APIs,
// bearer and JWT tokens, connection strings, email addresses, file paths and
// stack traces.
package redact

import "regexp"

// Redaction placeholders.
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedJWTPlaceholder        = "[REDACTED_JWT]"
	RedactedEmailPlaceholder      = "[REDACTED_EMAIL]"
	RedactedStackPlaceholder      = "[STACK_TRACE_REDACTED]"
)

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

// rules are applied in order; earlier, more specific rules run first so later
// generic ones do not split their matches.
var rules = []rule{
	{
		regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`),
		RedactedStackPlaceholder,
	},
	{
		regexp.MustCompile(`(?i)\b(?:postgres(?:ql)?|mysql|mongodb)://[^@\s]+@`),
		RedactedCredentialPlaceholder,
	},
	{
		regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`),
		RedactedJWTPlaceholder,
	},
	{
		regexp.MustCompile(`(?i)\b(bearer\s+)[A-Za-z0-9._~+/=-]{8,}`),
		"${1}" + RedactedCredentialPlaceholder,
	},
	// Google API keys (Gemini).
	{
		regexp.MustCompile(`AIza[0-9A-Za-z_-]{20,}`),
		RedactedKeyPlaceholder,
	},
	// OpenAI keys.
	{
		regexp.MustCompile(`\bsk-[A-Za-z0-9_-]{16,}`),
		RedactedKeyPlaceholder,
	},
	{
		regexp.MustCompile(`(?i)([?&](?:key|api_key|apikey)=)[^&\s"']+`),
		"${1}" + RedactedKeyPlaceholder,
	},
	{
		regexp.MustCompile(`(?i)\b(api[_-]?key|secret|password|passwd|pwd|token)\s*[:=]\s*['"]?[^'"&\s,]{3,}['"]?`),
		RedactedCredentialPlaceholder,
	},
	{
		regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		RedactedEmailPlaceholder,
	},
	{
		regexp.MustCompile(`[A-Za-z]:\\[^\\\s]+(\\[^\\\s]+)+`),
		RedactedPathPlaceholder,
	},
	{
		regexp.MustCompile(`(^|\s)(?:/[\w.-]+){2,}`),
		"${1}" + RedactedPathPlaceholder,
	},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.replacement)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
