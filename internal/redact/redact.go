// Package redact provides utilities for redacting sensitive information from
// strings before they are logged or returned in error responses. This package
// helps prevent the accidental leakage of API keys, hosts, file paths, and
// other sensitive data that might be included in error messages.
package redact

import "regexp"

// Constants for redaction placeholders
const (
	RedactedKeyPlaceholder  = "[REDACTED_KEY]"
	RedactedPathPlaceholder = "[REDACTED_PATH]"
	RedactedHostPlaceholder = "[REDACTED_HOST]"
)

// Precompiled regex patterns
var (
	// API keys and tokens (the Gemini key is the one real secret here)
	apiKeyRegex = regexp.MustCompile(
		`(?i)(api[_-]?key|token|secret|key|auth)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`,
	)

	// File paths (prompt template paths, config file paths)
	unixPathRegex = regexp.MustCompile(`(/[\w.-]+){2,}`)
	winPathRegex  = regexp.MustCompile(`[A-Za-z]:\\[^\\]+(\\[^\\]+)+`)

	// Upstream hosts with optional ports
	hostPortRegex = regexp.MustCompile(
		`\b(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,}(?::\d{1,5})?\b`,
	)

	// Stack trace fragments
	stackTraceRegex = regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`)

	// All patterns and their placeholders, applied in order
	patterns = []*regexp.Regexp{
		apiKeyRegex, unixPathRegex, winPathRegex, hostPortRegex, stackTraceRegex,
	}

	patternPlaceholders = map[*regexp.Regexp]string{
		apiKeyRegex:     RedactedKeyPlaceholder,
		unixPathRegex:   RedactedPathPlaceholder,
		winPathRegex:    RedactedPathPlaceholder,
		hostPortRegex:   RedactedHostPlaceholder,
		stackTraceRegex: "[STACK_TRACE_REDACTED]",
	}
)

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, pattern := range patterns {
		result = pattern.ReplaceAllString(result, patternPlaceholders[pattern])
	}

	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
