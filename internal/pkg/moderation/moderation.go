// Package moderation screens submitted comment text against a banned
// term list. It is advisory content policy, not security sanitization:
// accepted text is persisted verbatim.
package moderation

import "strings"

// DefaultWarning is used when no warning message is configured.
const DefaultWarning = "Please mind your language!"

// Filter holds the injected moderation policy. A Filter with no terms
// accepts everything.
type Filter struct {
	terms   []string
	warning string
}

// New builds a filter from a banned term list and a warning message.
// Empty terms are dropped; matching is case-insensitive.
func New(terms []string, warning string) *Filter {
	if warning == "" {
		warning = DefaultWarning
	}
	f := &Filter{warning: warning}
	for _, t := range terms {
		t = strings.TrimSpace(strings.ToLower(t))
		if t != "" {
			f.terms = append(f.terms, t)
		}
	}
	return f
}

// Warning returns the configured rejection message.
func (f *Filter) Warning() string {
	return f.warning
}

// Check reports whether text passes the filter. On rejection the second
// return value carries the warning message; the caller must not persist
// the text and should redisplay it alongside the warning.
func (f *Filter) Check(text string) (ok bool, warning string) {
	lowered := strings.ToLower(text)
	for _, term := range f.terms {
		if strings.Contains(lowered, term) {
			return false, f.warning
		}
	}
	return true, ""
}
