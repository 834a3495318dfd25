package validate

import (
	"fmt"
	"net/mail"
	"sort"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

type Issue struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// Error is the validation failure taxon: it names every offending field
// and the constraint it broke. It is produced before any storage call.
type Error struct {
	Issues []Issue
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, fmt.Sprintf("%s %s", issue.Field, issue.Reason))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Validator collects field issues. It is pure: it never touches storage.
type Validator struct {
	issues []Issue
}

func New() *Validator {
	return &Validator{issues: make([]Issue, 0, 4)}
}

func (v *Validator) Add(field, reason string) {
	field = strings.TrimSpace(field)
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return
	}
	v.issues = append(v.issues, Issue{Field: field, Reason: reason})
}

func (v *Validator) Required(field, value string) {
	if strings.TrimSpace(value) == "" {
		v.Add(field, "is required")
	}
}

func (v *Validator) Email(field, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	if _, err := mail.ParseAddress(value); err != nil {
		v.Add(field, "must be a valid email address")
	}
}

func (v *Validator) Enum(field, value string, allowed []string) {
	if value == "" {
		return
	}
	for _, candidate := range allowed {
		if value == candidate {
			return
		}
	}
	v.Add(field, "must be one of: "+strings.Join(allowed, ", "))
}

func (v *Validator) Positive(field string, value float64) {
	if value <= 0 {
		v.Add(field, "must be greater than zero")
	}
}

func (v *Validator) PositiveInt(field string, value int) {
	if value < 1 {
		v.Add(field, "must be at least 1")
	}
}

func (v *Validator) NonNegative(field string, value float64) {
	if value < 0 {
		v.Add(field, "must not be negative")
	}
}

func (v *Validator) Range(field string, value, min, max float64) {
	if value < min || value > max {
		v.Add(field, fmt.Sprintf("must be between %g and %g", min, max))
	}
}

// Date validates a date-like string and returns it in canonical
// YYYY-MM-DD form. RFC3339 inputs have their time component truncated.
// Empty input is left to Required and returned unchanged.
func (v *Validator) Date(field, raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return raw
	}
	canonical, err := CanonicalDate(raw)
	if err != nil {
		v.Add(field, "must be a valid date in YYYY-MM-DD format")
		return raw
	}
	return canonical
}

// DateTime validates an instant: RFC3339, or a bare date taken as
// midnight UTC. Unlike Date it keeps the time component.
func (v *Validator) DateTime(field, raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return parsed
	}
	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		v.Add(field, "must be a valid RFC3339 timestamp or YYYY-MM-DD date")
		return time.Time{}
	}
	return parsed
}

func (v *Validator) DateOrder(startField, start, endField, end string) {
	if start == "" || end == "" {
		return
	}
	if end < start {
		v.Add(endField, "must be on or after "+startField)
	}
}

func (v *Validator) HasIssues() bool {
	return len(v.issues) > 0
}

// Err returns nil when every check passed, otherwise an *Error with the
// issues sorted by field then reason for stable caller messaging.
func (v *Validator) Err() error {
	if len(v.issues) == 0 {
		return nil
	}
	out := make([]Issue, len(v.issues))
	copy(out, v.issues)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Field == out[j].Field {
			return out[i].Reason < out[j].Reason
		}
		return out[i].Field < out[j].Field
	})
	return &Error{Issues: out}
}

// CanonicalDate accepts RFC3339 or YYYY-MM-DD and returns YYYY-MM-DD.
func CanonicalDate(raw string) (string, error) {
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return parsed.Format(dateLayout), nil
	}
	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		return "", err
	}
	return parsed.Format(dateLayout), nil
}
