// Package validation checks candidate records against declarative schemas.
// It is a pure function of (schema, input): no storage is touched and only the
// first violated rule is reported per call.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/wellnest/backend/domain"
)

// UUIDPattern matches the canonical lowercase-hex UUID form used for every
// identifier accepted by the API.
var UUIDPattern = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Rule describes the constraints applied to a single string field.
// Constraints are evaluated in declaration order: presence, type, emptiness,
// then format.
type Rule struct {
	Field    string
	Required bool
	MinLen   int
	Email    bool
	Pattern  *regexp.Regexp
	Enum     []string
}

// Schema is an ordered list of field rules. Rule order decides which violation
// wins when several fields are invalid at once.
type Schema []Rule

// Validate checks input against the schema and returns the first violation as
// a *domain.Error with code VALIDATION, or nil when every rule holds. Fields
// absent from the schema are ignored.
func (s Schema) Validate(input map[string]any) error {
	for _, rule := range s {
		if err := rule.check(input); err != nil {
			return err
		}
	}
	return nil
}

func (r Rule) check(input map[string]any) error {
	raw, present := input[r.Field]
	if !present || raw == nil {
		if r.Required {
			return violation(r.Field, "is required")
		}
		return nil
	}

	value, ok := raw.(string)
	if !ok {
		return violation(r.Field, "must be a string")
	}
	if value == "" {
		if r.Required {
			return violation(r.Field, "is not allowed to be empty")
		}
		return nil
	}
	if r.MinLen > 0 && len(value) < r.MinLen {
		return violation(r.Field, fmt.Sprintf("length must be at least %d characters long", r.MinLen))
	}
	if r.Email && !emailPattern.MatchString(value) {
		return violation(r.Field, "must be a valid email")
	}
	if r.Pattern != nil && !r.Pattern.MatchString(value) {
		return violation(r.Field, fmt.Sprintf("with value %q fails to match the required pattern: %s", value, r.Pattern.String()))
	}
	if len(r.Enum) > 0 && !contains(r.Enum, value) {
		return violation(r.Field, fmt.Sprintf("must be one of [%s]", strings.Join(r.Enum, ", ")))
	}
	return nil
}

func violation(field, desc string) error {
	return domain.NewValidationError(field, fmt.Sprintf("%s %s", field, desc))
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
