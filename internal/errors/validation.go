package errors

import (
	"fmt"
	"strings"
)

// MetaValidationErrors is the metadata key holding field violations
const MetaValidationErrors = "validation_errors"

// FieldViolation is a single failed check on one input field
type FieldViolation struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// ValidationBuilder accumulates field violations. Build returns nil when
// nothing was recorded, otherwise an InvalidArgument error whose metadata
// carries the violations in insertion order.
type ValidationBuilder struct {
	violations []FieldViolation
}

// NewValidationBuilder creates an empty builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{}
}

// Field records a violation for field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.violations = append(vb.violations, FieldViolation{Field: field, Description: message})
	return vb
}

// Fieldf records a formatted violation for field
func (vb *ValidationBuilder) Fieldf(field, format string, args ...any) *ValidationBuilder {
	return vb.Field(field, fmt.Sprintf(format, args...))
}

// RequiredField records a missing required field
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// InvalidField records an invalid field with a reason
func (vb *ValidationBuilder) InvalidField(field, reason string) *ValidationBuilder {
	return vb.Fieldf(field, "is invalid: %s", reason)
}

// HasErrors reports whether any violation was recorded
func (vb *ValidationBuilder) HasErrors() bool {
	return len(vb.violations) > 0
}

// Build returns the accumulated error or nil
func (vb *ValidationBuilder) Build() error {
	if !vb.HasErrors() {
		return nil
	}

	parts := make([]string, len(vb.violations))
	for i, v := range vb.violations {
		parts[i] = fmt.Sprintf("%s: %s", v.Field, v.Description)
	}

	violations := make([]FieldViolation, len(vb.violations))
	copy(violations, vb.violations)

	return InvalidArgument(fmt.Sprintf("validation failed: %s", strings.Join(parts, "; "))).
		WithMeta(MetaValidationErrors, violations)
}

// FieldViolations returns the violations carried by a validation error
func FieldViolations(err error) []FieldViolation {
	violations, _ := GetMeta(err)[MetaValidationErrors].([]FieldViolation)
	return violations
}

// ValidateRequired records a violation when value is blank
func ValidateRequired(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
}

// ValidateRange records a violation when value is outside [minValue, maxValue]
func ValidateRange(field string, value, minValue, maxValue int, vb *ValidationBuilder) {
	if value < minValue || value > maxValue {
		vb.Fieldf(field, "must be between %d and %d", minValue, maxValue)
	}
}

// ValidateEnum records a violation when value is not one of allowed
func ValidateEnum(field, value string, allowed []string, vb *ValidationBuilder) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	vb.Fieldf(field, "must be one of: %s", strings.Join(allowed, ", "))
}
