package rierr

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationBuilder accumulates field-scoped messages. The zero value is ready to use.
type ValidationBuilder struct {
	fields map[string][]string
}

func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{}
}

func (b *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	if b.fields == nil {
		b.fields = make(map[string][]string)
	}

	b.fields[field] = append(b.fields[field], message)
	return b
}

func (b *ValidationBuilder) Fieldf(field, format string, args ...any) *ValidationBuilder {
	return b.Field(field, fmt.Sprintf(format, args...))
}

func (b *ValidationBuilder) Required(field, value string) *ValidationBuilder {
	if strings.TrimSpace(value) == "" {
		b.Field(field, "This field is required.")
	}

	return b
}

func (b *ValidationBuilder) MaxLength(field, value string, max int) *ValidationBuilder {
	if len([]rune(value)) > max {
		b.Fieldf(field, "Ensure this field has no more than %d characters.", max)
	}

	return b
}

func (b *ValidationBuilder) Range(field string, value, min, max int) *ValidationBuilder {
	switch {
	case value < min:
		b.Fieldf(field, "Ensure this value is greater than or equal to %d.", min)
	case value > max:
		b.Fieldf(field, "Ensure this value is less than or equal to %d.", max)
	}

	return b
}

func (b *ValidationBuilder) Min(field string, value, min int) *ValidationBuilder {
	if value < min {
		b.Fieldf(field, "Ensure this value is greater than or equal to %d.", min)
	}

	return b
}

func (b *ValidationBuilder) HasErrors() bool {
	return len(b.fields) > 0
}

// Build returns nil when nothing was recorded, otherwise an INVALID_ARGUMENT *Error whose
// message lists the fields in sorted order.
func (b *ValidationBuilder) Build() error {
	if !b.HasErrors() {
		return nil
	}

	names := make([]string, 0, len(b.fields))
	for name := range b.fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, strings.Join(b.fields[name], " ")))
	}

	return &Error{
		Code:    CodeInvalidArgument,
		Message: strings.Join(parts, "; "),
		Fields:  b.fields,
	}
}
