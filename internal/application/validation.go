package application

import (
	"fmt"
	"strings"

	"resourcedex/internal/domain"
)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", fieldName),
		}
	}
	return nil
}

// ValidateField resolves a user-supplied column name.
// Returns a ValidationError wrapping ErrUnknownField when it matches nothing.
func ValidateField(argName, name string) (domain.Field, error) {
	f := domain.ParseField(name)
	if f == domain.FieldUnknown {
		return domain.FieldUnknown, &ValidationError{
			Field:   argName,
			Message: fmt.Sprintf("%v %q (expected one of %s)", ErrUnknownField, name, fieldNames(domain.Columns)),
			Err:     ErrUnknownField,
		}
	}
	return f, nil
}

// ValidateFilterField resolves a column name that must accept an exact filter.
// A known but unfilterable column yields a ValidationError wrapping ErrNotFilterable.
func ValidateFilterField(argName, name string) (domain.Field, error) {
	f, err := ValidateField(argName, name)
	if err != nil {
		return f, err
	}
	if !f.IsFilterable() {
		return domain.FieldUnknown, &ValidationError{
			Field:   argName,
			Message: fmt.Sprintf("%v: %s (expected one of %s)", ErrNotFilterable, f.Key(), fieldNames(domain.FilterFields)),
			Err:     ErrNotFilterable,
		}
	}
	return f, nil
}

func fieldNames(fields []domain.Field) string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name()
	}
	return strings.Join(names, ", ")
}
