package utils

import (
	"fmt"
	"os"
	"strings"
)

// ValidationError represents a validation error with context
type ValidationError struct {
	Field   string
	Value   interface{}
	Message string
}

func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Validator represents a validation function
type Validator[T any] func(T) error

// ValidatorChain allows chaining multiple validators
type ValidatorChain[T any] struct {
	validators []Validator[T]
}

// NewValidatorChain creates a new validator chain
func NewValidatorChain[T any](validators ...Validator[T]) *ValidatorChain[T] {
	return &ValidatorChain[T]{validators: validators}
}

// Add adds a validator to the chain
func (vc *ValidatorChain[T]) Add(validator Validator[T]) *ValidatorChain[T] {
	vc.validators = append(vc.validators, validator)
	return vc
}

// Validate runs all validators in the chain, stopping at the first failure
func (vc *ValidatorChain[T]) Validate(value T) error {
	for _, validator := range vc.validators {
		if err := validator(value); err != nil {
			return err
		}
	}
	return nil
}

// NotEmpty validates that a string is not empty or blank
func NotEmpty(field string) Validator[string] {
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return ValidationError{
				Field:   field,
				Value:   value,
				Message: "cannot be empty",
			}
		}
		return nil
	}
}

// HasPrefix validates that a string starts with the given prefix
func HasPrefix(field, prefix string) Validator[string] {
	return func(value string) error {
		if !strings.HasPrefix(value, prefix) {
			return ValidationError{
				Field:   field,
				Value:   value,
				Message: fmt.Sprintf("must start with '%s'", prefix),
			}
		}
		return nil
	}
}

// IsOneOf validates that a value is one of the allowed values
func IsOneOf[T comparable](field string, allowed ...T) Validator[T] {
	return func(value T) error {
		for _, a := range allowed {
			if value == a {
				return nil
			}
		}
		return ValidationError{
			Field:   field,
			Value:   value,
			Message: fmt.Sprintf("must be one of %v", allowed),
		}
	}
}

// IsDirectory validates that a path names an existing directory
func IsDirectory(field string) Validator[string] {
	return func(value string) error {
		info, err := os.Stat(value)
		if err != nil {
			return ValidationError{
				Field:   field,
				Value:   value,
				Message: fmt.Sprintf("cannot access '%s'", value),
			}
		}
		if !info.IsDir() {
			return ValidationError{
				Field:   field,
				Value:   value,
				Message: fmt.Sprintf("'%s' is not a directory", value),
			}
		}
		return nil
	}
}
