// Package validation provides custom validation rules for the application.
package validation

import (
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/idgen/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// ASCII validates that a string only holds printable ASCII characters
var ASCII = validation.NewStringRuleWithError(
	func(s string) bool {
		for i := 0; i < len(s); i++ {
			if s[i] < 0x20 || s[i] > 0x7e {
				return false
			}
		}
		return true
	},
	validation.NewError("validation_ascii", "must contain only printable ASCII characters"),
)

// Separator validates a slug separator, which is either "-" or "_"
var Separator = validation.In("-", "_").Error("must be either '-' or '_'")

// WordList validates that every word is non-blank printable ASCII without spaces
var WordList = validation.By(func(value interface{}) error {
	words, ok := value.([]string)
	if !ok {
		return validation.NewError("validation_word_list_type", "must be a list of strings")
	}
	for _, w := range words {
		if strings.TrimSpace(w) == "" {
			return validation.NewError("validation_word_blank", "words must not be blank")
		}
		if strings.ContainsAny(w, " \t\r\n") {
			return validation.NewError("validation_word_whitespace", "words must not contain whitespace")
		}
		if err := ASCII.Validate(w); err != nil {
			return err
		}
	}
	return nil
})

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)
