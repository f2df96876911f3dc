package domain

import (
	stderrors "errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"letterbox/errors"
)

var validate = validator.New()

// Draft is the compose-time input for a letter, before the recipient
// address has been resolved to a durable identity.
type Draft struct {
	RecipientEmail string   `validate:"required"`
	Category       Category `validate:"required"`
	Subject        string   `validate:"required"`
	Content        string   `validate:"required"`
}

// ValidateDraft checks a draft before it may reach the delivery store.
// Pure and side-effect free: no store or network access.
//
// The struct tags catch empty fields; the explicit checks below catch
// whitespace-only values and unrecognized categories, which the tags
// cannot express.
func ValidateDraft(draft Draft) error {
	if err := validate.Struct(draft); err != nil {
		var fieldErrs validator.ValidationErrors
		if stderrors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return &errors.ValidationError{Field: fieldErrs[0].Field()}
		}
		return err
	}

	if strings.TrimSpace(draft.RecipientEmail) == "" {
		return &errors.ValidationError{Field: "RecipientEmail"}
	}
	if !draft.Category.Valid() {
		return &errors.ValidationError{Field: "Category"}
	}
	if strings.TrimSpace(draft.Subject) == "" {
		return &errors.ValidationError{Field: "Subject"}
	}
	if strings.TrimSpace(draft.Content) == "" {
		return &errors.ValidationError{Field: "Content"}
	}
	return nil
}
