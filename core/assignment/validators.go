package assignment

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/gradebook/core"
)

var (
	kindTag  = "assignmentkind"
	kindText = "invalid assignment kind"

	dueAfterCreationTag  = "dueaftercreation"
	dueAfterCreationText = "due date must be after the creation date"

	invalidSubjectText = "a valid subject must be selected"
)

// InitValidators registers the Assignment validators.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(kindTag, kindValidation)
	core.RegisterCustomTranslation(validate, translator, kindTag, kindText)

	validate.RegisterStructValidation(assignmentStructValidation, NewAssignment{}, UpdateAssignment{})
	core.RegisterCustomTranslation(validate, translator, dueAfterCreationTag, dueAfterCreationText)
}

func kindValidation(fl validator.FieldLevel) bool {
	return Kind(fl.Field().String()).IsValid()
}

// assignmentStructValidation does struct level validation on NewAssignment and UpdateAssignment.
func assignmentStructValidation(sl validator.StructLevel) {
	switch a := sl.Current().Interface().(type) {
	case NewAssignment:
		validateDueDate(a.CreatedAt, a.DueDate, sl)
	case UpdateAssignment:
		validateDueDate(a.CreatedAt, a.DueDate, sl)
	}
}

// validateDueDate requires the due date to fall strictly after the creation date.
func validateDueDate(createdAt, dueDate core.Date, sl validator.StructLevel) {
	if dueDate.IsZero() || createdAt.IsZero() {
		return // `required` reports missing dates
	}
	if !dueDate.After(createdAt) {
		sl.ReportError(dueDate, "due_date", "DueDate", dueAfterCreationTag, "")
	}
}
