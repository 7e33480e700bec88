package subject

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/gradebook/core"
)

var (
	colorTag  = "subjectcolor"
	colorText = "invalid color"
)

// InitValidators registers the Subject validators.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(colorTag, colorValidation)
	core.RegisterCustomTranslation(validate, translator, colorTag, colorText)
}

// colorValidation checks that the color is one of Colors.
func colorValidation(fl validator.FieldLevel) bool {
	return IsColor(fl.Field().String())
}
