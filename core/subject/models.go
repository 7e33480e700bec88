package subject

import (
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/gradebook/core"
)

// Color tags a Subject is displayed with.
const (
	ColorBlue   = "bg-blue-500"
	ColorGreen  = "bg-green-500"
	ColorYellow = "bg-yellow-500"
	ColorRed    = "bg-red-500"
	ColorPurple = "bg-purple-500"
	ColorPink   = "bg-pink-500"
	ColorIndigo = "bg-indigo-500"
	ColorTeal   = "bg-teal-500"

	DefaultColor = ColorBlue
)

var Colors = []Color{
	{Name: "Azul", Value: ColorBlue},
	{Name: "Verde", Value: ColorGreen},
	{Name: "Amarillo", Value: ColorYellow},
	{Name: "Rojo", Value: ColorRed},
	{Name: "Morado", Value: ColorPurple},
	{Name: "Rosa", Value: ColorPink},
	{Name: "Índigo", Value: ColorIndigo},
	{Name: "Teal", Value: ColorTeal},
}

type Color struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func IsColor(value string) bool {
	for _, c := range Colors {
		if c.Value == value {
			return true
		}
	}
	return false
}

type Subject struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	CreatedAt   core.Date `json:"created_at"`
}

// NewSubject contains information needed to create a new Subject.
type NewSubject struct {
	Name        string    `json:"name" validate:"required,min=2"`
	Description string    `json:"description" validate:"required,min=10"`
	Color       string    `json:"color" validate:"required,subjectcolor"`
	CreatedAt   core.Date `json:"created_at"`
}

func (ns *NewSubject) Validate(validate *validator.Validate) error {
	ns.Name = core.CleanString(ns.Name)
	ns.Description = core.CleanString(ns.Description)
	ns.Color = core.CleanString(ns.Color, true /* lower */)
	if ns.Color == "" {
		ns.Color = DefaultColor
	}
	if ns.CreatedAt.IsZero() {
		ns.CreatedAt = core.Today()
	}
	return validate.Struct(ns)
}

// UpdateSubject defines what information may be provided to modify an existing Subject.
// Every field replaces the stored one; blank fields keep the original value.
type UpdateSubject struct {
	Name        string    `json:"name" validate:"required,min=2"`
	Description string    `json:"description" validate:"required,min=10"`
	Color       string    `json:"color" validate:"required,subjectcolor"`
	CreatedAt   core.Date `json:"created_at"`
}

func (us *UpdateSubject) Validate(orig Subject, validate *validator.Validate) error {
	if name := core.CleanString(us.Name); name != "" {
		us.Name = name
	} else {
		us.Name = orig.Name
	}
	if desc := core.CleanString(us.Description); desc != "" {
		us.Description = desc
	} else {
		us.Description = orig.Description
	}
	if color := core.CleanString(us.Color, true /* lower */); color != "" {
		us.Color = color
	} else {
		us.Color = orig.Color
	}
	if us.CreatedAt.IsZero() {
		us.CreatedAt = orig.CreatedAt
	}
	return validate.Struct(us)
}

type QueryFilter struct {
	Search string `query:"search"`
}

func (qf *QueryFilter) Clean() {
	qf.Search = core.CleanString(qf.Search)
}
