package httpx

import (
	"cinecatalog/tmdb"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())

	validate.RegisterValidation("mediatype", func(fl validator.FieldLevel) bool {
		switch tmdb.MediaType(fl.Field().String()) {
		case tmdb.MediaTypeMovie, tmdb.MediaTypeTV:
			return true
		}
		return false
	})

	return &Validator{
		validate: validate,
	}
}

func (v *Validator) Validate(target any) error {
	err := v.validate.Struct(target)
	return err
}
