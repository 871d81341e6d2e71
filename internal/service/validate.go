package service

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

const (
	MaxListNameLength = 100
	MaxWordLength     = 200
)

var validate = validator.New()

type listInput struct {
	Name string `validate:"required,max=100"`
}

type wordInput struct {
	Word    string `validate:"required,max=200"`
	Meaning string `validate:"required,max=200"`
}

type termInput struct {
	Text string `validate:"required,max=200"`
}

type reminderInput struct {
	Hour   int `validate:"min=0,max=23"`
	Minute int `validate:"min=0,max=59"`
}

type languageInput struct {
	Language string `validate:"required,oneof=en tr ru es"`
}

// failedTag returns the first failing validation tag, "" if err is not a
// validation error
func failedTag(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Tag()
	}
	return ""
}
