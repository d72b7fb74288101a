package types

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

type Validater interface {
	Validate() map[string]string
}

type ChatParams struct {
	Message string   `json:"message" validate:"required"`
	History []string `json:"history"`
}

type ChatResponse struct {
	ID        string    `json:"id"`
	Answer    string    `json:"answer"`
	Route     string    `json:"route"`
	Timestamp time.Time `json:"timestamp"`
}

func Validate(v Validater) map[string]string {
	return v.Validate()
}

func (params *ChatParams) Validate() map[string]string {
	validate := validator.New()
	if err := validate.Struct(params); err != nil {
		errs := err.(validator.ValidationErrors)
		errors := make(map[string]string)
		for _, e := range errs {
			errors[e.Field()] = fmt.Sprintf("failed on '%s' tag", e.Tag())
		}
		return errors
	}
	return nil
}
