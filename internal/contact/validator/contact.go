package validator

import (
	"errors"
	"fmt"
	"strings"

	"lumis/pkg/model"

	"github.com/go-playground/validator/v10"
)

type Rule string

const (
	RuleRequiredFields Rule = "required_fields"
	RuleSchedule       Rule = "schedule"
	RuleEmailFormat    Rule = "email_format"
)

// ValidationError is the first rule a form violated, with the fields that
// broke it and the notification shown to the visitor.
type ValidationError struct {
	Rule        Rule     `json:"rule"`
	Fields      []string `json:"fields"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
}

func (v *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Rule, strings.Join(v.Fields, ", "))
}

type requiredFields struct {
	Name    string `validate:"required"`
	Email   string `validate:"required"`
	Message string `validate:"required"`
}

type schedule struct {
	Mode model.FormMode
	Date string `validate:"required_if=Mode appointment"`
	Time string `validate:"required_if=Mode appointment"`
}

type emailFormat struct {
	Email string `validate:"email"`
}

type check struct {
	rule        Rule
	title       string
	description string
	project     func(state model.ContactFormState, mode model.FormMode) any
}

// checks run in priority order; only the first failure is reported.
var checks = []check{
	{
		rule:        RuleRequiredFields,
		title:       "Please fill in required fields",
		description: "Name, email, and message are required.",
		project: func(s model.ContactFormState, _ model.FormMode) any {
			return requiredFields{
				Name:    strings.TrimSpace(s.Name),
				Email:   strings.TrimSpace(s.Email),
				Message: strings.TrimSpace(s.Message),
			}
		},
	},
	{
		rule:        RuleSchedule,
		title:       "Please select date and time",
		description: "Date and time are required for appointments.",
		project: func(s model.ContactFormState, mode model.FormMode) any {
			return schedule{Mode: mode, Date: s.DateString(), Time: strings.TrimSpace(s.Time)}
		},
	},
	{
		rule:        RuleEmailFormat,
		title:       "Please enter a valid email",
		description: "Check the email address and try again.",
		project: func(s model.ContactFormState, _ model.FormMode) any {
			return emailFormat{Email: strings.TrimSpace(s.Email)}
		},
	},
}

type FormValidator struct {
	validate *validator.Validate
}

func NewFormValidator() *FormValidator {
	return &FormValidator{
		validate: validator.New(),
	}
}

// Validate reports the first violated rule of state under mode, or nil.
// It never mutates state.
func (v *FormValidator) Validate(state model.ContactFormState, mode model.FormMode) error {
	for _, c := range checks {
		err := v.validate.Struct(c.project(state, mode))
		if err == nil {
			continue
		}

		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}

		fields := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			fields = append(fields, strings.ToLower(fe.Field()))
		}
		return &ValidationError{
			Rule:        c.rule,
			Fields:      fields,
			Title:       c.title,
			Description: c.description,
		}
	}
	return nil
}
