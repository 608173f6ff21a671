package handlers

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/learnpath/site/ui"
)

var validate = validator.New()

type signInForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=8"`
}

type signUpForm struct {
	Name     string `form:"name" validate:"required,max=80"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=8"`
	Confirm  string `form:"confirm" validate:"required,eqfield=Password"`
}

var fieldNames = map[string]string{
	"Name":     "Full name",
	"Email":    "Email address",
	"Password": "Password",
	"Confirm":  "Password confirmation",
}

// validationMessages turns validator errors into one sentence per field.
func validationMessages(err error) []string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(errs))
	for _, fe := range errs {
		name := fieldNames[fe.Field()]
		switch fe.Tag() {
		case "required":
			out = append(out, name+" is required")
		case "email":
			out = append(out, name+" must be a valid email")
		case "min":
			out = append(out, fmt.Sprintf("%s must be at least %s characters", name, fe.Param()))
		case "max":
			out = append(out, fmt.Sprintf("%s must be at most %s characters", name, fe.Param()))
		case "eqfield":
			out = append(out, "Passwords do not match")
		default:
			out = append(out, name+" is invalid")
		}
	}
	return out
}

// authMode reads the requested mode from the query on page loads or from the
// hidden form field on submit, falling back to sign in.
func authMode(c *fiber.Ctx) string {
	mode := c.Query("mode")
	if mode == "" {
		mode = c.FormValue("mode")
	}
	if mode == ui.AuthSignUp {
		return ui.AuthSignUp
	}
	return ui.AuthSignIn
}

// HandleAuth displays the sign in / sign up page
func HandleAuth(c *fiber.Ctx) error {
	mode := ui.NewAuthMode()
	mode.Select(authMode(c))
	return render(c, ui.AuthPage(c.Path(), mode))
}

// HandleAuthForm returns the mode toggle and form fragment
func HandleAuthForm(c *fiber.Ctx) error {
	mode := ui.NewAuthMode()
	mode.Select(authMode(c))
	return render(c, ui.AuthPanel(mode))
}

// HandleAuthValidate checks the submitted fields. It never creates accounts,
// sessions or tokens.
func HandleAuthValidate(c *fiber.Ctx) error {
	var form any = &signInForm{}
	if authMode(c) == ui.AuthSignUp {
		form = &signUpForm{}
	}
	if err := c.BodyParser(form); err != nil {
		return render(c, ui.ValidationError("Could not read the form"))
	}
	if err := validate.Struct(form); err != nil {
		return render(c, ui.ValidationError(validationMessages(err)...))
	}
	return render(c, ui.SuccessMessage("Looks good! Accounts open soon; we'll let you know when you can sign in."))
}
