package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/learnpath/site/toggle"
)

const (
	AuthSignIn = "signin"
	AuthSignUp = "signup"

	authPanelID = "auth-panel"
)

// NewAuthMode returns the sign in / sign up toggle with sign in active.
func NewAuthMode() *toggle.Group[string] {
	return toggle.New(AuthSignIn, AuthSignIn, AuthSignUp)
}

func authModeLabel(mode string) string {
	if mode == AuthSignUp {
		return "Sign Up"
	}
	return "Sign In"
}

func AuthPage(path string, mode *toggle.Group[string]) g.Node {
	return Page(
		authModeLabel(mode.Active()),
		path,
		[]g.Node{
			Div(
				Class("max-w-md mx-auto px-4 py-16"),
				Div(
					Class("bg-white rounded-2xl shadow-lg p-8"),
					AuthPanel(mode),
				),
			),
		},
	)
}

// AuthPanel is the mode toggle plus the matching form. Nothing here signs
// anyone in; submitting only checks the fields.
func AuthPanel(mode *toggle.Group[string]) g.Node {
	options := make([]toggleOption, 0, 2)
	for _, m := range mode.Options() {
		options = append(options, toggleOption{
			Label:  authModeLabel(m),
			Active: mode.IsActive(m),
			URL:    "/auth/form?mode=" + m,
		})
	}

	signUp := mode.IsActive(AuthSignUp)
	heading := "Welcome back"
	if signUp {
		heading = "Create your account"
	}

	fields := []g.Node{
		Input(Type("hidden"), Name("mode"), Value(mode.Active())),
	}
	if signUp {
		fields = append(fields, formGroup("Full name", "name", textInput("name", "text", "Jane Doe")))
	}
	fields = append(fields,
		formGroup("Email address", "email", textInput("email", "email", "you@example.com")),
		formGroup("Password", "password", textInput("password", "password", "At least 8 characters")),
	)
	if signUp {
		fields = append(fields, formGroup("Confirm password", "confirm", textInput("confirm", "password", "Repeat your password")))
	}
	fields = append(fields, validateButton(authModeLabel(mode.Active())))

	return Div(
		ID(authPanelID),
		Data("mode", mode.Active()),
		Div(Class("flex justify-center mb-8"), toggleGroup("Account mode", "#"+authPanelID, options)),
		H1(Class("text-2xl font-bold text-center mb-6"), g.Text(heading)),
		formContainer("authForm", fields...),
		resultContainer(),
	)
}
