package ui

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// ---- Form Components ----

func formContainer(formID string, content ...g.Node) g.Node {
	return Form(
		ID(formID),
		Class("space-y-6"),
		g.Group(content),
	)
}

func formGroup(labelText string, fieldID string, input g.Node) g.Node {
	return Div(
		Class("space-y-2"),
		Label(For(fieldID), Class("block text-sm font-medium text-gray-700"), g.Text(labelText)),
		input,
	)
}

func textInput(id, inputType, placeholder string) g.Node {
	return Input(
		Type(inputType),
		ID(id),
		Name(id),
		Placeholder(placeholder),
		Class("w-full p-3 border border-gray-300 rounded-lg focus:ring-2 focus:ring-blue-600"),
		Required(),
	)
}

// validateButton posts the enclosing form to the field validator and shows the
// result below the form.
func validateButton(text string) g.Node {
	return button(text,
		withType("submit"),
		withClass("w-full py-3"),
		withAttributes(
			hx.Post("/api/auth/validate"),
			hx.Target("#result"),
			hx.Swap("innerHTML"),
		),
	)
}
