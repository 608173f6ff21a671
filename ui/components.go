package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ---- Message Components ----

func ValidationError(messages ...string) g.Node {
	items := make([]g.Node, 0, len(messages))
	for _, m := range messages {
		items = append(items, Li(g.Text(m)))
	}
	return Div(
		Class("bg-red-100 border border-red-500 text-red-700 px-4 py-3 rounded"),
		Role("alert"),
		Ul(Class("list-disc list-inside space-y-1"), g.Group(items)),
	)
}

func SuccessMessage(message string) g.Node {
	return Div(
		Class("bg-green-100 border border-green-500 text-green-700 px-4 py-3 rounded"),
		Role("status"),
		g.Text(message),
	)
}

func resultContainer() g.Node {
	return Div(
		ID("result"),
		Class("mt-4"),
	)
}

// Unavailable is shown in place of content a provider could not supply.
func Unavailable(title, message string) g.Node {
	return Div(
		Class("text-center py-16"),
		H2(Class("text-2xl font-bold text-gray-900 mb-2"), g.Text(title)),
		P(Class("text-gray-600 mb-6"), g.Text(message)),
	)
}

func ErrorPage(code int, message string) g.Node {
	return Page(
		fmt.Sprintf("Error %d", code),
		"",
		[]g.Node{
			banner(fmt.Sprintf("Error %d", code), ""),
			section(
				Unavailable("Something went wrong", message),
				Div(Class("text-center"), button("Back to home", withHref("/"))),
			),
		},
	)
}

func ratingBadge(rating float64) g.Node {
	return Span(
		Class("inline-flex items-center text-sm text-gray-700"),
		smallIcon(iconStar, "Rating", "mr-1"),
		g.Text(fmt.Sprintf("%.1f", rating)),
	)
}

// formatCount renders counts like 125000 as "125k".
func formatCount(n int) string {
	switch {
	case n >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(n)/1_000_000)
	case n >= 1000:
		return fmt.Sprintf("%dk", n/1000)
	}
	return fmt.Sprintf("%d", n)
}
