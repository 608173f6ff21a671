package ui

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// toggleOption is one button of an exclusive toggle group. URL is the fragment
// that re-renders the group's section with this option selected.
type toggleOption struct {
	Label  string
	Active bool
	URL    string
}

// toggleGroup renders mutually exclusive buttons. Each button swaps target,
// which must contain the group itself so buttons and derived values change in
// one response. A newer click aborts an in-flight request, so the last pick
// is the one shown.
func toggleGroup(name, target string, options []toggleOption) g.Node {
	buttons := make([]g.Node, 0, len(options))
	for _, o := range options {
		class := "px-4 py-2 rounded-md transition-all duration-300"
		if o.Active {
			class += " bg-white shadow-sm"
		}
		buttons = append(buttons, Button(
			Type("button"),
			Class(class),
			Aria("pressed", boolAttr(o.Active)),
			hx.Get(o.URL),
			hx.Target(target),
			hx.Swap("outerHTML"),
			g.Text(o.Label),
		))
	}
	return Div(
		Class("bg-gray-100 p-1 rounded-lg inline-flex"),
		Role("group"),
		Aria("label", name),
		hx.Sync("this:replace"),
		g.Group(buttons),
	)
}

func boolAttr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
