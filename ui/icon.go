package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ---- Icon Components ----

const (
	iconChevronDown = "/static/images/chevron-down.svg"
	iconChevronUp   = "/static/images/chevron-up.svg"
	iconCheck       = "/static/images/check.svg"
	iconStar        = "/static/images/star.svg"
	iconClock       = "/static/images/clock.svg"
)

// icon creates a standardized icon image
func icon(iconSrc, alt string, classes ...string) g.Node {
	class := "w-6 h-6 inline align-middle"
	for _, c := range classes {
		class += " " + c
	}

	return Img(
		Src(iconSrc),
		Alt(alt),
		Class(class),
	)
}

// smallIcon is sized to sit inline with body text.
func smallIcon(iconSrc, alt string, classes ...string) g.Node {
	class := "w-4 h-4 inline align-middle"
	for _, c := range classes {
		class += " " + c
	}
	return Img(Src(iconSrc), Alt(alt), Class(class))
}

// chevron points up for expanded items and down for collapsed ones.
func chevron(expanded bool) g.Node {
	if expanded {
		return icon(iconChevronUp, "Collapse", "w-5 h-5")
	}
	return icon(iconChevronDown, "Expand", "w-5 h-5")
}
