package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ---- Button Components ----

// buttonOption represents configuration options for buttons
type buttonOption func(*buttonConfig)

type buttonConfig struct {
	href       string
	buttonType string
	class      string
	attributes []g.Node
}

// withHref makes the button a link with the specified href
func withHref(href string) buttonOption {
	return func(c *buttonConfig) {
		c.href = href
	}
}

// withType sets the button type (button, submit, etc.)
func withType(buttonType string) buttonOption {
	return func(c *buttonConfig) {
		c.buttonType = buttonType
	}
}

// withClass adds additional CSS classes
func withClass(class string) buttonOption {
	return func(c *buttonConfig) {
		c.class = class
	}
}

func withAttributes(attrs ...g.Node) buttonOption {
	return func(c *buttonConfig) {
		c.attributes = append(c.attributes, attrs...)
	}
}

func buttonStyled(text, baseClass string, options ...buttonOption) g.Node {
	config := &buttonConfig{}
	for _, option := range options {
		option(config)
	}

	class := baseClass
	if config.class != "" {
		class += " " + config.class
	}

	attrs := []g.Node{Class(class)}
	if config.buttonType != "" {
		attrs = append(attrs, Type(config.buttonType))
	}
	attrs = append(attrs, config.attributes...)
	attrs = append(attrs, g.Text(text))

	if config.href != "" {
		return A(append([]g.Node{Href(config.href)}, attrs...)...)
	}
	return Button(attrs...)
}

// button creates a primary button (blue background)
func button(text string, options ...buttonOption) g.Node {
	return buttonStyled(text, "px-4 py-2 rounded-lg inline-block bg-blue-600 text-white hover:bg-blue-700 transition duration-300", options...)
}

// buttonSecondary creates a secondary button (grey background)
func buttonSecondary(text string, options ...buttonOption) g.Node {
	return buttonStyled(text, "px-4 py-2 rounded-lg inline-block bg-gray-100 text-gray-900 hover:bg-gray-200 transition duration-300", options...)
}

// buttonOutline creates a white outlined button for dark backgrounds
func buttonOutline(text string, options ...buttonOption) g.Node {
	return buttonStyled(text, "px-6 py-3 rounded-lg inline-block border-2 border-white text-white hover:bg-white hover:text-blue-600 transition duration-300", options...)
}
