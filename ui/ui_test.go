package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"

	"github.com/learnpath/site/careers"
	"github.com/learnpath/site/catalog"
	"github.com/learnpath/site/config"
	"github.com/learnpath/site/faq"
	"github.com/learnpath/site/pricing"
	"github.com/learnpath/site/toggle"
)

func renderString(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestPricingPlans(t *testing.T) {
	tests := []struct {
		name    string
		period  pricing.BillingPeriod
		want    []string
		notWant []string
	}{
		{
			name:    "monthly",
			period:  pricing.Monthly,
			want:    []string{"$0", "$29", "$99", "/month<", `data-billing="monthly"`},
			notWant: []string{"$23", "$79", "billed annually"},
		},
		{
			name:    "annual",
			period:  pricing.Annual,
			want:    []string{"$0", "$23", "$79", "/month, billed annually", `data-billing="annual"`},
			notWant: []string{"$29", "$99"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := pricing.NewSelection()
			sel.Select(tt.period)
			html := renderString(t, PricingPlans(sel, pricing.Plans()))

			for _, s := range tt.want {
				assert.Contains(t, html, s)
			}
			for _, s := range tt.notWant {
				assert.NotContains(t, html, s)
			}
			assert.Equal(t, 1, strings.Count(html, `aria-pressed="true"`))
			assert.Equal(t, 1, strings.Count(html, "Most Popular"))
		})
	}
}

func TestPricingPlansToggleURLs(t *testing.T) {
	html := renderString(t, PricingPlans(pricing.NewSelection(), pricing.Plans()))

	assert.Contains(t, html, `hx-get="/pricing/plans?billing=monthly"`)
	assert.Contains(t, html, `hx-get="/pricing/plans?billing=annual"`)
	assert.Contains(t, html, `hx-target="#pricing-plans"`)
	assert.Contains(t, html, `hx-sync="this:replace"`)
	assert.Contains(t, html, "Get Started")
	assert.Contains(t, html, "Subscribe Now")
}

func TestFaqList(t *testing.T) {
	entries := faq.Entries()

	t.Run("collapsed", func(t *testing.T) {
		html := renderString(t, FaqList(entries, faq.NewDisclosure(entries)))
		assert.NotContains(t, html, "disclosure-panel")
		assert.NotContains(t, html, `aria-expanded="true"`)
		assert.NotContains(t, html, "aria-controls")
		assert.Equal(t, len(entries), strings.Count(html, iconChevronDown))
		assert.Equal(t, len(entries), strings.Count(html, `hx-sync="this:drop"`))
		assert.Contains(t, html, `hx-get="/pricing/faq/refund-policy/toggle"`)
		assert.Contains(t, html, `hx-target="#faq-list-item-refund-policy"`)
	})

	t.Run("one expanded", func(t *testing.T) {
		open := faq.NewDisclosure(entries)
		open.Toggle("refund-policy")
		html := renderString(t, FaqList(entries, open))

		assert.Contains(t, html, "30-day money-back guarantee")
		assert.Equal(t, 1, strings.Count(html, "disclosure-panel"))
		assert.Equal(t, 1, strings.Count(html, iconChevronUp))
		assert.Equal(t, 1, strings.Count(html, `aria-expanded="true"`))
		assert.Equal(t, 1, strings.Count(html, `aria-controls="faq-list-refund-policy"`))
		assert.Contains(t, html, `id="faq-list-refund-policy"`)
		// Each item's link carries only its own state.
		assert.Contains(t, html, `hx-get="/pricing/faq/refund-policy/toggle?open=refund-policy"`)
		assert.Contains(t, html, `hx-get="/pricing/faq/billing/toggle"`)
	})
}

func TestFaqItem(t *testing.T) {
	entry, ok := faq.Lookup("refund-policy")
	require.True(t, ok)

	collapsed := renderString(t, FaqItem(entry, false))
	assert.True(t, strings.HasPrefix(collapsed, `<div id="faq-list-item-refund-policy"`))
	assert.NotContains(t, collapsed, "30-day money-back guarantee")
	assert.NotContains(t, collapsed, "aria-controls")

	expanded := renderString(t, FaqItem(entry, true))
	assert.Contains(t, expanded, "30-day money-back guarantee")
	assert.Contains(t, expanded, `aria-expanded="true"`)
	assert.Contains(t, expanded, `hx-target="#faq-list-item-refund-policy"`)
	assert.NotContains(t, expanded, "free-plan")
}

func TestDisclosureToggleURL(t *testing.T) {
	assert.Equal(t, "/pricing/faq/billing/toggle", disclosureToggleURL("/pricing/faq", "billing", false))
	assert.Equal(t, "/pricing/faq/billing/toggle?open=billing", disclosureToggleURL("/pricing/faq", "billing", true))
	assert.Equal(t, "/careers/paths/a%20b/toggle?open=a+b", disclosureToggleURL("/careers/paths", "a b", true))
}

func TestCareerItem(t *testing.T) {
	p, ok := careers.Lookup("backend-engineer")
	require.True(t, ok)

	html := renderString(t, CareerItem(p, true, map[string]string{"go-backend-engineering": "Backend Engineering with Go"}))
	assert.True(t, strings.HasPrefix(html, `<div id="career-list-item-backend-engineer"`))
	assert.Contains(t, html, `href="/courses/go-backend-engineering"`)
	assert.Contains(t, html, "Backend Engineering with Go")
	assert.Contains(t, html, `hx-get="/careers/paths/backend-engineer/toggle?open=backend-engineer"`)
}

func TestToggleGroup(t *testing.T) {
	html := renderString(t, toggleGroup("Choice", "#target", []toggleOption{
		{Label: "One", Active: true, URL: "/one"},
		{Label: "Two", URL: "/two"},
	}))

	assert.Contains(t, html, `aria-label="Choice"`)
	assert.Contains(t, html, `aria-pressed="true"`)
	assert.Contains(t, html, `aria-pressed="false"`)
	assert.Contains(t, html, `hx-swap="outerHTML"`)
	assert.Equal(t, 1, strings.Count(html, "bg-white shadow-sm"))
	// Declared once on the group so every button shares one request slot.
	assert.Equal(t, 1, strings.Count(html, `hx-sync="this:replace"`))
	assert.True(t, strings.HasPrefix(html, `<div class="bg-gray-100 p-1 rounded-lg inline-flex" role="group" aria-label="Choice" hx-sync="this:replace"`))
}

func TestIsActivePath(t *testing.T) {
	tests := []struct {
		href, path string
		want       bool
	}{
		{"/", "/", true},
		{"/", "/courses", false},
		{"/courses", "/courses", true},
		{"/courses", "/courses/go-backend-engineering", true},
		{"/courses", "/coursesx", false},
		{"/pricing", "/blog", false},
	}

	for _, tt := range tests {
		t.Run(tt.href+" "+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, isActivePath(tt.href, tt.path))
		})
	}
}

func TestFormatCount(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1k"},
		{125000, "125k"},
		{1_500_000, "1.5M"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatCount(tt.n))
		})
	}
}

func TestAnimationDelay(t *testing.T) {
	assert.Equal(t, "0.0s", animationDelay(0))
	assert.Equal(t, "0.2s", animationDelay(2))
}

func TestCourseResults(t *testing.T) {
	courses := catalog.Builtin()
	sel := toggle.New(catalog.AllCategories, catalog.Categories(courses)...)

	html := renderString(t, CourseResults(sel, courses))
	assert.Contains(t, html, "Showing 6 of 6 courses")

	sel.Select("Design")
	html = renderString(t, CourseResults(sel, courses))
	assert.Contains(t, html, "Showing 1 of 6 courses")
	assert.Contains(t, html, `href="/courses/ui-ux-design"`)
	assert.NotContains(t, html, `href="/courses/go-backend-engineering"`)
}

func TestCourseResultsEmptyCategory(t *testing.T) {
	sel := toggle.New(catalog.AllCategories, catalog.AllCategories, "Music")
	sel.Select("Music")

	html := renderString(t, CourseResults(sel, catalog.Builtin()))
	assert.Contains(t, html, "No courses yet")
}

func TestAuthPanel(t *testing.T) {
	mode := NewAuthMode()
	html := renderString(t, AuthPanel(mode))
	assert.Contains(t, html, "Welcome back")
	assert.NotContains(t, html, `name="confirm"`)
	assert.Contains(t, html, `id="result"`)

	mode.Select(AuthSignUp)
	html = renderString(t, AuthPanel(mode))
	assert.Contains(t, html, "Create your account")
	assert.Contains(t, html, `name="name"`)
	assert.Contains(t, html, `name="confirm"`)
	assert.Contains(t, html, `value="signup"`)
}

func TestPageNavigation(t *testing.T) {
	html := renderString(t, Page("Pricing", "/pricing", nil))

	assert.Contains(t, html, "<title>Pricing")
	assert.Contains(t, html, `src="`+config.HTMXURL+`"`)
	assert.Contains(t, html, `href="/pricing" class="px-3 py-2 rounded-md text-sm font-medium text-blue-600"`)
	withButton := strings.Count(html, `href="/auth"`)

	html = renderString(t, Page("Sign In", "/auth", nil))
	assert.Equal(t, withButton-1, strings.Count(html, `href="/auth"`))
}
