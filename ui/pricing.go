package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/learnpath/site/disclosure"
	"github.com/learnpath/site/faq"
	"github.com/learnpath/site/pricing"
	"github.com/learnpath/site/toggle"
)

const (
	pricingPlansID = "pricing-plans"
	faqListID      = "faq-list"
	faqToggleBase  = "/pricing/faq"
)

func PricingPage(path string, billing *toggle.Group[pricing.BillingPeriod], plans []pricing.PlanOption, entries []faq.Entry, open *disclosure.List) g.Node {
	return Page(
		"Pricing",
		path,
		[]g.Node{
			banner("Simple, Transparent Pricing", "Choose the plan that's right for you. Get started with our free tier or upgrade for premium features."),
			section(
				PricingPlans(billing, plans),
				Div(
					Class("mt-16 max-w-3xl mx-auto"),
					sectionHeader("Frequently Asked Questions", "Find answers to common questions about our pricing plans and features"),
					FaqList(entries, open),
					Div(
						Class("mt-12 text-center"),
						P(Class("text-gray-600 mb-4"), g.Text("Still have questions?")),
						button("Contact Support", withHref("mailto:support@learnpath.example"), withClass("px-6 py-3")),
					),
				),
			),
		},
	)
}

// PricingPlans renders the billing toggle together with every plan card. It is
// both part of the page and the fragment returned when the period changes.
func PricingPlans(billing *toggle.Group[pricing.BillingPeriod], plans []pricing.PlanOption) g.Node {
	options := make([]toggleOption, 0, len(billing.Options()))
	for _, p := range billing.Options() {
		options = append(options, toggleOption{
			Label:  p.Label(),
			Active: billing.IsActive(p),
			URL:    "/pricing/plans?billing=" + p.String(),
		})
	}

	period := billing.Active()
	cards := make([]g.Node, 0, len(plans))
	for i, plan := range plans {
		cards = append(cards, planCard(plan, period, i))
	}

	return Div(
		ID(pricingPlansID),
		Data("billing", period.String()),
		Div(
			Class("flex justify-center mb-12"),
			toggleGroup("Billing period", "#"+pricingPlansID, options),
		),
		Div(
			Class("grid grid-cols-1 md:grid-cols-3 gap-8"),
			g.Group(cards),
		),
	)
}

func planCard(plan pricing.PlanOption, period pricing.BillingPeriod, index int) g.Node {
	class := "plan-card relative bg-white rounded-2xl shadow-lg overflow-hidden"
	if plan.IsHighlighted {
		class += " ring-2 ring-blue-600"
	}

	features := make([]g.Node, 0, len(plan.Features))
	for _, f := range plan.Features {
		features = append(features, Div(
			Class("flex items-start"),
			smallIcon(iconCheck, "Included", "mt-1 mr-3"),
			Span(Class("text-gray-600"), g.Text(f)),
		))
	}

	cta := buttonSecondary(plan.CallToAction(period), withHref("/auth?mode=signup"), withClass("w-full text-center py-3 font-medium mb-8"))
	if plan.IsHighlighted {
		cta = button(plan.CallToAction(period), withHref("/auth?mode=signup"), withClass("w-full text-center py-3 font-medium mb-8"))
	}

	return Div(
		Class(class),
		StyleAttr("animation-delay: "+animationDelay(index)),
		Data("plan", plan.Name),
		g.If(plan.IsHighlighted, Div(
			Class("absolute top-0 right-0 bg-blue-600 text-white px-4 py-1 text-sm"),
			g.Text("Most Popular"),
		)),
		Div(
			Class("p-8"),
			H3(Class("text-2xl font-bold text-gray-900 mb-2"), g.Text(plan.Name)),
			P(Class("text-gray-600 mb-6"), g.Text(plan.Description)),
			Div(
				Class("mb-6"),
				Span(Class("plan-price text-4xl font-bold"), g.Text(plan.DisplayPrice(period))),
				Span(Class("text-gray-600"), g.Text(period.Suffix())),
			),
			cta,
			Div(Class("space-y-4"), g.Group(features)),
		),
	)
}

// animationDelay staggers card entrance by a tenth of a second per card.
func animationDelay(index int) string {
	return fmt.Sprintf("%.1fs", float64(index)*0.1)
}

// FaqList renders the pricing FAQ as a disclosure list.
func FaqList(entries []faq.Entry, open *disclosure.List) g.Node {
	items := make([]disclosureItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, faqItem(e))
	}
	return disclosureList(faqListID, faqToggleBase, items, open)
}

// FaqItem is the fragment for a single FAQ entry.
func FaqItem(entry faq.Entry, expanded bool) g.Node {
	return disclosureRow(faqListID, faqToggleBase, faqItem(entry), expanded)
}

func faqItem(e faq.Entry) disclosureItem {
	return disclosureItem{
		ID:      e.ID,
		Summary: Span(Class("text-lg font-medium"), g.Text(e.Question)),
		Detail:  P(Class("text-gray-600"), g.Text(e.Answer)),
	}
}
