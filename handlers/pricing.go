package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/learnpath/site/cookie"
	"github.com/learnpath/site/disclosure"
	"github.com/learnpath/site/faq"
	"github.com/learnpath/site/pricing"
	"github.com/learnpath/site/toggle"
	"github.com/learnpath/site/ui"
)

// billingSelection resolves the billing period: an explicit ?billing= wins,
// then the session cookie, then Monthly.
func billingSelection(c *fiber.Ctx) *toggle.Group[pricing.BillingPeriod] {
	sel := pricing.NewSelection()
	if p, ok := pricing.ParseBillingPeriod(c.Query("billing")); ok {
		sel.Select(p)
	} else if p, ok := pricing.ParseBillingPeriod(cookie.GetBillingPeriod(c)); ok {
		sel.Select(p)
	}
	return sel
}

// faqState rebuilds the FAQ disclosure state carried in ?open=.
func faqState(c *fiber.Ctx, entries []faq.Entry) *disclosure.List {
	d := faq.NewDisclosure(entries)
	d.Decode(c.Query("open"))
	return d
}

// HandlePricing displays the pricing page
func HandlePricing(c *fiber.Ctx) error {
	entries := faq.Entries()
	return render(c, ui.PricingPage(c.Path(), billingSelection(c), pricing.Plans(), entries, faqState(c, entries)))
}

// HandlePricingPlans selects a billing period and returns the toggle with
// every plan card re-priced.
func HandlePricingPlans(c *fiber.Ctx) error {
	sel := billingSelection(c)
	cookie.SetBillingPeriod(c, sel.Active().String())
	return render(c, ui.PricingPlans(sel, pricing.Plans()))
}

// HandleFaqToggle flips one FAQ entry and returns just that entry. The
// request carries the entry's own state in ?open=.
func HandleFaqToggle(c *fiber.Ctx) error {
	id := c.Params("id")
	entry, ok := faq.Lookup(id)
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "No such question")
	}
	d := faqState(c, faq.Entries())
	d.Toggle(id)
	return render(c, ui.FaqItem(entry, d.IsExpanded(id)))
}
