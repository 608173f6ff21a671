package pricing

import (
	"fmt"
	"slices"
	"strings"

	"github.com/learnpath/site/toggle"
)

// BillingPeriod selects which price a plan displays.
type BillingPeriod int

const (
	Monthly BillingPeriod = iota
	Annual
)

// Periods lists the billing periods in toggle order.
var Periods = []BillingPeriod{Monthly, Annual}

func (p BillingPeriod) String() string {
	if p == Annual {
		return "annual"
	}
	return "monthly"
}

// Label is the toggle button text.
func (p BillingPeriod) Label() string {
	if p == Annual {
		return "Annual (Save 20%)"
	}
	return "Monthly"
}

// Suffix follows the price on a plan card.
func (p BillingPeriod) Suffix() string {
	if p == Annual {
		return "/month, billed annually"
	}
	return "/month"
}

// ParseBillingPeriod accepts "monthly" or "annual" in any case.
func ParseBillingPeriod(s string) (BillingPeriod, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "monthly":
		return Monthly, true
	case "annual":
		return Annual, true
	}
	return Monthly, false
}

// NewSelection returns a billing toggle group with Monthly active.
func NewSelection() *toggle.Group[BillingPeriod] {
	return toggle.New(Monthly, Periods...)
}

// PlanOption is a subscription tier. AnnualPrice is the per-month price when
// billed annually.
type PlanOption struct {
	Name          string
	MonthlyPrice  int
	AnnualPrice   int
	Description   string
	Features      []string
	IsHighlighted bool
}

// Price derives the displayed price for the period.
func (p PlanOption) Price(period BillingPeriod) int {
	if period == Annual {
		return p.AnnualPrice
	}
	return p.MonthlyPrice
}

func (p PlanOption) DisplayPrice(period BillingPeriod) string {
	return fmt.Sprintf("$%d", p.Price(period))
}

func (p PlanOption) CallToAction(period BillingPeriod) string {
	if p.Price(period) == 0 {
		return "Get Started"
	}
	return "Subscribe Now"
}

var plans = []PlanOption{
	{
		Name:         "Free",
		MonthlyPrice: 0,
		AnnualPrice:  0,
		Description:  "Perfect for getting started",
		Features: []string{
			"Access to free courses",
			"Basic course materials",
			"Community forum access",
			"Mobile app access",
			"Course completion certificates",
		},
	},
	{
		Name:         "Pro",
		MonthlyPrice: 29,
		AnnualPrice:  23,
		Description:  "Best for individual learners",
		Features: []string{
			"All Free features",
			"Unlimited access to all courses",
			"Downloadable resources",
			"Premium course materials",
			"Priority support",
			"Ad-free experience",
			"Offline viewing",
		},
		IsHighlighted: true,
	},
	{
		Name:         "Enterprise",
		MonthlyPrice: 99,
		AnnualPrice:  79,
		Description:  "For teams and organizations",
		Features: []string{
			"All Pro features",
			"Team management dashboard",
			"Custom learning paths",
			"Analytics and reporting",
			"API access",
			"Dedicated account manager",
			"Custom branding",
			"SSO integration",
		},
	},
}

// Plans returns a deep copy of the plan table in display order.
func Plans() []PlanOption {
	out := make([]PlanOption, len(plans))
	for i, p := range plans {
		p.Features = slices.Clone(p.Features)
		out[i] = p
	}
	return out
}
