package faq

import "github.com/learnpath/site/disclosure"

// Entry is one question and its answer. ID is a stable slug used as the
// disclosure key.
type Entry struct {
	ID       string
	Question string
	Answer   string
}

var entries = []Entry{
	{
		ID:       "free-plan",
		Question: "What's included in the free plan?",
		Answer:   "The free plan includes access to selected courses, basic course materials, community forum access, and course completion certificates. It's perfect for beginners who want to explore our platform.",
	},
	{
		ID:       "switch-plans",
		Question: "Can I switch between plans?",
		Answer:   "Yes, you can upgrade, downgrade, or cancel your plan at any time. If you upgrade, you'll be charged the prorated amount for the remainder of your billing cycle. If you downgrade, your new rate will take effect at the next billing cycle.",
	},
	{
		ID:       "refund-policy",
		Question: "Is there a refund policy?",
		Answer:   "Yes, we offer a 30-day money-back guarantee for all paid plans. If you're not satisfied with our service, you can request a full refund within the first 30 days of your subscription.",
	},
	{
		ID:       "team-discounts",
		Question: "Do you offer team discounts?",
		Answer:   "Yes, we offer special discounts for teams of 5 or more members. Contact our sales team for custom pricing and volume discounts for your organization.",
	},
	{
		ID:       "billing",
		Question: "How does the billing work?",
		Answer:   "We offer both monthly and annual billing options. With annual billing, you save 20% compared to monthly billing. You can pay using all major credit cards or PayPal.",
	},
	{
		ID:       "cancel-progress",
		Question: "What happens to my progress if I cancel?",
		Answer:   "If you cancel a paid subscription, you'll maintain access to your courses and progress until the end of your current billing period. After that, you'll still have access to your completed courses but won't be able to access premium features.",
	},
	{
		ID:       "account-sharing",
		Question: "Can I share my account with others?",
		Answer:   "No, our subscriptions are for individual use only. For team or family access, please check our Enterprise plan or contact sales for custom solutions.",
	},
	{
		ID:       "certificates",
		Question: "How do I get a certificate?",
		Answer:   "Certificates are available for all completed courses across all plans. Premium certificates with enhanced features are available for Pro and Enterprise subscribers.",
	},
}

// Entries returns the pricing FAQ in display order.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Lookup returns the entry with id.
func Lookup(id string) (Entry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// NewDisclosure returns a collapsed disclosure list over the entries.
func NewDisclosure(list []Entry) *disclosure.List {
	ids := make([]string, len(list))
	for i, e := range list {
		ids[i] = e.ID
	}
	return disclosure.New(ids...)
}
