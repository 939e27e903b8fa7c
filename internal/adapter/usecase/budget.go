package usecase

import (
	"slices"

	"prose-marketing/internal/core/domain"
)

// bookbubFixedCostCents is the flat application fee for a BookBub
// Featured Deal. It is a fixed cost, not a fraction of the budget.
const bookbubFixedCostCents int64 = 50_000

// AllocateBudget splits a total campaign budget over the selected
// channels. Each share is a fixed fraction of the TOTAL budget:
// amazon 50%, facebook 20%, email 5%, bookbub a flat fee, and organic
// social whatever is left (floored at 5%). Fractions are never
// renormalized over the selected subset: selecting only email still
// allocates just 5% and the rest stays unspent.
func AllocateBudget(totalCents int64, channels []domain.Channel) map[domain.Channel]int64 {
	alloc := make(map[domain.Channel]int64, len(channels))
	remaining := totalCents

	if slices.Contains(channels, domain.ChannelAmazonAds) {
		alloc[domain.ChannelAmazonAds] = percentOf(totalCents, 50)
		remaining -= alloc[domain.ChannelAmazonAds]
	}
	if slices.Contains(channels, domain.ChannelFacebook) {
		alloc[domain.ChannelFacebook] = percentOf(totalCents, 20)
		remaining -= alloc[domain.ChannelFacebook]
	}
	if slices.Contains(channels, domain.ChannelBookBub) {
		alloc[domain.ChannelBookBub] = bookbubFixedCostCents
		remaining -= bookbubFixedCostCents
	}
	if slices.Contains(channels, domain.ChannelEmail) {
		alloc[domain.ChannelEmail] = percentOf(totalCents, 5)
		remaining -= alloc[domain.ChannelEmail]
	}
	if slices.Contains(channels, domain.ChannelSocial) {
		alloc[domain.ChannelSocial] = max(remaining, percentOf(totalCents, 5))
	}

	return alloc
}

func percentOf(totalCents int64, pct int64) int64 {
	return totalCents * pct / 100
}
