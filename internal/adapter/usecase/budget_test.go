package usecase

import (
	"testing"

	"prose-marketing/internal/core/domain"
)

// TestAllocateBudgetSubset checks that only selected channels receive an
// allocation and every share is the fixed fraction of the TOTAL budget.
func TestAllocateBudgetSubset(t *testing.T) {
	alloc := AllocateBudget(100_000, []domain.Channel{domain.ChannelAmazonAds, domain.ChannelEmail})

	if len(alloc) != 2 {
		t.Fatalf("expected 2 allocations, got %d: %v", len(alloc), alloc)
	}
	if alloc[domain.ChannelAmazonAds] != 50_000 {
		t.Fatalf("amazon = %d, want 50000", alloc[domain.ChannelAmazonAds])
	}
	if alloc[domain.ChannelEmail] != 5_000 {
		t.Fatalf("email = %d, want 5000", alloc[domain.ChannelEmail])
	}
	if _, ok := alloc[domain.ChannelFacebook]; ok {
		t.Fatalf("unselected channel must not be allocated")
	}
}

// Fractions are deliberately NOT renormalized over the selected subset:
// selecting only email leaves 95% of the budget unspent.
func TestAllocateBudgetUnspentRemainder(t *testing.T) {
	alloc := AllocateBudget(100_000, []domain.Channel{domain.ChannelEmail})

	if got := alloc[domain.ChannelEmail]; got != 5_000 {
		t.Fatalf("email = %d, want 5000", got)
	}
	if len(alloc) != 1 {
		t.Fatalf("expected only email allocated, got %v", alloc)
	}
}

// BookBub is a flat fee, independent of the total budget, and does not
// reduce the percentage shares of other channels.
func TestAllocateBudgetBookBubFixedCost(t *testing.T) {
	for _, total := range []int64{100_000, 1_000_000} {
		alloc := AllocateBudget(total, []domain.Channel{domain.ChannelBookBub})
		if got := alloc[domain.ChannelBookBub]; got != bookbubFixedCostCents {
			t.Fatalf("bookbub with total %d = %d, want %d", total, got, bookbubFixedCostCents)
		}
	}

	alloc := AllocateBudget(100_000, []domain.Channel{domain.ChannelBookBub, domain.ChannelAmazonAds})
	if got := alloc[domain.ChannelAmazonAds]; got != 50_000 {
		t.Fatalf("amazon alongside bookbub = %d, want 50000", got)
	}
}

// Organic social takes whatever the other selected channels left over,
// floored at 5% of the total.
func TestAllocateBudgetSocialRemainder(t *testing.T) {
	// Alone, social absorbs the whole budget.
	alloc := AllocateBudget(100_000, []domain.Channel{domain.ChannelSocial})
	if got := alloc[domain.ChannelSocial]; got != 100_000 {
		t.Fatalf("social alone = %d, want 100000", got)
	}

	// With every channel selected the remainder goes negative (the
	// bookbub fee overshoots), so the 5% floor applies.
	all := []domain.Channel{
		domain.ChannelAmazonAds,
		domain.ChannelFacebook,
		domain.ChannelBookBub,
		domain.ChannelEmail,
		domain.ChannelSocial,
	}
	alloc = AllocateBudget(100_000, all)
	if got := alloc[domain.ChannelSocial]; got != 5_000 {
		t.Fatalf("social floor = %d, want 5000", got)
	}

	// With a comfortable remainder, social takes all of it.
	alloc = AllocateBudget(100_000, []domain.Channel{domain.ChannelAmazonAds, domain.ChannelSocial})
	if got := alloc[domain.ChannelSocial]; got != 50_000 {
		t.Fatalf("social remainder = %d, want 50000", got)
	}
}
