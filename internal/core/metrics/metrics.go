// Package metrics provides pure ROI math shared by the tracker and
// reporting code. Ratios whose denominator can legitimately be zero
// mid-campaign (CTR, open rate, click rate, conversion rate) report 0;
// the spend-based ratios report ok=false because a zero-spend ROI is
// meaningless rather than zero.
package metrics

// ACOS is ad spend as a percentage of resulting revenue.
// ok is false when revenue is not positive.
func ACOS(spend, revenue float64) (float64, bool) {
	if revenue <= 0 {
		return 0, false
	}
	return (spend / revenue) * 100, true
}

// ROAS is revenue divided by ad spend. ok is false when spend is not positive.
func ROAS(revenue, spend float64) (float64, bool) {
	if spend <= 0 {
		return 0, false
	}
	return revenue / spend, true
}

// ROI is net gain over spend as a percentage. ok is false when spend is
// not positive.
func ROI(revenue, spend float64) (float64, bool) {
	if spend <= 0 {
		return 0, false
	}
	return ((revenue - spend) / spend) * 100, true
}

// CPA is spend divided by conversions. ok is false when there are no
// conversions.
func CPA(spend float64, conversions int64) (float64, bool) {
	if conversions <= 0 {
		return 0, false
	}
	return spend / float64(conversions), true
}

// CTR is clicks over impressions as a percentage, 0 when there are no
// impressions yet.
func CTR(clicks, impressions int64) float64 {
	if impressions <= 0 {
		return 0
	}
	return float64(clicks) / float64(impressions) * 100
}

// ConversionRate is conversions over clicks as a percentage, 0 when
// there are no clicks yet.
func ConversionRate(conversions, clicks int64) float64 {
	if clicks <= 0 {
		return 0
	}
	return float64(conversions) / float64(clicks) * 100
}

// OpenRate is email opens over recipients as a percentage, 0 when
// nothing was sent.
func OpenRate(opens, recipients int64) float64 {
	if recipients <= 0 {
		return 0
	}
	return float64(opens) / float64(recipients) * 100
}

// ClickRate is email clicks over opens as a percentage, 0 when there
// are no opens.
func ClickRate(clicks, opens int64) float64 {
	if opens <= 0 {
		return 0
	}
	return float64(clicks) / float64(opens) * 100
}

// GradePerformance buckets an ACOS value into a human readable grade.
// Pass ok=false (undefined ACOS) to get "N/A".
func GradePerformance(acos float64, ok bool) string {
	switch {
	case !ok:
		return "N/A"
	case acos < 10:
		return "Excellent"
	case acos < 20:
		return "Very Good"
	case acos < 30:
		return "Good"
	case acos < 50:
		return "Fair"
	default:
		return "Poor"
	}
}

// EstimateLifetimeValue projects reader lifetime value from average
// book price, purchases per year and expected retention years.
func EstimateLifetimeValue(averageBookPrice, purchaseFrequency, retentionYears float64) float64 {
	return averageBookPrice * purchaseFrequency * retentionYears
}
