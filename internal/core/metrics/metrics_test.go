package metrics

import "testing"

func TestROI(t *testing.T) {
	roi, ok := ROI(0, 100)
	if !ok {
		t.Fatalf("ROI(0, 100) should be defined")
	}
	if roi != -100 {
		t.Fatalf("ROI(0, 100) = %v, want -100", roi)
	}

	if _, ok = ROI(500, 0); ok {
		t.Fatalf("ROI with zero spend must be undefined")
	}
	if _, ok = ROI(500, -10); ok {
		t.Fatalf("ROI with negative spend must be undefined")
	}

	roi, ok = ROI(300, 100)
	if !ok || roi != 200 {
		t.Fatalf("ROI(300, 100) = %v, %v, want 200, true", roi, ok)
	}
}

func TestACOS(t *testing.T) {
	if _, ok := ACOS(50, 0); ok {
		t.Fatalf("ACOS with zero revenue must be undefined")
	}
	acos, ok := ACOS(50, 200)
	if !ok || acos != 25 {
		t.Fatalf("ACOS(50, 200) = %v, %v, want 25, true", acos, ok)
	}
}

func TestROAS(t *testing.T) {
	if _, ok := ROAS(100, 0); ok {
		t.Fatalf("ROAS with zero spend must be undefined")
	}
	roas, ok := ROAS(300, 100)
	if !ok || roas != 3 {
		t.Fatalf("ROAS(300, 100) = %v, %v, want 3, true", roas, ok)
	}
}

func TestCPA(t *testing.T) {
	if _, ok := CPA(100, 0); ok {
		t.Fatalf("CPA with zero conversions must be undefined")
	}
	cpa, ok := CPA(100, 4)
	if !ok || cpa != 25 {
		t.Fatalf("CPA(100, 4) = %v, %v, want 25, true", cpa, ok)
	}
}

// The rate metrics are defined as 0 on an empty denominator, unlike the
// spend ratios above. Downstream code relies on that asymmetry.
func TestRatesDefaultToZero(t *testing.T) {
	if got := CTR(5, 0); got != 0 {
		t.Fatalf("CTR(5, 0) = %v, want 0", got)
	}
	if got := CTR(5, 100); got != 5 {
		t.Fatalf("CTR(5, 100) = %v, want 5", got)
	}
	if got := OpenRate(10, 0); got != 0 {
		t.Fatalf("OpenRate(10, 0) = %v, want 0", got)
	}
	if got := OpenRate(25, 100); got != 25 {
		t.Fatalf("OpenRate(25, 100) = %v, want 25", got)
	}
	if got := ClickRate(3, 0); got != 0 {
		t.Fatalf("ClickRate(3, 0) = %v, want 0", got)
	}
	if got := ClickRate(5, 20); got != 25 {
		t.Fatalf("ClickRate(5, 20) = %v, want 25", got)
	}
	if got := ConversionRate(2, 0); got != 0 {
		t.Fatalf("ConversionRate(2, 0) = %v, want 0", got)
	}
	if got := ConversionRate(2, 8); got != 25 {
		t.Fatalf("ConversionRate(2, 8) = %v, want 25", got)
	}
}

func TestGradePerformance(t *testing.T) {
	cases := []struct {
		acos float64
		ok   bool
		want string
	}{
		{0, false, "N/A"},
		{5, true, "Excellent"},
		{15, true, "Very Good"},
		{25, true, "Good"},
		{40, true, "Fair"},
		{80, true, "Poor"},
	}
	for _, c := range cases {
		if got := GradePerformance(c.acos, c.ok); got != c.want {
			t.Fatalf("GradePerformance(%v, %v) = %q, want %q", c.acos, c.ok, got, c.want)
		}
	}
}

func TestEstimateLifetimeValue(t *testing.T) {
	if got := EstimateLifetimeValue(9.99, 2, 3); got != 9.99*2*3 {
		t.Fatalf("EstimateLifetimeValue = %v", got)
	}
}
