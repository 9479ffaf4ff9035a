package scoring

import "testing"

func TestEngagement(t *testing.T) {
	cases := []struct {
		name string
		c    Counters
		want int
	}{
		{"zero", Counters{}, 0},
		{"page views only", Counters{PageViews: 7}, 7},
		{"weighted mix", Counters{PageViews: 2, ProductViews: 3, AddToCarts: 1, Orders: 1}, 46},
		{"capped", Counters{Orders: 10}, MaxEngagement},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Engagement(tc.c); got != tc.want {
				t.Fatalf("Engagement(%+v) = %d, want %d", tc.c, got, tc.want)
			}
		})
	}
}

func TestClassifyIntent(t *testing.T) {
	cases := []struct {
		name string
		c    Counters
		want Intent
	}{
		{"no activity", Counters{PageViews: 5}, IntentCold},
		{"two product views stay cold", Counters{ProductViews: 2}, IntentCold},
		{"three product views warm", Counters{ProductViews: 3}, IntentWarm},
		{"cart beats product views", Counters{ProductViews: 10, AddToCarts: 1}, IntentHot},
		{"order beats everything", Counters{ProductViews: 10, AddToCarts: 5, Orders: 1}, IntentConverting},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassifyIntent(tc.c); got != tc.want {
				t.Fatalf("ClassifyIntent(%+v) = %q, want %q", tc.c, got, tc.want)
			}
		})
	}
}

func TestClassifySegment(t *testing.T) {
	cases := []struct {
		name string
		c    Counters
		want Segment
	}{
		{"fresh", Counters{}, SegmentNewVisitor},
		{"page views alone stay new", Counters{PageViews: 3}, SegmentNewVisitor},
		{"product view makes browser", Counters{ProductViews: 1}, SegmentBrowser},
		{"cart without order abandons", Counters{ProductViews: 4, AddToCarts: 2}, SegmentAbandonedCart},
		{"any order is a customer", Counters{AddToCarts: 2, Orders: 1}, SegmentCustomer},
		{"five orders still customer", Counters{Orders: 5}, SegmentCustomer},
		{"six orders vip", Counters{Orders: 6}, SegmentVIP},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassifySegment(tc.c); got != tc.want {
				t.Fatalf("ClassifySegment(%+v) = %q, want %q", tc.c, got, tc.want)
			}
		})
	}
}

func TestScore_Consistent(t *testing.T) {
	c := Counters{ProductViews: 3, AddToCarts: 1}
	e, intent, segment := Score(c)
	if e != 19 {
		t.Fatalf("engagement = %d, want 19", e)
	}
	if intent != IntentHot {
		t.Fatalf("intent = %q, want hot", intent)
	}
	if segment != SegmentAbandonedCart {
		t.Fatalf("segment = %q, want abandoned_cart", segment)
	}
}
