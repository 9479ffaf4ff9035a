// Package scoring derives engagement scores, buyer intent and lifecycle
// segments from behavioral counters. All functions are pure.
package scoring

// Counters are the per-identity behavioral counters the scorer reads.
type Counters struct {
	PageViews    int
	ProductViews int
	AddToCarts   int
	Orders       int
}

// Intent is a coarse classification of purchase readiness.
type Intent string

// Intent values, weakest to strongest.
const (
	IntentCold       Intent = "cold"
	IntentWarm       Intent = "warm"
	IntentHot        Intent = "hot"
	IntentConverting Intent = "converting"
)

// Segment is a customer-lifecycle bucket.
type Segment string

// Segment values.
const (
	SegmentNewVisitor    Segment = "new_visitor"
	SegmentBrowser       Segment = "browser"
	SegmentAbandonedCart Segment = "abandoned_cart"
	SegmentCustomer      Segment = "customer"
	SegmentVIP           Segment = "vip"
)

// MaxEngagement caps the engagement score.
const MaxEngagement = 100

// Engagement is a bounded weighted sum of the counters.
func Engagement(c Counters) int {
	score := c.PageViews*1 + c.ProductViews*3 + c.AddToCarts*10 + c.Orders*25
	if score > MaxEngagement {
		return MaxEngagement
	}
	return score
}

// ClassifyIntent maps counters to buyer intent. Orders always win, then
// cart adds, then repeated product views.
func ClassifyIntent(c Counters) Intent {
	switch {
	case c.Orders > 0:
		return IntentConverting
	case c.AddToCarts > 0:
		return IntentHot
	case c.ProductViews >= 3:
		return IntentWarm
	default:
		return IntentCold
	}
}

// ClassifySegment maps counters to a lifecycle segment, strongest bucket
// first.
func ClassifySegment(c Counters) Segment {
	switch {
	case c.Orders > 5:
		return SegmentVIP
	case c.Orders > 0:
		return SegmentCustomer
	case c.AddToCarts > 0:
		return SegmentAbandonedCart
	case c.ProductViews > 0:
		return SegmentBrowser
	default:
		return SegmentNewVisitor
	}
}

// Score recomputes all three derived views together. Intent and segment are
// independent projections of the same counters; recomputing one without the
// other is a correctness bug, so callers get them as a unit.
func Score(c Counters) (engagement int, intent Intent, segment Segment) {
	return Engagement(c), ClassifyIntent(c), ClassifySegment(c)
}
