// Package botdetect scores how likely a normalized signal set belongs to
// automated traffic. Classification is a pure function over the signals so
// it can be table-tested independently of any storage.
package botdetect

import (
	"strings"

	"visitor-iq/internal/signal"
)

// DefaultThreshold is the bot-score cutoff above which a visitor is flagged.
const DefaultThreshold = 0.7

// Result holds the classifier output. BotScore and Confidence are both in
// [0,1]; Confidence rewards signal presence and is independent of BotScore.
type Result struct {
	BotScore   float64 `json:"bot_score"`
	Confidence float64 `json:"confidence"`
	IsBot      bool    `json:"is_bot"`
}

// headless browser markers in the user agent and their weights
var uaMarkers = []struct {
	marker string
	weight float64
}{
	{"HeadlessChrome", 0.8},
	{"PhantomJS", 0.9},
}

// Classify scores the signals with the default threshold.
func Classify(s signal.Signals) Result {
	return ClassifyWithThreshold(s, DefaultThreshold)
}

// ClassifyWithThreshold accumulates a weight for every missing or anomalous
// signal and clamps the sum to [0,1]. A payload carrying no signal data at
// all scores 0, deliberately "unknown, not bot", so minimal payloads never
// produce false-positive bot flags. Once any real data is present, absence
// of the expensive-to-fake signals counts against the visitor.
func ClassifyWithThreshold(s signal.Signals, threshold float64) Result {
	if noEvidence(s) {
		return Result{}
	}

	var score float64
	add := func(cond bool, weight float64) {
		if cond {
			score += weight
		}
	}

	add(s.CanvasHash == "", 0.3)
	add(s.WebglHash == "", 0.2)
	add(s.AudioHash == "", 0.1)
	add(s.Timezone == "", 0.1)
	add(s.HardwareConcurrency == 0, 0.2)
	add(s.Platform == "", 0.2)
	add(s.ScreenWidth == 0 || s.ScreenHeight == 0, 0.3)

	for _, m := range uaMarkers {
		add(strings.Contains(s.UserAgent, m.marker), m.weight)
	}

	botScore := clamp01(score)
	return Result{
		BotScore:   botScore,
		Confidence: confidence(s),
		IsBot:      botScore > threshold,
	}
}

// noEvidence reports whether the payload carried no browser data beyond the
// stable hash.
func noEvidence(s signal.Signals) bool {
	return s.CanvasHash == "" && s.WebglHash == "" && s.AudioHash == "" &&
		s.UserAgent == "" && s.Platform == "" && s.Language == "" &&
		s.Timezone == "" && s.GPUVendor == "" &&
		s.ScreenWidth == 0 && s.ScreenHeight == 0 &&
		s.HardwareConcurrency == 0 && s.DeviceMemory == 0
}

// confidence is an additive data-completeness score: high-value signals
// being present means the fingerprint is trustworthy regardless of whether
// it looks automated.
func confidence(s signal.Signals) float64 {
	var c float64
	if s.CanvasHash != "" {
		c += 0.25
	}
	if s.WebglHash != "" {
		c += 0.20
	}
	if s.AudioHash != "" {
		c += 0.15
	}
	if s.Timezone != "" {
		c += 0.10
	}
	if s.GPUVendor != "" {
		c += 0.10
	}
	if s.HardwareConcurrency > 0 {
		c += 0.05
	}
	if s.DeviceMemory > 0 {
		c += 0.05
	}
	if s.Language != "" {
		c += 0.05
	}
	if s.Platform != "" {
		c += 0.05
	}
	return clamp01(c)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
