package botdetect

import (
	"math"
	"testing"

	"visitor-iq/internal/signal"
)

func fullSignals() signal.Signals {
	return signal.Signals{
		CanvasHash:          "c",
		WebglHash:           "w",
		AudioHash:           "a",
		UserAgent:           "Mozilla/5.0 (Macintosh)",
		Platform:            "MacIntel",
		Language:            "en-US",
		Timezone:            "Europe/Berlin",
		ScreenWidth:         1440,
		ScreenHeight:        900,
		HardwareConcurrency: 8,
		DeviceMemory:        8,
		GPUVendor:           "Apple",
	}
}

func TestClassify_NoEvidence(t *testing.T) {
	r := Classify(signal.Signals{FingerprintHash: "only-a-hash"})
	if r.BotScore != 0 {
		t.Fatalf("BotScore = %v, want 0", r.BotScore)
	}
	if r.Confidence != 0 {
		t.Fatalf("Confidence = %v, want 0", r.Confidence)
	}
	if r.IsBot {
		t.Fatal("empty payload must not be flagged as bot")
	}
}

func TestClassify_AllAnomalous(t *testing.T) {
	// user agent present, everything else missing: every weight fires
	r := Classify(signal.Signals{UserAgent: "Mozilla/5.0"})
	if r.BotScore != 1.0 {
		t.Fatalf("BotScore = %v, want exactly 1.0", r.BotScore)
	}
	if !r.IsBot {
		t.Fatal("fully anomalous payload must be flagged")
	}
}

func TestClassify_CleanBrowser(t *testing.T) {
	r := Classify(fullSignals())
	if r.BotScore != 0 {
		t.Fatalf("BotScore = %v, want 0", r.BotScore)
	}
	if r.IsBot {
		t.Fatal("complete signal set must not be flagged")
	}
	if math.Abs(r.Confidence-1.0) > 1e-9 {
		t.Fatalf("Confidence = %v, want 1.0", r.Confidence)
	}
}

func TestClassify_HeadlessMarkers(t *testing.T) {
	for _, tc := range []struct {
		ua     string
		weight float64
	}{
		{"Mozilla/5.0 (X11; Linux x86_64) HeadlessChrome/120.0", 0.8},
		{"Mozilla/5.0 PhantomJS/2.1.1", 0.9},
	} {
		s := fullSignals()
		s.UserAgent = tc.ua
		r := Classify(s)
		if math.Abs(r.BotScore-tc.weight) > 1e-9 {
			t.Fatalf("ua %q: BotScore = %v, want %v", tc.ua, r.BotScore, tc.weight)
		}
		if !r.IsBot {
			t.Fatalf("ua %q must be flagged", tc.ua)
		}
	}
}

func TestClassify_PartialSignals(t *testing.T) {
	s := fullSignals()
	s.CanvasHash = ""
	s.AudioHash = ""
	r := Classify(s)
	if math.Abs(r.BotScore-0.4) > 1e-9 {
		t.Fatalf("BotScore = %v, want 0.4", r.BotScore)
	}
	if r.IsBot {
		t.Fatal("0.4 is below the default threshold")
	}
}

func TestClassifyWithThreshold(t *testing.T) {
	s := fullSignals()
	s.CanvasHash = ""
	s.WebglHash = ""
	s.AudioHash = ""
	r := ClassifyWithThreshold(s, 0.5)
	if math.Abs(r.BotScore-0.6) > 1e-9 {
		t.Fatalf("BotScore = %v, want 0.6", r.BotScore)
	}
	if !r.IsBot {
		t.Fatal("0.6 exceeds a 0.5 threshold")
	}
	if ClassifyWithThreshold(s, 0.6).IsBot {
		t.Fatal("score equal to threshold must not flag")
	}
}

func TestConfidence_Additive(t *testing.T) {
	s := signal.Signals{CanvasHash: "c", WebglHash: "w", Timezone: "UTC"}
	r := Classify(s)
	if math.Abs(r.Confidence-0.55) > 1e-9 {
		t.Fatalf("Confidence = %v, want 0.55", r.Confidence)
	}
}
