package signal

import (
	"errors"
	"testing"
)

func TestNormalize_RequiredFields(t *testing.T) {
	cases := []struct {
		name string
		raw  RawPayload
	}{
		{"missing shop", RawPayload{FingerprintHash: "abc"}},
		{"missing hash", RawPayload{Shop: "acme.example.com"}},
		{"whitespace shop", RawPayload{Shop: "   ", FingerprintHash: "abc"}},
		{"whitespace hash", RawPayload{Shop: "acme.example.com", FingerprintHash: "  "}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Normalize(tc.raw); !errors.Is(err, ErrInvalidPayload) {
				t.Fatalf("err = %v, want ErrInvalidPayload", err)
			}
		})
	}
}

func TestNormalize_Canonicalizes(t *testing.T) {
	s, err := Normalize(RawPayload{
		Shop:            "  ACME.MyShopify.COM ",
		FingerprintHash: " fp-1 ",
		Email:           " Buyer@Example.COM ",
		UserAgent:       "  Mozilla/5.0  ",
		ScreenWidth:     -100,
		PixelRatio:      -1.5,
	})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if s.Shop != "acme.myshopify.com" {
		t.Fatalf("Shop = %q", s.Shop)
	}
	if s.FingerprintHash != "fp-1" {
		t.Fatalf("FingerprintHash = %q", s.FingerprintHash)
	}
	if s.Email != "buyer@example.com" {
		t.Fatalf("Email = %q", s.Email)
	}
	if s.UserAgent != "Mozilla/5.0" {
		t.Fatalf("UserAgent = %q", s.UserAgent)
	}
	if s.ScreenWidth != 0 || s.PixelRatio != 0 {
		t.Fatalf("negative values must clamp to zero: %d %v", s.ScreenWidth, s.PixelRatio)
	}
}

func TestPlatformCustomerIDInt64(t *testing.T) {
	cases := []struct {
		in   string
		want int64
		ok   bool
	}{
		{"", 0, false},
		{"12345", 12345, true},
		{"not-a-number", 0, false},
		{"-7", 0, false},
		{"0", 0, false},
	}
	for _, tc := range cases {
		s := Signals{PlatformCustomerID: tc.in}
		got, ok := s.PlatformCustomerIDInt64()
		if got != tc.want || ok != tc.ok {
			t.Fatalf("PlatformCustomerIDInt64(%q) = (%d, %v), want (%d, %v)", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
