package pkg

import (
	"testing"
	"time"
)

func TestSmartDurationFormat(t *testing.T) {
	cases := []struct {
		in   time.Duration
		want string
	}{
		{0, "0"},
		{250 * time.Nanosecond, "250ns"},
		{42 * time.Microsecond, "42μs"},
		{42 * time.Millisecond, "42ms"},
		{time.Second, "1s"},
		{72 * time.Second, "1m12s"},
		{25*time.Hour + 30*time.Minute, "1d1h"},
	}
	for _, tc := range cases {
		if got := SmartDurationFormat(tc.in); got != tc.want {
			t.Errorf("SmartDurationFormat(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
