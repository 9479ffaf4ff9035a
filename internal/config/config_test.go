package config

import (
	"os"
	"testing"
)

func TestGetIntBoolFloat(t *testing.T) {
	os.Setenv("X_INT", "42")
	t.Cleanup(func() { os.Unsetenv("X_INT") })
	if v := getInt("X_INT", 1); v != 42 {
		t.Fatalf("want 42, got %d", v)
	}

	os.Setenv("X_BOOL_T", "true")
	os.Setenv("X_BOOL_F", "false")
	t.Cleanup(func() { os.Unsetenv("X_BOOL_T"); os.Unsetenv("X_BOOL_F") })
	if !getBool("X_BOOL_T", false) {
		t.Fatalf("want true")
	}
	if getBool("X_BOOL_F", true) {
		t.Fatalf("want false")
	}

	os.Setenv("X_FLOAT", "0.85")
	t.Cleanup(func() { os.Unsetenv("X_FLOAT") })
	if v := getFloat("X_FLOAT", 0.7); v != 0.85 {
		t.Fatalf("want 0.85, got %v", v)
	}
	if v := getFloat("X_FLOAT_MISSING", 0.7); v != 0.7 {
		t.Fatalf("want default 0.7, got %v", v)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, store, closer, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if closer != nil {
		closer()
	}
	if cfg.Bot.Threshold != 0.7 {
		t.Fatalf("bot threshold default: %v", cfg.Bot.Threshold)
	}
	if got := store.Get(); got != cfg {
		t.Fatalf("store should hold loaded config")
	}
}
