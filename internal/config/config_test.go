package config

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("HUECRAFT_TEST_STR", "value")

	if got := getEnv("HUECRAFT_TEST_STR", "fallback"); got != "value" {
		t.Errorf("getEnv = %q, want value", got)
	}
	if got := getEnv("HUECRAFT_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("getEnv fallback = %q, want fallback", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("HUECRAFT_TEST_INT", "42")
	t.Setenv("HUECRAFT_TEST_BAD_INT", "forty-two")

	if got := getEnvInt("HUECRAFT_TEST_INT", 7); got != 42 {
		t.Errorf("getEnvInt = %d, want 42", got)
	}
	if got := getEnvInt("HUECRAFT_TEST_BAD_INT", 7); got != 7 {
		t.Errorf("getEnvInt with bad value = %d, want fallback 7", got)
	}
	if got := getEnvInt("HUECRAFT_TEST_MISSING", 7); got != 7 {
		t.Errorf("getEnvInt missing = %d, want fallback 7", got)
	}
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("HUECRAFT_TEST_BOOL", "true")

	if !getEnvBool("HUECRAFT_TEST_BOOL", false) {
		t.Error("getEnvBool = false, want true")
	}
	if getEnvBool("HUECRAFT_TEST_MISSING", false) {
		t.Error("getEnvBool missing = true, want fallback false")
	}
}

func TestGetEnvSlice(t *testing.T) {
	t.Setenv("HUECRAFT_TEST_SLICE", "a.example.com, b.example.com ,")

	got := getEnvSlice("HUECRAFT_TEST_SLICE", []string{"fallback"})
	if len(got) != 2 || got[0] != "a.example.com" || got[1] != "b.example.com" {
		t.Errorf("getEnvSlice = %v, want two trimmed entries", got)
	}

	fallback := getEnvSlice("HUECRAFT_TEST_MISSING", []string{"fallback"})
	if len(fallback) != 1 || fallback[0] != "fallback" {
		t.Errorf("getEnvSlice missing = %v, want fallback", fallback)
	}
}
