package main

import "testing"

func TestIntEnv(t *testing.T) {
	t.Setenv("RETAILSIM_TEST_INT", "42")
	if got := intEnv("RETAILSIM_TEST_INT", 7); got != 42 {
		t.Fatalf("intEnv = %d, want 42", got)
	}
	if got := intEnv("RETAILSIM_TEST_INT_MISSING", 7); got != 7 {
		t.Fatalf("fallback = %d, want 7", got)
	}

	t.Setenv("RETAILSIM_TEST_INT", "not-a-number")
	if got := intEnv("RETAILSIM_TEST_INT", 7); got != 7 {
		t.Fatalf("invalid value fallback = %d, want 7", got)
	}
}

func TestRandFactoryFromEnv(t *testing.T) {
	t.Setenv("RETAILSIM_SEED", "")
	if randFactoryFromEnv() != nil {
		t.Fatalf("expected nil factory without a seed")
	}

	t.Setenv("RETAILSIM_SEED", "12345")
	factory := randFactoryFromEnv()
	if factory == nil {
		t.Fatalf("expected factory with a seed")
	}
	first, second := factory(), factory()
	if first.Int63() != second.Int63() {
		t.Fatalf("seeded sources diverge")
	}
}

func TestBuildHistoryFromEnv_DefaultsToInMemory(t *testing.T) {
	t.Setenv("RETAILSIM_DB_DSN", "")
	if buildHistoryFromEnv() == nil {
		t.Fatalf("expected in-memory history repo")
	}
}
