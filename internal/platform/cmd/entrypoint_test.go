package cmd

import (
	"context"
	"errors"
	"flag"
	"testing"
)

type testConfig struct {
	Store string `env:"CMD_TEST_STORE" envDefault:"flatfile"`
	Seed  int64  `env:"CMD_TEST_SEED"`
}

func TestParseConfigReadsEnvAndFlags(t *testing.T) {
	t.Setenv("CMD_TEST_STORE", "sqlite")
	t.Setenv("CMD_TEST_SEED", "7")

	cfg := testConfig{}
	if err := ParseConfig(&cfg); err != nil {
		t.Fatalf("load config defaults: %v", err)
	}
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.StringVar(&cfg.Store, "store", cfg.Store, "store")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "seed")

	if err := ParseArgs(fs, []string{"-seed", "42"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if cfg.Seed != 42 {
		t.Fatalf("expected flag value for seed, got %d", cfg.Seed)
	}
	if cfg.Store != "sqlite" {
		t.Fatalf("expected env value for store, got %q", cfg.Store)
	}
}

func TestParseConfigRejectsNilTarget(t *testing.T) {
	if err := ParseConfig[testConfig](nil); err == nil {
		t.Fatal("expected nil target error")
	}
}

func TestParseArgsRejectsNilParser(t *testing.T) {
	if err := ParseArgs(nil, []string{}); err == nil {
		t.Fatal("expected parse args to reject nil parser")
	}
}

func TestRunWithTelemetryRejectsMissingInputs(t *testing.T) {
	run := func(context.Context) error { return nil }
	if err := RunWithTelemetry(context.Background(), "", RunOptions{}, run); err == nil {
		t.Fatal("expected missing service error")
	}
	if err := RunWithTelemetry(context.Background(), ServiceTextcraft, RunOptions{}, nil); err == nil {
		t.Fatal("expected missing run function error")
	}
}

func TestRunWithTelemetryReturnsRunError(t *testing.T) {
	want := errors.New("boom")
	called := false
	err := RunWithTelemetry(context.Background(), ServiceTextcraft, RunOptions{}, func(context.Context) error {
		called = true
		return want
	})
	if !called {
		t.Fatal("expected run function to be invoked")
	}
	if !errors.Is(err, want) {
		t.Fatalf("expected run error, got %v", err)
	}
}
