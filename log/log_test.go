package log_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/ghettovoice/sipbridge/log"
)

func TestDefault(t *testing.T) {
	if got := log.Default(); got != log.Def {
		t.Fatalf("log.Default() = %v, want log.Def", got)
	}

	log.SetDefault(log.Noop)
	defer log.SetDefault(nil)
	if got := log.Default(); got != log.Noop {
		t.Fatalf("log.Default() = %v after SetDefault(Noop), want log.Noop", got)
	}

	// nil restores the package default.
	log.SetDefault(nil)
	if got := log.Default(); got != log.Def {
		t.Fatalf("log.Default() = %v after SetDefault(nil), want log.Def", got)
	}
}

func TestNoop(t *testing.T) {
	t.Parallel()

	if log.Noop.Enabled(context.Background(), slog.LevelError) {
		t.Fatal("log.Noop.Enabled(ctx, LevelError) = true, want false")
	}
	// Must not panic or emit.
	log.Noop.Info("qwerty", "key", "value")
}

func TestStringValue(t *testing.T) {
	t.Parallel()

	if got := log.StringValue([]byte("abc")).LogValue(); got.String() != "abc" {
		t.Errorf("log.StringValue([]byte(\"abc\")).LogValue() = %q, want %q", got.String(), "abc")
	}
	if got := log.StringValue("xyz").LogValue(); got.String() != "xyz" {
		t.Errorf("log.StringValue(\"xyz\").LogValue() = %q, want %q", got.String(), "xyz")
	}
}
