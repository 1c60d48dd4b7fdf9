package sipbridge_test

import (
	"testing"

	"github.com/ghettovoice/sipbridge"
)

func TestVersion(t *testing.T) {
	t.Parallel()

	got := sipbridge.Version()
	if got == "" {
		t.Fatal("sipbridge.Version() = \"\", want non-empty")
	}
	// Stable across repeated calls within one process lifetime.
	for range 3 {
		if v := sipbridge.Version(); v != got {
			t.Fatalf("sipbridge.Version() = %q, want stable %q", v, got)
		}
	}
}

// TestDefaultBridge drives the package-level operations end to end.
// It is not parallel: the default bridge is process-wide state.
func TestDefaultBridge(t *testing.T) {
	defer sipbridge.StopListener()

	if err := sipbridge.Reset(); err != nil {
		t.Fatalf("sipbridge.Reset() error = %v, want nil", err)
	}

	sipbridge.OnEvent(func(sipbridge.EventKind, string) {})
	sipbridge.ClearOnEvent()

	if err := sipbridge.StartListener(0); err != nil {
		t.Fatalf("sipbridge.StartListener(0) error = %v, want nil", err)
	}
	if !sipbridge.Default().Listening() {
		t.Fatal("Default().Listening() = false after start, want true")
	}

	if err := sipbridge.Send("127.0.0.1", 5060, []byte("test")); err != nil {
		t.Fatalf("sipbridge.Send(...) error = %v, want nil", err)
	}

	sipbridge.StopListener()
	if sipbridge.Default().Listening() {
		t.Fatal("Default().Listening() = true after stop, want false")
	}
}
