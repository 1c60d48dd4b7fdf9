package errorutil

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewWrapperError(t *testing.T) {
	t.Parallel()

	const sentinel Error = "sentinel"

	cases := []struct {
		name    string
		args    []any
		wantMsg string
	}{
		{"no args", nil, "sentinel"},
		{"error arg", []any{errors.New("cause")}, "sentinel: cause"},
		{"wrapped error arg kept", []any{fmt.Errorf("%w: cause", sentinel)}, "sentinel: cause"},
		{"message", []any{"detail"}, "sentinel: detail"},
		{"format and args", []any{"detail %d", 42}, "sentinel: detail 42"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			err := NewWrapperError(sentinel, c.args...)
			if !errors.Is(err, sentinel) {
				t.Errorf("errors.Is(err, sentinel) = false, want true")
			}
			if got := err.Error(); got != c.wantMsg {
				t.Errorf("err.Error() = %q, want %q", got, c.wantMsg)
			}
		})
	}
}

func TestNewInvalidArgumentError(t *testing.T) {
	t.Parallel()

	err := NewInvalidArgumentError("empty host")
	if !errors.Is(err, ErrInvalidArgument) {
		t.Error("errors.Is(err, ErrInvalidArgument) = false, want true")
	}
	if got, want := err.Error(), "invalid argument: empty host"; got != want {
		t.Errorf("err.Error() = %q, want %q", got, want)
	}
}
