package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorFormat(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "without cause",
			err:  New(ErrCodeInvalidColor, "incorrect color: %q", "bug_color"),
			want: `INVALID_COLOR: incorrect color: "bug_color"`,
		},
		{
			name: "with cause",
			err:  Wrap(ErrCodeFileNotFound, stderrors.New("no such file"), "read tree.json"),
			want: "FILE_NOT_FOUND: read tree.json: no such file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeInvalidSize, "size 125 out of range")

	if !Is(err, ErrCodeInvalidSize) {
		t.Error("Is() = false for matching code")
	}
	if Is(err, ErrCodeInvalidColor) {
		t.Error("Is() = true for non-matching code")
	}
	if Is(stderrors.New("plain"), ErrCodeInvalidSize) {
		t.Error("Is() = true for non-structured error")
	}
}

func TestIsThroughWrapping(t *testing.T) {
	inner := New(ErrCodeDegenerateInterval, "a = b")
	outer := fmt.Errorf("layout failed: %w", inner)

	if !Is(outer, ErrCodeDegenerateInterval) {
		t.Error("Is() should unwrap fmt.Errorf chains")
	}
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("root cause")
	err := Wrap(ErrCodeInternal, cause, "wrapped")

	if !stderrors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeInvalidDimension, "width 5")); got != ErrCodeInvalidDimension {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeInvalidDimension)
	}
	if got := GetCode(stderrors.New("plain")); got != "" {
		t.Errorf("GetCode() = %q for plain error, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidStyleFormat, "missing @<size> suffix")

	msg := UserMessage(err)
	if strings.Contains(msg, string(ErrCodeInvalidStyleFormat)) {
		t.Errorf("UserMessage() = %q should not contain the code", msg)
	}
	if msg != "missing @<size> suffix" {
		t.Errorf("UserMessage() = %q", msg)
	}
}
