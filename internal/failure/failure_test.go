package failure

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Is(t *testing.T) {
	root := errors.New("connection reset")

	tests := []struct {
		name     string
		err      error
		target   error
		expected bool
	}{
		{
			name:     "success - decode matches its sentinel",
			err:      Decode("decode record", root),
			target:   ErrDecode,
			expected: true,
		},
		{
			name:     "success - publish matches the wrapped error",
			err:      Publish("create", root),
			target:   root,
			expected: true,
		},
		{
			name:     "success - wrapped twice still matches",
			err:      fmt.Errorf("failed to write audit entry: %w", StoreWrite("put item", root)),
			target:   ErrStoreWrite,
			expected: true,
		},
		{
			name:     "error - mapping does not match publish",
			err:      Mapping("map product", root),
			target:   ErrPublish,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errors.Is(tt.err, tt.target); got != tt.expected {
				t.Errorf("expected errors.Is=%v, got %v", tt.expected, got)
			}
		})
	}
}

func TestKindOf(t *testing.T) {
	kind, ok := KindOf(fmt.Errorf("outer: %w", Mapping("map", errors.New("missing"))))
	if !ok || kind != KindMapping {
		t.Errorf("expected kind %q, got %q (ok=%v)", KindMapping, kind, ok)
	}

	if _, ok := KindOf(errors.New("plain")); ok {
		t.Error("expected unclassified error to report ok=false")
	}
}

func TestError_Error(t *testing.T) {
	err := Publish("replace", errors.New("unexpected status 500"))
	if err.Error() != "replace: unexpected status 500" {
		t.Errorf("unexpected message %q", err.Error())
	}

	bare := &Error{Kind: KindDecode, Op: "decode record"}
	if bare.Error() != "decode record: decode" {
		t.Errorf("unexpected message %q", bare.Error())
	}
}
