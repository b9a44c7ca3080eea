package errs

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestMalformedStoreError_IsAndUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("unexpected end of JSON input")
	err := fmt.Errorf("load: %w", &MalformedStoreError{Key: "moments", Err: cause})

	if !errors.Is(err, ErrMalformedStore) {
		t.Fatalf("want ErrMalformedStore match")
	}
	if !errors.Is(err, cause) {
		t.Fatalf("want cause to be reachable")
	}
	var mse *MalformedStoreError
	if !errors.As(err, &mse) || mse.Key != "moments" {
		t.Fatalf("errors.As failed: %v", err)
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatalf("must not match unrelated sentinel")
	}
}

func TestProviderError_Message(t *testing.T) {
	t.Parallel()

	err := &ProviderError{Op: "sign in", Message: "popup closed"}
	if !errors.Is(err, ErrProvider) {
		t.Fatalf("want ErrProvider match")
	}
	if got := err.Error(); got != "sign in: popup closed" {
		t.Fatalf("got %q", got)
	}

	wrapped := &ProviderError{Op: "sign out", Message: "network", Err: errors.New("dial tcp")}
	if !strings.Contains(wrapped.Error(), "dial tcp") {
		t.Fatalf("cause missing in %q", wrapped.Error())
	}
}

func TestValidation_WrapsSentinel(t *testing.T) {
	t.Parallel()

	err := Validation("title is %s", "required")
	if !errors.Is(err, ErrValidation) {
		t.Fatalf("want ErrValidation")
	}
	if !strings.Contains(err.Error(), "title is required") {
		t.Fatalf("message lost: %q", err.Error())
	}
}
