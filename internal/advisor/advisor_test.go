package advisor

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestAskWithoutCredentialFailsBeforeAnyNetworkCall(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")

	start := time.Now()
	_, err := New().Ask(context.Background(), "What is the statute of limitations for contract claims?")

	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("got %v, want ErrMissingAPIKey", err)
	}
	// The credential check is eager; a network attempt would take
	// far longer than this.
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("Ask took %v before failing, expected an immediate return", elapsed)
	}
}

func TestProviderErrorPassesMessageThrough(t *testing.T) {
	cause := errors.New("quota exceeded for model")
	err := &ProviderError{Err: cause}

	if err.Error() != "quota exceeded for model" {
		t.Errorf("Error() = %q, want the provider message verbatim", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("ProviderError should unwrap to its cause")
	}
}
