package notifications_test

import (
	"errors"
	"strings"
	"testing"

	"deploynotify/internal/notifications"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := notifications.Wrap(notifications.ErrDelivery, "teams", "post card", "failed", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, notifications.ErrDelivery) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"teams", "post card", "failed", "boom"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapDefaults(t *testing.T) {
	err := notifications.Wrap(nil, "", "", "", nil)
	if !errors.Is(err, notifications.ErrDelivery) {
		t.Fatalf("expected delivery marker by default, got %v", err)
	}
	if !strings.Contains(err.Error(), "notification failure") {
		t.Fatalf("expected generic detail, got %q", err.Error())
	}
	if errors.Is(err, notifications.ErrConfiguration) {
		t.Fatal("markers must stay distinct")
	}
}
