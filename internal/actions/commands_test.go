package actions_test

import (
	"bytes"
	"testing"

	"deploynotify/internal/actions"
)

func TestSetFailedEscapesMessage(t *testing.T) {
	var buf bytes.Buffer
	if err := actions.SetFailed(&buf, "Teams webhook failed: 500\nbody 100%"); err != nil {
		t.Fatalf("SetFailed: %v", err)
	}
	want := "::error::Teams webhook failed: 500%0Abody 100%25\n"
	if buf.String() != want {
		t.Fatalf("got %q want %q", buf.String(), want)
	}
}
