package status_test

import (
	"testing"

	"deploynotify/internal/status"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "success", want: status.TextSuccess},
		{raw: "SUCCESS", want: status.TextSuccess},
		{raw: "  Success\n", want: status.TextSuccess},
		{raw: "failure", want: status.TextFailed},
		{raw: "failed", want: status.TextFailed},
		{raw: "cancelled", want: status.TextFailed},
		{raw: "successful", want: status.TextFailed},
		{raw: "", want: status.TextFailed},
	}

	for _, tc := range tests {
		got := status.Resolve(tc.raw)
		if got.Text != tc.want {
			t.Fatalf("Resolve(%q) text = %q, want %q", tc.raw, got.Text, tc.want)
		}
	}
}

func TestResolveTuples(t *testing.T) {
	ok := status.Resolve("success")
	if ok.Color != "28a745" || ok.Emoji != "✅" {
		t.Fatalf("unexpected success tuple: %+v", ok)
	}
	failed := status.Resolve("nope")
	if failed.Color != "dc3545" || failed.Emoji != "❌" {
		t.Fatalf("unexpected failure tuple: %+v", failed)
	}
	if failed.HexColor() != "#dc3545" {
		t.Fatalf("unexpected hex color %q", failed.HexColor())
	}
}
