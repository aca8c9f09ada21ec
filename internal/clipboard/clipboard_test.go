package clipboard

import (
	"testing"

	"golang.design/x/clipboard"
)

func TestInit_Idempotent(t *testing.T) {
	first := Init()
	second := Init()

	if (first == nil) != (second == nil) {
		t.Errorf("Init() results differ: %v then %v", first, second)
	}
}

func TestWriteText_RoundTrip(t *testing.T) {
	if err := Init(); err != nil {
		t.Skipf("clipboard unavailable: %v", err)
	}

	if err := WriteText("inkwell clipboard test"); err != nil {
		t.Fatalf("WriteText() error = %v", err)
	}

	got := string(clipboard.Read(clipboard.FmtText))
	if got != "inkwell clipboard test" {
		t.Errorf("clipboard holds %q, want %q", got, "inkwell clipboard test")
	}
}
