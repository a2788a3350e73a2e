package terminal

import (
	"bytes"
	"os"
	"testing"
)

func TestClampWidth(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{0, MinWidth},
		{MinWidth - 1, MinWidth},
		{60, 60},
		{MaxWidth, MaxWidth},
		{250, MaxWidth},
	}
	for _, tt := range tests {
		if got := ClampWidth(tt.in); got != tt.want {
			t.Errorf("ClampWidth(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestNotATerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatalf("CreateTemp() error = %v", err)
	}
	defer f.Close()

	term := FromFile(f)
	if term.IsTerminal() {
		t.Fatal("IsTerminal() = true for a regular file")
	}
	if got := term.Width(); got != DefaultWidth {
		t.Errorf("Width() = %d, want %d", got, DefaultWidth)
	}

	var buf bytes.Buffer
	term.Clear(&buf)
	if buf.Len() != 0 {
		t.Errorf("Clear() wrote %q to a non-terminal", buf.String())
	}
}
