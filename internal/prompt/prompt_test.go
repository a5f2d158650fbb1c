package prompt

import (
	"strings"
	"testing"
)

func TestTerminalReadLineTrims(t *testing.T) {
	var out strings.Builder
	term := NewTerminal(strings.NewReader("  hello world  \n"), &out)

	got, err := term.ReadLine("say something")
	if err != nil {
		t.Fatalf("ReadLine: %v", err)
	}
	if got != "hello world" {
		t.Errorf("got %q", got)
	}
	if !strings.Contains(out.String(), "==> say something") {
		t.Errorf("prompt not printed: %q", out.String())
	}
}

func TestTerminalReadLineWithoutTrailingNewline(t *testing.T) {
	var out strings.Builder
	term := NewTerminal(strings.NewReader("y"), &out)

	got, err := term.ReadLine("finish?")
	if err != nil {
		t.Fatalf("ReadLine: %v", err)
	}
	if got != "y" {
		t.Errorf("got %q", got)
	}
}

func TestTerminalReadIntRepromptsUntilValid(t *testing.T) {
	var out strings.Builder
	term := NewTerminal(strings.NewReader("abc\n99\n3\n"), &out)

	got, err := term.ReadInt("pick", 1, 5)
	if err != nil {
		t.Fatalf("ReadInt: %v", err)
	}
	if got != 3 {
		t.Errorf("got %d", got)
	}
	if n := strings.Count(out.String(), "enter a number between 1 and 5"); n != 2 {
		t.Errorf("re-prompt count = %d, want 2", n)
	}
}

func TestTerminalReadIntEOF(t *testing.T) {
	var out strings.Builder
	term := NewTerminal(strings.NewReader(""), &out)

	if _, err := term.ReadInt("pick", 1, 5); err == nil {
		t.Fatal("expected error on exhausted input")
	}
}
