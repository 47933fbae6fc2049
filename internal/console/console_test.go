package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/pkg/errors"
)

func init() {
	color.NoColor = true
}

func TestTokensAcrossLines(t *testing.T) {
	out := &bytes.Buffer{}
	c := New(strings.NewReader("1 42\n  85.5\nabc\n"), out)

	choice, err := c.Prompt("> ")
	if err != nil || choice != "1" {
		t.Fatalf("Invalid choice %q: %v", choice, err)
	}

	id, ok, err := c.PromptUint("Enter Teacher ID: ")
	if err != nil || !ok || id != 42 {
		t.Fatalf("Invalid teacher id %d (%v): %v", id, ok, err)
	}

	mark, ok, err := c.PromptFloat("mark: ")
	if err != nil || !ok || mark != 85.5 {
		t.Fatalf("Invalid mark %f (%v): %v", mark, ok, err)
	}

	_, ok, err = c.PromptFloat("mark: ")
	if err != nil || ok {
		t.Fatalf("Malformed mark should be reported as not ok, got %v: %v", ok, err)
	}

	_, err = c.Token()
	if !errors.Is(err, ErrClosed) {
		t.Fatalf("Expected closed input, got %v", err)
	}

	if out.String() != "> Enter Teacher ID: mark: mark: " {
		t.Fatalf("Unexpected prompts %q", out.String())
	}
}

func TestNegativeTeacherIDIsMalformed(t *testing.T) {
	c := New(strings.NewReader("-3"), &bytes.Buffer{})
	_, ok, err := c.PromptUint("")
	if err != nil || ok {
		t.Fatalf("Negative id should be rejected, got %v: %v", ok, err)
	}
}
