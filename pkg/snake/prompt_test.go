package snake

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestPromptFlagsSkipsGivenFlags(t *testing.T) {
	var title string
	cmd := &cobra.Command{Use: "add"}
	cmd.Flags().StringVar(&title, "title", "", "Title.")
	if err := cmd.Flags().Set("title", "Morning"); err != nil {
		t.Fatalf("set: %v", err)
	}

	out := &bytes.Buffer{}
	p := &Prompter{In: strings.NewReader(""), Out: out}
	if err := p.PromptFlags(cmd, "title"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if title != "Morning" || out.Len() != 0 {
		t.Fatalf("expected no prompt, got title %q output %q", title, out.String())
	}
}

func TestPromptFlagsUnknown(t *testing.T) {
	cmd := &cobra.Command{Use: "add"}
	p := &Prompter{In: strings.NewReader(""), Out: &bytes.Buffer{}}
	err := p.PromptFlags(cmd, "nope")
	if err == nil || !strings.Contains(err.Error(), "nope") {
		t.Fatalf("expected unknown flag error, got %v", err)
	}
}
