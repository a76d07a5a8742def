package options

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func newCmd(o *QuestionOptions) *cobra.Command {
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	AddQuestionArgs(cmd, o)
	return cmd
}

func TestFieldsTitleFromArgs(t *testing.T) {
	o := &QuestionOptions{}
	cmd := newCmd(o)
	if err := cmd.ParseFlags([]string{"--tags", "a, b"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	f, err := o.Fields([]string{"Binary", "Search"})
	if err != nil {
		t.Fatalf("fields: %v", err)
	}
	if f.Title != "Binary Search" || f.Tags != "a, b" {
		t.Fatalf("unexpected fields %#v", f)
	}
}

func TestFieldsCodeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Main.java")
	if err := os.WriteFile(path, []byte("class Main {}\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	o := &QuestionOptions{Title: "t", CodeFile: path}
	f, err := o.Fields(nil)
	if err != nil {
		t.Fatalf("fields: %v", err)
	}
	if f.CodeSnippet != "class Main {}\n" {
		t.Fatalf("unexpected code %q", f.CodeSnippet)
	}

	o.Code = "x"
	if _, err := o.Fields(nil); err == nil {
		t.Fatalf("expected error for --code with --code-file")
	}
}

func TestPatchOnlyChangedFlags(t *testing.T) {
	o := &QuestionOptions{}
	cmd := newCmd(o)
	if err := cmd.ParseFlags([]string{"--title", "New", "--tags", ""}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	p, err := o.Patch(cmd)
	if err != nil {
		t.Fatalf("patch: %v", err)
	}
	if p.Title == nil || *p.Title != "New" {
		t.Fatalf("expected title patch")
	}
	if p.Tags == nil || *p.Tags != "" {
		t.Fatalf("expected tags cleared")
	}
	if p.Content != nil || p.Explanation != nil || p.CodeSnippet != nil {
		t.Fatalf("unset flags should not patch: %#v", p)
	}
}
