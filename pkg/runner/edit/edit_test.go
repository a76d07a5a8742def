package edit

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/deck/pkg/app"
	"tableflip.dev/deck/pkg/config"
	"tableflip.dev/deck/pkg/question"
)

func TestEdit(t *testing.T) {
	color.NoColor = true
	s, err := app.Open(&config.Config{Path: t.TempDir()}, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()
	q, _ := s.Add(context.Background(), question.Fields{Title: "Heap", Content: "a tree", Tags: "ds"})

	tags := "ds, priority"
	var buf bytes.Buffer
	e := Edit{Service: s, Out: &buf, ID: q.ID, Patch: app.Patch{Tags: &tags}}
	if err := e.Do(context.Background()); err != nil {
		t.Fatalf("edit: %v", err)
	}
	got, _ := s.Store.Get(q.ID)
	if got.Content != "a tree" || len(got.Tags) != 2 || got.Tags[1] != "priority" {
		t.Fatalf("unexpected question after edit %#v", got)
	}
	if !strings.Contains(buf.String(), "Updated") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}
