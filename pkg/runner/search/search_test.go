package search

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

func newService(t *testing.T) *app.Service {
	t.Helper()
	color.NoColor = true
	s, err := app.Open(&config.Config{Path: t.TempDir()}, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	for _, title := range []string{"Binary Search", "Binary Tree", "Heap"} {
		if _, err := s.Add(context.Background(), question.Fields{Title: title}); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	return s
}

func TestSearch(t *testing.T) {
	var buf bytes.Buffer
	s := Search{Service: newService(t), Out: &buf, Query: "bin"}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("search: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, " 1. Binary Search") || !strings.Contains(out, " 2. Binary Tree") || strings.Contains(out, "Heap") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestSearchNoMatches(t *testing.T) {
	var buf bytes.Buffer
	s := Search{Service: newService(t), Out: &buf, Query: "graph"}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("search: %v", err)
	}
	if !strings.Contains(buf.String(), "no matches") {
		t.Fatalf("unexpected output:\n%s", buf.String())
	}
}

func TestSearchEmptyQueryListsAll(t *testing.T) {
	var buf bytes.Buffer
	s := Search{Service: newService(t), Out: &buf, JSON: true}
	if err := s.Do(context.Background()); err != nil {
		t.Fatalf("search: %v", err)
	}
	qs, err := question.UnmarshalList(buf.Bytes())
	if err != nil || len(qs) != 3 {
		t.Fatalf("unexpected json %q: %v", buf.String(), err)
	}
}
