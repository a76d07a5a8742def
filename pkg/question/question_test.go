package question

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseTags(t *testing.T) {
	tests := map[string]struct {
		raw  string
		want []string
	}{
		"empty":          {raw: "", want: []string{}},
		"blank entries":  {raw: "a, ,b", want: []string{"a", "b"}},
		"keeps order":    {raw: "ds, algorithms ,java", want: []string{"ds", "algorithms", "java"}},
		"only commas":    {raw: " , ,, ", want: []string{}},
		"inner spaces":   {raw: "binary tree", want: []string{"binary tree"}},
		"trailing comma": {raw: "x,", want: []string{"x"}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := ParseTags(tc.raw)
			if got == nil {
				t.Fatalf("ParseTags(%q) returned nil", tc.raw)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("ParseTags(%q) = %#v, want %#v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestFromFieldsPreservesWhitespace(t *testing.T) {
	f := Fields{
		Title:       "  Q1  ",
		Content:     "  indented\n\tbody ",
		Explanation: "\n**bold**\n",
		CodeSnippet: "    int x = 1;\n",
		Tags:        "a, ,b",
	}
	q := FromFields(7, f)
	if q.ID != 7 {
		t.Fatalf("expected id 7, got %d", q.ID)
	}
	if q.Title != "Q1" {
		t.Fatalf("expected trimmed title, got %q", q.Title)
	}
	if q.Content != f.Content || q.Explanation != f.Explanation || q.CodeSnippet != f.CodeSnippet {
		t.Fatalf("expected verbatim text fields, got %#v", q)
	}
	if !reflect.DeepEqual(q.Tags, []string{"a", "b"}) {
		t.Fatalf("unexpected tags %#v", q.Tags)
	}

	back := q.Fields()
	if back.Tags != "a, b" {
		t.Fatalf("expected joined tags, got %q", back.Tags)
	}
}

func TestCloneDoesNotAliasTags(t *testing.T) {
	q := Question{ID: 1, Title: "t", Tags: []string{"a"}}
	c := q.Clone()
	c.Tags[0] = "changed"
	if q.Tags[0] != "a" {
		t.Fatalf("clone shares tag storage")
	}
}

func TestMarshalListWireFormat(t *testing.T) {
	data, err := MarshalList([]Question{{ID: 1, Title: "Binary Search"}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got := string(data)
	for _, want := range []string{`"id":1`, `"title":"Binary Search"`, `"codeSnippet":""`, `"tags":[]`} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %s in %s", want, got)
		}
	}
}

func TestUnmarshalList(t *testing.T) {
	qs, err := UnmarshalList([]byte(`[{"id":2,"title":"Binary Tree","content":"c","tags":["ds"]},{"id":3,"title":"x"}]`))
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(qs) != 2 || qs[0].Title != "Binary Tree" || qs[0].Tags[0] != "ds" {
		t.Fatalf("unexpected list %#v", qs)
	}
	if qs[1].Tags == nil {
		t.Fatalf("expected empty tag slice for record without tags")
	}

	empty, err := UnmarshalList(nil)
	if err != nil || len(empty) != 0 {
		t.Fatalf("expected empty list, got %#v, %v", empty, err)
	}

	if _, err := UnmarshalList([]byte(`{not json`)); err == nil {
		t.Fatalf("expected parse error")
	}
}
