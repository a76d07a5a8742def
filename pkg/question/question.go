// Package question defines the flashcard record stored by deck.
package question

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Question is a stored flashcard: a title, a body, an optional explanation
// and code snippet, and an ordered list of tags.
type Question struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Explanation string   `json:"explanation"`
	CodeSnippet string   `json:"codeSnippet"`
	Tags        []string `json:"tags"`
}

// Fields is the raw form input for a question. Tags is the comma separated
// text the user typed.
type Fields struct {
	Title       string
	Content     string
	Explanation string
	CodeSnippet string
	Tags        string
}

// FromFields builds a question from raw input. The title is trimmed and tags
// are parsed; content, explanation and code are kept verbatim.
func FromFields(id int64, f Fields) Question {
	return Question{
		ID:          id,
		Title:       strings.TrimSpace(f.Title),
		Content:     f.Content,
		Explanation: f.Explanation,
		CodeSnippet: f.CodeSnippet,
		Tags:        ParseTags(f.Tags),
	}
}

// Fields returns the question as form input, the inverse of FromFields.
func (q Question) Fields() Fields {
	return Fields{
		Title:       q.Title,
		Content:     q.Content,
		Explanation: q.Explanation,
		CodeSnippet: q.CodeSnippet,
		Tags:        JoinTags(q.Tags),
	}
}

// HasExplanation reports whether the explanation block should be shown.
func (q Question) HasExplanation() bool {
	return q.Explanation != ""
}

// HasCode reports whether the code block should be shown.
func (q Question) HasCode() bool {
	return q.CodeSnippet != ""
}

// Clone returns a deep copy so callers cannot alias the tag slice.
func (q Question) Clone() Question {
	out := q
	out.Tags = make([]string, len(q.Tags))
	copy(out.Tags, q.Tags)
	return out
}

func (q Question) String() string {
	return fmt.Sprintf("%d %s", q.ID, q.Title)
}

// ParseTags splits on commas, trims each tag and drops empty ones. The
// result is never nil.
func ParseTags(raw string) []string {
	tags := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// JoinTags renders tags the way the form shows them.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// MarshalList serialises the full question list.
func MarshalList(qs []Question) ([]byte, error) {
	out := make([]Question, len(qs))
	for i, q := range qs {
		out[i] = q
		if out[i].Tags == nil {
			out[i].Tags = []string{}
		}
	}
	return json.Marshal(out)
}

// UnmarshalList deserialises a question list. Empty input yields an empty
// list; a record without tags gets an empty tag slice.
func UnmarshalList(data []byte) ([]Question, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return []Question{}, nil
	}
	var qs []Question
	if err := json.Unmarshal(data, &qs); err != nil {
		return nil, err
	}
	if qs == nil {
		qs = []Question{}
	}
	for i := range qs {
		if qs[i].Tags == nil {
			qs[i].Tags = []string{}
		}
	}
	return qs, nil
}
