package options

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/deck/pkg/app"
	"tableflip.dev/deck/pkg/question"
)

// QuestionOptions holds the question field flags shared by add and edit.
type QuestionOptions struct {
	Title       string
	Content     string
	Explanation string
	Code        string
	CodeFile    string
	Tags        string
}

func AddQuestionArgs(cmd *cobra.Command, o *QuestionOptions) {
	cmd.Flags().StringVarP(&o.Title, "title", "t", "",
		"Question title.")
	cmd.Flags().StringVarP(&o.Content, "content", "c", "",
		"Question body.")
	cmd.Flags().StringVarP(&o.Explanation, "explanation", "e", "",
		"Explanation, rendered as Markdown.")
	cmd.Flags().StringVar(&o.Code, "code", "",
		"Code snippet.")
	cmd.Flags().StringVar(&o.CodeFile, "code-file", "",
		"Read the code snippet from a file.")
	cmd.Flags().StringVar(&o.Tags, "tags", "",
		`Comma separated tags, example: --tags="algorithms, search".`)
}

func (o *QuestionOptions) code() (string, error) {
	if o.CodeFile == "" {
		return o.Code, nil
	}
	if o.Code != "" {
		return "", fmt.Errorf("use either --code or --code-file, not both")
	}
	b, err := os.ReadFile(o.CodeFile)
	if err != nil {
		return "", fmt.Errorf("read code file: %w", err)
	}
	return string(b), nil
}

// Fields builds create input. args, when given, form the title unless
// --title was set.
func (o *QuestionOptions) Fields(args []string) (question.Fields, error) {
	code, err := o.code()
	if err != nil {
		return question.Fields{}, err
	}
	title := o.Title
	if title == "" && len(args) > 0 {
		title = strings.Join(args, " ")
	}
	return question.Fields{
		Title:       title,
		Content:     o.Content,
		Explanation: o.Explanation,
		CodeSnippet: code,
		Tags:        o.Tags,
	}, nil
}

// Patch builds edit input from the flags the user actually set.
func (o *QuestionOptions) Patch(cmd *cobra.Command) (app.Patch, error) {
	var p app.Patch
	changed := cmd.Flags().Changed
	if changed("title") {
		p.Title = &o.Title
	}
	if changed("content") {
		p.Content = &o.Content
	}
	if changed("explanation") {
		p.Explanation = &o.Explanation
	}
	if changed("code") || changed("code-file") {
		code, err := o.code()
		if err != nil {
			return p, err
		}
		p.CodeSnippet = &code
	}
	if changed("tags") {
		p.Tags = &o.Tags
	}
	return p, nil
}
