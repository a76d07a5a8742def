package printers

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/deck/pkg/question"
	"tableflip.dev/deck/pkg/render"
)

type PrettyPrint struct {
	ShowID   bool
	Out      io.Writer
	Renderer *render.Renderer
	Width    int
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out != nil {
		return pp.Out
	}
	return color.Output
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " question")
	default:
		_, _ = c.Fprintln(pp.out(), " questions")
	}
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprint(pp.out(), " none\n\n")
}

// Table prints one row per question.
func (pp *PrettyPrint) Table(qs ...question.Question) {
	if len(qs) == 0 {
		pp.none()
		return
	}
	bold := color.New(color.Bold)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.Wrap = true
	if pp.ShowID {
		tbl.AddRow(bold.Sprint("ID"), bold.Sprint("Title"), bold.Sprint("Tags"), bold.Sprint(""))
	} else {
		tbl.AddRow(bold.Sprint("Title"), bold.Sprint("Tags"), bold.Sprint(""))
	}
	for _, q := range qs {
		title := render.Sanitize(q.Title)
		tags := render.Sanitize(question.JoinTags(q.Tags))
		if pp.ShowID {
			tbl.AddRow(y.Sprint(strconv.FormatInt(q.ID, 10)), title, tags, marks(q))
		} else {
			tbl.AddRow(title, tags, marks(q))
		}
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
	pp.NewLine()
}

// marks flags the optional blocks a question carries.
func marks(q question.Question) string {
	m := ""
	if q.HasExplanation() {
		m += "E"
	}
	if q.HasCode() {
		m += "C"
	}
	return m
}

// Suggestions prints a numbered suggestion list.
func (pp *PrettyPrint) Suggestions(qs ...question.Question) {
	if len(qs) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprintln(pp.out(), " no matches")
		return
	}
	n := color.New(color.Faint)
	for i, q := range qs {
		_, _ = n.Fprintf(pp.out(), "%2d. ", i+1)
		if pp.ShowID {
			_, _ = n.Fprintf(pp.out(), "%d  ", q.ID)
		}
		_, _ = fmt.Fprintln(pp.out(), render.Summary(q))
	}
}

// Card prints the detail card for q.
func (pp *PrettyPrint) Card(q question.Question) {
	r := pp.Renderer
	if r == nil {
		r = render.New(nil, nil)
	}
	_, _ = fmt.Fprintln(pp.out(), r.Detail(q, pp.Width))
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v interface{}) error {
	if w == nil {
		w = color.Output
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
