// Package form captures create and edit input for questions and commits it
// to the store.
package form

import (
	"errors"
	"strings"

	"go.uber.org/zap"

	"tableflip.dev/deck/pkg/question"
	"tableflip.dev/deck/pkg/store"
)

// ErrTitleRequired is returned when the title is blank after trimming.
var ErrTitleRequired = errors.New("form: title is required")

// Mode distinguishes creating a question from editing one.
type Mode int

const (
	Create Mode = iota
	Edit
)

func (m Mode) String() string {
	if m == Edit {
		return "Edit Question"
	}
	return "Add New Question"
}

// Store is the subset of store.Store the form writes through.
type Store interface {
	NextID() int64
	Add(q question.Question) error
	Update(id int64, q question.Question) (bool, error)
	Remove(id int64) (bool, error)
	Get(id int64) (question.Question, bool)
}

// Confirm asks the user whether q may be deleted.
type Confirm func(q question.Question) bool

// Controller holds the form fields and the create/edit intent.
type Controller struct {
	store     Store
	log       *zap.Logger
	mode      Mode
	editingID int64
	fields    question.Fields
}

// New returns a Controller in create mode with empty fields.
func New(store Store, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	return &Controller{store: store, log: log}
}

// Mode is the current intent.
func (c *Controller) Mode() Mode { return c.mode }

// EditingID is the id being edited; zero in create mode.
func (c *Controller) EditingID() int64 { return c.editingID }

// Fields returns the current input.
func (c *Controller) Fields() question.Fields { return c.fields }

// SetFields replaces the current input.
func (c *Controller) SetFields(f question.Fields) { c.fields = f }

// OpenForCreate clears the fields for a new question.
func (c *Controller) OpenForCreate() {
	c.mode = Create
	c.editingID = 0
	c.fields = question.Fields{}
}

// OpenForEdit fills the fields from q.
func (c *Controller) OpenForEdit(q question.Question) {
	c.mode = Edit
	c.editingID = q.ID
	c.fields = q.Fields()
}

// Reset returns to an empty create form.
func (c *Controller) Reset() {
	c.OpenForCreate()
}

// Submit commits the current fields according to the mode.
func (c *Controller) Submit() (question.Question, error) {
	if c.mode == Edit {
		return c.SubmitEdit(c.editingID, c.fields)
	}
	return c.SubmitNew(c.fields)
}

// SubmitNew validates f, assigns a fresh id and adds the question. A
// validation failure or a rejected id leaves the store and the form
// untouched. A store write failure is returned but the question stays in
// memory and the form resets.
func (c *Controller) SubmitNew(f question.Fields) (question.Question, error) {
	if strings.TrimSpace(f.Title) == "" {
		return question.Question{}, ErrTitleRequired
	}
	q := question.FromFields(c.store.NextID(), f)
	err := c.store.Add(q)
	if errors.Is(err, store.ErrDuplicateID) {
		c.log.Error("question rejected", zap.Int64("id", q.ID), zap.Error(err))
		return question.Question{}, err
	}
	if err != nil {
		c.log.Error("add question", zap.Int64("id", q.ID), zap.Error(err))
	} else {
		c.log.Info("question added", zap.Int64("id", q.ID), zap.String("title", q.Title))
	}
	c.Reset()
	return q, err
}

// SubmitEdit validates f and replaces the question with the given id. A
// vanished id is a silent no-op.
func (c *Controller) SubmitEdit(id int64, f question.Fields) (question.Question, error) {
	if strings.TrimSpace(f.Title) == "" {
		return question.Question{}, ErrTitleRequired
	}
	q := question.FromFields(id, f)
	found, err := c.store.Update(id, q)
	switch {
	case err != nil:
		c.log.Error("update question", zap.Int64("id", id), zap.Error(err))
	case !found:
		c.log.Debug("edited question no longer exists", zap.Int64("id", id))
	default:
		c.log.Info("question updated", zap.Int64("id", id))
	}
	c.Reset()
	return q, err
}

// Delete removes the question with the given id once confirm agrees. It
// reports whether a question was removed. confirm is not called when the id
// does not exist.
func (c *Controller) Delete(id int64, confirm Confirm) (bool, error) {
	q, ok := c.store.Get(id)
	if !ok {
		return false, nil
	}
	if confirm == nil || !confirm(q) {
		return false, nil
	}
	removed, err := c.store.Remove(id)
	if err != nil {
		c.log.Error("delete question", zap.Int64("id", id), zap.Error(err))
	} else if removed {
		c.log.Info("question deleted", zap.Int64("id", id))
	}
	return removed, err
}
