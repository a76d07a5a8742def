// Package teaui hosts the Bubble Tea program for the deck UI.
package teaui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"tableflip.dev/deck/pkg/app"
	"tableflip.dev/deck/pkg/form"
	"tableflip.dev/deck/pkg/question"
	"tableflip.dev/deck/pkg/render"
	"tableflip.dev/deck/pkg/selection"
	"tableflip.dev/deck/pkg/store"
	"tableflip.dev/deck/pkg/tui/components/help"
	"tableflip.dev/deck/pkg/tui/components/questionform"
	"tableflip.dev/deck/pkg/tui/events"
	"tableflip.dev/deck/pkg/tui/keymap"
	"tableflip.dev/deck/pkg/tui/overlay"
	"tableflip.dev/deck/pkg/tui/theme"
)

// Model states
type mode int

const (
	modeBrowse mode = iota
	modeForm
	modeConfirm
	modeHelp
)

func (m mode) String() string {
	switch m {
	case modeForm:
		return "form"
	case modeConfirm:
		return "confirm"
	case modeHelp:
		return "help"
	default:
		return "browse"
	}
}

type focusArea int

const (
	focusSearch focusArea = iota
	focusGrid
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	maxFormWidth  = 90
)

// Options configures the UI.
type Options struct {
	Renderer      *render.Renderer
	MarkdownStyle string
	Logger        *zap.Logger
}

// Model contains UI state
type Model struct {
	svc    *app.Service
	log    *zap.Logger
	ctx    context.Context
	cancel context.CancelFunc

	keys     keymap.KeyMap
	theme    theme.Theme
	renderer *render.Renderer

	sel  *selection.State
	ctrl *form.Controller

	mode  mode
	focus focusArea

	search textinput.Model
	grid   viewport.Model
	form   *questionform.Model
	help   *help.Model

	helpStyle string
	layout    render.Layout
	cursor    int

	confirmID    int64
	confirmTitle string

	status    string
	statusErr bool

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc

	width  int
	height int
}

// New creates a new UI model backed by the Service.
func New(svc *app.Service, opts Options) *Model {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	r := opts.Renderer
	if r == nil {
		r = render.New(nil, nil)
	}
	th := r.Theme
	keys := keymap.Default()

	ti := textinput.New()
	ti.Placeholder = "Search questions…"
	ti.Prompt = ""
	ti.CharLimit = 0
	ti.Focus()

	var ctrl *form.Controller
	if svc != nil && svc.Store != nil {
		ctrl = form.New(svc.Store, log)
	}

	ctx, cancel := context.WithCancel(context.Background())
	m := &Model{
		svc:       svc,
		log:       log,
		ctx:       ctx,
		cancel:    cancel,
		keys:      keys,
		theme:     th,
		renderer:  r,
		sel:       selection.New(),
		ctrl:      ctrl,
		mode:      modeBrowse,
		focus:     focusSearch,
		search:    ti,
		grid:      viewport.New(defaultWidth, defaultHeight),
		form:      questionform.New(th.Modal, keys),
		helpStyle: opts.MarkdownStyle,
		width:     defaultWidth,
		height:    defaultHeight,
	}
	if svc != nil && svc.LoadErr != nil {
		m.setError("Saved questions could not be read; starting empty")
	}
	m.relayout()
	return m
}

// Init starts the cursor blink and the slot watcher.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, startWatchCmd(m.ctx, m.svc))
}

func (m *Model) questions() []question.Question {
	if m.svc == nil || m.svc.Store == nil {
		return []question.Question{}
	}
	return m.svc.Store.All()
}

func (m *Model) visible() []question.Question {
	return m.sel.Visible(m.questions())
}

func (m *Model) current() (question.Question, bool) {
	vis := m.visible()
	if m.cursor < 0 || m.cursor >= len(vis) {
		return question.Question{}, false
	}
	return vis[m.cursor], true
}

func (m *Model) setStatus(text string) {
	m.status = text
	m.statusErr = false
}

func (m *Model) setError(text string) {
	m.status = text
	m.statusErr = true
}

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event store.Event
}

type watchStoppedMsg struct{}

func startWatchCmd(parent context.Context, svc *app.Service) tea.Cmd {
	if svc == nil || svc.Store == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := svc.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

func (m *Model) handleWatchEvent(ev store.Event, cmds *[]tea.Cmd) {
	changed, err := m.svc.Store.Reload()
	if err != nil {
		m.log.Warn("reload questions", zap.String("location", ev.Location), zap.Error(err))
		m.setError("Reload failed: " + err.Error())
		m.refresh()
		return
	}
	if changed {
		*cmds = append(*cmds, events.ChangeCmd(events.ChangeReload, 0))
		m.setStatus(fmt.Sprintf("Reloaded %d questions", m.svc.Store.Len()))
	}
}

// Update handles Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.form.SetSize(min(m.width-4, maxFormWidth))
		if m.help != nil {
			m.help.SetSize(m.width-4, m.height-2)
		}
		m.relayout()
	case watchStartedMsg:
		if msg.err != nil {
			m.log.Warn("watch questions", zap.Error(msg.err))
			m.setError("ERR: watch " + msg.err.Error())
			break
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchEventMsg:
		m.handleWatchEvent(msg.event, &cmds)
		if cmd := m.waitForWatch(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case watchStoppedMsg:
		m.stopWatch()
		if m.ctx.Err() == nil {
			cmds = append(cmds, startWatchCmd(m.ctx, m.svc))
		}
	case events.FormSubmitMsg:
		m.submitForm(msg.Fields, &cmds)
	case events.FormCancelMsg:
		m.closeForm()
		m.setStatus("Cancelled")
	case events.StatusMsg:
		if msg.Error {
			m.setError(msg.Text)
		} else {
			m.setStatus(msg.Text)
		}
	case events.QuestionChangeMsg:
		m.log.Debug("questions changed", zap.String("action", string(msg.Action)), zap.Int64("id", msg.ID))
		m.refresh()
	case tea.KeyMsg:
		m.handleKeyPress(msg, &cmds)
	default:
		m.forward(msg, &cmds)
	}

	return m, tea.Batch(cmds...)
}

// forward passes non-key messages, such as cursor blinks, to the component
// that owns input.
func (m *Model) forward(msg tea.Msg, cmds *[]tea.Cmd) {
	var cmd tea.Cmd
	switch m.mode {
	case modeForm:
		m.form, cmd = m.form.Update(msg)
	case modeHelp:
		m.help, cmd = m.help.Update(msg)
	default:
		m.search, cmd = m.search.Update(msg)
	}
	if cmd != nil {
		*cmds = append(*cmds, cmd)
	}
}

func (m *Model) handleKeyPress(msg tea.KeyMsg, cmds *[]tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		m.quit(cmds)
		return
	}
	switch m.mode {
	case modeHelp:
		m.handleHelpKey(msg, cmds)
	case modeConfirm:
		m.handleConfirmKey(msg, cmds)
	case modeForm:
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		if cmd != nil {
			*cmds = append(*cmds, cmd)
		}
	default:
		if m.focus == focusSearch {
			m.handleSearchKey(msg, cmds)
		} else {
			m.handleGridKey(msg, cmds)
		}
	}
}

func (m *Model) quit(cmds *[]tea.Cmd) {
	m.stopWatch()
	m.cancel()
	*cmds = append(*cmds, tea.Quit)
}

func (m *Model) handleHelpKey(msg tea.KeyMsg, cmds *[]tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEsc, key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Quit):
		m.mode = modeBrowse
	default:
		var cmd tea.Cmd
		m.help, cmd = m.help.Update(msg)
		if cmd != nil {
			*cmds = append(*cmds, cmd)
		}
	}
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg, cmds *[]tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Yes):
		m.applyDelete(m.confirmID, cmds)
	case key.Matches(msg, m.keys.No):
		m.mode = modeBrowse
		m.confirmID = 0
		m.setStatus("Delete cancelled")
	}
}

func (m *Model) handleSearchKey(msg tea.KeyMsg, cmds *[]tea.Cmd) {
	switch {
	case msg.Type == tea.KeyUp:
		m.sel.Up()
	case msg.Type == tea.KeyDown:
		if m.sel.Mode() == selection.Suggesting {
			m.sel.Down()
		} else {
			m.focusGrid()
		}
	case msg.Type == tea.KeyEnter:
		if q, ok := m.sel.Confirm(); ok {
			m.cursor = 0
			m.setStatus("Showing " + render.Sanitize(q.Title))
		}
	case msg.Type == tea.KeyEsc:
		m.back()
	case key.Matches(msg, m.keys.Focus):
		m.focusGrid()
	case msg.Type == tea.KeyCtrlN:
		m.openCreate(cmds)
	default:
		before := m.search.Value()
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		if cmd != nil {
			*cmds = append(*cmds, cmd)
		}
		if after := m.search.Value(); after != before {
			m.sel.Type(after, m.questions())
			m.cursor = 0
		}
	}
	m.relayout()
}

func (m *Model) handleGridKey(msg tea.KeyMsg, cmds *[]tea.Cmd) {
	n := len(m.visible())
	cols := max(m.layout.Columns, 1)
	switch {
	case key.Matches(msg, m.keys.Left):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Right):
		if m.cursor < n-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Up):
		if m.cursor-cols >= 0 {
			m.cursor -= cols
		} else if m.sel.Mode() != selection.Detail {
			m.focusSearch(cmds)
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor+cols < n {
			m.cursor += cols
		}
	case key.Matches(msg, m.keys.Open):
		if q, ok := m.current(); ok {
			m.sel.Open(q)
			m.cursor = 0
			m.setStatus("Showing " + render.Sanitize(q.Title))
		}
	case msg.Type == tea.KeyEsc:
		m.back()
	case key.Matches(msg, m.keys.Focus), key.Matches(msg, m.keys.Search):
		m.focusSearch(cmds)
	case key.Matches(msg, m.keys.New):
		m.openCreate(cmds)
	case key.Matches(msg, m.keys.Edit):
		if q, ok := m.current(); ok {
			m.openEdit(q, cmds)
		}
	case key.Matches(msg, m.keys.Delete):
		if q, ok := m.current(); ok {
			m.askDelete(q.ID)
		}
	case key.Matches(msg, m.keys.Help):
		m.openHelp()
	case key.Matches(msg, m.keys.Quit):
		m.quit(cmds)
	default:
		var cmd tea.Cmd
		m.grid, cmd = m.grid.Update(msg)
		if cmd != nil {
			*cmds = append(*cmds, cmd)
		}
		return
	}
	m.relayout()
}

func (m *Model) focusGrid() {
	if len(m.visible()) == 0 {
		return
	}
	m.focus = focusGrid
	m.search.Blur()
}

func (m *Model) focusSearch(cmds *[]tea.Cmd) {
	m.focus = focusSearch
	if cmd := m.search.Focus(); cmd != nil {
		*cmds = append(*cmds, cmd)
	}
}

// back leaves the detail view, or clears a search.
func (m *Model) back() {
	switch {
	case m.sel.Back():
		m.setStatus("")
	case m.sel.Query() != "":
		m.sel.Type("", m.questions())
	default:
		return
	}
	m.cursor = 0
}

func (m *Model) openCreate(cmds *[]tea.Cmd) {
	if m.ctrl == nil {
		m.setError("No question store")
		return
	}
	m.ctrl.OpenForCreate()
	m.openForm(m.ctrl.Mode(), m.ctrl.Fields(), cmds)
}

func (m *Model) openEdit(q question.Question, cmds *[]tea.Cmd) {
	if m.ctrl == nil {
		m.setError("No question store")
		return
	}
	m.ctrl.OpenForEdit(q)
	m.openForm(m.ctrl.Mode(), m.ctrl.Fields(), cmds)
}

func (m *Model) openForm(mode form.Mode, f question.Fields, cmds *[]tea.Cmd) {
	m.mode = modeForm
	m.search.Blur()
	m.form.SetSize(min(m.width-4, maxFormWidth))
	if cmd := m.form.Open(mode, f); cmd != nil {
		*cmds = append(*cmds, cmd)
	}
}

func (m *Model) closeForm() {
	m.mode = modeBrowse
	if m.ctrl != nil {
		m.ctrl.Reset()
	}
	if m.focus == focusSearch {
		m.search.Focus()
	}
	m.relayout()
}

func (m *Model) submitForm(f question.Fields, cmds *[]tea.Cmd) {
	if m.ctrl == nil {
		m.closeForm()
		return
	}
	editing := m.ctrl.Mode() == form.Edit
	m.ctrl.SetFields(f)
	q, err := m.ctrl.Submit()
	if errors.Is(err, form.ErrTitleRequired) {
		m.form.SetError("Title is required")
		return
	}
	if errors.Is(err, store.ErrDuplicateID) {
		m.form.SetError("Not added: id already in use, try saving again")
		return
	}
	m.closeForm()

	action := events.ChangeCreate
	verb := "Added"
	if editing {
		action = events.ChangeUpdate
		verb = "Updated"
		if id, ok := m.sel.DetailID(); ok && id == q.ID {
			m.sel.Open(q)
		}
	}
	if err != nil {
		m.setError(fmt.Sprintf("%s %q but could not save: %v", verb, render.Sanitize(q.Title), err))
	} else {
		m.setStatus(fmt.Sprintf("%s %q", verb, render.Sanitize(q.Title)))
	}
	m.refresh()
	*cmds = append(*cmds, events.ChangeCmd(action, q.ID))
}

func (m *Model) askDelete(id int64) {
	if m.svc == nil || m.svc.Store == nil {
		return
	}
	q, ok := m.svc.Store.Get(id)
	if !ok {
		return
	}
	m.mode = modeConfirm
	m.confirmID = q.ID
	m.confirmTitle = q.Title
}

func (m *Model) applyDelete(id int64, cmds *[]tea.Cmd) {
	m.mode = modeBrowse
	m.confirmID = 0
	if m.ctrl == nil {
		return
	}
	removed, err := m.ctrl.Delete(id, func(question.Question) bool { return true })
	switch {
	case err != nil:
		m.setError("Deleted but could not save: " + err.Error())
	case removed:
		m.setStatus(fmt.Sprintf("Deleted %q", render.Sanitize(m.confirmTitle)))
	}
	m.confirmTitle = ""
	m.refresh()
	if removed {
		*cmds = append(*cmds, events.ChangeCmd(events.ChangeDelete, id))
	}
}

func (m *Model) openHelp() {
	if m.help == nil {
		m.help = help.New(m.width-4, m.height-2, m.helpStyle)
	} else {
		m.help.SetSize(m.width-4, m.height-2)
	}
	m.mode = modeHelp
}

// refresh re-derives suggestions and the grid after the list changed.
func (m *Model) refresh() {
	m.sel.Refresh(m.questions())
	m.relayout()
}

// relayout renders the grid into the viewport and keeps the cursor visible.
func (m *Model) relayout() {
	vis := m.visible()
	if m.search.Value() != m.sel.Query() {
		m.search.SetValue(m.sel.Query())
	}
	if m.cursor >= len(vis) {
		m.cursor = len(vis) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if len(vis) == 0 && m.focus == focusGrid {
		m.focus = focusSearch
		m.search.Focus()
	}

	width := max(m.width, render.MinCardWidth)
	m.grid.Width = width
	m.grid.Height = max(m.height-lipgloss.Height(m.headerView())-1, 3)

	var content string
	switch {
	case len(vis) == 0 && len(m.questions()) == 0:
		m.layout = render.Layout{Columns: 1}
		content = m.theme.Card.Empty.Render("No questions yet. Press ctrl+n to add one.")
	case len(vis) == 0:
		m.layout = render.Layout{Columns: 1}
		content = m.theme.Card.Empty.Render(fmt.Sprintf("No questions match %q.", render.Sanitize(m.sel.Query())))
	case m.sel.Mode() == selection.Detail:
		m.layout = render.Layout{Columns: 1, Offsets: []int{0}}
		content = m.renderer.Detail(vis[0], width)
	default:
		focused := -1
		if m.focus == focusGrid {
			focused = m.cursor
		}
		m.layout = m.renderer.Grid(vis, focused, width)
		content = m.layout.View
	}
	m.grid.SetContent(content)

	if m.cursor < len(m.layout.Offsets) {
		off := m.layout.Offsets[m.cursor]
		if off < m.grid.YOffset || off >= m.grid.YOffset+m.grid.Height {
			m.grid.SetYOffset(off)
		}
	}
}

func (m *Model) headerView() string {
	st := m.theme.Search
	box := st.Frame.Width(max(m.width, 20) - st.Frame.GetHorizontalBorderSize()).
		Render(st.Prompt.Render("Search ") + m.search.View())
	parts := []string{box}

	if m.sel.Mode() == selection.Suggesting {
		var lines []string
		for i, q := range m.sel.Suggestions() {
			line := render.Summary(q)
			if i == m.sel.Active() {
				lines = append(lines, st.Active.Render(line))
			} else {
				lines = append(lines, st.Suggestion.Render(line))
			}
		}
		panel := st.Panel.Width(max(m.width, 20) - st.Panel.GetHorizontalBorderSize()).
			Render(strings.Join(lines, "\n"))
		parts = append(parts, panel)
	}
	if m.sel.ShowBack() {
		parts = append(parts, m.theme.Footer.Back.Render("← esc back to all questions"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) statusView() string {
	if m.status != "" {
		if m.statusErr {
			return m.theme.Footer.Error.Render(m.status)
		}
		return m.theme.Footer.Status.Render(m.status)
	}
	var bindings []key.Binding
	switch m.mode {
	case modeForm:
		bindings = m.keys.FormHelp()
	case modeConfirm:
		bindings = m.keys.ConfirmHelp()
	default:
		bindings = m.keys.ShortHelp()
	}
	var hints []string
	for _, b := range bindings {
		hints = append(hints, b.Help().Key+" "+b.Help().Desc)
	}
	return m.theme.Footer.Help.Render(strings.Join(hints, " • "))
}

func (m *Model) confirmView() string {
	th := m.theme.Modal
	body := lipgloss.JoinVertical(lipgloss.Left,
		th.Title.Render("Delete question?"),
		"",
		th.Body.Render(render.Sanitize(m.confirmTitle)),
		"",
		th.Label.Render("y delete • n cancel"),
	)
	return th.Frame.Render(body)
}

// View renders the UI.
func (m *Model) View() string {
	body := lipgloss.JoinVertical(lipgloss.Left, m.headerView(), m.grid.View())
	var modal string
	switch m.mode {
	case modeForm:
		modal = m.form.View()
	case modeConfirm:
		modal = m.confirmView()
	case modeHelp:
		modal = m.help.View()
	}
	if modal != "" {
		body = overlay.Compose(body, m.width, max(m.height-1, 1), modal,
			overlay.Placement{Horizontal: lipgloss.Center, Vertical: lipgloss.Center})
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, m.statusView())
}

// Run launches the Bubble Tea program and blocks until it exits.
func Run(ctx context.Context, svc *app.Service, opts Options) error {
	m := New(svc, opts)
	defer m.cancel()
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
