package teaui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/deck/pkg/app"
	"tableflip.dev/deck/pkg/config"
	"tableflip.dev/deck/pkg/form"
	"tableflip.dev/deck/pkg/question"
	"tableflip.dev/deck/pkg/render"
	"tableflip.dev/deck/pkg/selection"
	"tableflip.dev/deck/pkg/store"
	"tableflip.dev/deck/pkg/tui/events"
)

func newTestService(t *testing.T, titles ...string) *app.Service {
	t.Helper()
	svc, err := app.Open(&config.Config{Path: t.TempDir()}, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = svc.Close() })
	for _, title := range titles {
		if _, err := svc.Add(context.Background(), question.Fields{Title: title, Content: title + " body"}); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	return svc
}

func newTestModel(t *testing.T, titles ...string) (*Model, *app.Service) {
	t.Helper()
	svc := newTestService(t, titles...)
	m := New(svc, Options{})
	press(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, svc
}

// collect runs cmd and gathers the messages it produces, skipping commands
// that wait on timers such as cursor blinks.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, collect(c)...)
			}
			return out
		}
		return []tea.Msg{msg}
	case <-time.After(50 * time.Millisecond):
		return nil
	}
}

// press feeds msgs to the model and follows up with any UI events they
// emit.
func press(m *Model, msgs ...tea.Msg) {
	for _, msg := range msgs {
		_, cmd := m.Update(msg)
		for _, next := range collect(cmd) {
			switch next.(type) {
			case events.FormSubmitMsg, events.FormCancelMsg, events.StatusMsg, events.QuestionChangeMsg:
				press(m, next)
			}
		}
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func typeText(m *Model, s string) {
	for _, r := range s {
		press(m, runes(string(r)))
	}
}

func plainView(m *Model) string {
	return render.StripANSI(m.View())
}

func TestViewShowsAllCards(t *testing.T) {
	m, _ := newTestModel(t, "Binary Search", "Binary Tree")
	out := plainView(m)
	for _, want := range []string{"Search", "Binary Search", "Binary Tree", "[e] edit", "[x] delete"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in view:\n%s", want, out)
		}
	}
}

func TestTypingShowsSuggestionsAndFiltersGrid(t *testing.T) {
	m, _ := newTestModel(t, "Binary Search", "Binary Tree", "Heap")
	typeText(m, "tree")

	if m.sel.Mode() != selection.Suggesting {
		t.Fatalf("expected suggesting, got %v", m.sel.Mode())
	}
	if got := len(m.sel.Suggestions()); got != 1 {
		t.Fatalf("expected one suggestion, got %d", got)
	}
	vis := m.visible()
	if len(vis) != 1 || vis[0].Title != "Binary Tree" {
		t.Fatalf("expected grid filtered to Binary Tree, got %#v", vis)
	}
	if strings.Contains(plainView(m), "Heap") {
		t.Fatalf("filtered card still rendered")
	}
}

func TestArrowAndEnterOpenDetail(t *testing.T) {
	m, _ := newTestModel(t, "Binary Search", "Binary Tree")
	typeText(m, "bin")
	press(m, keyMsg(tea.KeyDown), keyMsg(tea.KeyDown), keyMsg(tea.KeyDown))
	if m.sel.Active() != 1 {
		t.Fatalf("expected clamp at last suggestion, got %d", m.sel.Active())
	}
	press(m, keyMsg(tea.KeyUp))
	press(m, keyMsg(tea.KeyEnter))

	id, ok := m.sel.DetailID()
	if !ok {
		t.Fatalf("expected detail mode")
	}
	q, _ := m.svc.Store.Get(id)
	if q.Title != "Binary Search" {
		t.Fatalf("expected Binary Search in detail, got %q", q.Title)
	}
	if m.search.Value() != "Binary Search" {
		t.Fatalf("expected query to show resolved title, got %q", m.search.Value())
	}
	out := plainView(m)
	if !strings.Contains(out, "back to all questions") || strings.Contains(out, "Binary Tree") {
		t.Fatalf("unexpected detail view:\n%s", out)
	}

	press(m, keyMsg(tea.KeyEsc))
	if m.sel.Mode() != selection.Idle || m.search.Value() != "" || len(m.visible()) != 2 {
		t.Fatalf("expected back to idle with full grid")
	}
}

func TestEnterWithNoneActivePicksFirst(t *testing.T) {
	m, _ := newTestModel(t, "Binary Search", "Binary Tree")
	typeText(m, "binary")
	press(m, keyMsg(tea.KeyEnter))
	id, ok := m.sel.DetailID()
	if !ok {
		t.Fatalf("expected detail mode")
	}
	if q, _ := m.svc.Store.Get(id); q.Title != "Binary Search" {
		t.Fatalf("expected first suggestion, got %q", q.Title)
	}
}

func TestGridNavigationOpensCard(t *testing.T) {
	m, _ := newTestModel(t, "one", "two", "three")
	press(m, keyMsg(tea.KeyTab))
	if m.focus != focusGrid {
		t.Fatalf("expected grid focus")
	}
	press(m, runes("l"), runes("l"), runes("l"))
	if m.cursor != 2 {
		t.Fatalf("expected cursor clamped at 2, got %d", m.cursor)
	}
	press(m, keyMsg(tea.KeyEnter))
	id, ok := m.sel.DetailID()
	if !ok {
		t.Fatalf("expected detail mode")
	}
	if q, _ := m.svc.Store.Get(id); q.Title != "three" {
		t.Fatalf("expected three, got %q", q.Title)
	}
}

func TestAddQuestionThroughForm(t *testing.T) {
	m, svc := newTestModel(t, "existing")
	press(m, keyMsg(tea.KeyCtrlN))
	if m.mode != modeForm {
		t.Fatalf("expected form mode, got %v", m.mode)
	}

	press(m, keyMsg(tea.KeyCtrlS))
	if m.mode != modeForm || m.form.Error() == "" {
		t.Fatalf("expected inline validation error")
	}
	if svc.Store.Len() != 1 {
		t.Fatalf("blank title changed the store")
	}

	typeText(m, "Heap")
	press(m, keyMsg(tea.KeyShiftTab))
	typeText(m, "ds, ,priority")
	press(m, keyMsg(tea.KeyCtrlS))

	if m.mode != modeBrowse {
		t.Fatalf("expected form closed, got %v", m.mode)
	}
	all := svc.Store.All()
	if len(all) != 2 {
		t.Fatalf("expected two questions, got %d", len(all))
	}
	added := all[1]
	if added.Title != "Heap" || len(added.Tags) != 2 || added.Tags[0] != "ds" || added.Tags[1] != "priority" {
		t.Fatalf("unexpected added question %#v", added)
	}
	if !strings.Contains(plainView(m), "Heap") {
		t.Fatalf("new card not rendered")
	}
}

func TestCancelFormLeavesStore(t *testing.T) {
	m, svc := newTestModel(t, "existing")
	press(m, keyMsg(tea.KeyCtrlN))
	typeText(m, "draft")
	press(m, keyMsg(tea.KeyEsc))
	if m.mode != modeBrowse || svc.Store.Len() != 1 {
		t.Fatalf("cancel should close the form without saving")
	}
}

func TestEditFromGrid(t *testing.T) {
	m, svc := newTestModel(t, "Binary Search")
	press(m, keyMsg(tea.KeyTab), runes("e"))
	if m.mode != modeForm || m.form.Fields().Title != "Binary Search" {
		t.Fatalf("expected populated edit form")
	}
	typeText(m, "!")
	press(m, keyMsg(tea.KeyCtrlS))

	all := svc.Store.All()
	if len(all) != 1 || all[0].Title != "Binary Search!" {
		t.Fatalf("unexpected questions after edit %#v", all)
	}
}

func TestEditKeepsLongTitle(t *testing.T) {
	long := strings.TrimSpace(strings.Repeat("Binary Search ", 25))
	m, svc := newTestModel(t, long)
	press(m, keyMsg(tea.KeyTab), runes("e"))
	press(m, keyMsg(tea.KeyCtrlS))

	all := svc.Store.All()
	if len(all) != 1 {
		t.Fatalf("expected one question, got %d", len(all))
	}
	if all[0].Title != long {
		t.Fatalf("title changed by an unchanged edit: %d -> %d chars", len(long), len(all[0].Title))
	}

	press(m, keyMsg(tea.KeyEnter))
	if m.sel.Mode() != selection.Detail || m.search.Value() != long {
		t.Fatalf("expected detail query to hold the full title, got %d chars", len(m.search.Value()))
	}
}

func TestEditInDetailKeepsDetail(t *testing.T) {
	m, svc := newTestModel(t, "Binary Search", "Binary Tree")
	press(m, keyMsg(tea.KeyTab), keyMsg(tea.KeyEnter))
	id, _ := m.sel.DetailID()
	press(m, runes("e"))
	typeText(m, " v2")
	press(m, keyMsg(tea.KeyCtrlS))

	got, ok := m.sel.DetailID()
	if !ok || got != id {
		t.Fatalf("expected to stay on the edited question")
	}
	q, _ := svc.Store.Get(id)
	if m.search.Value() != q.Title || q.Title != "Binary Search v2" {
		t.Fatalf("expected query to follow the edited title, got %q / %q", m.search.Value(), q.Title)
	}
}

func TestDeleteNeedsConfirmation(t *testing.T) {
	m, svc := newTestModel(t, "keep", "drop")
	press(m, keyMsg(tea.KeyTab), runes("l"), runes("x"))
	if m.mode != modeConfirm {
		t.Fatalf("expected confirm mode, got %v", m.mode)
	}
	if !strings.Contains(plainView(m), "Delete question?") {
		t.Fatalf("confirm modal not shown")
	}
	press(m, runes("n"))
	if m.mode != modeBrowse || svc.Store.Len() != 2 {
		t.Fatalf("declined delete changed the store")
	}

	press(m, runes("x"), runes("y"))
	all := svc.Store.All()
	if len(all) != 1 || all[0].Title != "keep" {
		t.Fatalf("unexpected questions after delete %#v", all)
	}
	if m.cursor != 0 {
		t.Fatalf("expected cursor clamped after delete, got %d", m.cursor)
	}
}

func TestDeletedDetailFallsBackToGrid(t *testing.T) {
	m, svc := newTestModel(t, "one", "two")
	press(m, keyMsg(tea.KeyTab), keyMsg(tea.KeyEnter))
	id, _ := m.sel.DetailID()
	if _, err := svc.Delete(context.Background(), id, nil); err != nil {
		t.Fatalf("delete: %v", err)
	}
	press(m, events.QuestionChangeMsg{Action: events.ChangeDelete, ID: id})
	if m.sel.Mode() != selection.Idle || len(m.visible()) != 1 {
		t.Fatalf("expected idle grid after detail question vanished")
	}
}

func TestHelpOverlay(t *testing.T) {
	m, _ := newTestModel(t, "one")
	press(m, keyMsg(tea.KeyTab), runes("?"))
	if m.mode != modeHelp {
		t.Fatalf("expected help mode")
	}
	press(m, keyMsg(tea.KeyEsc))
	if m.mode != modeBrowse {
		t.Fatalf("expected help closed")
	}
}

func TestEmptyStoreMessage(t *testing.T) {
	m, _ := newTestModel(t)
	if !strings.Contains(plainView(m), "No questions yet") {
		t.Fatalf("expected empty message:\n%s", plainView(m))
	}
	typeText(m, "zzz")
	if m.sel.Mode() != selection.Idle || len(m.visible()) != 0 {
		t.Fatalf("expected idle with empty grid")
	}
}

func TestNoMatchesMessage(t *testing.T) {
	m, _ := newTestModel(t, "one")
	typeText(m, "zzz")
	if !strings.Contains(plainView(m), `No questions match "zzz"`) {
		t.Fatalf("expected no matches message:\n%s", plainView(m))
	}
}

func TestQuit(t *testing.T) {
	m, _ := newTestModel(t, "one")
	_, cmd := m.Update(keyMsg(tea.KeyCtrlC))
	found := false
	for _, msg := range collect(cmd) {
		if _, ok := msg.(tea.QuitMsg); ok {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected quit")
	}
	if m.ctx.Err() == nil {
		t.Fatalf("expected context cancelled on quit")
	}
}

func TestWatchEventReloadsOutsideWrites(t *testing.T) {
	cfg := &config.Config{Path: t.TempDir()}
	svc, err := app.Open(cfg, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() { _ = svc.Close() })
	m := New(svc, Options{})
	press(m, tea.WindowSizeMsg{Width: 100, Height: 40})

	slot, err := store.Open(cfg)
	if err != nil {
		t.Fatalf("open slot: %v", err)
	}
	other := store.New(slot)
	t.Cleanup(func() { _ = other.Close() })
	if err := other.Load(); err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := other.Add(question.Question{ID: other.NextID(), Title: "Written Elsewhere"}); err != nil {
		t.Fatalf("outside add: %v", err)
	}

	_, cmd := m.Update(watchEventMsg{event: store.Event{Location: svc.Store.Location()}})
	changes := 0
	for _, msg := range collect(cmd) {
		if change, ok := msg.(events.QuestionChangeMsg); ok && change.Action == events.ChangeReload {
			changes++
			press(m, change)
		}
	}
	if changes != 1 {
		t.Fatalf("expected one reload change, got %d", changes)
	}
	if svc.Store.Len() != 1 || !strings.Contains(plainView(m), "Written Elsewhere") {
		t.Fatalf("outside write not shown:\n%s", plainView(m))
	}

	press(m, keyMsg(tea.KeyCtrlN))
	typeText(m, "Mine")
	press(m, keyMsg(tea.KeyCtrlS))
	status := m.status

	_, cmd = m.Update(watchEventMsg{event: store.Event{Location: svc.Store.Location()}})
	for _, msg := range collect(cmd) {
		if _, ok := msg.(events.QuestionChangeMsg); ok {
			t.Fatalf("own save should not trigger a reload")
		}
	}
	if m.status != status || svc.Store.Len() != 2 {
		t.Fatalf("unexpected state after own save: status %q, %d questions", m.status, svc.Store.Len())
	}
}

type rejectingStore struct{ form.Store }

func (rejectingStore) NextID() int64 { return 1 }

func (rejectingStore) Add(question.Question) error { return store.ErrDuplicateID }

func TestRejectedAddKeepsFormOpen(t *testing.T) {
	m, svc := newTestModel(t)
	m.ctrl = form.New(rejectingStore{Store: svc.Store}, nil)

	press(m, keyMsg(tea.KeyCtrlN))
	typeText(m, "Heap")
	press(m, keyMsg(tea.KeyCtrlS))

	if m.mode != modeForm {
		t.Fatalf("expected the form to stay open")
	}
	if !strings.Contains(m.form.Error(), "Not added") || m.form.Fields().Title != "Heap" {
		t.Fatalf("unexpected form state: %q %#v", m.form.Error(), m.form.Fields())
	}
	if strings.Contains(m.status, "Added") || svc.Store.Len() != 0 {
		t.Fatalf("rejected add reported as added: %q", m.status)
	}
}
