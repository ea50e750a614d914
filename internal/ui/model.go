package ui

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/bookshelf/internal/catalog"
	"github.com/five82/bookshelf/internal/editor"
	"github.com/five82/bookshelf/internal/prefs"
	"github.com/five82/bookshelf/internal/state"
)

type focusArea int

const (
	focusTable focusArea = iota
	focusFormTitle
	focusFormYear
)

// Model is the bubbletea model of the book screen.
type Model struct {
	ctx     context.Context
	client  catalog.API
	store   *state.Store
	ctrl    *editor.Controller
	watcher *editor.Watcher
	live    *editor.Liveness
	logger  *slog.Logger

	baseURL   string
	mode      string
	logFile   string
	pollTick  time.Duration
	prefsPath string
	theme     Theme

	keys     keyMap
	help     help.Model
	showHelp bool

	formTitle textinput.Model
	formYear  textinput.Model
	yearValue int
	focus     focusArea

	edit      textinput.Model
	editCell  editor.Cell
	editBound bool

	cursor int
	offset int
	width  int
	height int

	snapshot state.Snapshot
	version  uint64
}

// New builds the initial model. Nothing touches the network until Init.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	store := opts.Store
	if store == nil {
		store = &state.Store{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	ctrl := editor.NewController(opts.Editor)

	m := Model{
		ctx:       ctx,
		client:    opts.Client,
		store:     store,
		ctrl:      ctrl,
		watcher:   editor.NewWatcher(ctrl),
		live:      &editor.Liveness{},
		logger:    logger,
		baseURL:   opts.BaseURL,
		mode:      opts.Mode,
		logFile:   opts.LogFile,
		pollTick:  opts.PollTick,
		prefsPath: opts.PrefsPath,
		theme:     GetTheme(opts.ThemeName),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		formTitle: newInput("Title..."),
		formYear:  newInput("Release Year..."),
		edit:      newInput(""),
	}
	m.formYear.CharLimit = 6
	m.applyTheme()
	m.resize(0, 0)
	return m
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = placeholder
	_ = ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

// Init loads the book list and starts the refresh tick when polling is on.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.fetch()}
	if m.pollTick > 0 {
		cmds = append(cmds, tickCmd(m.pollTick))
	}
	return tea.Batch(cmds...)
}

// Update handles messages and returns the updated model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		cmd := m.handleKey(msg)
		return m, cmd

	case tea.MouseMsg:
		cmd := m.handleMouse(msg)
		return m, cmd

	case tickMsg:
		m.applySnapshot(m.store.Snapshot())
		return m, tickCmd(m.pollTick)

	case booksLoadedMsg:
		if !m.live.Valid(msg.token) {
			return m, nil
		}
		m.applyList(msg)
		return m, nil

	case bookCreatedMsg:
		if !m.live.Valid(msg.token) {
			return m, nil
		}
		cmd := m.applyCreated(msg)
		return m, cmd

	case bookUpdatedMsg:
		if !m.live.Valid(msg.token) {
			return m, nil
		}
		cmd := m.applyUpdated(msg)
		return m, cmd

	case bookDeletedMsg:
		if !m.live.Valid(msg.token) {
			return m, nil
		}
		cmd := m.applyDeleted(msg)
		return m, cmd

	case prefsSavedMsg:
		if msg.err != nil {
			m.logger.Warn("save preferences failed", "error", msg.err)
		}
		return m, nil
	}
	return m, nil
}

// fetch issues a list request stamped with a fresh sequence number.
func (m *Model) fetch() tea.Cmd {
	return fetchBooksCmd(m.ctx, m.client, m.live.Token(), m.store.Begin())
}

func (m *Model) quit() tea.Cmd {
	m.live.Close()
	return tea.Quit
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	l := m.layout()
	m.help.Width = l.width
	m.formTitle.Width = max(l.formTitle.W-1, 1)
	m.formYear.Width = max(l.formYear.W-1, 1)
	m.offset = l.scrollTo(m.cursor, m.ctrl.Len())
	if m.editBound {
		m.edit.Width = max(m.editWidth(l), 1)
	}
	m.trackActive()
}

func (m Model) layout() layout {
	return computeLayout(m.width, m.height, m.offset)
}

func (m *Model) applyTheme() {
	s := m.theme.Styles()
	for _, ti := range []*textinput.Model{&m.formTitle, &m.formYear, &m.edit} {
		ti.TextStyle = s.Text
		ti.PlaceholderStyle = s.FaintText
		ti.Cursor.Style = s.AccentText
	}
	m.help.Styles.ShortKey = s.WarningText
	m.help.Styles.ShortDesc = s.MutedText
	m.help.Styles.ShortSeparator = s.FaintText
}

// applyList records a fetch result in the store and, when it is the newest
// result, shows it. It reports whether the result was applied.
func (m *Model) applyList(msg booksLoadedMsg) bool {
	if !m.store.Update(msg.seq, msg.books, msg.err) {
		m.logger.Debug("stale book list dropped", "seq", msg.seq)
		return false
	}
	if msg.err != nil {
		m.logger.Warn("list books failed", "error", msg.err)
	}
	m.applySnapshot(m.store.Snapshot())
	return true
}

func (m *Model) applySnapshot(snap state.Snapshot) {
	m.snapshot = snap
	if snap.Version == m.version {
		return
	}
	m.version = snap.Version
	if snap.LastError != nil {
		return
	}
	if snap.HasBooks {
		m.ctrl.SetBooks(snap.Books)
		m.clampCursor()
		m.trackActive()
	}
}

// applyCreated appends the server echo. Failures of create, update and delete
// are only logged; the screen stays as it was.
func (m *Model) applyCreated(msg bookCreatedMsg) tea.Cmd {
	if msg.err != nil {
		m.logger.Warn("create book failed", "error", msg.err)
		return nil
	}
	m.ctrl.Append(msg.book)
	m.logger.Info("book created", "id", msg.book.ID, "title", msg.book.Title)
	return m.supersede()
}

// applyUpdated shows the list fetched after the update. When a local create
// or delete discarded that list, a fresh one is requested so the committed
// row is not left stale.
func (m *Model) applyUpdated(msg bookUpdatedMsg) tea.Cmd {
	var cmd tea.Cmd
	if !m.applyList(msg.list) && m.store.Superseded(msg.list.seq) {
		cmd = m.fetch()
	}
	if msg.err != nil {
		m.logger.Warn("update book failed", "id", msg.cell.ID, "field", msg.cell.Field.String(), "error", msg.err)
	}
	if m.ctrl.Committed(msg.cell, msg.err) {
		m.syncEdit()
	}
	return cmd
}

// applyDeleted drops the row once the request reached the server, whatever
// status it answered with. Transport failures leave the list alone.
func (m *Model) applyDeleted(msg bookDeletedMsg) tea.Cmd {
	var statusErr *catalog.StatusError
	if msg.err != nil && !errors.As(msg.err, &statusErr) {
		m.logger.Warn("delete book failed", "id", msg.id, "error", msg.err)
		return nil
	}
	if statusErr != nil {
		m.logger.Warn("delete book rejected", "id", msg.id, "status", statusErr.Code)
	}
	m.ctrl.Remove(msg.id)
	m.clampCursor()
	m.trackActive()
	return m.supersede()
}

// supersede keeps lists fetched before a local change from undoing it, and
// re-fetches when one of them was still on the way.
func (m *Model) supersede() tea.Cmd {
	if m.store.Supersede() {
		return m.fetch()
	}
	return nil
}

func (m *Model) clampCursor() {
	n := m.ctrl.Len()
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.offset = m.layout().scrollTo(m.cursor, n)
}

// syncEdit binds the inline input to the active cell, or releases it when no
// cell is active.
func (m *Model) syncEdit() {
	cell, ok := m.ctrl.Active()
	if !ok {
		m.edit.Blur()
		m.editBound = false
		m.watcher.Untrack()
		return
	}
	if !m.editBound || m.editCell != cell {
		m.editCell = cell
		m.editBound = true
		m.edit.SetValue(m.ctrl.DraftText(cell))
		m.edit.CursorEnd()
		m.edit.Focus()
		m.blurForm()
	}
	m.edit.Width = max(m.editWidth(m.layout()), 1)
	m.trackActive()
}

// trackActive points the watcher at where the active input is drawn.
func (m *Model) trackActive() {
	if !m.editBound {
		m.watcher.Untrack()
		return
	}
	i := catalog.IndexOf(m.ctrl.Books(), m.editCell.ID)
	if i < 0 {
		m.watcher.Untrack()
		return
	}
	m.watcher.Track(m.layout().cellRect(i, m.editCell.Field))
}

func (m Model) editWidth(l layout) int {
	if m.editCell.Field == editor.FieldYear {
		return l.yearW - 1
	}
	return l.titleW - 1
}

func (m *Model) setFocus(f focusArea) {
	m.focus = f
	m.formTitle.Blur()
	m.formYear.Blur()
	switch f {
	case focusFormTitle:
		m.formTitle.Focus()
	case focusFormYear:
		m.formYear.Focus()
	}
}

func (m *Model) blurForm() {
	m.setFocus(focusTable)
}

func (m *Model) cycleFocus(step int) {
	const areas = 3
	m.setFocus(focusArea((int(m.focus) + step + areas) % areas))
}

// submitForm creates a book from the form. The form keeps its values.
func (m *Model) submitForm() tea.Cmd {
	req := catalog.CreateRequest{Title: m.formTitle.Value(), ReleaseYear: m.yearValue}
	return createBookCmd(m.ctx, m.client, m.live.Token(), req)
}

// commit sends the full row for cell.
func (m *Model) commit(cell editor.Cell) tea.Cmd {
	req, err := m.ctrl.CommitRequest(cell)
	if err != nil {
		m.logger.Warn("commit skipped", "id", cell.ID, "field", cell.Field.String(), "error", err)
		return nil
	}
	return updateBookCmd(m.ctx, m.client, m.live.Token(), cell, req, m.store.Begin())
}

func (m *Model) deleteRow(i int) tea.Cmd {
	books := m.ctrl.Books()
	if i < 0 || i >= len(books) {
		return nil
	}
	return deleteBookCmd(m.ctx, m.client, m.live.Token(), books[i].ID)
}

func (m *Model) toggleRow(i int, f editor.Field) {
	books := m.ctrl.Books()
	if i < 0 || i >= len(books) {
		return
	}
	m.setFocus(focusTable)
	m.cursor = i
	m.ctrl.Toggle(editor.Cell{ID: books[i].ID, Field: f})
	m.syncEdit()
}

func (m *Model) cycleTheme() tea.Cmd {
	m.theme = GetTheme(NextTheme(m.theme.Name))
	m.applyTheme()
	return savePrefsCmd(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonWheelUp:
		m.moveCursor(-1)
		return nil
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonWheelDown:
		m.moveCursor(1)
		return nil
	case msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft:
		return nil
	}

	if m.watcher.PointerDown(msg.X, msg.Y) {
		m.syncEdit()
	}

	h := m.layout().hitTest(msg.X, msg.Y, m.ctrl.Len())
	switch h.kind {
	case hitFormTitle:
		m.setFocus(focusFormTitle)
	case hitFormYear:
		m.setFocus(focusFormYear)
	case hitAdd:
		return m.submitForm()
	case hitTitle, hitYear:
		f := editor.FieldTitle
		if h.kind == hitYear {
			f = editor.FieldYear
		}
		books := m.ctrl.Books()
		if !m.ctrl.IsEditing(editor.Cell{ID: books[h.row].ID, Field: f}) {
			m.toggleRow(h.row, f)
		}
	case hitDelete:
		m.setFocus(focusTable)
		m.cursor = h.row
		return m.deleteRow(h.row)
	default:
		if m.focus != focusTable {
			m.setFocus(focusTable)
		}
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m.quit()
	}
	if m.showHelp {
		if key.Matches(msg, m.keys.Help, m.keys.Escape, m.keys.Quit) {
			m.showHelp = false
		}
		return nil
	}
	if cell, ok := m.ctrl.Active(); ok {
		return m.handleEditKey(cell, msg)
	}
	if m.focus != focusTable {
		return m.handleFormKey(msg)
	}
	return m.handleTableKey(msg)
}

// handleEditKey feeds a key to the inline input. Every key reaching the input
// updates the row's draft and sends the row.
func (m *Model) handleEditKey(cell editor.Cell, msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.ctrl.CloseAll()
		m.syncEdit()
		return nil
	case key.Matches(msg, m.keys.Confirm):
		m.ctrl.Toggle(cell)
		m.syncEdit()
		return nil
	}

	var cmd tea.Cmd
	m.edit, cmd = m.edit.Update(msg)
	text := m.edit.Value()
	if cell.Field == editor.FieldYear {
		if err := m.ctrl.SetDraftYear(cell.ID, text); err != nil {
			m.logger.Debug("year draft kept", "id", cell.ID, "error", err)
		}
	} else {
		m.ctrl.SetDraftTitle(cell.ID, text)
	}
	return tea.Batch(cmd, m.commit(cell))
}

func (m *Model) handleFormKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.setFocus(focusTable)
		return nil
	case key.Matches(msg, m.keys.Tab):
		m.cycleFocus(1)
		return nil
	case key.Matches(msg, m.keys.ShiftTab):
		m.cycleFocus(-1)
		return nil
	case key.Matches(msg, m.keys.Confirm):
		return m.submitForm()
	}

	var cmd tea.Cmd
	if m.focus == focusFormYear {
		m.formYear, cmd = m.formYear.Update(msg)
		if year, err := editor.ParseYear(m.formYear.Value()); err == nil {
			m.yearValue = year
		}
		return cmd
	}
	m.formTitle, cmd = m.formTitle.Update(msg)
	return cmd
}

func (m *Model) handleTableKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	case key.Matches(msg, m.keys.CycleTheme):
		return m.cycleTheme()
	case key.Matches(msg, m.keys.Refresh):
		return m.fetch()
	case key.Matches(msg, m.keys.NewBook, m.keys.Tab):
		m.setFocus(focusFormTitle)
	case key.Matches(msg, m.keys.ShiftTab):
		m.setFocus(focusFormYear)
	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Top):
		m.moveCursor(-m.ctrl.Len())
	case key.Matches(msg, m.keys.Bottom):
		m.moveCursor(m.ctrl.Len())
	case key.Matches(msg, m.keys.EditTitle):
		m.toggleRow(m.cursor, editor.FieldTitle)
	case key.Matches(msg, m.keys.EditYear):
		m.toggleRow(m.cursor, editor.FieldYear)
	case key.Matches(msg, m.keys.Delete):
		return m.deleteRow(m.cursor)
	case key.Matches(msg, m.keys.Escape):
		if m.ctrl.AnyEditing() {
			m.ctrl.CloseAll()
			m.syncEdit()
		}
	}
	return nil
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
	m.trackActive()
}
