package editor

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/five82/bookshelf/internal/catalog"
)

// Field identifies an editable column.
type Field int

const (
	FieldTitle Field = iota
	FieldYear
)

func (f Field) String() string {
	switch f {
	case FieldTitle:
		return "title"
	case FieldYear:
		return "year"
	default:
		return fmt.Sprintf("field(%d)", int(f))
	}
}

// Cell addresses one editable field of one row.
type Cell struct {
	ID    int64
	Field Field
}

// RowEdit records which fields of a row are in edit mode.
type RowEdit struct {
	Title bool
	Year  bool
}

// Has reports whether f is being edited.
func (r RowEdit) Has(f Field) bool {
	if f == FieldYear {
		return r.Year
	}
	return r.Title
}

// Any reports whether either field is being edited.
func (r RowEdit) Any() bool {
	return r.Title || r.Year
}

var (
	// ErrInvalidYear is returned when year text does not parse as an integer.
	ErrInvalidYear = errors.New("invalid release year")
	// ErrUnknownBook is returned for ids not present in the current list.
	ErrUnknownBook = errors.New("unknown book")
	// ErrNotEditing is returned when committing a field that is not open.
	ErrNotEditing = errors.New("field is not being edited")
)

// Options tune controller behaviour.
type Options struct {
	// CloseOnCommit returns a field to Viewing after a successful commit.
	CloseOnCommit bool
}

// Controller owns the displayed books and their inline-edit state.
type Controller struct {
	opts Options

	books []catalog.Book
	edit  map[int64]RowEdit

	titles map[int64]string
	years  map[int64]int

	active    Cell
	hasActive bool
}

// NewController returns an empty controller.
func NewController(opts Options) *Controller {
	return &Controller{
		opts:   opts,
		edit:   make(map[int64]RowEdit),
		titles: make(map[int64]string),
		years:  make(map[int64]int),
	}
}

// Books returns a copy of the displayed books.
func (c *Controller) Books() []catalog.Book {
	return catalog.CloneBooks(c.books)
}

// Len returns the number of displayed books.
func (c *Controller) Len() int {
	return len(c.books)
}

// Book looks up a displayed book by id.
func (c *Controller) Book(id int64) (catalog.Book, bool) {
	if i := catalog.IndexOf(c.books, id); i >= 0 {
		return c.books[i], true
	}
	return catalog.Book{}, false
}

// SetBooks replaces the displayed list wholesale. Edit flags and drafts are
// kept, so an open input survives a re-fetch.
func (c *Controller) SetBooks(books []catalog.Book) {
	c.books = catalog.CloneBooks(books)
	if c.books == nil {
		c.books = []catalog.Book{}
	}
}

// Append adds a book returned by a create call.
func (c *Controller) Append(b catalog.Book) {
	c.books = append(c.books, b)
}

// Remove filters id out of the displayed list. Its edit entry is left alone.
func (c *Controller) Remove(id int64) bool {
	out := c.books[:0]
	removed := false
	for _, b := range c.books {
		if b.ID == id {
			removed = true
			continue
		}
		out = append(out, b)
	}
	c.books = out
	return removed
}

// Editing returns the edit flags for id. Unknown ids are not editing.
func (c *Controller) Editing(id int64) RowEdit {
	return c.edit[id]
}

// IsEditing reports whether cell is open.
func (c *Controller) IsEditing(cell Cell) bool {
	return c.edit[cell.ID].Has(cell.Field)
}

// AnyEditing reports whether at least one field of any row is open.
func (c *Controller) AnyEditing() bool {
	for _, e := range c.edit {
		if e.Any() {
			return true
		}
	}
	return false
}

// Active returns the most recently opened cell, if it is still open.
func (c *Controller) Active() (Cell, bool) {
	if !c.hasActive || !c.IsEditing(c.active) {
		return Cell{}, false
	}
	return c.active, true
}

// ToggleTitleEdit flips the title flag of id.
func (c *Controller) ToggleTitleEdit(id int64) {
	c.toggle(Cell{ID: id, Field: FieldTitle})
}

// ToggleYearEdit flips the year flag of id.
func (c *Controller) ToggleYearEdit(id int64) {
	c.toggle(Cell{ID: id, Field: FieldYear})
}

// Toggle flips the flag for cell.
func (c *Controller) Toggle(cell Cell) {
	c.toggle(cell)
}

func (c *Controller) toggle(cell Cell) {
	entry := c.edit[cell.ID]
	open := !entry.Has(cell.Field)
	if cell.Field == FieldYear {
		entry.Year = open
	} else {
		entry.Title = open
	}
	c.edit[cell.ID] = entry

	if open {
		c.seedDraft(cell)
		c.active = cell
		c.hasActive = true
		return
	}
	c.dropDraft(cell)
	if c.hasActive && c.active == cell {
		c.hasActive = false
	}
}

func (c *Controller) seedDraft(cell Cell) {
	book, _ := c.Book(cell.ID)
	switch cell.Field {
	case FieldYear:
		if _, ok := c.years[cell.ID]; !ok {
			c.years[cell.ID] = book.ReleaseYear
		}
	default:
		if _, ok := c.titles[cell.ID]; !ok {
			c.titles[cell.ID] = book.Title
		}
	}
}

func (c *Controller) dropDraft(cell Cell) {
	if cell.Field == FieldYear {
		delete(c.years, cell.ID)
		return
	}
	delete(c.titles, cell.ID)
}

// CloseAll returns every field of every row to Viewing and drops all drafts.
func (c *Controller) CloseAll() {
	for id := range c.edit {
		c.edit[id] = RowEdit{}
	}
	clear(c.titles)
	clear(c.years)
	c.hasActive = false
}

// SetDraftTitle records the text typed into id's title input.
func (c *Controller) SetDraftTitle(id int64, text string) {
	c.titles[id] = text
}

// SetDraftYear parses text and records it as id's year draft. When text is not
// an integer the previous draft is kept and ErrInvalidYear is returned.
func (c *Controller) SetDraftYear(id int64, text string) error {
	prev, ok := c.years[id]
	if !ok {
		book, _ := c.Book(id)
		prev = book.ReleaseYear
	}
	year, err := ParseYear(text)
	if err != nil {
		c.years[id] = prev
		return err
	}
	c.years[id] = year
	return nil
}

// DraftTitle returns id's title draft, falling back to the row's title.
func (c *Controller) DraftTitle(id int64) string {
	if t, ok := c.titles[id]; ok {
		return t
	}
	book, _ := c.Book(id)
	return book.Title
}

// DraftYear returns id's year draft, falling back to the row's year.
func (c *Controller) DraftYear(id int64) int {
	if y, ok := c.years[id]; ok {
		return y
	}
	book, _ := c.Book(id)
	return book.ReleaseYear
}

// DraftText returns the draft for cell formatted for an input.
func (c *Controller) DraftText(cell Cell) string {
	if cell.Field == FieldYear {
		return strconv.Itoa(c.DraftYear(cell.ID))
	}
	return c.DraftTitle(cell.ID)
}

// CommitRequest builds the full-row update for cell: the edited field comes
// from its draft, the other from the row's last known value.
func (c *Controller) CommitRequest(cell Cell) (catalog.UpdateRequest, error) {
	book, ok := c.Book(cell.ID)
	if !ok {
		return catalog.UpdateRequest{}, fmt.Errorf("commit %s of %d: %w", cell.Field, cell.ID, ErrUnknownBook)
	}
	if !c.IsEditing(cell) {
		return catalog.UpdateRequest{}, fmt.Errorf("commit %s of %d: %w", cell.Field, cell.ID, ErrNotEditing)
	}
	switch cell.Field {
	case FieldYear:
		book.ReleaseYear = c.DraftYear(cell.ID)
	default:
		book.Title = c.DraftTitle(cell.ID)
	}
	return catalog.UpdateFor(book), nil
}

// Committed applies the close-on-commit policy once an update for cell has
// finished. It reports whether the field was closed.
func (c *Controller) Committed(cell Cell, err error) bool {
	if err != nil || !c.opts.CloseOnCommit || !c.IsEditing(cell) {
		return false
	}
	c.toggle(cell)
	return true
}

// ParseYear parses a release year typed by the user. Surrounding spaces are
// ignored; anything else that is not a base-10 integer is rejected.
func ParseYear(text string) (int, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalidYear)
	}
	year, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidYear, text)
	}
	return year, nil
}
