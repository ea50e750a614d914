package editor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/bookshelf/internal/catalog"
)

func sampleBooks() []catalog.Book {
	return []catalog.Book{
		{ID: 1, Title: "Dune", ReleaseYear: 1965},
		{ID: 2, Title: "Foundation", ReleaseYear: 1951},
		{ID: 3, Title: "Hyperion", ReleaseYear: 1989},
	}
}

func newLoaded(t *testing.T, opts Options) *Controller {
	t.Helper()
	c := NewController(opts)
	c.SetBooks(sampleBooks())
	return c
}

func TestController_UnknownRowIsNotEditing(t *testing.T) {
	c := newLoaded(t, Options{})
	assert.Equal(t, RowEdit{}, c.Editing(42))
	assert.False(t, c.AnyEditing())
	_, ok := c.Active()
	assert.False(t, ok)
}

func TestController_ToggleTitleTwiceRestoresFlags(t *testing.T) {
	c := newLoaded(t, Options{})
	c.ToggleYearEdit(1)
	c.ToggleTitleEdit(2)

	before1, before2 := c.Editing(1), c.Editing(2)

	c.ToggleTitleEdit(1)
	assert.True(t, c.Editing(1).Title)
	assert.True(t, c.Editing(1).Year, "year flag must be untouched")

	c.ToggleTitleEdit(1)
	assert.Equal(t, before1, c.Editing(1))
	assert.Equal(t, before2, c.Editing(2), "other rows must be untouched")
}

func TestController_ToggleCreatesEntryLazily(t *testing.T) {
	c := newLoaded(t, Options{})
	c.ToggleYearEdit(3)
	assert.Equal(t, RowEdit{Year: true}, c.Editing(3))
	assert.True(t, c.AnyEditing())

	active, ok := c.Active()
	require.True(t, ok)
	assert.Equal(t, Cell{ID: 3, Field: FieldYear}, active)
}

func TestController_OpeningSeedsDraftFromRow(t *testing.T) {
	c := newLoaded(t, Options{})
	c.ToggleTitleEdit(1)
	c.ToggleYearEdit(2)

	assert.Equal(t, "Dune", c.DraftTitle(1))
	assert.Equal(t, 1951, c.DraftYear(2))
	assert.Equal(t, "1951", c.DraftText(Cell{ID: 2, Field: FieldYear}))
}

func TestController_DraftsArePerRow(t *testing.T) {
	c := newLoaded(t, Options{})
	c.ToggleTitleEdit(1)
	c.ToggleTitleEdit(2)

	c.SetDraftTitle(1, "Dune Messiah")
	req, err := c.CommitRequest(Cell{ID: 1, Field: FieldTitle})
	require.NoError(t, err)
	assert.Equal(t, "Dune Messiah", req.Title)

	assert.Equal(t, "Foundation", c.DraftTitle(2), "row 2's draft must not follow row 1's typing")
}

func TestController_SetDraftYearKeepsPreviousOnBadInput(t *testing.T) {
	c := newLoaded(t, Options{})
	c.ToggleYearEdit(1)

	require.NoError(t, c.SetDraftYear(1, " 1966 "))
	assert.Equal(t, 1966, c.DraftYear(1))

	err := c.SetDraftYear(1, "19x6")
	assert.ErrorIs(t, err, ErrInvalidYear)
	assert.Equal(t, 1966, c.DraftYear(1))

	err = c.SetDraftYear(1, "")
	assert.ErrorIs(t, err, ErrInvalidYear)
	assert.Equal(t, 1966, c.DraftYear(1))
}

func TestController_CommitRequestCarriesFullRow(t *testing.T) {
	c := newLoaded(t, Options{})

	c.ToggleTitleEdit(1)
	c.SetDraftTitle(1, "Children of Dune")
	req, err := c.CommitRequest(Cell{ID: 1, Field: FieldTitle})
	require.NoError(t, err)
	assert.Equal(t, catalog.UpdateRequest{ID: 1, Title: "Children of Dune", ReleaseYear: 1965}, req)

	c.ToggleYearEdit(2)
	require.NoError(t, c.SetDraftYear(2, "1952"))
	req, err = c.CommitRequest(Cell{ID: 2, Field: FieldYear})
	require.NoError(t, err)
	assert.Equal(t, catalog.UpdateRequest{ID: 2, Title: "Foundation", ReleaseYear: 1952}, req)
}

func TestController_CommitRequestErrors(t *testing.T) {
	c := newLoaded(t, Options{})

	_, err := c.CommitRequest(Cell{ID: 99, Field: FieldTitle})
	assert.True(t, errors.Is(err, ErrUnknownBook))

	_, err = c.CommitRequest(Cell{ID: 1, Field: FieldTitle})
	assert.True(t, errors.Is(err, ErrNotEditing))
}

func TestController_CommitKeepsFieldOpenByDefault(t *testing.T) {
	c := newLoaded(t, Options{})
	cell := Cell{ID: 1, Field: FieldTitle}
	c.Toggle(cell)

	assert.False(t, c.Committed(cell, nil))
	assert.True(t, c.IsEditing(cell))
}

func TestController_CloseOnCommit(t *testing.T) {
	c := newLoaded(t, Options{CloseOnCommit: true})
	cell := Cell{ID: 1, Field: FieldTitle}
	c.Toggle(cell)

	assert.False(t, c.Committed(cell, errors.New("boom")), "failed commits never close")
	assert.True(t, c.IsEditing(cell))

	assert.True(t, c.Committed(cell, nil))
	assert.False(t, c.IsEditing(cell))
}

func TestController_SetBooksKeepsEditState(t *testing.T) {
	c := newLoaded(t, Options{})
	c.ToggleTitleEdit(2)
	c.SetDraftTitle(2, "Found")

	c.SetBooks([]catalog.Book{{ID: 2, Title: "Foundation and Empire", ReleaseYear: 1952}})
	assert.True(t, c.Editing(2).Title)
	assert.Equal(t, "Found", c.DraftTitle(2))
	assert.Equal(t, 1, c.Len())
}

func TestController_CreateAppendsServerEcho(t *testing.T) {
	c := NewController(Options{})
	c.SetBooks([]catalog.Book{{ID: 1, Title: "Dune", ReleaseYear: 1965}})

	c.Append(catalog.Book{ID: 2, Title: "Foundation", ReleaseYear: 1951})

	assert.Equal(t, []catalog.Book{
		{ID: 1, Title: "Dune", ReleaseYear: 1965},
		{ID: 2, Title: "Foundation", ReleaseYear: 1951},
	}, c.Books())
}

func TestController_RemoveFiltersRowButKeepsEditEntry(t *testing.T) {
	c := newLoaded(t, Options{})
	c.ToggleTitleEdit(2)

	assert.True(t, c.Remove(2))
	assert.Equal(t, 2, c.Len())
	_, ok := c.Book(2)
	assert.False(t, ok)
	assert.True(t, c.Editing(2).Title, "stale entry is harmless and kept")

	assert.False(t, c.Remove(2))
	assert.Equal(t, 2, c.Len())
}

func TestController_BooksReturnsCopy(t *testing.T) {
	c := newLoaded(t, Options{})
	books := c.Books()
	books[0].Title = "changed"
	b, _ := c.Book(1)
	assert.Equal(t, "Dune", b.Title)
}

func TestController_CloseAllResetsEveryEntry(t *testing.T) {
	c := newLoaded(t, Options{})
	c.ToggleTitleEdit(1)
	c.ToggleYearEdit(1)
	c.ToggleYearEdit(3)
	c.SetDraftTitle(1, "typed")

	c.CloseAll()

	for _, id := range []int64{1, 2, 3} {
		assert.Equal(t, RowEdit{}, c.Editing(id))
	}
	assert.False(t, c.AnyEditing())
	_, ok := c.Active()
	assert.False(t, ok)

	c.ToggleTitleEdit(1)
	assert.Equal(t, "Dune", c.DraftTitle(1), "draft is reseeded after a close")
}

func TestController_ClosingActiveClearsIt(t *testing.T) {
	c := newLoaded(t, Options{})
	c.ToggleTitleEdit(1)
	c.ToggleTitleEdit(1)
	_, ok := c.Active()
	assert.False(t, ok)
}

func TestParseYear(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "1965", want: 1965},
		{in: "  42 ", want: 42},
		{in: "-300", want: -300},
		{in: "", wantErr: true},
		{in: "abc", wantErr: true},
		{in: "19.5", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseYear(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidYear)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFieldString(t *testing.T) {
	assert.Equal(t, "title", FieldTitle.String())
	assert.Equal(t, "year", FieldYear.String())
	assert.Equal(t, "field(7)", Field(7).String())
}
