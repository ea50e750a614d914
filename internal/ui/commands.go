package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/bookshelf/internal/catalog"
	"github.com/five82/bookshelf/internal/editor"
	"github.com/five82/bookshelf/internal/prefs"
)

// Every network result carries the liveness token it was issued under so a
// result arriving after teardown is ignored.

type booksLoadedMsg struct {
	token editor.Token
	seq   uint64
	books []catalog.Book
	err   error
}

type bookCreatedMsg struct {
	token editor.Token
	book  catalog.Book
	err   error
}

type bookUpdatedMsg struct {
	token editor.Token
	cell  editor.Cell
	err   error
	list  booksLoadedMsg
}

type bookDeletedMsg struct {
	token editor.Token
	id    int64
	err   error
}

type prefsSavedMsg struct {
	err error
}

type tickMsg time.Time

func fetchBooksCmd(ctx context.Context, client catalog.API, token editor.Token, seq uint64) tea.Cmd {
	return func() tea.Msg {
		books, err := client.ListBooks(ctx)
		return booksLoadedMsg{token: token, seq: seq, books: books, err: err}
	}
}

func createBookCmd(ctx context.Context, client catalog.API, token editor.Token, req catalog.CreateRequest) tea.Cmd {
	return func() tea.Msg {
		book, err := client.CreateBook(ctx, req)
		return bookCreatedMsg{token: token, book: book, err: err}
	}
}

// updateBookCmd sends the full row and then re-fetches the list whatever the
// outcome of the update.
func updateBookCmd(ctx context.Context, client catalog.API, token editor.Token, cell editor.Cell, req catalog.UpdateRequest, seq uint64) tea.Cmd {
	return func() tea.Msg {
		err := client.UpdateBook(ctx, req)
		books, listErr := client.ListBooks(ctx)
		return bookUpdatedMsg{
			token: token,
			cell:  cell,
			err:   err,
			list:  booksLoadedMsg{token: token, seq: seq, books: books, err: listErr},
		}
	}
}

func deleteBookCmd(ctx context.Context, client catalog.API, token editor.Token, id int64) tea.Cmd {
	return func() tea.Msg {
		return bookDeletedMsg{token: token, id: id, err: client.DeleteBook(ctx, id)}
	}
}

func savePrefsCmd(path string, p prefs.Prefs) tea.Cmd {
	return func() tea.Msg {
		return prefsSavedMsg{err: prefs.Save(path, p)}
	}
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
