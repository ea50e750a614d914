package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/five82/bookshelf/internal/catalog"
)

func newBooksCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "books",
		Short: "One-shot calls against the books API",
	}

	cmd.AddCommand(newBooksListCmd(a))
	cmd.AddCommand(newBooksAddCmd(a))
	cmd.AddCommand(newBooksUpdateCmd(a))
	cmd.AddCommand(newBooksDeleteCmd(a))

	return cmd
}

func newBooksListCmd(a *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every book",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(a)
			if err != nil {
				return err
			}
			books, err := client.ListBooks(cmd.Context())
			if err != nil {
				return err
			}
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(books)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), booksTable(books))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the raw JSON list")
	return cmd
}

func booksTable(books []catalog.Book) string {
	cell := lipgloss.NewStyle().Padding(0, 1)
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "TITLE", "RELEASE YEAR").
		StyleFunc(func(row, col int) lipgloss.Style { return cell })
	for _, b := range books {
		t.Row(strconv.FormatInt(b.ID, 10), b.Title, strconv.Itoa(b.ReleaseYear))
	}
	return t.Render()
}

func newBooksAddCmd(a *App) *cobra.Command {
	var title string
	var year int

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a book",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(a)
			if err != nil {
				return err
			}
			book, err := client.CreateBook(cmd.Context(), catalog.CreateRequest{Title: title, ReleaseYear: year})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), book.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "Book title")
	cmd.Flags().IntVar(&year, "year", 0, "Release year")
	return cmd
}

func newBooksUpdateCmd(a *App) *cobra.Command {
	var title string
	var year int

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a book's title and/or release year",
		Long:  "Sends the full row. Fields not given keep their current value.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("title") && !cmd.Flags().Changed("year") {
				return fmt.Errorf("nothing to update: pass --title and/or --year")
			}
			client, err := newClient(a)
			if err != nil {
				return err
			}
			books, err := client.ListBooks(cmd.Context())
			if err != nil {
				return err
			}
			i := catalog.IndexOf(books, id)
			if i < 0 {
				return fmt.Errorf("book %d not found", id)
			}
			book := books[i]
			if cmd.Flags().Changed("title") {
				book.Title = title
			}
			if cmd.Flags().Changed("year") {
				book.ReleaseYear = year
			}
			if err := client.UpdateBook(cmd.Context(), catalog.UpdateFor(book)); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), book.String())
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().IntVar(&year, "year", 0, "New release year")
	return cmd
}

func newBooksDeleteCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a book",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			client, err := newClient(a)
			if err != nil {
				return err
			}
			if err := client.DeleteBook(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted #%d\n", id)
			return nil
		},
	}
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid book id %q", s)
	}
	return id, nil
}
