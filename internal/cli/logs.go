package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/five82/bookshelf/internal/logtail"
)

func newLogsCmd(a *App) *cobra.Command {
	var lines int
	var level string
	var plain bool

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print the tail of the TUI diagnostic log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(a)
			if err != nil {
				return err
			}
			minLevel, err := logtail.ParseLevel(level)
			if err != nil {
				return err
			}
			out, err := logtail.Read(cfg.LogFile, lines, minLevel)
			if err != nil {
				return err
			}
			if len(out) == 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "no log entries in %s\n", cfg.LogFile)
				return nil
			}
			color := !plain && isTerminal(cmd.OutOrStdout())
			for _, line := range out {
				if color {
					line = logtail.Colorize(line)
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "Number of lines to show (0 for all)")
	cmd.Flags().StringVar(&level, "level", "", "Minimum level: debug, info, warn, error")
	cmd.Flags().BoolVar(&plain, "plain", false, "Disable colors (implied when stdout is not a terminal)")
	return cmd
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
