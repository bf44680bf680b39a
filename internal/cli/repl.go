package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/krakend/docs-search/internal/trigger"
)

const replQuit = ":q"

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Search interactively, one query per line",
	Long: `Read queries line by line and print the results of each.

Queries shorter than the configured minimum length print nothing. An empty
line clears the current query and ":q" exits.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		store := openStore(cmd.Context(), cfg)

		out := cmd.OutOrStdout()
		controller := trigger.New(store, terminalRenderer(out), cfg.Search.MinQueryLength)
		return runREPL(cmd.InOrStdin(), out, controller)
	},
}

// runREPL feeds every input line to the controller until EOF or ":q"
func runREPL(in io.Reader, out io.Writer, controller *trigger.Controller) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprint(out, "> ")
	for scanner.Scan() {
		line := scanner.Text()
		switch strings.TrimSpace(line) {
		case replQuit:
			return nil
		case "":
			controller.Escape()
		default:
			if view := controller.Input(line); view.Visible {
				fmt.Fprint(out, view.Body)
			}
		}
		fmt.Fprint(out, "> ")
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(replCmd)
}
