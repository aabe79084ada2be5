package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/cubegen/internal/model"
)

var errNoRecordsDir = errors.New("no run record directory: pass one or set records in the config")

// historyCmd represents the history command.
var historyCmd = newHistoryCmd()

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [DIR]",
		Short: "List recorded cube generation runs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			dir := cfg.Records
			if len(args) == 1 {
				dir = args[0]
			}

			if dir == "" {
				return errNoRecordsDir
			}

			return workflow.History(m.Path(dir))
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
