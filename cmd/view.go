package cmd

import (
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/cubegen/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view CUBE",
		Short: "Show the header of a cube file",
		Long:  "Show the grid, origin, voxel vectors and atoms stored in a cube file. Gzipped cubes are read transparently.",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.View(m.Path(args[0]))
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
