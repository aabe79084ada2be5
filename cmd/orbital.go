package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/cubegen/internal/domain"
)

var orbitalFlags fieldFlags
var orbitalIndexFlag int

// orbitalCmd represents the orbital command.
var orbitalCmd = newOrbitalCmd()

func newOrbitalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "orbital JOB",
		Short: "Write one molecular orbital of a job to a cube file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := workflow.Orbital(cmd.Context(), domain.OrbitalArgs{
				FieldArgs: orbitalFlags.args(cmd, args[0]),
				Orbital:   orbitalIndexFlag,
			})

			return err
		},
	}
	orbitalFlags.register(cmd)
	cmd.Flags().IntVar(&orbitalIndexFlag, "mo", 0, "orbital index, counted from zero (column of mo_coeffs)")

	return cmd
}

func init() {
	rootCmd.AddCommand(orbitalCmd)
}
