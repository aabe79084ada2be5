package cmd

import (
	"github.com/spf13/cobra"
)

var densityFlags fieldFlags

// densityCmd represents the density command.
var densityCmd = newDensityCmd()

func newDensityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "density JOB",
		Short: "Write the electron density of a job to a cube file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := workflow.Density(cmd.Context(), densityFlags.args(cmd, args[0]))
			return err
		},
	}
	densityFlags.register(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(densityCmd)
}
