package cmd

import (
	"github.com/spf13/cobra"
)

var mepFlags fieldFlags

// mepCmd represents the mep command.
var mepCmd = newMEPCmd()

func newMEPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mep JOB",
		Short: "Write the molecular electrostatic potential of a job to a cube file",
		Long: `Write the molecular electrostatic potential of a job to a cube file.

The nuclear term is summed exactly. The electronic term needs one set of
one-electron integrals per grid point and runs on a worker pool.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := workflow.MEP(cmd.Context(), mepFlags.args(cmd, args[0]))
			return err
		},
	}
	mepFlags.register(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(mepCmd)
}
