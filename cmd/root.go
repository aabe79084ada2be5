// Package cmd provides the root command and CLI setup for cubegen.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/cubegen/internal/adapter"
	"github.com/mouse-blink/cubegen/internal/config"
	"github.com/mouse-blink/cubegen/internal/controller"
	"github.com/mouse-blink/cubegen/internal/domain"
	"github.com/mouse-blink/cubegen/internal/engine"
	"github.com/mouse-blink/cubegen/internal/logger"
	m "github.com/mouse-blink/cubegen/internal/model"
)

// workflow is built from the loaded configuration before any subcommand
// runs, unless a test has already injected one.
var workflow domain.Workflow
var cfg = config.Default()

var configFlag string
var logLevelFlag string
var logFormatFlag string
var noTUIFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cubegen",
		Short: "Sample electron density and electrostatic potential on cube grids",
		Long: `cubegen evaluates fields of a molecule on a regular 3-D grid and writes
them as Gaussian cube files.

  cubegen density h2o.yaml -o h2o_den.cube
  cubegen mep h2o.yaml -o h2o_pot.cube --nx 40 --ny 40 --nz 40
  cubegen orbital h2o.yaml -o homo.cube --mo 4
  cubegen view h2o_den.cube`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
	}
	cmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (yaml, toml or json)")
	cmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "", "log format: text or json")
	cmd.PersistentFlags().BoolVar(&noTUIFlag, "no-tui", false, "print plain text even on a terminal")

	return cmd
}

// setup loads the configuration and wires the workflow.
func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(configFlag)
	if err != nil {
		return err
	}

	if logLevelFlag != "" {
		loaded.Log.Level = logLevelFlag
	}

	if logFormatFlag != "" {
		loaded.Log.Format = logFormatFlag
	}

	if err := loaded.Validate(); err != nil {
		return err
	}

	cfg = loaded

	if workflow != nil {
		return nil
	}

	useTTY := !noTUIFlag && controller.IsTTY(os.Stdout)

	workflow = domain.NewWorkflow(
		adapter.NewJobLoader(),
		adapter.NewCubeStore(),
		adapter.NewRunStore(),
		controller.NewUI(cmd.Root(), useTTY),
		newMolecule,
		domain.WithLogger(logger.New(cmd.ErrOrStderr(), logger.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})),
	)

	return nil
}

func newMolecule(job m.Job) (domain.Molecule, error) {
	mol, err := engine.NewMoleculeFromJob(job)
	if err != nil {
		return nil, err
	}

	return mol, nil
}

// Execute adds all child commands to the root command and sets flags appropriately.
// Interrupts cancel the running evaluation.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}
