package commands

// Root command for the Cobra CLI
// Running the root command without a subcommand performs the full analysis

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/soamparkash/SCT-DS-02/pkg/config"
	"github.com/soamparkash/SCT-DS-02/pkg/logging"
)

// app carries what every command needs after flags are parsed.
type app struct {
	cfg    *config.Config
	log    *zap.Logger
	closer func() error
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "titanic-eda",
		Short: "Exploratory data analysis of the Titanic passenger table",
		Long: `titanic-eda loads the Titanic passenger table, prints summary statistics,
imputes missing values and writes nine charts to image files.

Without --input the sample bundled with the binary is used.`,
		Version:       "1.0.0",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: a.wrap(a.runAll),
	}
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newRunCommand(a),
		newSummaryCommand(a),
		newCleanCommand(a),
		newPlotCommand(a),
	)
	return root
}

// Execute runs the command tree on os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	logger, closer, err := logging.New(logging.Options{
		Level:   cfg.Log.Level,
		File:    cfg.Log.File,
		Console: cmd.ErrOrStderr(),
	})
	if err != nil {
		return err
	}
	a.cfg, a.log, a.closer = cfg, logger, closer
	return nil
}

// wrap turns fn into a cobra RunE that releases the logger when fn returns.
func (a *app) wrap(fn func(cmd *cobra.Command) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) (err error) {
		defer func() {
			if cerr := a.close(); err == nil {
				err = cerr
			}
		}()
		return fn(cmd)
	}
}

func (a *app) close() error {
	if a.closer == nil {
		return nil
	}
	err := a.closer()
	a.closer = nil
	return err
}
