package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/soamparkash/SCT-DS-02/pkg/report"
)

func newRunCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Print the report, clean the table and write the charts",
		Args:  cobra.NoArgs,
		RunE:  a.wrap(a.runAll),
	}
}

func newSummaryCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print info, head, descriptive statistics, duplicates and unique values",
		Args:  cobra.NoArgs,
		RunE: a.wrap(func(cmd *cobra.Command) error {
			df, err := a.load()
			if err != nil {
				return err
			}
			return report.Summary(cmd.OutOrStdout(), df, a.cfg.Report.HeadRows)
		}),
	}
}

func newCleanCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Impute missing values and print what changed",
		Long: `Impute missing values and print the missing counts before and after,
the fill applied to each column and an outlier summary of age and fare.
With --export the cleaned table is written to a .csv or .xlsx file.`,
		Args: cobra.NoArgs,
		RunE: a.wrap(func(cmd *cobra.Command) error {
			df, err := a.load()
			if err != nil {
				return err
			}
			cleaned, fills, err := a.clean(df)
			if err != nil {
				return err
			}
			if err := report.Cleaning(cmd.OutOrStdout(), df, cleaned, fills); err != nil {
				return fmt.Errorf("print cleaning report: %w", err)
			}
			return a.export(cleaned)
		}),
	}
}

func newPlotCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "plot",
		Short: "Clean the table and write the charts",
		Args:  cobra.NoArgs,
		RunE: a.wrap(func(cmd *cobra.Command) error {
			df, err := a.load()
			if err != nil {
				return err
			}
			cleaned, _, err := a.clean(df)
			if err != nil {
				return err
			}
			return a.plot(cleaned)
		}),
	}
}
