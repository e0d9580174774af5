package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"weppcloud.dev/pkg/wepprunner/internal/controller"
	m "weppcloud.dev/pkg/wepprunner/internal/model"
	"weppcloud.dev/pkg/wepprunner/pkg"
)

// resultsCmd represents the results command.
var resultsCmd = newResultsCmd()

func newResultsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "results [journal|dir]",
		Short: "View the results recorded in a run journal",
		Long: `Print the summary of a previous run from its journal. Given a directory, or
nothing, the newest journal in that directory (default: run.journal_dir) is
shown.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := viper.GetString(journalDirConfigKey)
			if len(args) == 1 {
				target = args[0]
			}

			path, err := resolveJournal(target)
			if err != nil {
				return err
			}

			results, err := pkg.ReadJournal[m.SimulationResult](path)
			if err != nil {
				return fmt.Errorf("read journal: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "journal\t%s\n", path)
			controller.NewSimpleUI(cmd).DisplaySummary(cmd.Context(), results)

			return nil
		},
	}
}

// resolveJournal maps a directory to its newest journal and passes files through.
func resolveJournal(target string) (string, error) {
	info, err := os.Stat(target)
	if err != nil {
		return "", fmt.Errorf("read journal: %w", err)
	}

	if !info.IsDir() {
		return target, nil
	}

	path, err := pkg.LatestJournal(target)
	if err != nil {
		return "", fmt.Errorf("read journal: %w", err)
	}

	return path, nil
}

func init() {
	rootCmd.AddCommand(resultsCmd)
}
