package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"weppcloud.dev/pkg/wepprunner/internal/domain"
	m "weppcloud.dev/pkg/wepprunner/internal/model"
)

var buildStrictFlag bool
var buildDryRunFlag bool

// buildCmd represents the build command.
var buildCmd = newBuildCmd()

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build <plan>",
		Short: "Write the run files of a plan",
		Long:  buildLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return buildWorkflow().Build(cmd.Context(), domain.BuildArgs{
				Plan:   m.Path(args[0]),
				Strict: viper.GetBool(strictConfigKey),
				DryRun: buildDryRunFlag,
			})
		},
	}

	cmd.Flags().BoolVar(&buildStrictFlag, strictFlagName, viper.GetBool(strictConfigKey), "fail when an input file is missing")

	cmd.Flags().BoolVar(&buildDryRunFlag, dryRunFlagName, false, "report changes without writing")

	bindFlagsOnRun(cmd, map[string]string{strictFlagName: strictConfigKey})

	return cmd
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
