package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"weppcloud.dev/pkg/wepprunner/internal/domain"
	m "weppcloud.dev/pkg/wepprunner/internal/model"
)

var runParallelFlag int
var runStrictFlag bool
var runJournalDirFlag string
var runBinaryFlag string
var runBinDirFlag string
var runRequireMarkerFlag bool
var runStatusURLFlag string
var runStatusChannelFlag string

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <plan>",
		Short: "Build and simulate a plan",
		Long:  runLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parallel, err := checkParallelism(viper.GetInt(runParallelConfigKey))
			if err != nil {
				return err
			}

			wf, release, err := runWorkflow(cmd.Context())
			if err != nil {
				return err
			}
			defer release()

			return wf.Run(cmd.Context(), domain.RunArgs{
				Plan:       m.Path(args[0]),
				Strict:     viper.GetBool(strictConfigKey),
				Parallel:   parallel,
				JournalDir: viper.GetString(journalDirConfigKey),
			})
		},
	}

	configureRunFlags(cmd)
	bindFlagsOnRun(cmd, map[string]string{
		runParallelFlagName:   runParallelConfigKey,
		strictFlagName:        strictConfigKey,
		journalDirFlagName:    journalDirConfigKey,
		binaryFlagName:        binaryConfigKey,
		binDirFlagName:        binDirConfigKey,
		requireMarkerFlagName: requireMarkerConfigKey,
		statusURLFlagName:     statusURLConfigKey,
		statusChannelFlagName: statusChannelConfigKey,
	})

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&runParallelFlag, runParallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of simulations to run at once")
	cmd.Flags().BoolVar(&runStrictFlag, strictFlagName, viper.GetBool(strictConfigKey), "fail before simulating when an input file is missing")
	cmd.Flags().StringVar(&runJournalDirFlag, journalDirFlagName, viper.GetString(journalDirConfigKey), "directory the result journal is written to")
	cmd.Flags().StringVar(&runBinaryFlag, binaryFlagName, viper.GetString(binaryConfigKey), "simulator build to run (see 'wepprunner binaries')")
	cmd.Flags().StringVar(&runBinDirFlag, binDirFlagName, viper.GetString(binDirConfigKey), "directory holding the simulator builds")
	cmd.Flags().BoolVar(&runRequireMarkerFlag, requireMarkerFlagName, viper.GetBool(requireMarkerConfigKey), "require the simulator's completion line before a run counts as successful")
	cmd.Flags().StringVar(&runStatusURLFlag, statusURLFlagName, viper.GetString(statusURLConfigKey), "socket.io server receiving simulator output")
	cmd.Flags().StringVar(&runStatusChannelFlag, statusChannelFlagName, viper.GetString(statusChannelConfigKey), "channel attached to every status message")
}
