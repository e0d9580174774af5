package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"weppcloud.dev/pkg/wepprunner/internal/adapter"
)

var binariesBinDirFlag string

// binariesCmd represents the binaries command.
var binariesCmd = newBinariesCmd()

func newBinariesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "binaries",
		Short: "List the selectable simulator builds",
		Long:  "List the simulator builds in the binary directory that can be passed to 'run --bin'.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			names, err := adapter.ListBinaries(viper.GetString(binDirConfigKey))
			if err != nil {
				return err
			}

			for _, name := range names {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), name)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&binariesBinDirFlag, binDirFlagName, viper.GetString(binDirConfigKey), "directory holding the simulator builds")
	bindFlagsOnRun(cmd, map[string]string{binDirFlagName: binDirConfigKey})

	return cmd
}

func init() {
	rootCmd.AddCommand(binariesCmd)
}
