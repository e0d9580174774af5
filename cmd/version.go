package cmd

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"weppcloud.dev/pkg/wepprunner/internal/adapter"
)

const develVersion = "(devel)"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long: `Display the wepprunner build, the Go version it was built with and the
simulator build 'run' would use with the current configuration.`,
		Args: cobra.ExactArgs(0),
		Run: func(cmd *cobra.Command, _ []string) {
			printVersion(cmd.OutOrStdout(), viper.GetString(binDirConfigKey), viper.GetString(binaryConfigKey))
		},
	}
}

func printVersion(w io.Writer, binDir, binary string) {
	version, revision := develVersion, ""

	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" {
			version = info.Main.Version
		}

		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				revision = setting.Value
			}
		}
	}

	fmt.Fprintf(w, "wepprunner\t%s\n", version)

	if revision != "" {
		fmt.Fprintf(w, "revision\t%s\n", revision)
	}

	fmt.Fprintf(w, "go\t\t%s\n", runtime.Version())

	path, err := adapter.ResolveBinary(binDir, binary)
	if err != nil {
		fmt.Fprintf(w, "simulator\t%s (unavailable: %v)\n", binary, err)
		return
	}

	fmt.Fprintf(w, "simulator\t%s (%s)\n", binary, path)
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
