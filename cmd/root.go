// Package cmd provides the root command and CLI setup for wepprunner.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"weppcloud.dev/pkg/wepprunner/internal/adapter"
	"weppcloud.dev/pkg/wepprunner/internal/controller"
	"weppcloud.dev/pkg/wepprunner/internal/domain"
)

var fsAdapter adapter.ProjectFSAdapter
var planLoader adapter.PlanLoader
var ui controller.UI

// workflow replaces the configured workflow when set. Tests use it to inject
// mocks.
var workflow domain.Workflow

var logFileFlag string
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalProjectFSAdapter()
	planLoader = adapter.NewFilePlanLoader(fsAdapter)
}

const planFormatsHelp = `Plans are YAML files, or HCL files when the name ends in .hcl. HCL plans
can read the environment, e.g. runs_dir = "${env.PROJECT}/wepp/runs".`

const rootLongDescription = `wepprunner writes WEPP run files for the hillslopes, flowpaths and
watershed of a project and runs the simulator over them, hillslopes in
parallel and the watershed once every hillslope it routes has succeeded.

` + planFormatsHelp

const runLongDescription = `Build every run file the plan describes and simulate them.

` + planFormatsHelp

const buildLongDescription = `Build every run file the plan describes and write it to the runs directory
without running the simulator. Changed files are reported with a diff.

` + planFormatsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wepprunner",
		Short: "WEPP simulation runner",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// bindFlagsOnRun binds flag names to config keys when cmd executes. Commands
// sharing a key would otherwise overwrite each other's binding.
func bindFlagsOnRun(cmd *cobra.Command, keys map[string]string) {
	cmd.PreRun = func(cmd *cobra.Command, _ []string) {
		for name, key := range keys {
			bindFlagToConfig(cmd.Flags().Lookup(name), key)
		}
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
// Interrupts cancel the running simulations.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

// buildWorkflow returns the workflow used by commands that never run the
// simulator.
func buildWorkflow() domain.Workflow {
	if workflow != nil {
		return workflow
	}

	return domain.NewWorkflow(fsAdapter, planLoader, ui, nil)
}

// runWorkflow returns a workflow wired to the configured simulator build and
// status channel. The returned func releases the status channel.
func runWorkflow(ctx context.Context) (domain.Workflow, func(), error) {
	if workflow != nil {
		return workflow, func() {}, nil
	}

	binary, err := adapter.ResolveBinary(viper.GetString(binDirConfigKey), viper.GetString(binaryConfigKey))
	if err != nil {
		return nil, nil, err
	}

	publisher, err := newStatusPublisher(ctx)
	if err != nil {
		return nil, nil, err
	}

	executor := domain.NewSimulationExecutor(fsAdapter, adapter.NewLocalSimulatorAdapter(binary), executorOptions(
		publisher, viper.GetBool(requireMarkerConfigKey), viper.GetBool(cleanupFlowpathsConfigKey))...)

	return domain.NewWorkflow(fsAdapter, planLoader, ui, executor), publisher.Close, nil
}

// newStatusPublisher connects to the configured status server, or logs the
// status lines when none is configured.
func newStatusPublisher(ctx context.Context) (adapter.StatusPublisher, error) {
	channel := viper.GetString(statusChannelConfigKey)

	url := viper.GetString(statusURLConfigKey)
	if url == "" {
		return adapter.NewLogStatusPublisher(channel), nil
	}

	publisher, err := adapter.NewSocketIOStatusPublisher(ctx, url, channel)
	if err != nil {
		return nil, fmt.Errorf("status channel: %w", err)
	}

	return publisher, nil
}
