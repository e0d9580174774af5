package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	m "weppcloud.dev/pkg/wepprunner/internal/model"
)

var initPlanFlag string

const initPlanFlagName = "plan"

// starterPlan is written by 'init --plan'. It routes three hillslopes to one
// channel and runs 30 continuous years.
const starterPlan = `# wepprunner plan. Directories are relative to this file.
name: starter
runs_dir: wepp/runs
# flowpath_runs_dir: wepp/flowpaths
# output_dir: ../output
mode: continuous
sim_years: 30
# strict: true
# reveg: false           # continuous hillslopes use the revegetation run by default
# omni: true
# overrides:
#   soil: ../../shared/soils
hillslopes: [1, 2, 3]
# flowpaths:
#   - wepp_id: 1
#     name: fp_1_1
# storms:
#   - id: 1
#     key: event_1
watershed:
  routes:
    - {hillslope: 1, channel: 4}
    - {hillslope: 2, channel: 4}
    - {hillslope: 3, channel: 4}
`

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a default wepprunner.yaml and optionally a starter plan",
		Long: `Write wepprunner.yaml to the current directory with the current defaults
(simulator build, parallelism, journal and status settings) so it can be
edited. With --plan, also write a starter plan routing three hillslopes into
one watershed channel. Existing files are never overwritten.`,
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath := filepath.Join(configFolderPath, configFileName)

			if err := viper.SafeWriteConfigAs(configPath); err != nil {
				return fmt.Errorf("write config %s: %w", configPath, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", configPath)

			if initPlanFlag == "" {
				return nil
			}

			if err := writeStarterPlan(m.Path(initPlanFlag)); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", initPlanFlag)

			return nil
		},
	}

	cmd.Flags().StringVar(&initPlanFlag, initPlanFlagName, "", "also write a starter plan to this path")

	return cmd
}

func writeStarterPlan(path m.Path) error {
	exists, err := fsAdapter.Exists(path)
	if err != nil {
		return fmt.Errorf("write plan %s: %w", path, err)
	}

	if exists {
		return fmt.Errorf("write plan %s: file already exists", path)
	}

	if err := fsAdapter.WriteFile(path, []byte(starterPlan), 0o644); err != nil {
		return fmt.Errorf("write plan %s: %w", path, err)
	}

	return nil
}

func init() {
	rootCmd.AddCommand(initCmd)
}
