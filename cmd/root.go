package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile string
	timeout time.Duration
	dryRun  bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:              "manifest-updater [paths...]",
	Short:            "manifest-updater - remove obsolete conditions from test manifests",
	TraverseChildren: true, // Prioritize subcommands
	Run: func(cmd *cobra.Command, args []string) {
		// no subcommand
		if len(args) == 0 {
			// display help when only 'manifest-updater' is entered
			_ = cmd.Help()
			return
		}
		// Format: manifest-updater [path1 path2 ...] => behaves like the skipif subcommand
		skipifCmd.Run(skipifCmd, args)
	},
}

func Execute() error {
	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()

	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Path to the configuration file")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Minute, "Set a timeout for the whole run")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Report what would change without touching any file")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(skipifCmd)
	rootCmd.AddCommand(wptCmd)
}
