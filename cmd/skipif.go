package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/worldomonation/manifest-updater/internal"
	"github.com/worldomonation/manifest-updater/scanner"
	"github.com/worldomonation/manifest-updater/update"
)

var androidVersion string

var skipifCmd = &cobra.Command{
	Use:   "skipif [paths...]",
	Short: "Remove obsolete skip-if clauses from mochitest-style manifests",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		cfg, err := update.LoadConfig(cfgFile)
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}
		if androidVersion != "" {
			cfg.AndroidVersion = androidVersion
		}

		engine := update.New(cfg, dryRun, logger)
		filter := scanner.Filter{Names: cfg.ManifestNames}

		runProcess(ctx, logger, args, filter, engine.RunSkipIf)
	},
}

func init() {
	skipifCmd.Flags().StringVar(&androidVersion, "android-version", "", "Android version whose skip-if clauses are obsolete")
}

func runProcess(ctx context.Context, logger *zap.Logger, paths []string, filter scanner.Filter, processor update.Processor) {
	results, err := update.ProcessFiles(ctx, logger, paths, filter, processor)
	if err != nil {
		logger.Error("Run aborted", zap.Error(err))
	}

	fmt.Print(internal.FormatResults(results))

	if err != nil {
		os.Exit(1)
	}
	for _, r := range results {
		if r.Err != nil {
			os.Exit(1)
		}
	}
}
