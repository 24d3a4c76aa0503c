package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/worldomonation/manifest-updater/internal/types"
	"github.com/worldomonation/manifest-updater/scanner"
	"github.com/worldomonation/manifest-updater/update"
)

var wptRegex string

var wptCmd = &cobra.Command{
	Use:   "wpt [paths...]",
	Short: "Remove matching lines from web-platform-tests manifests",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(1)
		}

		// the expression is validated before any file is touched
		expr, err := compileUserRegex(wptRegex)
		if err != nil {
			logger.Fatal("Invalid regular expression", zap.String("regex", wptRegex), zap.Error(err))
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		cfg, err := update.LoadConfig(cfgFile)
		if err != nil {
			logger.Fatal("Failed to load configuration", zap.Error(err))
		}

		engine := update.New(cfg, dryRun, logger)
		filter := scanner.Filter{Extensions: []string{cfg.WPTExtension}}
		processor := func(path string) (types.Result, error) {
			return engine.RunWPT(path, expr)
		}

		runProcess(ctx, logger, args, filter, processor)
	},
}

func init() {
	wptCmd.Flags().StringVar(&wptRegex, "regex", "", "Regular expression selecting the lines to remove")
}

func compileUserRegex(expr string) (*regexp.Regexp, error) {
	if expr == "" {
		return nil, errors.New("a regular expression is required (--regex)")
	}
	return regexp.Compile(expr)
}
