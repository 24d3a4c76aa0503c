package update

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"

	"github.com/worldomonation/manifest-updater/internal"
	"github.com/worldomonation/manifest-updater/internal/manifest"
	"github.com/worldomonation/manifest-updater/internal/types"
	"github.com/worldomonation/manifest-updater/scanner"
)

// Processor applies one manifest dialect to a single file.
type Processor func(filePath string) (types.Result, error)

// New creates the per-file engine for the given configuration.
func New(cfg Config, dryRun bool, logger *zap.Logger) *internal.Engine {
	return internal.NewEngine(manifest.NewPatterns(cfg.AndroidVersion, cfg.Subcategories), dryRun, logger)
}

// ProcessFiles runs the processor over every candidate manifest under the
// given paths. A failing path is recorded and skipped; only context
// cancellation aborts the run, returning the results collected so far.
func ProcessFiles(
	ctx context.Context,
	logger *zap.Logger,
	paths []string,
	filter scanner.Filter,
	processor Processor,
) ([]types.Result, error) {
	var allResults []types.Result
	for _, path := range paths {
		results, err := ProcessPath(ctx, logger, path, filter, processor)
		allResults = append(allResults, results...)
		if err != nil {
			if ctx.Err() != nil {
				return allResults, err
			}
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			allResults = append(allResults, types.Result{Path: path, Err: err})
		}
	}

	return allResults, nil
}

// ProcessPath processes a single root: a directory is walked for candidate
// manifests and processed by a bounded worker pool, a direct file path is
// processed on its own. Each worker owns its file path exclusively.
func ProcessPath(
	ctx context.Context,
	logger *zap.Logger,
	path string,
	filter scanner.Filter,
	processor Processor,
) ([]types.Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	if !info.IsDir() {
		if !filter.Match(path) {
			if logger != nil {
				logger.Warn("skipping unrecognized manifest", zap.String("file", path))
			}
			return []types.Result{{Path: path, Action: types.ActionSkip}}, nil
		}
		result, err := processor(path)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing file", zap.String("file", path), zap.Error(err))
			}
			if result.Path == "" {
				result.Path = path
			}
			if result.Err == nil {
				result.Err = err
			}
		}
		return []types.Result{result}, nil
	}

	files, err := scanner.New(path, filter).Scan()
	if err != nil {
		return nil, fmt.Errorf("error walking directory %s: %w", path, err)
	}
	if len(files) == 0 {
		return nil, nil
	}

	resultChan := make(chan types.Result, len(files))

	// limit the number of workers
	maxWorkers := runtime.NumCPU()
	sem := make(chan struct{}, maxWorkers)

	bar := progressbar.NewOptions(len(files),
		progressbar.OptionSetDescription(path),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	// for each file, run a goroutine
	dispatched := 0
	for _, file := range files {
		if ctx.Err() != nil {
			break
		}
		sem <- struct{}{}
		dispatched++
		go func(fp string) {
			defer func() { <-sem }()

			result, err := processor(fp)
			if err != nil {
				if logger != nil {
					logger.Error("Error processing file", zap.String("file", fp), zap.Error(err))
				}
				if result.Path == "" {
					result.Path = fp
				}
				if result.Err == nil {
					result.Err = err
				}
			}
			resultChan <- result
			bar.Add(1)
		}(file.Path)
	}

	// collect results for everything that was dispatched
	results := make([]types.Result, 0, dispatched)
	for i := 0; i < dispatched; i++ {
		results = append(results, <-resultChan)
	}

	fmt.Println()
	if ctx.Err() != nil {
		return results, ctx.Err()
	}
	return results, nil
}
