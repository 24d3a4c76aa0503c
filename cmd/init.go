package cmd

import (
	"fmt"

	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/worldomonation/manifest-updater/update"
)

// initCmd: manifest-updater init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new updater configuration file",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfigurationFile(cfgFile); err != nil {
			logger.Error("Error initializing config file", zap.Error(err))
			return
		}
		path := cfgFile
		if path == "" {
			path = update.DefaultConfigPath
		}
		fmt.Printf("Configuration file created/updated: %s\n", path)
	},
}

func initConfigurationFile(configurationPath string) error {
	if configurationPath == "" {
		configurationPath = update.DefaultConfigPath
	}

	// Create a yaml file with the default patterns
	d, err := yaml.Marshal(update.DefaultConfig())
	if err != nil {
		return err
	}

	f, err := os.Create(configurationPath)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(d)
	if err != nil {
		return err
	}

	return nil
}
