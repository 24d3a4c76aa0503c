package update

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/worldomonation/manifest-updater/internal/manifest"
)

// DefaultConfigPath is where LoadConfig looks when no path is given.
const DefaultConfigPath = ".manifest-updater.yaml"

// Config holds the tunable parts of both dialect processors.
type Config struct {
	AndroidVersion string   `yaml:"android_version"`
	ManifestNames  []string `yaml:"manifest_names"`
	WPTExtension   string   `yaml:"wpt_extension"`
	Subcategories  []string `yaml:"subcategories"`
}

// DefaultConfig returns the configuration matching the upstream manifests.
func DefaultConfig() Config {
	return Config{
		AndroidVersion: manifest.DefaultAndroidVersion,
		ManifestNames:  []string{"mochitest.ini", "browser.ini"},
		WPTExtension:   ".ini",
		Subcategories:  manifest.DefaultSubcategories,
	}
}

// LoadConfig reads the configuration file at the given path, falling back
// to DefaultConfig when the file does not exist. Fields left empty in the
// file keep their default values.
func LoadConfig(configurationPath string) (Config, error) {
	if configurationPath == "" {
		configurationPath = DefaultConfigPath
	}

	config := DefaultConfig()

	f, err := os.Open(configurationPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, err
	}
	defer f.Close()

	var loaded Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&loaded); err != nil {
		return config, err
	}

	if loaded.AndroidVersion != "" {
		config.AndroidVersion = loaded.AndroidVersion
	}
	if len(loaded.ManifestNames) > 0 {
		config.ManifestNames = loaded.ManifestNames
	}
	if loaded.WPTExtension != "" {
		config.WPTExtension = loaded.WPTExtension
	}
	if len(loaded.Subcategories) > 0 {
		config.Subcategories = loaded.Subcategories
	}

	return config, nil
}
