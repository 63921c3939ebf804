package utils

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/DisposaBoy/JsonConfigReader"
	yaml "gopkg.in/yaml.v3"
)

// ConfigStructure is structure of main configuration
type ConfigStructure struct { // nolint: maligned
	// Pacman paths
	RootDir      string `json:"rootDir"                yaml:"root_dir"`
	DBPath       string `json:"dbPath"                 yaml:"db_path"`
	PacmanConfig string `json:"pacmanConfig"           yaml:"pacman_config"`

	// Logging
	LogLevel  string `json:"logLevel"               yaml:"log_level"`
	LogFormat string `json:"logFormat"              yaml:"log_format"`

	// Sync database cache
	CacheDir    string `json:"cacheDir"               yaml:"cache_dir"`
	EnableCache bool   `json:"enableCache"            yaml:"enable_cache"`

	// Output
	DefaultFormat string `json:"defaultFormat"          yaml:"default_format"`

	// Server
	ServeListen           string `json:"serveListen"            yaml:"serve_listen"`
	EnableMetricsEndpoint bool   `json:"enableMetricsEndpoint"  yaml:"enable_metrics_endpoint"`
}

// Config is configuration for pacfind, shared by all modules
var Config = ConfigStructure{
	RootDir:               "/",
	DBPath:                "/var/lib/pacman/",
	PacmanConfig:          "/etc/pacman.conf",
	LogLevel:              "warn",
	LogFormat:             "default",
	CacheDir:              filepath.Join("~", ".cache", "pacfind"),
	EnableCache:           true,
	DefaultFormat:         "",
	ServeListen:           ":8090",
	EnableMetricsEndpoint: false,
}

// ConfigLocations lists files tried for configuration when none is given explicitly
func ConfigLocations() []string {
	return []string{
		filepath.Join(os.Getenv("HOME"), ".pacfind.conf"),
		"/etc/pacfind.conf",
	}
}

// LoadConfig loads configuration from json file, falling back to yaml
func LoadConfig(filename string, config *ConfigStructure) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	decJSON := json.NewDecoder(JsonConfigReader.New(f))
	if err = decJSON.Decode(&config); err != nil {
		_, _ = f.Seek(0, 0)
		decYAML := yaml.NewDecoder(f)
		if err2 := decYAML.Decode(&config); err2 != nil {
			err = fmt.Errorf("invalid yaml (%s) or json (%s)", err2, err)
		} else {
			err = nil
		}
	}
	return err
}

// LoadFirstConfig loads configuration from the first existing file of
// locations, it returns name of the file or "" if none exists
func LoadFirstConfig(locations []string, config *ConfigStructure) (string, error) {
	for _, location := range locations {
		err := LoadConfig(location, config)
		if err == nil {
			return location, nil
		}
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("error loading config file %s: %s", location, err)
		}
	}

	return "", nil
}

// MarshalConfig encodes configuration as indented json or yaml
func MarshalConfig(config *ConfigStructure, asYAML bool) ([]byte, error) {
	if asYAML {
		yamlData, err := yaml.Marshal(&config)
		if err != nil {
			return nil, fmt.Errorf("error marshaling to YAML: %s", err)
		}
		return yamlData, nil
	}

	return json.MarshalIndent(&config, "", "  ")
}

// expandHome replaces leading ~ with home directory
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		return os.Getenv("HOME") + path[1:]
	}
	return path
}

// GetCacheDir returns the CacheDir with expanded ~ as home directory
func (conf *ConfigStructure) GetCacheDir() string {
	return expandHome(conf.CacheDir)
}

// GetDBPath returns pacman database path, relative paths are resolved against RootDir
func (conf *ConfigStructure) GetDBPath() string {
	dbPath := expandHome(conf.DBPath)
	if filepath.IsAbs(dbPath) {
		return dbPath
	}
	return filepath.Join(expandHome(conf.RootDir), dbPath)
}
