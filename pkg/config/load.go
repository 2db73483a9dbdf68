package config

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	errUtils "github.com/cloudposse/tokenicon/errors"
	log "github.com/cloudposse/tokenicon/pkg/logger"
	"github.com/cloudposse/tokenicon/pkg/schema"
	"github.com/cloudposse/tokenicon/pkg/store"
	"github.com/cloudposse/tokenicon/pkg/xdg"
)

const configDirPerm = 0o755

// LoadConfig reads tokenicon.yaml from the following locations, lowest priority first:
// system dir (/usr/local/etc/tokenicon on Linux, %LOCALAPPDATA%/tokenicon on Windows),
// XDG config dir, current directory, TOKENICON_CONFIG_PATH, then cliConfigPath.
// TOKENICON_* env vars override file values.
func LoadConfig(cliConfigPath string) (schema.Configuration, error) {
	v := viper.New()
	var cfg schema.Configuration

	v.SetConfigType(ConfigFileType)
	v.SetTypeByDefaultValue(true)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaultConfiguration(v)

	loaders := []func(*viper.Viper) error{
		readSystemConfig,
		readXDGConfig,
		readWorkDirConfig,
		readEnvConfigPath,
	}
	for _, load := range loaders {
		if err := load(v); err != nil {
			return cfg, err
		}
	}

	if cliConfigPath != "" {
		found, err := mergeConfigFile(v, configFilePath(cliConfigPath))
		if err != nil {
			return cfg, err
		}
		if !found {
			return cfg, errUtils.Build(errUtils.ErrLoadConfig).
				WithContext("path", cliConfigPath).
				WithHint("Pass a tokenicon.yaml file or a directory containing one").
				WithExitCode(errUtils.ExitCodeConfig).
				Err()
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, errUtils.Build(errUtils.ErrLoadConfig).WithCause(err).WithExitCode(errUtils.ExitCodeConfig).Err()
	}

	cfg.CliConfigPath = v.ConfigFileUsed()
	if cfg.CliConfigPath == "" {
		log.Debug("'tokenicon.yaml' was not found, using defaults", "paths", "system dir, XDG config dir, current dir, ENV vars")
	} else if !filepath.IsAbs(cfg.CliConfigPath) {
		if abs, err := filepath.Abs(cfg.CliConfigPath); err == nil {
			cfg.CliConfigPath = abs
		}
	}

	if err := applyDerivedDefaults(&cfg); err != nil {
		return cfg, err
	}
	if err := Validate(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyDerivedDefaults fills values that depend on the environment.
func applyDerivedDefaults(cfg *schema.Configuration) error {
	if cfg.CustomIcons.Type != store.TypeBolt {
		return nil
	}
	if cfg.CustomIcons.Options == nil {
		cfg.CustomIcons.Options = map[string]interface{}{}
	}
	if p, ok := cfg.CustomIcons.Options["path"].(string); ok && p != "" {
		return nil
	}

	dir, err := xdg.GetXDGDataDir("", configDirPerm)
	if err != nil {
		return errUtils.Build(errUtils.ErrXDGDirectoryFailure).WithCause(err).WithExitCode(errUtils.ExitCodeConfig).Err()
	}
	cfg.CustomIcons.Options["path"] = filepath.Join(dir, customIconsDBName)
	return nil
}

// readSystemConfig loads config from the system dir.
func readSystemConfig(v *viper.Viper) error {
	dir := SystemDirConfigFilePath
	if runtime.GOOS == "windows" {
		dir = ""
		if appData := os.Getenv(WindowsAppDataEnvVar); appData != "" {
			dir = filepath.Join(appData, CliConfigFileName)
		}
	}
	if dir == "" {
		return nil
	}
	_, err := mergeConfigFile(v, configFilePath(dir))
	return err
}

// readXDGConfig loads config from $XDG_CONFIG_HOME/tokenicon.
func readXDGConfig(v *viper.Viper) error {
	dir, err := xdg.GetXDGConfigDir("", configDirPerm)
	if err != nil {
		log.Debug("Skipping XDG config dir", "error", err)
		return nil
	}
	_, err = mergeConfigFile(v, configFilePath(dir))
	return err
}

// readWorkDirConfig loads config from the current working directory.
func readWorkDirConfig(v *viper.Viper) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	_, err = mergeConfigFile(v, configFilePath(wd))
	return err
}

func readEnvConfigPath(v *viper.Viper) error {
	dir := os.Getenv(ConfigPathEnvVar)
	if dir == "" {
		return nil
	}

	found, err := mergeConfigFile(v, configFilePath(dir))
	if err != nil {
		return err
	}
	if !found {
		log.Debug("Config not found in "+ConfigPathEnvVar, "path", dir)
		return nil
	}
	log.Debug("Found config ENV", ConfigPathEnvVar, dir)
	return nil
}

// configFilePath turns a directory into the config file inside it; files pass through.
func configFilePath(path string) string {
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return path
	}
	return filepath.Join(path, CliConfigFileName+"."+ConfigFileType)
}

// mergeConfigFile merges path into v and reports whether the file existed.
func mergeConfigFile(v *viper.Viper, path string) (bool, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, errUtils.Build(errUtils.ErrLoadConfig).WithCause(err).WithContext("path", path).Err()
	}

	v.SetConfigFile(path)
	if err := v.MergeInConfig(); err != nil {
		return false, errUtils.Build(errUtils.ErrLoadConfig).
			WithCause(err).
			WithContext("path", path).
			WithExitCode(errUtils.ExitCodeConfig).
			Err()
	}
	log.Trace("Merged config file", "path", path)
	return true, nil
}
