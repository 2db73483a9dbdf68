package config

const (
	// CliConfigFileName is the config file name without extension.
	CliConfigFileName = "tokenicon"
	// ConfigFileType is the only supported config format.
	ConfigFileType = "yaml"

	SystemDirConfigFilePath = "/usr/local/etc/tokenicon"
	WindowsAppDataEnvVar    = "LOCALAPPDATA"

	// ConfigPathEnvVar points at a directory holding tokenicon.yaml.
	ConfigPathEnvVar = "TOKENICON_CONFIG_PATH"
	// EnvPrefix prefixes environment overrides, e.g. TOKENICON_LOGS_LEVEL.
	EnvPrefix = "TOKENICON"

	customIconsDBName = "custom-icons.db"
)
