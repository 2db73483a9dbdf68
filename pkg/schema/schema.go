package schema

import "time"

// Configuration is the root of tokenicon.yaml.
type Configuration struct {
	Logs        Logs        `yaml:"logs" json:"logs" mapstructure:"logs"`
	Icons       Icons       `yaml:"icons" json:"icons" mapstructure:"icons"`
	Fetch       Fetch       `yaml:"fetch" json:"fetch" mapstructure:"fetch"`
	CustomIcons StoreConfig `yaml:"custom_icons" json:"custom_icons" mapstructure:"custom_icons"`
	Tokens      Tokens      `yaml:"tokens" json:"tokens" mapstructure:"tokens"`

	// CliConfigPath is the config file that was actually loaded, if any.
	CliConfigPath string `yaml:"-" json:"-" mapstructure:"-"`
}

type Logs struct {
	File  string `yaml:"file" json:"file" mapstructure:"file"`
	Level string `yaml:"level" json:"level" mapstructure:"level"`
}

// Icons holds the presentation constants applied to every resolved icon.
type Icons struct {
	// Inset is the padding added on every side of the bitmap, in pixels.
	Inset int `yaml:"inset" json:"inset" mapstructure:"inset"`
	// CornerRadius is applied to the icon container, never to the bitmap.
	CornerRadius float64 `yaml:"corner_radius" json:"corner_radius" mapstructure:"corner_radius"`
	// NeutralBackground is the "#RRGGBB" color used when no color key is known.
	NeutralBackground string `yaml:"neutral_background" json:"neutral_background" mapstructure:"neutral_background"`
	// DefaultPath is an extra path suffix that designates the bundled default icon.
	DefaultPath string `yaml:"default_path" json:"default_path" mapstructure:"default_path"`
	// Size is the target edge length used when the caller does not pass one.
	Size int `yaml:"size" json:"size" mapstructure:"size"`
}

type Fetch struct {
	Timeout   time.Duration `yaml:"timeout" json:"timeout" mapstructure:"timeout"`
	MaxBytes  int64         `yaml:"max_bytes" json:"max_bytes" mapstructure:"max_bytes"`
	UserAgent string        `yaml:"user_agent" json:"user_agent" mapstructure:"user_agent"`
	// CacheDir overrides the XDG cache location for downloaded images. Empty uses XDG.
	CacheDir string `yaml:"cache_dir" json:"cache_dir" mapstructure:"cache_dir"`
	// CacheTTL is how long a downloaded image is reused. Zero never expires.
	CacheTTL time.Duration `yaml:"cache_ttl" json:"cache_ttl" mapstructure:"cache_ttl"`
	// DisableCache turns off the on-disk download cache.
	DisableCache bool        `yaml:"disable_cache" json:"disable_cache" mapstructure:"disable_cache"`
	Retry        RetryConfig `yaml:"retry" json:"retry" mapstructure:"retry"`
}

// StoreConfig selects and configures a key/value store backend.
type StoreConfig struct {
	Type    string                 `yaml:"type" json:"type" mapstructure:"type"`
	Options map[string]interface{} `yaml:"options" json:"options" mapstructure:"options"`
}

type Tokens struct {
	// Path to the tokens JSON file. Empty uses the XDG data dir.
	Path string `yaml:"path" json:"path" mapstructure:"path"`
	// Locking reports whether the platform supports locking tokens.
	Locking bool `yaml:"locking" json:"locking" mapstructure:"locking"`
}
