package config

const (
	defaultConfigPath      = "~/.config/langcache/config.toml"
	defaultRoot            = "~/.local/share/langcache"
	defaultLogDir          = "~/.local/share/langcache/logs"
	defaultAPIClient       = "http"
	defaultAPITimeout      = 30
	defaultMirrorKeyPrefix = "langcache:"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
)

// DefaultApplets is the built-in applet list used when the config file does not
// declare any.
func DefaultApplets() []Applet {
	return []Applet{
		{ID: "JSM2_MemberApplet", Directory: "memberapplet"},
	}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			Root:   defaultRoot,
			LogDir: defaultLogDir,
		},
		API: API{
			Client:         defaultAPIClient,
			TimeoutSeconds: defaultAPITimeout,
		},
		Applets: DefaultApplets(),
		Manifest: Manifest{
			Enabled: true,
		},
		Mirror: Mirror{
			KeyPrefix: defaultMirrorKeyPrefix,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
