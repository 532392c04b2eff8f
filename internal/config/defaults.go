package config

// NewDefaultConfig creates a new Config with default values
func NewDefaultConfig() *Config {
	return &Config{
		Core: Core{
			Shred: ShredConfig{
				Confirm: true,
				Verbose: true,
			},
			ProtectedPaths: []string{},
		},
		History: History{
			Include: IncludeConfig{
				Period: 365,
			},
			Exclude: ExcludeConfig{
				Files: []string{
					// In macOS, .DS_Store is a file that stores custom
					// attributes of its containing folder
					".DS_Store",
				},
				Patterns: []string{},
				Globs:    []string{},
				Size: SizeConfig{
					Min: "0KB",
					Max: "10GB",
				},
			},
		},
	}
}
