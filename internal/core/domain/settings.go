package domain

// Settings are the effective per-project options, either defaults or loaded
// from the optional binpack.yaml next to the project file.
type Settings struct {
	// Configuration is the build configuration subdirectory under bin/.
	Configuration string
	// Extensions are the artifact extensions to collect (with leading dot).
	Extensions []string
	// ProjectPatterns are the glob patterns used to locate a project file.
	ProjectPatterns []string
}

// DefaultSettings returns the built-in settings used when no config file exists.
func DefaultSettings() Settings {
	return Settings{
		Configuration:   DefaultConfiguration,
		Extensions:      DefaultExtensions(),
		ProjectPatterns: DefaultProjectPatterns(),
	}
}
