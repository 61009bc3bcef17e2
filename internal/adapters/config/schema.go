package config

// configFile represents the structure of the binpack.yaml configuration file.
type configFile struct {
	Configuration   string   `yaml:"configuration"`
	Extensions      []string `yaml:"extensions"`
	ProjectPatterns []string `yaml:"projectPatterns"`
}
