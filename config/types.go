package config

// InputConfig locates the captured response dump to resolve
type InputConfig struct {
	Path string `yaml:"path"`
}

// OutputConfig controls what the CLI prints
type OutputConfig struct {
	Format string `yaml:"format" validate:"omitempty,oneof=journeys sx"`
	Pretty bool   `yaml:"pretty"`
}

// ResolverConfig contains resolver-specific configuration
type ResolverConfig struct {
	// StrictEnums aborts on alert enum codes outside the closed
	// enumerations instead of rendering the UNKNOWN sentinel
	StrictEnums bool `yaml:"strictEnums"`
}

// SiriConfig contains SIRI-SX export configuration
type SiriConfig struct {
	Codespace string `yaml:"codespace"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Resolver ResolverConfig `yaml:"resolver"`
	Siri     SiriConfig     `yaml:"siri"`
	Debug    bool           `yaml:"debug"`
}
