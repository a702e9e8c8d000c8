package types

// Config represents the application configuration that can be loaded from a file.
type Config struct {
	Profiles      []string `json:"profiles" yaml:"profiles" toml:"profiles"`
	Verbose       *bool    `json:"verbose" yaml:"verbose" toml:"verbose"`
	Output        string   `json:"output" yaml:"output" toml:"output"`
	Dir           string   `json:"dir" yaml:"dir" toml:"dir"`
	Region        string   `json:"region" yaml:"region" toml:"region"`
	AWSConfigFile string   `json:"aws_config_file" yaml:"aws_config_file" toml:"aws_config_file"`
}
