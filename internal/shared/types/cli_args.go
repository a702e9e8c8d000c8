package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile string
	// Profiles é a lista crua separada por vírgulas; vazia significa descoberta automática.
	Profiles      string
	Verbose       bool
	Output        string
	Dir           string
	Region        string
	AWSConfigFile string
}
