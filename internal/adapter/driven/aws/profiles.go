package aws

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

const profileSectionPrefix = "profile "

// sharedConfigPath resolve o arquivo de configuração compartilhado do AWS CLI.
func (r *AWSRepositoryImpl) sharedConfigPath() string {
	if r.configFile != "" {
		return r.configFile
	}
	if env := os.Getenv("AWS_CONFIG_FILE"); env != "" {
		return env
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".aws", "config")
}

// GetAWSProfiles returns the names of the "profile <name>" sections of the
// shared config file, in file order. A missing or unparseable file yields an
// empty list.
func (r *AWSRepositoryImpl) GetAWSProfiles() []string {
	path := r.sharedConfigPath()
	if path == "" {
		return []string{}
	}
	return parseProfiles(path)
}

func parseProfiles(path string) []string {
	// Valores aninhados do AWS CLI (linhas indentadas) são lidos como chaves comuns.
	cfg, err := ini.Load(path)
	if err != nil {
		return []string{}
	}

	profiles := []string{}
	for _, section := range cfg.SectionStrings() {
		if name, ok := strings.CutPrefix(section, profileSectionPrefix); ok && name != "" {
			profiles = append(profiles, name)
		}
	}
	return profiles
}
