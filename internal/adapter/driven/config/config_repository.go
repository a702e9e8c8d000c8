package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/diillson/aws-s3-inventory-go/internal/domain/repository"
	"github.com/diillson/aws-s3-inventory-go/internal/shared/types"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	config, err := decodeConfig(strings.ToLower(filepath.Ext(filePath)), fileData)
	if err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", filePath, err)
	}
	return config, nil
}

func decodeConfig(ext string, data []byte) (*types.Config, error) {
	var config types.Config

	switch ext {
	case ".toml":
		if err := toml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrUnsupportedConfigFormat, ext)
	}

	return &config, nil
}

// validateConfig rejeita valores que produziriam um relatório fora do diretório indicado.
func validateConfig(config *types.Config) error {
	if config.Output != "" && filepath.Base(config.Output) != config.Output {
		return fmt.Errorf("output must be a file name without directories, got %q", config.Output)
	}
	for i, p := range config.Profiles {
		config.Profiles[i] = strings.TrimSpace(p)
	}
	return nil
}
