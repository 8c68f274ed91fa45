package seeder

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds seeder pipeline settings.
type Config struct {
	// DatasetPath overrides the embedded dataset with a YAML file on disk.
	DatasetPath string `yaml:"dataset_path" env:"SEEDER_DATASET_PATH"`
	BatchSize   int    `yaml:"batch_size"   env:"SEEDER_BATCH_SIZE"   env-default:"100"`
	DryRun      bool   `yaml:"dry_run"      env:"SEEDER_DRY_RUN"`
}

// LoadConfig reads seeder configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults (via env-default tags).
func LoadConfig(path string) (*Config, error) {
	var cfg Config

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := cleanenv.ReadConfig(path, &cfg); err != nil {
				return nil, fmt.Errorf("seeder config: read %s: %w", path, err)
			}
			return &cfg, nil
		}
		return nil, fmt.Errorf("seeder config: file %s not found", path)
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("seeder config: read env: %w", err)
	}

	return &cfg, nil
}

func (c Config) loadDataset() (*Dataset, error) {
	if c.DatasetPath == "" {
		return LoadDataset()
	}
	data, err := os.ReadFile(c.DatasetPath)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", c.DatasetPath, err)
	}
	return ParseDataset(data)
}
