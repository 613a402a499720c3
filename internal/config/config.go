package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`

	Log struct {
		Mode string `yaml:"mode"` // dev | prod
	} `yaml:"log"`

	// Storage is the remote object store. Leave the whole section empty
	// to run without remote storage (uploads use fallback keys). A
	// partially filled section is a configuration error.
	Storage struct {
		Endpoint  string `yaml:"endpoint"`
		AccessKey string `yaml:"accessKey"`
		SecretKey string `yaml:"secretKey"`
		Bucket    string `yaml:"bucket"`
		Region    string `yaml:"region"`
		UseSSL    bool   `yaml:"useSSL"`
	} `yaml:"storage"`

	// Registry picks the project registry backend. memory is the
	// default and needs no database.
	Registry struct {
		Driver    string `yaml:"driver"` // memory | mysql | postgres
		LatencyMS int    `yaml:"latencyMS"`
		SeedDemo  bool   `yaml:"seedDemo"`
	} `yaml:"registry"`

	Database struct {
		Host     string `yaml:"host"`
		Port     int    `yaml:"port"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
		Name     string `yaml:"name"`
		SSLMode  string `yaml:"sslMode"`
	} `yaml:"database"`

	Analysis struct {
		Source    string `yaml:"source"` // canned | template | openai
		APIKey    string `yaml:"apiKey"`
		Model     string `yaml:"model"`
		LatencyMS int    `yaml:"latencyMS"`
	} `yaml:"analysis"`
}

// Load reads the yaml config file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Registry.Driver == "" {
		c.Registry.Driver = "memory"
	}
	if c.Analysis.Source == "" {
		c.Analysis.Source = "template"
	}
}

// Validate rejects configurations that would fail at runtime. A
// partially configured object store is fatal here rather than a silent
// degradation later.
func (c *Config) Validate() error {
	if err := c.validateStorage(); err != nil {
		return err
	}
	switch c.Registry.Driver {
	case "memory", "mysql", "postgres":
	default:
		return fmt.Errorf("unknown registry driver: %s", c.Registry.Driver)
	}
	switch c.Analysis.Source {
	case "canned", "template":
	case "openai":
		if c.Analysis.APIKey == "" {
			return fmt.Errorf("analysis.apiKey is required for the openai source")
		}
	default:
		return fmt.Errorf("unknown analysis source: %s", c.Analysis.Source)
	}
	return nil
}

func (c *Config) validateStorage() error {
	if !c.StorageEnabled() {
		// fully empty section means "no remote storage"
		if c.Storage.Endpoint == "" && c.Storage.AccessKey == "" &&
			c.Storage.SecretKey == "" && c.Storage.Bucket == "" {
			return nil
		}
	}
	var missing []string
	if c.Storage.Endpoint == "" {
		missing = append(missing, "storage.endpoint")
	}
	if c.Storage.AccessKey == "" {
		missing = append(missing, "storage.accessKey")
	}
	if c.Storage.SecretKey == "" {
		missing = append(missing, "storage.secretKey")
	}
	if c.Storage.Bucket == "" {
		missing = append(missing, "storage.bucket")
	}
	if len(missing) > 0 {
		return fmt.Errorf("object storage configuration is missing: %s", strings.Join(missing, ", "))
	}
	return nil
}

// StorageEnabled reports whether a remote object store is configured.
func (c *Config) StorageEnabled() bool {
	return c.Storage.Endpoint != "" && c.Storage.AccessKey != "" &&
		c.Storage.SecretKey != "" && c.Storage.Bucket != ""
}

// MySQLDSN builds the MySQL connection string. clientFoundRows makes
// UPDATE report matched rows instead of changed rows, which the
// registry relies on to tell "missing id" apart from "no-op write".
func (c *Config) MySQLDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4&loc=UTC&clientFoundRows=true",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
	)
}

// PostgresDSN builds the Postgres connection string
func (c *Config) PostgresDSN() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		sslMode,
	)
}
