// Package config loads the YAML configuration of the sortdist command.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/sortdist/distance"
)

// Source types.
const (
	SourceLocal = "local"
	SourceS3    = "s3"
	SourceMinIO = "minio"
)

// Config is the full command configuration.
type Config struct {
	// DataDir is the input directory for the local source.
	DataDir string `yaml:"data_dir"`

	// Kernel is one of "counting", "sparse" or "sort".
	Kernel string `yaml:"kernel"`

	// Shards is the number of goroutines tallying one input.
	Shards int `yaml:"shards"`

	// Parallelism is the number of inputs processed at once.
	Parallelism int `yaml:"parallelism"`

	Domain    Domain    `yaml:"domain"`
	Source    Source    `yaml:"source"`
	Resources Resources `yaml:"resources"`
	History   History   `yaml:"history"`
	Log       Log       `yaml:"log"`
}

// Domain is the inclusive value domain of the inputs.
type Domain struct {
	Min int64 `yaml:"min"`
	Max int64 `yaml:"max"`
}

// Source selects where input files are read from.
type Source struct {
	// Type is "local", "s3" or "minio".
	Type string `yaml:"type"`

	Bucket    string `yaml:"bucket,omitempty"`
	Prefix    string `yaml:"prefix,omitempty"`
	Region    string `yaml:"region,omitempty"`
	Endpoint  string `yaml:"endpoint,omitempty"`
	AccessKey string `yaml:"access_key,omitempty"`
	SecretKey string `yaml:"secret_key,omitempty"`
	Secure    bool   `yaml:"secure,omitempty"`
}

// Resources holds the limits of resource.Config. Zero means unlimited.
type Resources struct {
	MemoryLimitBytes   int64 `yaml:"memory_limit_bytes"`
	MaxWorkers         int64 `yaml:"max_workers"`
	IOLimitBytesPerSec int64 `yaml:"io_limit_bytes_per_sec"`
}

// History configures the run ledger. An empty path disables it.
type History struct {
	Path string `yaml:"path"`
}

// Log configures diagnostic logging on stderr.
type Log struct {
	// Format is "text" or "json".
	Format string `yaml:"format"`
	// Level is "debug", "info", "warn" or "error".
	Level string `yaml:"level"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DataDir:     "./data",
		Kernel:      distance.KernelCounting.String(),
		Shards:      1,
		Parallelism: 1,
		Domain: Domain{
			Min: distance.DefaultDomain.Min,
			Max: distance.DefaultDomain.Max,
		},
		Source: Source{Type: SourceLocal},
		Log:    Log{Format: "text", Level: "warn"},
	}
}

// Load reads the file at path over the defaults and validates the result.
// An empty path returns the validated defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := cfg.decode(data); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// DistanceDomain returns the configured domain.
func (c *Config) DistanceDomain() distance.Domain {
	return distance.Domain{Min: c.Domain.Min, Max: c.Domain.Max}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	var errs []error

	k, err := distance.ParseKernel(c.Kernel)
	if err != nil {
		errs = append(errs, err)
	}
	if err == nil && k.Buckets() {
		if derr := c.DistanceDomain().Validate(); derr != nil {
			errs = append(errs, derr)
		}
	} else if c.Domain.Min > c.Domain.Max {
		errs = append(errs, fmt.Errorf("domain min %d exceeds max %d", c.Domain.Min, c.Domain.Max))
	}

	if c.Shards < 1 {
		errs = append(errs, fmt.Errorf("shards must be at least 1, got %d", c.Shards))
	}
	if c.Parallelism < 1 {
		errs = append(errs, fmt.Errorf("parallelism must be at least 1, got %d", c.Parallelism))
	}

	switch c.Source.Type {
	case SourceLocal:
		if c.DataDir == "" {
			errs = append(errs, errors.New("data_dir is required for the local source"))
		}
	case SourceS3:
		if c.Source.Bucket == "" {
			errs = append(errs, errors.New("source.bucket is required for s3"))
		}
	case SourceMinIO:
		if c.Source.Bucket == "" {
			errs = append(errs, errors.New("source.bucket is required for minio"))
		}
		if c.Source.Endpoint == "" {
			errs = append(errs, errors.New("source.endpoint is required for minio"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown source type %q", c.Source.Type))
	}

	if c.Resources.MemoryLimitBytes < 0 || c.Resources.MaxWorkers < 0 || c.Resources.IOLimitBytesPerSec < 0 {
		errs = append(errs, errors.New("resource limits must not be negative"))
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.Log.Format))
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log level %q", c.Log.Level))
	}

	return errors.Join(errs...)
}
