package cli

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/toyz/acgraph/internal/errors"
	"github.com/toyz/acgraph/internal/utils"
)

// Config holds the configuration for a drawing run
type Config struct {
	// Root is the directory scanned recursively for source files
	Root string `yaml:"path"`

	// Output is the image file to write. The extension picks the format.
	Output string `yaml:"output"`

	// Encoding is used to decode every scanned file
	Encoding utils.Encoding `yaml:"encoding"`

	// Extension selects which files are scanned
	Extension string `yaml:"extension"`

	// Exclude lists directory name patterns that are not descended into
	Exclude []string `yaml:"exclude"`

	// Title is drawn above the graph when set
	Title string `yaml:"title"`

	// Verbose prints the relationship map before rendering
	Verbose bool `yaml:"verbose"`

	// Quiet suppresses everything but errors
	Quiet bool `yaml:"quiet"`
}

// DefaultConfig returns a config with the default encoding and extension
func DefaultConfig() Config {
	return Config{
		Encoding:  utils.EncodingUTF8,
		Extension: ".php",
	}
}

// LoadConfigFile reads YAML defaults from path on top of DefaultConfig
func LoadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.WrapConfigurationError(path, "read", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.WrapConfigurationError(path, "parse", err)
	}

	if cfg.Encoding != "" {
		enc, err := utils.ParseEncoding(string(cfg.Encoding))
		if err != nil {
			return cfg, errors.WrapConfigurationError(path, "parse", err)
		}
		cfg.Encoding = enc
	}
	return cfg, nil
}

// Validate checks the config before a run
func (c Config) Validate() error {
	rootChain := utils.NewValidatorChain(utils.NotEmpty("path")).Add(utils.IsDirectory("path"))
	if err := rootChain.Validate(c.Root); err != nil {
		return configError("path", err)
	}

	if err := utils.NotEmpty("output")(c.Output); err != nil {
		return configError("output", err)
	}

	if err := utils.IsOneOf("encoding", utils.SupportedEncodings()...)(c.Encoding); err != nil {
		return configError("encoding", err)
	}

	if err := utils.NotEmpty("extension")(strings.TrimPrefix(c.Extension, ".")); err != nil {
		return configError("extension", err)
	}
	return nil
}

func configError(field string, err error) *errors.ConfigurationError {
	cfgErr := errors.NewConfigurationError(field, err.Error())
	switch field {
	case "path":
		cfgErr.WithSuggestion("Pass the directory to scan with --path")
	case "output":
		cfgErr.WithSuggestion("Pass the image to write with --output, for example graph.png")
	case "encoding":
		cfgErr.WithSuggestion("Use one of: utf8, latin-1, ascii")
	}
	return cfgErr
}
