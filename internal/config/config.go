package config

import (
	"errors"
	"fmt"
	"go/token"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"guardgen/pkg/guardast"
)

const (
	DefaultPath      = "guardgen.yaml"
	DefaultSource    = "guards/guards.ts"
	DefaultOutput    = "guards/generated_guards.go"
	DefaultPackage   = "guards"
	DefaultDialect   = "typescript"
	DefaultASTImport = "guardgen/pkg/guardast"
)

type Config struct {
	Source    string          `yaml:"source"`     // guard-definition module
	Output    string          `yaml:"output"`     // generated Go file
	Package   string          `yaml:"package"`    // package clause of the generated file
	Dialect   string          `yaml:"dialect"`    // "typescript" or "tsx"
	ASTImport string          `yaml:"ast_import"` // import path of the guardast package
	Kinds     []guardast.Kind `yaml:"kinds"`      // supported primitive kinds
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Source:    DefaultSource,
		Output:    DefaultOutput,
		Package:   DefaultPackage,
		Dialect:   DefaultDialect,
		ASTImport: DefaultASTImport,
		Kinds:     append([]guardast.Kind(nil), guardast.DefaultKinds...),
	}
}

// LoadConfig reads the YAML file at path on top of the defaults. A missing file is
// not an error.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env if exists
	_ = godotenv.Load()

	cfg := Default()

	// 2. Load YAML config
	file, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	// 3. Override with Environment Variables if present
	if v := os.Getenv("GUARDGEN_SOURCE"); v != "" {
		cfg.Source = v
	}
	if v := os.Getenv("GUARDGEN_OUTPUT"); v != "" {
		cfg.Output = v
	}
	if v := os.Getenv("GUARDGEN_PACKAGE"); v != "" {
		cfg.Package = v
	}
	if v := os.Getenv("GUARDGEN_DIALECT"); v != "" {
		cfg.Dialect = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the fields the pipeline cannot run without.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Source) == "" {
		return errors.New("source path is empty")
	}
	if strings.TrimSpace(c.Output) == "" {
		return errors.New("output path is empty")
	}
	if !token.IsIdentifier(c.Package) {
		return fmt.Errorf("package %q is not a valid Go identifier", c.Package)
	}
	switch c.Dialect {
	case "typescript", "tsx":
	default:
		return fmt.Errorf("unsupported dialect %q", c.Dialect)
	}
	if strings.TrimSpace(c.ASTImport) == "" {
		return errors.New("ast_import is empty")
	}
	if len(c.Kinds) == 0 {
		return errors.New("at least one kind is required")
	}
	seen := make(map[guardast.Kind]bool, len(c.Kinds))
	for _, k := range c.Kinds {
		if strings.TrimSpace(string(k)) == "" {
			return errors.New("empty kind")
		}
		if seen[k] {
			return fmt.Errorf("kind %q listed twice", k)
		}
		seen[k] = true
	}
	return nil
}
