package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-easy-hotreload/go-easy-hotreload/internal/codegen"
	"github.com/joho/godotenv"
)

// Default Config Values
const (
	DefaultPackageName  = "./..."
	DefaultDiffFileName = "hotreload-instrumentation.diff"
	DefaultImportPath   = codegen.DefaultInjectImportPath

	// EnvFileName is an optional file in the application directory holding environment overrides.
	EnvFileName = ".env"

	ImportPathEnv = "HOTRELOAD_IMPORT_PATH"
	DiffFileEnv   = "HOTRELOAD_DIFF_FILE"
)

type Config struct {
	Debug       bool
	GoGet       bool
	PackagePath string
	PackageName string
	ImportPath  string
	DiffFile    string
}

func setConfigValue(input string, defaultValue string) string {
	if v := strings.TrimSpace(input); v != "" {
		return v
	}
	return defaultValue
}

// NewConfig builds a Config from flag values. Empty values fall back to the environment,
// then to the defaults. Environment values may come from an .env file in the package path;
// variables already set in the process environment take precedence over the file.
func NewConfig(packagePath, importPath, diffFile string, debug, goGet bool) (*Config, error) {
	cfg := &Config{
		Debug:       debug,
		GoGet:       goGet,
		PackagePath: strings.TrimSpace(packagePath),
		PackageName: DefaultPackageName, // dont touch this
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := loadEnvFile(cfg.PackagePath); err != nil {
		return nil, err
	}

	cfg.ImportPath = setConfigValue(importPath, setConfigValue(os.Getenv(ImportPathEnv), DefaultImportPath))
	cfg.DiffFile = setConfigValue(diffFile, os.Getenv(DiffFileEnv))

	outputFile, err := OutputFilePath(cfg.DiffFile, cfg.PackagePath)
	if err != nil {
		return nil, err
	}
	cfg.DiffFile = outputFile

	return cfg, nil
}

func loadEnvFile(packagePath string) error {
	path := filepath.Join(packagePath, EnvFileName)
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

// Validate checks that the package path is set and exists.
func (cfg *Config) Validate() error {
	if cfg.PackagePath == "" {
		return errors.New("--path is required")
	}
	if _, err := os.Stat(cfg.PackagePath); err != nil {
		return fmt.Errorf("--path \"%s\" is invalid: %v", cfg.PackagePath, err)
	}
	return nil
}

// ValidateOutputFile checks that the custom output path is valid
func ValidateOutputFile(path string) error {
	if filepath.Ext(path) != ".diff" {
		return errors.New("output file must have a .diff extension")
	}

	_, err := os.Stat(filepath.Dir(path))
	if errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("output file directory does not exist: %v", err)
	}

	return nil
}

// OutputFilePath returns a complete output file path based on the provided
// diff file value. If the value is empty, the default path will be based
// on the applicationPath.
//
// This will fail if the packagePath is not valid, and must be run after
// validating it.
func OutputFilePath(outputFilePath, applicationPath string) (string, error) {
	if outputFilePath == "" {
		outputFilePath = filepath.Join(applicationPath, DefaultDiffFileName)
	}

	err := ValidateOutputFile(outputFilePath)
	if err != nil {
		return "", err
	}

	return outputFilePath, nil
}
