package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/kbukum/turbokit/errors"
	"github.com/kbukum/turbokit/logger"
	"github.com/kbukum/turbokit/observability"
)

// Supported project file names, searched in order.
var projectFiles = []string{"turbo.toml", "turbo.yml", "turbo.yaml"}

// envPrefix is the prefix for environment variable overrides,
// e.g. TURBO_PROJECT_NAME overrides project.name.
const envPrefix = "TURBO"

// FileSystem interface for file operations (useful for testing).
type FileSystem interface {
	Exists(path string) bool
	LoadEnv(path string) error
}

// RealFileSystem implements FileSystem using actual file operations.
type RealFileSystem struct{}

func (rfs *RealFileSystem) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (rfs *RealFileSystem) LoadEnv(path string) error {
	return godotenv.Load(path)
}

// LoaderConfig holds dependencies and optional file overrides.
type LoaderConfig struct {
	FileSystem FileSystem
	ConfigFile string // Direct project file path (optional)
	EnvFile    string // Direct .env file path (optional)
}

// LoaderOption is a functional option for Load.
type LoaderOption func(*LoaderConfig)

// WithFileSystem sets a custom filesystem for the loader.
func WithFileSystem(fs FileSystem) LoaderOption {
	return func(lc *LoaderConfig) { lc.FileSystem = fs }
}

// WithConfigFile sets an explicit project file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.ConfigFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *LoaderConfig) { lc.EnvFile = path }
}

// fileConfig mirrors the on-disk layout of turbo.toml / turbo.yml.
type fileConfig struct {
	Project struct {
		Name    string `mapstructure:"name"`
		Version string `mapstructure:"version"`
	} `mapstructure:"project"`
	Turbo struct {
		InstalledApps []string             `mapstructure:"installed_apps"`
		Logging       logger.Config        `mapstructure:"logging"`
		Observability observability.Config `mapstructure:"observability"`
	} `mapstructure:"turbo"`
}

// Load reads the project configuration from turbo.toml or turbo.yml.
//
// Without options it searches the working directory and up to two parent
// directories. A missing or malformed project file is an error: a project
// that cannot state its installed apps cannot be scanned.
func Load(opts ...LoaderOption) (*Config, error) {
	var lc LoaderConfig
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.FileSystem == nil {
		lc.FileSystem = &RealFileSystem{}
	}

	path := lc.ConfigFile
	if path == "" {
		path = findProjectFile(lc.FileSystem)
	}
	if path == "" {
		return nil, errors.InvalidConfig("no turbo.toml or turbo.yml found")
	}
	if !lc.FileSystem.Exists(path) {
		return nil, errors.InvalidConfig("project file does not exist").WithDetail("path", path)
	}

	if envFile := resolveEnvFile(lc); envFile != "" {
		if err := lc.FileSystem.LoadEnv(envFile); err != nil {
			logger.Get("config").Warn("Failed to load .env file",
				logger.Fields("path", envFile, logger.FieldError, err.Error()))
		}
	}

	return readProjectFile(path)
}

// LoadFile reads the project configuration from an explicit path.
func LoadFile(path string) (*Config, error) {
	return Load(WithConfigFile(path))
}

func readProjectFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.InvalidConfig("failed to read project file").
			WithDetail("path", path).WithCause(err)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	bindEnvKeys(v,
		"project.name",
		"project.version",
		"turbo.logging.level",
		"turbo.logging.format",
		"turbo.logging.output",
		"turbo.observability.endpoint",
		"turbo.observability.environment",
		"turbo.observability.sample_rate",
	)

	var fc fileConfig
	if err := v.Unmarshal(&fc); err != nil {
		return nil, errors.InvalidConfig("failed to parse project file").
			WithDetail("path", path).WithCause(err)
	}

	cfg := &Config{
		ProjectName:    fc.Project.Name,
		ProjectVersion: fc.Project.Version,
		InstalledApps:  fc.Turbo.InstalledApps,
		Logging:        fc.Turbo.Logging,
		Observability:  fc.Turbo.Observability,
	}
	cfg.ApplyDefaults()
	return cfg, nil
}

// bindEnvKeys registers keys for environment overrides. Viper only consults
// the environment during Unmarshal for keys that were explicitly bound.
func bindEnvKeys(v *viper.Viper, keys ...string) {
	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// findProjectFile searches standard locations for a project file.
func findProjectFile(fs FileSystem) string {
	prefixes := []string{"./", "../", "../../"}
	for _, prefix := range prefixes {
		for _, name := range projectFiles {
			path := prefix + name
			if fs.Exists(path) {
				return path
			}
		}
	}
	return ""
}

// resolveEnvFile returns the .env file to load, if any.
func resolveEnvFile(lc LoaderConfig) string {
	if lc.EnvFile != "" {
		return lc.EnvFile
	}
	for _, prefix := range []string{"./", "../"} {
		path := prefix + ".env"
		if lc.FileSystem.Exists(path) {
			return path
		}
	}
	return ""
}
