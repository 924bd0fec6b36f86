package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	envPrefix      = "LANDING_"
	defaultEnvFile = ".env"
)

// Config captures runtime configuration organised by concern.
type Config struct {
	HTTP   HTTPConfig   `envPrefix:"HTTP_"`
	Export ExportConfig `envPrefix:"OUT_"`
	Site   SiteConfig   `envPrefix:"SITE_"`
	Log    LogConfig    `envPrefix:"LOG_"`
}

// HTTPConfig configures the preview server.
type HTTPConfig struct {
	Addr            string        `env:"ADDR" envDefault:":8080"`
	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"15s"`
	IdleTimeout     time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	CacheMaxAge     time.Duration `env:"CACHE_MAX_AGE" envDefault:"1h"`
}

// ExportConfig configures static export.
type ExportConfig struct {
	Dir string `env:"DIR" envDefault:"dist"`
}

// SiteConfig sets document metadata that is not part of the page body.
type SiteConfig struct {
	Title       string `env:"TITLE" envDefault:"ServicePro"`
	Description string `env:"DESCRIPTION" envDefault:"Soluciones innovadoras para las necesidades de tu negocio"`
	URL         string `env:"URL"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level string `env:"LEVEL" envDefault:"info"`
}

// ValidationError is returned when configuration fields are missing or invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: missing or invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the missing/invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile      string
	envMap       map[string]string
	useSystemEnv bool
}

// WithEnvFile overrides the .env file path. An empty path disables it.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) {
		o.envFile = path
	}
}

// WithEnvMap injects explicit values that take precedence over the system
// environment.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv disables reading the process environment.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// Load assembles the configuration from defaults, the optional .env file, the
// process environment and explicit overrides, in increasing precedence.
func Load(opts ...Option) (Config, error) {
	options := loaderOptions{
		envFile:      defaultEnvFile,
		useSystemEnv: true,
	}
	for _, opt := range opts {
		opt(&options)
	}

	values, err := environmentValues(options)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{
		Environment: values,
		Prefix:      envPrefix,
	}); err != nil {
		return Config{}, fmt.Errorf("config: parse environment: %w", err)
	}

	// Container platforms hand out the listen port as PORT.
	if _, ok := values[envPrefix+"HTTP_ADDR"]; !ok {
		if port := strings.TrimSpace(values["PORT"]); port != "" {
			cfg.HTTP.Addr = ":" + port
		}
	}

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func environmentValues(options loaderOptions) (map[string]string, error) {
	values := make(map[string]string)
	merge := func(source map[string]string) {
		for key, value := range source {
			values[key] = value
		}
	}

	if options.envFile != "" {
		dotEnv, err := godotenv.Read(options.envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config: unable to read %s: %w", options.envFile, err)
		}
		merge(dotEnv)
	}

	if options.useSystemEnv {
		system := make(map[string]string)
		for _, entry := range os.Environ() {
			key, value, ok := strings.Cut(entry, "=")
			key = strings.TrimSpace(key)
			if !ok || key == "" {
				continue
			}
			system[key] = value
		}
		merge(system)
	}

	merge(options.envMap)
	return values, nil
}

func validate(cfg Config) error {
	var invalid []string

	if strings.TrimSpace(cfg.HTTP.Addr) == "" {
		invalid = append(invalid, "HTTP.Addr")
	}
	if cfg.HTTP.ReadTimeout <= 0 {
		invalid = append(invalid, "HTTP.ReadTimeout")
	}
	if cfg.HTTP.WriteTimeout <= 0 {
		invalid = append(invalid, "HTTP.WriteTimeout")
	}
	if cfg.HTTP.IdleTimeout <= 0 {
		invalid = append(invalid, "HTTP.IdleTimeout")
	}
	if cfg.HTTP.RequestTimeout <= 0 {
		invalid = append(invalid, "HTTP.RequestTimeout")
	}
	if cfg.HTTP.ShutdownTimeout <= 0 {
		invalid = append(invalid, "HTTP.ShutdownTimeout")
	}
	if cfg.HTTP.CacheMaxAge < 0 {
		invalid = append(invalid, "HTTP.CacheMaxAge")
	}
	if strings.TrimSpace(cfg.Export.Dir) == "" {
		invalid = append(invalid, "Export.Dir")
	}
	if cfg.Site.URL != "" {
		if u, err := url.Parse(cfg.Site.URL); err != nil || !u.IsAbs() || u.Host == "" {
			invalid = append(invalid, "Site.URL")
		}
	}

	if len(invalid) > 0 {
		return &ValidationError{fields: invalid}
	}
	return nil
}
