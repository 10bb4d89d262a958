package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/aliskhannn/triage-assistant/internal/domain/entities"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Colour modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var reportFormats = []string{"text", "markdown", "html"}

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env         string          `mapstructure:"env"`          // current application environment (local, dev, production etc)
	LogLevel    string          `mapstructure:"log_level"`    // zap level, or "off"
	Locale      entities.Locale `mapstructure:"-"`            // parsed display language
	LocaleTag   string          `mapstructure:"locale"`       // raw BCP 47 tag as configured
	CatalogPath string          `mapstructure:"catalog_path"` // path to the YAML or JSON catalogue
	Color       string          `mapstructure:"color"`        // auto, always or never
	Patient     Patient         `mapstructure:"patient"`      // patient metadata section
	Report      Report          `mapstructure:"report"`       // summary rendering section
}

// Patient is the patient metadata supplied by the caller.
type Patient struct {
	Name string `mapstructure:"name"`
	Age  int    `mapstructure:"age"`
}

// Report contains summary rendering parameters.
type Report struct {
	Format string `mapstructure:"format"` // text, markdown or html
}

// Load reads configuration from the config file at path (or ./config/config.yaml
// when path is empty), a .env file and environment variables.
// Only the default config file may be absent.
func Load(path string) (*Config, error) {
	// A missing .env file is not an error.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	// Initialize Viper instance and base config options.
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
	}

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("log_level", "info")
	v.SetDefault("locale", string(entities.LocaleFR))
	v.SetDefault("catalog_path", "assets/data/catalog.yaml")
	v.SetDefault("color", ColorAuto)
	v.SetDefault("report.format", "text")
	v.SetDefault("patient.name", "")
	v.SetDefault("patient.age", 0)

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("env", "APP_ENV")
	_ = v.BindEnv("locale", "TRIAGE_LOCALE")
	_ = v.BindEnv("catalog_path", "TRIAGE_CATALOG_PATH")
	_ = v.BindEnv("patient.name", "PATIENT_NAME")
	_ = v.BindEnv("patient.age", "PATIENT_AGE")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks the enumerated settings and resolves the locale.
func (c *Config) Validate() error {
	locale, err := entities.ParseLocale(c.LocaleTag)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	c.Locale = locale

	c.Report.Format = strings.ToLower(strings.TrimSpace(c.Report.Format))
	if !slices.Contains(reportFormats, c.Report.Format) {
		return fmt.Errorf("%w: report format %q", ErrInvalidConfig, c.Report.Format)
	}

	c.Color = strings.ToLower(strings.TrimSpace(c.Color))
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%w: color mode %q", ErrInvalidConfig, c.Color)
	}

	if c.Patient.Age < 0 {
		return fmt.Errorf("%w: negative patient age", ErrInvalidConfig)
	}
	if strings.TrimSpace(c.CatalogPath) == "" {
		return fmt.Errorf("%w: empty catalog path", ErrInvalidConfig)
	}

	return nil
}
