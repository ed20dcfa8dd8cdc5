package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. MOBILEMENTOR_DATASET_PATH.
const EnvPrefix = "MOBILEMENTOR"

var validate = validator.New(validator.WithRequiredStructEnabled())

// Config holds everything the CLI needs for one run.
type Config struct {
	Dataset DatasetConfig `mapstructure:"dataset" yaml:"dataset"`
	Scoring ScoringConfig `mapstructure:"scoring" yaml:"scoring"`
	Output  OutputConfig  `mapstructure:"output" yaml:"output"`
	Logger  LoggerConfig  `mapstructure:"logger" yaml:"logger"`
}

// DatasetConfig points at the phone export and its currency conversion.
type DatasetConfig struct {
	Path     string  `mapstructure:"path" yaml:"path" validate:"required"`
	INRToCHF float64 `mapstructure:"inr_to_chf" yaml:"inr_to_chf" validate:"gt=0"`
	Currency string  `mapstructure:"currency" yaml:"currency" validate:"required,max=8"`
}

// ScoringConfig selects the ranking categories. Empty means all of them.
type ScoringConfig struct {
	Categories []string `mapstructure:"categories" yaml:"categories" validate:"unique,dive,oneof=price_chf overall_rating main_camera_mp pixel_count battery_mah"`
}

// OutputConfig selects how results are written.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format" validate:"oneof=json pretty csv table text"`
	Path   string `mapstructure:"path" yaml:"path"`
}

// LoggerConfig holds the logging settings.
type LoggerConfig struct {
	Level       string      `mapstructure:"level" yaml:"level" validate:"oneof=debug info warn error"`
	Format      string      `mapstructure:"format" yaml:"format" validate:"oneof=console json"`
	AddSource   bool        `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string      `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string      `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int         `mapstructure:"max_size" yaml:"max_size" validate:"gte=0"`
	MaxBackups  int         `mapstructure:"max_backups" yaml:"max_backups" validate:"gte=0"`
	MaxAge      int         `mapstructure:"max_age" yaml:"max_age" validate:"gte=0"`
	Compress    bool        `mapstructure:"compress" yaml:"compress"`
	Colors      ColorConfig `mapstructure:"colors" yaml:"colors"`
}

// ColorConfig defines the color names for different log levels.
type ColorConfig struct {
	Debug string `mapstructure:"debug" yaml:"debug"`
	Info  string `mapstructure:"info" yaml:"info"`
	Warn  string `mapstructure:"warn" yaml:"warn"`
	Error string `mapstructure:"error" yaml:"error"`
	Fatal string `mapstructure:"fatal" yaml:"fatal"`
}

// NewDefaultConfig returns the configuration with only defaults applied.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// SetDefaults initializes default values for every configuration key.
func SetDefaults(v *viper.Viper) {
	// -- Dataset --
	v.SetDefault("dataset.path", "mobiles.csv")
	v.SetDefault("dataset.inr_to_chf", 0.011)
	v.SetDefault("dataset.currency", "CHF")

	// -- Scoring --
	v.SetDefault("scoring.categories", []string{})

	// -- Output --
	v.SetDefault("output.format", "pretty")
	v.SetDefault("output.path", "")

	// -- Logger --
	v.SetDefault("logger.level", "warn")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.add_source", false)
	v.SetDefault("logger.service_name", "mobilementor")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)
	v.SetDefault("logger.compress", false)
	v.SetDefault("logger.colors.debug", "cyan")
	v.SetDefault("logger.colors.info", "green")
	v.SetDefault("logger.colors.warn", "yellow")
	v.SetDefault("logger.colors.error", "red")
	v.SetDefault("logger.colors.fatal", "magenta")
}

// Load reads .env, the config file and MOBILEMENTOR_* variables into v and
// returns the validated result. An explicit cfgFile must exist; the default
// lookup (./mobilementor.yaml) may be absent.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	// A missing .env is normal.
	_ = godotenv.Load()

	SetDefaults(v)
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("mobilementor")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return NewConfigFromViper(v)
}

// NewConfigFromViper unmarshals and validates the settings held by v.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	// A comma list in an env var arrives as one element.
	if len(cfg.Scoring.Categories) == 1 && strings.Contains(cfg.Scoring.Categories[0], ",") {
		cfg.Scoring.Categories = splitList(cfg.Scoring.Categories[0])
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the configuration for required fields and sane values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s failed %q", fieldPath(fe), fe.Tag()))
			}
			return errors.New(strings.Join(msgs, "; "))
		}
		return err
	}
	return nil
}

// fieldPath turns "Config.Dataset.INRToCHF" into "Dataset.INRToCHF".
func fieldPath(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
