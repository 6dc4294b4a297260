package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/spf13/viper"

	"github.com/goliatone/go-intakeform/pkg/model"
)

const (
	EnvPrefix = "INTAKEFORM"
	// EnvConfigPath names an explicit config file.
	EnvConfigPath = EnvPrefix + "_CONFIG"
)

// Config holds application configuration.
type Config struct {
	Environment string
	Form        FormConfig
	Theme       ThemeConfig
	Branding    model.Branding
	HTTP        HTTPConfig
	Print       PrintConfig
}

// FormConfig selects the definition and the sections to render. An empty path
// uses the embedded business intake form.
type FormConfig struct {
	Path     string
	Sections []string
	Format   string
}

type ThemeConfig struct {
	Name    string
	Variant string
}

// HTTPConfig holds preview server settings.
type HTTPConfig struct {
	Addr              string
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	WriteTimeout      time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
	MetricsPath       string        `mapstructure:"metrics_path"`
}

// PrintConfig describes the spooler command used by the print subcommand.
type PrintConfig struct {
	Command string
	Args    []string
	Format  string
}

// Binding attaches an external source, usually a command flag, to a key.
type Binding func(v *viper.Viper) error

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")
	v.SetDefault("form.path", "")
	v.SetDefault("form.sections", []string{})
	v.SetDefault("form.format", "html")
	v.SetDefault("theme.name", "intake")
	v.SetDefault("theme.variant", "screen")
	v.SetDefault("branding.logo_url", "")
	v.SetDefault("branding.logo_alt", "")
	v.SetDefault("branding.title", "")
	v.SetDefault("branding.subtitle", "")
	v.SetDefault("branding.credit", "")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("http.read_header_timeout", 10*time.Second)
	v.SetDefault("http.write_timeout", 30*time.Second)
	v.SetDefault("http.shutdown_timeout", 10*time.Second)
	v.SetDefault("http.metrics_path", "/metrics")
	v.SetDefault("print.command", "lp")
	v.SetDefault("print.args", []string{})
	v.SetDefault("print.format", "text")
}

// Load reads configuration from file and env. Env var overrides use prefix
// INTAKEFORM_. An explicit path, or INTAKEFORM_CONFIG, must exist; otherwise
// intakeform.yaml is looked up in the working directory and
// $HOME/.config/intakeform.
func Load(path string, bindings ...Binding) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	if path == "" {
		path = os.Getenv(EnvConfigPath)
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("intakeform")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "intakeform"))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit || !errors.As(err, &notFound) {
			return Config{}, errors.Wrap(err, "read config")
		}
	}

	for _, bind := range bindings {
		if bind == nil {
			continue
		}
		if err := bind(v); err != nil {
			return Config{}, errors.Wrap(err, "bind config")
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "unmarshal config")
	}
	c.Form.Sections = splitList(c.Form.Sections)
	return c, nil
}

// splitList flattens comma separated entries coming from env vars or flags.
func splitList(values []string) []string {
	var out []string
	for _, value := range values {
		for _, part := range strings.Split(value, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
