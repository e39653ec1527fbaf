package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes the environment variables overriding the configuration.
const EnvPrefix = "MIXEDPRODUCT_"

// Config holds the settings of a run, merged from defaults, YAML file, environment and flags.
type Config struct {
	Config    string
	Format    string
	Separator string
	Limit     int
	Check     bool
	Stats     bool
	Color     bool
	Quiet     int
	Verbose   int
	Verbosity string
	Sequences []SourceConfig `koanf:"-"`
	LogLevel  slog.Level `koanf:"-"`
}

// SetupFlags declares the command line flags of a run.
func SetupFlags(flags *pflag.FlagSet) {
	flags.StringP("config", "c", "", "Path to YAML configuration file.")
	flags.String("format", "tsv", "Output format: tsv, json or yaml.")
	flags.String("separator", "\t", "Field separator of the tsv format.")
	flags.Int("limit", 0, "Stop after this many combinations. 0 means no limit.")
	flags.Bool("check", false, "Verify that every combination is yielded exactly once.")
	flags.Bool("stats", false, "Log period discovery statistics at the end.")
	flags.Bool("color", defaultColor(), "Force color output.")
	flags.CountP("quiet", "q", "Decrease log verbosity.")
	flags.CountP("verbose", "v", "Increase log verbosity.")
}

func defaultColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isTerminal(os.Stderr)
}

// Load merges the configuration layers.
// Later layers win: defaults, YAML file, environment, then explicitly set flags.
// Sources given as arguments replace the sequences of the YAML file.
func Load(flags *pflag.FlagSet, args []string) (c Config, err error) {
	if err := loadDotEnv(".env"); err != nil {
		return c, err
	}

	k := koanf.New(".")
	_ = k.Load(confmap.Provider(map[string]any{
		"format":    "tsv",
		"separator": "\t",
		"limit":     0,
		"check":     false,
		"stats":     false,
		"color":     defaultColor(),
		"quiet":     0,
		"verbose":   0,
		"verbosity": "",
	}, k.Delim()), nil)
	loadOverrides(k, flags)

	if path := k.String("config"); path != "" {
		slog.Debug("Loading YAML configuration.", "path", path)
		if err := k.Load(fileProvider{path: path}, yamlParser{}); err != nil {
			return c, fmt.Errorf("config: %s: %w", path, err)
		}
		// the environment and the flags win over the file
		loadOverrides(k, flags)
	}

	if err := k.UnmarshalWithConf("", &c, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return c, fmt.Errorf("config: %w", err)
	}
	c.Sequences, err = decodeSources(k.Get("sequences"))
	if err != nil {
		return c, err
	}
	if 0 < len(args) {
		c.Sequences = c.Sequences[:0]
		for _, arg := range args {
			sc, err := ParseSource(arg)
			if err != nil {
				return c, err
			}
			c.Sequences = append(c.Sequences, sc)
		}
	}

	c.LogLevel = levelFor(c.Verbose, c.Quiet, c.Verbosity)
	return c, c.validate()
}

func loadOverrides(k *koanf.Koanf, flags *pflag.FlagSet) {
	_ = k.Load(env.Provider(EnvPrefix, k.Delim(), func(key string) string {
		slog.Debug("Loading environment var.", "var", key)
		return strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	}), nil)
	if flags != nil {
		_ = k.Load(posflag.Provider(flags, k.Delim(), k), nil)
	}
}

// loadDotEnv sets the variables of a .env file missing from the environment.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	slog.Debug("Loaded environment file.", "path", path)
	return nil
}

func (c Config) validate() error {
	switch c.Format {
	case "", "tsv", "json", "yaml":
	default:
		return fmt.Errorf("config: unknown format %q", c.Format)
	}
	if c.Limit < 0 {
		return fmt.Errorf("config: negative limit %d", c.Limit)
	}
	return nil
}

// decodeSources reads the sequences list of the YAML file.
func decodeSources(raw any) (out []SourceConfig, err error) {
	if raw == nil {
		return nil, nil
	}
	d, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &out,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return nil, err
	}
	if err := d.Decode(raw); err != nil {
		return nil, fmt.Errorf("config: sequences: %w", err)
	}
	return out, nil
}

type fileProvider struct {
	path string
}

func (p fileProvider) ReadBytes() ([]byte, error) {
	path := p.path
	if !filepath.IsAbs(path) {
		path, _ = filepath.Abs(path)
	}
	return os.ReadFile(path)
}

func (fileProvider) Read() (map[string]any, error) {
	panic("not implemented")
}

// yamlParser returns a YAML document as plain map for koanf.
type yamlParser struct{}

func (yamlParser) Unmarshal(data []byte) (map[string]any, error) {
	out := make(map[string]any)
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (yamlParser) Marshal(o map[string]any) ([]byte, error) {
	return yaml.Marshal(o)
}
