// Package config provides the default configuration for the translator and
// the command line tool, and loads overrides from TOML files.
package config

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/sarchlab/gccasm/emit"
	"github.com/sarchlab/gccasm/translate"
)

// Config is the complete configuration.
type Config struct {
	Translate TranslateConfig `toml:"translate"`
	Log       LogConfig       `toml:"log"`
	Output    OutputConfig    `toml:"output"`
}

// TranslateConfig configures the translator.
type TranslateConfig struct {
	UIDPlaceholder string `toml:"uid_placeholder"`
	Rewriter       string `toml:"rewriter"`
}

// LogConfig configures logging. An empty File means standard error.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	File   string `toml:"file"`
}

// OutputConfig configures how results are written.
type OutputConfig struct {
	Format string `toml:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Translate: TranslateConfig{
			UIDPlaceholder: translate.DefaultUIDPlaceholder,
			Rewriter:       translate.RewriteScan.String(),
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Output: OutputConfig{
			Format: string(emit.FormatAsm),
		},
	}
}

// Load reads path on top of the defaults. Keys the configuration does not
// know are an error.
func Load(path string) (Config, error) {
	c := Default()

	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return c, fmt.Errorf("decoding %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		sort.Strings(keys)
		return c, fmt.Errorf("%s: unknown keys %s", path, strings.Join(keys, ", "))
	}

	return c, c.Validate()
}

// Validate checks every enumerated setting.
func (c Config) Validate() error {
	if _, err := translate.ParseRewriter(c.Translate.Rewriter); err != nil {
		return err
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown log format %q (want text or json)", c.Log.Format)
	}
	if _, err := emit.ParseFormat(c.Output.Format); err != nil {
		return err
	}
	return nil
}

// TranslatorBuilder returns a translator builder set up from the
// configuration.
func (c Config) TranslatorBuilder(logger *slog.Logger) (translate.Builder, error) {
	rewriter, err := translate.ParseRewriter(c.Translate.Rewriter)
	if err != nil {
		return translate.Builder{}, err
	}

	return translate.NewBuilder().
		WithUIDPlaceholder(c.Translate.UIDPlaceholder).
		WithRewriter(rewriter).
		WithLogger(logger), nil
}

// Logger creates a logger writing to w.
func (c Config) Logger(w io.Writer) (*slog.Logger, error) {
	level, err := ParseLevel(c.Log.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey && a.Value.Any() == translate.LevelTrace {
				a.Value = slog.StringValue("TRACE")
			}
			return a
		},
	}

	if strings.EqualFold(c.Log.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

// ParseLevel parses a log level name. "trace" selects translate.LevelTrace.
func ParseLevel(s string) (slog.Level, error) {
	if strings.EqualFold(strings.TrimSpace(s), "trace") {
		return translate.LevelTrace, nil
	}
	if s == "" {
		return slog.LevelInfo, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("unknown log level %q", s)
	}
	return level, nil
}
