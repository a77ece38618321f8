package pnt

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config is the file form of a Formatter's options.
type Config struct {
	// Policy is "return" (default) or "fail-fast".
	Policy string `yaml:"policy" toml:"policy"`
	// StrictArguments rejects calls that leave arguments unreferenced.
	StrictArguments bool `yaml:"strict_arguments" toml:"strict_arguments"`
	// PointerSize is the %p width in bytes. Zero keeps the platform size.
	PointerSize int `yaml:"pointer_size" toml:"pointer_size"`
	// LogLevel is a zerolog level name. Empty disables logging.
	LogLevel string `yaml:"log_level" toml:"log_level"`
}

// LoadConfig reads a configuration file. The decoder is chosen by
// extension: .yaml, .yml or .toml.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "open config")
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return DecodeYAML(f)
	case ".toml":
		return DecodeTOML(f)
	default:
		return Config{}, errors.Wrapf(ErrInvalidConfig, "unsupported config extension %q", ext)
	}
}

// DecodeYAML decodes a YAML configuration document.
func DecodeYAML(r io.Reader) (Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Wrapf(ErrInvalidConfig, "decode yaml config: %v", err)
	}
	return c, nil
}

// DecodeTOML decodes a TOML configuration document.
func DecodeTOML(r io.Reader) (Config, error) {
	var c Config
	md, err := toml.NewDecoder(r).Decode(&c)
	if err != nil {
		return Config{}, errors.Wrapf(ErrInvalidConfig, "decode toml config: %v", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.Wrapf(ErrInvalidConfig, "unknown key %q", undecoded[0].String())
	}
	return c, nil
}

// Options validates c and converts it to Formatter options. Logs go to
// logOut when a log level is configured.
func (c Config) Options(logOut io.Writer) ([]Option, error) {
	policy, err := ParsePolicy(c.Policy)
	if err != nil {
		return nil, err
	}
	if c.PointerSize < 0 || c.PointerSize > 8 {
		return nil, errors.Wrapf(ErrInvalidConfig, "pointer_size %d out of range 0..8", c.PointerSize)
	}
	opts := []Option{WithPolicy(policy), WithStrictArguments(c.StrictArguments)}
	if c.PointerSize > 0 {
		opts = append(opts, WithPointerSize(c.PointerSize))
	}
	if c.LogLevel != "" {
		level, err := zerolog.ParseLevel(c.LogLevel)
		if err != nil {
			return nil, errors.Wrapf(ErrInvalidConfig, "log_level: %v", err)
		}
		if logOut == nil {
			logOut = os.Stderr
		}
		opts = append(opts, WithLogger(zerolog.New(logOut).Level(level).With().Timestamp().Logger()))
	}
	return opts, nil
}

// NewFromConfig builds a Formatter from c.
func NewFromConfig(c Config, logOut io.Writer) (*Formatter, error) {
	opts, err := c.Options(logOut)
	if err != nil {
		return nil, err
	}
	return New(opts...), nil
}
