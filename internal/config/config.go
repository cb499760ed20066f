package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/san-kum/ptable/internal/anim"
	"github.com/san-kum/ptable/internal/elements"
	"github.com/san-kum/ptable/internal/layout"
	"github.com/san-kum/ptable/internal/palette"
	"gopkg.in/yaml.v3"
)

const (
	DefaultFadePeriod = 2 * time.Second
	DefaultLayout     = "standard"
	DefaultDataDir    = ".ptable"
	DefaultTheme      = "cyberpunk"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

type Config struct {
	DatasetURL string           `yaml:"dataset_url"`
	DataDir    string           `yaml:"data_dir"`
	FadePeriod time.Duration    `yaml:"fade_period"`
	TickStep   int              `yaml:"tick_step"`
	Range      palette.Range    `yaml:"range"`
	Weights    *palette.Weights `yaml:"weights,omitempty"`
	Layout     string           `yaml:"layout"`
	Rows       []layout.Row     `yaml:"rows,omitempty"`
	Mode       string           `yaml:"mode"`
	Theme      string           `yaml:"theme"`
	Timeout    time.Duration    `yaml:"timeout"`
}

func DefaultConfig() *Config {
	return &Config{
		DatasetURL: elements.DefaultURL,
		DataDir:    DefaultDataDir,
		FadePeriod: DefaultFadePeriod,
		TickStep:   anim.DefaultStep,
		Range:      palette.DefaultRange,
		Layout:     DefaultLayout,
		Mode:       palette.Default.String(),
		Theme:      DefaultTheme,
		Timeout:    elements.DefaultTimeout,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.FadePeriod <= 0 {
		return fmt.Errorf("%w: fade_period must be positive", ErrInvalidConfig)
	}
	if c.TickStep <= 0 {
		return fmt.Errorf("%w: tick_step must be positive", ErrInvalidConfig)
	}
	if !c.Range.Valid() {
		return fmt.Errorf("%w: range [%d,%d] outside [0,255]", ErrInvalidConfig, c.Range.Min, c.Range.Max)
	}
	if _, err := palette.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := c.GetRows(); err != nil {
		return err
	}
	for i, r := range c.Rows {
		if r.Front < 0 || r.Back < 0 || r.Series < 0 {
			return fmt.Errorf("%w: row %d has negative counts", ErrInvalidConfig, i)
		}
	}
	return nil
}

// GetRows returns explicit rows when set, the named preset otherwise.
func (c *Config) GetRows() ([]layout.Row, error) {
	if len(c.Rows) > 0 {
		return c.Rows, nil
	}
	rows, ok := layout.Preset(c.Layout)
	if !ok {
		return nil, fmt.Errorf("%w: unknown layout %q (available: %v)", ErrInvalidConfig, c.Layout, ListPresets())
	}
	return rows, nil
}

// GetAnimOptions builds controller options from the config.
func (c *Config) GetAnimOptions() (anim.Options, error) {
	mode, err := palette.ParseMode(c.Mode)
	if err != nil {
		return anim.Options{}, err
	}
	opts := anim.DefaultOptions()
	opts.Range = c.Range
	opts.Step = c.TickStep
	opts.Mode = mode
	if c.Weights != nil {
		opts.Weights = *c.Weights
	}
	return opts, nil
}
