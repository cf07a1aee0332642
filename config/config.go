// Package config loads the gridpath YAML configuration.
//
// A document looks like:
//
//	version: 1
//	grid:
//	  rows: 30
//	  cols: 40
//	speed: 5
//	palette:
//	  explored: "#FFEB3B"
//	  path: "#FF9800"
//	log:
//	  level: info
//	  format: text
//
// Missing fields keep their defaults; palette entries override individual
// colours only. Palette keys are state names in any case; colours are
// "#RGB", "#RRGGBB" or an ANSI index 0..255.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Version is the only configuration document version understood.
const Version = 1

const (
	// MinSpeed and MaxSpeed bound the animation speed setting.
	MinSpeed = 1
	MaxSpeed = 10
	// MaxDimension bounds grid rows and columns.
	MaxDimension = 500
)

var (
	// ErrUnsupportedVersion indicates a document version other than Version.
	ErrUnsupportedVersion = errors.New("config: unsupported version")
	// ErrInvalid indicates a value outside its allowed range.
	ErrInvalid = errors.New("config: invalid value")
)

// frameDelays maps a speed setting to the number of 60 Hz frames to wait
// between engine steps.
var frameDelays = map[int]int{
	1: 15, 2: 12, 3: 10, 4: 8, 5: 6,
	6: 4, 7: 3, 8: 2, 9: 1, 10: 1,
}

const frame = time.Second / 60

// Config is the full application configuration.
type Config struct {
	Version int `yaml:"version"`
	Grid    struct {
		Rows int `yaml:"rows"`
		Cols int `yaml:"cols"`
	} `yaml:"grid"`
	Speed   int               `yaml:"speed"`
	Palette map[string]string `yaml:"palette"`
	Log     struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		File   string `yaml:"file"`
	} `yaml:"log"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{Version: Version, Speed: 5}
	cfg.Grid.Rows = 30
	cfg.Grid.Cols = 40
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"
	cfg.Palette = DefaultPalette()

	return cfg
}

// DefaultPalette returns the stock colour for every cell state.
func DefaultPalette() map[string]string {
	return map[string]string{
		gridgraph.Empty.String():    "#F8F9FA",
		gridgraph.Start.String():    "#4CAF50",
		gridgraph.End.String():      "#F44336",
		gridgraph.Barrier.String():  "#3F51B5",
		gridgraph.Explored.String(): "#FFEB3B",
		gridgraph.Path.String():     "#FF9800",
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(b)
}

// Parse decodes a YAML document over the defaults and validates the result.
func Parse(b []byte) (*Config, error) {
	cfg := Default()
	cfg.Version = 0 // documents must declare their version
	overrides := struct {
		Palette map[string]string `yaml:"palette"`
	}{}
	if err := yaml.Unmarshal(b, &overrides); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	// The decoder merges raw keys into the palette map; rebuild it from the
	// defaults with canonical state names instead.
	cfg.Palette = DefaultPalette()
	seen := make(map[gridgraph.State]string, len(overrides.Palette))
	for k, v := range overrides.Palette {
		st, err := gridgraph.ParseState(k)
		if err != nil {
			return nil, fmt.Errorf("%w: palette: %v", ErrInvalid, err)
		}
		if prev, dup := seen[st]; dup {
			return nil, fmt.Errorf("%w: palette keys %q and %q name the same state", ErrInvalid, prev, k)
		}
		seen[st] = k
		cfg.Palette[st.String()] = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks every field against its allowed range.
func (c *Config) Validate() error {
	if c.Version != Version {
		return fmt.Errorf("%w: %d", ErrUnsupportedVersion, c.Version)
	}
	if c.Grid.Rows < 1 || c.Grid.Rows > MaxDimension {
		return fmt.Errorf("%w: grid.rows %d not in [1,%d]", ErrInvalid, c.Grid.Rows, MaxDimension)
	}
	if c.Grid.Cols < 1 || c.Grid.Cols > MaxDimension {
		return fmt.Errorf("%w: grid.cols %d not in [1,%d]", ErrInvalid, c.Grid.Cols, MaxDimension)
	}
	if c.Speed < MinSpeed || c.Speed > MaxSpeed {
		return fmt.Errorf("%w: speed %d not in [%d,%d]", ErrInvalid, c.Speed, MinSpeed, MaxSpeed)
	}
	for name, colour := range c.Palette {
		st, err := gridgraph.ParseState(name)
		if err != nil {
			return fmt.Errorf("%w: palette: %v", ErrInvalid, err)
		}
		// Keys are canonical so that each state has exactly one entry.
		if name != st.String() {
			return fmt.Errorf("%w: palette key %q, want %q", ErrInvalid, name, st.String())
		}
		if !validColour(colour) {
			return fmt.Errorf("%w: palette.%s colour %q", ErrInvalid, name, colour)
		}
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}

	return nil
}

// validColour accepts the forms lipgloss renders: "#RGB" or "#RRGGBB"
// hex, or an ANSI colour index 0..255.
func validColour(s string) bool {
	if strings.HasPrefix(s, "#") {
		if len(s) != 4 && len(s) != 7 {
			return false
		}
		_, err := colorful.Hex(s)
		return err == nil
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= 0 && n <= 255
}

// Colors resolves the palette to a per-state table.
func (c *Config) Colors() map[gridgraph.State]string {
	out := make(map[gridgraph.State]string, len(c.Palette))
	for name, colour := range c.Palette {
		if s, err := gridgraph.ParseState(name); err == nil {
			out[s] = colour
		}
	}
	return out
}

// StepInterval returns the delay between engine steps for a speed setting,
// clamped to [MinSpeed, MaxSpeed].
func StepInterval(speed int) time.Duration {
	if speed < MinSpeed {
		speed = MinSpeed
	}
	if speed > MaxSpeed {
		speed = MaxSpeed
	}
	return time.Duration(frameDelays[speed]) * frame
}
