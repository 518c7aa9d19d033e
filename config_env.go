package inkan

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/gogpu/gg"
)

// EnvPrefix prefixes every environment variable read by LoadConfigFromEnv.
const EnvPrefix = "INKAN_"

// LoadConfigFromEnv returns DefaultConfig overlaid with INKAN_* variables,
// for example INKAN_OUTER_RADIUS=170 or INKAN_STROKE_COLOR=#B22222.
// Unset variables keep their defaults. The result is validated.
func LoadConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv overlays INKAN_* variables onto cfg without validating it.
func ParseEnv(cfg *Config) error {
	opts := env.Options{
		Prefix: EnvPrefix,
		FuncMap: map[reflect.Type]env.ParserFunc{
			reflect.TypeOf(gg.RGBA{}): parseHexColor,
		},
	}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// parseHexColor accepts #RGB, #RGBA, #RRGGBB and #RRGGBBAA.
func parseHexColor(v string) (any, error) {
	hex := strings.TrimPrefix(v, "#")
	switch len(hex) {
	case 3, 4, 6, 8:
	default:
		return nil, fmt.Errorf("color %q: want #RGB, #RGBA, #RRGGBB or #RRGGBBAA", v)
	}
	for _, c := range hex {
		if !strings.ContainsRune("0123456789abcdefABCDEF", c) {
			return nil, fmt.Errorf("color %q: invalid hex digit %q", v, c)
		}
	}
	return gg.Hex(hex), nil
}

// UnmarshalText parses "code-units" or "graphemes".
func (m *TruncateMode) UnmarshalText(b []byte) error {
	switch s := strings.ToLower(strings.TrimSpace(string(b))); s {
	case "code-units", "codeunits", "":
		*m = TruncateCodeUnits
	case "graphemes", "grapheme":
		*m = TruncateGraphemes
	default:
		return fmt.Errorf("unknown truncation mode %q", s)
	}
	return nil
}
