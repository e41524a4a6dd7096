// Package theme defines the fixed set of color themes.
package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/JaskiratSingh1/Verto/internal/utils"
)

// Theme is one of the four built-in themes. The zero value is Classic.
type Theme int

const (
	Classic Theme = iota
	Midnight
	Forest
	Sunset
)

// Default is used when no valid preference is stored.
const Default = Classic

// Scheme is an optional light/dark override applied while a theme is active.
type Scheme int

const (
	SchemeNone Scheme = iota // follow the terminal
	SchemeLight
	SchemeDark
)

func (s Scheme) String() string {
	switch s {
	case SchemeLight:
		return "light"
	case SchemeDark:
		return "dark"
	default:
		return "none"
	}
}

type palette struct {
	name   string
	accent lipgloss.AdaptiveColor
	scheme Scheme
	// heat runs from "no tasks" to "everything done".
	heat [5]lipgloss.AdaptiveColor
}

// adaptive pairs light and dark variants level by level.
func adaptive(light, dark [5]string) [5]lipgloss.AdaptiveColor {
	var out [5]lipgloss.AdaptiveColor
	for i := range out {
		out[i] = lipgloss.AdaptiveColor{Light: light[i], Dark: dark[i]}
	}
	return out
}

var palettes = [...]palette{
	Classic: {
		name:   "classic",
		accent: lipgloss.AdaptiveColor{Light: "#1D4ED8", Dark: "#3B82F6"},
		scheme: SchemeNone,
		heat: adaptive(
			[5]string{"#E5E7EB", "#BFDBFE", "#60A5FA", "#2563EB", "#1E3A8A"},
			[5]string{"#3A3A3A", "#1E3A8A", "#1D4ED8", "#3B82F6", "#93C5FD"},
		),
	},
	Midnight: {
		name:   "midnight",
		accent: lipgloss.AdaptiveColor{Light: "#6D28D9", Dark: "#A78BFA"},
		scheme: SchemeDark,
		heat: adaptive(
			[5]string{"#EDE9FE", "#DDD6FE", "#A78BFA", "#7C3AED", "#4C1D95"},
			[5]string{"#2E2A3A", "#4C1D95", "#6D28D9", "#8B5CF6", "#C4B5FD"},
		),
	},
	Forest: {
		name:   "forest",
		accent: lipgloss.AdaptiveColor{Light: "#15803D", Dark: "#22C55E"},
		scheme: SchemeNone,
		heat: adaptive(
			[5]string{"#E7EFE9", "#BBF7D0", "#4ADE80", "#16A34A", "#14532D"},
			[5]string{"#2F3A33", "#14532D", "#15803D", "#22C55E", "#86EFAC"},
		),
	},
	Sunset: {
		name:   "sunset",
		accent: lipgloss.AdaptiveColor{Light: "#C2410C", Dark: "#FB923C"},
		scheme: SchemeLight,
		heat: adaptive(
			[5]string{"#E5E1DC", "#FED7AA", "#FDBA74", "#FB923C", "#EA580C"},
			[5]string{"#3A302A", "#7C2D12", "#C2410C", "#F97316", "#FDBA74"},
		),
	},
}

// HeatLevels is the number of steps in a theme's heat scale.
const HeatLevels = len(palette{}.heat)

// All returns every theme in display order.
func All() []Theme {
	return []Theme{Classic, Midnight, Forest, Sunset}
}

// Parse looks a theme up by name, ignoring case and surrounding space.
func Parse(name string) (Theme, bool) {
	name = utils.NormalizeName(name)
	for _, t := range All() {
		if palettes[t].name == name {
			return t, true
		}
	}
	return Default, false
}

// OrDefault returns the named theme, or Default when the name is empty or
// not recognized.
func OrDefault(name string) Theme {
	t, _ := Parse(name)
	return t
}

// Valid reports whether t is one of the built-in themes.
func (t Theme) Valid() bool {
	return t >= Classic && t <= Sunset
}

func (t Theme) pal() palette {
	if !t.Valid() {
		return palettes[Default]
	}
	return palettes[t]
}

// String returns the persisted name.
func (t Theme) String() string {
	return t.pal().name
}

// Accent returns the theme's accent color. The variant used follows the
// terminal background unless the theme pins a Scheme.
func (t Theme) Accent() lipgloss.AdaptiveColor {
	return t.pal().accent
}

// Scheme returns the theme's color-scheme override.
func (t Theme) Scheme() Scheme {
	return t.pal().scheme
}

// Heat returns the color for a completion level, clamped to the scale.
func (t Theme) Heat(level int) lipgloss.AdaptiveColor {
	heat := t.pal().heat
	if level < 0 {
		level = 0
	}
	if level >= len(heat) {
		level = len(heat) - 1
	}
	return heat[level]
}

// Next returns the following theme, wrapping around.
func (t Theme) Next() Theme {
	all := All()
	return all[(int(t)+1)%len(all)]
}

// Prev returns the preceding theme, wrapping around.
func (t Theme) Prev() Theme {
	all := All()
	return all[(int(t)+len(all)-1)%len(all)]
}

// MarshalText implements encoding.TextMarshaler.
func (t Theme) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unknown names are an
// error here; callers reading persisted data use OrDefault instead.
func (t *Theme) UnmarshalText(b []byte) error {
	parsed, ok := Parse(string(b))
	if !ok {
		return fmt.Errorf("unknown theme %q", string(b))
	}
	*t = parsed
	return nil
}
