package calendar

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Session types that get a brightness variant.
const (
	TypeLecture  = "Cours magistral"
	TypeWorkshop = "Atelier"
)

// RGB is an 8-bit per channel colour
type RGB struct {
	R, G, B uint8
}

// Hex formats the colour as "#rrggbb"
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex reads "#rrggbb" (the leading # is optional).
func ParseHex(s string) (RGB, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return RGB{}, fmt.Errorf("invalid hex colour %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Brighten scales every channel by (1 + percent/100), rounding and clamping to [0,255].
func (c RGB) Brighten(percent float64) RGB {
	scale := func(v uint8) uint8 {
		x := math.Round(float64(v) * (1 + percent/100))
		return uint8(math.Min(255, math.Max(0, x)))
	}
	return RGB{R: scale(c.R), G: scale(c.G), B: scale(c.B)}
}

// brightnessFor returns the adjustment applied for a session type.
func brightnessFor(sessionType string) float64 {
	switch sessionType {
	case TypeWorkshop:
		return 10
	default:
		// lectures and unknown types keep the base colour
		return 0
	}
}

// Palette hands out one light colour per course code and remembers it for its lifetime.
type Palette struct {
	mu     sync.Mutex
	rng    *rand.Rand
	colors map[string]RGB
}

// NewPalette creates a palette seeded from the clock.
func NewPalette() *Palette {
	return NewSeededPalette(time.Now().UnixNano())
}

// NewSeededPalette creates a palette with a fixed seed, for reproducible output.
func NewSeededPalette(seed int64) *Palette {
	return &Palette{
		rng:    rand.New(rand.NewSource(seed)),
		colors: make(map[string]RGB),
	}
}

// Base returns the cached colour of a course code, drawing a new one on first use.
// Channels are drawn from [128,255] so black text stays readable.
func (p *Palette) Base(courseCode string) RGB {
	p.mu.Lock()
	defer p.mu.Unlock()

	if c, ok := p.colors[courseCode]; ok {
		return c
	}

	c := RGB{
		R: uint8(128 + p.rng.Intn(128)),
		G: uint8(128 + p.rng.Intn(128)),
		B: uint8(128 + p.rng.Intn(128)),
	}
	p.colors[courseCode] = c
	return c
}

// ColorFor returns the colour of a session: the course's base colour, brightened 10% for workshops.
func (p *Palette) ColorFor(courseCode, sessionType string) RGB {
	return p.Base(courseCode).Brighten(brightnessFor(sessionType))
}
