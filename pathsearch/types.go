package pathsearch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/wayfind/grid"
)

// Sentinel errors for option validation.
var (
	// ErrBadStairsPenalty indicates a negative stairs penalty.
	ErrBadStairsPenalty = errors.New("pathsearch: StairsPenalty must be non-negative")

	// ErrBadMaxExpansions indicates a negative expansion budget.
	ErrBadMaxExpansions = errors.New("pathsearch: MaxExpansions must be non-negative")

	// ErrUnknownMode indicates a mode name that ParseMode does not recognise.
	ErrUnknownMode = errors.New("pathsearch: unknown mode")
)

// DefaultStairsPenalty is the extra cost of entering a stairs cell in
// Accessible mode.
const DefaultStairsPenalty = 10

// Mode selects the step-cost policy.
type Mode int

const (
	// Standard charges 1 per step onto any passable cell.
	Standard Mode = iota
	// Accessible adds StairsPenalty to every step onto a stairs cell.
	Accessible
)

func (m Mode) String() string {
	switch m {
	case Standard:
		return "standard"
	case Accessible:
		return "accessible"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(b []byte) error {
	v, err := ParseMode(string(b))
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// ParseMode maps "standard" or "accessible" (case-insensitive) to a Mode.
// The empty string selects Standard.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "standard":
		return Standard, nil
	case "accessible":
		return Accessible, nil
	default:
		return Standard, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Path is an ordered cell sequence from start to end, both inclusive.
type Path []grid.Cell

// Steps returns the number of moves in the path (len-1, or 0 when empty).
func (p Path) Steps() int {
	if len(p) < 2 {
		return 0
	}
	return len(p) - 1
}

// Options configures a search.
//
// Mode          – cost policy (Standard by default).
// StairsPenalty – extra cost for entering stairs in Accessible mode. Must be ≥ 0.
// MaxExpansions – stop after this many node expansions and report no path.
//
//	0 means unlimited. Must be ≥ 0.
type Options struct {
	Mode          Mode
	StairsPenalty int
	MaxExpansions int
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns Standard mode, DefaultStairsPenalty and no
// expansion cap.
func DefaultOptions() Options {
	return Options{
		Mode:          Standard,
		StairsPenalty: DefaultStairsPenalty,
		MaxExpansions: 0,
	}
}

// WithMode selects the cost policy.
func WithMode(m Mode) Option {
	return func(o *Options) {
		o.Mode = m
	}
}

// WithAccessible is shorthand for WithMode(Accessible) when on is true.
func WithAccessible(on bool) Option {
	return func(o *Options) {
		if on {
			o.Mode = Accessible
		} else {
			o.Mode = Standard
		}
	}
}

// WithStairsPenalty overrides the Accessible-mode stairs surcharge.
// Panics with ErrBadStairsPenalty on a negative value.
func WithStairsPenalty(p int) Option {
	return func(o *Options) {
		if p < 0 {
			panic(ErrBadStairsPenalty.Error())
		}
		o.StairsPenalty = p
	}
}

// WithMaxExpansions caps the number of expanded cells.
// Panics with ErrBadMaxExpansions on a negative value.
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadMaxExpansions.Error())
		}
		o.MaxExpansions = n
	}
}

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// stepCost is the price of moving onto a cell of type t.
func (o Options) stepCost(t grid.CellType) int {
	if o.Mode == Accessible && t == grid.Stairs {
		return 1 + o.StairsPenalty
	}
	return 1
}
