// Package loyalty classifies loyalty accounts into qualified tiers.
//
// A Scheme is an ordered table of tier thresholds supplied externally (in
// code or from a YAML file) — the engine is tier-scheme-agnostic and never
// hard-codes thresholds. Qualification compares an account's lifetime
// miles, computed under a configurable MilesPolicy, against the scheme;
// Transitions cross-tabulates stored current tiers against qualified tiers
// so callers can spot upgrade and downgrade candidates.
package loyalty

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/vegasq/flightlens/store"
)

var (
	// ErrInvalidScheme reports a threshold table that cannot serve as a
	// tier scheme (empty, unsorted, duplicate names, non-zero base).
	ErrInvalidScheme = errors.New("invalid tier scheme")

	// ErrUnknownTier reports a stored tier name that the scheme does not
	// define.
	ErrUnknownTier = errors.New("unknown tier")
)

// Level is one tier with the lifetime miles needed to qualify for it.
type Level struct {
	Name             store.TierName `yaml:"name"`
	MinLifetimeMiles int64          `yaml:"min_lifetime_miles"`
}

// Scheme is an ordered tier threshold table. Levels ascend by threshold;
// the first level is the base tier every account qualifies for.
type Scheme struct {
	levels  []Level
	ordinal map[store.TierName]int
}

// NewScheme validates and builds a scheme from levels. Levels must be
// non-empty, strictly ascending by threshold, unique by name, and start at
// a zero threshold (the base tier).
func NewScheme(levels []Level) (*Scheme, error) {
	if len(levels) == 0 {
		return nil, fmt.Errorf("%w: no levels", ErrInvalidScheme)
	}
	if levels[0].MinLifetimeMiles != 0 {
		return nil, fmt.Errorf("%w: base level %q must have threshold 0, got %d",
			ErrInvalidScheme, levels[0].Name, levels[0].MinLifetimeMiles)
	}

	ordinal := make(map[store.TierName]int, len(levels))
	for i, level := range levels {
		if _, ok := ordinal[level.Name]; ok {
			return nil, fmt.Errorf("%w: duplicate level %q", ErrInvalidScheme, level.Name)
		}
		ordinal[level.Name] = i
		if i > 0 && level.MinLifetimeMiles <= levels[i-1].MinLifetimeMiles {
			return nil, fmt.Errorf("%w: level %q threshold %d not above %q",
				ErrInvalidScheme, level.Name, level.MinLifetimeMiles, levels[i-1].Name)
		}
	}

	return &Scheme{levels: append([]Level(nil), levels...), ordinal: ordinal}, nil
}

// schemeFile is the YAML layout of a tier scheme file.
type schemeFile struct {
	Tiers []Level `yaml:"tiers"`
}

// LoadScheme reads a tier scheme from a YAML file of the form:
//
//	tiers:
//	  - name: Basic
//	    min_lifetime_miles: 0
//	  - name: Silver
//	    min_lifetime_miles: 25000
func LoadScheme(path string) (*Scheme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tier scheme: %w", err)
	}

	var file schemeFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse tier scheme: %w", err)
	}

	// YAML order may be anything; sort by threshold before validating.
	levels := append([]Level(nil), file.Tiers...)
	sort.Slice(levels, func(i, j int) bool { return levels[i].MinLifetimeMiles < levels[j].MinLifetimeMiles })

	return NewScheme(levels)
}

// DefaultScheme returns the warehouse's reference thresholds.
func DefaultScheme() *Scheme {
	s, err := NewScheme([]Level{
		{Name: store.TierBasic, MinLifetimeMiles: 0},
		{Name: store.TierSilver, MinLifetimeMiles: 25000},
		{Name: store.TierGold, MinLifetimeMiles: 75000},
		{Name: store.TierPlatinum, MinLifetimeMiles: 150000},
	})
	if err != nil {
		panic(err) // static table, cannot fail
	}
	return s
}

// Qualify returns the highest tier whose threshold the lifetime miles
// meet. Negative lifetime miles qualify for the base tier.
func (s *Scheme) Qualify(lifetimeMiles int64) store.TierName {
	qualified := s.levels[0].Name
	for _, level := range s.levels[1:] {
		if lifetimeMiles < level.MinLifetimeMiles {
			break
		}
		qualified = level.Name
	}
	return qualified
}

// Ordinal returns the position of a tier in the scheme, base tier first.
func (s *Scheme) Ordinal(name store.TierName) (int, bool) {
	i, ok := s.ordinal[name]
	return i, ok
}

// Levels returns a copy of the scheme's levels in ascending order.
func (s *Scheme) Levels() []Level {
	return append([]Level(nil), s.levels...)
}
