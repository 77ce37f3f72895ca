package rules

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

var ErrUnknownDispatch = errors.New("unknown dispatch policy")

// DispatchPolicy selects how many bots a capture order carries.
type DispatchPolicy string

const (
	// DispatchFixed sends DispatchSize bots as long as the source keeps
	// Reserve bots behind.
	DispatchFixed DispatchPolicy = "fixed"
	// DispatchHalve sends half of what the source has left, provided the
	// remainder still covers the source's own production.
	DispatchHalve DispatchPolicy = "halve"
)

// ParseDispatchPolicy accepts only the known policy names.
func ParseDispatchPolicy(s string) (DispatchPolicy, error) {
	switch p := DispatchPolicy(s); p {
	case DispatchFixed, DispatchHalve:
		return p, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDispatch, s)
}

// Doctrine is the tuning for one bot run. The compiler maps it onto a
// concrete rule set; the target selector reads BorderLimit directly.
type Doctrine struct {
	Name         string         `yaml:"name"`
	BorderLimit  int            `yaml:"border_limit"`
	Dispatch     DispatchPolicy `yaml:"dispatch"`
	DispatchSize int            `yaml:"dispatch_size"`
	Reserve      int            `yaml:"reserve"`
	SkipCovered  bool           `yaml:"skip_covered"`
	CoverMargin  int            `yaml:"cover_margin"`
	MaxDistance  int            `yaml:"max_distance"` // 0 = no limit
}

// DefaultDoctrine returns the baseline: radius three times the nearest
// neighbor distance and two bots per capture order.
func DefaultDoctrine() Doctrine {
	return Doctrine{
		Name:         "baseline",
		BorderLimit:  3,
		Dispatch:     DispatchFixed,
		DispatchSize: 2,
	}
}

// LoadDoctrine reads a YAML doctrine. Keys missing from the file keep their
// default values.
func LoadDoctrine(path string) (Doctrine, error) {
	d := DefaultDoctrine()
	raw, err := os.ReadFile(path)
	if err != nil {
		return d, fmt.Errorf("read doctrine: %w", err)
	}
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return d, fmt.Errorf("%s: %w", path, err)
	}
	if _, err := ParseDispatchPolicy(string(d.Dispatch)); err != nil {
		return d, fmt.Errorf("%s: %w", path, err)
	}
	d.Validate()
	return d, nil
}

// Validate clamps all values to their valid ranges. Callers reading user
// input should reject unknown policies with ParseDispatchPolicy first.
func (d *Doctrine) Validate() {
	if _, err := ParseDispatchPolicy(string(d.Dispatch)); err != nil {
		log.Warn().Str("dispatch", string(d.Dispatch)).Msg("unknown dispatch policy, using fixed")
		d.Dispatch = DispatchFixed
	}
	d.BorderLimit = clampInt(d.BorderLimit, 1, 10)
	d.DispatchSize = clampInt(d.DispatchSize, 1, 1000)
	d.Reserve = clampInt(d.Reserve, 0, 1000)
	d.CoverMargin = clampInt(d.CoverMargin, 0, 1000)
	d.MaxDistance = clampInt(d.MaxDistance, 0, 1000)
}

// clampInt restricts v to [min, max].
func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
