package effect

import (
	"fmt"
	"strings"
)

// Kind identifies a timed status effect.
type Kind uint8

const (
	Bleed     Kind = iota + 1 // damage per tick
	Burn                      // damage per tick
	Poison                    // damage per tick
	Frostbite                 // warmth loss per tick
)

var kindNames = map[Kind]string{
	Bleed:     "bleed",
	Burn:      "burn",
	Poison:    "poison",
	Frostbite: "frostbite",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind resolves a status effect name (case-insensitive).
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown status effect %q", s)
}

// Instance is one stack of a status effect on one entity.
// Remaining counts the ticks still to be applied, Magnitude the points per tick.
type Instance struct {
	Kind      Kind
	Remaining int
	Magnitude int
}

// New creates an instance lasting duration ticks.
func New(kind Kind, duration, magnitude int) Instance {
	return Instance{Kind: kind, Remaining: duration, Magnitude: magnitude}
}

// NewBleed creates a bleed instance.
func NewBleed(duration, magnitude int) Instance { return New(Bleed, duration, magnitude) }

// NewBurn creates a burn instance.
func NewBurn(duration, magnitude int) Instance { return New(Burn, duration, magnitude) }

// NewPoison creates a poison instance.
func NewPoison(duration, magnitude int) Instance { return New(Poison, duration, magnitude) }

// NewFrostbite creates a frostbite instance.
func NewFrostbite(duration, magnitude int) Instance { return New(Frostbite, duration, magnitude) }

// IsExpired returns true once every tick has been applied.
func (i *Instance) IsExpired() bool {
	return i.Remaining <= 0
}

// Target is the afflicted side of a status effect.
type Target interface {
	ReduceHP(points int)
	// ReduceWarmth lowers warmth and reports false when the target has none.
	ReduceWarmth(points int) bool
	IsColdResistant() bool
}

// apply deals one tick of the effect to t.
func (i *Instance) apply(t Target) {
	if i.Magnitude <= 0 {
		return
	}

	switch i.Kind {
	case Bleed, Burn, Poison:
		t.ReduceHP(i.Magnitude)
	case Frostbite:
		if t.IsColdResistant() {
			return
		}
		t.ReduceWarmth(i.Magnitude)
	}
}
