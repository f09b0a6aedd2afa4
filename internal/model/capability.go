package model

import (
	"fmt"
	"strings"
)

// Capability is a boolean trait an entity either holds or not.
type Capability uint16

const (
	ReceivesStatusEffects Capability = 1 << iota
	ColdResistant
	Tamed
	ConsumesGroundItems
)

var capabilityNames = []struct {
	c    Capability
	name string
}{
	{ReceivesStatusEffects, "receives_status_effects"},
	{ColdResistant, "cold_resistant"},
	{Tamed, "tamed"},
	{ConsumesGroundItems, "consumes_ground_items"},
}

// ParseCapability resolves a capability by its config name.
func ParseCapability(s string) (Capability, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, cn := range capabilityNames {
		if cn.name == s {
			return cn.c, nil
		}
	}
	return 0, fmt.Errorf("unknown capability %q", s)
}

func (c Capability) String() string {
	parts := make([]string, 0, len(capabilityNames))
	for _, cn := range capabilityNames {
		if c&cn.c != 0 {
			parts = append(parts, cn.name)
		}
	}
	return strings.Join(parts, "|")
}
