package world

import (
	"fmt"
	"strings"
)

// Kind is the terrain type of a map cell.
type Kind uint8

const (
	Dirt Kind = iota + 1
	Snow
	Wall
	Tree
	Cave
	Tundra
	Meadow
	Swamp
)

type kindInfo struct {
	name     string
	glyph    rune
	walkable bool
}

var kinds = map[Kind]kindInfo{
	Dirt:   {"dirt", '.', true},
	Snow:   {"snow", '*', true},
	Wall:   {"wall", '#', false},
	Tree:   {"tree", 'T', false},
	Cave:   {"cave", 'C', true},
	Tundra: {"tundra", 'U', true},
	Meadow: {"meadow", 'M', true},
	Swamp:  {"swamp", 'S', true},
}

func (k Kind) String() string {
	if info, ok := kinds[k]; ok {
		return info.name
	}
	return fmt.Sprintf("terrain(%d)", uint8(k))
}

// Glyph returns the template character for k.
func (k Kind) Glyph() rune {
	return kinds[k].glyph
}

// Walkable reports whether creatures may stand on k.
func (k Kind) Walkable() bool {
	return kinds[k].walkable
}

// ParseKind resolves a terrain name (case-insensitive).
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, info := range kinds {
		if info.name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown terrain %q", s)
}

// KindFromGlyph resolves a template character.
func KindFromGlyph(r rune) (Kind, bool) {
	for k, info := range kinds {
		if info.glyph == r {
			return k, true
		}
	}
	return 0, false
}
