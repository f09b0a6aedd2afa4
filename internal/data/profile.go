package data

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/agnivade/levenshtein"
	"gopkg.in/yaml.v3"

	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/model"
	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/world"
)

//go:embed profiles/*.yaml
var profilesFS embed.FS

// DefaultProfileName is the embedded profile used when no path is configured.
const DefaultProfileName = "winter"

type speciesDoc struct {
	Key          string   `yaml:"key"`
	Name         string   `yaml:"name"`
	Health       int      `yaml:"health"`
	Warmth       *int     `yaml:"warmth"`
	Capabilities []string `yaml:"capabilities"`
}

type bindingDoc struct {
	Species string            `yaml:"species"`
	Effect  string            `yaml:"effect"`
	Params  map[string]string `yaml:"params"`
}

type actorDoc struct {
	Species string `yaml:"species"`
	X       int    `yaml:"x"`
	Y       int    `yaml:"y"`
}

type mapDoc struct {
	Name     string              `yaml:"name"`
	Fallback string              `yaml:"fallback"`
	Template []string            `yaml:"template"`
	Spawns   map[string][]string `yaml:"spawns"`
	Actors   []actorDoc          `yaml:"actors"`
}

type profileDoc struct {
	Species   []speciesDoc `yaml:"species"`
	PostSpawn []bindingDoc `yaml:"post_spawn"`
	Maps      []mapDoc     `yaml:"maps"`
}

// EffectBinding attaches a named post-spawn effect to a species.
type EffectBinding struct {
	Species string
	Effect  string
	Params  map[string]string
}

// ActorPlacement is a creature placed during world setup.
type ActorPlacement struct {
	Species string
	Pos     model.Position
}

// MapSpec describes one map before construction.
type MapSpec struct {
	Name     string
	Fallback world.Kind
	Template []string
	Actors   []ActorPlacement
}

// Profile is a validated world description.
type Profile struct {
	Catalog     *Catalog
	Eligibility *EligibilityTable
	Bindings    []EffectBinding
	Maps        []MapSpec
}

// LoadProfile reads a profile from path. An empty path loads the embedded default.
func LoadProfile(path string) (*Profile, error) {
	if path == "" {
		return DefaultProfile()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile %s: %w", path, err)
	}
	p, err := ParseProfile(raw)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}
	return p, nil
}

// DefaultProfile returns the embedded winter profile.
func DefaultProfile() (*Profile, error) {
	raw, err := profilesFS.ReadFile("profiles/" + DefaultProfileName + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded profile: %w", err)
	}
	return ParseProfile(raw)
}

// ParseProfile decodes and validates a YAML profile.
func ParseProfile(raw []byte) (*Profile, error) {
	var doc profileDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing profile: %w", err)
	}

	species := make([]Species, 0, len(doc.Species))
	for _, sd := range doc.Species {
		s := Species{Key: sd.Key, Name: sd.Name, MaxHP: sd.Health}
		if s.Name == "" {
			s.Name = sd.Key
		}
		if sd.Warmth != nil {
			s.Warmth = *sd.Warmth
			s.HasWarmth = true
		}
		for _, name := range sd.Capabilities {
			c, err := model.ParseCapability(name)
			if err != nil {
				return nil, fmt.Errorf("species %q: %w", sd.Key, err)
			}
			s.Capabilities |= c
		}
		species = append(species, s)
	}

	catalog, err := NewCatalog(species)
	if err != nil {
		return nil, err
	}

	p := &Profile{Catalog: catalog}
	entries := make(map[string]map[world.Kind][]string, len(doc.Maps))

	for _, md := range doc.Maps {
		if md.Name == "" {
			return nil, errors.New("map without name")
		}
		if _, dup := entries[md.Name]; dup {
			return nil, fmt.Errorf("map %q defined twice", md.Name)
		}

		spec := MapSpec{Name: md.Name, Fallback: world.Dirt, Template: md.Template}
		if md.Fallback != "" {
			k, err := world.ParseKind(md.Fallback)
			if err != nil {
				return nil, fmt.Errorf("map %q fallback: %w", md.Name, err)
			}
			spec.Fallback = k
		}

		byKind := make(map[world.Kind][]string, len(md.Spawns))
		for terrainName, list := range md.Spawns {
			k, err := world.ParseKind(terrainName)
			if err != nil {
				return nil, fmt.Errorf("map %q spawns: %w", md.Name, err)
			}
			if _, dup := byKind[k]; dup {
				return nil, fmt.Errorf("map %q spawns: terrain %s listed twice", md.Name, k)
			}
			for _, key := range list {
				if err := catalog.check(key); err != nil {
					return nil, fmt.Errorf("map %q %s spawns: %w", md.Name, k, err)
				}
			}
			byKind[k] = list
		}
		entries[md.Name] = byKind

		for _, ad := range md.Actors {
			if err := catalog.check(ad.Species); err != nil {
				return nil, fmt.Errorf("map %q actors: %w", md.Name, err)
			}
			spec.Actors = append(spec.Actors, ActorPlacement{Species: ad.Species, Pos: model.Pos(ad.X, ad.Y)})
		}

		p.Maps = append(p.Maps, spec)
	}

	for _, bd := range doc.PostSpawn {
		if err := catalog.check(bd.Species); err != nil {
			return nil, fmt.Errorf("post_spawn: %w", err)
		}
		if bd.Effect == "" {
			return nil, fmt.Errorf("post_spawn %q: effect name required", bd.Species)
		}
		p.Bindings = append(p.Bindings, EffectBinding{Species: bd.Species, Effect: bd.Effect, Params: bd.Params})
	}

	p.Eligibility = NewEligibilityTable(entries)
	return p, nil
}

// check reports ErrUnknownSpecies with the closest known key as a hint.
func (c *Catalog) check(key string) error {
	if _, ok := c.byKey[key]; ok {
		return nil
	}
	if hint := Suggest(key, c.keys); hint != "" {
		return fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownSpecies, key, hint)
	}
	return fmt.Errorf("%w %q", ErrUnknownSpecies, key)
}

// Suggest returns the candidate closest to name by edit distance, or "" when
// nothing is close enough to be a plausible typo.
func Suggest(name string, candidates []string) string {
	name = strings.ToLower(name)
	best, bestDist := "", -1
	for _, cand := range candidates {
		d := levenshtein.ComputeDistance(name, strings.ToLower(cand))
		if bestDist < 0 || d < bestDist || (d == bestDist && cand < best) {
			best, bestDist = cand, d
		}
	}
	if bestDist < 0 || bestDist > suggestLimit(len(name)) {
		return ""
	}
	return best
}

func suggestLimit(n int) int {
	switch {
	case n <= 3:
		return 1
	case n <= 8:
		return 2
	default:
		return 3
	}
}

// MapNames returns the names of every map in the profile, in file order.
func (p *Profile) MapNames() []string {
	names := make([]string, 0, len(p.Maps))
	for _, m := range p.Maps {
		names = append(names, m.Name)
	}
	return names
}
