package world

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/model"
	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/rng"
)

// ErrNoFallbackGround is returned when a required terrain kind is missing and no
// free fallback cell is left to convert.
var ErrNoFallbackGround = errors.New("no fallback ground to convert")

// EnsureTerrain guarantees at least one cell of every required kind.
// For each missing kind, in the order given, one unoccupied cell of the fallback
// kind is chosen uniformly at random and converted.
func EnsureTerrain(m *Map, required []Kind, fallback Kind, r rng.Source) error {
	for _, k := range required {
		if m.CountTerrain(k) > 0 {
			continue
		}

		candidates := make([]model.Position, 0)
		for _, p := range m.Positions(fallback) {
			if !m.IsOccupied(p) {
				candidates = append(candidates, p)
			}
		}
		if len(candidates) == 0 {
			return fmt.Errorf("map %q needs %s: %w (fallback %s)", m.Name(), k, ErrNoFallbackGround, fallback)
		}

		p := candidates[r.IntN(len(candidates))]
		if err := m.SetTerrain(p, k); err != nil {
			return fmt.Errorf("converting %s to %s: %w", p, k, err)
		}

		slog.Info("required terrain placed",
			"map", m.Name(),
			"terrain", k.String(),
			"position", p.String(),
			"candidates", len(candidates))
	}
	return nil
}
