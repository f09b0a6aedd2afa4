package sim

import (
	"github.com/ahmednaeem786/Winter-Survival-Game-sub000/internal/world"
)

// SweepWarmth cools every creature that tracks warmth by one point and removes
// those that freeze. Cold-resistant creatures are left alone.
// Returns the number of creatures removed.
func SweepWarmth(w *world.World) int {
	frozen := 0
	for _, m := range w.Maps() {
		for _, e := range m.Actors() {
			if _, ok := e.Warmth(); !ok || e.IsColdResistant() {
				continue
			}
			e.ReduceWarmth(1)
			if m.RemoveIfDead(e) {
				frozen++
			}
		}
	}
	return frozen
}
