package effect

// Ledger is the ordered list of status effects active on one entity.
// Instances of the same kind stack: each is kept, aged and expired on its own.
//
// A ledger belongs to exactly one entity and is driven by the simulation
// goroutine; it is not safe for concurrent use.
type Ledger struct {
	active []*Instance
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{active: make([]*Instance, 0, 4)}
}

// Add appends inst after every instance already present.
// Instances with no remaining duration are dropped; returns false in that case.
func (l *Ledger) Add(inst Instance) bool {
	if inst.Remaining <= 0 {
		return false
	}
	l.active = append(l.active, &inst)
	return true
}

// Tick applies every instance to t once in insertion order, ages it, and removes
// instances whose remaining duration reached zero after their final tick.
// Returns the number of instances that expired.
func (l *Ledger) Tick(t Target) int {
	n := 0
	for _, inst := range l.active {
		inst.apply(t)
		inst.Remaining--
		if inst.IsExpired() {
			continue
		}
		l.active[n] = inst
		n++
	}

	expired := len(l.active) - n
	for i := n; i < len(l.active); i++ {
		l.active[i] = nil
	}
	l.active = l.active[:n]
	return expired
}

// Active returns a copy of the active instances in insertion order.
func (l *Ledger) Active() []Instance {
	out := make([]Instance, len(l.active))
	for i, inst := range l.active {
		out[i] = *inst
	}
	return out
}

// Len returns the number of active instances.
func (l *Ledger) Len() int {
	return len(l.active)
}

// Count returns the number of active instances of kind.
func (l *Ledger) Count(kind Kind) int {
	c := 0
	for _, inst := range l.active {
		if inst.Kind == kind {
			c++
		}
	}
	return c
}

