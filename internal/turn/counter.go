package turn

// Counter is the turn clock shared by every map of a world.
// It is owned by the simulation goroutine and is not safe for concurrent use.
type Counter struct {
	current int
}

// NewCounter creates a clock positioned before the first turn.
func NewCounter() *Counter {
	return &Counter{}
}

// Advance moves the clock forward by exactly one turn.
func (c *Counter) Advance() {
	c.current++
}

// Current returns the latest turn number.
func (c *Counter) Current() int {
	return c.current
}
