package turn

// Set positions the clock at turn n.
// Intended for tests that need a specific turn without stepping the world.
func (c *Counter) Set(n int) {
	c.current = n
}

// Reset rewinds the clock to zero.
// Intended for tests only.
func (c *Counter) Reset() {
	c.current = 0
}
