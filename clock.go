package ldtk

// Clock is the time source shared by everything driven by a Kernel.
type Clock struct {
	// Delta is the length of the current tick in seconds.
	Delta float64
	// Time is the number of seconds since the first tick, including this one.
	Time float64
}

// advance starts a new tick of length dt.
func (c *Clock) advance(dt float64) {
	c.Delta = dt
	c.Time += dt
}
