package state

// CountTracker owns the product count. It is written only from a count fetch
// or from an upload response; never incremented locally.
type CountTracker struct {
	count  int
	loaded bool
}

// SetFetched stores the count returned by the count endpoint
func (c *CountTracker) SetFetched(n int) {
	c.set(n)
}

// SetIngested stores the count reported by a successful upload
func (c *CountTracker) SetIngested(n int) {
	c.set(n)
}

func (c *CountTracker) set(n int) {
	if n < 0 {
		n = 0
	}
	c.count = n
	c.loaded = true
}

// Count returns the last known count, zero until the first write
func (c *CountTracker) Count() int { return c.count }

// Loaded reports whether the count came from the backend at least once
func (c *CountTracker) Loaded() bool { return c.loaded }
