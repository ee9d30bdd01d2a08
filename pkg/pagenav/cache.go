package pagenav

// inactiveCache holds pages that are off screen but still built, oldest first.
type inactiveCache struct {
	order []*Page
}

func (c *inactiveCache) push(p *Page) {
	c.remove(p)
	c.order = append(c.order, p)
}

func (c *inactiveCache) remove(p *Page) bool {
	for i, cached := range c.order {
		if cached == p {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return true
		}
	}
	return false
}

func (c *inactiveCache) len() int {
	return len(c.order)
}

// evict destroys the oldest pages until at most max remain.
// A negative max disables eviction.
func (c *inactiveCache) evict(max int, destroy func(*Page)) {
	if max < 0 {
		return
	}
	for len(c.order) > max {
		oldest := c.order[0]
		c.order = c.order[1:]
		destroy(oldest)
	}
}

func (c *inactiveCache) ids() []string {
	ids := make([]string, len(c.order))
	for i, p := range c.order {
		ids[i] = p.id
	}
	return ids
}

func (c *inactiveCache) clear() {
	c.order = nil
}
