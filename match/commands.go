package match

// Commands buffers work that must wait until every system of the frame has
// run, such as handing garbage from one session to another.
type Commands struct {
	defers []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Defer queues fn to run when the frame is flushed.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len is the number of queued commands.
func (c *Commands) Len() int {
	return len(c.defers)
}

// Flush runs the queued commands in order and resets the buffer. Commands
// deferred while flushing run in the same flush.
func (c *Commands) Flush() {
	for i := 0; i < len(c.defers); i++ {
		c.defers[i]()
	}
	clear(c.defers)
	c.defers = c.defers[:0]
}
