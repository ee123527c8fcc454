package client

import (
	"iter"
)

// IterPull drives the counting sequence through the standard library's
// coroutine-backed iter.Pull.
type IterPull struct {
	next func() (int, bool)
	stop func()
}

func (c *IterPull) Init() {
	seq := iter.Seq[int](func(yield func(int) bool) {
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	})
	c.next, c.stop = iter.Pull(seq)
}

func (c *IterPull) Name() string {
	return "iter.Pull"
}

func (c *IterPull) Next() (int, bool) {
	return c.next()
}

func (c *IterPull) Close() {
	c.stop()
}
