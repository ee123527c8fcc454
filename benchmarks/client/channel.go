package client

// Channel drives the counting sequence through a producer goroutine and an
// unbuffered channel, the pre-generics way of writing a generator in Go.
type Channel struct {
	ch   chan int
	done chan struct{}
}

func (c *Channel) Init() {
	c.ch = make(chan int)
	c.done = make(chan struct{})
	go func() {
		defer close(c.ch)
		for i := 0; ; i++ {
			select {
			case c.ch <- i:
			case <-c.done:
				return
			}
		}
	}()
}

func (c *Channel) Name() string {
	return "channel"
}

func (c *Channel) Next() (int, bool) {
	v, ok := <-c.ch
	return v, ok
}

func (c *Channel) Close() {
	close(c.done)
}
