package client

import (
	"github.com/maypok86/gen"
)

type Gen struct {
	generator *gen.Generator[int, gen.CounterState[int]]
}

func (c *Gen) Init() {
	c.generator = gen.Count(0, 1)
}

func (c *Gen) Name() string {
	return "gen"
}

func (c *Gen) Next() (int, bool) {
	return c.generator.NextOptional()
}

func (c *Gen) Close() {
	c.generator = nil
}
