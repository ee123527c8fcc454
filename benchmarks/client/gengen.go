package client

import (
	"github.com/tmr232/gengen/gengen"
)

// Gengen drives the counting sequence through gengen's function-backed
// generator runtime.
type Gengen struct {
	generator *gengen.GeneratorFunction[int]
}

func (c *Gengen) Init() {
	i := 0
	c.generator = &gengen.GeneratorFunction[int]{
		Advance: func() (bool, int, error) {
			value := i
			i++
			return true, value, nil
		},
	}
}

func (c *Gengen) Name() string {
	return "gengen"
}

func (c *Gengen) Next() (int, bool) {
	if !c.generator.Next() {
		return 0, false
	}
	return c.generator.Value(), true
}

func (c *Gengen) Close() {
	c.generator = nil
}
