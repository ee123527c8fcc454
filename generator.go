package gen

import (
	"errors"
	"io"
)

// ErrEndOfIteration is returned by Generator.NextValue when the generator
// has no more values to produce.
var ErrEndOfIteration = errors.New("end of iteration")

func zeroValue[T any]() T {
	var zero T
	return zero
}

// Generator couples a state value with a transition function and produces a
// sequence of values one at a time, on demand, without goroutines or
// channels. The state is owned exclusively by the generator and is mutated
// in place by every retrieval call.
//
// The transition function receives the current state, advances it, and
// either yields a value or reports exhaustion by returning false. It must be
// total over all reachable states: exhaustion is signaled only through the
// returned bool, never by panicking. Once it has reported exhaustion it must
// keep reporting it on subsequent calls.
//
// A Generator is not safe for concurrent use.
type Generator[Y, S any] struct {
	state      S
	transition func(*S) (Y, bool)
}

// NewGenerator returns a generator that starts from state and advances it
// with transition on every retrieval. The generator takes ownership of
// state: the caller must not keep references to it. Any state type works;
// Count, Repeat, Cycle and Accumulate are pre-wired state+transition pairs
// built on exactly this constructor.
func NewGenerator[Y, S any](state S, transition func(*S) (Y, bool)) *Generator[Y, S] {
	return &Generator[Y, S]{
		state:      state,
		transition: transition,
	}
}

// Next advances the generator once and returns the outcome as a YieldResult.
// It never fails: exhaustion is the End variant of the result.
func (g *Generator[Y, S]) Next() YieldResult[Y] {
	value, ok := g.transition(&g.state)
	if !ok {
		return End[Y]()
	}
	return Yielded(value)
}

// NextValue advances the generator once and returns the produced value, or
// ErrEndOfIteration if the generator is exhausted. Exhaustion is an expected
// outcome for finite generators, so callers should branch on the error
// rather than treat it as a failure.
func (g *Generator[Y, S]) NextValue() (Y, error) {
	value, ok := g.transition(&g.state)
	if !ok {
		return zeroValue[Y](), ErrEndOfIteration
	}
	return value, nil
}

// NextOptional advances the generator once and returns the produced value
// in comma-ok form. ok is false exactly when the generator is exhausted.
func (g *Generator[Y, S]) NextOptional() (Y, bool) {
	return g.transition(&g.state)
}

// Close releases resources held by the state. If a pointer to the state
// implements io.Closer, Close forwards to it; otherwise Close is a no-op.
// None of the built-in constructors hold releasable resources.
func (g *Generator[Y, S]) Close() error {
	if closer, ok := any(&g.state).(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
