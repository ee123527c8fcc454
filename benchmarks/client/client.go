package client

// Client is a uniform pull interface over the generator mechanisms under
// comparison. Init wires the underlying mechanism to produce the infinite
// counting sequence 0, 1, 2, ...
type Client interface {
	Init()
	Next() (int, bool)
	Name() string
	Close()
}
