package grid3d

import "fmt"

// DefaultStrategy is the strategy New uses when no option overrides it.
const DefaultStrategy = Cached

// Option configures New.
type Option func(*options)

// options is the resolved configuration of New. Fields are unexported; the
// public surface is the WithX setters.
type options struct {
	strategy Strategy
}

// WithStrategy selects the Indexer implementation.
// Panics on an unknown Strategy (programmer error).
func WithStrategy(s Strategy) Option {
	if s != Formula && s != Cached {
		panic(fmt.Sprintf("grid3d: WithStrategy(%d): unknown strategy", int(s)))
	}

	return func(o *options) { o.strategy = s }
}

// WithFormula is shorthand for WithStrategy(Formula).
func WithFormula() Option { return WithStrategy(Formula) }

// WithCached is shorthand for WithStrategy(Cached).
func WithCached() Option { return WithStrategy(Cached) }

func defaultOptions() options {
	return options{strategy: DefaultStrategy}
}

// gatherOptions applies setters over the defaults, last writer wins.
func gatherOptions(user ...Option) options {
	o := defaultOptions()
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// New builds an iMax×jMax×kMax Indexer with the configured strategy
// (Cached unless overridden). The result is immutable and safe to share.
//
// Example:
//
//	ix := grid3d.New(333, 222, 77, grid3d.WithFormula())
//
// Complexity: O(1) for Formula, O(jMax + kMax) for Cached.
func New(iMax, jMax, kMax int, opts ...Option) Indexer {
	o := gatherOptions(opts...)
	e := NewExtents(iMax, jMax, kMax)
	if o.strategy == Formula {
		return LightGridFrom(e)
	}

	return CachedGridFrom(e)
}
