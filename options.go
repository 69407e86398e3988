package kmervec

import (
	"github.com/diverseq/kmervec/alphabet"
)

// Option configures a Vectorizer.
type Option func(*Vectorizer)

// WithAlphabet sets the canonical alphabet. The default is alphabet.DNA.
// If nil is passed, the default is kept.
func WithAlphabet(a *alphabet.Alphabet) Option {
	return func(v *Vectorizer) {
		if a != nil {
			v.alpha = a
		}
	}
}

// WithWorkers bounds the number of concurrent workers used by Records.
// Values < 1 select runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(v *Vectorizer) {
		v.workers = n
	}
}

// WithDenseCounts stores counts in the dense representation, trading
// memory proportional to numStates^k for O(1) indexed access. The default
// is sparse.
func WithDenseCounts() Option {
	return func(v *Vectorizer) {
		v.dense = true
	}
}

// WithLogger sets the logger. If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(v *Vectorizer) {
		if l == nil {
			l = NoopLogger()
		}
		v.logger = l
	}
}
