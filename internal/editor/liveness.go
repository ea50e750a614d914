package editor

import "sync/atomic"

// Token identifies the view a request was issued under.
type Token uint64

// Liveness hands out request tokens and invalidates them on teardown.
// The zero value is ready to use.
type Liveness struct {
	gen    atomic.Uint64
	closed atomic.Bool
}

// Token returns a token for a request issued now.
func (l *Liveness) Token() Token {
	return Token(l.gen.Load())
}

// Valid reports whether results tagged with t may still be applied.
func (l *Liveness) Valid(t Token) bool {
	return !l.closed.Load() && uint64(t) == l.gen.Load()
}

// Close invalidates every token, including future ones.
func (l *Liveness) Close() {
	l.closed.Store(true)
	l.gen.Add(1)
}
