package geometry

import "sync/atomic"

// Tracker hands out generation tokens for in-flight geometry fetches. Routing
// responses complete in arbitrary order; a result is only applied when its
// token still matches the latest generation, so a superseded fetch can never
// overwrite a newer one. Resetting the search bumps the generation, which
// also discards everything still pending.
type Tracker struct {
	gen atomic.Uint64
}

// Begin starts a new generation and returns its token.
func (t *Tracker) Begin() uint64 {
	return t.gen.Add(1)
}

// Current reports whether the token is still the active generation.
func (t *Tracker) Current(token uint64) bool {
	return t.gen.Load() == token
}

// Cancel invalidates all outstanding tokens without starting a new fetch.
func (t *Tracker) Cancel() {
	t.gen.Add(1)
}
