package imagecache

import "sync/atomic"

// Generation is a per-display-slot counter used to detect stale async
// completions. A slot bumps the generation when it is reused for a new
// item; a load completion compares the token it captured at start against
// the current value and discards its result on mismatch. This replaces a
// cancel-then-ignore race with a deterministic check.
type Generation struct {
	n atomic.Uint64
}

// Next invalidates all outstanding tokens and returns a fresh one.
func (g *Generation) Next() uint64 {
	return g.n.Add(1)
}

// Current reports whether token is still the live generation.
func (g *Generation) Current(token uint64) bool {
	return g.n.Load() == token
}
