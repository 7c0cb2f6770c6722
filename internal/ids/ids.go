// Package ids issues record identifiers. Callers observe the ids as opaque
// sortable integers derived from wall-clock milliseconds; the generator
// guarantees they are strictly increasing within a process, so two creates
// landing in the same millisecond cannot collide.
package ids

import (
	"sync"
	"time"
)

type Generator struct {
	mu   sync.Mutex
	last int64
}

func NewGenerator() *Generator { return &Generator{} }

// Next returns the current millisecond clock value, bumped past the
// previously issued id when the clock has not advanced.
func (g *Generator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := time.Now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}
