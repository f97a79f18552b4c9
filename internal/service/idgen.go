package service

import (
	"strconv"
	"sync"
	"time"

	"github.com/alexanderramin/plannerhub/internal/domain"
)

// IDGenerator issues entry ids from the clock in Unix milliseconds. An id is
// never handed out twice, even when the clock has not moved.
type IDGenerator struct {
	mu   sync.Mutex
	now  func() time.Time
	last int64
}

func NewIDGenerator(now func() time.Time) *IDGenerator {
	if now == nil {
		now = time.Now
	}
	return &IDGenerator{now: now}
}

// Next returns a fresh id that no entry in taken already uses.
func (g *IDGenerator) Next(taken []domain.Entry) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	used := make(map[string]bool, len(taken))
	for _, e := range taken {
		used[e.EntryID()] = true
	}

	id := g.now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	for used[strconv.FormatInt(id, 10)] {
		id++
	}
	g.last = id
	return strconv.FormatInt(id, 10)
}
