package item

import (
	"encoding/hex"
	"fmt"
	"sync"

	"github.com/gofrs/uuid/v5"
)

// IDGenerator hands out item ids that are unique for the life of the process.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator produces 24 hex character ids (the host's object id width)
// from random v4 UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string {
	id := uuid.Must(uuid.NewV4())
	return hex.EncodeToString(id.Bytes()[:12])
}

// SequenceGenerator yields predictable ids, for tests and reproducible dumps.
type SequenceGenerator struct {
	Prefix string

	mu   sync.Mutex
	next int
}

func (g *SequenceGenerator) NewID() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return fmt.Sprintf("%s%06d", g.Prefix, g.next)
}
