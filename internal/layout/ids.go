package layout

import (
	"strconv"

	"github.com/google/uuid"
)

// IDGenerator hands out identifiers that are unique for the life of the process.
type IDGenerator interface {
	NewID() string
}

// UUIDGenerator issues random v4 UUIDs.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID() string { return uuid.NewString() }

// SequenceGenerator issues prefix1, prefix2, ... in order.
type SequenceGenerator struct {
	Prefix string
	next   int
}

func (g *SequenceGenerator) NewID() string {
	g.next++
	return g.Prefix + strconv.Itoa(g.next)
}
