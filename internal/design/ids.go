package design

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// IDGenerator mints instance ids. taken reports ids already in the tree;
// implementations must not return one of them.
type IDGenerator interface {
	NextID(t Type, taken func(id string) bool) string
}

// CounterIDs issues "<type>-<n>" with n increasing across all types.
type CounterIDs struct {
	n int
}

func (c *CounterIDs) NextID(t Type, taken func(string) bool) string {
	for {
		c.n++
		id := fmt.Sprintf("%s-%d", t, c.n)
		if taken == nil || !taken(id) {
			return id
		}
	}
}

// UUIDIDs issues "<type>-<uuid>".
type UUIDIDs struct{}

func (UUIDIDs) NextID(t Type, taken func(string) bool) string {
	for {
		id := string(t) + "-" + uuid.NewString()
		if taken == nil || !taken(id) {
			return id
		}
	}
}

// ID strategy names accepted by NewIDGenerator.
const (
	IDStrategyCounter = "counter"
	IDStrategyUUID    = "uuid"
)

// NewIDGenerator returns the generator for a strategy name.
func NewIDGenerator(strategy string) (IDGenerator, error) {
	switch strings.ToLower(strings.TrimSpace(strategy)) {
	case "", IDStrategyCounter:
		return &CounterIDs{}, nil
	case IDStrategyUUID:
		return UUIDIDs{}, nil
	default:
		return nil, fmt.Errorf("unknown id strategy %q (valid: counter, uuid)", strategy)
	}
}
