package design

import (
	"io"
	"log/slog"
)

// Store owns the design tree: the ordered list of placed instances. Order is
// insertion order and is the emit order of every generator.
//
// A Store is not safe for concurrent use; the builder drives it from a single
// event loop.
type Store struct {
	instances []Instance
	ids       IDGenerator
	logger    *slog.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithIDGenerator replaces the default counter ids.
func WithIDGenerator(g IDGenerator) StoreOption {
	return func(s *Store) {
		if g != nil {
			s.ids = g
		}
	}
}

// WithLogger sets the logger mutations are reported to.
func WithLogger(l *slog.Logger) StoreOption {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewStore returns an empty store.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		ids:    &CounterIDs{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "store")
	return s
}

// Patch is a partial update. Nil fields are left alone. Props are merged key
// by key; Position and Children replace the current value.
type Patch struct {
	Props    map[string]any
	Position *Position
	Children []Instance
}

// Add appends a new instance of type t with the registry defaults and returns
// a copy of it. Callers usually make it the current selection.
func (s *Store) Add(t Type, pos Position) Instance {
	id := s.ids.NextID(t, s.has)
	inst := NewInstance(id, t, pos)
	s.instances = append(s.instances, inst)
	s.logger.Debug("component added", "id", id, "type", string(t), "x", pos.X, "y", pos.Y)
	return inst.Clone()
}

// Update applies p to the instance with the given id. Unknown ids are ignored.
func (s *Store) Update(id string, p Patch) {
	i := s.index(id)
	if i < 0 {
		s.logger.Debug("update of unknown component ignored", "id", id)
		return
	}
	inst := &s.instances[i]
	if inst.Props == nil {
		inst.Props = NewProps(inst.Type)
	}
	for k, v := range p.Props {
		inst.Props.Set(k, v)
	}
	if p.Position != nil {
		inst.Position = *p.Position
	}
	if p.Children != nil {
		inst.Children = cloneInstances(p.Children)
	}
	s.logger.Debug("component updated", "id", id, "props", len(p.Props), "moved", p.Position != nil)
}

// Remove deletes the instance with the given id, keeping the order of the
// rest. Unknown ids are ignored, so removing twice is harmless.
func (s *Store) Remove(id string) {
	i := s.index(id)
	if i < 0 {
		s.logger.Debug("remove of unknown component ignored", "id", id)
		return
	}
	s.instances = append(s.instances[:i], s.instances[i+1:]...)
	s.logger.Debug("component removed", "id", id)
}

// Instances returns a deep copy of the tree in order.
func (s *Store) Instances() []Instance {
	out := make([]Instance, len(s.instances))
	for i := range s.instances {
		out[i] = s.instances[i].Clone()
	}
	return out
}

// Get returns a copy of the instance with the given id.
func (s *Store) Get(id string) (Instance, bool) {
	i := s.index(id)
	if i < 0 {
		return Instance{}, false
	}
	return s.instances[i].Clone(), true
}

// Len is the number of instances in the tree.
func (s *Store) Len() int { return len(s.instances) }

// Snapshot is the read view handed to presentation code.
type Snapshot struct {
	Instances []Instance
	// Selected is the selection passed in, or empty when it no longer exists.
	Selected string
}

// Snapshot returns the current tree together with the caller's selection,
// cleared if that instance is gone.
func (s *Store) Snapshot(selected string) Snapshot {
	if !s.has(selected) {
		selected = ""
	}
	return Snapshot{Instances: s.Instances(), Selected: selected}
}

func (s *Store) has(id string) bool { return s.index(id) >= 0 }

func (s *Store) index(id string) int {
	if id == "" {
		return -1
	}
	for i := range s.instances {
		if s.instances[i].ID == id {
			return i
		}
	}
	return -1
}
