// Package registry assembles the ordered, immutable list of workflow phases.
package registry

import (
	"fmt"
	"sort"

	"github.com/aretw0/appguide/pkg/domain"
)

// Registry is the validated, ordered set of phases. It is safe for concurrent reads
// because nothing mutates it after Build.
type Registry struct {
	phases []domain.PhaseDescriptor
}

// Builder collects phase descriptors and validates them once in Build.
type Builder struct {
	phases []domain.PhaseDescriptor
	seen   map[int]bool
	err    error
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		seen: make(map[int]bool),
	}
}

// Add registers a phase. The first validation failure is kept and reported by Build;
// later calls become no-ops.
func (b *Builder) Add(p domain.PhaseDescriptor) *Builder {
	if b.err != nil {
		return b
	}
	if p.Index < 1 || p.Index > domain.PhaseCount {
		b.err = fmt.Errorf("%w: %d (want 1..%d)", domain.ErrInvalidPhaseIndex, p.Index, domain.PhaseCount)
		return b
	}
	if b.seen[p.Index] {
		b.err = fmt.Errorf("%w: %d", domain.ErrDuplicatePhase, p.Index)
		return b
	}
	b.seen[p.Index] = true
	b.phases = append(b.phases, p)
	return b
}

// Build validates that every index 1..PhaseCount is present exactly once and returns
// the registry sorted by index.
func (b *Builder) Build() (*Registry, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.phases) != domain.PhaseCount {
		return nil, fmt.Errorf("%w: got %d of %d phases", domain.ErrIncompleteRegistry, len(b.phases), domain.PhaseCount)
	}

	phases := make([]domain.PhaseDescriptor, len(b.phases))
	copy(phases, b.phases)
	sort.Slice(phases, func(i, j int) bool { return phases[i].Index < phases[j].Index })

	return &Registry{phases: phases}, nil
}

// Phases returns a copy of the descriptors in ascending index order.
func (r *Registry) Phases() []domain.PhaseDescriptor {
	out := make([]domain.PhaseDescriptor, len(r.phases))
	copy(out, r.phases)
	return out
}

// Len returns the number of registered phases.
func (r *Registry) Len() int {
	return len(r.phases)
}

// Get looks up a phase by index.
func (r *Registry) Get(index int) (domain.PhaseDescriptor, error) {
	for _, p := range r.phases {
		if p.Index == index {
			return p, nil
		}
	}
	return domain.PhaseDescriptor{}, fmt.Errorf("%w: %d", domain.ErrPhaseNotFound, index)
}
