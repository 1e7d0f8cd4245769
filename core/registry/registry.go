package registry

import (
	"fmt"
	"strings"
)

// Registry is the immutable set of registered enumerated types.
type Registry struct {
	descriptors []*Descriptor
	byName      map[string]*Descriptor
	skipped     []Skipped
}

// Names returns the registered type names in discovery order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.descriptors))
	for i, d := range r.descriptors {
		names[i] = d.name
	}
	return names
}

// Lookup finds a type by name, ignoring case.
func (r *Registry) Lookup(name string) (*Descriptor, error) {
	if d, ok := r.byName[strings.ToLower(strings.TrimSpace(name))]; ok {
		return d, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
}

// Descriptors returns every registered type in discovery order.
func (r *Registry) Descriptors() []*Descriptor {
	out := make([]*Descriptor, len(r.descriptors))
	copy(out, r.descriptors)
	return out
}

// Len returns the number of registered types.
func (r *Registry) Len() int {
	return len(r.descriptors)
}

// Skipped returns the candidates that were not enumerated types.
func (r *Registry) Skipped() []Skipped {
	out := make([]Skipped, len(r.skipped))
	copy(out, r.skipped)
	return out
}
