package registry

import (
	"fmt"
	"sort"
	"strings"
)

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithStrictValues makes Build reject types that declare a numeric value twice.
func WithStrictValues(strict bool) BuilderOption {
	return func(b *Builder) {
		b.strict = strict
	}
}

// Builder collects discovery candidates and produces a Registry.
type Builder struct {
	strict     bool
	candidates []Candidate
}

// NewBuilder returns an empty Builder.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Add queues candidates for registration, keeping their order.
func (b *Builder) Add(candidates ...Candidate) *Builder {
	b.candidates = append(b.candidates, candidates...)
	return b
}

// Build validates the queued candidates and returns the Registry.
func (b *Builder) Build() (*Registry, error) {
	reg := &Registry{
		byName: make(map[string]*Descriptor, len(b.candidates)),
	}

	for _, c := range b.candidates {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return nil, ErrEmptyName
		}
		if !c.Kind.IsEnum() {
			reg.skipped = append(reg.skipped, Skipped{
				Name:   name,
				Kind:   string(c.Kind),
				Reason: "not an enumerated type",
			})
			continue
		}

		key := strings.ToLower(name)
		if existing, dup := reg.byName[key]; dup {
			return nil, fmt.Errorf("%w: %q conflicts with %q", ErrDuplicateType, name, existing.name)
		}

		d, err := b.describe(name, c.Members)
		if err != nil {
			return nil, err
		}
		reg.descriptors = append(reg.descriptors, d)
		reg.byName[key] = d
	}

	return reg, nil
}

func (b *Builder) describe(name string, members []Member) (*Descriptor, error) {
	d := &Descriptor{
		name:    name,
		members: make([]Member, 0, len(members)),
	}

	counts := make(map[int32]int, len(members))
	for _, m := range members {
		memberName := strings.TrimSpace(m.Name)
		if memberName == "" {
			return nil, fmt.Errorf("%w: member of %q with value %d", ErrEmptyName, name, m.Value)
		}
		counts[m.Value]++
		d.members = append(d.members, Member{
			Value:  m.Value,
			Name:   memberName,
			Labels: m.Labels.clone(),
		})
	}

	for value, n := range counts {
		if n > 1 {
			d.ambiguous = append(d.ambiguous, value)
		}
	}
	sort.Slice(d.ambiguous, func(i, j int) bool { return d.ambiguous[i] < d.ambiguous[j] })

	if b.strict && len(d.ambiguous) > 0 {
		return nil, fmt.Errorf("%w: %q declares values %v more than once", ErrAmbiguousMember, name, d.ambiguous)
	}
	return d, nil
}

// New is shorthand for NewBuilder(opts...).Add(candidates...).Build().
func New(candidates []Candidate, opts ...BuilderOption) (*Registry, error) {
	return NewBuilder(opts...).Add(candidates...).Build()
}
