package registry

// Descriptor is a registered enumerated type. It is immutable; accessors
// return copies.
type Descriptor struct {
	name      string
	members   []Member
	ambiguous []int32
}

// Name returns the type name as registered.
func (d *Descriptor) Name() string {
	return d.name
}

// Members returns the members in declaration order.
func (d *Descriptor) Members() []Member {
	out := make([]Member, len(d.members))
	for i, m := range d.members {
		out[i] = m.clone()
	}
	return out
}

// Len returns the number of declared members.
func (d *Descriptor) Len() int {
	return len(d.members)
}

// AmbiguousValues returns the numeric values declared by more than one member.
func (d *Descriptor) AmbiguousValues() []int32 {
	out := make([]int32, len(d.ambiguous))
	copy(out, d.ambiguous)
	return out
}

// Distinct returns one member per numeric value, ordered by first declaration.
// When a value is declared more than once the last declared member wins.
func (d *Descriptor) Distinct() []Member {
	index := make(map[int32]int, len(d.members))
	out := make([]Member, 0, len(d.members))
	for _, m := range d.members {
		if i, seen := index[m.Value]; seen {
			out[i] = m.clone()
			continue
		}
		index[m.Value] = len(out)
		out = append(out, m.clone())
	}
	return out
}

func (m Member) clone() Member {
	m.Labels = m.Labels.clone()
	return m
}
