package registry

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound is returned by Lookup when no registered type matches.
	ErrNotFound = errors.New("registry: enum type not found")
	// ErrEmptyName is returned when a candidate or member has no name.
	ErrEmptyName = errors.New("registry: empty name")
	// ErrDuplicateType is returned when two candidates share a name, ignoring case.
	ErrDuplicateType = errors.New("registry: duplicate enum type")
	// ErrAmbiguousMember is returned in strict mode when a type declares
	// the same numeric value twice.
	ErrAmbiguousMember = errors.New("registry: ambiguous enum member")
)

// Kind classifies a discovery candidate. Only enumerated types are registered.
type Kind string

const (
	// KindEnum is a closed, ordered set of named integral constants.
	KindEnum Kind = "enum"
)

// IsEnum reports whether the kind denotes an enumerated type.
// An empty kind is treated as an enum.
func (k Kind) IsEnum() bool {
	return k == "" || strings.EqualFold(string(k), string(KindEnum))
}

// LabelSet holds the labels of one member.
type LabelSet struct {
	// Localized maps a language code to its label.
	Localized map[string]string
	// Fallback is the language-agnostic label, empty when absent.
	Fallback string
}

// Member is one (numeric value, symbolic name) pair of an enumerated type.
type Member struct {
	Value  int32
	Name   string
	Labels LabelSet
}

// Candidate is one discovered type, before registration.
type Candidate struct {
	Name    string
	Kind    Kind
	Members []Member
}

// Skipped records a candidate that was not registered and why.
type Skipped struct {
	Name   string `json:"name"`
	Kind   string `json:"kind"`
	Reason string `json:"reason"`
}
