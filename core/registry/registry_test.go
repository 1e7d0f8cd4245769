package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func statusCandidate() Candidate {
	return Candidate{
		Name: "Status",
		Kind: KindEnum,
		Members: []Member{
			{Value: 0, Name: "Pending", Labels: LabelSet{
				Localized: map[string]string{"EN": "Pending", "tr": "Beklemede"},
				Fallback:  "Pending",
			}},
			{Value: 1, Name: "Done", Labels: LabelSet{
				Localized: map[string]string{"en": "Done"},
			}},
		},
	}
}

func TestResolve_Chain(t *testing.T) {
	pending := statusCandidate().Members[0]
	done := statusCandidate().Members[1]
	bare := Member{Value: 7, Name: "Archived"}

	tests := []struct {
		name     string
		member   Member
		language string
		want     string
	}{
		{"exact language", pending, "tr", "Beklemede"},
		{"case-insensitive language", pending, "TR", "Beklemede"},
		{"mixed case key", Member{Name: "X", Labels: LabelSet{Localized: map[string]string{"De": "Hallo"}}}, "de", "Hallo"},
		{"fallback label", pending, "de", "Pending"},
		{"symbolic name when no fallback", done, "tr", "Done"},
		{"no labels at all", bare, "en", "Archived"},
		{"empty language", pending, "", "Pending"},
		{"empty label counts as absent", Member{Name: "Y", Labels: LabelSet{Localized: map[string]string{"en": ""}, Fallback: "Why"}}, "en", "Why"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Resolve(tt.member, tt.language))
			assert.Equal(t, tt.want, tt.member.Label(tt.language))
		})
	}
}

func TestBuild_NamesAndLookup(t *testing.T) {
	reg, err := New([]Candidate{
		statusCandidate(),
		{Name: "Widget", Kind: "record"},
		{Name: "Priority", Members: []Member{{Value: 1, Name: "Low"}, {Value: 2, Name: "High"}}},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Status", "Priority"}, reg.Names())
	assert.Equal(t, 2, reg.Len())
	require.Len(t, reg.Skipped(), 1)
	assert.Equal(t, "Widget", reg.Skipped()[0].Name)

	d, err := reg.Lookup("status")
	require.NoError(t, err)
	assert.Equal(t, "Status", d.Name())
	assert.Equal(t, 2, d.Len())

	_, err = reg.Lookup("DoesNotExist")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBuild_LowercasesLabelKeys(t *testing.T) {
	reg, err := New([]Candidate{statusCandidate()})
	require.NoError(t, err)

	d, err := reg.Lookup("Status")
	require.NoError(t, err)
	labels := d.Members()[0].Labels.Localized
	assert.Equal(t, "Pending", labels["en"])
	assert.NotContains(t, labels, "EN")
}

func TestBuild_Errors(t *testing.T) {
	t.Run("duplicate type ignoring case", func(t *testing.T) {
		_, err := New([]Candidate{statusCandidate(), {Name: "STATUS"}})
		assert.ErrorIs(t, err, ErrDuplicateType)
	})

	t.Run("empty type name", func(t *testing.T) {
		_, err := New([]Candidate{{Name: "  "}})
		assert.ErrorIs(t, err, ErrEmptyName)
	})

	t.Run("empty member name", func(t *testing.T) {
		_, err := New([]Candidate{{Name: "Bad", Members: []Member{{Value: 1}}}})
		assert.ErrorIs(t, err, ErrEmptyName)
	})
}

func TestBuild_DuplicateValues(t *testing.T) {
	candidate := Candidate{
		Name: "Color",
		Members: []Member{
			{Value: 1, Name: "Red"},
			{Value: 2, Name: "Green"},
			{Value: 1, Name: "Crimson"},
		},
	}

	t.Run("lenient keeps the type", func(t *testing.T) {
		reg, err := New([]Candidate{candidate})
		require.NoError(t, err)

		d, _ := reg.Lookup("Color")
		assert.Equal(t, []int32{1}, d.AmbiguousValues())
		assert.Equal(t, 3, d.Len())

		distinct := d.Distinct()
		require.Len(t, distinct, 2)
		assert.Equal(t, "Crimson", distinct[0].Name)
		assert.Equal(t, "Green", distinct[1].Name)
	})

	t.Run("strict rejects the type", func(t *testing.T) {
		_, err := New([]Candidate{candidate}, WithStrictValues(true))
		assert.ErrorIs(t, err, ErrAmbiguousMember)
	})
}

func TestDescriptor_AccessorsReturnCopies(t *testing.T) {
	reg, err := New([]Candidate{statusCandidate()})
	require.NoError(t, err)
	d, _ := reg.Lookup("Status")

	members := d.Members()
	members[0].Name = "Mutated"
	assert.Equal(t, "Pending", d.Members()[0].Name)

	members[0].Labels.Localized["tr"] = "Mutated"
	assert.Equal(t, "Beklemede", Resolve(d.Members()[0], "tr"))

	distinct := d.Distinct()
	distinct[0].Labels.Localized["tr"] = "Mutated"
	assert.Equal(t, "Beklemede", d.Distinct()[0].Label("tr"))

	again, _ := reg.Lookup("status")
	assert.Equal(t, "Beklemede", again.Members()[0].Label("tr"))

	names := reg.Names()
	names[0] = "Mutated"
	assert.Equal(t, "Status", reg.Names()[0])
}

func TestBuild_ZeroMembers(t *testing.T) {
	reg, err := New([]Candidate{{Name: "Empty", Kind: KindEnum}})
	require.NoError(t, err)

	d, err := reg.Lookup("empty")
	require.NoError(t, err)
	assert.Empty(t, d.Members())
	assert.Empty(t, d.Distinct())
}
