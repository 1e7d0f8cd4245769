package registry

import "strings"

// Resolve returns the best available label of m for language.
// It never fails: it falls back to the generic label, then to the symbolic name.
func Resolve(m Member, language string) string {
	if label, ok := m.Labels.lookup(language); ok {
		return label
	}
	if m.Labels.Fallback != "" {
		return m.Labels.Fallback
	}
	return m.Name
}

// Label is shorthand for Resolve(m, language).
func (m Member) Label(language string) string {
	return Resolve(m, language)
}

func (l LabelSet) lookup(language string) (string, bool) {
	if len(l.Localized) == 0 {
		return "", false
	}
	key := strings.ToLower(strings.TrimSpace(language))
	if label, ok := l.Localized[key]; ok && label != "" {
		return label, true
	}
	// Keys are lower-cased by the Builder; hand-built sets may not be.
	for lang, label := range l.Localized {
		if label != "" && strings.EqualFold(lang, key) {
			return label, true
		}
	}
	return "", false
}

func (l LabelSet) clone() LabelSet {
	out := LabelSet{Fallback: l.Fallback}
	if len(l.Localized) > 0 {
		out.Localized = make(map[string]string, len(l.Localized))
		for lang, label := range l.Localized {
			if label == "" {
				continue
			}
			out.Localized[strings.ToLower(strings.TrimSpace(lang))] = label
		}
	}
	return out
}
