package checks

import "enum-registry/core/registry"

// CatalogReport summarizes the health of the loaded enum registry.
type CatalogReport struct {
	Types     int                `json:"types"`
	Healthy   bool               `json:"healthy"`
	Skipped   []registry.Skipped `json:"skipped"`
	Ambiguous map[string][]int32 `json:"ambiguous"`
	Empty     []string           `json:"empty"`
}

// CheckCatalog reports skipped candidates, types that declare a value more
// than once, and types without members.
func CheckCatalog(reg *registry.Registry) *CatalogReport {
	report := &CatalogReport{
		Healthy:   true,
		Skipped:   []registry.Skipped{},
		Ambiguous: map[string][]int32{},
		Empty:     []string{},
	}
	if reg == nil {
		report.Healthy = false
		return report
	}

	report.Types = reg.Len()
	report.Skipped = append(report.Skipped, reg.Skipped()...)

	for _, d := range reg.Descriptors() {
		if values := d.AmbiguousValues(); len(values) > 0 {
			report.Ambiguous[d.Name()] = values
			report.Healthy = false
		}
		if d.Len() == 0 {
			report.Empty = append(report.Empty, d.Name())
		}
	}
	return report
}
