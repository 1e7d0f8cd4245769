package catalog

import (
	"errors"
	"fmt"
	"strings"

	"enum-registry/core/registry"
	"enum-registry/core/utils"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidDefinition is returned when a catalog file cannot be parsed or
// fails validation.
var ErrInvalidDefinition = errors.New("catalog: invalid definition")

// File is the on-disk shape of one catalog file.
type File struct {
	Enums []Definition `yaml:"enums" validate:"dive"`

	// Single-type form.
	Definition `yaml:",inline"`
}

// Definition describes one enumerated type.
type Definition struct {
	Name    string             `yaml:"name" validate:"required,max=100"`
	Kind    string             `yaml:"kind" validate:"omitempty,max=32"`
	Members []MemberDefinition `yaml:"members" validate:"dive"`
}

// MemberDefinition describes one member of a type.
type MemberDefinition struct {
	Value       int32             `yaml:"value"`
	Name        string            `yaml:"name" validate:"required,max=100"`
	Description string            `yaml:"description" validate:"max=250"`
	Labels      map[string]string `yaml:"labels" validate:"dive,keys,langcode,endkeys,max=250"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("langcode", func(fl validator.FieldLevel) bool {
		_, err := utils.NormalizeLanguage(fl.Field().String())
		return err == nil
	})
	return v
}

// Validate checks a definition against the lookup table limits.
func Validate(def Definition) error {
	if err := validate.Struct(def); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidDefinition, def.Name, err)
	}
	return nil
}

// Candidate converts the definition into a registry candidate.
func (d Definition) Candidate() registry.Candidate {
	members := make([]registry.Member, 0, len(d.Members))
	for _, m := range d.Members {
		var localized map[string]string
		if len(m.Labels) > 0 {
			localized = make(map[string]string, len(m.Labels))
			for lang, label := range m.Labels {
				localized[strings.ToLower(strings.TrimSpace(lang))] = label
			}
		}
		members = append(members, registry.Member{
			Value: m.Value,
			Name:  m.Name,
			Labels: registry.LabelSet{
				Localized: localized,
				Fallback:  m.Description,
			},
		})
	}
	return registry.Candidate{
		Name:    d.Name,
		Kind:    registry.Kind(d.Kind),
		Members: members,
	}
}
