// index.go builds the species to group reverse index and answers lookups
package birdgroups

import (
	"fmt"

	"github.com/tphakala/birdgroups/internal/errors"
	"github.com/tphakala/birdgroups/internal/logger"
)

// DefaultGroup is returned by GroupForSpecies for names that are in no group.
// It is a valid classification ("unclassified"), not an error.
const DefaultGroup = "NOT_IN_GROUPS"

const componentName = "birdgroups"

// SpeciesConflictError reports a species declared under two different groups.
type SpeciesConflictError struct {
	Species          string // name as written in the conflicting group
	Key              string // canonical key shared by both declarations
	ExistingGroup    string // group that declared the key first
	ConflictingGroup string // group that declared it again
}

func (e *SpeciesConflictError) Error() string {
	return fmt.Sprintf("species '%s' appears in multiple groups: %s and %s",
		e.Species, e.ExistingGroup, e.ConflictingGroup)
}

// ErrorCategory marks registry conflicts for the errors package
func (e *SpeciesConflictError) ErrorCategory() errors.ErrorCategory {
	return errors.CategoryConflict
}

// Index maps canonical species keys to group names. It is immutable once
// built and safe for concurrent use.
type Index struct {
	registry Registry
	groupOf  map[string]string
}

// NewIndex builds the reverse index for reg. Groups are visited in registry
// order and species in list order. A species whose canonical key is already
// mapped to a different group fails the build with a conflict error naming
// the species and both groups; a repeat within the same group is accepted.
// Callers should treat any error as fatal: the registry needs fixing.
func NewIndex(reg Registry) (*Index, error) {
	if err := validateGroups(reg); err != nil {
		return nil, err
	}

	idx := &Index{
		registry: reg.Clone(),
		groupOf:  make(map[string]string, reg.SpeciesCount()),
	}

	for _, group := range idx.registry {
		for _, species := range group.Species {
			key := Normalize(species)

			if existing, ok := idx.groupOf[key]; ok && existing != group.Name {
				conflict := &SpeciesConflictError{
					Species:          species,
					Key:              key,
					ExistingGroup:    existing,
					ConflictingGroup: group.Name,
				}
				return nil, errors.New(conflict).
					Category(errors.CategoryConflict).
					Component(componentName).
					Context("species", species).
					Context("existing_group", existing).
					Context("conflicting_group", group.Name).
					Build()
			}

			idx.groupOf[key] = group.Name
		}
	}

	GetLogger().Debug("species reverse index built",
		logger.Int("groups", len(idx.registry)),
		logger.Int("species", len(idx.groupOf)))

	return idx, nil
}

// NewDefaultIndex builds the index for the built-in registry.
func NewDefaultIndex() (*Index, error) {
	return NewIndex(defaultRegistry)
}

// validateGroups rejects unnamed and repeated groups
func validateGroups(reg Registry) error {
	seen := make(map[string]struct{}, len(reg))
	for i, group := range reg {
		if group.Name == "" {
			return errors.Newf("group at position %d has no name", i+1).
				Category(errors.CategoryValidation).
				Component(componentName).
				Context("position", i+1).
				Build()
		}
		if _, dup := seen[group.Name]; dup {
			return errors.Newf("group '%s' is declared more than once", group.Name).
				Category(errors.CategoryValidation).
				Component(componentName).
				Context("group", group.Name).
				Build()
		}
		seen[group.Name] = struct{}{}
	}
	return nil
}

// Lookup returns the group for a species common name and whether it is known.
func (idx *Index) Lookup(name string) (string, bool) {
	if idx == nil {
		return "", false
	}
	group, ok := idx.groupOf[Normalize(name)]
	return group, ok
}

// GroupForSpecies returns the group for a species common name, or
// DefaultGroup when the name is in no group.
func (idx *Index) GroupForSpecies(name string) string {
	return idx.GroupForSpeciesOr(name, DefaultGroup)
}

// GroupForSpeciesOr is GroupForSpecies with a caller supplied default.
func (idx *Index) GroupForSpeciesOr(name, def string) string {
	if group, ok := idx.Lookup(name); ok {
		return group
	}
	return def
}

// Registry returns a copy of the registry the index was built from
func (idx *Index) Registry() Registry {
	if idx == nil {
		return nil
	}
	return idx.registry.Clone()
}

// Len returns the number of distinct canonical species keys
func (idx *Index) Len() int {
	if idx == nil {
		return 0
	}
	return len(idx.groupOf)
}
