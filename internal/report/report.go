// Package report tallies eBird observations per species group
package report

import (
	"github.com/tphakala/birdgroups/internal/birdgroups"
	"github.com/tphakala/birdgroups/internal/ebird"
)

// SpeciesTally counts the records for one species within a section.
type SpeciesTally struct {
	CommonName   string `json:"common_name" yaml:"common_name"` // first spelling seen
	Observations int    `json:"observations" yaml:"observations"`
	Individuals  int    `json:"individuals" yaml:"individuals"` // sum of numeric counts
	Uncounted    int    `json:"uncounted" yaml:"uncounted"`     // records reported as "X"
}

// Section is the report block for one group.
type Section struct {
	Group        string         `json:"group" yaml:"group"`
	Classified   bool           `json:"classified" yaml:"classified"`
	Species      []SpeciesTally `json:"species" yaml:"species"`
	Observations int            `json:"observations" yaml:"observations"`
	Individuals  int            `json:"individuals" yaml:"individuals"`

	byKey map[string]int
}

// Summary lists one section per registry group in registry order,
// followed by the unclassified section.
type Summary struct {
	Sections []Section `json:"sections" yaml:"sections"`
}

// Summarize groups observations using idx, labelling unknown species with
// birdgroups.DefaultGroup.
func Summarize(idx *birdgroups.Index, observations []ebird.Observation) *Summary {
	return SummarizeOr(idx, observations, birdgroups.DefaultGroup)
}

// SummarizeOr is Summarize with a caller supplied label for the
// unclassified section.
func SummarizeOr(idx *birdgroups.Index, observations []ebird.Observation, unclassified string) *Summary {
	reg := idx.Registry()
	summary := &Summary{Sections: make([]Section, 0, len(reg)+1)}
	position := make(map[string]int, len(reg))

	for _, group := range reg {
		position[group.Name] = len(summary.Sections)
		summary.Sections = append(summary.Sections, Section{Group: group.Name, Classified: true})
	}
	other := len(summary.Sections)
	summary.Sections = append(summary.Sections, Section{Group: unclassified})

	for i := range observations {
		obs := &observations[i]

		target := other
		if group, ok := idx.Lookup(obs.CommonName); ok {
			target = position[group]
		}
		summary.Sections[target].add(obs)
	}

	for i := range summary.Sections {
		summary.Sections[i].byKey = nil
	}

	return summary
}

func (s *Section) add(obs *ebird.Observation) {
	if s.byKey == nil {
		s.byKey = make(map[string]int)
	}

	key := birdgroups.Normalize(obs.CommonName)
	i, ok := s.byKey[key]
	if !ok {
		i = len(s.Species)
		s.byKey[key] = i
		s.Species = append(s.Species, SpeciesTally{CommonName: obs.CommonName})
	}

	tally := &s.Species[i]
	tally.Observations++
	s.Observations++

	if n, counted := obs.Count(); counted {
		tally.Individuals += n
		s.Individuals += n
	} else {
		tally.Uncounted++
	}
}

// Totals returns the number of observations summarised and how many of
// them matched a group.
func (s *Summary) Totals() (observations, classified int) {
	for i := range s.Sections {
		observations += s.Sections[i].Observations
		if s.Sections[i].Classified {
			classified += s.Sections[i].Observations
		}
	}
	return observations, classified
}

// Section returns the section for a group name.
func (s *Summary) Section(group string) (*Section, bool) {
	for i := range s.Sections {
		if s.Sections[i].Group == group {
			return &s.Sections[i], true
		}
	}
	return nil, false
}
